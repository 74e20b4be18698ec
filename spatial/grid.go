package spatial

import (
	"math"

	"github.com/CaMMelo/gaming-framework/geometry"
)

const defaultCellSize = 32.0

type cellKey struct {
	X int
	Y int
}

// Grid is an unbounded uniform hash grid. Each object is registered in
// every cell its bounding rectangle covers.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cells       map[cellKey][]Object
	entries     map[Object][]cellKey
}

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cells:       make(map[cellKey][]Object),
		entries:     make(map[Object][]cellKey),
	}
}

func (g *Grid) Insert(obj Object) {
	if _, ok := g.entries[obj]; ok {
		g.Remove(obj)
	}
	cells := g.cellsFor(obj.BoundingRect())
	g.entries[obj] = cells
	for _, cell := range cells {
		g.cells[cell] = append(g.cells[cell], obj)
	}
}

func (g *Grid) Remove(obj Object) {
	cells, ok := g.entries[obj]
	if !ok {
		return
	}
	delete(g.entries, obj)
	for _, cell := range cells {
		bucket := g.cells[cell]
		for i := range bucket {
			if bucket[i] != obj {
				continue
			}
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
		if len(bucket) == 0 {
			delete(g.cells, cell)
		} else {
			g.cells[cell] = bucket
		}
	}
}

func (g *Grid) Query(shape geometry.Shape) []Object {
	var out []Object
	seen := make(map[Object]struct{})
	for _, cell := range g.cellsFor(shape.BoundingRect()) {
		for _, obj := range g.cells[cell] {
			if _, dup := seen[obj]; dup {
				continue
			}
			seen[obj] = struct{}{}
			if shape.CollidesWith(obj.BoundingRect()) {
				out = append(out, obj)
			}
		}
	}
	return out
}

func (g *Grid) Objects() []Object {
	out := make([]Object, 0, len(g.entries))
	for obj := range g.entries {
		out = append(out, obj)
	}
	return out
}

func (g *Grid) EmptyCopy() Structure {
	return NewGrid(g.cellSize)
}

func (g *Grid) cellsFor(rect geometry.Rectangle) []cellKey {
	minX := g.coordToCell(rect.Left())
	maxX := g.coordToCell(rect.Right())
	minY := g.coordToCell(rect.Bottom())
	maxY := g.coordToCell(rect.Top())
	cells := make([]cellKey, 0, (maxX-minX+1)*(maxY-minY+1))
	for row := minY; row <= maxY; row++ {
		for col := minX; col <= maxX; col++ {
			cells = append(cells, cellKey{X: col, Y: row})
		}
	}
	return cells
}

func (g *Grid) coordToCell(v float64) int {
	return int(math.Floor(v * g.invCellSize))
}
