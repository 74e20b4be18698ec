package spatial

import (
	"testing"

	"github.com/CaMMelo/gaming-framework/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

func TestGridQuery(t *testing.T) {
	grid := NewGrid(10)

	near := newBoxObject(2, 8, 8, 2)
	far := newBoxObject(200, 208, 208, 200)
	spanning := newBoxObject(5, 25, 25, 5) // covers multiple cells
	for _, obj := range []Object{near, far, spanning} {
		grid.Insert(obj)
	}

	probe := geometry.Rectangle{TopLeft: mgl64.Vec2{0, 30}, BottomRight: mgl64.Vec2{30, 0}}
	got := grid.Query(probe)
	if len(got) != 2 {
		t.Fatalf("Query returned %d objects, want 2: %v", len(got), got)
	}
	seen := map[Object]bool{}
	for _, obj := range got {
		seen[obj] = true
	}
	if !seen[near] || !seen[spanning] {
		t.Errorf("Query missed expected objects")
	}
}

func TestGridQueryDeduplicatesSpanningObjects(t *testing.T) {
	grid := NewGrid(10)
	spanning := newBoxObject(0, 40, 40, 0)
	grid.Insert(spanning)

	probe := geometry.Rectangle{TopLeft: mgl64.Vec2{0, 40}, BottomRight: mgl64.Vec2{40, 0}}
	if got := grid.Query(probe); len(got) != 1 {
		t.Fatalf("Query returned the same object %d times", len(got))
	}
}

func TestGridRemove(t *testing.T) {
	grid := NewGrid(10)
	a := newBoxObject(2, 8, 8, 2)
	b := newBoxObject(2, 8, 8, 2)
	grid.Insert(a)
	grid.Insert(b)

	grid.Remove(a)
	if got := grid.Objects(); len(got) != 1 || got[0] != b {
		t.Fatalf("after removing a, Objects() = %v, want only b", got)
	}

	grid.Remove(a) // absent: no-op
	if got := grid.Objects(); len(got) != 1 {
		t.Fatalf("removing absent object changed contents")
	}

	grid.Remove(b)
	if len(grid.cells) != 0 {
		t.Errorf("empty grid still holds %d cells", len(grid.cells))
	}
}

func TestGridEmptyCopy(t *testing.T) {
	grid := NewGrid(25)
	grid.Insert(newBoxObject(0, 5, 5, 0))

	cp, ok := grid.EmptyCopy().(*Grid)
	if !ok {
		t.Fatalf("EmptyCopy() returned %T, want *Grid", grid.EmptyCopy())
	}
	if len(cp.Objects()) != 0 {
		t.Errorf("EmptyCopy() is not empty")
	}
	if cp.cellSize != grid.cellSize {
		t.Errorf("EmptyCopy() cell size = %v, want %v", cp.cellSize, grid.cellSize)
	}
}
