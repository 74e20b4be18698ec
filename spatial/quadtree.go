package spatial

import (
	"github.com/CaMMelo/gaming-framework/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultNodeCapacity = 8
	defaultMaxDepth     = 8
)

// QuadTree partitions a fixed rectangular area into recursive quadrants.
// An object is stored in the deepest node whose bounds fully contain its
// bounding rectangle; objects straddling a quadrant boundary stay at the
// parent. Objects outside the tree bounds are held at the root.
type QuadTree struct {
	bounds   geometry.Rectangle
	capacity int
	maxDepth int
	root     *quadNode
}

type quadNode struct {
	bounds   geometry.Rectangle
	depth    int
	objects  []Object
	children *[4]quadNode
}

func NewQuadTree(bounds geometry.Rectangle) *QuadTree {
	return NewQuadTreeWith(bounds, defaultNodeCapacity, defaultMaxDepth)
}

func NewQuadTreeWith(bounds geometry.Rectangle, capacity, maxDepth int) *QuadTree {
	if capacity <= 0 {
		capacity = defaultNodeCapacity
	}
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &QuadTree{
		bounds:   bounds,
		capacity: capacity,
		maxDepth: maxDepth,
		root:     &quadNode{bounds: bounds},
	}
}

func (q *QuadTree) Insert(obj Object) {
	q.root.insert(obj, q.capacity, q.maxDepth)
}

func (q *QuadTree) Remove(obj Object) {
	q.root.remove(obj)
}

func (q *QuadTree) Query(shape geometry.Shape) []Object {
	var out []Object
	q.root.query(shape, &out)
	return out
}

func (q *QuadTree) Objects() []Object {
	var out []Object
	q.root.collect(&out)
	return out
}

func (q *QuadTree) EmptyCopy() Structure {
	return NewQuadTreeWith(q.bounds, q.capacity, q.maxDepth)
}

func (n *quadNode) insert(obj Object, capacity, maxDepth int) {
	rect := obj.BoundingRect()
	if n.children != nil {
		if child := n.childContaining(rect); child != nil {
			child.insert(obj, capacity, maxDepth)
			return
		}
		n.objects = append(n.objects, obj)
		return
	}

	n.objects = append(n.objects, obj)
	if len(n.objects) > capacity && n.depth < maxDepth {
		n.subdivide(capacity, maxDepth)
	}
}

func (n *quadNode) subdivide(capacity, maxDepth int) {
	mid := n.bounds.Center()
	top, bottom := n.bounds.Top(), n.bounds.Bottom()
	left, right := n.bounds.Left(), n.bounds.Right()

	n.children = &[4]quadNode{
		{bounds: makeRect(left, top, mid.X(), mid.Y()), depth: n.depth + 1},
		{bounds: makeRect(mid.X(), top, right, mid.Y()), depth: n.depth + 1},
		{bounds: makeRect(left, mid.Y(), mid.X(), bottom), depth: n.depth + 1},
		{bounds: makeRect(mid.X(), mid.Y(), right, bottom), depth: n.depth + 1},
	}

	kept := n.objects[:0]
	for _, obj := range n.objects {
		if child := n.childContaining(obj.BoundingRect()); child != nil {
			child.insert(obj, capacity, maxDepth)
		} else {
			kept = append(kept, obj)
		}
	}
	n.objects = kept
}

func (n *quadNode) childContaining(rect geometry.Rectangle) *quadNode {
	for i := range n.children {
		if n.children[i].bounds.Contains(rect) {
			return &n.children[i]
		}
	}
	return nil
}

func (n *quadNode) remove(obj Object) bool {
	for i := range n.objects {
		if n.objects[i] == obj {
			n.objects[i] = n.objects[len(n.objects)-1]
			n.objects[len(n.objects)-1] = nil
			n.objects = n.objects[:len(n.objects)-1]
			return true
		}
	}
	if n.children == nil {
		return false
	}
	if child := n.childContaining(obj.BoundingRect()); child != nil {
		if child.remove(obj) {
			return true
		}
	}
	// The object may have been inserted before it moved; fall back to a
	// full sweep of the children.
	for i := range n.children {
		if n.children[i].remove(obj) {
			return true
		}
	}
	return false
}

func (n *quadNode) query(shape geometry.Shape, out *[]Object) {
	if !shape.CollidesWith(n.bounds) {
		return
	}
	for _, obj := range n.objects {
		if shape.CollidesWith(obj.BoundingRect()) {
			*out = append(*out, obj)
		}
	}
	if n.children == nil {
		return
	}
	for i := range n.children {
		n.children[i].query(shape, out)
	}
}

func (n *quadNode) collect(out *[]Object) {
	*out = append(*out, n.objects...)
	if n.children == nil {
		return
	}
	for i := range n.children {
		n.children[i].collect(out)
	}
}

func makeRect(left, top, right, bottom float64) geometry.Rectangle {
	return geometry.Rectangle{
		TopLeft:     mgl64.Vec2{left, top},
		BottomRight: mgl64.Vec2{right, bottom},
	}
}
