package spatial

import (
	"github.com/CaMMelo/gaming-framework/geometry"
)

// Object is anything a Structure can index. Objects are keyed by identity:
// Remove only drops the exact value that was inserted.
type Object interface {
	BoundingRect() geometry.Rectangle
}

// Structure is a spatial index over objects with axis-aligned bounds.
type Structure interface {
	Insert(obj Object)
	Remove(obj Object)

	// Query returns every indexed object whose bounding rectangle
	// overlaps the given shape.
	Query(shape geometry.Shape) []Object

	// Objects returns every indexed object.
	Objects() []Object

	// EmptyCopy returns a new, empty structure of the same kind with the
	// same partitioning parameters.
	EmptyCopy() Structure
}
