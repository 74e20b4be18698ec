package physics

import (
	"github.com/CaMMelo/gaming-framework/geometry"
	"github.com/CaMMelo/gaming-framework/spatial"
)

// World runs the continuous-collision simulation over the bodies held in
// a spatial structure. The structure is owned by the application; the
// world only reads it during a tick and uses EmptyCopy to build the
// per-tick movement index with the same partitioning strategy.
type World struct {
	visibleArea geometry.Rectangle
	bodies      spatial.Structure
}

func NewWorld(visibleArea geometry.Rectangle, bodies spatial.Structure) *World {
	return &World{
		visibleArea: visibleArea,
		bodies:      bodies,
	}
}

func (w *World) Bodies() spatial.Structure { return w.bodies }

// VisibleBodies returns the bodies overlapping the world's visible area.
func (w *World) VisibleBodies() []*Body {
	var out []*Body
	for _, obj := range w.bodies.Query(w.visibleArea) {
		if b, ok := obj.(*Body); ok {
			out = append(out, b)
		}
	}
	return out
}

// Update advances the simulation by one tick of dt seconds. Contacts
// occurring anywhere inside the interval are detected and resolved in
// time order before final positions are committed.
//
// A tick is synchronous and single-threaded; all transient state lives
// in a step context that is discarded when Update returns.
func (w *World) Update(dt float64) {
	ctx := newStepContext(w.bodies, dt)

	for _, obj := range w.bodies.Objects() {
		if b, ok := obj.(*Body); ok {
			ctx.predictMovement(b, dt)
		}
	}

	for _, rec := range ctx.sortedRecords() {
		ctx.collectCandidates(rec.body)
	}

	ctx.resolveCandidates()
	ctx.commit()
}
