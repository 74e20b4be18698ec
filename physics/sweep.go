package physics

import (
	"github.com/CaMMelo/gaming-framework/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// makeSweptBody builds the broad-phase proxy for a body moving from its
// current position to end within the tick: a rectangle spanning the
// top-left extreme of the bounding circle at the start and the
// bottom-right extreme at the end. The box covers straight-line motion
// that increases monotonically in both axes; for other directions it
// under-approximates the true swept area, which keeps the filter cheap
// at the cost of occasionally missing a broad-phase overlap.
//
// The proxy is a static, non-simulated body that only ever lives inside
// the movement index.
func makeSweptBody(b *Body, end mgl64.Vec2) *Body {
	c := b.BoundingCircle()
	top := c.Center.Y() + c.Radius
	left := c.Center.X() - c.Radius
	bottom := end.Y() - c.Radius
	right := end.X() + c.Radius

	swept := geometry.Rectangle{
		TopLeft:     mgl64.Vec2{left, top},
		BottomRight: mgl64.Vec2{right, bottom},
	}
	return NewBody(BodyDef{
		Shape:  NewCollisionShape(swept),
		Static: true,
	})
}
