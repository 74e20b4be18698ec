package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Shape is an exact 2D shape used for narrow-phase overlap tests.
// Shapes are immutable values; CenterTo returns a translated copy so
// interpolated positions can be tested without touching the original.
type Shape interface {
	CollidesWith(other Shape) bool
	CenterTo(p mgl64.Vec2) Shape
	BoundingCircle() Circle
	BoundingRect() Rectangle
}

// Circle is a disc centered at Center with the given Radius.
type Circle struct {
	Center mgl64.Vec2
	Radius float64
}

func (c Circle) CollidesWith(other Shape) bool {
	switch o := other.(type) {
	case Circle:
		return circleVsCircle(c, o)
	case Rectangle:
		return circleVsRect(c, o)
	}
	return false
}

func (c Circle) CenterTo(p mgl64.Vec2) Shape {
	return Circle{Center: p, Radius: c.Radius}
}

func (c Circle) BoundingCircle() Circle {
	return c
}

func (c Circle) BoundingRect() Rectangle {
	return Rectangle{
		TopLeft:     mgl64.Vec2{c.Center.X() - c.Radius, c.Center.Y() + c.Radius},
		BottomRight: mgl64.Vec2{c.Center.X() + c.Radius, c.Center.Y() - c.Radius},
	}
}

// Rectangle is an axis-aligned rectangle in y-up coordinates:
// TopLeft.Y() >= BottomRight.Y() and TopLeft.X() <= BottomRight.X().
type Rectangle struct {
	TopLeft     mgl64.Vec2
	BottomRight mgl64.Vec2
}

func (r Rectangle) Top() float64    { return r.TopLeft.Y() }
func (r Rectangle) Left() float64   { return r.TopLeft.X() }
func (r Rectangle) Bottom() float64 { return r.BottomRight.Y() }
func (r Rectangle) Right() float64  { return r.BottomRight.X() }

func (r Rectangle) Width() float64  { return r.Right() - r.Left() }
func (r Rectangle) Height() float64 { return r.Top() - r.Bottom() }

func (r Rectangle) Center() mgl64.Vec2 {
	return mgl64.Vec2{
		(r.Left() + r.Right()) / 2.0,
		(r.Bottom() + r.Top()) / 2.0,
	}
}

// Contains reports whether other lies entirely inside r.
func (r Rectangle) Contains(other Rectangle) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Bottom() >= r.Bottom() && other.Top() <= r.Top()
}

func (r Rectangle) CollidesWith(other Shape) bool {
	switch o := other.(type) {
	case Circle:
		return circleVsRect(o, r)
	case Rectangle:
		return rectVsRect(r, o)
	}
	return false
}

func (r Rectangle) CenterTo(p mgl64.Vec2) Shape {
	halfW := r.Width() / 2.0
	halfH := r.Height() / 2.0
	return Rectangle{
		TopLeft:     mgl64.Vec2{p.X() - halfW, p.Y() + halfH},
		BottomRight: mgl64.Vec2{p.X() + halfW, p.Y() - halfH},
	}
}

func (r Rectangle) BoundingCircle() Circle {
	center := r.Center()
	return Circle{
		Center: center,
		Radius: r.TopLeft.Sub(center).Len(),
	}
}

func (r Rectangle) BoundingRect() Rectangle {
	return r
}

// Touching counts as overlap in all predicates, so a contact at the exact
// analytic time of impact still passes the narrow phase.

func circleVsCircle(a, b Circle) bool {
	d := a.Center.Sub(b.Center)
	rsum := a.Radius + b.Radius
	return d.Dot(d) <= rsum*rsum
}

func circleVsRect(c Circle, r Rectangle) bool {
	closest := mgl64.Vec2{
		clamp(c.Center.X(), r.Left(), r.Right()),
		clamp(c.Center.Y(), r.Bottom(), r.Top()),
	}
	d := c.Center.Sub(closest)
	return d.Dot(d) <= c.Radius*c.Radius
}

func rectVsRect(a, b Rectangle) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Bottom() <= b.Top() && b.Bottom() <= a.Top()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
