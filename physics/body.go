package physics

import (
	"sync/atomic"

	"github.com/CaMMelo/gaming-framework/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

var nextBodyID atomic.Uint64

// CollisionHandler receives a notification for every contact a body is
// involved in, once per contact per side, independently of whether the
// contact was physically resolved.
type CollisionHandler interface {
	HandleCollision(other *Body)
}

// CollisionShape pairs an exact shape with the circle bounding it. The
// bounding circle drives the time-of-impact solver and the swept-proxy
// builder; the exact shape drives the narrow phase.
type CollisionShape struct {
	shape    geometry.Shape
	bounding geometry.Circle
}

func NewCollisionShape(shape geometry.Shape) *CollisionShape {
	return &CollisionShape{
		shape:    shape,
		bounding: shape.BoundingCircle(),
	}
}

func (cs *CollisionShape) Shape() geometry.Shape {
	return cs.shape
}

func (cs *CollisionShape) BoundingCircle() geometry.Circle {
	return cs.bounding
}

func (cs *CollisionShape) recenter(p mgl64.Vec2) {
	cs.shape = cs.shape.CenterTo(p)
	cs.bounding = cs.shape.BoundingCircle()
}

// BodyDef describes a body to be created.
type BodyDef struct {
	Shape    *CollisionShape
	Velocity mgl64.Vec2
	Mass     float64
	Static   bool

	// Intangible bodies still report contacts through their handler but
	// never take part in the velocity exchange.
	Intangible bool

	Handler CollisionHandler
}

// Body is a simulated rigid body. Bodies carry a process-wide unique ID
// so pair ordering and queue tie-breaks are deterministic and
// independent of memory addresses.
type Body struct {
	id       uint64
	shape    *CollisionShape
	velocity mgl64.Vec2
	mass     float64
	static   bool
	tangible bool
	handler  CollisionHandler
}

func NewBody(def BodyDef) *Body {
	mass := def.Mass
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		id:       nextBodyID.Add(1),
		shape:    def.Shape,
		velocity: def.Velocity,
		mass:     mass,
		static:   def.Static,
		tangible: !def.Intangible,
		handler:  def.Handler,
	}
}

func (b *Body) ID() uint64 { return b.id }

func (b *Body) Shape() *CollisionShape { return b.shape }

func (b *Body) Position() mgl64.Vec2 { return b.shape.BoundingCircle().Center }

func (b *Body) Velocity() mgl64.Vec2 { return b.velocity }

func (b *Body) SetVelocity(v mgl64.Vec2) { b.velocity = v }

func (b *Body) Mass() float64 { return b.mass }

func (b *Body) IsStatic() bool { return b.static }

func (b *Body) IsTangible() bool { return b.tangible }

func (b *Body) SetCollisionHandler(h CollisionHandler) { b.handler = h }

func (b *Body) BoundingCircle() geometry.Circle { return b.shape.BoundingCircle() }

// BoundingRect makes Body indexable by a spatial.Structure.
func (b *Body) BoundingRect() geometry.Rectangle { return b.shape.Shape().BoundingRect() }

// PredictPosition returns the body's position after dt at its current
// velocity. It has no side effects.
func (b *Body) PredictPosition(dt float64) mgl64.Vec2 {
	return b.Position().Add(b.velocity.Mul(dt))
}

// MoveTo teleports the body. It is meant for callers outside the
// collision core; the core itself never invokes it.
func (b *Body) MoveTo(p mgl64.Vec2) {
	b.shape.recenter(p)
}

// Update advances the body by dt, integrating position from velocity.
func (b *Body) Update(dt float64) {
	if b.static {
		return
	}
	b.shape.recenter(b.PredictPosition(dt))
}

func (b *Body) notifyCollision(other *Body) {
	if b.handler != nil {
		b.handler.HandleCollision(other)
	}
}
