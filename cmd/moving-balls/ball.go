package main

import (
	"image/color"

	"github.com/CaMMelo/gaming-framework/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ballWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ballRed   = color.RGBA{R: 0xff, A: 0xff}
)

// Ball wraps a body and flashes between white and red on every contact.
type Ball struct {
	body  *physics.Body
	color color.RGBA

	areaWidth  float64
	areaHeight float64
}

func NewBall(body *physics.Body, areaWidth, areaHeight float64) *Ball {
	ball := &Ball{
		body:       body,
		color:      ballWhite,
		areaWidth:  areaWidth,
		areaHeight: areaHeight,
	}
	body.SetCollisionHandler(ball)
	return ball
}

func (ball *Ball) HandleCollision(other *physics.Body) {
	if ball.color == ballWhite {
		ball.color = ballRed
	} else {
		ball.color = ballWhite
	}
}

// Update bounces the ball off the area walls and clamps it back inside.
// Wall handling lives outside the collision core on purpose: walls are
// application behavior, not bodies.
func (ball *Ball) Update() {
	pos := ball.body.Position()
	vel := ball.body.Velocity()
	radius := ball.body.BoundingCircle().Radius

	if pos.X()+radius >= ball.areaWidth || pos.X()-radius <= 0 {
		vel = mgl64.Vec2{-vel.X(), vel.Y()}
	}
	if pos.Y()+radius >= ball.areaHeight || pos.Y()-radius <= 0 {
		vel = mgl64.Vec2{vel.X(), -vel.Y()}
	}
	if vel != ball.body.Velocity() {
		ball.body.SetVelocity(vel)
	}

	clamped := mgl64.Vec2{
		clamp(pos.X(), radius, ball.areaWidth-radius),
		clamp(pos.Y(), radius, ball.areaHeight-radius),
	}
	if clamped != pos {
		ball.body.MoveTo(clamped)
	}
}

func (ball *Ball) Draw(screen *ebiten.Image) {
	pos := ball.body.Position()
	radius := ball.body.BoundingCircle().Radius
	vector.StrokeCircle(
		screen,
		float32(pos.X()), float32(pos.Y()), float32(radius),
		1, ball.color, true,
	)
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
