package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/CaMMelo/gaming-framework/geometry"
	"github.com/CaMMelo/gaming-framework/physics"
	"github.com/CaMMelo/gaming-framework/spatial"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const tickSeconds = 1.0 / 60.0

type Game struct {
	scene     Scene
	scenePath string
	useGrid   bool
	debug     bool

	world *physics.World
	balls []*Ball

	reload chan Scene
}

func NewGame(scene Scene, scenePath string, useGrid, debug bool) *Game {
	g := &Game{
		scene:     scene,
		scenePath: scenePath,
		useGrid:   useGrid,
		debug:     debug,
		reload:    make(chan Scene, 1),
	}
	g.build()
	return g
}

// build creates the world from the current scene: one quadtree (or grid)
// holding a columns-by-rows arrangement of balls with random radii and
// velocities.
func (g *Game) build() {
	area := geometry.Rectangle{
		TopLeft:     mgl64.Vec2{0, g.scene.Height},
		BottomRight: mgl64.Vec2{g.scene.Width, 0},
	}

	var index spatial.Structure
	if g.useGrid {
		index = spatial.NewGrid(g.scene.MaxRadius * 4)
	} else {
		index = spatial.NewQuadTree(area)
	}

	rng := rand.New(rand.NewSource(g.scene.Seed))
	cellW := g.scene.Width / float64(g.scene.Columns)
	cellH := g.scene.Height / float64(g.scene.Rows)

	g.balls = g.balls[:0]
	for col := 0; col < g.scene.Columns; col++ {
		for row := 0; row < g.scene.Rows; row++ {
			center := mgl64.Vec2{
				float64(col)*cellW + cellW/2,
				float64(row)*cellH + cellH/2,
			}
			radius := g.scene.MinRadius + rng.Float64()*(g.scene.MaxRadius-g.scene.MinRadius)

			body := physics.NewBody(physics.BodyDef{
				Shape:    physics.NewCollisionShape(geometry.Circle{Center: center, Radius: radius}),
				Velocity: g.randomVelocity(rng, radius),
				Mass:     radius,
			})
			index.Insert(body)
			g.balls = append(g.balls, NewBall(body, g.scene.Width, g.scene.Height))
		}
	}

	g.world = physics.NewWorld(area, index)
}

func (g *Game) randomVelocity(rng *rand.Rand, radius float64) mgl64.Vec2 {
	speed := func() float64 {
		s := g.scene.SpeedMin + rng.Float64()*(g.scene.SpeedMax-g.scene.SpeedMin)
		s = s / radius * g.scene.SpeedFactor
		if rng.Intn(2) == 0 {
			return -s
		}
		return s
	}
	return mgl64.Vec2{speed(), speed()}
}

func (g *Game) Update() error {
	select {
	case scene := <-g.reload:
		g.scene = scene
		g.build()
		log.Printf("moving-balls: scene reloaded from %s", g.scenePath)
	default:
	}

	g.world.Update(tickSeconds)
	for _, ball := range g.balls {
		ball.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, ball := range g.balls {
		ball.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"balls: %d    visible: %d    FPS: %.1f",
			len(g.balls), len(g.world.VisibleBodies()), ebiten.ActualFPS(),
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Width), int(g.scene.Height)
}
