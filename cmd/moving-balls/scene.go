package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_scene.yaml
var defaultSceneYAML []byte

// Scene describes the demo world: a columns-by-rows grid of balls with
// random radii and speeds bouncing inside a width-by-height area.
type Scene struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`

	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	// Ball speed is drawn from [speed_min, speed_max], divided by the
	// ball's radius and scaled by speed_factor, so small balls fly
	// faster than big ones.
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	SpeedFactor float64 `yaml:"speed_factor"`

	Seed int64 `yaml:"seed"`
}

func DefaultScene() Scene {
	scene, err := ParseScene(defaultSceneYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default scene is invalid: %v", err))
	}
	return scene
}

func LoadScene(path string) (Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	return ParseScene(b)
}

func ParseScene(b []byte) (Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(b, &scene); err != nil {
		return Scene{}, fmt.Errorf("parsing scene: %w", err)
	}
	scene.applyDefaults()
	if err := scene.validate(); err != nil {
		return Scene{}, err
	}
	return scene, nil
}

func (s *Scene) applyDefaults() {
	if s.Width <= 0 {
		s.Width = 320
	}
	if s.Height <= 0 {
		s.Height = 240
	}
	if s.Columns <= 0 {
		s.Columns = 6
	}
	if s.Rows <= 0 {
		s.Rows = 5
	}
	if s.MinRadius <= 0 {
		s.MinRadius = 5
	}
	if s.MaxRadius <= 0 {
		s.MaxRadius = 10
	}
	if s.SpeedMin <= 0 {
		s.SpeedMin = 500
	}
	if s.SpeedMax <= 0 {
		s.SpeedMax = 600
	}
	if s.SpeedFactor <= 0 {
		s.SpeedFactor = 0.25
	}
}

func (s *Scene) validate() error {
	if s.MaxRadius < s.MinRadius {
		return fmt.Errorf("scene: max_radius %v smaller than min_radius %v", s.MaxRadius, s.MinRadius)
	}
	if s.SpeedMax < s.SpeedMin {
		return fmt.Errorf("scene: speed_max %v smaller than speed_min %v", s.SpeedMax, s.SpeedMin)
	}
	cellW := s.Width / float64(s.Columns)
	cellH := s.Height / float64(s.Rows)
	if s.MaxRadius*2 > cellW || s.MaxRadius*2 > cellH {
		return fmt.Errorf("scene: balls of radius %v do not fit a %vx%v grid cell", s.MaxRadius, cellW, cellH)
	}
	return nil
}
