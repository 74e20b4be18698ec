package main

import (
	"strings"
	"testing"
)

func TestParseSceneAppliesDefaults(t *testing.T) {
	scene, err := ParseScene([]byte("width: 640\n"))
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	if scene.Width != 640 {
		t.Errorf("Width = %v, want 640", scene.Width)
	}
	if scene.Height != 240 || scene.Columns != 6 || scene.Rows != 5 {
		t.Errorf("defaults not applied: %+v", scene)
	}
	if scene.SpeedFactor != 0.25 {
		t.Errorf("SpeedFactor = %v, want 0.25", scene.SpeedFactor)
	}
}

func TestParseSceneRejectsInvalidYAML(t *testing.T) {
	if _, err := ParseScene([]byte("width: [not a number")); err == nil {
		t.Fatal("ParseScene accepted malformed YAML")
	}
}

func TestParseSceneRejectsInvertedRadii(t *testing.T) {
	_, err := ParseScene([]byte("min_radius: 10\nmax_radius: 5\n"))
	if err == nil || !strings.Contains(err.Error(), "max_radius") {
		t.Fatalf("ParseScene error = %v, want max_radius complaint", err)
	}
}

func TestParseSceneRejectsOversizedBalls(t *testing.T) {
	_, err := ParseScene([]byte("width: 60\nheight: 50\nmax_radius: 20\n"))
	if err == nil {
		t.Fatal("ParseScene accepted balls bigger than a grid cell")
	}
}

func TestDefaultSceneIsValid(t *testing.T) {
	scene := DefaultScene()
	if scene.Width != 320 || scene.Height != 240 {
		t.Errorf("embedded scene = %+v", scene)
	}
	if scene.Seed != 42 {
		t.Errorf("Seed = %v, want 42", scene.Seed)
	}
}
