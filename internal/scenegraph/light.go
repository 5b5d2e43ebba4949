package scenegraph

import "github.com/White-Link/pathtracer/internal/vecmath"

// Light is a punctual light source: a position and an RGB intensity in
// watts per unit solid angle, per channel.
type Light struct {
	Source    vecmath.Vector
	Intensity vecmath.Vector
}

// NewLight builds a Light.
func NewLight(source, intensity vecmath.Vector) Light {
	return Light{Source: source, Intensity: intensity}
}
