// Package scenegraph holds the scene container, camera, and light types
// that the path tracer queries: everything immutable once the renderer
// starts, except the image buffer. Camera uses an origin/forward/up/fov
// parameterization with an integer-pixel launch contract, rather than a
// lower-left-corner viewport construction.
package scenegraph

import (
	"math"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

// Camera generates primary rays for a pinhole projection with optional
// sub-pixel jitter.
type Camera struct {
	Origin    vecmath.Vector
	forward   vecmath.Vector
	up        vecmath.Vector
	right     vecmath.Vector
	fov       float64
	Height    int
	Width     int
}

// NewCamera builds a Camera, normalizing forward and up (assumed mutually
// perpendicular) and deriving the right vector as up x forward.
func NewCamera(origin, forward, up vecmath.Vector, fovRadians float64, height, width int) Camera {
	forward = forward.Normalized()
	up = up.Normalized()
	return Camera{
		Origin:  origin,
		forward: forward,
		up:      up,
		right:   up.Cross(forward),
		fov:     fovRadians,
		Height:  height,
		Width:   width,
	}
}

// Launch builds the primary ray for pixel (i, j), perturbed by the
// sub-pixel jitter (di, dj). Row i=0 is the bottom scanline and j=0 is the
// left column; the caller is responsible for writing the resulting color
// to image row (Height - i - 1).
func (c Camera) Launch(i, j int, di, dj float64) vecmath.Ray {
	h := float64(c.Height)
	w := float64(c.Width)
	direction := c.right.Scale(float64(j) + dj - w/2 + 0.5).
		Add(c.up.Scale(float64(i) + di - h/2 + 0.5)).
		Add(c.forward.Scale(h / (2 * math.Tan(c.fov/2))))
	return vecmath.NewRay(vecmath.PointFromVector(c.Origin), direction)
}
