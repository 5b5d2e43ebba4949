package scenegraph

import (
	"math/rand"
	"time"

	"github.com/White-Link/pathtracer/internal/geom"
	"github.com/White-Link/pathtracer/internal/vecmath"
)

// Index is the nearest-hit query a Scene delegates to -- satisfied by
// *bvh.BVH in production and by bvh.NaiveList in tests that check
// traversal equivalence. Defined here rather than imported from the bvh
// package so that scenegraph does not need to depend on bvh at all; bvh
// only depends on geom.
type Index interface {
	NearestHit(r vecmath.Ray) geom.Intersection
}

// Scene owns the camera, the lights, the acceleration index, the output
// image buffer, and the RNG seed for the render. All of this is immutable
// once rendering starts except the buffer itself, which is written
// disjointly per pixel.
type Scene struct {
	Camera Camera
	Lights []Light
	Index  Index
	Gamma  float64

	// buffer is 3*Width*Height bytes, arranged as three consecutive
	// planes (R, G, B), row-major within each plane, with image row
	// (Height-1-i) holding logical row i -- i.e. already top-to-bottom.
	buffer []byte

	// seed is the base RNG seed for this render, drawn from a
	// high-resolution timestamp at construction. Per-goroutine engines
	// are derived from it plus a worker index (see RNGFor), rather than
	// sharing one engine across goroutines, to keep concurrent pixel
	// workers free of a shared-RNG data race.
	seed int64
}

// NewScene constructs a Scene over the given camera and acceleration index.
// Gamma defaults to 2.2; the RNG seed is drawn from the current time.
func NewScene(camera Camera, index Index) *Scene {
	return &Scene{
		Camera: camera,
		Index:  index,
		Gamma:  2.2,
		buffer: make([]byte, 3*camera.Width*camera.Height),
		seed:   time.Now().UnixNano(),
	}
}

// AddLight appends a light source to the scene.
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// SetGamma overrides the gamma-correction exponent applied at pixel
// write-out.
func (s *Scene) SetGamma(gamma float64) {
	s.Gamma = gamma
}

// SetSeed overrides the RNG base seed, for deterministic tests.
func (s *Scene) SetSeed(seed int64) {
	s.seed = seed
}

// RNGFor returns a pseudo-random generator for worker goroutine workerID,
// seeded deterministically from the scene's base seed and the worker index.
// Output is reproducible within a fixed thread partition, but changing the
// number of workers changes which pixels each engine's draws land on, and
// so changes the image -- an accepted tradeoff of per-thread engines.
func (s *Scene) RNGFor(workerID int) *rand.Rand {
	return rand.New(rand.NewSource(s.seed + int64(workerID)))
}

// Buffer returns the scene's output image buffer, for handing to an
// external encoder once rendering is complete.
func (s *Scene) Buffer() []byte {
	return s.buffer
}

// SetPixel writes the gamma-encoded byte triple for pixel (i, j) into the
// appropriate row and the three RGB planes, applying the (Height-1-i) row
// flip so image row 0 is the top scanline.
func (s *Scene) SetPixel(i, j int, r, g, b byte) {
	w, h := s.Camera.Width, s.Camera.Height
	row := h - 1 - i
	offset := row*w + j
	plane := w * h
	s.buffer[offset] = r
	s.buffer[plane+offset] = g
	s.buffer[2*plane+offset] = b
}
