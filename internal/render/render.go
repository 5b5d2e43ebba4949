// Package render drives the data-parallel pixel loop: row-grain dynamic
// scheduling across goroutines, Gaussian-jitter anti-aliasing, gamma
// encoding to 8-bit RGB, and an optional progress indicator. Rows, not
// tiles, are the unit of scheduling: a shared channel of row indices lets
// idle workers pull the next row as soon as they finish one, rather than
// waiting on a fixed per-worker partition.
package render

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/White-Link/pathtracer/internal/scenegraph"
	"github.com/White-Link/pathtracer/internal/tracer"
	"github.com/White-Link/pathtracer/internal/vecmath"
)

// Options configures a render pass.
type Options struct {
	// MaxDepth bounds the path tracer's recursion depth.
	MaxDepth int
	// Samples is the samples-per-pixel (and per-branch) count.
	Samples int
	// AntiAliasing enables Box-Muller-style Gaussian sub-pixel jitter.
	AntiAliasing bool
	// Progress enables the shared progress counter and its reporter.
	Progress bool
	// Workers is the number of goroutines to schedule rows across. Zero
	// or negative means runtime.NumCPU().
	Workers int
	// Gamma overrides the scene's gamma-correction exponent for this
	// render. Zero leaves the scene's own setting untouched.
	Gamma float64
}

// Render fills scene's image buffer by evaluating every pixel through t,
// scheduling rows across a dynamic, grain-1 pool of goroutines. It blocks
// until every pixel has been written.
func Render(scene *scenegraph.Scene, t *tracer.Tracer, opts Options) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if opts.Gamma != 0 {
		scene.SetGamma(opts.Gamma)
	}

	var reporter *Progress
	if opts.Progress {
		reporter = NewProgress(scene.Camera.Height * scene.Camera.Width)
	}

	rows := make(chan int, scene.Camera.Height)
	for i := 0; i < scene.Camera.Height; i++ {
		rows <- i
	}
	close(rows)

	var wg sync.WaitGroup
	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := scene.RNGFor(workerID)
			for row := range rows {
				renderRow(scene, t, opts, row, rng, reporter)
			}
		}(workerID)
	}
	wg.Wait()

	if reporter != nil {
		reporter.Done()
	}
}

func renderRow(scene *scenegraph.Scene, t *tracer.Tracer, opts Options, row int, rng *rand.Rand, reporter *Progress) {
	width := scene.Camera.Width
	for col := 0; col < width; col++ {
		color := pixelColor(scene, t, opts, row, col, rng)
		r, g, b := gammaEncode(color, scene.Gamma)
		scene.SetPixel(row, col, r, g, b)
		if reporter != nil {
			reporter.Increment()
		}
	}
}

// pixelColor evaluates the color seen at pixel (i, j) under one of two
// sampling strategies: a single evaluation carrying all N samples when
// anti-aliasing is off (or has nothing to jitter), or N jittered
// single-sample evaluations averaged together when it is on.
func pixelColor(scene *scenegraph.Scene, t *tracer.Tracer, opts Options, i, j int, rng *rand.Rand) vecmath.Vector {
	if !opts.AntiAliasing || opts.Samples <= 0 {
		ray := scene.Camera.Launch(i, j, 0, 0)
		return t.GetColor(ray, opts.MaxDepth, opts.Samples, 1, 1, rng)
	}

	accum := vecmath.Vector{}
	for k := 0; k < opts.Samples; k++ {
		di, dj := gaussianJitter(rng)
		ray := scene.Camera.Launch(i, j, di, dj)
		accum = accum.Add(t.GetColor(ray, opts.MaxDepth, 1, 1, 1, rng))
	}
	return accum.Scale(1 / float64(opts.Samples))
}

// gaussianJitter draws a Box-Muller-style bivariate jitter: R = sqrt(-2 ln
// x), returning (R cos(2 pi y) / 2, R sin(2 pi y) / 2).
func gaussianJitter(rng *rand.Rand) (di, dj float64) {
	x, y := rng.Float64(), rng.Float64()
	r := math.Sqrt(-2 * math.Log(x))
	di = r * math.Cos(2*math.Pi*y) * 0.5
	dj = r * math.Sin(2*math.Pi*y) * 0.5
	return di, dj
}

// gammaEncode converts a linear RGB color to gamma-corrected 8-bit bytes,
// clamping each channel to [0, 255]. NaN and negative-infinity channels
// (which can arise from a degenerate BRDF sample) clamp to 0 rather than
// propagating, since a NaN comparison is always false and falls through to
// the clamped floor.
func gammaEncode(c vecmath.Vector, gamma float64) (r, g, b byte) {
	return encodeChannel(c.X, gamma), encodeChannel(c.Y, gamma), encodeChannel(c.Z, gamma)
}

func encodeChannel(v, gamma float64) byte {
	if !(v > 0) {
		return 0
	}
	encoded := math.Floor(255 * math.Pow(v, 1/gamma))
	if !(encoded < 255) {
		return 255
	}
	return byte(encoded)
}
