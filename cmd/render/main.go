// Command render is the command-line driver for the path tracer: it builds
// a demo scene, runs the pixel loop, and writes the result as a PNG. The
// core renderer itself has no command-line surface; this package is the
// thin application wrapping it, in the style of a urfave/cli-based render
// driver with global verbosity flags feeding a leveled logger.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/urfave/cli"

	"github.com/White-Link/pathtracer/internal/log"
	"github.com/White-Link/pathtracer/internal/render"
	"github.com/White-Link/pathtracer/internal/tracer"
)

var logger = log.New("render")

func main() {
	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render a scene with a Monte-Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v", Usage: "enable verbose logging"},
		cli.BoolFlag{Name: "vv", Usage: "enable debug logging"},
		cli.StringFlag{Name: "scene", Value: "default", Usage: "built-in scene: default or cornell"},
		cli.IntFlag{Name: "width", Value: 400, Usage: "image width in pixels"},
		cli.IntFlag{Name: "height", Value: 300, Usage: "image height in pixels"},
		cli.IntFlag{Name: "samples", Value: 32, Usage: "samples per pixel"},
		cli.IntFlag{Name: "depth", Value: 6, Usage: "maximum recursion depth"},
		cli.BoolFlag{Name: "aa", Usage: "enable Gaussian-jitter anti-aliasing"},
		cli.Float64Flag{Name: "gamma", Value: 2.2, Usage: "gamma-correction exponent"},
		cli.IntFlag{Name: "workers", Value: 0, Usage: "render goroutines (0 = NumCPU)"},
		cli.BoolFlag{Name: "progress", Usage: "emit a progress indicator while rendering"},
		cli.StringFlag{Name: "out", Value: "render.png", Usage: "output PNG path"},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}
		if ctx.Bool("vv") {
			log.SetLevel(log.Debug)
		}
		return nil
	}
	app.Action = renderAction

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("render failed: %v", err)
		os.Exit(1)
	}
}

func renderAction(ctx *cli.Context) error {
	width, height := ctx.Int("width"), ctx.Int("height")

	scene, err := buildScene(ctx.String("scene"), width, height)
	if err != nil {
		return err
	}

	opts := render.Options{
		MaxDepth:     ctx.Int("depth"),
		Samples:      ctx.Int("samples"),
		AntiAliasing: ctx.Bool("aa"),
		Progress:     ctx.Bool("progress"),
		Workers:      ctx.Int("workers"),
		Gamma:        ctx.Float64("gamma"),
	}

	logger.Infof("rendering %q at %dx%d, %d samples, depth %d", ctx.String("scene"), width, height, opts.Samples, opts.MaxDepth)
	render.Render(scene, tracer.New(scene), opts)

	out := ctx.String("out")
	if err := writePNG(out, scene.Buffer(), width, height); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Noticef("wrote %s", out)
	return nil
}

// writePNG encodes the scene's three-plane RGB byte buffer as a PNG,
// converting between the core's plane-major layout and the stdlib's
// per-pixel image.NRGBA layout.
func writePNG(path string, buffer []byte, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	plane := width * height
	for i := 0; i < plane; i++ {
		img.Pix[4*i] = buffer[i]
		img.Pix[4*i+1] = buffer[plane+i]
		img.Pix[4*i+2] = buffer[2*plane+i]
		img.Pix[4*i+3] = 255
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
