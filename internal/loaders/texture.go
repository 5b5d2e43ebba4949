// Package loaders decodes external assets -- texture images and triangle
// meshes -- into the plain in-memory types internal/geom consumes. Nothing
// under internal/geom, internal/bvh, internal/tracer, or internal/render
// imports this package; it sits at the driver boundary, where file I/O can
// fail and the standard errors idiom applies.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/White-Link/pathtracer/internal/geom"
)

// LoadTexture decodes r (auto-detecting PNG, JPEG, BMP, or TIFF from the
// registered image.Decode codecs) into a geom.TexelGrid of 8-bit RGB texels.
func LoadTexture(r io.Reader) (*geom.TexelGrid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode texture: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 3*width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			offset := 3 * (y*width + x)
			pixels[offset] = byte(r16 >> 8)
			pixels[offset+1] = byte(g16 >> 8)
			pixels[offset+2] = byte(b16 >> 8)
		}
	}

	return geom.NewTexelGrid(width, height, pixels), nil
}
