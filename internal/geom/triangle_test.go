package geom

import (
	"math"
	"testing"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

func flatTriangle() *Triangle {
	n := vecmath.NewVector(0, 0, 1)
	return NewTriangle(
		vecmath.NewVector(0, 0, 0), vecmath.NewVector(1, 0, 0), vecmath.NewVector(0, 1, 0),
		n, n, n,
		nil, nil, false,
		0, 0, 0, 0, 0, 0,
		DefaultMaterial(),
	)
}

func TestTriangle_Intersect(t *testing.T) {
	tri := flatTriangle()

	t.Run("hits the interior", func(t *testing.T) {
		r := vecmath.NewRay(vecmath.NewPoint(0.2, 0.2, 5), vecmath.NewVector(0, 0, -1))
		got := tri.Intersect(r)
		if got.IsEmpty() {
			t.Fatal("expected a hit inside the triangle")
		}
		if math.Abs(got.T()-5) > 1e-9 {
			t.Errorf("T() = %v, want 5", got.T())
		}
	})

	t.Run("misses outside the triangle", func(t *testing.T) {
		r := vecmath.NewRay(vecmath.NewPoint(5, 5, 5), vecmath.NewVector(0, 0, -1))
		if got := tri.Intersect(r); !got.IsEmpty() {
			t.Errorf("expected no hit outside the triangle, got T()=%v", got.T())
		}
	})

	t.Run("rejects an edge-exact hit", func(t *testing.T) {
		// (0.5, 0, z) lies exactly on the P1-P2 edge, where bary[2] == 0.
		r := vecmath.NewRay(vecmath.NewPoint(0.5, 0, 5), vecmath.NewVector(0, 0, -1))
		if got := tri.Intersect(r); !got.IsEmpty() {
			t.Errorf("expected an edge-exact hit to be rejected, got T()=%v", got.T())
		}
	})
}

func TestTriangle_BoundingBox(t *testing.T) {
	tri := flatTriangle()
	box := tri.BoundingBox()
	want := NewAABB(vecmath.NewVector(0, 0, 0), vecmath.NewVector(1, 1, 0))
	if box.Min != want.Min || box.Max != want.Max {
		t.Errorf("BoundingBox() = %+v, want %+v", box, want)
	}
}

func TestTriangle_DiffuseColor_UVTransposition(t *testing.T) {
	// A 2-wide, 3-tall grid; a distinctive texel lets the test pin down
	// which axis is read as row vs. column.
	pixels := make([]byte, 3*2*3)
	// texel at row=2, col=0 (bottom-left) is (10, 20, 30).
	offset := 3 * (2*2 + 0)
	pixels[offset], pixels[offset+1], pixels[offset+2] = 10, 20, 30

	grid := NewTexelGrid(2, 3, pixels)

	n := vecmath.NewVector(0, 0, 1)
	tri := NewTriangle(
		vecmath.NewVector(0, 0, 0), vecmath.NewVector(1, 0, 0), vecmath.NewVector(0, 1, 0),
		n, n, n,
		grid, nil, true,
		1, 0, 0, 0, 0, 0,
		DefaultMaterial(),
	)

	// At P1, bary = (1,0,0) so u=U1=1, v=V1=0.
	// row = int(u*Height) = int(1*3) = 3 -> clamped to 2 (last row).
	// col = int(v*Width) = int(0*2) = 0.
	// This is exactly the texel set above, confirming u indexes height and
	// v indexes width.
	p := vecmath.NewPoint(0, 0, 0).WithBary([3]float64{1, 0, 0})
	got := tri.DiffuseColor(p)
	want := vecmath.Vector{X: 10.0 / 256, Y: 20.0 / 256, Z: 30.0 / 256}
	if !approxEqual(got, want, 1e-9) {
		t.Errorf("DiffuseColor() = %v, want %v", got, want)
	}
}

func TestTriangle_DiffuseColor_FallsBackWithoutTexture(t *testing.T) {
	tri := flatTriangle()
	tri.material.Diffuse = vecmath.NewVector(0.1, 0.2, 0.3)
	p := vecmath.NewPoint(0, 0, 0)
	if got := tri.DiffuseColor(p); got != tri.material.Diffuse {
		t.Errorf("DiffuseColor() = %v, want material default %v", got, tri.material.Diffuse)
	}
}
