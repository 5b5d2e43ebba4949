package geom

import (
	"math"
	"testing"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(vecmath.NewVector(0, 0, 0), 1, DefaultMaterial())

	tests := []struct {
		name      string
		origin    vecmath.Vector
		direction vecmath.Vector
		wantHit   bool
		wantT     float64
	}{
		{"straight on from outside", vecmath.NewVector(0, 0, 5), vecmath.NewVector(0, 0, -1), true, 4},
		{"miss", vecmath.NewVector(5, 5, 5), vecmath.NewVector(0, 0, -1), false, 0},
		{"tangent ray still counts as a hit", vecmath.NewVector(1, 0, 5), vecmath.NewVector(0, 0, -1), true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := vecmath.NewRay(vecmath.PointFromVector(tt.origin), tt.direction)
			got := sphere.Intersect(r)
			if got.IsEmpty() != !tt.wantHit {
				t.Fatalf("IsEmpty() = %v, want hit=%v", got.IsEmpty(), tt.wantHit)
			}
			if tt.wantHit && math.Abs(got.T()-tt.wantT) > 1e-9 {
				t.Errorf("T() = %v, want %v", got.T(), tt.wantT)
			}
		})
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(vecmath.NewVector(0, 0, 0), 1, DefaultMaterial())
	r := vecmath.NewRay(vecmath.NewPoint(0, 0, 0), vecmath.NewVector(0, 0, -1))
	got := sphere.Intersect(r)
	if got.IsEmpty() {
		t.Fatal("expected a hit on the far wall from inside the sphere")
	}
	if math.Abs(got.T()-1) > 1e-9 {
		t.Errorf("T() = %v, want 1", got.T())
	}
	if got.FrontFacing() {
		t.Error("exiting from inside should tag the hit as back-facing")
	}
}

func TestSphere_Normal(t *testing.T) {
	sphere := NewSphere(vecmath.NewVector(0, 0, 0), 2, DefaultMaterial())

	outside := vecmath.NewPoint(2, 0, 0)
	if got := sphere.Normal(outside); !approxEqual(got, vecmath.NewVector(1, 0, 0), 1e-9) {
		t.Errorf("Normal(outside) = %v, want (1,0,0)", got)
	}

	inside := vecmath.NewPoint(1, 0, 0)
	if got := sphere.Normal(inside); !approxEqual(got, vecmath.NewVector(-1, 0, 0), 1e-9) {
		t.Errorf("Normal(inside) = %v, want (-1,0,0) (flipped)", got)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(vecmath.NewVector(1, 2, 3), 0.5, DefaultMaterial())
	box := sphere.BoundingBox()
	want := NewAABB(vecmath.NewVector(0.5, 1.5, 2.5), vecmath.NewVector(1.5, 2.5, 3.5))
	if box.Min != want.Min || box.Max != want.Max {
		t.Errorf("BoundingBox() = %+v, want %+v", box, want)
	}
}
