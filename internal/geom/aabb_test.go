package geom

import (
	"math"
	"testing"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

func TestAABB_Union(t *testing.T) {
	a := NewAABB(vecmath.NewVector(0, 0, 0), vecmath.NewVector(1, 1, 1))
	b := NewAABB(vecmath.NewVector(-1, 2, 0.5), vecmath.NewVector(0.5, 3, 2))
	u := a.Union(b)

	wantMin := vecmath.NewVector(-1, 0, 0)
	wantMax := vecmath.NewVector(1, 3, 2)
	if u.Min != wantMin || u.Max != wantMax {
		t.Errorf("Union() = {%v, %v}, want {%v, %v}", u.Min, u.Max, wantMin, wantMax)
	}
}

func TestAABB_Intersect(t *testing.T) {
	box := NewAABB(vecmath.NewVector(-1, -1, -1), vecmath.NewVector(1, 1, 1))

	tests := []struct {
		name      string
		origin    vecmath.Vector
		direction vecmath.Vector
		wantHit   bool
		wantT     float64
	}{
		{"straight through", vecmath.NewVector(0, 0, 5), vecmath.NewVector(0, 0, -1), true, 4},
		{"misses entirely", vecmath.NewVector(5, 5, 5), vecmath.NewVector(0, 0, -1), false, 0},
		{"axis-aligned outside slab", vecmath.NewVector(5, 0, 5), vecmath.NewVector(0, 0, -1), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := vecmath.NewRay(vecmath.PointFromVector(tt.origin), tt.direction)
			got := box.Intersect(r)
			if got.IsEmpty() != !tt.wantHit {
				t.Fatalf("IsEmpty() = %v, want hit=%v", got.IsEmpty(), tt.wantHit)
			}
			if tt.wantHit && math.Abs(got.T()-tt.wantT) > 1e-9 {
				t.Errorf("T() = %v, want %v", got.T(), tt.wantT)
			}
		})
	}
}

func TestAABB_CentroidAxis(t *testing.T) {
	box := NewAABB(vecmath.NewVector(0, 0, 0), vecmath.NewVector(2, 4, 6))
	tests := []struct {
		axis int
		want float64
	}{
		{0, 1},
		{1, 2},
		{2, 3},
	}
	for _, tt := range tests {
		if got := box.CentroidAxis(tt.axis); got != tt.want {
			t.Errorf("CentroidAxis(%d) = %v, want %v", tt.axis, got, tt.want)
		}
	}
}
