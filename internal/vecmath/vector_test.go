package vecmath

import (
	"math"
	"testing"
)

func approxEqual(a, b Vector, tolerance float64) bool {
	return a.Sub(b).Norm() <= tolerance
}

func TestVector_Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
	}{
		{"orthogonal", NewVector(1, 0, 0), NewVector(0, 1, 0), 0},
		{"parallel", NewVector(2, 0, 0), NewVector(3, 0, 0), 6},
		{"general", NewVector(1, 2, 3), NewVector(4, 5, 6), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); got != tt.expected {
				t.Errorf("Dot() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVector_Cross(t *testing.T) {
	x := NewVector(1, 0, 0)
	y := NewVector(0, 1, 0)
	z := NewVector(0, 0, 1)

	if !approxEqual(x.Cross(y), z, 1e-12) {
		t.Errorf("X x Y = %v, want %v", x.Cross(y), z)
	}
	if !approxEqual(y.Cross(x), z.Negate(), 1e-12) {
		t.Errorf("Y x X = %v, want %v", y.Cross(x), z.Negate())
	}
}

func TestVector_Normalized(t *testing.T) {
	v := NewVector(3, 4, 0)
	n := v.Normalized()
	if math.Abs(n.Norm()-1) > 1e-12 {
		t.Errorf("Normalized() norm = %v, want 1", n.Norm())
	}

	zero := Vector{}
	if got := zero.Normalized(); got != zero {
		t.Errorf("Normalized() of zero vector = %v, want zero unchanged", got)
	}
}

func TestVector_Orthogonal(t *testing.T) {
	tests := []Vector{
		NewVector(1, 0, 0),
		NewVector(0, 1, 0),
		NewVector(0, 0, 1),
		NewVector(1, 1, 1).Normalized(),
		NewVector(-1, 0.2, 0.3).Normalized(),
	}
	for _, v := range tests {
		e1 := v.Orthogonal()
		if math.Abs(e1.Dot(v)) > 1e-9 {
			t.Errorf("Orthogonal(%v) = %v is not perpendicular (dot=%v)", v, e1, e1.Dot(v))
		}
		if math.Abs(e1.Norm()-1) > 1e-9 {
			t.Errorf("Orthogonal(%v) = %v is not unit length", v, e1)
		}
	}
}

func TestPoint_WithBary(t *testing.T) {
	p := NewPoint(1, 2, 3)
	if p.Bary != [3]float64{1, 0, 0} {
		t.Fatalf("default bary = %v, want (1,0,0)", p.Bary)
	}

	q := p.WithBary([3]float64{0.2, 0.3, 0.5})
	if q.Bary != [3]float64{0.2, 0.3, 0.5} {
		t.Errorf("WithBary did not set coordinates: got %v", q.Bary)
	}
	if q.Vector != p.Vector {
		t.Errorf("WithBary changed position: got %v, want %v", q.Vector, p.Vector)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewPoint(0, 0, 0), NewVector(0, 0, -2))
	got := r.At(1)
	// direction is normalized to (0,0,-1), then shrunk by (1-epsilon).
	want := NewVector(0, 0, -(1 - epsilon))
	if !approxEqual(got.Vector, want, 1e-12) {
		t.Errorf("At(1) = %v, want %v", got.Vector, want)
	}
}

func TestRay_At_StopsShortOfSurface(t *testing.T) {
	r := NewRay(NewPoint(0, 0, 0), NewVector(1, 0, 0))
	p := r.At(5)
	if p.X >= 5 {
		t.Errorf("At(5).X = %v, want strictly less than 5 (epsilon shrink)", p.X)
	}
}
