package geom

import (
	"testing"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

type fakeIndex struct {
	hit   Intersection
	bounds AABB
}

func (f fakeIndex) NearestHit(r vecmath.Ray) Intersection { return f.hit }
func (f fakeIndex) Bounds() AABB                          { return f.bounds }

func TestMesh_Intersect_DelegatesToIndex(t *testing.T) {
	sphere := NewSphere(vecmath.Vector{}, 1, DefaultMaterial())
	want := NewIntersection(3, true, sphere)
	mesh := NewMesh(fakeIndex{hit: want}, DefaultMaterial())

	r := vecmath.NewRay(vecmath.NewPoint(0, 0, 5), vecmath.NewVector(0, 0, -1))
	got := mesh.Intersect(r)
	if got.IsEmpty() || got.T() != want.T() {
		t.Errorf("Intersect() = %+v, want delegate's hit %+v", got, want)
	}
}

func TestMesh_BoundingBox_DelegatesToIndex(t *testing.T) {
	bounds := NewAABB(vecmath.NewVector(0, 0, 0), vecmath.NewVector(1, 1, 1))
	mesh := NewMesh(fakeIndex{bounds: bounds}, DefaultMaterial())

	got := mesh.BoundingBox()
	if got.Min != bounds.Min || got.Max != bounds.Max {
		t.Errorf("BoundingBox() = %+v, want %+v", got, bounds)
	}
}

func TestMesh_IsFlat(t *testing.T) {
	mesh := NewMesh(fakeIndex{}, DefaultMaterial())
	if !mesh.IsFlat() {
		t.Error("IsFlat() = false, want true")
	}
}
