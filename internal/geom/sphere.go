package geom

import (
	"math"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

// Sphere is a closed volume defined by a center and radius. Both real roots
// of the intersection quadratic are computed and tagged front/back-facing
// before the nearest-merge, rather than stopping at the discriminant sign,
// so a ray that starts inside the sphere still resolves correctly.
type Sphere struct {
	Center   vecmath.Vector
	Radius   float64
	material Material
}

// NewSphere builds a Sphere.
func NewSphere(center vecmath.Vector, radius float64, material Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, material: material}
}

// Intersect solves for the two roots of the sphere's quadratic and merges
// them, tagging the farther root (the exit point) as back-facing and
// the nearer root (the surface the ray actually first touches when
// entering from outside) as front-facing.
func (s *Sphere) Intersect(r vecmath.Ray) Intersection {
	d := r.Direction
	o := r.Origin.Vector
	b := d.Dot(o.Sub(s.Center))
	delta := 4 * (b*b - s.Center.Sub(o).NormSquared() + s.Radius*s.Radius)
	if delta < 0 {
		return EmptyIntersection()
	}
	sq := math.Sqrt(delta)
	t1 := (-2*b + sq) / 2
	t2 := (-2*b - sq) / 2
	i1 := NewIntersection(t1, false, s)
	i2 := NewIntersection(t2, true, s)
	return NearestMerge(i1, i2)
}

// Normal returns the unit outward normal at p, flipped inward when p lies
// strictly inside the sphere (the ray originated from inside, as when
// continuing through a refracting sphere).
func (s *Sphere) Normal(p vecmath.Point) vecmath.Vector {
	d := p.Vector.Sub(s.Center)
	inside := d.NormSquared() < s.Radius*s.Radius
	n := d.Normalized()
	if inside {
		return n.Negate()
	}
	return n
}

// BoundingBox returns the sphere's axis-aligned bounding box: center +/- r
// on every axis.
func (s *Sphere) BoundingBox() AABB {
	offset := vecmath.Vector{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return NewAABB(s.Center.Add(offset), s.Center.Sub(offset))
}

// Material returns the sphere's material.
func (s *Sphere) Material() Material { return s.material }

// IsFlat is false: a sphere has nonzero volume.
func (s *Sphere) IsFlat() bool { return false }

// DiffuseColor returns the material's diffuse color; spheres never carry a
// texture in this renderer.
func (s *Sphere) DiffuseColor(p vecmath.Point) vecmath.Vector { return s.material.Diffuse }

// SpecularColor returns the material's specular color.
func (s *Sphere) SpecularColor(p vecmath.Point) vecmath.Vector { return s.material.Specular }
