package geom

import "github.com/White-Link/pathtracer/internal/vecmath"

// Plane is an infinite flat primitive defined by a point and a normal.
type Plane struct {
	Point    vecmath.Vector
	Normal_  vecmath.Vector
	material Material
}

// NewPlane builds a Plane.
func NewPlane(point, normal vecmath.Vector, material Material) *Plane {
	return &Plane{Point: point, Normal_: normal.Normalized(), material: material}
}

// Intersect solves the plane equation for t; a ray parallel to the plane
// (dp == 0) never hits it.
func (p *Plane) Intersect(r vecmath.Ray) Intersection {
	dp := r.Direction.Dot(p.Normal_)
	if dp == 0 {
		return EmptyIntersection()
	}
	t := -(r.Origin.Vector.Sub(p.Point).Dot(p.Normal_)) / dp
	front := p.Normal_.Dot(r.Direction) < 0
	return NewIntersection(t, front, p)
}

// Normal returns the plane's unit normal, flipped so that it faces p (i.e.
// (p - point) . n >= 0).
func (p *Plane) Normal(at vecmath.Point) vecmath.Vector {
	n := p.Normal_.Normalized()
	if at.Vector.Sub(p.Point).Dot(n) < 0 {
		return n.Negate()
	}
	return n
}

// BoundingBox returns the +/-infinity box on every axis.
func (p *Plane) BoundingBox() AABB {
	return InfiniteAABB()
}

// Material returns the plane's material.
func (p *Plane) Material() Material { return p.material }

// IsFlat is true: a plane has null volume.
func (p *Plane) IsFlat() bool { return true }

// DiffuseColor returns the material's diffuse color; planes never carry a
// texture.
func (p *Plane) DiffuseColor(at vecmath.Point) vecmath.Vector { return p.material.Diffuse }

// SpecularColor returns the material's specular color.
func (p *Plane) SpecularColor(at vecmath.Point) vecmath.Vector { return p.material.Specular }
