package geom

import (
	"math"

	"github.com/White-Link/pathtracer/internal/vecmath"
)

// AABB is an axis-aligned bounding box. It serves double duty: as the BVH's
// traversal helper, and as a first-class Primitive in its own right, so its
// Intersect returns a full front/back-facing hit record (the nearest-merge
// of the slab test's entry and exit parameters) rather than a plain bool.
type AABB struct {
	Min, Max vecmath.Vector
	material Material
}

// NewAABB builds an AABB from two extremal corners, in either order.
func NewAABB(p1, p2 vecmath.Vector) AABB {
	min := vecmath.Vector{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y), Z: math.Min(p1.Z, p2.Z)}
	max := vecmath.Vector{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y), Z: math.Max(p1.Z, p2.Z)}
	return AABB{Min: min, Max: max, material: DefaultMaterial()}
}

// InfiniteAABB returns the unbounded box on all axes, used by Plane's
// BoundingBox.
func InfiniteAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: vecmath.Vector{X: -inf, Y: -inf, Z: -inf}, Max: vecmath.Vector{X: inf, Y: inf, Z: inf}}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: vecmath.Vector{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: vecmath.Vector{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Centroid returns the component-wise mean of the box's two corners.
func (a AABB) Centroid() vecmath.Vector {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Axis returns the box's extent along the given axis (0=X, 1=Y, 2=Z).
func (a AABB) Axis(axis int) float64 {
	switch axis {
	case 0:
		return a.Max.X - a.Min.X
	case 1:
		return a.Max.Y - a.Min.Y
	default:
		return a.Max.Z - a.Min.Z
	}
}

// CentroidAxis returns the centroid's coordinate along the given axis,
// used by the BVH build's median split.
func (a AABB) CentroidAxis(axis int) float64 {
	c := a.Centroid()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Intersect implements the classic slab test: per-axis entry/exit
// parameters from the inverse ray direction, intersected across axes. The
// result is the nearest-merge of the entry hit (front-facing) and the exit
// hit (back-facing).
func (a AABB) Intersect(r vecmath.Ray) Intersection {
	tEnter, tExit := math.Inf(-1), math.Inf(1)

	axes := [3]struct{ min, max, origin, dir float64 }{
		{a.Min.X, a.Max.X, r.Origin.X, r.Direction.X},
		{a.Min.Y, a.Max.Y, r.Origin.Y, r.Direction.Y},
		{a.Min.Z, a.Max.Z, r.Origin.Z, r.Direction.Z},
	}
	for _, ax := range axes {
		if ax.dir == 0 {
			if ax.origin < ax.min || ax.origin > ax.max {
				return EmptyIntersection()
			}
			continue
		}
		inv := 1 / ax.dir
		t1 := (ax.min - ax.origin) * inv
		t2 := (ax.max - ax.origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
	}
	if tEnter > tExit {
		return EmptyIntersection()
	}
	enter := NewIntersection(tEnter, true, a)
	exit := NewIntersection(tExit, false, a)
	return NearestMerge(enter, exit)
}

// Normal is unreachable in practice: an AABB used standalone as a scene
// primitive is a debugging aid, not something any shading path actually
// hits. It returns the outward normal of the nearest face, preserved for
// interface completeness.
func (a AABB) Normal(p vecmath.Point) vecmath.Vector {
	c := a.Centroid()
	d := p.Vector.Sub(c)
	size := a.Max.Sub(a.Min).Scale(0.5)
	ax, ay, az := math.Abs(d.X/size.X), math.Abs(d.Y/size.Y), math.Abs(d.Z/size.Z)
	switch {
	case ax >= ay && ax >= az:
		return vecmath.Vector{X: math.Copysign(1, d.X)}
	case ay >= az:
		return vecmath.Vector{Y: math.Copysign(1, d.Y)}
	default:
		return vecmath.Vector{Z: math.Copysign(1, d.Z)}
	}
}

// BoundingBox returns the AABB itself.
func (a AABB) BoundingBox() AABB { return a }

// Material returns the AABB's material (the default; AABBs are not
// rendered with a custom material in practice).
func (a AABB) Material() Material { return a.material }

// IsFlat is false: an AABB is a closed volume.
func (a AABB) IsFlat() bool { return false }

// DiffuseColor returns the material's diffuse color; AABBs never carry a
// texture.
func (a AABB) DiffuseColor(p vecmath.Point) vecmath.Vector { return a.material.Diffuse }

// SpecularColor returns the material's specular color.
func (a AABB) SpecularColor(p vecmath.Point) vecmath.Vector { return a.material.Specular }
