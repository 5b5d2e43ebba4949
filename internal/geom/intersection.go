// Package geom implements the geometric primitives (sphere, plane,
// triangle, AABB), their intersection contracts, and the material model
// that drives the path tracer. Intersection is a tagged-variant,
// merge-ordered record rather than a pointer-or-nil HitRecord, so that
// nearest-hit merging is a total, side-effect-free operator over values.
package geom

import "github.com/White-Link/pathtracer/internal/vecmath"

// Primitive is the back-reference target of an Intersection: any geometric
// shape exposing the three pure, side-effect-free operations every tracer
// query relies on.
type Primitive interface {
	// Intersect computes the nearest strictly-positive intersection of the
	// primitive with r, or an empty Intersection.
	Intersect(r vecmath.Ray) Intersection
	// Normal returns the unit outward normal at p, oriented towards
	// whichever side the caller's incoming ray approached from.
	Normal(p vecmath.Point) vecmath.Vector
	// BoundingBox returns an AABB containing every point of the primitive.
	BoundingBox() AABB
	// Material returns the primitive's material.
	Material() Material
	// IsFlat reports whether the primitive has null volume (planes and
	// triangles are flat; spheres and boxes are not).
	IsFlat() bool
	// DiffuseColor returns the diffuse color of the primitive at p,
	// sampling a texture if one is attached.
	DiffuseColor(p vecmath.Point) vecmath.Vector
	// SpecularColor returns the specular color of the primitive at p,
	// sampling a texture if one is attached.
	SpecularColor(p vecmath.Point) vecmath.Vector
}

// Intersection is a tagged record: either empty, or present with a positive
// distance, a front-facing flag, barycentric coordinates (meaningful only
// for triangle hits), and a back-reference to the hit primitive.
type Intersection struct {
	present   bool
	t         float64
	front     bool
	bary      [3]float64
	primitive Primitive
}

// EmptyIntersection returns the absent intersection record.
func EmptyIntersection() Intersection {
	return Intersection{}
}

// NewIntersection builds a present intersection record. t must be strictly
// positive; callers that computed a non-positive root must return
// EmptyIntersection instead (t <= 0 is never represented as present).
func NewIntersection(t float64, front bool, primitive Primitive) Intersection {
	if t <= 0 {
		return EmptyIntersection()
	}
	return Intersection{present: true, t: t, front: front, bary: [3]float64{1, 0, 0}, primitive: primitive}
}

// NewTriangleIntersection builds a present intersection record carrying
// barycentric coordinates, for Triangle hits.
func NewTriangleIntersection(t float64, front bool, bary [3]float64, primitive Primitive) Intersection {
	if t <= 0 {
		return EmptyIntersection()
	}
	return Intersection{present: true, t: t, front: front, bary: bary, primitive: primitive}
}

// IsEmpty reports whether the intersection is absent.
func (i Intersection) IsEmpty() bool {
	return !i.present
}

// T returns the intersection's distance parameter. Only meaningful when
// !i.IsEmpty().
func (i Intersection) T() float64 {
	return i.t
}

// FrontFacing reports whether the incoming ray hit the outward side of the
// surface.
func (i Intersection) FrontFacing() bool {
	return i.front
}

// Bary returns the barycentric coordinates of the hit, meaningful only for
// triangle intersections.
func (i Intersection) Bary() [3]float64 {
	return i.bary
}

// Primitive returns the back-reference to the hit primitive.
func (i Intersection) Primitive() Primitive {
	return i.primitive
}

// Point evaluates the hit point along r, attaching this intersection's
// barycentric coordinates.
func (i Intersection) Point(r vecmath.Ray) vecmath.Point {
	return r.At(i.t).WithBary(i.bary)
}

// NearestMerge returns the present intersection of a and b with the smaller
// positive t. If both are empty, returns empty; if exactly one is present,
// returns it. Ties resolve to a.
func NearestMerge(a, b Intersection) Intersection {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	if b.t < a.t {
		return b
	}
	return a
}

// Less reports whether a is present and strictly nearer than b, treating an
// empty b as farther than any present intersection.
func Less(a, b Intersection) bool {
	if a.IsEmpty() {
		return false
	}
	if b.IsEmpty() {
		return true
	}
	return a.t < b.t
}
