package geom

import "github.com/White-Link/pathtracer/internal/vecmath"

// primitiveIndex is the nearest-hit query a Mesh delegates to. It is
// satisfied structurally by *bvh.BVH without geom importing the bvh
// package (which itself imports geom for Primitive/AABB) -- this keeps the
// mesh-as-a-single-primitive feature in geom without an import cycle.
type primitiveIndex interface {
	NearestHit(r vecmath.Ray) Intersection
	Bounds() AABB
}

// Mesh wraps a group of triangles behind its own acceleration index so
// that, from the scene's top-level BVH, an imported model counts as one
// primitive: it is compiled into its own BVH and wrapped, rather than
// flattening every triangle into the top-level primitive list.
type Mesh struct {
	index primitiveIndex
	material Material
}

// NewMesh wraps a pre-built triangle index (typically a *bvh.BVH over the
// mesh's triangles) as a single primitive.
func NewMesh(index primitiveIndex, material Material) *Mesh {
	return &Mesh{index: index, material: material}
}

// Intersect delegates to the mesh's own acceleration index.
func (m *Mesh) Intersect(r vecmath.Ray) Intersection {
	return m.index.NearestHit(r)
}

// Normal is unreachable in practice: the scene's top-level BVH always
// dispatches Normal calls to the individual Triangle leaf that was actually
// hit, never to the Mesh wrapper itself. Returns a constant rather than
// panicking, so a caller that does reach it fails quietly instead of
// crashing the render.
func (m *Mesh) Normal(p vecmath.Point) vecmath.Vector {
	return vecmath.Vector{X: 0, Y: 1, Z: 0}
}

// BoundingBox returns the mesh index's root bounding box.
func (m *Mesh) BoundingBox() AABB {
	return m.index.Bounds()
}

// Material returns the mesh's material. Individual triangles carry their
// own materials; this is used only as a fallback when a caller addresses
// the Mesh wrapper directly instead of the triangle a hit resolved to.
func (m *Mesh) Material() Material { return m.material }

// IsFlat is true: a mesh of triangles has null volume.
func (m *Mesh) IsFlat() bool { return true }

// DiffuseColor is unreachable for the same reason Normal is; see above.
func (m *Mesh) DiffuseColor(p vecmath.Point) vecmath.Vector { return m.material.Diffuse }

// SpecularColor is unreachable for the same reason Normal is; see above.
func (m *Mesh) SpecularColor(p vecmath.Point) vecmath.Vector { return m.material.Specular }
