package geom

import "github.com/White-Link/pathtracer/internal/vecmath"

// Triangle is a flat primitive with per-vertex normals and, optionally, a
// pair of UV-mapped textures.
type Triangle struct {
	P1, P2, P3          vecmath.Vector
	N1, N2, N3          vecmath.Vector
	planeNormal         vecmath.Vector
	DiffuseTexture      *TexelGrid
	SpecularTexture     *TexelGrid
	HasUV               bool
	U1, V1, U2, V2, U3, V3 float64
	material            Material
}

// NewTriangle builds a Triangle, computing and orienting the embedding
// plane's normal and normalizing the per-vertex normals.
func NewTriangle(
	p1, p2, p3 vecmath.Vector,
	n1, n2, n3 vecmath.Vector,
	diffuseTexture, specularTexture *TexelGrid,
	hasUV bool,
	u1, v1, u2, v2, u3, v3 float64,
	material Material,
) *Triangle {
	planeNormal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalized()
	n1, n2, n3 = n1.Normalized(), n2.Normalized(), n3.Normalized()
	if planeNormal.Dot(n1) < 0 {
		planeNormal = planeNormal.Negate()
	}
	return &Triangle{
		P1: p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		planeNormal:     planeNormal,
		DiffuseTexture:  diffuseTexture,
		SpecularTexture: specularTexture,
		HasUV:           hasUV,
		U1: u1, V1: v1, U2: u2, V2: v2, U3: u3, V3: v3,
		material: material,
	}
}

// barycentric computes the barycentric coordinates of p with respect to
// (P1, P2, P3), assuming p lies in the triangle's embedding plane.
func (t *Triangle) barycentric(p vecmath.Vector) [3]float64 {
	v0 := t.P3.Sub(t.P1)
	v1 := t.P2.Sub(t.P1)
	v2 := p.Sub(t.P1)
	dot00 := v0.NormSquared()
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.NormSquared()
	dot12 := v1.Dot(v2)
	invDenom := 1 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return [3]float64{1 - u - v, v, u}
}

// Intersect intersects the embedding plane, then accepts the hit only if
// all three barycentric coordinates are strictly positive; a hit that lands
// exactly on an edge or vertex is rejected rather than accepted.
func (t *Triangle) Intersect(r vecmath.Ray) Intersection {
	dp := r.Direction.Dot(t.planeNormal)
	if dp == 0 {
		return EmptyIntersection()
	}
	tt := -(r.Origin.Vector.Sub(t.P1).Dot(t.planeNormal)) / dp
	hit := r.Origin.Vector.Add(r.Direction.Scale(tt))
	bary := t.barycentric(hit)
	if bary[0] > 0 && bary[1] > 0 && bary[2] > 0 {
		front := r.Direction.Dot(t.planeNormal) < 0
		return NewTriangleIntersection(tt, front, bary, t)
	}
	return EmptyIntersection()
}

// Normal returns the weighted sum of the three vertex normals by p's
// carried barycentric coordinates, flipped to face the same side as
// planeNormal does relative to p (mirroring Plane's orientation rule).
func (t *Triangle) Normal(p vecmath.Point) vecmath.Vector {
	b := p.Bary
	n := t.N1.Scale(b[0]).Add(t.N2.Scale(b[1])).Add(t.N3.Scale(b[2])).Normalized()
	if t.P1.Sub(p.Vector).Dot(t.planeNormal) < 0 {
		return n
	}
	return n.Negate()
}

// BoundingBox returns the coordinate-wise min/max of the three vertices.
func (t *Triangle) BoundingBox() AABB {
	minV := vecmath.Vector{
		X: min3(t.P1.X, t.P2.X, t.P3.X),
		Y: min3(t.P1.Y, t.P2.Y, t.P3.Y),
		Z: min3(t.P1.Z, t.P2.Z, t.P3.Z),
	}
	maxV := vecmath.Vector{
		X: max3(t.P1.X, t.P2.X, t.P3.X),
		Y: max3(t.P1.Y, t.P2.Y, t.P3.Y),
		Z: max3(t.P1.Z, t.P2.Z, t.P3.Z),
	}
	return NewAABB(minV, maxV)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Material returns the triangle's material.
func (t *Triangle) Material() Material { return t.material }

// IsFlat is true: a triangle has null volume.
func (t *Triangle) IsFlat() bool { return true }

// uv blends the three per-vertex UV pairs by p's barycentric coordinates.
func (t *Triangle) uv(p vecmath.Point) (u, v float64) {
	b := p.Bary
	u = b[0]*t.U1 + b[1]*t.U2 + b[2]*t.U3
	v = b[0]*t.V1 + b[1]*t.V2 + b[2]*t.V3
	return u, v
}

// DiffuseColor samples the diffuse texture if present and UVs are valid;
// otherwise returns the material's diffuse color.
//
// The first UV coordinate indexes the texture's height axis and the second
// indexes its width axis -- a transposition relative to the usual
// (u -> width, v -> height) convention, preserved deliberately rather than
// corrected: flipping it would silently change every textured render.
func (t *Triangle) DiffuseColor(p vecmath.Point) vecmath.Vector {
	if t.DiffuseTexture == nil || !t.HasUV {
		return t.material.Diffuse
	}
	u, v := t.uv(p)
	row := int(u * float64(t.DiffuseTexture.Height))
	col := int(v * float64(t.DiffuseTexture.Width))
	r, g, b := t.DiffuseTexture.Sample(row, col)
	return vecmath.Vector{X: float64(r) / 256, Y: float64(g) / 256, Z: float64(b) / 256}
}

// SpecularColor samples the specular texture if present and UVs are valid;
// otherwise returns the material's specular color. See DiffuseColor for the
// preserved UV-axis transposition.
func (t *Triangle) SpecularColor(p vecmath.Point) vecmath.Vector {
	if t.SpecularTexture == nil || !t.HasUV {
		return t.material.Specular
	}
	u, v := t.uv(p)
	row := int(u * float64(t.SpecularTexture.Height))
	col := int(v * float64(t.SpecularTexture.Width))
	r, g, b := t.SpecularTexture.Sample(row, col)
	return vecmath.Vector{X: float64(r) / 256, Y: float64(g) / 256, Z: float64(b) / 256}
}
