package loaders

import (
	"github.com/White-Link/pathtracer/internal/bvh"
	"github.com/White-Link/pathtracer/internal/geom"
	"github.com/White-Link/pathtracer/internal/vecmath"
)

// Vertex is one corner of a triangle in a TriangleSource: a position, a
// shading normal, and an optional pair of UV texture coordinates.
type Vertex struct {
	Position vecmath.Vector
	Normal   vecmath.Vector
	U, V     float64
}

// Triangle is one face of a TriangleSource, referencing three Vertex
// values directly rather than by index -- a mesh reader is free to
// deduplicate vertices internally however suits its file format.
type Triangle struct {
	A, B, C Vertex
}

// TriangleSource is the contract an external mesh reader (a Wavefront OBJ
// parser, for instance) implements so its output can be handed to BuildMesh
// without internal/loaders ever parsing a mesh file format itself.
type TriangleSource interface {
	// Triangles returns every face of the mesh. HasUV reports whether the
	// per-vertex U, V fields are populated; when false they are ignored.
	Triangles() (triangles []Triangle, hasUV bool)
}

// BuildMesh compiles a TriangleSource into a geom.Mesh: every triangle
// becomes a geom.Triangle sharing material and textures, the triangles are
// indexed by their own BVH, and that BVH is wrapped as a single primitive
// the scene's top-level index can hold alongside spheres, planes, and
// standalone triangles.
func BuildMesh(source TriangleSource, diffuseTexture, specularTexture *geom.TexelGrid, material geom.Material, seed int64) *geom.Mesh {
	faces, hasUV := source.Triangles()

	primitives := make([]geom.Primitive, len(faces))
	for i, f := range faces {
		primitives[i] = geom.NewTriangle(
			f.A.Position, f.B.Position, f.C.Position,
			f.A.Normal, f.B.Normal, f.C.Normal,
			diffuseTexture, specularTexture,
			hasUV,
			f.A.U, f.A.V, f.B.U, f.B.V, f.C.U, f.C.V,
			material,
		)
	}

	index := bvh.Build(primitives, seed)
	return geom.NewMesh(index, material)
}
