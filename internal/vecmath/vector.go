// Package vecmath implements the 3-vector, point, and ray primitives shared
// by every other rendering package, including a barycentric-carrying Point
// type distinct from a pure Vector and an origin-shrink Ray evaluator.
package vecmath

import "math"

// epsilon shrinks a ray's evaluated point back towards its origin so that a
// point used as the origin of a next ray does not immediately re-intersect
// the surface it was cast from.
const epsilon = 1e-6

// Vector is a triple of double-precision reals used for directions,
// differences, and colors. It carries no positional information.
type Vector struct {
	X, Y, Z float64
}

// NewVector builds a Vector from its three components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns the vector scaled by a real number.
func (v Vector) Scale(lambda float64) Vector {
	return Vector{lambda * v.X, lambda * v.Y, lambda * v.Z}
}

// Div returns the vector divided by a real number.
func (v Vector) Div(lambda float64) Vector {
	return Vector{v.X / lambda, v.Y / lambda, v.Z / lambda}
}

// Negate returns the opposite vector.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Mul returns the component-wise (Hadamard) product of two vectors, used for
// tinting a color by a reflectance or transmittance.
func (v Vector) Mul(w Vector) Vector {
	return Vector{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// NormSquared returns the squared Euclidean norm of the vector.
func (v Vector) NormSquared() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.NormSquared())
}

// Normalized returns a unit vector in the same direction. The zero vector is
// returned unchanged rather than producing NaNs.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Div(n)
}

// Orthogonal returns a deterministic unit vector orthogonal to v, used to
// seed the (n, e1, e2) frame for cosine-weighted hemisphere sampling. Crosses
// v with the world X axis, or with the Y axis when |v.X| > 0.9, to avoid a
// near-degenerate cross product.
func (v Vector) Orthogonal() Vector {
	var helper Vector
	if math.Abs(v.X) > 0.9 {
		helper = Vector{0, 1, 0}
	} else {
		helper = Vector{1, 0, 0}
	}
	return helper.Cross(v).Normalized()
}

// Point is a position in space. It additionally carries the three
// barycentric coordinates of the nearest triangle hit that produced it; a
// Point used purely as a free-floating position (camera origins, light
// sources, sphere centers) leaves Bary at its default.
type Point struct {
	Vector
	// Bary holds the barycentric coordinates (lambda1, lambda2, lambda3)
	// of a triangle surface hit. Defaults to (1,0,0), an "identity" triple,
	// for non-triangle points.
	Bary [3]float64
}

// NewPoint builds a Point with the default barycentric coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{Vector: Vector{X: x, Y: y, Z: z}, Bary: [3]float64{1, 0, 0}}
}

// PointFromVector lifts a Vector to a Point with default barycentric
// coordinates.
func PointFromVector(v Vector) Point {
	return Point{Vector: v, Bary: [3]float64{1, 0, 0}}
}

// WithBary returns a copy of the point carrying the given barycentric
// coordinates, used when a ray hits a Triangle.
func (p Point) WithBary(bary [3]float64) Point {
	p.Bary = bary
	return p
}

// Sub returns the vector from w to p.
func (p Point) Sub(w Point) Vector {
	return p.Vector.Sub(w.Vector)
}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{Vector: p.Vector.Add(v), Bary: p.Bary}
}

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay builds a Ray, normalizing its direction.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Normalized()}
}

// At evaluates the ray at parameter t, shrinking it by (1-epsilon) towards
// the origin. This keeps a point later used as the origin of a reflected or
// shadow ray from self-intersecting the surface it was just computed on.
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t * (1 - epsilon)))
}
