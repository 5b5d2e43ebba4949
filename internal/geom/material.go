package geom

import "github.com/White-Link/pathtracer/internal/vecmath"

// Material is an immutable record of the spectral/scalar coefficients that
// drive a primitive's diffuse, specular, and transmissive behavior. Every
// primitive carries the same flat set of fields; there is no notion of
// separate material "kinds" -- the tracer's own branching logic decides
// which coefficients actually affect a given hit.
type Material struct {
	// Diffuse is the Lambertian reflectance color, RGB in [0,1].
	Diffuse vecmath.Vector
	// Specular is the specular highlight color.
	Specular vecmath.Vector
	// Transparent filters light transmitted through the material.
	Transparent vecmath.Vector

	// Opacity (alpha) and IndirectDiffuse (beta) partition the
	// diffuse/transmissive behavior: alpha is the fraction of light that
	// interacts with the surface at all (vs. passing through), and beta
	// is the fraction of that interaction which is indirect diffuse
	// (BRDF-sampled) rather than reflected/refracted.
	Opacity         float64
	IndirectDiffuse float64

	// SpecularExponent (s) and SpecularWeight (k_s) control the Phong
	// specular lobe used by direct lighting.
	SpecularExponent float64
	SpecularWeight   float64

	// Refractive marks a dielectric material participating in Fresnel
	// sampled reflection/refraction; RefractiveIndex (eta) is its index
	// of refraction, eta >= 1.
	Refractive     bool
	RefractiveIndex float64
}

// DefaultMaterial returns the zero-value-safe default material: fully
// opaque, no indirect diffuse, no specular, not refractive.
func DefaultMaterial() Material {
	return Material{
		Opacity:         1,
		IndirectDiffuse: 0,
		RefractiveIndex: 1,
	}
}
