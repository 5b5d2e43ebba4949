// Package tracer implements the recursive radiance estimator: direct
// lighting via shadow rays, indirect diffuse via cosine-weighted BRDF
// sampling, and reflection/refraction via Fresnel-weighted sampling, tied
// together by the intensity-based early-termination evaluator GetColor.
// The overall recursive-evaluator shape (emitted + scattered radiance,
// weight-based early termination) is a familiar one; the branching
// arithmetic itself follows this renderer's own alpha/beta/Fresnel
// energy-split model, which has no direct analogue in a standard
// Lambertian/MIS path integrator.
package tracer

import (
	"math"
	"math/rand"

	"github.com/White-Link/pathtracer/internal/geom"
	"github.com/White-Link/pathtracer/internal/scenegraph"
	"github.com/White-Link/pathtracer/internal/vecmath"
)

// terminationWeight is the minimum accumulated path contribution below
// which GetColor stops recursing and returns black -- a Russian-roulette-free
// variance control, not an unbiased estimator.
const terminationWeight = 0.01

var black = vecmath.Vector{}

// Tracer evaluates the radiance seen along a ray through a Scene.
type Tracer struct {
	scene *scenegraph.Scene
}

// New builds a Tracer over scene.
func New(scene *scenegraph.Scene) *Tracer {
	return &Tracer{scene: scene}
}

// GetColor is the recursive radiance evaluator. depth is the
// remaining recursion budget, samples the sample count handed to this
// level's BRDF and reflect/refract branches (their child evaluations get a
// count of 1, except a single deterministic reflect or refract ray, which
// passes samples on), eta
// the refractive index of the medium the ray currently travels through, and
// weight the accumulated path contribution used for early termination.
func (t *Tracer) GetColor(r vecmath.Ray, depth, samples int, eta, weight float64, rng *rand.Rand) vecmath.Vector {
	if weight < terminationWeight {
		return black
	}

	hit := t.scene.Index.NearestHit(r)
	if hit.IsEmpty() {
		return black
	}

	primitive := hit.Primitive()
	material := primitive.Material()
	point := hit.Point(r)
	normal := primitive.Normal(point)

	alpha, beta := material.Opacity, material.IndirectDiffuse
	if depth == 0 || samples == 0 {
		alpha, beta = 1, 0
	}

	var diffuseColor, specularColor vecmath.Vector
	if alpha != 0 {
		diffuseColor = primitive.DiffuseColor(point)
	}
	if material.SpecularWeight != 0 {
		specularColor = primitive.SpecularColor(point)
	}

	var indirect vecmath.Vector
	if alpha != 1 || beta != 0 {
		indirect = t.sampleIndirect(r, hit, primitive, material, point, normal,
			diffuseColor, specularColor, alpha, beta, depth, samples, eta, weight, rng)
	}

	direct := t.lightIntensity(point, normal, r, material, diffuseColor, specularColor, alpha, beta)

	return indirect.Scale(1 - alpha*(1-beta)).Add(direct)
}

// sampleIndirect splits the remaining (non-direct) energy between the
// indirect-diffuse BRDF branch and the reflect/refract branch, weighted by
// f_diff = alpha*beta/(1-alpha*(1-beta)).
func (t *Tracer) sampleIndirect(
	r vecmath.Ray, hit geom.Intersection, primitive geom.Primitive, material geom.Material,
	point vecmath.Point, normal vecmath.Vector, diffuseColor, specularColor vecmath.Vector,
	alpha, beta float64, depth, samples int, eta, weight float64, rng *rand.Rand,
) vecmath.Vector {
	fDiff := alpha * beta / (1 - alpha*(1-beta))

	switch {
	case fDiff >= 0.999:
		return t.brdfColor(samples, depth, alpha*beta*weight, diffuseColor, normal, point, eta, rng)
	case fDiff <= 0.001:
		return t.reflectRefractColor(samples, depth, (1-alpha)*weight, r, hit, primitive, material, specularColor, normal, eta, rng)
	default:
		accum := black
		for k := 0; k < samples; k++ {
			if rng.Float64() <= fDiff {
				accum = accum.Add(t.brdfColor(1, depth, alpha*beta*weight, diffuseColor, normal, point, eta, rng))
			} else {
				accum = accum.Add(t.reflectRefractColor(1, depth, (1-alpha)*weight, r, hit, primitive, material, specularColor, normal, eta, rng))
			}
		}
		return accum.Scale(1 / float64(samples))
	}
}

// brdfColor is the indirect-diffuse estimator. It builds an
// orthonormal (n, e1, e2) frame and averages N cosine-weighted hemisphere
// samples' recursive radiance, folding the Lambertian cosine/pi factor into
// the cosine-weighted PDF so the estimator simplifies to a plain average
// scaled by 1/(N*pi)*diffuseColor.
func (t *Tracer) brdfColor(n int, depth int, weight float64, diffuseColor, normal vecmath.Vector, point vecmath.Point, eta float64, rng *rand.Rand) vecmath.Vector {
	e1 := normal.Orthogonal()
	e2 := normal.Cross(e1)

	accum := black
	for k := 0; k < n; k++ {
		u1, u2 := rng.Float64(), rng.Float64()
		phi := 2 * math.Pi * u1
		s := math.Sqrt(1 - u2)
		direction := e1.Scale(math.Cos(phi) * s).Add(e2.Scale(math.Sin(phi) * s)).Add(normal.Scale(math.Sqrt(u2)))
		childRay := vecmath.NewRay(point, direction)
		accum = accum.Add(t.GetColor(childRay, depth-1, 1, eta, weight, rng))
	}
	return accum.Scale(1 / (float64(n) * math.Pi)).Mul(diffuseColor)
}

// reflectRefractColor is the reflection/refraction estimator: computes the
// Fresnel-weighted reflection probability P_R and
// either recurses deterministically along the dominant direction or
// stochastically samples between reflection and refraction N times.
func (t *Tracer) reflectRefractColor(
	n int, depth int, weight float64, r vecmath.Ray, hit geom.Intersection, primitive geom.Primitive,
	material geom.Material, specularColor vecmath.Vector, normal vecmath.Vector, eta float64, rng *rand.Rand,
) vecmath.Vector {
	cosI := r.Direction.Dot(normal)

	etaIn, etaOut := eta, material.RefractiveIndex
	if !hit.FrontFacing() {
		etaIn, etaOut = material.RefractiveIndex, eta
	}
	rho := etaIn / etaOut

	refracts := false
	var transmitted vecmath.Vector
	if material.Refractive {
		disc := 1 - rho*rho*(1-cosI*cosI)
		if disc > 0 {
			refracts = true
			transmitted = r.Direction.Scale(rho).Sub(normal.Scale(rho*cosI + math.Sqrt(disc))).Normalized()
		}
	}
	reflected := r.Direction.Sub(normal.Scale(2 * cosI)).Normalized()

	pr := Fresnel(cosI, etaIn, etaOut, refracts)

	nextEta := eta
	if primitive.IsFlat() && hit.FrontFacing() {
		nextEta = material.RefractiveIndex
	}

	reflectOrigin := hit.Point(r)
	refractOrigin := r.At(hit.T() * (1 + 1e-4))

	switch {
	case pr >= 0.999:
		childRay := vecmath.NewRay(reflectOrigin, reflected)
		return t.GetColor(childRay, depth-1, n, eta, weight, rng).Mul(specularColor)
	case pr <= 0.001:
		childRay := vecmath.NewRay(refractOrigin, transmitted)
		return t.GetColor(childRay, depth-1, n, nextEta, weight, rng).Mul(material.Transparent)
	default:
		accum := black
		for k := 0; k < n; k++ {
			if rng.Float64() <= pr {
				childRay := vecmath.NewRay(reflectOrigin, reflected)
				accum = accum.Add(t.GetColor(childRay, depth-1, 1, eta, pr*weight, rng).Mul(specularColor))
			} else {
				childRay := vecmath.NewRay(refractOrigin, transmitted)
				accum = accum.Add(t.GetColor(childRay, depth-1, 1, nextEta, (1-pr)*weight, rng).Mul(material.Transparent))
			}
		}
		return accum.Scale(1 / float64(n))
	}
}

// Fresnel computes the Schlick approximation of the reflection probability
// at a dielectric interface. The sign convention is cosI = ray.direction . n
// with n pre-flipped to face the ray origin, so cosI <= 0 on entry and the
// Schlick "c" term is 1+cosI, not 1-cosI.
// Returns 1 when no transmitted ray exists (total internal reflection or a
// non-refractive material).
func Fresnel(cosI, etaIn, etaOut float64, refracts bool) float64 {
	if !refracts {
		return 1
	}
	k0 := (etaIn - etaOut) / (etaIn + etaOut)
	k0 *= k0
	c := 1 + cosI
	return k0 + (1-k0)*math.Pow(c, 5)
}

// lightIntensity is the direct-lighting estimator: for each
// light, casts a shadow ray and, if unoccluded, accumulates the Lambertian
// diffuse term and, when the material has a nonzero specular weight, a
// Phong specular term.
func (t *Tracer) lightIntensity(
	point vecmath.Point, normal vecmath.Vector, r vecmath.Ray, material geom.Material,
	diffuseColor, specularColor vecmath.Vector, alpha, beta float64,
) vecmath.Vector {
	diffuseWeight := alpha * (1 - beta)
	if diffuseWeight == 0 && material.SpecularWeight == 0 {
		return black
	}

	total := black
	for _, light := range t.scene.Lights {
		toLight := light.Source.Sub(point.Vector)
		distSquared := toLight.NormSquared()

		shadowRay := vecmath.NewRay(point, toLight)
		occluder := t.scene.Index.NearestHit(shadowRay)
		visible := occluder.IsEmpty() || occluder.T()*occluder.T() >= distSquared
		if !visible {
			continue
		}

		shadowDir := toLight.Normalized()
		cosTheta := math.Max(normal.Dot(shadowDir), 0)

		diffuse := light.Intensity.Mul(diffuseColor).Scale(cosTheta * diffuseWeight / (math.Pi * distSquared))
		total = total.Add(diffuse)

		if material.SpecularWeight > 0 {
			mirror := shadowDir.Sub(normal.Scale(2 * shadowDir.Dot(normal))).Normalized()
			spec := math.Max(mirror.Dot(r.Direction), 0)
			specular := light.Intensity.Mul(specularColor).
				Scale(material.SpecularWeight * math.Pow(spec, material.SpecularExponent) / (math.Pi * distSquared))
			total = total.Add(specular)
		}
	}
	return total
}
