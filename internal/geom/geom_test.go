package geom

import "github.com/White-Link/pathtracer/internal/vecmath"

func approxEqual(a, b vecmath.Vector, tolerance float64) bool {
	return a.Sub(b).Norm() <= tolerance
}
