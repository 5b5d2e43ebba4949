package main

import (
	"fmt"

	"github.com/White-Link/pathtracer/internal/bvh"
	"github.com/White-Link/pathtracer/internal/geom"
	"github.com/White-Link/pathtracer/internal/scenegraph"
	"github.com/White-Link/pathtracer/internal/vecmath"
)

// buildScene constructs one of the built-in demo scenes by name. Returns an
// error for an unrecognized name rather than a core panic, since scene
// selection is a driver-level concern.
func buildScene(name string, width, height int) (*scenegraph.Scene, error) {
	switch name {
	case "default":
		return defaultScene(width, height), nil
	case "cornell":
		return cornellScene(width, height), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (want \"default\" or \"cornell\")", name)
	}
}

// defaultScene places three spheres -- matte, mirror-like, and glass -- over
// an infinite ground plane, lit by a single overhead point light.
func defaultScene(width, height int) *scenegraph.Scene {
	camera := scenegraph.NewCamera(
		vecmath.Vector{X: 0, Y: 1.2, Z: 4},
		vecmath.Vector{X: 0, Y: -0.2, Z: -1},
		vecmath.Vector{X: 0, Y: 1, Z: 0},
		degToRad(40),
		height, width,
	)

	groundMaterial := geom.DefaultMaterial()
	groundMaterial.Diffuse = vecmath.Vector{X: 0.5, Y: 0.5, Z: 0.5}
	groundMaterial.IndirectDiffuse = 0.6

	matteMaterial := geom.DefaultMaterial()
	matteMaterial.Diffuse = vecmath.Vector{X: 0.65, Y: 0.2, Z: 0.2}
	matteMaterial.IndirectDiffuse = 0.7

	mirrorMaterial := geom.DefaultMaterial()
	mirrorMaterial.Specular = vecmath.Vector{X: 0.9, Y: 0.9, Z: 0.9}
	mirrorMaterial.SpecularWeight = 1
	mirrorMaterial.SpecularExponent = 64
	mirrorMaterial.IndirectDiffuse = 0

	glassMaterial := geom.DefaultMaterial()
	glassMaterial.Opacity = 0.05
	glassMaterial.Specular = vecmath.Vector{X: 1, Y: 1, Z: 1}
	glassMaterial.Transparent = vecmath.Vector{X: 1, Y: 1, Z: 1}
	glassMaterial.Refractive = true
	glassMaterial.RefractiveIndex = 1.5

	primitives := []geom.Primitive{
		geom.NewPlane(vecmath.Vector{X: 0, Y: 0, Z: 0}, vecmath.Vector{X: 0, Y: 1, Z: 0}, groundMaterial),
		geom.NewSphere(vecmath.Vector{X: -1, Y: 0.5, Z: -1}, 0.5, matteMaterial),
		geom.NewSphere(vecmath.Vector{X: 1, Y: 0.5, Z: -1}, 0.5, mirrorMaterial),
		geom.NewSphere(vecmath.Vector{X: 0, Y: 0.5, Z: 0.25}, 0.5, glassMaterial),
	}

	scene := scenegraph.NewScene(camera, bvh.Build(primitives, 1))
	scene.AddLight(scenegraph.NewLight(
		vecmath.Vector{X: 3, Y: 5, Z: 4},
		vecmath.Vector{X: 40, Y: 40, Z: 40},
	))
	return scene
}

// cornellScene builds a classic five-walled box (floor, ceiling, back,
// left-red, right-green) with one sphere, lit from a point near the
// ceiling -- the point-light stand-in for the original's area light, since
// this renderer only models punctual lights.
func cornellScene(width, height int) *scenegraph.Scene {
	camera := scenegraph.NewCamera(
		vecmath.Vector{X: 0, Y: 1, Z: 4.5},
		vecmath.Vector{X: 0, Y: 0, Z: -1},
		vecmath.Vector{X: 0, Y: 1, Z: 0},
		degToRad(38),
		height, width,
	)

	white := geom.DefaultMaterial()
	white.Diffuse = vecmath.Vector{X: 0.73, Y: 0.73, Z: 0.73}
	white.IndirectDiffuse = 0.85

	red := geom.DefaultMaterial()
	red.Diffuse = vecmath.Vector{X: 0.65, Y: 0.05, Z: 0.05}
	red.IndirectDiffuse = 0.85

	green := geom.DefaultMaterial()
	green.Diffuse = vecmath.Vector{X: 0.12, Y: 0.45, Z: 0.15}
	green.IndirectDiffuse = 0.85

	// Box corners at +/-2 in x and z (floor at y=0, ceiling at y=4).
	const halfWidth = 2.0
	const height3D = 4.0

	floor := quad(
		vecmath.Vector{X: -halfWidth, Y: 0, Z: halfWidth},
		vecmath.Vector{X: halfWidth, Y: 0, Z: halfWidth},
		vecmath.Vector{X: halfWidth, Y: 0, Z: -halfWidth},
		vecmath.Vector{X: -halfWidth, Y: 0, Z: -halfWidth},
		vecmath.Vector{X: 0, Y: 1, Z: 0}, white,
	)
	ceiling := quad(
		vecmath.Vector{X: -halfWidth, Y: height3D, Z: -halfWidth},
		vecmath.Vector{X: halfWidth, Y: height3D, Z: -halfWidth},
		vecmath.Vector{X: halfWidth, Y: height3D, Z: halfWidth},
		vecmath.Vector{X: -halfWidth, Y: height3D, Z: halfWidth},
		vecmath.Vector{X: 0, Y: -1, Z: 0}, white,
	)
	back := quad(
		vecmath.Vector{X: -halfWidth, Y: 0, Z: -halfWidth},
		vecmath.Vector{X: halfWidth, Y: 0, Z: -halfWidth},
		vecmath.Vector{X: halfWidth, Y: height3D, Z: -halfWidth},
		vecmath.Vector{X: -halfWidth, Y: height3D, Z: -halfWidth},
		vecmath.Vector{X: 0, Y: 0, Z: 1}, white,
	)
	leftWall := quad(
		vecmath.Vector{X: -halfWidth, Y: 0, Z: halfWidth},
		vecmath.Vector{X: -halfWidth, Y: 0, Z: -halfWidth},
		vecmath.Vector{X: -halfWidth, Y: height3D, Z: -halfWidth},
		vecmath.Vector{X: -halfWidth, Y: height3D, Z: halfWidth},
		vecmath.Vector{X: 1, Y: 0, Z: 0}, red,
	)
	rightWall := quad(
		vecmath.Vector{X: halfWidth, Y: 0, Z: -halfWidth},
		vecmath.Vector{X: halfWidth, Y: 0, Z: halfWidth},
		vecmath.Vector{X: halfWidth, Y: height3D, Z: halfWidth},
		vecmath.Vector{X: halfWidth, Y: height3D, Z: -halfWidth},
		vecmath.Vector{X: -1, Y: 0, Z: 0}, green,
	)

	glass := geom.DefaultMaterial()
	glass.Opacity = 0.05
	glass.Specular = vecmath.Vector{X: 1, Y: 1, Z: 1}
	glass.Transparent = vecmath.Vector{X: 1, Y: 1, Z: 1}
	glass.Refractive = true
	glass.RefractiveIndex = 1.5
	sphere := geom.NewSphere(vecmath.Vector{X: -0.6, Y: 0.9, Z: -0.3}, 0.9, glass)

	primitives := append([]geom.Primitive{sphere}, floor...)
	primitives = append(primitives, ceiling...)
	primitives = append(primitives, back...)
	primitives = append(primitives, leftWall...)
	primitives = append(primitives, rightWall...)

	scene := scenegraph.NewScene(camera, bvh.Build(primitives, 2))
	scene.AddLight(scenegraph.NewLight(
		vecmath.Vector{X: 0, Y: height3D - 0.1, Z: 0},
		vecmath.Vector{X: 25, Y: 25, Z: 25},
	))
	return scene
}

// quad builds two triangles covering the planar quadrilateral p1-p2-p3-p4
// (in order around its boundary), all sharing normal n and material.
func quad(p1, p2, p3, p4, n vecmath.Vector, material geom.Material) []geom.Primitive {
	return []geom.Primitive{
		geom.NewTriangle(p1, p2, p3, n, n, n, nil, nil, false, 0, 0, 0, 0, 0, 0, material),
		geom.NewTriangle(p1, p3, p4, n, n, n, nil, nil, false, 0, 0, 0, 0, 0, 0, material),
	}
}

func degToRad(deg float64) float64 {
	return deg * 3.141592653589793 / 180
}
