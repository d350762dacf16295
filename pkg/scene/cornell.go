package scene

import (
	"github.com/mixedlight/pathtracer/pkg/core"
	"github.com/mixedlight/pathtracer/pkg/geometry"
	"github.com/mixedlight/pathtracer/pkg/lights"
	"github.com/mixedlight/pathtracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box with a triangle area light in
// the ceiling and a glossy sphere on the floor
func NewCornellScene() *Scene {
	s := New(lights.NewBackgroundLight(core.Vec3{}, 1.0))

	white := s.AddMaterial(material.NewMaterial(
		core.NewVec3(0.73, 0.73, 0.73), core.Vec3{}, 0))
	red := s.AddMaterial(material.NewMaterial(
		core.NewVec3(0.65, 0.05, 0.05), core.Vec3{}, 0))
	green := s.AddMaterial(material.NewMaterial(
		core.NewVec3(0.12, 0.45, 0.15), core.Vec3{}, 0))
	glossy := s.AddMaterial(material.NewMaterial(
		core.NewVec3(0.25, 0.25, 0.25), core.NewVec3(0.5, 0.5, 0.5), 90))

	const boxSize = 555.0

	// Floor, ceiling and back wall (white), each as two triangles
	addQuad(s, white,
		core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0),
		core.NewVec3(boxSize, 0, boxSize), core.NewVec3(0, 0, boxSize))
	addQuad(s, white,
		core.NewVec3(0, boxSize, 0), core.NewVec3(0, boxSize, boxSize),
		core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(boxSize, boxSize, 0))
	addQuad(s, white,
		core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, boxSize),
		core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(0, boxSize, boxSize))

	// Left wall red, right wall green
	addQuad(s, red,
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, boxSize), core.NewVec3(0, boxSize, 0))
	addQuad(s, green,
		core.NewVec3(boxSize, 0, 0), core.NewVec3(boxSize, boxSize, 0),
		core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(boxSize, 0, boxSize))

	// Glossy sphere on the floor
	s.AddShape(geometry.NewSphere(
		core.NewVec3(278, 120, 280), 120, geometry.MaterialRef(glossy)))

	// Ceiling light: a pair of emissive triangles facing down
	emission := core.NewVec3(15, 15, 15)
	s.AddAreaLight(lights.NewAreaLight(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(213, boxSize-1, 332),
		core.NewVec3(343, boxSize-1, 332),
		emission))
	s.AddAreaLight(lights.NewAreaLight(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(343, boxSize-1, 332),
		core.NewVec3(343, boxSize-1, 227),
		emission))

	return s
}

// NewSphereSkyScene creates a diffuse sphere lit only by a uniform
// environment light
func NewSphereSkyScene() *Scene {
	s := New(lights.NewBackgroundLight(core.NewVec3(1, 1, 1), 1.0))
	gray := s.AddMaterial(material.NewMaterial(
		core.NewVec3(0.6, 0.6, 0.6), core.Vec3{}, 0))
	s.AddShape(geometry.NewSphere(
		core.NewVec3(0, 0, -3), 1, geometry.MaterialRef(gray)))
	return s
}

// addQuad splits a planar quad into two triangles with a shared material.
// Corners are given counter-clockwise as seen from the front face.
func addQuad(s *Scene, materialID int, c0, c1, c2, c3 core.Vec3) {
	ref := geometry.MaterialRef(materialID)
	s.AddShape(geometry.NewTriangle(c0, c1, c2, ref))
	s.AddShape(geometry.NewTriangle(c0, c2, c3, ref))
}
