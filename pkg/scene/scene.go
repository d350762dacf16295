package scene

import (
	"math"

	"github.com/mixedlight/pathtracer/pkg/core"
	"github.com/mixedlight/pathtracer/pkg/geometry"
	"github.com/mixedlight/pathtracer/pkg/lights"
	"github.com/mixedlight/pathtracer/pkg/material"
)

// Scene owns the shapes, materials and lights for a render. It is read-only
// while rendering, so concurrent path-tracing workers share it without locks.
type Scene struct {
	shapes     []geometry.Shape
	materials  []material.Material
	lights     []lights.Light // Finite lights, targeted by next-event estimation
	background *lights.BackgroundLight
}

// New creates an empty scene with the given background light.
// The background contributes when rays leave the scene; it is not part of
// the next-event light list.
func New(background *lights.BackgroundLight) *Scene {
	return &Scene{background: background}
}

// AddMaterial registers a material and returns its id for surface references
func (s *Scene) AddMaterial(mat material.Material) int {
	s.materials = append(s.materials, mat)
	return len(s.materials) - 1
}

// AddShape adds a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddAreaLight registers an area light along with its emissive triangle so
// rays can hit it, returning the light id
func (s *Scene) AddAreaLight(light *lights.AreaLight) int {
	id := len(s.lights)
	s.lights = append(s.lights, light)
	v0, v1, v2 := light.Vertices()
	s.shapes = append(s.shapes, geometry.NewTriangle(v0, v1, v2, geometry.LightRef(id)))
	return id
}

// AddLight registers a light with no scene geometry (point lights)
func (s *Scene) AddLight(light lights.Light) int {
	id := len(s.lights)
	s.lights = append(s.lights, light)
	return id
}

// NearestIntersection finds the closest surface hit along the ray
func (s *Scene) NearestIntersection(ray core.Ray) (geometry.HitRecord, bool) {
	closest := math.Inf(1)
	var nearest geometry.HitRecord
	found := false
	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, core.EpsRay, closest); ok {
			closest = hit.T
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// Material returns the material with the given id
func (s *Scene) Material(id int) material.Material {
	return s.materials[id]
}

// Light returns the light with the given id
func (s *Scene) Light(id int) lights.Light {
	return s.lights[id]
}

// LightCount returns the number of finite lights
func (s *Scene) LightCount() int {
	return len(s.lights)
}

// BackgroundLight returns the scene's environment light, or nil
func (s *Scene) BackgroundLight() *lights.BackgroundLight {
	return s.background
}
