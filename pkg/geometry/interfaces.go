package geometry

import "github.com/mixedlight/pathtracer/pkg/core"

// SurfaceKind distinguishes what a surface hit resolves to: a reflective
// material or an emissive light. The variant set is closed.
type SurfaceKind int

const (
	SurfaceMaterial SurfaceKind = iota
	SurfaceLight
)

// SurfaceRef is a tagged reference from a shape to its scene-owned material
// or light.
type SurfaceRef struct {
	Kind SurfaceKind
	ID   int
}

// MaterialRef references a scene material by id
func MaterialRef(id int) SurfaceRef {
	return SurfaceRef{Kind: SurfaceMaterial, ID: id}
}

// LightRef references a scene light by id
func LightRef(id int) SurfaceRef {
	return SurfaceRef{Kind: SurfaceLight, ID: id}
}

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	T         float64    // Parameter t along the ray
	Point     core.Vec3  // Point of intersection
	Normal    core.Vec3  // Surface normal, facing the incoming ray
	FrontFace bool       // Whether the ray hit the front face
	Surface   SurfaceRef // What the surface resolves to
}

// SetFaceNormal orients the normal against the incoming ray and records
// which face was hit
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape is anything a ray can intersect
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
}
