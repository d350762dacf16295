package lights

import "github.com/mixedlight/pathtracer/pkg/core"

type LightType string

const (
	LightTypeArea       LightType = "area"
	LightTypePoint      LightType = "point"
	LightTypeBackground LightType = "background"
)

// Light is the capability set shared by every emitter: sample illumination
// toward a point, evaluate radiance along a ray that reached the light, and
// report whether the light has zero-measure sampling support.
type Light interface {
	Type() LightType

	// Illuminate samples the light toward a shading point for next-event
	// estimation. Direction points from the shading point to the light.
	Illuminate(point core.Vec3, sample core.Vec2) Illumination

	// Radiance evaluates emission along a ray that hit the light (or, for
	// the background, missed the scene). Returns false if the light emits
	// nothing along that ray.
	Radiance(ray core.Ray) (Radiation, bool)

	// IsDelta reports whether the light's sampling support has zero measure
	// (a point light); such lights cannot be hit by a sampled direction.
	IsDelta() bool
}

// Illumination is one sample drawn toward a light.
// A pdf of 0 or -Inf always accompanies zero emission; a non-zero emission
// always carries a strictly positive pdf, so consumers may divide safely.
type Illumination struct {
	Direction core.Vec3 // From the shading point toward the light, unit length
	Distance  float64   // Distance to the light sample
	PDF       float64   // Solid-angle pdf; -Inf signals "never select this sample"
	Emission  core.Vec3 // Emitted intensity
}

// Radiation is emission evaluated along a ray, with the pdf kept for density
// bookkeeping (area measure for area lights, solid-angle for the background).
type Radiation struct {
	Emission core.Vec3
	PDF      float64
}
