package lights

import (
	"math"

	"github.com/mixedlight/pathtracer/pkg/core"
)

// PointLight emits from a single position. Its sampling support has zero
// measure, so it can only contribute through next-event estimation and is
// never hit by a sampled direction.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a point light at the given position
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// IsDelta implements the Light interface; point lights are delta lights
func (pl *PointLight) IsDelta() bool {
	return true
}

// Illuminate aims at the light position with inverse-square falloff.
// The sample is unused; a delta light has exactly one direction.
func (pl *PointLight) Illuminate(point core.Vec3, sample core.Vec2) Illumination {
	toLight := pl.Position.Subtract(point)
	distSquared := toLight.LengthSquared()
	if distSquared <= 0 {
		return Illumination{PDF: math.Inf(-1)}
	}
	distance := math.Sqrt(distSquared)
	return Illumination{
		Direction: toLight.Multiply(1.0 / distance),
		Distance:  distance,
		PDF:       1.0,
		Emission:  pl.Intensity.Multiply(1.0 / distSquared),
	}
}

// Radiance implements the Light interface; a ray never hits a point light
func (pl *PointLight) Radiance(ray core.Ray) (Radiation, bool) {
	return Radiation{}, false
}
