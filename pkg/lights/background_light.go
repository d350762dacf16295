package lights

import (
	"github.com/mixedlight/pathtracer/pkg/core"
)

// backgroundDistance stands in for "infinitely far away" so shadow rays
// toward the background are never reported occluded by real geometry.
const backgroundDistance = 1e36

// BackgroundLight is a uniform environment light surrounding the scene.
type BackgroundLight struct {
	Intensity core.Vec3
	Scale     float64
}

// NewBackgroundLight creates a uniform environment light
func NewBackgroundLight(intensity core.Vec3, scale float64) *BackgroundLight {
	return &BackgroundLight{Intensity: intensity, Scale: scale}
}

func (bl *BackgroundLight) Type() LightType {
	return LightTypeBackground
}

// IsDelta implements the Light interface; the background covers the sphere
func (bl *BackgroundLight) IsDelta() bool {
	return false
}

// Illuminate samples a direction uniformly over the sphere of directions,
// with the constant solid-angle pdf 1/(4π) and an effectively infinite
// distance.
func (bl *BackgroundLight) Illuminate(point core.Vec3, sample core.Vec2) Illumination {
	direction, pdf := core.SampleUniformSphere(sample)
	return Illumination{
		Direction: direction,
		Distance:  backgroundDistance,
		PDF:       pdf,
		Emission:  bl.Intensity.Multiply(bl.Scale),
	}
}

// Radiance returns the scaled intensity for any ray direction, with the
// uniform sphere pdf kept for density bookkeeping.
func (bl *BackgroundLight) Radiance(ray core.Ray) (Radiation, bool) {
	return Radiation{
		Emission: bl.Intensity.Multiply(bl.Scale),
		PDF:      core.UniformSpherePDF(),
	}, true
}
