package lights

import (
	"math"

	"github.com/mixedlight/pathtracer/pkg/core"
)

// AreaLight emits a constant intensity from the front face of a triangle,
// sampled uniformly over its area.
type AreaLight struct {
	V0        core.Vec3 // Triangle vertices
	E1, E2    core.Vec3 // Precomputed edges V1-V0, V2-V0
	Intensity core.Vec3
	frame     core.Frame // Aligned to the triangle normal
	invArea   float64    // 2 / |e1 × e2|
}

// NewAreaLight creates a triangle area light from its vertices and intensity
func NewAreaLight(v0, v1, v2, intensity core.Vec3) *AreaLight {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	normal := e1.Cross(e2)
	return &AreaLight{
		V0:        v0,
		E1:        e1,
		E2:        e2,
		Intensity: intensity,
		frame:     core.NewFrame(normal),
		invArea:   2.0 / normal.Length(),
	}
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

// IsDelta implements the Light interface; an area light has finite support
func (al *AreaLight) IsDelta() bool {
	return false
}

// Normal returns the light's front-face normal
func (al *AreaLight) Normal() core.Vec3 {
	return al.frame.Normal()
}

// Illuminate samples a uniform point on the triangle and converts the
// area-measure pdf to solid angle: invArea · dist² / cosθ_light.
// A point behind the light plane gets zero emission and a -Inf pdf.
func (al *AreaLight) Illuminate(point core.Vec3, sample core.Vec2) Illumination {
	// Uniform barycentric sample over the triangle
	u, v := sample.X, sample.Y
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	samplePoint := al.V0.Add(al.E1.Multiply(u)).Add(al.E2.Multiply(v))

	toLight := samplePoint.Subtract(point)
	distSquared := toLight.LengthSquared()
	distance := math.Sqrt(distSquared)
	direction := toLight.Multiply(1.0 / distance)

	// Cosine at the light between its normal and the direction back to the
	// shading point
	cosNormalDir := al.Normal().Dot(direction.Negate())
	if cosNormalDir <= core.EpsCosine {
		return Illumination{
			Direction: direction,
			Distance:  distance,
			PDF:       math.Inf(-1),
			Emission:  core.Vec3{},
		}
	}

	return Illumination{
		Direction: direction,
		Distance:  distance,
		PDF:       al.invArea * distSquared / cosNormalDir,
		Emission:  al.Intensity,
	}
}

// Radiance evaluates emission toward a ray that hit the light; the pdf is
// the uniform area-measure density 1/area.
func (al *AreaLight) Radiance(ray core.Ray) (Radiation, bool) {
	cosOut := math.Max(al.Normal().Dot(ray.Direction.Negate()), 0)
	if cosOut <= 0 {
		return Radiation{}, false
	}
	return Radiation{
		Emission: al.Intensity,
		PDF:      al.invArea,
	}, true
}

// Vertices returns the triangle's corners, for registering the emissive
// geometry with the scene
func (al *AreaLight) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return al.V0, al.V0.Add(al.E1), al.V0.Add(al.E2)
}
