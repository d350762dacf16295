package material

import (
	"github.com/mixedlight/pathtracer/pkg/core"
)

// Material holds immutable per-surface reflectance parameters: a diffuse
// albedo, a specular (glossy) albedo, and the Phong glossiness exponent.
// Materials are owned by the scene and referenced by id from surfaces.
type Material struct {
	Diffuse  core.Vec3 // Diffuse albedo
	Specular core.Vec3 // Specular albedo
	PhongExp float64   // Glossiness exponent, non-negative
}

// NewMaterial creates a material from its reflectance parameters
func NewMaterial(diffuse, specular core.Vec3, phongExp float64) Material {
	return Material{Diffuse: diffuse, Specular: specular, PhongExp: phongExp}
}

// AlbedoDiffuse returns the perceptual luminance of the diffuse albedo
func (m Material) AlbedoDiffuse() float64 {
	return m.Diffuse.Luminance()
}

// AlbedoSpecular returns the perceptual luminance of the specular albedo
func (m Material) AlbedoSpecular() float64 {
	return m.Specular.Luminance()
}

// TotalAlbedo returns the summed luminance of both albedos
func (m Material) TotalAlbedo() float64 {
	return m.AlbedoDiffuse() + m.AlbedoSpecular()
}

// probabilities holds the lobe selection split derived from the material's
// luminance-weighted albedos. Continuation is the overall reflectance used to
// scale throughput for Russian roulette, not a selection probability.
type probabilities struct {
	diffuse      float64
	specular     float64
	continuation float64
}

// minTotalAlbedo is the threshold below which a surface is fully absorptive
const minTotalAlbedo = 1e-9

func newProbabilities(m Material) probabilities {
	albedoDiffuse := m.AlbedoDiffuse()
	albedoSpecular := m.AlbedoSpecular()
	totalAlbedo := m.TotalAlbedo()

	if totalAlbedo < minTotalAlbedo {
		return probabilities{}
	}
	return probabilities{
		diffuse:      albedoDiffuse / totalAlbedo,
		specular:     albedoSpecular / totalAlbedo,
		continuation: totalAlbedo,
	}
}
