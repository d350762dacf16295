package core

import (
	"math"
	"math/rand"
)

// Geometric tolerances shared by shading and traversal code.
const (
	// EpsCosine is the smallest cosine treated as "above the horizon"
	EpsCosine = 1e-6
	// EpsRay offsets secondary ray origins to avoid self-intersection
	EpsRay = 1e-3
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleCosineHemisphere generates a cosine-weighted direction in the local
// hemisphere around +z and returns it with its pdf (cosθ/π)
func SampleCosineHemisphere(sample Vec2) (Vec3, float64) {
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	z := math.Sqrt(math.Max(0, 1.0-sample.Y))

	return NewVec3(x, y, z), z / math.Pi
}

// SamplePowerCosineHemisphere generates a direction from the normalized
// power-cosine (Phong lobe) distribution of the given exponent around the
// local +z axis, returning it with its pdf: cosⁿθ·(n+1)/(2π)
func SamplePowerCosineHemisphere(exponent float64, sample Vec2) (Vec3, float64) {
	phi := 2.0 * math.Pi * sample.X
	cosTheta := math.Pow(sample.Y, 1.0/(exponent+1.0))
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)

	pdf := math.Pow(cosTheta, exponent) * (exponent + 1.0) / (2.0 * math.Pi)
	return NewVec3(x, y, cosTheta), pdf
}

// SampleUniformSphere generates a uniform direction on the unit sphere
// and returns it with the constant pdf 1/(4π)
func SampleUniformSphere(sample Vec2) (Vec3, float64) {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z), 1.0 / (4.0 * math.Pi)
}

// UniformSpherePDF is the pdf of SampleUniformSphere for any direction
func UniformSpherePDF() float64 {
	return 1.0 / (4.0 * math.Pi)
}

// PowerHeuristic computes the power heuristic (β=2) weight for combining
// two sampling strategies with nf/ng samples at pdfs fPdf/gPdf
func PowerHeuristic(nf int, fPdf float64, ng int, gPdf float64) float64 {
	f := float64(nf) * fPdf
	g := float64(ng) * gPdf
	if f*f+g*g == 0 {
		return 0
	}
	return (f * f) / (f*f + g*g)
}
