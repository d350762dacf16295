package material

import (
	"math"

	"github.com/mixedlight/pathtracer/pkg/core"
)

// BRDF is the per-hit reflectance model: an albedo-weighted mixture of a
// cosine-weighted diffuse lobe and a power-cosine glossy lobe around the
// mirror direction. Instances are ephemeral, built per ray-surface hit and
// discarded at the end of hit processing.
type BRDF struct {
	material Material
	frame    core.Frame // Shading frame aligned to the surface normal
	woLocal  core.Vec3  // Direction toward the viewer, in local space
	probs    probabilities
}

// BRDFSample is the result of importance-sampling a continuation direction
type BRDFSample struct {
	Direction core.Vec3 // Incoming direction, world space
	CosTheta  float64   // Cosine of the direction against the surface normal
	Weight    core.Vec3 // Importance-sampling weight, already pdf-normalized
	PDF       float64   // Lobe pdf in solid-angle measure, for diagnostics/MIS
}

// BRDFEval is the result of evaluating the mixture at a queried direction
type BRDFEval struct {
	Value core.Vec3 // Reflectance × cosine mixture value
	PDF   float64   // Mixture pdf in solid-angle measure
}

// NewBRDF builds the reflectance model for one hit. rayDir is the direction
// the ray was traveling when it hit the surface (world space). Construction
// fails when the surface is viewed from behind or at grazing incidence.
func NewBRDF(rayDir, normal core.Vec3, mat Material) (*BRDF, bool) {
	frame := core.NewFrame(normal)
	woLocal := frame.ToLocal(rayDir.Negate())
	if woLocal.Z < core.EpsCosine {
		return nil, false
	}
	return &BRDF{
		material: mat,
		frame:    frame,
		woLocal:  woLocal,
		probs:    newProbabilities(mat),
	}, true
}

// ContinuationProb returns the surface's overall reflectance, used as the
// throughput scale for Russian roulette
func (b *BRDF) ContinuationProb() float64 {
	return b.probs.continuation
}

// Sample draws a continuation direction. The first random number selects the
// lobe against the diffuse probability; the other two drive the chosen lobe's
// direction generator. Returns false when the sampled direction falls below
// the horizon or the surface is fully absorptive.
func (b *BRDF) Sample(rnd core.Vec3) (BRDFSample, bool) {
	if b.probs.continuation == 0 {
		return BRDFSample{}, false
	}
	sample := core.NewVec2(rnd.Y, rnd.Z)
	if rnd.X <= b.probs.diffuse {
		return b.sampleDiffuse(sample)
	}
	return b.sampleSpecular(sample)
}

// Evaluate prices a candidate incoming direction (world space) against the
// mixture: both lobes are evaluated explicitly and combined with the lobe
// probabilities. Returns false when the direction is below the horizon.
func (b *BRDF) Evaluate(dir core.Vec3) (BRDFEval, bool) {
	wiLocal := b.frame.ToLocal(dir).Normalize()
	if wiLocal.Z < core.EpsCosine {
		return BRDFEval{}, false
	}
	diffuse := b.evalDiffuse(wiLocal)
	specular := b.evalSpecular(wiLocal)
	return BRDFEval{
		Value: diffuse.Value.Multiply(b.probs.diffuse).
			Add(specular.Value.Multiply(b.probs.specular)),
		PDF: diffuse.PDF*b.probs.diffuse + specular.PDF*b.probs.specular,
	}, true
}

// sampleDiffuse draws from the cosine-weighted hemisphere around the normal.
// The weight is the diffuse albedo itself: (albedo·cosθ/π) / (cosθ/π), the
// cosine and π cancel because the pdf matches the reflectance shape.
func (b *BRDF) sampleDiffuse(sample core.Vec2) (BRDFSample, bool) {
	wiLocal, pdf := core.SampleCosineHemisphere(sample)
	cosTheta := wiLocal.Z
	if cosTheta < core.EpsCosine {
		return BRDFSample{}, false
	}
	return BRDFSample{
		Direction: b.frame.ToWorld(wiLocal),
		CosTheta:  cosTheta,
		Weight:    b.material.Diffuse,
		PDF:       pdf,
	}, true
}

// sampleSpecular draws from the power-cosine lobe around the mirror of the
// outgoing direction, then carries the result back through the reflection
// frame into the shading frame and world space. The weight is the specular
// albedo by the same cancellation argument as the diffuse lobe.
func (b *BRDF) sampleSpecular(sample core.Vec2) (BRDFSample, bool) {
	wiReflect, pdf := core.SamplePowerCosineHemisphere(b.material.PhongExp, sample)
	reflectDir := core.ReflectLocal(b.woLocal)
	reflectFrame := core.NewFrame(reflectDir)
	wiLocal := reflectFrame.ToWorld(wiReflect)

	// The cosine is measured against the original shading frame's normal
	cosTheta := wiLocal.Z
	if cosTheta < core.EpsCosine {
		return BRDFSample{}, false
	}
	return BRDFSample{
		Direction: b.frame.ToWorld(wiLocal),
		CosTheta:  cosTheta,
		Weight:    b.material.Specular,
		PDF:       pdf,
	}, true
}

func (b *BRDF) evalDiffuse(wiLocal core.Vec3) BRDFEval {
	cosTheta := math.Max(wiLocal.Z, 0)
	return BRDFEval{
		Value: b.material.Diffuse.Multiply(cosTheta / math.Pi),
		PDF:   cosTheta / math.Pi,
	}
}

func (b *BRDF) evalSpecular(wiLocal core.Vec3) BRDFEval {
	reflectDir := core.ReflectLocal(b.woLocal)
	cosTheta := math.Min(math.Max(reflectDir.Dot(wiLocal), 0), 1)
	n := b.material.PhongExp
	lobe := math.Pow(cosTheta, n) * (n + 1) / (2 * math.Pi)
	return BRDFEval{
		Value: b.material.Specular.Multiply(lobe),
		PDF:   lobe,
	}
}
