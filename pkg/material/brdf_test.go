package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mixedlight/pathtracer/pkg/core"
)

// testHit returns a BRDF for a ray hitting a +y facing surface head-on
func testHit(t *testing.T, mat Material) *BRDF {
	t.Helper()
	rayDir := core.NewVec3(0, -1, 0)
	normal := core.NewVec3(0, 1, 0)
	brdf, ok := NewBRDF(rayDir, normal, mat)
	if !ok {
		t.Fatal("Expected BRDF construction to succeed for a head-on hit")
	}
	return brdf
}

func TestNewBRDF_GrazingAndBackface(t *testing.T) {
	mat := NewMaterial(core.NewVec3(0.5, 0.5, 0.5), core.Vec3{}, 0)
	normal := core.NewVec3(0, 1, 0)

	// Ray arriving from behind the surface
	if _, ok := NewBRDF(core.NewVec3(0, 1, 0), normal, mat); ok {
		t.Error("Expected construction to fail for a back-facing hit")
	}

	// Grazing incidence, cosine below epsilon
	grazing := core.NewVec3(1, -1e-9, 0).Normalize()
	if _, ok := NewBRDF(grazing, normal, mat); ok {
		t.Error("Expected construction to fail at grazing incidence")
	}
}

func TestBRDF_SampleAbsorptive(t *testing.T) {
	// A fully absorptive surface never yields a direction
	mat := NewMaterial(core.Vec3{}, core.Vec3{}, 0)
	brdf := testHit(t, mat)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		if _, ok := brdf.Sample(sampler.Get3D()); ok {
			t.Fatal("Expected absorptive surface to never sample a direction")
		}
	}
}

func TestBRDF_SampleDiffuseCancellation(t *testing.T) {
	// The diffuse weight is the albedo itself and the pdf is cosθ/π,
	// independent of the drawn random numbers
	albedo := core.NewVec3(0.6, 0.4, 0.2)
	mat := NewMaterial(albedo, core.Vec3{}, 0)
	brdf := testHit(t, mat)
	normal := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	const tolerance = 1e-9
	for i := 0; i < 500; i++ {
		sample, ok := brdf.Sample(sampler.Get3D())
		if !ok {
			continue
		}
		if sample.Weight.Subtract(albedo).Length() > tolerance {
			t.Fatalf("Expected weight equal to diffuse albedo %v, got %v", albedo, sample.Weight)
		}
		cosTheta := sample.Direction.Dot(normal)
		if math.Abs(sample.CosTheta-cosTheta) > tolerance {
			t.Fatalf("CosTheta mismatch: reported %v, actual %v", sample.CosTheta, cosTheta)
		}
		if math.Abs(sample.PDF-cosTheta/math.Pi) > tolerance {
			t.Fatalf("Expected pdf cosθ/π = %v, got %v", cosTheta/math.Pi, sample.PDF)
		}
	}
}

func TestBRDF_SampleSpecularWeight(t *testing.T) {
	specular := core.NewVec3(0.8, 0.7, 0.6)
	mat := NewMaterial(core.Vec3{}, specular, 50)
	brdf := testHit(t, mat)
	normal := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	sampled := 0
	for i := 0; i < 500; i++ {
		sample, ok := brdf.Sample(sampler.Get3D())
		if !ok {
			continue
		}
		sampled++
		if sample.Weight.Subtract(specular).Length() > 1e-9 {
			t.Fatalf("Expected weight equal to specular albedo, got %v", sample.Weight)
		}
		if sample.Direction.Dot(normal) < core.EpsCosine {
			t.Fatalf("Sampled direction below the horizon: %v", sample.Direction)
		}
	}
	if sampled == 0 {
		t.Fatal("Expected some successful specular samples")
	}
}

func TestBRDF_SpecularConcentratesAroundMirror(t *testing.T) {
	// For a head-on ray on a +y surface the mirror direction is +y
	mat := NewMaterial(core.Vec3{}, core.NewVec3(0.9, 0.9, 0.9), 1000)
	brdf := testHit(t, mat)
	mirror := core.NewVec3(0, 1, 0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(11)))
	sum := 0.0
	n := 0
	for i := 0; i < 1000; i++ {
		sample, ok := brdf.Sample(sampler.Get3D())
		if !ok {
			continue
		}
		sum += sample.Direction.Dot(mirror)
		n++
	}
	if n == 0 || sum/float64(n) < 0.99 {
		t.Errorf("Expected tight lobe around the mirror direction, mean cos %v over %d samples", sum/float64(n), n)
	}
}

func TestBRDF_EvaluateBelowHorizon(t *testing.T) {
	mat := NewMaterial(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.3, 0.3, 0.3), 20)
	brdf := testHit(t, mat)

	below := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -0.1, 0).Normalize(),
		core.NewVec3(1, 0, 0), // exactly on the horizon
	}
	for _, dir := range below {
		if _, ok := brdf.Evaluate(dir); ok {
			t.Errorf("Expected evaluation of %v to be absent", dir)
		}
	}
}

func TestBRDF_EvaluateMixture(t *testing.T) {
	diffuse := core.NewVec3(0.5, 0.5, 0.5)
	specular := core.NewVec3(0.25, 0.25, 0.25)
	phongExp := 8.0
	mat := NewMaterial(diffuse, specular, phongExp)
	brdf := testHit(t, mat)

	// Head-on hit: local outgoing direction is +z, so the mirror is +z too.
	// Query the normal direction, where both lobes peak.
	eval, ok := brdf.Evaluate(core.NewVec3(0, 1, 0))
	if !ok {
		t.Fatal("Expected evaluation along the normal to succeed")
	}

	probDiffuse := diffuse.Luminance() / (diffuse.Luminance() + specular.Luminance())
	probSpecular := 1 - probDiffuse

	lambertPDF := 1.0 / math.Pi // cosθ = 1
	phongPDF := (phongExp + 1) / (2 * math.Pi)
	expectedPDF := lambertPDF*probDiffuse + phongPDF*probSpecular
	if math.Abs(eval.PDF-expectedPDF) > 1e-9 {
		t.Errorf("Expected mixture pdf %v, got %v", expectedPDF, eval.PDF)
	}

	expectedValue := diffuse.Multiply(lambertPDF * probDiffuse).
		Add(specular.Multiply(phongPDF * probSpecular))
	if eval.Value.Subtract(expectedValue).Length() > 1e-9 {
		t.Errorf("Expected mixture value %v, got %v", expectedValue, eval.Value)
	}
}

func TestBRDF_ContinuationProb(t *testing.T) {
	mat := NewMaterial(core.NewVec3(0.4, 0.4, 0.4), core.NewVec3(0.2, 0.2, 0.2), 10)
	brdf := testHit(t, mat)
	if math.Abs(brdf.ContinuationProb()-mat.TotalAlbedo()) > 1e-12 {
		t.Errorf("Expected continuation prob %v, got %v", mat.TotalAlbedo(), brdf.ContinuationProb())
	}
}
