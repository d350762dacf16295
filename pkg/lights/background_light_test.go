package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mixedlight/pathtracer/pkg/core"
)

func TestBackgroundLight_Illuminate(t *testing.T) {
	light := NewBackgroundLight(core.NewVec3(2, 3, 4), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	expectedPDF := 1.0 / (4.0 * math.Pi)
	expectedEmission := core.NewVec3(1, 1.5, 2)

	for i := 0; i < 500; i++ {
		illum := light.Illuminate(core.NewVec3(1, 2, 3), sampler.Get2D())

		if math.Abs(illum.Direction.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %v", illum.Direction.Length())
		}
		if illum.PDF != expectedPDF {
			t.Fatalf("Expected uniform sphere pdf 1/4π, got %v", illum.PDF)
		}
		if illum.Emission.Subtract(expectedEmission).Length() > 1e-12 {
			t.Fatalf("Expected scaled emission %v, got %v", expectedEmission, illum.Emission)
		}
		if illum.Distance < 1e30 {
			t.Fatalf("Expected effectively infinite distance, got %v", illum.Distance)
		}
	}
}

func TestBackgroundLight_Radiance(t *testing.T) {
	light := NewBackgroundLight(core.NewVec3(1, 1, 1), 2.0)

	rad, ok := light.Radiance(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected background radiance along any ray")
	}
	if rad.Emission != core.NewVec3(2, 2, 2) {
		t.Errorf("Expected emission (2,2,2), got %v", rad.Emission)
	}
	if rad.PDF != core.UniformSpherePDF() {
		t.Errorf("Expected pdf 1/4π, got %v", rad.PDF)
	}
}

func TestBackgroundLight_Capabilities(t *testing.T) {
	light := NewBackgroundLight(core.NewVec3(1, 1, 1), 1.0)
	if light.IsDelta() {
		t.Error("Background light should not be a delta light")
	}
	if light.Type() != LightTypeBackground {
		t.Errorf("Expected background light type, got %v", light.Type())
	}
}
