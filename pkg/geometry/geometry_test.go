package geometry

import (
	"math"
	"testing"

	"github.com/mixedlight/pathtracer/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1, MaterialRef(0))

	hit, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected ray through the center to hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected a front-face hit from outside")
	}
	if hit.Surface != MaterialRef(0) {
		t.Errorf("Surface reference not carried through: %+v", hit.Surface)
	}

	if _, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("Expected ray away from the sphere to miss")
	}
}

func TestSphere_HitFromInside(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 2, MaterialRef(1))

	hit, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit from inside the sphere")
	}
	if hit.FrontFace {
		t.Error("Expected a back-face hit from inside")
	}
	// Normal flipped toward the ray origin
	if hit.Normal.Subtract(core.NewVec3(-1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected inward normal (-1,0,0), got %v", hit.Normal)
	}
}

func TestSphere_RespectsRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1, MaterialRef(0))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	if _, ok := sphere.Hit(ray, 0.001, 1.5); ok {
		t.Error("Expected miss when tMax is before the sphere")
	}
	// tMin past the first surface finds the far side
	hit, ok := sphere.Hit(ray, 2.5, math.Inf(1))
	if !ok || math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected far-side hit at t=4, got %v ok=%v", hit.T, ok)
	}
}

func TestTriangle_Hit(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -2),
		core.NewVec3(1, -1, -2),
		core.NewVec3(0, 1, -2),
		LightRef(3),
	)

	hit, ok := tri.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected ray through the triangle interior to hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}
	if hit.Surface != LightRef(3) {
		t.Errorf("Surface reference not carried through: %+v", hit.Surface)
	}

	// Outside the triangle but in its plane
	miss := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))
	if _, ok := tri.Hit(miss, 0.001, math.Inf(1)); ok {
		t.Error("Expected ray outside the triangle to miss")
	}

	// Parallel to the triangle's plane
	parallel := core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))
	if _, ok := tri.Hit(parallel, 0.001, math.Inf(1)); ok {
		t.Error("Expected parallel ray to miss")
	}
}

func TestTriangle_FaceNormal(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		MaterialRef(0),
	)

	// Approach from +z: geometric normal is +z, front face
	hit, ok := tri.Hit(core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok || !hit.FrontFace {
		t.Fatal("Expected front-face hit from +z")
	}

	// Approach from -z: normal flips toward the ray
	hit, ok = tri.Hit(core.NewRay(core.NewVec3(0.2, 0.2, -1), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit from -z")
	}
	if hit.FrontFace {
		t.Error("Expected back-face hit from -z")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected flipped normal (0,0,-1), got %v", hit.Normal)
	}
}
