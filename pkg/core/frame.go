package core

import "math"

// Frame is an orthonormal basis aligned to a direction (the local z-axis).
// It converts vectors between local shading space and world space.
type Frame struct {
	X, Y, Z Vec3
}

// NewFrame builds a frame whose z-axis is the given direction.
// The tangent choice is arbitrary; the renderer is isotropic about it.
func NewFrame(z Vec3) Frame {
	z = z.Normalize()

	// Pick a helper axis that is not parallel to z
	var helper Vec3
	if math.Abs(z.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	x := helper.Cross(z).Normalize()
	y := z.Cross(x)
	return Frame{X: x, Y: y, Z: z}
}

// ToLocal transforms a world-space vector into the frame's local space
func (f Frame) ToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(f.X), v.Dot(f.Y), v.Dot(f.Z))
}

// ToWorld transforms a local-space vector back into world space
func (f Frame) ToWorld(v Vec3) Vec3 {
	return f.X.Multiply(v.X).Add(f.Y.Multiply(v.Y)).Add(f.Z.Multiply(v.Z))
}

// Normal returns the frame's z-axis
func (f Frame) Normal() Vec3 {
	return f.Z
}

// ReflectLocal mirrors a local-space vector about the local z-axis
func ReflectLocal(v Vec3) Vec3 {
	return NewVec3(-v.X, -v.Y, v.Z)
}
