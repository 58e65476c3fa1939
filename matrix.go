package affine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	axisRight   = mgl64.Vec3{1, 0, 0}
	axisUp      = mgl64.Vec3{0, 1, 0}
	axisForward = mgl64.Vec3{0, 0, 1}
)

// TransformToMatrix converts t into a homogeneous matrix, M = T*R*S.
// Each axis column is the world axis rotated by t.Rotation and scaled by the matching scale component.
func TransformToMatrix(t Transform) mgl64.Mat4 {
	right := Rotate(t.Rotation, axisRight).Mul(t.Scale.X())
	up := Rotate(t.Rotation, axisUp).Mul(t.Scale.Y())
	forward := Rotate(t.Rotation, axisForward).Mul(t.Scale.Z())

	return mgl64.Mat4FromCols(
		right.Vec4(0),
		up.Vec4(0),
		forward.Vec4(0),
		t.Position.Vec4(1),
	)
}

// MatrixToTransform decomposes m into position, rotation and scale.
// Shear cannot be represented: the scale of a sheared matrix is undefined.
func MatrixToTransform(m mgl64.Mat4) Transform {
	right, up, forward := Axes(m)
	rotation := mgl64.Mat4ToQuat(basisMatrix(orthonormalize(right, up, forward))).Normalize()

	// M = R*S once the translation is dropped, so S = R^-1 * M
	scaleMatrix := rotation.Conjugate().Mat4().Mul4(AxisMatrix(m))

	return Transform{
		Position: Translation(m),
		Rotation: rotation,
		Scale:    mgl64.Vec3{scaleMatrix.At(0, 0), scaleMatrix.At(1, 1), scaleMatrix.At(2, 2)},
	}
}

// AxisMatrix returns the matrix holding only the right, up and forward columns of m, without translation
func AxisMatrix(m mgl64.Mat4) mgl64.Mat4 {
	return basisMatrix(Axes(m))
}

// Axes returns the right, up and forward columns of m
func Axes(m mgl64.Mat4) (right, up, forward mgl64.Vec3) {
	return m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()
}

// Translation returns the position column of m
func Translation(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

func basisMatrix(right, up, forward mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Mat4FromCols(
		right.Vec4(0),
		up.Vec4(0),
		forward.Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// orthonormalize strips the scale from each axis. A reflected basis has its right axis
// flipped so that the result stays a proper rotation; the sign then shows up in scale.x.
func orthonormalize(right, up, forward mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	right = unitOr(right, axisRight)
	up = unitOr(up, axisUp)
	forward = unitOr(forward, axisForward)

	if right.Dot(up.Cross(forward)) < 0 {
		right = right.Mul(-1)
	}

	return right, up, forward
}

func unitOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	length := v.Len()
	if length < Epsilon || math.IsNaN(length) {
		return fallback
	}

	return v.Mul(1 / length)
}
