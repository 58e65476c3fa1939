// Package affine implements position/rotation/scale transforms and their conversion to and from 4x4 matrices.
package affine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// Epsilon is the magnitude under which a scale component is considered degenerate
const Epsilon = 1e-6

// Transform is an affine transform stored as separate position, rotation and scale.
// Applied to a point it scales first, then rotates, then translates.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat // expected to stay close to unit length
	Scale    mgl64.Vec3
}

// Identity returns the transform that leaves every point unchanged
func Identity() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// New creates a transform from its three components
func New(position mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: scale}
}

// Normalized returns a copy of t with its rotation renormalized.
// Long chains of Combine accumulate drift; callers keeping such chains alive should call it periodically.
func (t Transform) Normalized() Transform {
	t.Rotation = t.Rotation.Normalize()
	return t
}

// Rotate rotates v by the quaternion q
func Rotate(q mgl64.Quat, v mgl64.Vec3) mgl64.Vec3 {
	return q.Rotate(v)
}

// Hadamard returns the component-wise product of a and b
func Hadamard(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// Combine composes two transforms: the result applies t2 first, then t1.
func Combine(t1, t2 Transform) Transform {
	return Transform{
		// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
		Position: t1.Position.Add(Rotate(t1.Rotation, Hadamard(t1.Scale, t2.Position))),
		// mgl64 uses the Hamilton product: the right operand is applied first
		Rotation: t1.Rotation.Mul(t2.Rotation),
		Scale:    Hadamard(t1.Scale, t2.Scale),
	}
}

// Chain combines the transforms from parent to child.
// Chain(a, b, c) is Combine(Combine(a, b), c); an empty chain is the identity.
func Chain(transforms ...Transform) Transform {
	result := Identity()
	for _, t := range transforms {
		result = Combine(result, t)
	}

	return result
}

// Inverse returns the transform undoing t.
// Scale components below Epsilon cannot be inverted and collapse to 0.
func Inverse(t Transform) Transform {
	rotation := t.Rotation.Inverse()
	scale := mgl64.Vec3{
		invertScale(t.Scale.X()),
		invertScale(t.Scale.Y()),
		invertScale(t.Scale.Z()),
	}

	return Transform{
		Position: Rotate(rotation, Hadamard(scale, t.Position.Mul(-1))),
		Rotation: rotation,
		Scale:    scale,
	}
}

func invertScale(s float64) float64 {
	if math.Abs(s) < Epsilon {
		return 0
	}

	return 1 / s
}

// Mix blends a and b linearly; t is not clamped so it may extrapolate.
// The rotation takes the shortest arc and is renormalized (nlerp, not slerp).
func Mix(a, b Transform, t float64) Transform {
	bRotation := b.Rotation
	if a.Rotation.Dot(bRotation) < 0 {
		bRotation = bRotation.Scale(-1)
	}

	return Transform{
		Position: lerp(a.Position, b.Position, t),
		Rotation: mgl64.QuatNlerp(a.Rotation, bRotation, t),
		Scale:    lerp(a.Scale, b.Scale, t),
	}
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// TransformPoint applies scale, rotation then translation to p
func TransformPoint(t Transform, p mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(TransformVector(t, p))
}

// TransformVector applies scale then rotation to v. Directions ignore translation.
func TransformVector(t Transform, v mgl64.Vec3) mgl64.Vec3 {
	return Rotate(t.Rotation, Hadamard(t.Scale, v))
}

// ApproxEqual reports whether a and b match within epsilon.
// Rotations are compared as orientations, so q and -q are equal.
func ApproxEqual(a, b Transform, epsilon float64) bool {
	return floats.EqualApprox(a.Position[:], b.Position[:], epsilon) &&
		floats.EqualApprox(a.Scale[:], b.Scale[:], epsilon) &&
		math.Abs(a.Rotation.Dot(b.Rotation)) > 1-epsilon
}
