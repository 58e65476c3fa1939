// Package rigid converts transforms to and from gonum quaternions and dual quaternions.
//
// A unit dual quaternion r + ϵ½tr holds a rotation r followed by a translation t.
// It has no room for scale: scale is dropped on the way in and set to one on the way out.
package rigid

import (
	"github.com/akmonengine/affine"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// ToQuat converts an mgl64 quaternion to a gonum one
func ToQuat(q mgl64.Quat) quat.Number {
	return quat.Number{Real: q.W, Imag: q.V.X(), Jmag: q.V.Y(), Kmag: q.V.Z()}
}

// FromQuat converts a gonum quaternion to an mgl64 one
func FromQuat(q quat.Number) mgl64.Quat {
	return mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}
}

// raise lifts a point to a pure quaternion
func raise(p mgl64.Vec3) quat.Number {
	return quat.Number{Imag: p.X(), Jmag: p.Y(), Kmag: p.Z()}
}

func lower(q quat.Number) mgl64.Vec3 {
	return mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}
}

// ToDualQuat returns the rigid part of t as a dual quaternion
func ToDualQuat(t affine.Transform) dualquat.Number {
	r := ToQuat(t.Rotation)

	return dualquat.Number{
		Real: r,
		Dual: quat.Scale(0.5, quat.Mul(raise(t.Position), r)),
	}
}

// FromDualQuat returns the transform held by a unit dual quaternion, with unit scale
func FromDualQuat(d dualquat.Number) affine.Transform {
	translation := quat.Scale(2, quat.Mul(d.Dual, quat.Conj(d.Real)))

	return affine.Transform{
		Position: lower(translation),
		Rotation: FromQuat(d.Real),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// TransformPoint applies the unit dual quaternion d to p
func TransformPoint(d dualquat.Number, p mgl64.Vec3) mgl64.Vec3 {
	// d (1 + ϵp) d̅, where d̅ conjugates both the quaternion and the dual part
	point := dualquat.Number{Real: quat.Number{Real: 1}, Dual: raise(p)}
	moved := dualquat.Mul(dualquat.Mul(d, point), dualquat.Conj(d))

	return lower(moved.Dual)
}
