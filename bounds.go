package affine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the half size of the box on each axis
func (a AABB) Extents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// TransformAABB returns the world-space bounds of a local box moved by t
func TransformAABB(t Transform, box AABB) AABB {
	corners := [8]mgl64.Vec3{
		{box.Min.X(), box.Min.Y(), box.Min.Z()},
		{box.Max.X(), box.Min.Y(), box.Min.Z()},
		{box.Min.X(), box.Max.Y(), box.Min.Z()},
		{box.Max.X(), box.Max.Y(), box.Min.Z()},
		{box.Min.X(), box.Min.Y(), box.Max.Z()},
		{box.Max.X(), box.Min.Y(), box.Max.Z()},
		{box.Min.X(), box.Max.Y(), box.Max.Z()},
		{box.Max.X(), box.Max.Y(), box.Max.Z()},
	}

	worldCorner := TransformPoint(t, corners[0])
	min := worldCorner
	max := worldCorner

	for i := 1; i < 8; i++ {
		worldCorner = TransformPoint(t, corners[i])

		min[0] = math.Min(min[0], worldCorner[0])
		min[1] = math.Min(min[1], worldCorner[1])
		min[2] = math.Min(min[2], worldCorner[2])

		max[0] = math.Max(max[0], worldCorner[0])
		max[1] = math.Max(max[1], worldCorner[1])
		max[2] = math.Max(max[2], worldCorner[2])
	}

	return AABB{Min: min, Max: max}
}
