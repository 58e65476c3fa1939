package affine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ToMatrices converts every transform into its model matrix
func ToMatrices(transforms []Transform, workers int) []mgl64.Mat4 {
	matrices := make([]mgl64.Mat4, len(transforms))
	task(workers, transforms, func(i int, t Transform) {
		matrices[i] = TransformToMatrix(t)
	})

	return matrices
}

// TransformPoints applies t to every point
func TransformPoints(t Transform, points []mgl64.Vec3, workers int) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(points))
	task(workers, points, func(i int, p mgl64.Vec3) {
		out[i] = TransformPoint(t, p)
	})

	return out
}

// MixAll blends two poses element by element, typically one transform per joint.
func MixAll(a, b []Transform, t float64, workers int) ([]Transform, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("cannot mix poses of different sizes: %d and %d", len(a), len(b))
	}

	out := make([]Transform, len(a))
	task(workers, a, func(i int, from Transform) {
		out[i] = Mix(from, b[i], t)
	})

	return out, nil
}
