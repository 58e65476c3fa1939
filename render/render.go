// Package render converts transforms into the float32 layouts a rendering backend uploads to shaders.
package render

import (
	"encoding/binary"
	"math"

	"github.com/akmonengine/affine"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f32"
)

// MatrixSize is the number of bytes a packed Mat4 takes in a GPU buffer
const MatrixSize = 16 * 4

// Matrix32 narrows m to float32, keeping the column-major layout
func Matrix32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}

	return out
}

// ModelMatrix returns the float32 model matrix of t
func ModelMatrix(t affine.Transform) mgl32.Mat4 {
	return Matrix32(affine.TransformToMatrix(t))
}

// RowMajor narrows m to a row-major float32 matrix, m[4*r + c]
func RowMajor(m mgl64.Mat4) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = float32(m.At(r, c))
		}
	}

	return out
}

// PackMatrices writes the matrices back to back, column-major, as little-endian float32
func PackMatrices(matrices []mgl32.Mat4) []byte {
	buf := make([]byte, len(matrices)*MatrixSize)
	for i, m := range matrices {
		offset := i * MatrixSize
		for j, v := range m {
			binary.LittleEndian.PutUint32(buf[offset+j*4:offset+j*4+4], math.Float32bits(v))
		}
	}

	return buf
}

// ModelBuffer builds the packed model matrices of every transform, ready for a storage buffer upload
func ModelBuffer(transforms []affine.Transform, workers int) []byte {
	matrices := affine.ToMatrices(transforms, workers)

	narrowed := make([]mgl32.Mat4, len(matrices))
	for i, m := range matrices {
		narrowed[i] = Matrix32(m)
	}

	return PackMatrices(narrowed)
}
