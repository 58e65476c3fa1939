package render

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/akmonengine/affine"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelMatrix(t *testing.T) {
	tr := affine.New(mgl64.Vec3{1, 2, 3}, mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{2, 2, 2})

	m := ModelMatrix(tr)

	// same layout as the float32 engine path: T * R * S
	expected := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0}).Mat4()).
		Mul4(mgl32.Scale3D(2, 2, 2))
	assert.InDeltaSlice(t, expected[:], m[:], 1e-5, "expected %v, got %v", expected, m)
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, m.Col(3))
}

func TestRowMajor(t *testing.T) {
	m := mgl64.Translate3D(4, 5, 6)

	rowMajor := RowMajor(m)

	// translation lives in the last column, i.e. the end of each row
	assert.Equal(t, float32(4), rowMajor[3])
	assert.Equal(t, float32(5), rowMajor[7])
	assert.Equal(t, float32(6), rowMajor[11])
	assert.Equal(t, float32(1), rowMajor[15])
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, float32(m.At(r, c)), rowMajor[4*r+c])
		}
	}
}

func TestPackMatrices(t *testing.T) {
	a := mgl32.Ident4()
	b := mgl32.Translate3D(-1, 0.5, 8)

	buf := PackMatrices([]mgl32.Mat4{a, b})

	require.Len(t, buf, 2*MatrixSize)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a[i], math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
		assert.Equal(t, b[i], math.Float32frombits(binary.LittleEndian.Uint32(buf[MatrixSize+i*4:])))
	}
	// column-major: translation x of the second matrix is element 12
	assert.Equal(t, float32(-1), math.Float32frombits(binary.LittleEndian.Uint32(buf[MatrixSize+12*4:])))
}

func TestModelBuffer(t *testing.T) {
	transforms := []affine.Transform{
		affine.Identity(),
		affine.New(mgl64.Vec3{3, 0, 0}, mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1}),
		affine.New(mgl64.Vec3{0, 0, 0}, mgl64.QuatRotate(1, mgl64.Vec3{1, 0, 0}), mgl64.Vec3{0.5, 0.5, 0.5}),
	}

	buf := ModelBuffer(transforms, 2)

	expected := make([]mgl32.Mat4, len(transforms))
	for i, tr := range transforms {
		expected[i] = ModelMatrix(tr)
	}
	assert.Equal(t, PackMatrices(expected), buf)
	assert.Empty(t, ModelBuffer(nil, 2))
}
