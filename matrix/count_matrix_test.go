package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMatrixShape(t *testing.T) {
	m := NewCountMatrix(uint32(2), uint32(3))

	r, c := m.Shape()

	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(3), c)
}

func TestCountMatrixGetSet(t *testing.T) {
	m := NewCountMatrix(uint32(2), uint32(3))

	val := uint32(0)
	for r := 0; r < 2; r += 1 {
		for c := 0; c < 3; c += 1 {
			m.Set(uint32(r), uint32(c), val)
			val += uint32(1)
		}
	}

	assert.Equal(t, uint32(0), m.Get(0, 0))
	assert.Equal(t, uint32(1), m.Get(0, 1))
	assert.Equal(t, uint32(2), m.Get(0, 2))
	assert.Equal(t, uint32(3), m.Get(1, 0))
	assert.Equal(t, uint32(4), m.Get(1, 1))
	assert.Equal(t, uint32(5), m.Get(1, 2))
}

func TestCountMatrixIncr(t *testing.T) {
	m := NewCountMatrix(uint32(2), uint32(2))

	m.Incr(uint32(1), uint32(1), uint32(2))
	assert.Equal(t, uint32(2), m.Get(uint32(1), uint32(1)))

	m.Incr(uint32(1), uint32(1), uint32(1))
	assert.Equal(t, uint32(3), m.Get(uint32(1), uint32(1)))
}

func TestCountMatrixGetRow(t *testing.T) {
	m := NewCountMatrix(uint32(2), uint32(3))
	m.Set(uint32(1), uint32(0), uint32(7))
	m.Set(uint32(1), uint32(2), uint32(9))

	assert.Equal(t, []uint32{7, 0, 9}, m.GetRow(uint32(1)))
}

func TestCountMatrixZeroColumns(t *testing.T) {
	m := NewCountMatrix(uint32(3), uint32(0))

	r, c := m.Shape()
	assert.Equal(t, uint32(3), r)
	assert.Equal(t, uint32(0), c)

	assert.Panics(t, func() { m.Get(0, 0) })
}
