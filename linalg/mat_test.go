package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveVector2x2(t *testing.T) {
	// [2 1] [x0]   [5]
	// [1 3] [x1] = [10]
	// x0 = 1, x1 = 3
	m := NewMatrix([]float64{
		2, 1,
		1, 3,
	}, 2, 2)

	xs := m.SolveVector([]float64{5, 10})
	assert.InDelta(t, 1.0, xs[0], 1e-10)
	assert.InDelta(t, 3.0, xs[1], 1e-10)
}

func TestSolveVector3x3(t *testing.T) {
	m := NewMatrix([]float64{
		1, 3, 5,
		2, 4, 7,
		1, 1, 0,
	}, 3, 3)

	// Pick a known solution and construct b = m*x.
	x := []float64{2, -1, 0.5}
	b := make([]float64, 3)
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += m.Vals[i*3+j] * x[j]
		}
		b[i] = sum
	}

	got := m.SolveVector(b)
	for i := range x {
		assert.InDelta(t, x[i], got[i], 1e-9)
	}
}

func TestSolveVectorAliased(t *testing.T) {
	m := NewMatrix([]float64{
		4, 0,
		0, 2,
	}, 2, 2)

	bs := []float64{8, 4}
	xs := bs
	lu := m.LU()
	lu.SolveVector(bs, xs)
	assert.InDelta(t, 2.0, xs[0], 1e-10)
	assert.InDelta(t, 2.0, xs[1], 1e-10)
}
