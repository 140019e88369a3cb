/*Package linalg contains routines for executing operations on small dense
matrices. Operations are split into easy to use methods which might be
somewhat wasteful with memory consumption and execution time and slightly
less easy to use methods which require explicitly managing LU
decomposition.

Everything only works on square matrices because that's all the Ng
accelerator's normal-equations solve needs.
*/
package linalg

import (
	"math"
)

// Matrix represents a matrix of float64 values in row-major order.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors contains data fields necessary for a number of matrix
// operations. Exporting this type allows calling routines to better manage
// their memory consumption and to avoid recomputing the same decomposition
// many times.
type LUFactors struct {
	lu    Matrix
	pivot []int
	d     float64
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// SolveVector solves the equation m * xs = bs for xs.
func (m *Matrix) SolveVector(bs []float64) []float64 {
	xs := make([]float64, len(bs))
	lu := m.LU()
	return lu.SolveVector(bs, xs)
}

// NewLUFactors creates an LUFactors instance of the requested dimensions.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors(m.Width)
	m.LUFactorsAt(lu)
	return lu
}

// LUFactorsAt stores the LU decomposition of a matrix at the specified
// location.
func (m *Matrix) LUFactorsAt(luf *LUFactors) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimensions than m.")
	}

	n := m.Width
	for i := 0; i < n; i++ {
		luf.pivot[i] = i
	}
	lu := luf.lu.Vals

	luf.d = 1

	// Crout's algorithm.
	copy(lu, m.Vals)

	for k := 0; k < n; k++ {
		maxRow := findMaxRow(n, lu, k)
		luf.pivot[k], luf.pivot[maxRow] = luf.pivot[maxRow], luf.pivot[k]

		if k != maxRow {
			swapRows(k, maxRow, n, lu)
			luf.d = -luf.d
		}

		kOffset := k * n
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}
}

// findMaxRow finds the index of the row containing the maximum value in the
// column. Ignores the values above the point m_col,col since those have
// already been swapped.
func findMaxRow(n int, m []float64, col int) int {
	max, maxRow := -1.0, col

	for i := col; i < n; i++ {
		val := math.Abs(m[i*n+col])
		if val > max {
			max = val
			maxRow = i
		}
	}
	return maxRow
}

func swapRows(i1, i2, n int, lu []float64) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset+j, i2Offset+j
		lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
	}
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) []float64 {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	// A x = b -> (L U) x = b -> L (U x) = b -> L y = b
	ys := xs
	if &bs[0] == &ys[0] {
		bs = make([]float64, n)
		copy(bs, ys)
	}

	forwardSubst(n, luf.pivot, luf.lu.Vals, bs, ys)
	backSubst(n, luf.lu.Vals, ys, xs)

	return xs
}

// forwardSubst solves L * y = b for y.
func forwardSubst(n int, pivot []int, lu, bs, ys []float64) {
	for i := 0; i < n; i++ {
		ys[i] = bs[pivot[i]]
	}
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += lu[i*n+j] * ys[j]
		}
		ys[i] = ys[i] - sum
	}
}

// backSubst solves U * x = y for x.
func backSubst(n int, lu, ys, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += lu[i*n+j] * xs[j]
		}
		xs[i] = (ys[i] - sum) / lu[i*n+i]
	}
}
