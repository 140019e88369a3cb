/*Package ng implements the Ng least-squares acceleration of the Picard
iteration used by the OZ fixed-point driver.

A Buffer is a small fixed-capacity FIFO of the last M=3 (gamma_in, residual)
pairs. It is created fresh at the start of every density step and discarded
at the end of that step; it never aliases the live iteration state held by
package solver.
*/
package ng

import (
	"math"

	"github.com/phil-mansfield/ozsolve/grid"
	"github.com/phil-mansfield/ozsolve/linalg"
)

// DefaultCapacity is M in spec terms: the number of trailing (gamma_in,
// residual) pairs the accelerator keeps.
const DefaultCapacity = 3

// entry is one stored (gamma_in, residual) pair, owned by the Buffer.
type entry struct {
	gammaIn, resid []float64
}

// Buffer accumulates the iteration history needed by Next.
type Buffer struct {
	weights []float64 // r_i^2 * Dr, the Ng inner-product weights
	cap     int
	history []entry // oldest first, length <= cap
}

// NewBuffer builds a Buffer sized for m's grid, retaining the last cap
// (gamma_in, residual) pairs. cap <= 0 defaults to DefaultCapacity.
func NewBuffer(m *grid.Mesh, cap int) *Buffer {
	if cap <= 0 {
		cap = DefaultCapacity
	}

	w := make([]float64, m.N)
	for i, r := range m.R {
		w[i] = r * r * m.Dr
	}

	return &Buffer{weights: w, cap: cap}
}

// Reset clears the iteration history. Called once per density step.
func (b *Buffer) Reset() {
	b.history = b.history[:0]
}

// Push records a new (gamma_in, gamma_out) observation. gammaIn and
// gammaOut are copied; the caller's slices may be reused afterward.
func (b *Buffer) Push(gammaIn, gammaOut []float64) {
	n := len(gammaIn)
	resid := make([]float64, n)
	for i := range resid {
		resid[i] = gammaOut[i] - gammaIn[i]
	}

	gCopy := make([]float64, n)
	copy(gCopy, gammaIn)

	b.history = append(b.history, entry{gammaIn: gCopy, resid: resid})
	if len(b.history) > b.cap {
		b.history = b.history[1:]
	}
}

// dot computes the Ng weighted inner product sum_i weights[i]*x[i]*y[i].
func (b *Buffer) dot(x, y []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += b.weights[i] * x[i] * y[i]
	}
	return sum
}

func (b *Buffer) norm(x []float64) float64 {
	return math.Sqrt(b.dot(x, x))
}

// Next returns the accelerated gamma_next given the most recent Push. xnu
// is the legacy damping tunable: 1/xnu is the Picard damping applied when
// Ng is unavailable or the residual is not yet controlled, ramping toward
// full (undamped) Picard steps as the residual norm shrinks.
func (b *Buffer) Next(xnu float64) []float64 {
	if len(b.history) == 0 {
		panic("ng: Next called before any Push")
	}

	last := b.history[len(b.history)-1]
	dNormalized := math.Min(1, b.norm(last.resid))

	if len(b.history) >= 3 && b.norm(last.resid) < 1 {
		return b.ngStep()
	}

	omega := 1 - (1-1/xnu)*dNormalized
	n := len(last.gammaIn)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = last.gammaIn[i] + omega*last.resid[i]
	}
	return out
}

// ngStep implements the least-squares projection in spec.md 4.4: fit
// (c1, c2) minimizing ||d_n - c1*(d_n-d_{n-1}) - c2*(d_n-d_{n-2})||^2 under
// the weighted inner product, then blend the last three (gamma_in+resid)
// iterates by (1-c1-c2, c1, c2).
func (b *Buffer) ngStep() []float64 {
	h := b.history
	n2, n1, n0 := h[len(h)-3], h[len(h)-2], h[len(h)-1] // n-2, n-1, n
	dn, dn1, dn2 := n0.resid, n1.resid, n2.resid

	a := make([]float64, len(dn))
	c := make([]float64, len(dn))
	for i := range dn {
		a[i] = dn[i] - dn1[i]
		c[i] = dn[i] - dn2[i]
	}

	m := linalg.NewMatrix([]float64{
		b.dot(a, a), b.dot(a, c),
		b.dot(c, a), b.dot(c, c),
	}, 2, 2)
	rhs := []float64{b.dot(a, dn), b.dot(c, dn)}

	var coeff []float64
	if det2x2(m) == 0 {
		coeff = []float64{0, 0}
	} else {
		coeff = m.SolveVector(rhs)
	}
	c1, c2 := coeff[0], coeff[1]

	out := make([]float64, len(dn))
	w0, w1, w2 := 1-c1-c2, c1, c2
	for i := range out {
		out[i] = w0*(n0.gammaIn[i]+dn[i]) +
			w1*(n1.gammaIn[i]+dn1[i]) +
			w2*(n2.gammaIn[i]+dn2[i])
	}
	return out
}

func det2x2(m *linalg.Matrix) float64 {
	return m.Vals[0]*m.Vals[3] - m.Vals[1]*m.Vals[2]
}
