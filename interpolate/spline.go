/*Package interpolate resamples a function tabulated on the solver's native
half-integer grid onto an arbitrary grid supplied by a caller. It is an
external collaborator: no other package in this repository imports it.
*/
package interpolate

import "log"

// Spline represents a natural cubic spline through a table of x, y values.
type Spline struct {
	xs, ys, y2s []float64
	incr        bool
	dx          float64
}

// NewSpline builds a spline through xs, ys. xs must be sorted, strictly
// increasing or strictly decreasing, and at least two points long.
func NewSpline(xs, ys []float64) *Spline {
	if len(xs) != len(ys) {
		log.Fatalf(
			"interpolate: NewSpline given len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		log.Fatalf("interpolate: NewSpline given a table of length %d.", len(xs))
	}

	sp := &Spline{
		xs:  append([]float64(nil), xs...),
		ys:  append([]float64(nil), ys...),
		y2s: make([]float64, len(xs)),
	}

	if xs[0] < xs[1] {
		sp.incr = true
		for i := 0; i < len(xs)-1; i++ {
			if xs[i+1] < xs[i] {
				log.Fatal("interpolate: NewSpline given an unsorted table.")
			}
		}
	} else {
		sp.incr = false
		for i := 0; i < len(xs)-1; i++ {
			if xs[i+1] > xs[i] {
				log.Fatal("interpolate: NewSpline given an unsorted table.")
			}
		}
	}

	sp.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	sp.secondDerivative()
	return sp
}

// Eval returns the spline's value at x. x must lie within [xs[0], xs[n-1]]
// (or the reverse, if the table was given in decreasing order).
func (sp *Spline) Eval(x float64) float64 {
	i := sp.bsearch(x)
	x0, x1 := sp.xs[i], sp.xs[i+1]
	h := x1 - x0
	a := (x1 - x) / h
	b := (x - x0) / h

	return a*sp.ys[i] + b*sp.ys[i+1] +
		((a*a*a-a)*sp.y2s[i]+(b*b*b-b)*sp.y2s[i+1])*(h*h)/6
}

// bsearch returns the index i such that x lies between xs[i] and xs[i+1].
func (sp *Spline) bsearch(x float64) int {
	guess := int((x - sp.xs[0]) / sp.dx)
	if guess >= 0 && guess < len(sp.xs)-1 &&
		(sp.xs[guess] <= x == sp.incr) &&
		(sp.xs[guess+1] >= x == sp.incr) {
		return guess
	}

	lo, hi := 0, len(sp.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if sp.incr == (x >= sp.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}

	if lo == len(sp.xs)-1 {
		log.Fatalf(
			"interpolate: point %g out of Spline bounds [%g, %g].",
			x, sp.xs[0], sp.xs[len(sp.xs)-1],
		)
	}
	return lo
}

// secondDerivative computes the natural-boundary second derivatives at
// every table point via the standard tridiagonal cubic-spline system.
func (sp *Spline) secondDerivative() {
	n := len(sp.xs)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		j := i + 1
		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = (ys[j+1]-ys[j])/(xs[j+1]-xs[j]) -
			(ys[j]-ys[j-1])/(xs[j]-xs[j-1])
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

// TriDiagAt solves the tridiagonal system with sub/main/super diagonals
// as, bs, cs and right-hand side rs, writing the solution into out.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {
		log.Fatal("interpolate: TriDiagAt given mismatched argument lengths.")
	}
	if len(as) == 0 {
		return
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		log.Fatal("interpolate: TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			log.Fatal("interpolate: TriDiagAt cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

// Resample evaluates a spline through (xs, ys) at every point in target.
func Resample(xs, ys, target []float64) []float64 {
	sp := NewSpline(xs, ys)
	out := make([]float64, len(target))
	for i, x := range target {
		out[i] = sp.Eval(x)
	}
	return out
}
