/*Package closure implements the HNC, PY, and Rogers-Young relations that
close the Ornstein-Zernike equation, plus the RY-specific HNC/PY mixing
function f(r) = 1 - exp(-alpha*r).

Apply is pointwise and stateless: every c[i] depends only on gamma[i],
U[i], beta, alpha, and whether i falls inside a hard core. Nothing here
retains iteration state; that belongs to package ng and package solver.
*/
package closure

import "math"

// Kind selects which closure relation Apply uses.
type Kind int

const (
	HNC Kind = iota
	PY
	RY
)

func (k Kind) String() string {
	switch k {
	case HNC:
		return "HNC"
	case PY:
		return "PY"
	case RY:
		return "RY"
	default:
		return "unknown closure"
	}
}

// rySeriesCutoff is the |alpha*r| below which f(r) = 1-exp(-alpha*r) is
// evaluated by its Taylor series instead of directly, to avoid the
// removable 0/0 singularity in (exp(gamma*f)-1)/f as f -> 0.
const rySeriesCutoff = 1e-4

// Apply fills out[i] = c(r) for every grid point, given the indirect
// correlation gamma, the potential U, the inverse temperature beta, and
// (for RY only) the mixing parameter alpha. core[i] marks grid points
// inside a hard wall (U effectively +Inf); those points are always closed
// with c = -1 - gamma, independent of kind.
func Apply(kind Kind, r, gamma, u []float64, beta, alpha float64, core []bool, out []float64) {
	n := len(gamma)
	if len(u) != n || len(core) != n || len(out) != n || len(r) != n {
		panic("closure: mismatched slice lengths")
	}

	for i := 0; i < n; i++ {
		if core[i] {
			out[i] = -1 - gamma[i]
			continue
		}

		switch kind {
		case HNC:
			out[i] = hnc(gamma[i], u[i], beta)
		case PY:
			out[i] = py(gamma[i], u[i], beta)
		case RY:
			out[i] = ry(r[i], gamma[i], u[i], beta, alpha)
		default:
			panic("closure: unknown Kind")
		}
	}
}

func hnc(gamma, u, beta float64) float64 {
	return math.Exp(-beta*u+gamma) - gamma - 1
}

func py(gamma, u, beta float64) float64 {
	return (math.Exp(-beta*u) - 1) * (1 + gamma)
}

// ry evaluates the Rogers-Young closure. As alpha -> 0, f(r) -> 0 and RY
// smoothly reduces to PY; as alpha -> infinity, f(r) -> 1 and RY reduces to
// HNC (both limits are exercised by the RY consistency search, since the
// solved-for alpha ranges over [0.1, 5.0]).
func ry(r, gamma, u, beta, alpha float64) float64 {
	ar := alpha * r
	var f, expTerm float64
	if ar < rySeriesCutoff {
		// f(r) = ar - (ar)^2/2 + (ar)^3/6 - ...
		f = ar * (1 - ar/2 + ar*ar/6)
		// (exp(gamma*f)-1)/f -> gamma + gamma^2*f/2 + ... as f -> 0.
		expTerm = gamma * (1 + gamma*f/2)
	} else {
		f = 1 - math.Exp(-ar)
		expTerm = (math.Exp(gamma*f) - 1) / f
	}

	g := math.Exp(-beta*u) * (1 + expTerm)
	return g - 1 - gamma
}
