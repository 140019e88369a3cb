/*Package consistency implements the Rogers-Young thermodynamic-consistency
outer loop: a bisection search on the RY mixing parameter alpha that drives
the virial and compressibility routes to the pressure into agreement.

This is an outer loop over package solver, never a replacement for it:
every trial alpha runs a full density-ramp solve from scratch.
*/
package consistency

import (
	"github.com/phil-mansfield/ozsolve/ozctx"
	"github.com/phil-mansfield/ozsolve/solver"
	"github.com/phil-mansfield/ozsolve/thermo"
)

// AlphaMin and AlphaMax bound the Rogers-Young bisection search, per
// spec.md 4.6.
const (
	AlphaMin = 0.1
	AlphaMax = 5.0
)

// MaxBisections caps how many trial alphas the search will try before
// giving up.
const MaxBisections = 40

// TrialPoint records one (alpha, residual) pair evaluated during a Search,
// in evaluation order, for diagnostic plotting.
type TrialPoint struct {
	Alpha, Residual float64
}

// Result is the outcome of a successful consistency search: the converged
// alpha, the solver.Result it produced, the residual pressure mismatch at
// that alpha, and every trial point the bisection visited along the way.
type Result struct {
	Alpha    float64
	Solver   *solver.Result
	Residual float64
	Trials   []TrialPoint
}

// delta returns beta*P_virial/rho - beta*P_compressibility/rho at alpha,
// solving the full density ramp at that alpha. Both terms are the
// pressure-over-density ratio: VirialPressure already returns that ratio,
// and CompressibilityPressure's integral of 1/chi_T from rho=0 needs
// dividing by rho to match it. delta is increasing in alpha for the
// fluids this search is applied to: alpha -> 0 makes RY reduce to PY
// (which underestimates the virial route relative to compressibility for
// a repulsive fluid), and alpha -> infinity makes RY reduce to HNC (which
// overestimates it).
func delta(ctx *ozctx.Context, alpha float64) (float64, *solver.Result, error) {
	trial := *ctx
	trial.Alpha = alpha

	res, err := solver.Solve(&trial)
	if err != nil {
		return 0, nil, err
	}

	pVirial := thermo.VirialPressure(&trial, res)
	pComp := thermo.CompressibilityPressure(res) / trial.RhoTarget
	return pVirial - pComp, res, nil
}

// Search evaluates delta at AlphaMin and AlphaMax and, if the two differ in
// sign, bisects on alpha until |delta| < tol, returning that alpha and the
// solver.Result at that alpha. The bracket width is not a stopping
// criterion: if the endpoints share a sign, or MaxBisections trials pass
// without |delta| < tol, Search returns a *solver.Error of kind
// RYNonConsistency and no result. ctx.Closure must be closure.RY;
// ctx.Alpha is ignored (every trial alpha overrides it).
func Search(ctx *ozctx.Context, tol float64) (*Result, error) {
	lo, hi := AlphaMin, AlphaMax
	var trials []TrialPoint

	dLo, _, err := delta(ctx, lo)
	if err != nil {
		return nil, err
	}
	trials = append(trials, TrialPoint{lo, dLo})

	dHi, resHi, err := delta(ctx, hi)
	if err != nil {
		return nil, err
	}
	trials = append(trials, TrialPoint{hi, dHi})

	if dLo*dHi > 0 {
		return nil, &solver.Error{
			Kind: solver.RYNonConsistency, Rho: ctx.RhoTarget,
			Iterations: 0, Residual: dHi,
		}
	}

	var mid float64
	var dMid float64
	var resMid *solver.Result = resHi

	for i := 0; i < MaxBisections; i++ {
		mid = (lo + hi) / 2
		dMid, resMid, err = delta(ctx, mid)
		if err != nil {
			return nil, err
		}
		trials = append(trials, TrialPoint{mid, dMid})

		if abs(dMid) < tol {
			return &Result{Alpha: mid, Solver: resMid, Residual: dMid, Trials: trials}, nil
		}

		if sameSign(dMid, dLo) {
			lo, dLo = mid, dMid
		} else {
			hi, dHi = mid, dMid
		}
	}

	return nil, &solver.Error{
		Kind: solver.RYNonConsistency, Rho: ctx.RhoTarget,
		Iterations: MaxBisections, Residual: dMid,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}
