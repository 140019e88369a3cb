/*Package solver runs the self-consistent Picard-Ng iteration that solves
the Ornstein-Zernike equation on a single density point, and the density
ramp that advances from a small starting density up to a target density
by continuation, reusing each converged gamma as the next step's initial
guess.

Everything here is single-threaded and synchronous, per spec.md 5: no
operation blocks on I/O and there is no cancellation signal beyond the
hard iteration cap and a rejected density step.
*/
package solver

import (
	"math"

	"github.com/phil-mansfield/ozsolve/closure"
	"github.com/phil-mansfield/ozsolve/grid"
	"github.com/phil-mansfield/ozsolve/ng"
	"github.com/phil-mansfield/ozsolve/ozctx"
)

// MaxIterations is the hard iteration cap per density step (spec.md 4.5).
const MaxIterations = 5000

// MaxHalvings is how many times a density step may be halved after a
// spinodal crossing before the whole solve aborts (spec.md 7: "up to a
// few times").
const MaxHalvings = 3

// Result holds the converged state at the target density, plus the
// density-ramp history needed by package thermo to integrate the
// compressibility pressure.
type Result struct {
	Ctx *ozctx.Context

	Gamma, C, H, ChatK []float64
	Rho                float64

	// RhoHistory and InvChiHistory record, for every density step actually
	// solved (including any inserted by spinodal-driven halving), rho_s and
	// 1/(rho_s*kT*chi_T(rho_s)) = 1 - rho_s*chat(k->0). thermo.
	// CompressibilityPressure integrates 1/chi_T over this history.
	RhoHistory    []float64
	InvChiHistory []float64
}

// scaledTail scales an AnalyticTail by a constant, used to turn the
// potential's long-range tail into the direct correlation function's
// expected long-range tail, c(r) -> -beta*U_longrange(r).
type scaledTail struct {
	inner grid.AnalyticTail
	scale float64
}

func (t scaledTail) RealSpace(r float64) float64  { return t.scale * t.inner.RealSpace(r) }
func (t scaledTail) Reciprocal(k float64) float64 { return t.scale * t.inner.Reciprocal(k) }

// Solve runs the density ramp from rho=0 to ctx.RhoTarget in ctx.NRho
// steps, returning the converged state at the target density.
func Solve(ctx *ozctx.Context) (*Result, error) {
	n := ctx.Mesh.N
	res := &Result{Ctx: ctx}

	gammaCur := make([]float64, n)
	rhoCur := 0.0

	for s := 1; s <= ctx.NRho; s++ {
		target := ctx.RhoTarget * float64(s) / float64(ctx.NRho)

		g, c, h, chat, err := stepTo(ctx, rhoCur, gammaCur, target, MaxHalvings, res)
		if err != nil {
			return nil, err
		}
		gammaCur, rhoCur = g, target
		res.Gamma, res.C, res.H, res.ChatK = g, c, h, chat
	}

	res.Rho = rhoCur
	return res, nil
}

// stepTo advances from (rhoLo, gammaLo) to rhoHi. If the inner solve at
// rhoHi crosses a spinodal and budget remains, it recurses on the midpoint
// density first and then finishes the climb to rhoHi from there, per
// spec.md 7's density-step-halving policy. Every density actually
// converged (including inserted midpoints) is appended to res's ramp
// history.
func stepTo(
	ctx *ozctx.Context, rhoLo float64, gammaLo []float64, rhoHi float64,
	budget int, res *Result,
) (gamma, c, h, chat []float64, err error) {
	gamma, c, h, chat, _, serr := innerSolve(ctx, rhoHi, gammaLo)
	if serr == nil {
		res.RhoHistory = append(res.RhoHistory, rhoHi)
		res.InvChiHistory = append(res.InvChiHistory, 1-rhoHi*chat[0])
		return gamma, c, h, chat, nil
	}

	if e, ok := serr.(*Error); ok && e.Kind == Spinodal && budget > 0 {
		mid := (rhoLo + rhoHi) / 2
		gammaMid, _, _, _, err2 := stepTo(ctx, rhoLo, gammaLo, mid, budget-1, res)
		if err2 != nil {
			return nil, nil, nil, nil, err2
		}
		return stepTo(ctx, mid, gammaMid, rhoHi, budget-1, res)
	}

	return nil, nil, nil, nil, serr
}

// innerSolve runs the Picard/Ng fixed-point loop at a fixed density rho,
// starting from gammaInit, exactly per spec.md 4.5's six-step inner loop.
func innerSolve(
	ctx *ozctx.Context, rho float64, gammaInit []float64,
) (gamma, c, h, chat []float64, iters int, err error) {
	n := ctx.Mesh.N

	var tail grid.AnalyticTail
	if ctx.Table.Tail != nil {
		tail = scaledTail{inner: ctx.Table.Tail, scale: -ctx.Beta}
	}

	buf := ng.NewBuffer(ctx.Mesh, ng.DefaultCapacity)
	buf.Reset()

	gammaIn := make([]float64, n)
	copy(gammaIn, gammaInit)
	c = make([]float64, n)

	lastMaxDelta := math.Inf(1)

	for iter := 1; iter <= MaxIterations; iter++ {
		closure.Apply(ctx.Closure, ctx.Mesh.R, gammaIn, ctx.Table.U, ctx.Beta, ctx.Alpha, ctx.Table.Core, c)

		chat = ctx.Mesh.ForwardSplit(c, tail)

		ghat := make([]float64, n)
		for i, ck := range chat {
			denom := 1 - rho*ck
			if denom <= 0 {
				return nil, nil, nil, nil, iter, &Error{
					Kind: Spinodal, Rho: rho, Iterations: iter, Residual: lastMaxDelta,
				}
			}
			ghat[i] = rho * ck * ck / denom
		}

		gammaOut := ctx.Mesh.Inverse(ghat)

		maxDelta := 0.0
		for i := range gammaOut {
			if d := math.Abs(gammaOut[i] - gammaIn[i]); d > maxDelta {
				maxDelta = d
			}
		}
		lastMaxDelta = maxDelta

		if maxDelta < ctx.EZ {
			// Close the returned state on gammaOut itself, so that g = 1 + h
			// obeys the closure exactly (g == 0 inside a hard core) instead
			// of carrying the last iteration's residual.
			closure.Apply(ctx.Closure, ctx.Mesh.R, gammaOut, ctx.Table.U, ctx.Beta, ctx.Alpha, ctx.Table.Core, c)
			chat = ctx.Mesh.ForwardSplit(c, tail)
			h = make([]float64, n)
			for i := range h {
				h[i] = gammaOut[i] + c[i]
			}
			return gammaOut, c, h, chat, iter, nil
		}

		buf.Push(gammaIn, gammaOut)
		gammaIn = buf.Next(ctx.Xnu)
	}

	return nil, nil, nil, nil, MaxIterations, &Error{
		Kind: NonConvergence, Rho: rho, Iterations: MaxIterations, Residual: lastMaxDelta,
	}
}
