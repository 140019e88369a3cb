/*Package ozsolve is the library entry point: it takes the flat parameter
set spec.md 6 defines for the external interface, builds the context and
grid the internal packages need, runs the solver (and, for the RY
closure, the consistency search), and returns a Result with everything
a caller might want to sample or report.
*/
package ozsolve

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/ozsolve/closure"
	"github.com/phil-mansfield/ozsolve/consistency"
	"github.com/phil-mansfield/ozsolve/ozctx"
	"github.com/phil-mansfield/ozsolve/potential"
	"github.com/phil-mansfield/ozsolve/solver"
	"github.com/phil-mansfield/ozsolve/thermo"
)

// Params is the flat, external-facing parameter set spec.md 6 names.
type Params struct {
	Nodes int
	NRho  int
	RMax  float64

	PotentialID int
	ClosureID   string // "HNC", "PY", or "RY"

	Sigma1, Sigma2   float64
	T, T2            float64
	LambdaA, LambdaR float64

	Phi float64 // packing fraction; converted to a number density via D
	D   float64 // core diameter used in the packing-fraction conversion; defaults to Sigma1

	AlphaInit float64 // RY mixing parameter stored in the context; HNC/PY ignore it and the RY consistency search replaces it on every trial
	EZ        float64
}

// Result bundles everything a caller can sample or report after a solve.
type Result struct {
	Ctx *ozctx.Context
	Raw *solver.Result

	R, K, G, S, ChatK []float64

	// Alpha, ConsistencyResidual, and ConsistencyTrials are only meaningful
	// when ClosureID was "RY": Alpha is the converged mixing parameter,
	// ConsistencyResidual is the pressure mismatch at that alpha, and
	// ConsistencyTrials is every (alpha, residual) pair the bisection
	// visited on the way there, in evaluation order.
	Alpha               float64
	ConsistencyResidual float64
	ConsistencyTrials   []consistency.TrialPoint
}

// OutputFlag selects which pair of series Result.Sample returns, mirroring
// the original C implementation's facdes2YFunc switch statement.
type OutputFlag int

const (
	SampleGdeR OutputFlag = iota
	SampleSdeK
	SampleCdeK
)

// Sample returns the (x, y) series named by flag.
func (res *Result) Sample(flag OutputFlag) (x, y []float64) {
	switch flag {
	case SampleGdeR:
		return res.R, res.G
	case SampleSdeK:
		return res.K, res.S
	case SampleCdeK:
		return res.K, res.ChatK
	default:
		panic("ozsolve: unknown OutputFlag")
	}
}

// Solve runs a complete solve from the flat Params spec.md 6 specifies:
// builds the grid and potential table, runs the density ramp, and (for
// the RY closure) the thermodynamic-consistency search.
func Solve(p Params) (*Result, error) {
	closureKind, err := parseClosure(p.ClosureID)
	if err != nil {
		return nil, err
	}

	d := p.D
	if d == 0 {
		d = p.Sigma1
	}
	rho := packingFractionToRho(p.Phi, d)

	ctx, err := ozctx.New(ozctx.Params{
		Nodes:       p.Nodes,
		RMax:        p.RMax,
		PotentialID: potential.ID(p.PotentialID),
		Potential: potential.Params{
			Sigma: p.Sigma1, Epsilon: 1, Epsilon2: p.T2,
			LambdaA: p.LambdaA, LambdaR: p.LambdaR,
		},
		Closure:   closureKind,
		Alpha:     p.AlphaInit,
		T:         p.T,
		NRho:      p.NRho,
		RhoTarget: rho,
		EZ:        p.EZ,
	})
	if err != nil {
		return nil, err
	}

	if closureKind != closure.RY {
		raw, err := solver.Solve(ctx)
		if err != nil {
			return nil, err
		}
		return buildResult(ctx, raw, p.AlphaInit, 0, nil), nil
	}

	cres, err := consistency.Search(ctx, p.EZ)
	if err != nil {
		return nil, err
	}
	return buildResult(ctx, cres.Solver, cres.Alpha, cres.Residual, cres.Trials), nil
}

func buildResult(ctx *ozctx.Context, raw *solver.Result, alpha, residual float64, trials []consistency.TrialPoint) *Result {
	return &Result{
		Ctx:                 ctx,
		Raw:                 raw,
		R:                   ctx.Mesh.R,
		K:                   ctx.Mesh.K,
		G:                   thermo.PairCorrelation(raw),
		S:                   thermo.StructureFactor(raw),
		ChatK:               raw.ChatK,
		Alpha:               alpha,
		ConsistencyResidual: residual,
		ConsistencyTrials:   trials,
	}
}

func parseClosure(name string) (closure.Kind, error) {
	switch name {
	case "HNC":
		return closure.HNC, nil
	case "PY":
		return closure.PY, nil
	case "RY":
		return closure.RY, nil
	default:
		return 0, fmt.Errorf("ozsolve: unknown closure %q (want HNC, PY, or RY)", name)
	}
}

func packingFractionToRho(phi, d float64) float64 {
	return 6 * phi / (math.Pi * d * d * d)
}
