/*Package ozctx bundles everything a solve needs to know that never
changes once the solve starts: the grid, the tabulated potential, the
closure choice, and the numerical control parameters. This replaces the
scattered process-wide globals (sigma, alpha, EZ, xnu, rho, dr, r, q, U,
Up) that the original solver kept at file scope.

A Context is built once by New and is read-only from then on; nothing in
this repository mutates a Context after construction.
*/
package ozctx

import (
	"fmt"

	"github.com/phil-mansfield/ozsolve/closure"
	"github.com/phil-mansfield/ozsolve/grid"
	"github.com/phil-mansfield/ozsolve/potential"
)

// Params collects everything New needs to build a Context.
type Params struct {
	Nodes int
	RMax  float64

	PotentialID potential.ID
	Potential   potential.Params

	Closure closure.Kind
	Alpha   float64 // RY mixing parameter; ignored for HNC/PY

	T float64 // temperature; beta = 1/T

	NRho      int     // density ramp steps
	RhoTarget float64 // final density

	EZ  float64 // convergence tolerance on max|delta gamma|
	Xnu float64 // legacy Picard damping tunable, default 14
}

// Context is the immutable bundle every numerical package reads from.
type Context struct {
	Mesh    *grid.Mesh
	Table   *potential.Table
	Closure closure.Kind
	Alpha   float64
	Beta    float64

	NRho      int
	RhoTarget float64

	EZ  float64
	Xnu float64
}

// New validates p and builds the Context: the mesh, the potential table,
// and the hard-core mask. It never mutates p.
func New(p Params) (*Context, error) {
	if p.Nodes <= 0 {
		return nil, fmt.Errorf("ozctx: Nodes must be positive, got %d", p.Nodes)
	}
	if p.RMax <= 0 {
		return nil, fmt.Errorf("ozctx: RMax must be positive, got %g", p.RMax)
	}
	if p.T <= 0 {
		return nil, fmt.Errorf("ozctx: T must be positive, got %g", p.T)
	}
	if p.NRho <= 0 {
		return nil, fmt.Errorf("ozctx: NRho must be positive, got %d", p.NRho)
	}
	if p.RhoTarget <= 0 {
		return nil, fmt.Errorf("ozctx: RhoTarget must be positive, got %g", p.RhoTarget)
	}
	if p.EZ <= 0 {
		return nil, fmt.Errorf("ozctx: EZ must be positive, got %g", p.EZ)
	}
	xnu := p.Xnu
	if xnu == 0 {
		xnu = 14
	}

	mesh := grid.NewMesh(p.Nodes, p.RMax)
	tab, err := potential.Build(p.PotentialID, p.Potential, mesh)
	if err != nil {
		return nil, err
	}

	return &Context{
		Mesh:      mesh,
		Table:     tab,
		Closure:   p.Closure,
		Alpha:     p.Alpha,
		Beta:      1 / p.T,
		NRho:      p.NRho,
		RhoTarget: p.RhoTarget,
		EZ:        p.EZ,
		Xnu:       xnu,
	}, nil
}
