package ozsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveHardSpherePY(t *testing.T) {
	res, err := Solve(Params{
		Nodes:       384,
		NRho:        15,
		RMax:        20,
		PotentialID: 7,
		ClosureID:   "PY",
		Sigma1:      1.0,
		T:           1.0,
		Phi:         0.3,
		EZ:          1e-8,
	})
	require.NoError(t, err)

	x, y := res.Sample(SampleGdeR)
	require.Equal(t, len(x), len(y))
	// The first grid point lies inside the hard core, where g vanishes.
	assert.InDelta(t, 0.0, y[0], 1e-12)

	kx, ky := res.Sample(SampleSdeK)
	require.Equal(t, len(kx), len(ky))
}

func TestSolveRejectsUnknownClosure(t *testing.T) {
	_, err := Solve(Params{
		Nodes: 64, NRho: 5, RMax: 10, PotentialID: 7,
		ClosureID: "XYZ", Sigma1: 1, T: 1, Phi: 0.2, EZ: 1e-6,
	})
	assert.Error(t, err)
}

func TestSolveRunsRYConsistencySearch(t *testing.T) {
	res, err := Solve(Params{
		Nodes:       256,
		NRho:        10,
		RMax:        20,
		PotentialID: 7,
		ClosureID:   "RY",
		Sigma1:      1.0,
		T:           1.0,
		Phi:         0.3,
		EZ:          1e-7,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Alpha, 0.1)
	assert.LessOrEqual(t, res.Alpha, 5.0)
}
