package consistency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ozsolve/closure"
	"github.com/phil-mansfield/ozsolve/ozctx"
	"github.com/phil-mansfield/ozsolve/potential"
)

func TestHardSphereRYConvergesWithinBracket(t *testing.T) {
	sigma := 1.0
	phi := 0.3
	rho := 6 * phi / (math.Pi * sigma * sigma * sigma)

	ctx, err := ozctx.New(ozctx.Params{
		Nodes:       256,
		RMax:        20 * sigma,
		PotentialID: potential.HardSphere,
		Potential:   potential.Params{Sigma: sigma},
		Closure:     closure.RY,
		T:           1,
		NRho:        10,
		RhoTarget:   rho,
		EZ:          1e-7,
	})
	require.NoError(t, err)

	res, err := Search(ctx, 1e-2)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Alpha, AlphaMin)
	assert.LessOrEqual(t, res.Alpha, AlphaMax)
	assert.InDelta(t, 0, res.Residual, 5e-2)

	require.NotEmpty(t, res.Trials)
	assert.Equal(t, res.Alpha, res.Trials[len(res.Trials)-1].Alpha)
	assert.Equal(t, res.Residual, res.Trials[len(res.Trials)-1].Residual)
}
