package potential

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ozsolve/grid"
)

func TestHardSphereCoreMask(t *testing.T) {
	m := grid.NewMesh(64, 20)
	tab, err := Build(HardSphere, Params{Sigma: 1.0}, m)
	require.NoError(t, err)

	for i, r := range m.R {
		assert.Equal(t, r < 1.0, tab.Core[i])
		assert.Zero(t, tab.U[i])
	}
}

func TestUnknownIDErrors(t *testing.T) {
	m := grid.NewMesh(16, 10)
	_, err := Build(ID(999), Params{Sigma: 1}, m)
	require.Error(t, err)
}

func TestNonPositiveSigmaErrors(t *testing.T) {
	m := grid.NewMesh(16, 10)
	_, err := Build(HardSphere, Params{Sigma: -1}, m)
	require.Error(t, err)
}

func TestHertzianFiniteAtOrigin(t *testing.T) {
	m := grid.NewMesh(64, 20)
	tab, err := Build(Hertzian, Params{Sigma: 1.0, Epsilon: 1.0}, m)
	require.NoError(t, err)

	for _, u := range tab.U {
		assert.False(t, math.IsInf(u, 0))
		assert.GreaterOrEqual(t, u, 0.0)
	}
}

func TestWCAIsZeroBeyondCutoff(t *testing.T) {
	m := grid.NewMesh(128, 20)
	tab, err := Build(WCA, Params{Sigma: 1.0, Epsilon: 1.0}, m)
	require.NoError(t, err)

	rc := math.Pow(2, 1.0/6.0)
	for i, r := range m.R {
		if r >= rc {
			assert.Zero(t, tab.U[i])
			assert.Zero(t, tab.Up[i])
		}
	}
}

func TestDoubleYukawaUpMatchesFiniteDifference(t *testing.T) {
	m := grid.NewMesh(512, 60)
	p := Params{Sigma: 1.0, Epsilon: 1.0, Epsilon2: 1.0, LambdaA: 1.8, LambdaR: 4.0}
	tab, err := Build(DoubleYukawa, p, m)
	require.NoError(t, err)

	u := func(r float64) float64 {
		return -p.Epsilon*math.Exp(-p.LambdaA*r)/r + p.Epsilon2*math.Exp(-p.LambdaR*r)/r
	}

	for i, r := range m.R {
		if r < 2 {
			continue // skip the steep near-core region, finite difference is noisy there
		}
		h := 1e-5
		dUdr := (u(r+h) - u(r-h)) / (2 * h)
		want := -r * dUdr
		assert.InDelta(t, want, tab.Up[i], 1e-4*math.Abs(want)+1e-6)
	}
}

func TestDoubleYukawaTailMatchesAttractiveTerm(t *testing.T) {
	m := grid.NewMesh(64, 60)
	p := Params{Sigma: 1.0, Epsilon: 1.3, Epsilon2: 2.0, LambdaA: 1.8, LambdaR: 4.0}
	tab, err := Build(DoubleYukawa, p, m)
	require.NoError(t, err)
	require.NotNil(t, tab.Tail)

	r := 5.0
	want := -p.Epsilon * math.Exp(-p.LambdaA*r) / r
	assert.InDelta(t, want, tab.Tail.RealSpace(r), 1e-12)
}

func TestIPLExponentScaling(t *testing.T) {
	m := grid.NewMesh(64, 20)
	p := Params{Sigma: 1.0, Epsilon: 1.0, LambdaA: 12}
	tab, err := Build(IPL, p, m)
	require.NoError(t, err)

	for i, r := range m.R {
		want := math.Pow(1.0/r, 12)
		assert.InDelta(t, want, tab.U[i], 1e-9*want+1e-12)
	}
}
