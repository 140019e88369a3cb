package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gaussian(r, width float64) float64 {
	return math.Exp(-r * r / (2 * width * width))
}

func TestRoundTripForwardInverse(t *testing.T) {
	n, rMax := 256, 40.0
	m := NewMesh(n, rMax)

	f := make([]float64, n)
	for i, r := range m.R {
		f[i] = gaussian(r, 2.0)
	}

	fhat := m.Forward(f)
	back := m.Inverse(fhat)

	maxErr, maxVal := 0.0, 0.0
	for i := range f {
		if math.Abs(f[i]) > maxVal {
			maxVal = math.Abs(f[i])
		}
		if d := math.Abs(f[i] - back[i]); d > maxErr {
			maxErr = d
		}
	}
	assert.Less(t, maxErr/maxVal, 1e-10)
}

func TestRoundTripInverseForward(t *testing.T) {
	n, rMax := 256, 40.0
	m := NewMesh(n, rMax)

	fhat := make([]float64, n)
	for i, k := range m.K {
		fhat[i] = gaussian(k, 1.0)
	}

	f := m.Inverse(fhat)
	back := m.Forward(f)

	maxErr, maxVal := 0.0, 0.0
	for i := range fhat {
		if math.Abs(fhat[i]) > maxVal {
			maxVal = math.Abs(fhat[i])
		}
		if d := math.Abs(fhat[i] - back[i]); d > maxErr {
			maxErr = d
		}
	}
	assert.Less(t, maxErr/maxVal, 1e-10)
}

func TestForwardLinear(t *testing.T) {
	n, rMax := 64, 20.0
	m := NewMesh(n, rMax)

	f := make([]float64, n)
	g := make([]float64, n)
	for i, r := range m.R {
		f[i] = gaussian(r, 1.5)
		g[i] = gaussian(r, 3.0)
	}

	a, b := 2.0, -0.5
	combo := make([]float64, n)
	for i := range combo {
		combo[i] = a*f[i] + b*g[i]
	}

	lhs := m.Forward(combo)
	fHat, gHat := m.Forward(f), m.Forward(g)
	for i := range lhs {
		rhs := a*fHat[i] + b*gHat[i]
		assert.InDelta(t, rhs, lhs[i], 1e-9*math.Abs(rhs)+1e-12)
	}
}

type yukawaTail struct {
	k, lambda float64
}

func (y yukawaTail) RealSpace(r float64) float64 {
	return y.k * math.Exp(-y.lambda*r) / r
}

func (y yukawaTail) Reciprocal(k float64) float64 {
	return 4 * math.Pi * y.k / (k*k + y.lambda*y.lambda)
}

func TestForwardSplitReturnsAnalyticTransformWhenTailIsExact(t *testing.T) {
	n, rMax := 512, 80.0
	m := NewMesh(n, rMax)
	tail := yukawaTail{k: 1.3, lambda: 1.8}

	f := make([]float64, n)
	for i, r := range m.R {
		f[i] = tail.RealSpace(r)
	}

	split := m.ForwardSplit(f, tail)
	for i, k := range m.K {
		want := tail.Reciprocal(k)
		assert.InDelta(t, want, split[i], 1e-6*math.Abs(want)+1e-9)
	}
}

func TestForwardSplitNilTailMatchesForward(t *testing.T) {
	n, rMax := 64, 20.0
	m := NewMesh(n, rMax)
	f := make([]float64, n)
	for i, r := range m.R {
		f[i] = gaussian(r, 1.0)
	}

	plain := m.Forward(f)
	split := m.ForwardSplit(f, nil)
	for i := range plain {
		assert.Equal(t, plain[i], split[i])
	}
}
