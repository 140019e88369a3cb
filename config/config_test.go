package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ozsolve/closure"
	"github.com/phil-mansfield/ozsolve/potential"
)

func writeTempConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.cfg")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestReadFileParsesNamedSweepSection(t *testing.T) {
	path := writeTempConfig(t, ExampleSweepFile)

	points, err := ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, points, "hard_sphere_py")

	p := points["hard_sphere_py"]
	assert.Equal(t, 7, p.PotentialID)
	assert.Equal(t, "PY", p.Closure)
	assert.InDelta(t, 1.0, p.Sigma, 1e-12)
	assert.InDelta(t, 0.6, p.RhoTarget, 1e-12)
	assert.Equal(t, 512, p.Nodes)

	id, err := p.PotentialKind()
	require.NoError(t, err)
	assert.Equal(t, potential.HardSphere, id)

	kind, err := p.ClosureKind()
	require.NoError(t, err)
	assert.Equal(t, closure.PY, kind)
}

func TestClosureKindRejectsUnknownName(t *testing.T) {
	p := &Point{Closure: "XYZ"}
	_, err := p.ClosureKind()
	assert.Error(t, err)
}

func TestPotentialKindRejectsUnregisteredID(t *testing.T) {
	p := &Point{PotentialID: 99}
	_, err := p.PotentialKind()
	assert.Error(t, err)
}
