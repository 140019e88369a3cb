/*Package config reads an INI-style batch file describing a sweep of
species/potential parameters, so a whole run of (potential, closure,
density, temperature) points can be specified once instead of via
repeated cmd/ozsolve invocations. It mirrors gotetra's own
config.ReadFileInto pattern: one exported wrapper struct per gcfg
section, read with gopkg.in/gcfg.v1.
*/
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/ozsolve/closure"
	"github.com/phil-mansfield/ozsolve/potential"
)

// ExampleSweepFile documents the config file format accepted by ReadFile.
const ExampleSweepFile = `[Sweep "hard_sphere_py"]
# Potential catalogue ID. See potential.ID for the registered values.
PotentialID = 7
# Closure name: HNC, PY, or RY.
Closure = PY

Sigma = 1.0
Temp = 1.0

# Number of density-ramp steps and the final target density.
NRho = 20
RhoTarget = 0.6

Nodes = 512
RMax = 25.0
EZ = 1e-8

# Only meaningful for Closure = RY; ignored otherwise.
# Alpha = 1.0
`

// Point is one sweep entry, parsed from a [Sweep "name"] section.
type Point struct {
	PotentialID int
	Closure     string

	Sigma, Epsilon2  float64
	LambdaA, LambdaR float64
	Temp             float64

	NRho      int
	RhoTarget float64

	Nodes int
	RMax  float64
	EZ    float64
	Alpha float64
}

type sweepWrapper struct {
	Sweep map[string]*Point
}

// ReadFile parses path as an INI-style batch file and returns every named
// [Sweep "..."] section it contains, keyed by section name.
func ReadFile(path string) (map[string]*Point, error) {
	w := &sweepWrapper{}
	if err := gcfg.ReadFileInto(w, path); err != nil {
		return nil, fmt.Errorf("config: %s: %s", path, err)
	}
	return w.Sweep, nil
}

// PotentialKind translates the parsed integer ID to the potential.ID type,
// verifying it against the registered catalogue.
func (p *Point) PotentialKind() (potential.ID, error) {
	id := potential.ID(p.PotentialID)
	switch id {
	case potential.IPL, potential.WCA, potential.LennardJones,
		potential.DoubleYukawa, potential.Yukawa, potential.HardSphere,
		potential.Hertzian:
		return id, nil
	default:
		return 0, fmt.Errorf("config: unregistered PotentialID %d", p.PotentialID)
	}
}

// ClosureKind translates the parsed closure name to closure.Kind.
func (p *Point) ClosureKind() (closure.Kind, error) {
	switch p.Closure {
	case "HNC":
		return closure.HNC, nil
	case "PY":
		return closure.PY, nil
	case "RY":
		return closure.RY, nil
	default:
		return 0, fmt.Errorf("config: unknown Closure %q (want HNC, PY, or RY)", p.Closure)
	}
}
