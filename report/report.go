/*Package report writes the solver's output series to the plain
tab-separated ASCII files named in spec.md 6: HNC_SdeK.dat, RY_SdeK.dat,
HNC_GdeR.dat, RY_GdeR.dat, HNC_CdeK.dat, RY_CdeK.dat. It is an external
collaborator, called only from cmd/ozsolve: nothing in grid, potential,
closure, ng, ozctx, solver, consistency, or thermo imports it.
*/
package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/ozsolve/closure"
)

// SeriesName identifies which of the six named output files a series
// belongs to.
type SeriesName int

const (
	SdeK SeriesName = iota // S(k) vs k
	GdeR                   // g(r) vs r
	CdeK                   // c(r)-hat vs k (the direct correlation function's transform)
)

func (n SeriesName) fileStem() string {
	switch n {
	case SdeK:
		return "SdeK"
	case GdeR:
		return "GdeR"
	case CdeK:
		return "CdeK"
	default:
		panic("report: unknown SeriesName")
	}
}

// FileName returns the exact output filename spec.md 6 assigns to a
// (closure, series) pair, e.g. "HNC_SdeK.dat" or "RY_GdeR.dat".
func FileName(kind closure.Kind, name SeriesName) string {
	prefix := "HNC"
	if kind == closure.PY {
		// PY has no named output file in spec.md 6, so PY results are
		// written under HNC's file names.
		prefix = "HNC"
	} else if kind == closure.RY {
		prefix = "RY"
	}
	return fmt.Sprintf("%s_%s.dat", prefix, name.fileStem())
}

// WriteSeries writes (x, y) pairs, one per line, tab-separated, at %.17e
// precision, to dir/FileName(kind, name). x and y must be the same length.
func WriteSeries(dir string, kind closure.Kind, name SeriesName, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("report: x and y have different lengths (%d vs %d)", len(x), len(y))
	}

	path := dir + string(os.PathSeparator) + FileName(kind, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %s", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := range x {
		if _, err := fmt.Fprintf(w, "%.17e\t%.17e\n", x[i], y[i]); err != nil {
			return fmt.Errorf("report: %s", err)
		}
	}
	return w.Flush()
}
