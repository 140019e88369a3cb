/*Package plot draws the diagnostic figures cmd/ozsolve can optionally
produce (g(r), S(k), the RY consistency residual vs alpha) by wrapping
github.com/phil-mansfield/pyplot, a thin subprocess bridge to
matplotlib. It is gated entirely behind a CLI flag: the core solver and
thermo packages never call this package.
*/
package plot

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"
)

// PairCorrelation renders g(r) vs r and saves it to fname.
func PairCorrelation(r, g []float64, fname string) {
	plt.Figure()
	plt.Plot(r, g, plt.LW(2))
	plt.Plot([]float64{r[0], r[len(r)-1]}, []float64{1, 1}, "k", plt.LW(1))

	plt.Title("Pair correlation function")
	plt.XLabel(`$r$`, plt.FontSize(16))
	plt.YLabel(`$g(r)$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))

	plt.SaveFig(fname)
}

// StructureFactor renders S(k) vs k and saves it to fname.
func StructureFactor(k, s []float64, fname string) {
	plt.Figure()
	plt.Plot(k, s, plt.LW(2))

	plt.Title("Structure factor")
	plt.XLabel(`$k$`, plt.FontSize(16))
	plt.YLabel(`$S(k)$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))

	plt.SaveFig(fname)
}

// ConsistencyResidual renders the RY pressure-mismatch residual evaluated
// at each trial alpha during a consistency.Search, highlighting the
// alpha the search settled on.
func ConsistencyResidual(alphas, residuals []float64, chosen float64, fname string) {
	plt.Figure()
	plt.Plot(alphas, residuals, "o-", plt.LW(2))
	plt.Plot([]float64{chosen, chosen}, yBounds(residuals), "k", plt.LW(1))

	plt.Title(fmt.Sprintf(`Rogers-Young consistency search: converged $\alpha$ = %.3g`, chosen))
	plt.XLabel(`$\alpha$`, plt.FontSize(16))
	plt.YLabel(`$\beta P_{\rm virial}/\rho - \beta P_{\rm compressibility}/\rho$`, plt.FontSize(12))
	plt.Grid(plt.Axis("y"))

	plt.SaveFig(fname)
}

func yBounds(ys []float64) []float64 {
	lo, hi := ys[0], ys[0]
	for _, y := range ys {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return []float64{lo, hi}
}
