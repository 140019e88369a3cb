/*Command ozsolve is the flag-driven front end to package ozsolve. It
either solves a single (potential, closure, density) point named on the
command line, or, given --config, runs every sweep point in a batch
config file.
*/
package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"os"

	"github.com/phil-mansfield/ozsolve"
	"github.com/phil-mansfield/ozsolve/config"
	"github.com/phil-mansfield/ozsolve/plot"
	"github.com/phil-mansfield/ozsolve/report"
	"github.com/phil-mansfield/ozsolve/solver"
)

func main() {
	var (
		closureName             string
		potentialID             int
		volFactor, temp, temp2  float64
		lambdaA, lambdaR        float64
		nodes, kNodes           int
		nRho                    int
		configPath, outDir      string
		doPlot                  bool
		logPath                 string
	)

	flag.StringVar(&closureName, "closure", "HNC", "Closure relation: HNC, PY, or RY.")
	flag.IntVar(&potentialID, "potential", 7, "Potential catalogue ID.")
	flag.Float64Var(&volFactor, "volfactor", 0.3, "Packing fraction (volume factor).")
	flag.Float64Var(&temp, "temp", 1.0, "Reduced temperature.")
	flag.Float64Var(&temp2, "temp2", 0.0, "Secondary energy scale, for two-scale potentials.")
	flag.Float64Var(&lambdaA, "lambda_a", 0.0, "Attraction range/exponent parameter.")
	flag.Float64Var(&lambdaR, "lambda_r", 0.0, "Repulsion range parameter, Double Yukawa only.")
	flag.IntVar(&nodes, "nodes", 512, "Number of radial grid nodes.")
	flag.IntVar(&kNodes, "knodes", 512, "Number of wavevector grid nodes (must equal nodes).")
	flag.IntVar(&nRho, "nrho", 20, "Number of density-ramp steps.")

	flag.StringVar(&configPath, "config", "", "Batch config file. If set, --closure etc. are ignored.")
	flag.StringVar(&outDir, "out", ".", "Output directory for report files.")
	flag.BoolVar(&doPlot, "plot", false, "Write diagnostic plots alongside the report files.")
	flag.StringVar(&logPath, "log", "", "Location to write log statements to. Default is stderr.")

	flag.Parse()

	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatalf("ozsolve: %s", err)
		}
		log.SetOutput(lf)
		defer lf.Close()
	}

	if configPath != "" {
		runBatch(configPath, outDir, doPlot)
		return
	}

	runSingle(singleRunArgs{
		closureName, potentialID, volFactor, temp, temp2,
		lambdaA, lambdaR, nodes, kNodes, nRho, outDir, doPlot,
	})
}

type singleRunArgs struct {
	closureName             string
	potentialID             int
	volFactor, temp, temp2  float64
	lambdaA, lambdaR        float64
	nodes, kNodes           int
	nRho                    int
	outDir                  string
	doPlot                  bool
}

func runSingle(a singleRunArgs) {
	if a.nodes != a.kNodes {
		log.Fatalf("ozsolve: --nodes (%d) must equal --knodes (%d): the "+
			"radial and wavevector grids share a single node count.",
			a.nodes, a.kNodes)
	}

	res, err := ozsolve.Solve(ozsolve.Params{
		Nodes:       a.nodes,
		NRho:        a.nRho,
		RMax:        25.0,
		PotentialID: a.potentialID,
		ClosureID:   a.closureName,
		Sigma1:      1.0,
		T:           a.temp,
		T2:          a.temp2,
		LambdaA:     a.lambdaA,
		LambdaR:     a.lambdaR,
		Phi:         a.volFactor,
		AlphaInit:   1.0,
		EZ:          1e-8,
	})
	if err != nil {
		// Solver and consistency-search failures exit 2; anything else is a
		// configuration error (unknown closure/potential, bad parameters).
		var serr *solver.Error
		if errors.As(err, &serr) {
			log.Printf("ozsolve: solve failed: %s", err)
			os.Exit(2)
		}
		log.Fatalf("ozsolve: %s", err)
	}

	writeAndMaybePlot(res, a.closureName, a.outDir, a.doPlot)
}

func runBatch(configPath, outDir string, doPlot bool) {
	points, err := config.ReadFile(configPath)
	if err != nil {
		log.Fatalf("ozsolve: %s", err)
	}
	if len(points) == 0 {
		log.Fatalf("ozsolve: %s contains no [Sweep] sections.", configPath)
	}

	failed := false
	for name, p := range points {
		id, err := p.PotentialKind()
		if err != nil {
			log.Fatalf("ozsolve: sweep %q: %s", name, err)
		}
		if _, err := p.ClosureKind(); err != nil {
			log.Fatalf("ozsolve: sweep %q: %s", name, err)
		}

		// config.Point names its target as a number density (RhoTarget),
		// but ozsolve.Params takes a packing fraction; convert using the
		// same core diameter the potential itself uses.
		phi := math.Pi / 6 * p.RhoTarget * p.Sigma * p.Sigma * p.Sigma

		res, err := ozsolve.Solve(ozsolve.Params{
			Nodes:       p.Nodes,
			NRho:        p.NRho,
			RMax:        p.RMax,
			PotentialID: int(id),
			ClosureID:   p.Closure,
			Sigma1:      p.Sigma,
			T:           p.Temp,
			T2:          p.Epsilon2,
			LambdaA:     p.LambdaA,
			LambdaR:     p.LambdaR,
			Phi:         phi,
			AlphaInit:   p.Alpha,
			EZ:          p.EZ,
		})
		if err != nil {
			log.Printf("ozsolve: sweep %q failed: %s", name, err)
			failed = true
			continue
		}

		writeAndMaybePlot(res, p.Closure, outDir, doPlot)
	}

	if failed {
		os.Exit(2)
	}
}

func writeAndMaybePlot(res *ozsolve.Result, closureName, outDir string, doPlot bool) {
	kind := res.Ctx.Closure

	rSeries, gSeries := res.Sample(ozsolve.SampleGdeR)
	if err := report.WriteSeries(outDir, kind, report.GdeR, rSeries, gSeries); err != nil {
		log.Fatalf("ozsolve: %s", err)
	}

	kSeries, sSeries := res.Sample(ozsolve.SampleSdeK)
	if err := report.WriteSeries(outDir, kind, report.SdeK, kSeries, sSeries); err != nil {
		log.Fatalf("ozsolve: %s", err)
	}

	kSeries2, cSeries := res.Sample(ozsolve.SampleCdeK)
	if err := report.WriteSeries(outDir, kind, report.CdeK, kSeries2, cSeries); err != nil {
		log.Fatalf("ozsolve: %s", err)
	}

	if doPlot {
		plot.PairCorrelation(rSeries, gSeries, outDir+"/gder.png")
		plot.StructureFactor(kSeries, sSeries, outDir+"/sdek.png")

		if closureName == "RY" && len(res.ConsistencyTrials) > 0 {
			alphas := make([]float64, len(res.ConsistencyTrials))
			residuals := make([]float64, len(res.ConsistencyTrials))
			for i, t := range res.ConsistencyTrials {
				alphas[i], residuals[i] = t.Alpha, t.Residual
			}
			plot.ConsistencyResidual(alphas, residuals, res.Alpha, outDir+"/consistency.png")
		}
	}
}
