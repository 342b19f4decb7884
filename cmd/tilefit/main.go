// tilefit - Region Packing Feasibility Solver
//
// Decides, for each region of a puzzle file, whether the required multiset
// of polyomino shapes can exactly tile it, and optionally exports layout
// reports and a search trace for visualization.
//
// Build:
//
//	go build -o tilefit ./cmd/tilefit
//
// Usage:
//
//	tilefit -input puzzle.txt
//	tilefit -input puzzle.txt -region 3 -trace trace.json -dxf layout.dxf
//	tilefit -input puzzle.txt -pdf report.pdf -xlsx results.xlsx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/piwi3910/tilefit/internal/engine"
	"github.com/piwi3910/tilefit/internal/export"
	"github.com/piwi3910/tilefit/internal/importer"
	"github.com/piwi3910/tilefit/internal/model"
	"github.com/piwi3910/tilefit/internal/project"
)

var (
	input       = flag.String("input", "", "puzzle file (shape grids and region lines)")
	regionIdx   = flag.Int("region", -1, "solve only this region index (0-based)")
	tracePath   = flag.String("trace", "", "write the search trace JSON for the selected region")
	pdfPath     = flag.String("pdf", "", "write a PDF layout report")
	xlsxPath    = flag.String("xlsx", "", "write an Excel results workbook")
	dxfPath     = flag.String("dxf", "", "write the selected region's layout as DXF")
	cardsPath   = flag.String("cards", "", "write QR-coded region cards PDF")
	sessionPath = flag.String("session", "", "save the run as a session JSON file")
	maxSteps    = flag.Int("steps", 0, "abort a region's search after this many steps (0 = unlimited)")
	compare     = flag.Bool("compare", false, "compare heuristic scenarios instead of a plain solve")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	imp := importer.ImportPuzzle(*input)
	for _, w := range imp.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	for _, e := range imp.Errors {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	puzzle := imp.Puzzle
	if len(puzzle.Shapes) == 0 || len(puzzle.Regions) == 0 {
		log.Fatalf("%s: nothing to solve (%d shapes, %d regions)", *input, len(puzzle.Shapes), len(puzzle.Regions))
	}

	settings := engine.DefaultSettings()
	settings.MaxSteps = *maxSteps

	catalog := engine.NewCatalog(puzzle.Shapes)
	solver := engine.New(catalog, settings)

	if *compare {
		runComparison(catalog, puzzle.Regions, settings)
		return
	}

	regions := puzzle.Regions
	if *regionIdx >= 0 {
		if *regionIdx >= len(puzzle.Regions) {
			log.Fatalf("region %d out of range (puzzle has %d regions)", *regionIdx, len(puzzle.Regions))
		}
		regions = puzzle.Regions[*regionIdx : *regionIdx+1]
	}

	start := time.Now()
	var batch model.BatchResult
	var events []engine.Event
	if *tracePath != "" && len(regions) == 1 {
		res, evs := solver.SolveTraced(regions[0])
		batch.Results = append(batch.Results, res)
		events = evs
	} else {
		batch = solver.SolveAll(regions)
	}
	elapsed := time.Since(start)

	for i, res := range batch.Results {
		idx := i
		if *regionIdx >= 0 {
			idx = *regionIdx
		}
		fmt.Printf("region %d (%dx%d): %s  steps=%d backtracks=%d\n",
			idx, res.Region.Width, res.Region.Height, verdict(res), res.Steps, res.Backtracks)
	}
	fmt.Printf("%d of %d regions feasible (%.2fs)\n", batch.FeasibleCount(), len(batch.Results), elapsed.Seconds())

	if *tracePath != "" {
		if len(regions) != 1 {
			log.Fatal("-trace requires -region to select a single region")
		}
		traceRegion := *regionIdx
		if traceRegion < 0 {
			traceRegion = 0
		}
		doc := export.BuildTrace(puzzle.Shapes, traceRegion, batch.Results[0], events, elapsed.Seconds())
		if err := export.WriteTrace(*tracePath, doc); err != nil {
			log.Fatalf("trace export: %v", err)
		}
		fmt.Printf("trace written to %s (%d events)\n", *tracePath, len(events))
	}
	if *pdfPath != "" {
		if err := export.WritePDF(*pdfPath, puzzle.Shapes, batch); err != nil {
			log.Fatalf("pdf export: %v", err)
		}
	}
	if *xlsxPath != "" {
		if err := export.WriteWorkbook(*xlsxPath, puzzle.Shapes, batch); err != nil {
			log.Fatalf("xlsx export: %v", err)
		}
	}
	if *cardsPath != "" {
		if err := export.WriteRegionCards(*cardsPath, batch); err != nil {
			log.Fatalf("cards export: %v", err)
		}
	}
	if *dxfPath != "" {
		if len(batch.Results) != 1 {
			log.Fatal("-dxf requires -region to select a single region")
		}
		if err := export.WriteDXF(*dxfPath, batch.Results[0]); err != nil {
			log.Fatalf("dxf export: %v", err)
		}
	}
	if *sessionPath != "" {
		s := project.Session{
			Name:     *input,
			Source:   *input,
			Settings: settings,
			Shapes:   puzzle.Shapes,
			Results:  batch.Results,
		}
		if err := project.SaveSession(*sessionPath, s); err != nil {
			log.Fatalf("session save: %v", err)
		}
	}
}

func verdict(res model.RegionResult) string {
	switch {
	case res.Feasible:
		return "FEASIBLE"
	case res.FastRejected:
		return "infeasible (precheck)"
	case res.Aborted:
		return "unknown (budget exhausted)"
	default:
		return "infeasible"
	}
}

func runComparison(catalog *engine.Catalog, regions []model.RegionSpec, base engine.Settings) {
	scenarios := engine.BuildDefaultScenarios(base)
	results := engine.CompareScenarios(catalog, regions, scenarios)
	fmt.Printf("%-24s %10s %12s %10s\n", "Scenario", "Feasible", "Steps", "Aborted")
	for _, r := range results {
		fmt.Printf("%-24s %10d %12d %10d\n", r.Scenario.Name, r.FeasibleCount, r.TotalSteps, r.AbortedCount)
	}
}
