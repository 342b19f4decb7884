package engine

import "github.com/piwi3910/tilefit/internal/model"

// ComparisonScenario defines a named solver configuration to compare.
type ComparisonScenario struct {
	Name     string
	Settings Settings
}

// ComparisonResult holds the batch outcome and summary statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Batch         model.BatchResult
	FeasibleCount int
	TotalSteps    int
	AbortedCount  int
}

// CompareScenarios solves the same regions under each scenario and returns
// the results in scenario order. Feasibility must agree between scenarios
// that differ only in pruning or ordering; the step counts show what the
// heuristics buy.
func CompareScenarios(catalog *Catalog, regions []model.RegionSpec, scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		solver := New(catalog, scenario.Settings)
		batch := solver.SolveAll(regions)

		aborted := 0
		for _, r := range batch.Results {
			if r.Aborted {
				aborted++
			}
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Batch:         batch,
			FeasibleCount: batch.FeasibleCount(),
			TotalSteps:    batch.TotalSteps(),
			AbortedCount:  aborted,
		})
	}
	return results
}

// BuildDefaultScenarios generates comparison scenarios from a base
// configuration, toggling each heuristic to show its effect.
func BuildDefaultScenarios(base Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
	}

	if base.ForwardCheck {
		s := base
		s.ForwardCheck = false
		scenarios = append(scenarios, ComparisonScenario{Name: "No Forward Checking", Settings: s})
	}

	if base.OrderMostConstrained {
		s := base
		s.OrderMostConstrained = false
		scenarios = append(scenarios, ComparisonScenario{Name: "Catalog Order", Settings: s})
	}

	return scenarios
}
