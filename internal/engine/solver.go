package engine

import (
	"sort"

	"github.com/piwi3910/tilefit/internal/model"
)

// Settings holds solver configuration.
type Settings struct {
	// ForwardCheck prunes candidates that would starve a not-yet-satisfied
	// shape group of the placements it still needs.
	ForwardCheck bool `json:"forward_check"`
	// OrderMostConstrained solves shape groups with the fewest placements
	// first, shrinking the branching factor near the root.
	OrderMostConstrained bool `json:"order_most_constrained"`
	// MaxSteps aborts the search loop after this many iterations; an
	// aborted region is reported infeasible with Aborted set. 0 means
	// unlimited. Worst-case backtracking is exponential in the instance
	// count, so batch callers should set a budget.
	MaxSteps int `json:"max_steps"`
	// MaxEvents caps the recorded trace of a traced solve. <= 0 means
	// unlimited.
	MaxEvents int `json:"max_events"`
}

// DefaultSettings returns the configuration used by the CLI.
func DefaultSettings() Settings {
	return Settings{
		ForwardCheck:         true,
		OrderMostConstrained: true,
		MaxEvents:            50000,
	}
}

// Solver decides whether regions can be exactly packed with their required
// shape copies. A Solver retains no state between calls; distinct regions
// may be solved from separate goroutines as long as they share one
// immutable Catalog.
type Solver struct {
	Settings Settings
	catalog  *Catalog
}

func New(catalog *Catalog, settings Settings) *Solver {
	return &Solver{Settings: settings, catalog: catalog}
}

// Solve reports whether every required shape copy fits into the region
// with no overlap. Pure: identical inputs give identical results.
func (s *Solver) Solve(region model.RegionSpec) model.RegionResult {
	return s.run(region, nil)
}

// SolveTraced is Solve plus the commit/backtrack event stream, capped at
// Settings.MaxEvents. The trace is an observer side channel; the boolean
// outcome and search order are identical to Solve.
func (s *Solver) SolveTraced(region model.RegionSpec) (model.RegionResult, []Event) {
	rec := newRecorder(s.Settings.MaxEvents)
	res := s.run(region, rec)
	return res, rec.events
}

// SolveAll solves every region in order and collects the outcomes.
func (s *Solver) SolveAll(regions []model.RegionSpec) model.BatchResult {
	batch := model.BatchResult{Results: make([]model.RegionResult, 0, len(regions))}
	for _, r := range regions {
		batch.Results = append(batch.Results, s.Solve(r))
	}
	return batch
}

// group marks the contiguous instance index range [start, end) occupied by
// one shape type after flattening. groups[k] corresponds to tables[k].
type group struct {
	start, end int
}

// run is the search engine. It is iterative by construction: the frame
// state is a resume index and a saved occupancy snapshot per instance
// position, so the memory footprint is proportional to the instance count
// and independent of how deep the search churns.
func (s *Solver) run(region model.RegionSpec, rec *recorder) model.RegionResult {
	res := model.RegionResult{Region: region}

	// Area precondition: more demanded cells than the region has means
	// infeasible before any placement list exists.
	if region.CellDemand(s.catalog.shapes) > region.Area() {
		res.FastRejected = true
		return res
	}

	tables, ok := s.catalog.buildTables(region)
	if !ok {
		res.FastRejected = true
		return res
	}
	if len(tables) == 0 {
		// Nothing required: the empty packing is a packing.
		res.Feasible = true
		return res
	}

	if s.Settings.OrderMostConstrained {
		sort.SliceStable(tables, func(i, j int) bool {
			return len(tables[i].Placements) < len(tables[j].Placements)
		})
	}

	// Flatten into the instance list. Copies of one type stay contiguous
	// and share the type's placement table by index, not by copy.
	n := 0
	groups := make([]group, len(tables))
	for i, t := range tables {
		groups[i] = group{start: n, end: n + t.Count}
		n += t.Count
	}
	instType := make([]int, n)
	for i, g := range groups {
		for p := g.start; p < g.end; p++ {
			instType[p] = i
		}
	}

	cellCount := region.Area()
	occupancy := model.NewBitset(cellCount)
	tentative := model.NewBitset(cellCount)
	saved := make([]model.Bitset, n)
	for i := range saved {
		saved[i] = model.NewBitset(cellCount)
	}
	resume := make([]int, n+1)

	pos := 0
	for pos >= 0 && pos < n {
		if s.Settings.MaxSteps > 0 && res.Steps >= s.Settings.MaxSteps {
			res.Aborted = true
			break
		}
		res.Steps++

		table := &tables[instType[pos]]
		committed := false

		for i := resume[pos]; i < len(table.Placements); i++ {
			cand := &table.Placements[i]
			if occupancy.Overlaps(cand.Mask) {
				continue
			}
			tentative.CopyFrom(occupancy)
			tentative.Or(cand.Mask)

			if s.Settings.ForwardCheck && starves(tables, groups, pos, tentative) {
				continue
			}

			// Commit. Backtracking into this position resumes after i.
			saved[pos].CopyFrom(occupancy)
			resume[pos] = i + 1
			occupancy.CopyFrom(tentative)
			// Symmetry breaking: interchangeable copies are only tried in
			// non-decreasing placement order, so the next instance of the
			// same type starts after i instead of at zero.
			if pos+1 < n && instType[pos+1] == instType[pos] {
				resume[pos+1] = i + 1
			} else {
				resume[pos+1] = 0
			}
			rec.commit(pos, table.Shape, i, cand.Cells)
			res.Commits++
			pos++
			committed = true
			break
		}

		if !committed {
			rec.backtrack(pos)
			res.Backtracks++
			pos--
			if pos >= 0 {
				occupancy.CopyFrom(saved[pos])
			}
		}
	}

	if pos >= n {
		res.Feasible = true
		res.Layout = layoutFrom(tables, instType, resume)
	}
	return res
}

// starves reports whether, under the tentative occupancy, some shape group
// with instances still unplaced past position pos no longer has enough
// non-overlapping placements for the copies it needs. The count stops
// early once the need is met, so the common (non-pruning) case stays
// cheap.
func starves(tables []PlacementTable, groups []group, pos int, tentative model.Bitset) bool {
	next := pos + 1
	for gi, g := range groups {
		if g.end <= next {
			continue
		}
		needed := g.end - next
		if g.start > next {
			needed = g.end - g.start
		}
		free := 0
		for i := range tables[gi].Placements {
			if !tentative.Overlaps(tables[gi].Placements[i].Mask) {
				free++
				if free >= needed {
					break
				}
			}
		}
		if free < needed {
			return true
		}
	}
	return false
}

// layoutFrom reconstructs the committed layout once the search succeeds:
// the placement chosen at position p is the one before its resume index.
func layoutFrom(tables []PlacementTable, instType []int, resume []int) []model.PlacedPiece {
	layout := make([]model.PlacedPiece, len(instType))
	for p, ti := range instType {
		idx := resume[p] - 1
		layout[p] = model.PlacedPiece{
			Shape: tables[ti].Shape,
			Index: idx,
			Cells: tables[ti].Placements[idx].Cells,
		}
	}
	return layout
}
