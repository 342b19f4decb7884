// Package model defines the geometry and result types shared by the
// solver engine, importers and exporters.
package model

import (
	"sort"

	"github.com/google/uuid"
)

// Cell is one occupied grid square, addressed as (row, col) from the
// top-left corner of a shape or region.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Shape is a polyomino: a label plus a normalized set of occupied cells.
// Normalized means the minimum row and minimum column across the cells are
// both zero. Shapes are immutable once constructed.
type Shape struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

func NewShape(label string, cells []Cell) Shape {
	return Shape{
		ID:    uuid.New().String()[:8],
		Label: label,
		Cells: Normalize(cells),
	}
}

// Area returns the number of cells the shape occupies.
func (s Shape) Area() int {
	return len(s.Cells)
}

// Bounds returns the maximum row and column across the shape's cells.
// For a normalized shape this is the bounding box minus one in each axis.
func (s Shape) Bounds() (maxRow, maxCol int) {
	return Bounds(s.Cells)
}

// Normalize shifts cells so their bounding box touches the origin, drops
// duplicates, and sorts the result in row-major order.
func Normalize(cells []Cell) []Cell {
	if len(cells) == 0 {
		return nil
	}
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	seen := make(map[Cell]bool, len(cells))
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		shifted := Cell{Row: c.Row - minRow, Col: c.Col - minCol}
		if !seen[shifted] {
			seen[shifted] = true
			out = append(out, shifted)
		}
	}
	SortCells(out)
	return out
}

// SortCells orders cells row-major (by row, then column).
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}

// Bounds returns the maximum row and column across a cell set.
func Bounds(cells []Cell) (maxRow, maxCol int) {
	for _, c := range cells {
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	return maxRow, maxCol
}

// RegionSpec describes one rectangular region and how many copies of each
// shape it must absorb. Counts are indexed in catalog (shape definition)
// order; all counts are non-negative.
type RegionSpec struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Counts []int  `json:"counts"`
}

func NewRegionSpec(w, h int, counts []int) RegionSpec {
	return RegionSpec{
		ID:     uuid.New().String()[:8],
		Width:  w,
		Height: h,
		Counts: counts,
	}
}

// Area returns the number of cells in the region.
func (r RegionSpec) Area() int {
	return r.Width * r.Height
}

// Instances returns the total number of shape copies the region requires.
func (r RegionSpec) Instances() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// CellDemand returns the total number of cells the required shape copies
// would cover. Exceeding the region area makes the region infeasible
// before any search.
func (r RegionSpec) CellDemand(shapes []Shape) int {
	total := 0
	for i, c := range r.Counts {
		if i < len(shapes) {
			total += c * shapes[i].Area()
		}
	}
	return total
}

// FillRatio returns the demanded cells as a fraction of the region area.
func (r RegionSpec) FillRatio(shapes []Shape) float64 {
	area := r.Area()
	if area == 0 {
		return 0
	}
	return float64(r.CellDemand(shapes)) / float64(area)
}

// Puzzle ties a shape catalog and its region specifications together.
type Puzzle struct {
	Shapes  []Shape      `json:"shapes"`
	Regions []RegionSpec `json:"regions"`
}

// PlacedPiece is one shape copy of a completed layout: which shape it is,
// the placement index that was committed, and the absolute region cells
// it covers.
type PlacedPiece struct {
	Shape int    `json:"shape"`
	Index int    `json:"index"`
	Cells []Cell `json:"cells"`
}

// RegionResult records the outcome of solving one region. The two "no"
// outcomes are both non-exceptional: FastRejected marks regions discarded
// by the area or placement-count precheck, everything else fell out of
// exhaustive search (or hit the step budget, flagged by Aborted).
type RegionResult struct {
	Region       RegionSpec    `json:"region"`
	Feasible     bool          `json:"feasible"`
	FastRejected bool          `json:"fast_rejected,omitempty"`
	Aborted      bool          `json:"aborted,omitempty"`
	Steps        int           `json:"steps"`
	Commits      int           `json:"commits"`
	Backtracks   int           `json:"backtracks"`
	Layout       []PlacedPiece `json:"layout,omitempty"`
}

// BatchResult holds the outcomes for every region of a puzzle, in input
// order.
type BatchResult struct {
	Results []RegionResult `json:"results"`
}

// FeasibleCount returns how many regions admit a full packing.
func (b BatchResult) FeasibleCount() int {
	n := 0
	for _, r := range b.Results {
		if r.Feasible {
			n++
		}
	}
	return n
}

// TotalSteps returns the summed search steps across all regions.
func (b BatchResult) TotalSteps() int {
	total := 0
	for _, r := range b.Results {
		total += r.Steps
	}
	return total
}
