package export

import (
	"encoding/json"
	"os"

	"github.com/piwi3910/tilefit/internal/engine"
	"github.com/piwi3910/tilefit/internal/model"
)

// TraceDoc is the JSON document consumed by the search visualizer: the
// region, the shape definition grids, and the capped commit/backtrack
// event stream in search order.
type TraceDoc struct {
	Width      int            `json:"w"`
	Height     int            `json:"h"`
	Counts     []int          `json:"counts"`
	ShapeDefs  [][][]bool     `json:"shapeDefs"`
	Result     bool           `json:"result"`
	Events     []engine.Event `json:"events"`
	NInstances int            `json:"nInstances"`
	RegionIdx  int            `json:"regionIdx"`
	Elapsed    float64        `json:"elapsed"`
}

// BuildTrace assembles a trace document from a traced solve.
func BuildTrace(shapes []model.Shape, regionIdx int, res model.RegionResult, events []engine.Event, elapsedSeconds float64) TraceDoc {
	doc := TraceDoc{
		Width:      res.Region.Width,
		Height:     res.Region.Height,
		Counts:     res.Region.Counts,
		Result:     res.Feasible,
		Events:     events,
		NInstances: res.Region.Instances(),
		RegionIdx:  regionIdx,
		Elapsed:    elapsedSeconds,
	}
	for _, s := range shapes {
		doc.ShapeDefs = append(doc.ShapeDefs, shapeGrid(s))
	}
	return doc
}

// WriteTrace writes the trace document as compact JSON. Traces run to tens
// of thousands of events, so no indentation.
func WriteTrace(path string, doc TraceDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// shapeGrid renders a shape's cells as a boolean grid for the visualizer.
func shapeGrid(s model.Shape) [][]bool {
	maxRow, maxCol := s.Bounds()
	grid := make([][]bool, maxRow+1)
	for r := range grid {
		grid[r] = make([]bool, maxCol+1)
	}
	for _, c := range s.Cells {
		grid[c.Row][c.Col] = true
	}
	return grid
}
