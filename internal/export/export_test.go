package export

import (
	"testing"

	"github.com/piwi3910/tilefit/internal/engine"
	"github.com/piwi3910/tilefit/internal/model"
)

// solvedFixture builds a small solved batch shared by the export tests:
// one feasible region with a layout, one fast-rejected region, one larger
// feasible region.
func solvedFixture(t *testing.T) ([]model.Shape, model.BatchResult) {
	t.Helper()

	shapes := []model.Shape{
		model.NewShape("mono", []model.Cell{{Row: 0, Col: 0}}),
		model.NewShape("domino", []model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}),
	}
	solver := engine.New(engine.NewCatalog(shapes), engine.DefaultSettings())
	batch := solver.SolveAll([]model.RegionSpec{
		model.NewRegionSpec(2, 2, []int{0, 2}),
		model.NewRegionSpec(2, 2, []int{5, 0}),
		model.NewRegionSpec(3, 3, []int{1, 4}),
	})
	return shapes, batch
}
