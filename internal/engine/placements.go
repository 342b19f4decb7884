package engine

import "github.com/piwi3910/tilefit/internal/model"

// Placement is one concrete position of an oriented shape inside a region:
// the occupancy bitmask plus the absolute cells it covers. The cells are
// kept alongside the mask for tracing and geometry export; the solver
// itself only touches the mask.
type Placement struct {
	Mask  model.Bitset
	Cells []model.Cell
}

// PlacementTable is the candidate list shared by every instance of one
// shape type within one region. Instances reference the table rather than
// copying it.
type PlacementTable struct {
	Shape      int // index into the catalog
	Count      int // required copies of this shape
	Placements []Placement
}

// placementsFor expands one orientation into every translation that keeps
// its bounding box inside a w x h region. Orientations too large for the
// region contribute nothing; that is not an error.
func placementsFor(cells []model.Cell, w, h int) []Placement {
	maxRow, maxCol := model.Bounds(cells)
	if maxRow >= h || maxCol >= w {
		return nil
	}
	out := make([]Placement, 0, (h-maxRow)*(w-maxCol))
	for dr := 0; dr < h-maxRow; dr++ {
		for dc := 0; dc < w-maxCol; dc++ {
			mask := model.NewBitset(w * h)
			abs := make([]model.Cell, len(cells))
			for i, c := range cells {
				r, col := c.Row+dr, c.Col+dc
				mask.Set(r*w + col)
				abs[i] = model.Cell{Row: r, Col: col}
			}
			out = append(out, Placement{Mask: mask, Cells: abs})
		}
	}
	return out
}

// buildTables assembles the per-type placement tables for a region,
// skipping zero-count shapes. The table order follows catalog order; the
// solver reorders afterwards. Returns ok=false when some required shape
// has fewer placements than copies, in which case no assignment can
// succeed and the search is skipped entirely.
func (c *Catalog) buildTables(region model.RegionSpec) (tables []PlacementTable, ok bool) {
	for s, count := range region.Counts {
		if count <= 0 {
			continue
		}
		var placements []Placement
		for _, orient := range c.orients[s] {
			placements = append(placements, placementsFor(orient, region.Width, region.Height)...)
		}
		if len(placements) < count {
			return nil, false
		}
		tables = append(tables, PlacementTable{
			Shape:      s,
			Count:      count,
			Placements: placements,
		})
	}
	return tables, true
}
