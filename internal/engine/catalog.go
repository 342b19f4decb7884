// Package engine implements the region-packing feasibility search: shape
// orientation derivation, placement bitmask generation, and the iterative
// backtracking solver.
package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/piwi3910/tilefit/internal/model"
)

// Catalog holds the shapes of one puzzle together with their precomputed
// orientations. It is immutable after construction, so any number of
// solver runs may read it concurrently.
type Catalog struct {
	shapes  []model.Shape
	orients [][][]model.Cell
}

// NewCatalog derives and caches the distinct orientations of every shape.
func NewCatalog(shapes []model.Shape) *Catalog {
	c := &Catalog{
		shapes:  shapes,
		orients: make([][][]model.Cell, len(shapes)),
	}
	for i, s := range shapes {
		c.orients[i] = orientationsOf(s.Cells)
	}
	return c
}

// Shapes returns the catalog's shapes in definition order.
func (c *Catalog) Shapes() []model.Shape {
	return c.shapes
}

// Orientations returns the cached orientation list for one shape. Between
// 1 and 8 entries; each entry is normalized to a zero-based bounding box.
func (c *Catalog) Orientations(shape int) [][]model.Cell {
	return c.orients[shape]
}

// orientationsOf applies all eight reflection/rotation combinations to a
// cell set, re-normalizing after each transform, and keeps one copy of
// every distinct result. Shapes with their own symmetry collapse to fewer
// than eight variants. The output is sorted by cell-list key so that
// enumeration order, and therefore search behavior, is identical across
// runs.
func orientationsOf(cells []model.Cell) [][]model.Cell {
	distinct := make(map[string][]model.Cell, 8)
	for flip := 0; flip < 2; flip++ {
		for rot := 0; rot < 4; rot++ {
			variant := make([]model.Cell, len(cells))
			for i, cl := range cells {
				r, c := cl.Row, cl.Col
				if flip == 1 {
					c = -c
				}
				for k := 0; k < rot; k++ {
					r, c = c, -r
				}
				variant[i] = model.Cell{Row: r, Col: c}
			}
			variant = model.Normalize(variant)
			distinct[cellKey(variant)] = variant
		}
	}

	keys := make([]string, 0, len(distinct))
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][]model.Cell, len(keys))
	for i, k := range keys {
		out[i] = distinct[k]
	}
	return out
}

// cellKey builds an order-independent identity for a normalized, sorted
// cell set.
func cellKey(cells []model.Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(strconv.Itoa(c.Row))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c.Col))
		sb.WriteByte(';')
	}
	return sb.String()
}
