package export

import (
	"fmt"

	"github.com/piwi3910/tilefit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// dxfCellSize is the drawing size of one grid cell in mm.
const dxfCellSize = 10.0

// WriteDXF writes a solved region layout as DXF geometry: the region
// boundary on one layer and each piece's outline on another. Only the
// outer edges of each piece are drawn, so every piece appears as a single
// closed polyomino outline. DXF Y points up, so rows are flipped.
func WriteDXF(path string, res model.RegionResult) error {
	if !res.Feasible || len(res.Layout) == 0 {
		return fmt.Errorf("region has no layout to export")
	}

	w := float64(res.Region.Width) * dxfCellSize
	h := float64(res.Region.Height) * dxfCellSize

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("REGION", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	boundary := [][4]float64{
		{0, 0, w, 0},
		{w, 0, w, h},
		{w, h, 0, h},
		{0, h, 0, 0},
	}
	for _, seg := range boundary {
		if _, err := d.Line(seg[0], seg[1], 0, seg[2], seg[3], 0); err != nil {
			return err
		}
	}

	if _, err := d.AddLayer("PIECES", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, piece := range res.Layout {
		if err := drawPieceOutline(d, piece, res.Region.Height); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}

// drawPieceOutline draws the edges of a piece's cells that are not shared
// with another cell of the same piece.
func drawPieceOutline(d *drawing.Drawing, piece model.PlacedPiece, regionHeight int) error {
	occupied := make(map[model.Cell]bool, len(piece.Cells))
	for _, c := range piece.Cells {
		occupied[c] = true
	}

	for _, c := range piece.Cells {
		left := float64(c.Col) * dxfCellSize
		right := left + dxfCellSize
		top := float64(regionHeight-c.Row) * dxfCellSize
		bottom := top - dxfCellSize

		type edge struct {
			neighbor       model.Cell
			x1, y1, x2, y2 float64
		}
		edges := []edge{
			{model.Cell{Row: c.Row - 1, Col: c.Col}, left, top, right, top},
			{model.Cell{Row: c.Row + 1, Col: c.Col}, left, bottom, right, bottom},
			{model.Cell{Row: c.Row, Col: c.Col - 1}, left, bottom, left, top},
			{model.Cell{Row: c.Row, Col: c.Col + 1}, right, bottom, right, top},
		}
		for _, e := range edges {
			if occupied[e.neighbor] {
				continue
			}
			if _, err := d.Line(e.x1, e.y1, 0, e.x2, e.y2, 0); err != nil {
				return err
			}
		}
	}
	return nil
}
