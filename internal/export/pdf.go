// Package export writes solve results to various file formats: PDF layout
// reports, QR-coded region cards, Excel workbooks, DXF geometry and the
// JSON search trace for the visualizer.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/tilefit/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// WritePDF generates a PDF report of a solved batch. Each feasible region
// is rendered on its own page as a grid layout; a final summary page
// tabulates every region.
func WritePDF(path string, shapes []model.Shape, batch model.BatchResult) error {
	if len(batch.Results) == 0 {
		return fmt.Errorf("no regions to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, res := range batch.Results {
		if !res.Feasible || len(res.Layout) == 0 {
			continue
		}
		pdf.AddPage()
		renderRegionPage(pdf, shapes, res, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, shapes, batch)

	return pdf.OutputFileAndClose(path)
}

// renderRegionPage draws one solved region layout on the current page.
func renderRegionPage(pdf *fpdf.Fpdf, shapes []model.Shape, res model.RegionResult, regionNum int) {
	region := res.Region

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Region %d: %dx%d", regionNum, region.Width, region.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Cells: %d / %d (%.1f%%) | Steps: %d | Backtracks: %d",
		region.Instances(), region.CellDemand(shapes), region.Area(),
		region.FillRatio(shapes)*100, res.Steps, res.Backtracks)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the grid to the drawing area.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	cellSize := math.Min(drawWidth/float64(region.Width), drawHeight/float64(region.Height))

	canvasW := cellSize * float64(region.Width)
	canvasH := cellSize * float64(region.Height)
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Region background and outline.
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed pieces, one color per shape type.
	for _, piece := range res.Layout {
		col := pieceColors[piece.Shape%len(pieceColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		for _, c := range piece.Cells {
			px := offsetX + float64(c.Col)*cellSize
			py := offsetY + float64(c.Row)*cellSize
			pdf.Rect(px, py, cellSize, cellSize, "FD")
		}
	}

	// Faint grid lines over the whole region.
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.1)
	for r := 1; r < region.Height; r++ {
		y := offsetY + float64(r)*cellSize
		pdf.Line(offsetX, y, offsetX+canvasW, y)
	}
	for c := 1; c < region.Width; c++ {
		x := offsetX + float64(c)*cellSize
		pdf.Line(x, offsetY, x, offsetY+canvasH)
	}

	drawShapeLegend(pdf, shapes, region, offsetY+canvasH+4)
}

// drawShapeLegend renders a compact legend of the required shapes below
// the region drawing.
func drawShapeLegend(pdf *fpdf.Fpdf, shapes []model.Shape, region model.RegionSpec, startY float64) {
	if startY > pageHeight-marginBottom-5 {
		return
	}
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	xPos := marginLeft
	maxX := pageWidth - marginRight

	for s, count := range region.Counts {
		if count == 0 || s >= len(shapes) {
			continue
		}
		col := pieceColors[s%len(pieceColors)]
		label := fmt.Sprintf("%s x%d", shapes[s].Label, count)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			break
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary table covering every region.
func renderSummaryPage(pdf *fpdf.Fpdf, shapes []model.Shape, batch model.BatchResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Region Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, y)
	overall := fmt.Sprintf("%d of %d regions feasible | Total search steps: %d",
		batch.FeasibleCount(), len(batch.Results), batch.TotalSteps())
	pdf.CellFormat(200, 6, overall, "", 0, "L", false, 0, "")
	y += 10

	colWidths := []float64{18, 30, 25, 28, 25, 30, 30}
	headers := []string{"Region", "Size", "Pieces", "Fill", "Result", "Steps", "Backtracks"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, res := range batch.Results {
		// Start a fresh page when the table runs off the bottom.
		if y > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = marginTop
		}

		verdict := "infeasible"
		if res.Feasible {
			verdict = "FEASIBLE"
		} else if res.FastRejected {
			verdict = "rejected"
		} else if res.Aborted {
			verdict = "aborted"
		}
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%dx%d", res.Region.Width, res.Region.Height),
			fmt.Sprintf("%d", res.Region.Instances()),
			fmt.Sprintf("%.1f%%", res.Region.FillRatio(shapes)*100),
			verdict,
			fmt.Sprintf("%d", res.Steps),
			fmt.Sprintf("%d", res.Backtracks),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by tilefit - Region Packing Solver", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
