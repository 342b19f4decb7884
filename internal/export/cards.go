package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/tilefit/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// CardInfo holds the data encoded into each region card's QR code.
type CardInfo struct {
	RegionIndex int    `json:"region"`
	Width       int    `json:"w"`
	Height      int    `json:"h"`
	Counts      []int  `json:"counts"`
	Feasible    bool   `json:"feasible"`
	Steps       int    `json:"steps"`
	RegionID    string `json:"id"`
}

// Card layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page). Each cell is approximately 66.7mm x 25.4mm on US Letter
// paper.
const (
	cardPageWidth  = 215.9 // US Letter width in mm
	cardMarginTop  = 12.7  // mm
	cardMarginLeft = 4.8   // mm
	cardWidth      = 66.7  // mm per card
	cardHeight     = 25.4  // mm per card
	cardCols       = 3
	cardRows       = 10
	cardsPerPage   = cardCols * cardRows
	cardQRSize     = 20.0 // QR code size in mm
	cardPadding    = 2.0  // mm internal padding
)

// WriteRegionCards generates a PDF of QR-coded cards, one per region.
// Each card shows the region dimensions and verdict, plus a QR code
// encoding the region spec and result as JSON.
func WriteRegionCards(path string, batch model.BatchResult) error {
	if len(batch.Results) == 0 {
		return fmt.Errorf("no regions to generate cards for")
	}

	cards := CollectCardInfos(batch)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range cards {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}
		posOnPage := i % cardsPerPage
		col := posOnPage % cardCols
		row := posOnPage / cardCols

		x := cardMarginLeft + float64(col)*cardWidth
		y := cardMarginTop + float64(row)*cardHeight

		if err := renderCard(pdf, x, y, card); err != nil {
			return fmt.Errorf("failed to render card for region %d: %w", card.RegionIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderCard draws a single region card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, info CardInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_region_%d", info.RegionIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + cardWidth - cardQRSize - cardPadding
	qrY := y + (cardHeight-cardQRSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, cardQRSize, cardQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + cardPadding
	textW := cardWidth - cardQRSize - 3*cardPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+cardPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Region %d: %dx%d", info.RegionIndex, info.Width, info.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+cardPadding+5)
	verdict := "infeasible"
	if info.Feasible {
		verdict = "FEASIBLE"
	}
	pdf.CellFormat(textW, 3.5, verdict, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+cardPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%d search steps", info.Steps), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectCardInfos extracts card information from a batch result for use
// in testing or alternative export formats.
func CollectCardInfos(batch model.BatchResult) []CardInfo {
	cards := make([]CardInfo, 0, len(batch.Results))
	for i, res := range batch.Results {
		cards = append(cards, CardInfo{
			RegionIndex: i + 1,
			Width:       res.Region.Width,
			Height:      res.Region.Height,
			Counts:      res.Region.Counts,
			Feasible:    res.Feasible,
			Steps:       res.Steps,
			RegionID:    res.Region.ID,
		})
	}
	return cards
}
