package export

import (
	"fmt"

	"github.com/piwi3910/tilefit/internal/model"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the batch results to an Excel workbook: a Regions
// sheet with one row per region and a Shapes sheet describing the catalog.
func WriteWorkbook(path string, shapes []model.Shape, batch model.BatchResult) error {
	if len(batch.Results) == 0 {
		return fmt.Errorf("no regions to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const regionSheet = "Regions"
	if err := f.SetSheetName("Sheet1", regionSheet); err != nil {
		return err
	}

	headers := []interface{}{"Region", "Width", "Height", "Pieces", "Cells Required", "Region Area", "Fill %", "Feasible", "Fast Rejected", "Aborted", "Steps", "Backtracks"}
	if err := f.SetSheetRow(regionSheet, "A1", &headers); err != nil {
		return err
	}

	for i, res := range batch.Results {
		row := []interface{}{
			i + 1,
			res.Region.Width,
			res.Region.Height,
			res.Region.Instances(),
			res.Region.CellDemand(shapes),
			res.Region.Area(),
			res.Region.FillRatio(shapes) * 100,
			res.Feasible,
			res.FastRejected,
			res.Aborted,
			res.Steps,
			res.Backtracks,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(regionSheet, cell, &row); err != nil {
			return err
		}
	}

	const shapeSheet = "Shapes"
	if _, err := f.NewSheet(shapeSheet); err != nil {
		return err
	}
	shapeHeaders := []interface{}{"Shape", "Label", "Cells"}
	if err := f.SetSheetRow(shapeSheet, "A1", &shapeHeaders); err != nil {
		return err
	}
	for i, s := range shapes {
		row := []interface{}{i, s.Label, s.Area()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(shapeSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
