package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/tilefit/internal/model"
	"github.com/xuri/excelize/v2"
)

// RegionImportResult holds region specs parsed from tabular data plus any
// per-row errors and warnings.
type RegionImportResult struct {
	Regions  []model.RegionSpec
	Errors   []string
	Warnings []string
}

// ImportRegionsCSV reads region specifications from a CSV file. Each row
// is width, height, then one count column per shape. A non-numeric first
// row is treated as a header and skipped.
func ImportRegionsCSV(path string, shapeCount int) RegionImportResult {
	result := RegionImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return regionsFromRows(records, shapeCount, "Line")
}

// ImportRegionsExcel reads region specifications from the first sheet of
// an Excel workbook, with the same column layout as the CSV import.
func ImportRegionsExcel(path string, shapeCount int) RegionImportResult {
	result := RegionImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return regionsFromRows(rows, shapeCount, "Row")
}

// regionsFromRows is the shared import logic for CSV and Excel region
// lists.
func regionsFromRows(rows [][]string, shapeCount int, rowPrefix string) RegionImportResult {
	result := RegionImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	start := 0
	if len(rows[0]) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
			start = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		if isEmptyRow(row) {
			continue
		}
		if len(row) < 2+shapeCount {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: got %d columns, want width, height and %d counts", rowLabel, len(row), shapeCount))
			continue
		}

		values := make([]int, 0, 2+shapeCount)
		bad := false
		for j := 0; j < 2+shapeCount; j++ {
			n, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: invalid value %q", rowLabel, row[j]))
				bad = true
				break
			}
			values = append(values, n)
		}
		if bad {
			continue
		}

		w, h := values[0], values[1]
		if w <= 0 || h <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: dimensions must be positive", rowLabel))
			continue
		}
		counts := values[2:]
		negative := false
		for _, c := range counts {
			if c < 0 {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: negative count %d", rowLabel, c))
				negative = true
				break
			}
		}
		if negative {
			continue
		}

		result.Regions = append(result.Regions, model.NewRegionSpec(w, h, counts))
	}
	return result
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
