package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportRegionsCSV_WithHeader(t *testing.T) {
	path := writeTempCSV(t, "Width,Height,Shape A,Shape B\n3,3,2,1\n4,2,0,2\n")

	result := ImportRegionsCSV(path, 2)
	require.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "header")

	require.Len(t, result.Regions, 2)
	assert.Equal(t, 3, result.Regions[0].Width)
	assert.Equal(t, []int{2, 1}, result.Regions[0].Counts)
	assert.Equal(t, []int{0, 2}, result.Regions[1].Counts)
}

func TestImportRegionsCSV_WithoutHeader(t *testing.T) {
	path := writeTempCSV(t, "5,4,1,1\n")

	result := ImportRegionsCSV(path, 2)
	require.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Regions, 1)
	assert.Equal(t, 5, result.Regions[0].Width)
	assert.Equal(t, 4, result.Regions[0].Height)
}

func TestImportRegionsCSV_BadRows(t *testing.T) {
	path := writeTempCSV(t, "3,3,2,1\n3,3,2\n0,3,1,1\n3,3,-1,0\n3,3,x,1\n")

	result := ImportRegionsCSV(path, 2)
	require.Len(t, result.Regions, 1, "only the first row is valid")
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "got 3 columns")
	assert.Contains(t, result.Errors[1], "dimensions must be positive")
	assert.Contains(t, result.Errors[2], "negative count")
	assert.Contains(t, result.Errors[3], "invalid value")
}

func TestImportRegionsCSV_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "\n")
	result := ImportRegionsCSV(path, 2)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "empty")
}

func TestImportRegionsCSV_MissingFile(t *testing.T) {
	result := ImportRegionsCSV(filepath.Join(t.TempDir(), "nope.csv"), 2)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open file")
}

func TestImportRegionsExcel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Width", "Height", "A", "B"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{3, 3, 2, 1}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{6, 2, 1, 0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportRegionsExcel(path, 2)
	require.Empty(t, result.Errors)
	require.Len(t, result.Regions, 2)
	assert.Equal(t, []int{2, 1}, result.Regions[0].Counts)
	assert.Equal(t, 6, result.Regions[1].Width)
	assert.Equal(t, 2, result.Regions[1].Height)
}

func TestImportRegionsExcel_MissingFile(t *testing.T) {
	result := ImportRegionsExcel(filepath.Join(t.TempDir(), "nope.xlsx"), 2)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open Excel file")
}
