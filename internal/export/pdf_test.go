package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tilefit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF_CreatesReport(t *testing.T) {
	shapes, batch := solvedFixture(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, WritePDF(path, shapes, batch))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWritePDF_EmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	err := WritePDF(path, nil, model.BatchResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no regions")
}

func TestWritePDF_InfeasibleOnlyStillWritesSummary(t *testing.T) {
	shapes, _ := solvedFixture(t)
	batch := model.BatchResult{Results: []model.RegionResult{
		{Region: model.NewRegionSpec(2, 2, []int{5, 0}), FastRejected: true},
	}}
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, WritePDF(path, shapes, batch))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
