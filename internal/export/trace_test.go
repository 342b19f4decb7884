package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/tilefit/internal/engine"
	"github.com/piwi3910/tilefit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrace_Fields(t *testing.T) {
	shapes := []model.Shape{
		model.NewShape("hook", []model.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}),
	}
	solver := engine.New(engine.NewCatalog(shapes), engine.DefaultSettings())
	spec := model.NewRegionSpec(2, 3, []int{2})

	res, events := solver.SolveTraced(spec)
	require.True(t, res.Feasible)
	require.NotEmpty(t, events)

	doc := BuildTrace(shapes, 4, res, events, 0.25)
	assert.Equal(t, 2, doc.Width)
	assert.Equal(t, 3, doc.Height)
	assert.Equal(t, []int{2}, doc.Counts)
	assert.True(t, doc.Result)
	assert.Equal(t, events, doc.Events)
	assert.Equal(t, 2, doc.NInstances)
	assert.Equal(t, 4, doc.RegionIdx)
	assert.Equal(t, 0.25, doc.Elapsed)

	require.Len(t, doc.ShapeDefs, 1)
	assert.Equal(t, [][]bool{{true, false}, {true, true}}, doc.ShapeDefs[0])
}

func TestWriteTrace_RoundTrip(t *testing.T) {
	shapes := []model.Shape{
		model.NewShape("domino", []model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}),
	}
	solver := engine.New(engine.NewCatalog(shapes), engine.DefaultSettings())
	res, events := solver.SolveTraced(model.NewRegionSpec(2, 2, []int{2}))

	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, WriteTrace(path, BuildTrace(shapes, 0, res, events, 0.01)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n", "trace JSON must be compact")

	var got TraceDoc
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 2, got.Width)
	assert.True(t, got.Result)
	assert.Equal(t, len(events), len(got.Events))
	require.NotEmpty(t, got.Events)
	assert.Equal(t, engine.EventCommit, got.Events[0].Kind)
	assert.Len(t, got.Events[0].Cells, 2)
}
