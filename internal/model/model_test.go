package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ShiftsToOrigin(t *testing.T) {
	cells := []Cell{{Row: 3, Col: 5}, {Row: 4, Col: 5}, {Row: 4, Col: 6}}
	got := Normalize(cells)
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, got)
}

func TestNormalize_SortsAndDeduplicates(t *testing.T) {
	cells := []Cell{{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 0}}
	got := Normalize(cells)
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}

func TestNewShape_NormalizesAndAssignsID(t *testing.T) {
	s := NewShape("hook", []Cell{{Row: 2, Col: 2}, {Row: 2, Col: 3}})
	require.Len(t, s.ID, 8)
	assert.Equal(t, "hook", s.Label)
	assert.Equal(t, []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, s.Cells)
	assert.Equal(t, 2, s.Area())

	maxRow, maxCol := s.Bounds()
	assert.Equal(t, 0, maxRow)
	assert.Equal(t, 1, maxCol)
}

func TestRegionSpec_AreaAndInstances(t *testing.T) {
	r := NewRegionSpec(4, 3, []int{2, 0, 1})
	assert.Equal(t, 12, r.Area())
	assert.Equal(t, 3, r.Instances())
}

func TestRegionSpec_CellDemand(t *testing.T) {
	shapes := []Shape{
		NewShape("mono", []Cell{{0, 0}}),
		NewShape("domino", []Cell{{0, 0}, {0, 1}}),
	}
	r := NewRegionSpec(4, 2, []int{2, 3})
	assert.Equal(t, 2*1+3*2, r.CellDemand(shapes))
	assert.InDelta(t, 1.0, r.FillRatio(shapes), 1e-9)
}

func TestBatchResult_Counts(t *testing.T) {
	b := BatchResult{Results: []RegionResult{
		{Feasible: true, Steps: 10},
		{Feasible: false, Steps: 25},
		{Feasible: true, Steps: 5},
	}}
	assert.Equal(t, 2, b.FeasibleCount())
	assert.Equal(t, 40, b.TotalSteps())
}
