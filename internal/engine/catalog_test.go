package engine

import (
	"testing"

	"github.com/piwi3910/tilefit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellsOf(pairs ...[2]int) []model.Cell {
	out := make([]model.Cell, len(pairs))
	for i, p := range pairs {
		out[i] = model.Cell{Row: p[0], Col: p[1]}
	}
	return out
}

func TestOrientations_SymmetryClasses(t *testing.T) {
	cases := []struct {
		name  string
		cells []model.Cell
		want  int
	}{
		{"monomino", cellsOf([2]int{0, 0}), 1},
		{"square", cellsOf([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}), 1},
		{"domino", cellsOf([2]int{0, 0}, [2]int{0, 1}), 2},
		{"line3", cellsOf([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), 2},
		{"l_tromino", cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}), 4},
		{"t_tetromino", cellsOf([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1}), 4},
		{"s_tetromino", cellsOf([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 0}, [2]int{1, 1}), 4},
		{"l_tetromino", cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}), 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := orientationsOf(model.Normalize(c.cells))
			assert.Len(t, got, c.want)
		})
	}
}

func TestOrientations_AllNormalized(t *testing.T) {
	orients := orientationsOf(cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}))
	for _, o := range orients {
		minRow, minCol := o[0].Row, o[0].Col
		for _, c := range o {
			if c.Row < minRow {
				minRow = c.Row
			}
			if c.Col < minCol {
				minCol = c.Col
			}
		}
		assert.Equal(t, 0, minRow)
		assert.Equal(t, 0, minCol)
	}
}

func TestOrientations_InputShapeIncluded(t *testing.T) {
	cells := model.Normalize(cellsOf([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 1}))
	orients := orientationsOf(cells)

	want := cellKey(cells)
	found := false
	for _, o := range orients {
		if cellKey(o) == want {
			found = true
			break
		}
	}
	assert.True(t, found, "the shape's own cell set must be among its orientations")
}

func TestOrientations_Deterministic(t *testing.T) {
	cells := cellsOf([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1})
	first := orientationsOf(cells)
	second := orientationsOf(cells)
	require.Equal(t, first, second)
}

func TestNewCatalog_CachesPerShape(t *testing.T) {
	shapes := []model.Shape{
		model.NewShape("mono", cellsOf([2]int{0, 0})),
		model.NewShape("domino", cellsOf([2]int{0, 0}, [2]int{0, 1})),
	}
	cat := NewCatalog(shapes)

	assert.Equal(t, shapes, cat.Shapes())
	assert.Len(t, cat.Orientations(0), 1)
	assert.Len(t, cat.Orientations(1), 2)
}
