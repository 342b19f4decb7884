// Package importer parses puzzle definitions: shape grids and region
// specifications from the text format, and region lists from CSV or Excel
// files. Parse problems are collected per block or row rather than
// aborting the whole import.
package importer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/tilefit/internal/model"
)

// ImportResult holds the parsed puzzle plus any per-block errors and
// warnings.
type ImportResult struct {
	Puzzle   model.Puzzle
	Errors   []string
	Warnings []string
}

// ImportPuzzle reads and parses a puzzle file.
func ImportPuzzle(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	return ParsePuzzle(string(data))
}

// ParsePuzzle parses the puzzle text format. Blocks are separated by blank
// lines. A block whose first line ends with ':' and contains no 'x' is a
// shape definition: the label, then grid lines where '#' marks occupied
// cells. Every other block holds region lines of the form
//
//	WxH: c0 c1 ... cK
//
// with one non-negative count per shape, in definition order.
func ParsePuzzle(text string) ImportResult {
	result := ImportResult{}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	blocks := strings.Split(strings.TrimSpace(normalized), "\n\n")

	type pendingRegion struct {
		w, h   int
		counts []int
		label  string
	}
	var pending []pendingRegion

	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) == 0 {
			continue
		}
		first := strings.TrimSpace(lines[0])

		if strings.HasSuffix(first, ":") && !strings.Contains(first, "x") {
			shape, errMsg := parseShapeBlock(first, lines[1:])
			if errMsg != "" {
				result.Errors = append(result.Errors, errMsg)
				continue
			}
			result.Puzzle.Shapes = append(result.Puzzle.Shapes, shape)
			continue
		}

		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			w, h, counts, errMsg := parseRegionLine(line)
			if errMsg != "" {
				result.Errors = append(result.Errors, errMsg)
				continue
			}
			pending = append(pending, pendingRegion{w: w, h: h, counts: counts, label: line})
		}
	}

	// Regions can only be validated against the shape list once every
	// block has been read: shapes may be defined after the region lines.
	shapeCount := len(result.Puzzle.Shapes)
	for _, p := range pending {
		if len(p.counts) != shapeCount {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Region %q: got %d counts, want one per shape (%d)", p.label, len(p.counts), shapeCount))
			continue
		}
		result.Puzzle.Regions = append(result.Puzzle.Regions, model.NewRegionSpec(p.w, p.h, p.counts))
	}

	if shapeCount == 0 {
		result.Warnings = append(result.Warnings, "No shape definitions found")
	}
	return result
}

// parseShapeBlock reads a shape label line plus its grid body.
func parseShapeBlock(first string, body []string) (model.Shape, string) {
	label := strings.TrimSuffix(first, ":")
	var cells []model.Cell
	for r, line := range body {
		for c, ch := range line {
			if ch == '#' {
				cells = append(cells, model.Cell{Row: r, Col: c})
			}
		}
	}
	if len(cells) == 0 {
		return model.Shape{}, fmt.Sprintf("Shape %q: no occupied cells", label)
	}
	return model.NewShape(label, cells), ""
}

// parseRegionLine reads one "WxH: c0 c1 ..." line.
func parseRegionLine(line string) (w, h int, counts []int, errMsg string) {
	colon := strings.Index(line, ":")
	if colon < 0 {
		return 0, 0, nil, fmt.Sprintf("Region %q: missing ':'", line)
	}
	dims := strings.TrimSpace(line[:colon])
	parts := strings.Split(dims, "x")
	if len(parts) != 2 {
		return 0, 0, nil, fmt.Sprintf("Region %q: dimensions must be WxH", line)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, nil, fmt.Sprintf("Region %q: invalid width %q", line, parts[0])
	}
	h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, nil, fmt.Sprintf("Region %q: invalid height %q", line, parts[1])
	}
	if w <= 0 || h <= 0 {
		return 0, 0, nil, fmt.Sprintf("Region %q: dimensions must be positive", line)
	}

	for _, f := range strings.Fields(strings.TrimSpace(line[colon+1:])) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, nil, fmt.Sprintf("Region %q: invalid count %q", line, f)
		}
		if n < 0 {
			return 0, 0, nil, fmt.Sprintf("Region %q: negative count %d", line, n)
		}
		counts = append(counts, n)
	}
	return w, h, counts, ""
}
