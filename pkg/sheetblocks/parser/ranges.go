package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a cell range reference could not be parsed.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses a range string like $A$1:$D$10 or a single cell like B2.
// An optional sheet prefix ('Sheet 1'!A1:B2) is ignored.
func ParseRange(ref string) (models.Area, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// FormatRange renders an area in Excel notation, e.g. "A1:C4".
func FormatRange(a models.Area) string {
	start, err := excelize.CoordinatesToCellName(a.C1, a.R1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(a.C2, a.R2)
	if err != nil {
		return ""
	}
	return start + ":" + end
}

// CropGrid returns a new grid holding only the cells inside the area.
// Rows and columns past the grid's edge are omitted rather than padded.
func CropGrid(grid models.Grid, a models.Area) models.Grid {
	var out models.Grid
	for r := a.R1; r <= a.R2 && r <= len(grid); r++ {
		src := grid[r-1]
		var row models.Row
		for c := a.C1; c <= a.C2 && c <= len(src); c++ {
			row = append(row, src[c-1])
		}
		out = append(out, row)
	}
	return out
}
