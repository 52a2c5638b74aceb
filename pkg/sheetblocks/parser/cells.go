// Package parser recovers typed tables from raw sheet grids.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
)

// ParseCell converts a raw string value into a grid cell.
// Blank strings become empty cells. A number is only produced when it
// renders back to the same text, so identifiers such as "007" or headers
// such as "1.50" stay text; expected-numeric columns are coerced later.
// Anything else is kept as trimmed text.
func ParseCell(s string) models.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Empty()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		if n := models.Number(f); n.String() == s {
			return n
		}
	}
	return models.Text(s)
}

// ParseRow converts a row of raw strings into grid cells.
func ParseRow(values []string) models.Row {
	row := make(models.Row, len(values))
	for i, v := range values {
		row[i] = ParseCell(v)
	}
	return row
}

// CoerceNumber applies lenient numeric coercion to one cell. Empty cells stay
// empty; text that does not parse as a finite number becomes 0.
func CoerceNumber(c models.Cell) models.Cell {
	switch c.Kind {
	case models.CellNumber:
		if !isFinite(c.Number) {
			return models.Number(0)
		}
		return c
	case models.CellText:
		if c.IsEmpty() {
			return models.Empty()
		}
		return models.Number(parseLenient(c.Text))
	}
	return models.Empty()
}

// parseLenient parses s as a number, allowing thousands separators.
// Returns 0 when s is not a finite number.
func parseLenient(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0
	}
	return f
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
