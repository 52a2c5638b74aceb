// Package models defines data structures for multi-table sheet extraction.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind identifies which value a Cell holds.
type CellKind int

const (
	// CellEmpty is an absent cell.
	CellEmpty CellKind = iota
	// CellText holds a string value.
	CellText
	// CellNumber holds a float64 value.
	CellNumber
)

// Cell is a single raw grid value: absent, text or numeric.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Empty returns an absent cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// IsEmpty reports whether the cell is absent or holds only whitespace.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	}
	return false
}

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.Kind == CellNumber }

// Float returns the numeric value, or 0 for any non-numeric cell.
func (c Cell) Float() float64 {
	if c.Kind == CellNumber {
		return c.Number
	}
	return 0
}

// String renders the cell as text. Numbers drop trailing zeros.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// MarshalJSON encodes empty cells as null, text as a string and numbers as numbers.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellText:
		return json.Marshal(c.Text)
	case CellNumber:
		return json.Marshal(c.Number)
	}
	return []byte("null"), nil
}

// Row is an ordered sequence of cells. Rows in a grid may differ in length.
type Row []Cell

// At returns the cell at index i, or an empty cell past the end of the row.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Empty()
	}
	return r[i]
}

// IsEmpty reports whether every cell in the row is empty.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Width returns the 1-based index of the last non-empty cell, or 0.
func (r Row) Width() int {
	for i := len(r) - 1; i >= 0; i-- {
		if !r[i].IsEmpty() {
			return i + 1
		}
	}
	return 0
}

// Grid is raw 2-D cell data before table structure is recovered.
type Grid []Row

// TextGrid builds a grid of text cells, mapping "" to empty cells.
// It is mostly useful for fixtures.
func TextGrid(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		r := make(Row, len(row))
		for j, s := range row {
			if s == "" {
				r[j] = Empty()
			} else {
				r[j] = Text(s)
			}
		}
		g[i] = r
	}
	return g
}
