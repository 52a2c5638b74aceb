package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/xuri/excelize/v2"
)

// DefaultNumericColumns lists the column names coerced to numbers by convention.
var DefaultNumericColumns = []string{"Pass", "Fail", "Total Headcount", "Total_Headcount", "Headcount"}

// TableBuilder turns located blocks into typed tables.
type TableBuilder struct {
	Rules Rules
	// NumericColumns is matched case-insensitively after trimming.
	NumericColumns []string
	// RowOffset and ColOffset give the 0-based position of the grid within
	// its sheet, so table areas use sheet coordinates.
	RowOffset int
	ColOffset int
}

// Build converts a block into a table. The second result is false when the
// block has no rows or its header row is fully empty.
//
// Columns are taken from the header up to its last non-empty cell. Data rows
// shorter than the header are padded with empty cells and longer rows are
// truncated, so every record has exactly one entry per column.
func (b TableBuilder) Build(block models.Block) (models.Table, bool) {
	if len(block.Rows) == 0 || block.Rows[0].IsEmpty() {
		return models.Table{}, false
	}

	header := block.Rows[0]
	width := header.Width()

	kind := block.Kind
	if kind == models.KindUnknown {
		kind = b.Rules.Classify(header.At(0).String())
	}

	columns := b.headerNames(header, width)
	numeric := b.numericMask(columns, kind)

	records := make([]models.Record, 0, len(block.Rows)-1)
	for _, row := range block.Rows[1:] {
		rec := make(models.Record, width)
		for i, name := range columns {
			c := row.At(i)
			switch {
			case numeric[i]:
				c = CoerceNumber(c)
			case c.IsEmpty():
				c = models.Empty()
			}
			rec[name] = c
		}
		records = append(records, rec)
	}

	area := b.blockArea(block)
	return models.Table{
		Kind:    kind,
		Columns: columns,
		Rows:    records,
		Area:    area,
		Range:   FormatRange(area),
	}, true
}

// headerNames trims header cells, names blank cells after their column letter
// and suffixes duplicates with ".N" in order of appearance.
func (b TableBuilder) headerNames(header models.Row, width int) []string {
	names := make([]string, width)
	seen := make(map[string]bool, width)
	counts := make(map[string]int, width)

	for i := 0; i < width; i++ {
		name := strings.TrimSpace(header.At(i).String())
		if name == "" {
			if letter, err := excelize.ColumnNumberToName(b.ColOffset + i + 1); err == nil {
				name = letter
			} else {
				name = fmt.Sprintf("Column%d", i+1)
			}
		}
		base := name
		for seen[name] {
			counts[base]++
			name = fmt.Sprintf("%s.%d", base, counts[base])
		}
		seen[name] = true
		names[i] = name
	}

	return names
}

func (b TableBuilder) numericMask(columns []string, kind models.TableKind) []bool {
	wanted := make(map[string]bool, len(b.NumericColumns))
	for _, n := range b.NumericColumns {
		wanted[strings.ToLower(strings.TrimSpace(n))] = true
	}
	matrix := b.Rules.Matrix(kind)

	mask := make([]bool, len(columns))
	for i, name := range columns {
		mask[i] = wanted[strings.ToLower(name)] || (matrix && i > 0)
	}
	return mask
}

// blockArea finds the bounding box of the block in sheet coordinates.
func (b TableBuilder) blockArea(block models.Block) models.Area {
	maxCol := 0
	for _, row := range block.Rows {
		if w := row.Width(); w > maxCol {
			maxCol = w
		}
	}
	if maxCol == 0 {
		maxCol = 1
	}

	return models.Area{
		R1: b.RowOffset + block.Start + 1,
		C1: b.ColOffset + 1,
		R2: b.RowOffset + block.End(),
		C2: b.ColOffset + maxCol,
	}
}
