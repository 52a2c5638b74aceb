package source

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook wraps an open xlsx file.
type Workbook struct {
	f *excelize.File
}

// OpenXLSX opens an xlsx workbook for reading.
func OpenXLSX(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid reads a sheet's formatted cell values into a grid.
func (w *Workbook) Grid(sheet string) (models.Grid, error) {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for i, row := range rows {
		grid[i] = parser.ParseRow(row)
	}
	return grid, nil
}

// PrintAreas returns a map of sheet name to list of print areas.
func (w *Workbook) PrintAreas() map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range w.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10,SheetName!$F$1:$G$4
func parsePrintAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}

		if area, err := parser.ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}
