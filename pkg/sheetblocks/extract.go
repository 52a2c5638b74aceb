package sheetblocks

import (
	"log"
	"path/filepath"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/source"
)

// Extract recovers tables from a grid and keys them by classified kind.
// When two tables share a kind the later one wins; use ExtractAll to see
// every table.
//
// Malformed data never causes an error: bad numeric cells become 0, ragged
// rows are padded or truncated and empty blocks are dropped. The error is
// only returned for invalid options.
func Extract(grid models.Grid, opts Options) (models.Tables, error) {
	all, err := ExtractAll(grid, opts)
	if err != nil {
		return nil, err
	}
	return Fold(all), nil
}

// ExtractAll recovers every table from a grid in the order it was located.
func ExtractAll(grid models.Grid, opts Options) ([]models.Table, error) {
	locator, err := opts.Locator()
	if err != nil {
		return nil, err
	}

	builder := parser.TableBuilder{
		Rules:          opts.rules(),
		NumericColumns: opts.numericColumns(),
	}

	if opts.Range != "" {
		area, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		grid = parser.CropGrid(grid, area)
		builder.RowOffset = area.R1 - 1
		builder.ColOffset = area.C1 - 1
	}

	return buildTables(grid, locator, builder), nil
}

func buildTables(grid models.Grid, locator parser.Strategy, builder parser.TableBuilder) []models.Table {
	var tables []models.Table
	for _, block := range locator.Locate(grid) {
		if t, ok := builder.Build(block); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Fold keys tables by kind, letting later tables overwrite earlier ones.
func Fold(tables []models.Table) models.Tables {
	out := make(models.Tables, len(tables))
	for _, t := range tables {
		out[t.Kind] = t
	}
	return out
}

// ExtractFile extracts tables from every sheet of a CSV or xlsx file.
// Sheets are merged in workbook order into WorkbookData.Tables, then any
// SheetSelectors override the merged table of their kind. A sheet that
// cannot be read is logged and kept with no tables.
func ExtractFile(path string, opts Options) (*models.WorkbookData, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sheets, err := source.Load(path, opts.Sheet)
	if err != nil {
		return nil, err
	}

	return extractSheets(filepath.Base(path), sheets, opts)
}

func extractSheets(bookName string, sheets []source.Sheet, opts Options) (*models.WorkbookData, error) {
	wb := &models.WorkbookData{
		BookName: bookName,
		Sheets:   make(map[string]models.SheetData, len(sheets)),
	}

	var merged []models.Table
	for _, sheet := range sheets {
		wb.SheetOrder = append(wb.SheetOrder, sheet.Name)
		if sheet.Err != nil {
			log.Printf("[sheetblocks] %v", NewExtractionError(sheet.Name, "grid", sheet.Err))
			wb.Sheets[sheet.Name] = models.SheetData{
				PrintAreas: sheet.PrintAreas,
				Error:      sheet.Err.Error(),
			}
			continue
		}

		sheetOpts := opts
		if sheetOpts.Range == "" && sheetOpts.UsePrintArea && len(sheet.PrintAreas) > 0 {
			sheetOpts.Range = parser.FormatRange(sheet.PrintAreas[0])
		}

		tables, err := ExtractAll(sheet.Grid, sheetOpts)
		if err != nil {
			return nil, NewExtractionError(sheet.Name, "tables", err)
		}

		wb.Sheets[sheet.Name] = models.SheetData{
			Tables:     tables,
			PrintAreas: sheet.PrintAreas,
		}
		merged = append(merged, tables...)
	}

	wb.Tables = Fold(merged)
	selectTables(wb, opts.SheetSelectors)
	log.Printf("[sheetblocks] %s: %d sheets, %d tables", wb.BookName, len(sheets), len(merged))

	return wb, nil
}

// selectTables replaces merged tables with the last table of each selector's
// kind from the sheet it picks. Selectors whose sheet has no such table leave
// the merged table in place.
func selectTables(wb *models.WorkbookData, selectors []SheetSelector) {
	for _, sel := range selectors {
		name, ok := source.FindSheet(wb.SheetOrder, sel.Keywords...)
		if !ok {
			if sel.Fallback < 0 || sel.Fallback >= len(wb.SheetOrder) {
				continue
			}
			name = wb.SheetOrder[sel.Fallback]
		}

		t, ok := Fold(wb.Sheets[name].Tables).Get(sel.Kind)
		if !ok {
			continue
		}
		wb.Tables[sel.Kind] = t
		if wb.SelectedSheets == nil {
			wb.SelectedSheets = make(map[models.TableKind]string)
		}
		wb.SelectedSheets[sel.Kind] = name
	}
}
