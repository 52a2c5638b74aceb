package models

// SheetData represents the tables recovered from a single sheet.
type SheetData struct {
	// Tables contains every recovered table in sheet order, before last-wins folding.
	Tables []Table `json:"tables,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []Area `json:"print_areas,omitempty"`
	// Error is set when the sheet could not be read; it then has no tables.
	Error string `json:"error,omitempty"`
}

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetOrder lists sheet names in workbook order.
	SheetOrder []string `json:"sheet_order"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
	// Tables merges all sheets in workbook order; later tables of a kind win.
	Tables Tables `json:"tables"`
	// SelectedSheets records, per kind, the sheet chosen by name that
	// supplied Tables[kind] instead of the last-wins merge.
	SelectedSheets map[TableKind]string `json:"selected_sheets,omitempty"`
}
