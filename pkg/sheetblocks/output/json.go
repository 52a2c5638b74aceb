// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/summary"
)

// ToJSON serializes a workbook extraction result.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// TablesToJSON serializes a kind-keyed table set as an object keyed by
// table name ("region", "product", ...).
func TablesToJSON(tables models.Tables, pretty bool) ([]byte, error) {
	return marshal(tables, pretty)
}

// DashboardToJSON serializes computed dashboard metrics.
func DashboardToJSON(d summary.Dashboard, pretty bool) ([]byte, error) {
	return marshal(d, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SheetToJSON serializes the tables of a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}
