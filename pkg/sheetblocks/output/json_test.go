package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/summary"
)

func sampleTables() models.Tables {
	return models.Tables{
		models.KindRegion: {
			Kind:    models.KindRegion,
			Columns: []string{"Region", "Pass", "Fail"},
			Rows: []models.Record{
				{"Region": models.Text("North"), "Pass": models.Number(10), "Fail": models.Empty()},
			},
			Area:  models.Area{R1: 1, C1: 1, R2: 2, C2: 3},
			Range: "A1:C2",
		},
	}
}

func TestTablesToJSON(t *testing.T) {
	data, err := TablesToJSON(sampleTables(), false)
	require.NoError(t, err)

	var decoded map[string]struct {
		Kind    string                   `json:"kind"`
		Columns []string                 `json:"columns"`
		Rows    []map[string]interface{} `json:"rows"`
		Range   string                   `json:"range"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	region, ok := decoded["region"]
	require.True(t, ok, "tables must be keyed by name: %s", data)
	assert.Equal(t, "region", region.Kind)
	assert.Equal(t, "A1:C2", region.Range)
	assert.Equal(t, "North", region.Rows[0]["Region"])
	assert.Equal(t, 10.0, region.Rows[0]["Pass"])
	assert.Nil(t, region.Rows[0]["Fail"])
}

func TestToJSONPretty(t *testing.T) {
	wb := &models.WorkbookData{
		BookName:   "book.xlsx",
		SheetOrder: []string{"Sheet1"},
		Sheets:     map[string]models.SheetData{"Sheet1": {}},
		Tables:     sampleTables(),
	}

	compact, err := ToJSON(wb, false)
	require.NoError(t, err)
	pretty, err := ToJSON(wb, true)
	require.NoError(t, err)

	assert.NotContains(t, string(compact), "\n")
	assert.True(t, strings.Contains(string(pretty), "\n  \"book_name\": \"book.xlsx\""))
}

func TestSheetAndDashboardToJSON(t *testing.T) {
	sheet := &models.SheetData{Tables: []models.Table{sampleTables()[models.KindRegion]}}
	data, err := SheetToJSON(sheet, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"region"`)

	d := summary.Build(sampleTables())
	data, err = DashboardToJSON(d, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pass":10`)
	assert.Contains(t, string(data), `"product table not found"`)
}
