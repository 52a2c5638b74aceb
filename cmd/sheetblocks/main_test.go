package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
	"github.com/xuri/excelize/v2"
)

const fixture = "Quarterly Performance\nRegion,Total Headcount,Pass,Fail\nNorth,12,10,2\n\nResult,Central\niPhone (Pass),5\n"

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ssc.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunMarkerSearchSummary(t *testing.T) {
	path := writeFixture(t)

	out, err := execute(t, path, "--strategy", "marker-search", "--summary")
	require.NoError(t, err)

	var d struct {
		Cards struct {
			Headcount float64 `json:"headcount"`
			Pass      float64 `json:"pass"`
		} `json:"cards"`
		Products []struct {
			Product string  `json:"product"`
			Pass    float64 `json:"pass"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 12.0, d.Cards.Headcount)
	assert.Equal(t, 10.0, d.Cards.Pass)
	require.Len(t, d.Products, 1)
	assert.Equal(t, "iPhone", d.Products[0].Product)
	assert.Equal(t, 5.0, d.Products[0].Pass)
}

func TestRunSelectSheetsSummary(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Regional Comparison"))
	require.NoError(t, f.SetSheetRow("Regional Comparison", "A1", &[]interface{}{"Region", "Total Headcount", "Pass"}))
	require.NoError(t, f.SetSheetRow("Regional Comparison", "A2", &[]interface{}{"North", 12, 10}))
	_, err := f.NewSheet("Archive")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Archive", "A1", &[]interface{}{"Region", "Total Headcount", "Pass"}))
	require.NoError(t, f.SetSheetRow("Archive", "A2", &[]interface{}{"Old", 4, 1}))
	path := filepath.Join(t.TempDir(), "ssc.xlsx")
	require.NoError(t, f.SaveAs(path))

	var d struct {
		Cards struct {
			Headcount     float64 `json:"headcount"`
			PassRateLabel string  `json:"pass_rate_label"`
		} `json:"cards"`
	}

	out, err := execute(t, path, "--summary")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 4.0, d.Cards.Headcount)
	assert.Equal(t, "25.0%", d.Cards.PassRateLabel)

	out, err = execute(t, path, "--summary", "--select-sheets")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 12.0, d.Cards.Headcount)
	assert.Equal(t, "83.3%", d.Cards.PassRateLabel)
}

func TestRunWritesOutputAndSheetFiles(t *testing.T) {
	path := writeFixture(t)
	dir := t.TempDir()
	outFile := filepath.Join(dir, "out.json")
	sheets := filepath.Join(dir, "sheets")

	_, err := execute(t, path, "-o", outFile, "--sheets-dir", sheets, "--pretty")
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var wb struct {
		BookName string                     `json:"book_name"`
		Tables   map[string]json.RawMessage `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(data, &wb))
	assert.Equal(t, "ssc.csv", wb.BookName)
	assert.Contains(t, wb.Tables, "unknown")
	assert.Contains(t, wb.Tables, "product")
	assert.NotContains(t, wb.Tables, "region")

	_, err = os.Stat(filepath.Join(sheets, "ssc.json"))
	assert.NoError(t, err)
}

func TestRunRejectsBadFlags(t *testing.T) {
	path := writeFixture(t)

	_, err := execute(t, path, "--strategy", "guess")
	assert.Error(t, err)

	_, err = execute(t, path, "--marker", "region")
	assert.Error(t, err)

	_, err = execute(t, path, "--range", "zz")
	assert.Error(t, err)

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestParseMarkers(t *testing.T) {
	markers, err := parseMarkers([]string{"region=Region", " outlet = Store "})
	require.NoError(t, err)
	assert.Equal(t, []parser.Marker{
		{Value: "Region", Kind: models.KindRegion},
		{Value: "Store", Kind: models.KindOutlet},
	}, markers)

	for _, bad := range []string{"region", "region=", "chart=Chart"} {
		_, err := parseMarkers([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("SHEETBLOCKS_STRATEGY", "marker-search")
	t.Setenv("SHEETBLOCKS_NUMERIC", "Pass, Fail,,Score")

	assert.Equal(t, "marker-search", envOr("SHEETBLOCKS_STRATEGY", "block-scan"))
	assert.Equal(t, "x", envOr("SHEETBLOCKS_UNSET", "x"))
	assert.Equal(t, []string{"Pass", "Fail", "Score"}, envList("SHEETBLOCKS_NUMERIC"))
	assert.Nil(t, envList("SHEETBLOCKS_UNSET"))

	cmd := newRootCmd()
	flag := cmd.Flags().Lookup("strategy")
	require.NotNil(t, flag)
	assert.Equal(t, "marker-search", flag.DefValue)
}
