// Package summary computes dashboard metrics from extracted tables.
//
// Every function here tolerates missing tables and columns: absent data
// contributes zero and is reported through Dashboard.Warnings.
package summary

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
)

// Column name candidates, matched case-insensitively.
var (
	HeadcountColumns = []string{"Total Headcount", "Total_Headcount", "Headcount"}
	PassColumns      = []string{"Pass"}
	FailColumns      = []string{"Fail"}
	RegionColumns    = []string{"Region"}
)

// Cards holds the headline totals.
type Cards struct {
	Headcount float64 `json:"headcount"`
	Pass      float64 `json:"pass"`
	Fail      float64 `json:"fail"`
	// PassRate is Pass/Headcount as a percentage, 0 when Headcount is 0.
	PassRate float64 `json:"pass_rate"`
	// PassRateLabel is PassRate as shown on the card, e.g. "83.3%".
	PassRateLabel string `json:"pass_rate_label"`
}

// RegionRow is one line of the regional breakdown.
type RegionRow struct {
	Region    string  `json:"region"`
	Headcount float64 `json:"headcount"`
	Pass      float64 `json:"pass"`
	Fail      float64 `json:"fail"`
	PassRate  float64 `json:"pass_rate"`
	// PassRateLabel is PassRate formatted for display.
	PassRateLabel string `json:"pass_rate_label"`
}

// ProductRow aggregates pass and fail counts for one product line.
type ProductRow struct {
	Product string  `json:"product"`
	Pass    float64 `json:"pass"`
	Fail    float64 `json:"fail"`
}

// Dashboard is the complete set of metrics for one dataset. A new value is
// built for every dataset; nothing is shared between builds.
type Dashboard struct {
	Cards    Cards        `json:"cards"`
	Regions  []RegionRow  `json:"regions"`
	Products []ProductRow `json:"products"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Build computes every dashboard metric from the tables.
func Build(tables models.Tables) Dashboard {
	d := Dashboard{
		Cards:    CardTotals(tables),
		Regions:  Regions(tables),
		Products: Products(tables),
	}
	for _, kind := range []models.TableKind{models.KindRegion, models.KindProduct} {
		if _, ok := tables.Get(kind); !ok {
			d.Warnings = append(d.Warnings, fmt.Sprintf("%s table not found", kind))
		}
	}
	return d
}

// CardTotals sums headcount, pass and fail over the region table.
func CardTotals(tables models.Tables) Cards {
	t, ok := tables.Get(models.KindRegion)
	if !ok {
		return Cards{PassRateLabel: FormatRate(0)}
	}

	c := Cards{
		Headcount: sum(columnValues(t, HeadcountColumns)),
		Pass:      sum(columnValues(t, PassColumns)),
		Fail:      sum(columnValues(t, FailColumns)),
	}
	c.PassRate = Rate(c.Pass, c.Headcount)
	c.PassRateLabel = FormatRate(c.PassRate)
	return c
}

// Regions returns one row per data row of the region table.
func Regions(tables models.Tables) []RegionRow {
	t, ok := tables.Get(models.KindRegion)
	if !ok {
		return nil
	}

	regionCol := findColumn(t.Columns, RegionColumns)
	if regionCol == "" && len(t.Columns) > 0 {
		regionCol = t.Columns[0]
	}
	hcCol := findColumn(t.Columns, HeadcountColumns)
	passCol := findColumn(t.Columns, PassColumns)
	failCol := findColumn(t.Columns, FailColumns)

	rows := make([]RegionRow, 0, len(t.Rows))
	for _, rec := range t.Rows {
		r := RegionRow{
			Region:    rec[regionCol].String(),
			Headcount: rec[hcCol].Float(),
			Pass:      rec[passCol].Float(),
			Fail:      rec[failCol].Float(),
		}
		r.PassRate = Rate(r.Pass, r.Headcount)
		r.PassRateLabel = FormatRate(r.PassRate)
		rows = append(rows, r)
	}
	return rows
}

// Products aggregates the product table. Each row label has the form
// "Product (Status)"; the row's count is the sum of every other column.
// Products keep the order in which they first appear.
func Products(tables models.Tables) []ProductRow {
	t, ok := tables.Get(models.KindProduct)
	if !ok || len(t.Columns) == 0 {
		return nil
	}

	labelCol := t.Columns[0]
	index := make(map[string]int)
	var out []ProductRow

	for _, rec := range t.Rows {
		product, status := ParseLabel(rec[labelCol].String())

		values := make([]float64, 0, len(t.Columns)-1)
		for _, col := range t.Columns[1:] {
			values = append(values, rec[col].Float())
		}
		count := sum(values)

		i, seen := index[product]
		if !seen {
			i = len(out)
			index[product] = i
			out = append(out, ProductRow{Product: product})
		}
		switch status {
		case "pass":
			out[i].Pass += count
		case "fail":
			out[i].Fail += count
		}
	}
	return out
}

// ParseLabel splits "iPhone (Pass)" into ("iPhone", "pass"). Labels without
// a parenthesised status return status "unknown".
func ParseLabel(label string) (product, status string) {
	idx := strings.Index(label, "(")
	if idx < 0 {
		return strings.TrimSpace(label), "unknown"
	}
	product = strings.TrimSpace(label[:idx])
	rest := label[idx+1:]
	if end := strings.Index(rest, "("); end >= 0 {
		rest = rest[:end]
	}
	status = strings.ToLower(strings.TrimSpace(strings.Replace(rest, ")", "", 1)))
	return product, status
}

// Rate returns part/whole as a percentage, or 0 when whole is not positive.
func Rate(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// FormatRate renders a rate with one decimal place, e.g. "83.3%".
func FormatRate(rate float64) string {
	if rate == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", rate)
}

func columnValues(t models.Table, candidates []string) []float64 {
	col := findColumn(t.Columns, candidates)
	if col == "" {
		return nil
	}
	values := make([]float64, 0, len(t.Rows))
	for _, c := range t.Column(col) {
		values = append(values, c.Float())
	}
	return values
}

func findColumn(columns []string, candidates []string) string {
	for _, want := range candidates {
		for _, col := range columns {
			if strings.EqualFold(strings.TrimSpace(col), want) {
				return col
			}
		}
	}
	return ""
}

// sum treats empty input as zero.
func sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total, err := stats.Sum(stats.Float64Data(values))
	if err != nil {
		return 0
	}
	return total
}
