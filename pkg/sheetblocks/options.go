// Package sheetblocks recovers named tables from spreadsheet grids that hold
// several logical tables in one sheet.
package sheetblocks

import (
	"fmt"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
)

// Strategy selects how tables are located in a grid.
type Strategy string

const (
	// StrategyBlockScan splits the grid on fully-empty rows.
	StrategyBlockScan Strategy = "block-scan"
	// StrategyMarkerSearch starts a table at every row whose first cell is a known marker.
	StrategyMarkerSearch Strategy = "marker-search"
)

// Options configures extraction behavior.
type Options struct {
	// Strategy specifies the locating strategy. Empty means block-scan.
	Strategy Strategy
	// NumericColumns names the columns coerced to numbers.
	// If nil, defaults to parser.DefaultNumericColumns.
	NumericColumns []string
	// Markers are used by marker-search. If empty, defaults to parser.DefaultMarkers.
	Markers []parser.Marker
	// Rules classifies tables by header. If nil, defaults to parser.DefaultRules.
	Rules parser.Rules
	// Range crops the grid to an Excel range such as "A3:F40" before extraction.
	Range string
	// UsePrintArea crops each workbook sheet to its first print area, if any.
	// Ignored when Range is set.
	UsePrintArea bool
	// Sheet restricts file extraction to one sheet.
	Sheet string
	// SheetSelectors pick, per kind, the sheet whose table is reported for a
	// workbook. Nil keeps the plain last-wins merge across sheets.
	SheetSelectors []SheetSelector
}

// SheetSelector chooses the sheet that supplies one kind of table.
// The first sheet whose name contains any keyword wins; otherwise the sheet
// at position Fallback is used, if the workbook has one.
type SheetSelector struct {
	Kind     models.TableKind
	Keywords []string
	Fallback int
}

// DefaultSheetSelectors reads regions from a "Regional ..." sheet (else the
// second sheet) and products from a "LOB ..." or "... Comparison" sheet
// (else the first sheet).
func DefaultSheetSelectors() []SheetSelector {
	return []SheetSelector{
		{Kind: models.KindRegion, Keywords: []string{"regional"}, Fallback: 1},
		{Kind: models.KindProduct, Keywords: []string{"lob", "comparison"}, Fallback: 0},
	}
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyBlockScan,
	}
}

// ParseStrategy maps a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyBlockScan:
		return StrategyBlockScan, nil
	case StrategyMarkerSearch:
		return StrategyMarkerSearch, nil
	}
	return "", fmt.Errorf("%w: %s (must be %s or %s)", ErrInvalidStrategy, name, StrategyBlockScan, StrategyMarkerSearch)
}

// Locator returns the parser strategy selected by the options.
func (o Options) Locator() (parser.Strategy, error) {
	s, err := ParseStrategy(string(o.Strategy))
	if err != nil {
		return nil, err
	}
	if s == StrategyMarkerSearch {
		return parser.MarkerSearch{Markers: o.markers()}, nil
	}
	return parser.BlockScan{}, nil
}

// Validate reports configuration errors without touching any data.
func (o Options) Validate() error {
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return err
	}
	if o.Range != "" {
		if _, err := parser.ParseRange(o.Range); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) markers() []parser.Marker {
	if len(o.Markers) == 0 {
		return parser.DefaultMarkers()
	}
	return o.Markers
}

func (o Options) rules() parser.Rules {
	if o.Rules == nil {
		return parser.DefaultRules()
	}
	return o.Rules
}

func (o Options) numericColumns() []string {
	if o.NumericColumns == nil {
		return parser.DefaultNumericColumns
	}
	return o.NumericColumns
}
