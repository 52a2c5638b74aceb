package parser

import (
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
)

// Strategy locates candidate table blocks in a grid.
type Strategy interface {
	Locate(grid models.Grid) []models.Block
}

// BlockScan splits a grid into maximal runs of non-empty rows. Tables must be
// separated by at least one fully-empty row.
type BlockScan struct{}

// Locate scans the grid once, top to bottom.
func (BlockScan) Locate(grid models.Grid) []models.Block {
	var blocks []models.Block
	var current []models.Row
	start := 0

	for i, row := range grid {
		if row.IsEmpty() {
			if len(current) > 0 {
				blocks = append(blocks, models.Block{Start: start, Rows: current})
			}
			current = nil
			continue
		}
		if len(current) == 0 {
			start = i
		}
		current = append(current, row)
	}
	if len(current) > 0 {
		blocks = append(blocks, models.Block{Start: start, Rows: current})
	}

	return blocks
}

// Marker is a literal first-column value that starts a table of a known kind.
type Marker struct {
	Value string
	Kind  models.TableKind
}

// DefaultMarkers returns the markers used when none are configured.
func DefaultMarkers() []Marker {
	return []Marker{
		{Value: "Region", Kind: models.KindRegion},
		{Value: "Result", Kind: models.KindProduct},
		{Value: "Outlet", Kind: models.KindOutlet},
	}
}

// MarkerSearch finds tables by scanning every row for a known marker in the
// first column. Each match yields the rows from the marker row up to the next
// fully-empty row or the grid end, regardless of what surrounds it.
type MarkerSearch struct {
	Markers []Marker
}

// Locate returns one block per marker row. Blocks may overlap when a marker
// row sits inside the run of an earlier marker.
func (m MarkerSearch) Locate(grid models.Grid) []models.Block {
	markers := m.Markers
	if len(markers) == 0 {
		markers = DefaultMarkers()
	}

	var blocks []models.Block
	for i, row := range grid {
		kind, ok := matchMarker(markers, row.At(0))
		if !ok {
			continue
		}
		end := i + 1
		for end < len(grid) && !grid[end].IsEmpty() {
			end++
		}
		blocks = append(blocks, models.Block{Start: i, Rows: grid[i:end], Kind: kind})
	}

	return blocks
}

func matchMarker(markers []Marker, c models.Cell) (models.TableKind, bool) {
	if c.IsEmpty() {
		return models.KindUnknown, false
	}
	v := strings.TrimSpace(c.String())
	for _, mk := range markers {
		if v == mk.Value {
			return mk.Kind, true
		}
	}
	return models.KindUnknown, false
}
