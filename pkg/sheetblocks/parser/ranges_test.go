package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Area
	}{
		{"A1:D10", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"$B$2:$C$3", models.Area{R1: 2, C1: 2, R2: 3, C2: 3}},
		{"'Sheet 1'!$A$1:$B$2", models.Area{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"C5", models.Area{R1: 5, C1: 3, R2: 5, C2: 3}},
		{"D10:A1", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
	}

	for _, tt := range tests {
		area, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if area != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, area, tt.expected)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "A1:B2:C3", "1A:B2", "nonsense"} {
		if _, err := ParseRange(input); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("ParseRange(%q) error = %v, expected ErrInvalidRange", input, err)
		}
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange(models.Area{R1: 1, C1: 1, R2: 4, C2: 28}); got != "A1:AB4" {
		t.Errorf("FormatRange = %q", got)
	}
	if got := FormatRange(models.Area{}); got != "" {
		t.Errorf("FormatRange(zero) = %q, expected empty", got)
	}
}

func TestCropGrid(t *testing.T) {
	grid := models.TextGrid([][]string{
		{"t"},
		{"x", "Region", "Pass"},
		{"x", "North", "1", "y"},
	})

	got := CropGrid(grid, models.Area{R1: 2, C1: 2, R2: 9, C2: 3})
	want := models.TextGrid([][]string{
		{"Region", "Pass"},
		{"North", "1"},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CropGrid mismatch (-want +got):\n%s", diff)
	}
}
