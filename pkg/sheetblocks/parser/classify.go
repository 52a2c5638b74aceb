package parser

import (
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
)

// Rule maps a header keyword to a table kind.
type Rule struct {
	// Keyword is matched as a lowercase substring of the header's first cell.
	Keyword string
	// Kind is the classification assigned on match.
	Kind models.TableKind
	// Matrix marks kinds whose columns after the first are all numeric.
	Matrix bool
}

// Rules is an ordered rule table; the first matching rule wins.
type Rules []Rule

// DefaultRules returns the built-in classification rules in priority order.
func DefaultRules() Rules {
	return Rules{
		{Keyword: "result", Kind: models.KindProduct, Matrix: true},
		{Keyword: "region", Kind: models.KindRegion},
		{Keyword: "outlet", Kind: models.KindOutlet},
	}
}

// Classify returns the kind of the first rule whose keyword occurs in text,
// ignoring case. Unmatched text classifies as KindUnknown.
func (rs Rules) Classify(text string) models.TableKind {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return models.KindUnknown
	}
	for _, r := range rs {
		if r.Keyword != "" && strings.Contains(text, strings.ToLower(r.Keyword)) {
			return r.Kind
		}
	}
	return models.KindUnknown
}

// Matrix reports whether any rule marks kind as a matrix table.
func (rs Rules) Matrix(kind models.TableKind) bool {
	for _, r := range rs {
		if r.Kind == kind && r.Matrix {
			return true
		}
	}
	return false
}
