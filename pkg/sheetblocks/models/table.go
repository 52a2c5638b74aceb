package models

import "strings"

// TableKind is the semantic classification of a recovered table.
type TableKind int

const (
	// KindUnknown is a table whose header matches no classification rule.
	KindUnknown TableKind = iota
	// KindProduct is a result-by-region matrix, e.g. "iPhone (Pass)" rows.
	KindProduct
	// KindRegion holds per-region headcount, pass and fail counts.
	KindRegion
	// KindOutlet holds per-outlet counts.
	KindOutlet
)

var kindNames = map[TableKind]string{
	KindUnknown: "unknown",
	KindProduct: "product",
	KindRegion:  "region",
	KindOutlet:  "outlet",
}

// Kinds lists every table kind in declaration order.
func Kinds() []TableKind {
	return []TableKind{KindUnknown, KindProduct, KindRegion, KindOutlet}
}

// String returns the kind's name, e.g. "region". Out of range values
// render as "unknown".
func (k TableKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// MarshalText encodes the kind by name so it can key JSON objects.
func (k TableKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseTableKind maps a kind name back to its TableKind.
func ParseTableKind(name string) (TableKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// Record maps column name to cell value for one data row.
type Record map[string]Cell

// Table is a named, header-typed view recovered from one block.
type Table struct {
	// Kind is assigned once at extraction time.
	Kind TableKind `json:"kind"`
	// Columns holds the header names in order.
	Columns []string `json:"columns"`
	// Rows holds data rows; each has exactly one entry per column.
	Rows []Record `json:"rows"`
	// Area is the block's location in the source sheet.
	Area Area `json:"area"`
	// Range is Area in Excel notation, e.g. "A1:C4".
	Range string `json:"range"`
}

// Name returns the table's classified name.
func (t Table) Name() string { return t.Kind.String() }

// Column returns the values of one column in row order.
func (t Table) Column(name string) []Cell {
	out := make([]Cell, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r[name])
	}
	return out
}

// Tables maps classified kind to table. A missing key means the table type
// was not present in the input.
type Tables map[TableKind]Table

// Get returns the table of the given kind.
func (ts Tables) Get(kind TableKind) (Table, bool) {
	t, ok := ts[kind]
	return t, ok
}

// Lookup returns the table with the given classified name, e.g. "region".
func (ts Tables) Lookup(name string) (Table, bool) {
	kind, ok := ParseTableKind(name)
	if !ok {
		return Table{}, false
	}
	return ts.Get(kind)
}
