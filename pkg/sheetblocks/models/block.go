package models

// Block is a contiguous run of non-empty rows located in a grid.
type Block struct {
	// Start is the 0-based index of the block's first row in the grid.
	Start int
	// Rows holds the block rows; row 0 is the header.
	Rows []Row
	// Kind is preassigned by marker search. KindUnknown means "classify from the header".
	Kind TableKind
}

// End returns the 0-based index one past the block's last row.
func (b Block) End() int { return b.Start + len(b.Rows) }
