package sheetblocks

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/source"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = source.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a readable CSV or xlsx file.
var ErrInvalidFormat = source.ErrInvalidFormat

// ErrInvalidRange indicates Options.Range could not be parsed.
var ErrInvalidRange = parser.ErrInvalidRange

// ErrInvalidStrategy indicates Options.Strategy names no known strategy.
var ErrInvalidStrategy = errors.New("invalid strategy")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "grid", "range", "tables"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
