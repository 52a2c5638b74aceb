// Package source loads raw sheet grids from CSV and Excel files.
package source

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable CSV or xlsx file.
var ErrInvalidFormat = errors.New("invalid format")

// Sheet is one named grid loaded from a file.
type Sheet struct {
	Name       string
	Grid       models.Grid
	PrintAreas []models.Area
	// Err is set when the sheet's cells could not be read. Grid is nil then,
	// and the other sheets of the workbook are still returned.
	Err error
}

// FileType is the input format chosen from a file's extension.
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// DetectFileType picks the input format from the file extension.
func DetectFileType(path string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FileTypeCSV, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FileTypeXLSX, nil
	}
	return "", fmt.Errorf("%w: unsupported file extension %q", ErrInvalidFormat, filepath.Ext(path))
}

// Load reads every sheet of a CSV or xlsx file in order. A CSV file yields a
// single sheet named after the file. When sheet is non-empty only that sheet
// is returned.
func Load(path string, sheet string) ([]Sheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	fileType, err := DetectFileType(path)
	if err != nil {
		return nil, err
	}

	switch fileType {
	case FileTypeCSV:
		grid, err := ReadCSVFile(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if sheet != "" && sheet != name {
			return nil, fmt.Errorf("sheet %q not found in %s", sheet, filepath.Base(path))
		}
		log.Printf("[source] %s read (%d rows)", filepath.Base(path), len(grid))
		return []Sheet{{Name: name, Grid: grid}}, nil
	default:
		return loadWorkbook(path, sheet)
	}
}

func loadWorkbook(path string, sheet string) ([]Sheet, error) {
	wb, err := OpenXLSX(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	names := wb.SheetNames()
	if sheet != "" {
		if !contains(names, sheet) {
			return nil, fmt.Errorf("sheet %q not found in %s", sheet, filepath.Base(path))
		}
		names = []string{sheet}
	}

	return readSheets(wb, names), nil
}

func readSheets(wb *Workbook, names []string) []Sheet {
	printAreas := wb.PrintAreas()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		s := Sheet{Name: name, PrintAreas: printAreas[name]}
		grid, err := wb.Grid(name)
		if err != nil {
			s.Err = fmt.Errorf("failed to read sheet %q: %w", name, err)
			log.Printf("[source] %v", s.Err)
		} else {
			s.Grid = grid
			log.Printf("[source] sheet %q read (%d rows)", name, len(grid))
		}
		sheets = append(sheets, s)
	}
	return sheets
}

// FindSheet returns the first sheet, in the given order, whose name contains
// any keyword, ignoring case.
func FindSheet(names []string, keywords ...string) (string, bool) {
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return name, true
			}
		}
	}
	return "", false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
