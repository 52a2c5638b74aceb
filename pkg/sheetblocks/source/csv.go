package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
)

// ReadCSVFile reads a CSV file into a grid.
func ReadCSVFile(path string) (models.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV reads delimited text into a grid. Records may have different
// lengths. Blank lines, which encoding/csv skips, are restored as empty rows
// so block separators survive.
func ReadCSV(r io.Reader) (models.Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid models.Grid
	nextLine := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read CSV: %v", ErrInvalidFormat, err)
		}

		if len(record) == 0 {
			continue
		}

		line, _ := reader.FieldPos(0)
		for ; nextLine < line; nextLine++ {
			grid = append(grid, models.Row{})
		}

		if len(grid) == 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		grid = append(grid, parser.ParseRow(record))

		last := len(record) - 1
		endLine, _ := reader.FieldPos(last)
		nextLine = endLine + strings.Count(record[last], "\n") + 1
	}

	return grid, nil
}
