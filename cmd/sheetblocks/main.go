// Package main provides the CLI entry point for sheetblocks.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/models"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/output"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/parser"
	"github.com/ukaji3/sheetblocks/pkg/sheetblocks/summary"
)

var (
	outputPath     string
	pretty         bool
	strategy       string
	numericColumns []string
	markers        []string
	rangeRef       string
	usePrintArea   bool
	sheetName      string
	sheetsDir      string
	summaryOnly    bool
	selectSheets   bool
)

func main() {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetblocks [input.csv|input.xlsx]",
		Short: "Extract named tables from multi-table spreadsheets",
		Long: `sheetblocks splits sheets that hold several tables (separated by blank
rows or introduced by marker cells) into named tables and outputs JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&strategy, "strategy", envOr("SHEETBLOCKS_STRATEGY", string(sheetblocks.StrategyBlockScan)), "Table locating strategy: block-scan, marker-search")
	rootCmd.Flags().StringSliceVar(&numericColumns, "numeric", envList("SHEETBLOCKS_NUMERIC"), "Columns coerced to numbers (default: Pass, Fail, Total Headcount)")
	rootCmd.Flags().StringArrayVar(&markers, "marker", nil, "Marker for marker-search as kind=Value, e.g. region=Region")
	rootCmd.Flags().StringVar(&rangeRef, "range", "", "Restrict extraction to a cell range, e.g. A1:F40")
	rootCmd.Flags().BoolVar(&usePrintArea, "print-area", false, "Restrict each sheet to its first print area")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Only extract this sheet")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().BoolVar(&summaryOnly, "summary", false, "Output dashboard metrics instead of tables")
	rootCmd.Flags().BoolVar(&selectSheets, "select-sheets", false, `Take regions from a "Regional" sheet and products from a "LOB"/"Comparison" sheet`)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	wb, err := sheetblocks.ExtractFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var jsonData []byte
	if summaryOnly {
		dash := summary.Build(wb.Tables)
		for _, w := range dash.Warnings {
			log.Printf("[sheetblocks] warning: %s", w)
		}
		jsonData, err = output.DashboardToJSON(dash, pretty)
	} else {
		jsonData, err = output.ToJSON(wb, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func buildOptions() (sheetblocks.Options, error) {
	s, err := sheetblocks.ParseStrategy(strategy)
	if err != nil {
		return sheetblocks.Options{}, err
	}

	opts := sheetblocks.DefaultOptions()
	opts.Strategy = s
	opts.Range = rangeRef
	opts.UsePrintArea = usePrintArea
	opts.Sheet = sheetName
	if selectSheets {
		opts.SheetSelectors = sheetblocks.DefaultSheetSelectors()
	}
	if len(numericColumns) > 0 {
		opts.NumericColumns = numericColumns
	}

	opts.Markers, err = parseMarkers(markers)
	if err != nil {
		return sheetblocks.Options{}, err
	}

	return opts, opts.Validate()
}

// parseMarkers parses kind=Value pairs.
func parseMarkers(specs []string) ([]parser.Marker, error) {
	var out []parser.Marker
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("invalid marker: %s (must be kind=Value)", spec)
		}
		kind, ok := models.ParseTableKind(name)
		if !ok {
			return nil, fmt.Errorf("invalid marker kind: %s", name)
		}
		out = append(out, parser.Marker{Value: strings.TrimSpace(value), Kind: kind})
	}
	return out, nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, name := range wb.SheetOrder {
		sheet := wb.Sheets[name]
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envList(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
