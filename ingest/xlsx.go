package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ldlens-org/ldlens/report"
)

// ============================================================================
// WORKBOOK INGESTION — First sheet of an XLSX export → report.Dataset
// ============================================================================

// ReadWorkbook parses the first sheet of an XLSX workbook into a Dataset.
// Cell coercion matches ReadCSV; excelize renders each cell to its display
// string, so date cells arrive as text for the date parser to interpret.
func ReadWorkbook(r io.Reader) (report.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return report.Dataset{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return report.Dataset{}, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	ds := report.Dataset{Headers: headers}
	for _, record := range rows[1:] {
		ds.Rows = append(ds.Rows, shapeRow(headers, record))
	}
	return ds, nil
}

// ============================================================================
// FILE DISPATCH
// ============================================================================

// ReadFile loads a Dataset from path, dispatching on extension:
// .xlsx/.xlsm → workbook, anything else → CSV.
func ReadFile(path string) (report.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadWorkbook(f)
	default:
		return ReadCSV(f)
	}
}
