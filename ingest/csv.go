package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ldlens-org/ldlens/report"
)

// ============================================================================
// CSV INGESTION — Raw bytes → report.Dataset
// ============================================================================
// The reader owns acquisition (file, HTTP, upload); this package only
// shapes rows. Cells are coerced at the boundary: numeric text becomes a
// number cell, blank becomes empty, everything else stays text. Date-like
// text stays text — the date parser owns that interpretation.
// ============================================================================

// ReadCSV parses CSV into a Dataset. An empty or headerless payload is a
// shape error; malformed data rows are skipped.
func ReadCSV(r io.Reader) (report.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return report.Dataset{}, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "") {
		return report.Dataset{}, fmt.Errorf("CSV has no columns")
	}

	ds := report.Dataset{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		ds.Rows = append(ds.Rows, shapeRow(headers, record))
	}
	return ds, nil
}

// shapeRow maps one record onto the header sequence. Missing trailing
// cells default to empty.
func shapeRow(headers []string, record []string) report.Row {
	row := make(report.Row, len(headers))
	for i, header := range headers {
		if i >= len(record) {
			row[header] = report.Cell{}
			continue
		}
		row[header] = coerce(record[i])
	}
	return row
}

// coerce applies the ingestion-boundary typing rules.
func coerce(raw string) report.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return report.Cell{}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return report.NumberCell(f)
	}
	return report.TextCell(trimmed)
}
