package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// WORKBOOK INGESTION TESTS
// ============================================================================

func workbookBytes(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook(t *testing.T) {
	buf := workbookBytes(t, [][]interface{}{
		{"Name", "Office", "CPD Hours", "Completion Date"},
		{"Alice Nguyen", "Brisbane", 2.5, "01/03/2025"},
		{"Bob Santos", "Manila", 1, "15/03/2025"},
	})

	ds, err := ReadWorkbook(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Office", "CPD Hours", "Completion Date"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "Alice Nguyen", ds.Rows[0].Get("Name").String())
	assert.Equal(t, 2.5, ds.Rows[0].Get("CPD Hours").Float())
	assert.Equal(t, "Brisbane", ds.Rows[0].Get("Office").String())
}

func TestReadWorkbookEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ReadWorkbook(buf)
	assert.Error(t, err)
}

func TestReadWorkbookNotAWorkbook(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewReader([]byte("Name,Office\nAlice,Brisbane\n")))
	assert.Error(t, err)
}
