package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldlens-org/ldlens/report"
)

// ============================================================================
// CSV INGESTION TESTS
// ============================================================================

var completionsCSV = `Name,Office,Team,Training Name,Platform,CPD Hours,Completion Date
Alice Nguyen,Brisbane,Team 1,Ethics 101,Learn365,2.5,01/03/2025
Bob Santos,Manila,Team 2,Excel Basics,LinkedIn,1,15/03/2025
Carol Reyes,Manila,Team 1,Ethics 101,Learn365,,
`

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(completionsCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Office", "Team", "Training Name", "Platform", "CPD Hours", "Completion Date"}, ds.Headers)
	require.Len(t, ds.Rows, 3)

	first := ds.Rows[0]
	assert.Equal(t, report.TextCell("Alice Nguyen"), first.Get("Name"))
	assert.Equal(t, report.NumberCell(2.5), first.Get("CPD Hours"), "numeric text coerces to a number cell")
	assert.Equal(t, report.TextCell("01/03/2025"), first.Get("Completion Date"), "date text stays text for the date parser")

	third := ds.Rows[2]
	assert.True(t, third.Get("CPD Hours").IsEmpty())
	assert.True(t, third.Get("Completion Date").IsEmpty())
}

func TestReadCSVShortRow(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("Name,Office,Team\nAlice,Brisbane\n"))
	require.NoError(t, err)

	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Brisbane", ds.Rows[0].Get("Office").String())
	assert.True(t, ds.Rows[0].Get("Team").IsEmpty(), "missing trailing cells default to empty")
}

func TestReadCSVEmptyPayload(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSVHeaderless(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\n"))
	assert.Error(t, err)
}

func TestReadCSVHeadersTrimmed(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(" Name , Office \nAlice,Brisbane\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Office"}, ds.Headers)
}

func TestReadCSVIntoPipeline(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(completionsCSV))
	require.NoError(t, err)

	d := report.Build(ds, report.FilterState{})
	assert.Empty(t, d.Errors)
	assert.Equal(t, 3, d.FilteredRows)
	assert.Equal(t, "Ethics 101", d.Leaderboard[0].Label)
}
