package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// FILTER ENGINE TESTS
// ============================================================================

func completionRow(name, office, team, completed string) Row {
	return Row{
		"Name":            TextCell(name),
		"Office":          TextCell(office),
		"Team":            TextCell(team),
		"Completion Date": TextCell(completed),
	}
}

func filterFixture() (Dataset, Columns) {
	ds := Dataset{
		Headers: []string{"Name", "Office", "Team", "Completion Date"},
		Rows: []Row{
			completionRow("Alice Nguyen", "Brisbane", "Team 1", "01/03/2025"),
			completionRow("Bob Santos", "Manila", "Team 2", "15/03/2025"),
			completionRow("Carol Reyes", "Manila", "Team 1", "20/04/2025"),
			completionRow("Dan Walker", "Brisbane", "Team 2", "#VALUE!"),
		},
	}
	return ds, ResolveColumns(ds)
}

func TestApplyUnrestrictedReturnsAllInOrder(t *testing.T) {
	ds, cols := filterFixture()

	got := Apply(ds, cols, FilterState{})

	require.Len(t, got, 4)
	for i, row := range got {
		assert.Equal(t, ds.Rows[i].Get("Name"), row.Get("Name"), "order must be preserved")
	}
}

func TestApplyOfficeExactMatch(t *testing.T) {
	ds, cols := filterFixture()

	got := Apply(ds, cols, FilterState{Office: "Brisbane"})
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Nguyen", got[0].Get("Name").String())
	assert.Equal(t, "Dan Walker", got[1].Get("Name").String())

	// Exact match is case-sensitive.
	assert.Empty(t, Apply(ds, cols, FilterState{Office: "brisbane"}))
}

func TestApplyPredicatesAreConjunctive(t *testing.T) {
	ds, cols := filterFixture()

	got := Apply(ds, cols, FilterState{Office: "Manila", Team: "Team 1"})
	require.Len(t, got, 1)
	assert.Equal(t, "Carol Reyes", got[0].Get("Name").String())
}

func TestApplyNameSubstring(t *testing.T) {
	ds, cols := filterFixture()

	got := Apply(ds, cols, FilterState{Name: "nguyen"})
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Nguyen", got[0].Get("Name").String())
}

func TestApplyDateRange(t *testing.T) {
	ds, cols := filterFixture()
	from := date(2025, time.March, 1)
	to := date(2025, time.March, 31)

	got := Apply(ds, cols, FilterState{From: &from, To: &to})

	// Both March rows pass, including the one exactly on the lower bound;
	// the April row is out of range and the unparseable row is excluded.
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Nguyen", got[0].Get("Name").String())
	assert.Equal(t, "Bob Santos", got[1].Get("Name").String())
}

func TestApplyDateRangeUpperBoundInclusive(t *testing.T) {
	ds, cols := filterFixture()
	to := date(2025, time.March, 15)

	got := Apply(ds, cols, FilterState{To: &to})
	require.Len(t, got, 2)
	assert.Equal(t, "Bob Santos", got[1].Get("Name").String())
}

func TestApplyUnboundedRangeIsNoOp(t *testing.T) {
	ds, cols := filterFixture()

	// With no bounds set the unparseable-date row passes like any other.
	got := Apply(ds, cols, FilterState{Office: "Brisbane"})
	assert.Len(t, got, 2)
}

func TestApplyUnparseableDateFailsActiveRange(t *testing.T) {
	ds, cols := filterFixture()
	from := date(2020, time.January, 1)

	got := Apply(ds, cols, FilterState{Office: "Brisbane", From: &from})
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Nguyen", got[0].Get("Name").String())
}

func TestWithoutDateRange(t *testing.T) {
	from := date(2025, time.March, 1)
	state := FilterState{Office: "Brisbane", From: &from}

	allTime := state.WithoutDateRange()

	assert.Nil(t, allTime.From)
	assert.Nil(t, allTime.To)
	assert.Equal(t, "Brisbane", allTime.Office)
	require.NotNil(t, state.From, "original state must be untouched")
}

func TestFilterStateReset(t *testing.T) {
	from := date(2025, time.March, 1)
	state := FilterState{Office: "Brisbane", Name: "alice", From: &from}

	state.Reset()
	assert.Equal(t, FilterState{}, state)
}
