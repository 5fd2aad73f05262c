package report

import (
	"fmt"
	"strconv"
	"time"
)

// ============================================================================
// REPORT TYPES — Training-Completion Reporting Pipeline
// ============================================================================
// One Dataset snapshot per load. Rows are immutable once ingested; every
// filter change triggers a full recompute pass over the snapshot.
// ============================================================================

// ============================================================================
// CELL — Tagged cell value
// ============================================================================

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is one raw spreadsheet/CSV cell. Exports mix text, numbers, and
// native date values within a single column, so the kind travels with the
// value instead of being assumed per column.
type Cell struct {
	Kind   CellKind  `json:"kind"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
	Time   time.Time `json:"time,omitempty"`
}

// Cell constructors.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// String returns the display form of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		if c.Number == float64(int64(c.Number)) {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Time.Format("02/01/2006")
	default:
		return ""
	}
}

// Float coerces the cell to a number. Text cells parse leniently;
// anything non-numeric contributes 0.
func (c Cell) Float() float64 {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		if f, err := strconv.ParseFloat(c.Text, 64); err == nil {
			return f
		}
	}
	return 0
}

// IsEmpty reports whether the cell holds no usable value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellText && c.Text == "")
}

// ============================================================================
// ROW & DATASET
// ============================================================================

// Row is one training-completion record: literal header → cell.
// Lookups must be defensive — exports do not guarantee identical key sets
// across rows.
type Row map[string]Cell

// Get returns the cell under key, or an empty cell when absent.
func (r Row) Get(key string) Cell {
	if c, ok := r[key]; ok {
		return c
	}
	return Cell{}
}

// Dataset is one ordered snapshot of rows plus the header sequence as it
// appeared in the source. Header order matters: role detection resolves
// ties by first occurrence.
type Dataset struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of rows.
func (d Dataset) Len() int { return len(d.Rows) }

// ============================================================================
// FILTER STATE
// ============================================================================

// All is the unrestricted sentinel for exact-match selectors.
const All = ""

// FilterState is the complete set of active filter predicate values.
// Zero value = everything unrestricted.
type FilterState struct {
	Office     string `json:"office,omitempty"`
	Department string `json:"department,omitempty"`
	Team       string `json:"team,omitempty"`
	Type       string `json:"type,omitempty"`
	Platform   string `json:"platform,omitempty"`

	// Name is a case-insensitive substring match against the identity
	// column; lowercased at input time.
	Name string `json:"name,omitempty"`

	// Inclusive date range. Nil bound = unbounded.
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Reset restores the unset state.
func (f *FilterState) Reset() { *f = FilterState{} }

// WithoutDateRange returns a copy with both date bounds cleared.
// Used for all-time variants of the rolling-window KPIs.
func (f FilterState) WithoutDateRange() FilterState {
	f.From, f.To = nil, nil
	return f
}

// ============================================================================
// OUTPUT SHAPES — consumed by the presentation adapter
// ============================================================================

// ChartData is a pair of parallel ordered sequences, one label and one
// value per group.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Total sums the value sequence.
func (c ChartData) Total() float64 {
	var t float64
	for _, v := range c.Values {
		t += v
	}
	return t
}

// TrendSeries holds two 12-month sequences aligned to fixed Jan..Dec
// labels, accumulated by month-of-year independent of calendar year.
type TrendSeries struct {
	Months       []string  `json:"months"`
	Current      []float64 `json:"current"`
	Prior        []float64 `json:"prior"`
	CurrentLabel string    `json:"currentLabel"` // e.g. "Feb 24 - Jan 25"
	PriorLabel   string    `json:"priorLabel"`
}

// LeaderboardEntry is one ranked row of the course leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Platform string `json:"platform"` // first seen for the key
}

// KPI is a label/value pair for the summary cards.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary holds the scalar reductions over a filtered subset.
type Summary struct {
	TotalCompletions int     `json:"totalCompletions"`
	TotalHours       string  `json:"totalHours"` // one decimal place
	UniqueCourses    int     `json:"uniqueCourses"`
	UniqueLearners   int     `json:"uniqueLearners"`
	AvgHoursLearner  float64 `json:"avgHoursPerLearner"`
}

// FilterOptions carries the selector values observed in the Dataset,
// sorted, plus the Dataset's completion-date bounds for the date pickers.
// The "All" sentinel is the UI's concern; option lists hold real values.
type FilterOptions struct {
	Offices     []string   `json:"offices"`
	Departments []string   `json:"departments"`
	Teams       []string   `json:"teams"`
	Types       []string   `json:"types"`
	Platforms   []string   `json:"platforms"`
	MinDate     *time.Time `json:"minDate,omitempty"`
	MaxDate     *time.Time `json:"maxDate,omitempty"`
}

// Dashboard is the full render-ready output of one recompute pass.
type Dashboard struct {
	KPIs          []KPI              `json:"kpis"`
	OfficeCounts  ChartData          `json:"officeCounts"`
	TeamCounts    ChartData          `json:"teamCounts"`
	TypeCounts    ChartData          `json:"typeCounts"`
	PlatformMix   ChartData          `json:"platformMix"`
	TeamHours     ChartData          `json:"teamHours"`
	Trend         TrendSeries        `json:"trend"`
	Leaderboard   []LeaderboardEntry `json:"leaderboard"`
	FilterOptions FilterOptions      `json:"filterOptions"`
	FilteredRows  int                `json:"filteredRows"`
	TotalRows     int                `json:"totalRows"`

	// Per-section computation failures; a failed section leaves its zero
	// value in place and never blocks the others.
	Errors []string `json:"errors,omitempty"`
}

// FormatHours renders an hours total to one decimal place.
func FormatHours(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
