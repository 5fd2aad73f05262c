package report

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// ============================================================================
// DASHBOARD — One full recompute pass
// ============================================================================
// Pipeline: resolve columns → apply filters → {summary, charts, trend,
// leaderboard}. Synchronous and total: no partial updates, no caching. A
// superseding load simply replaces the Dataset and reruns everything.
//
// Each output section is computed in isolation — a failure in one section
// is recorded in Dashboard.Errors and leaves that section zeroed while the
// others still render.
// ============================================================================

// Option configures a dashboard build via functional options.
type Option func(*buildConfig)

type buildConfig struct {
	LeaderboardSize int
	TrendRows       []Row // override the trend scope; nil = whole Dataset
}

// WithLeaderboardSize bounds the course leaderboard.
func WithLeaderboardSize(n int) Option {
	return func(c *buildConfig) { c.LeaderboardSize = n }
}

// WithTrendRows overrides the row set the rolling trend is computed over.
// The default is the whole Dataset, independent of active filters.
func WithTrendRows(rows []Row) Option {
	return func(c *buildConfig) { c.TrendRows = rows }
}

func applyOptions(opts []Option) *buildConfig {
	cfg := &buildConfig{LeaderboardSize: DefaultLeaderboardSize}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Build runs one recompute pass: filters the Dataset with state and derives
// every dashboard section from the result.
func Build(ds Dataset, state FilterState, opts ...Option) *Dashboard {
	cfg := applyOptions(opts)

	cols := ResolveColumns(ds)
	filtered := Apply(ds, cols, state)

	trendRows := cfg.TrendRows
	if trendRows == nil {
		trendRows = ds.Rows
	}

	d := &Dashboard{
		FilteredRows: len(filtered),
		TotalRows:    ds.Len(),
	}

	section(d, "kpis", func() {
		d.KPIs = BuildSummary(filtered, cols).KPIs()
	})
	section(d, "office completions", func() {
		d.OfficeCounts = GroupedCount(filtered, OfficeKey, 0)
	})
	section(d, "team completions", func() {
		d.TeamCounts = GroupedCount(filtered, cols.Team, 0)
	})
	section(d, "training types", func() {
		d.TypeCounts = GroupedCount(filtered, TypeKey, 0)
	})
	section(d, "platform mix", func() {
		d.PlatformMix = GroupedCount(filtered, PlatformKey, 0)
	})
	section(d, "team hours", func() {
		d.TeamHours = GroupedSum(filtered, cols.Team, HoursKey, 0)
	})
	section(d, "trend", func() {
		d.Trend = RollingTrend(trendRows, cols)
	})
	section(d, "leaderboard", func() {
		d.Leaderboard = Leaderboard(filtered, cfg.LeaderboardSize)
	})
	section(d, "filter options", func() {
		d.FilterOptions = Options(ds, cols)
	})

	return d
}

// section runs one dashboard computation with fault containment.
func section(d *Dashboard, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.Errors = append(d.Errors, fmt.Sprintf("%s: %v", name, r))
		}
	}()
	fn()
}

// ============================================================================
// FILTER OPTIONS — Selector values observed in the Dataset
// ============================================================================

// Options collects the distinct values per selector column, sorted, plus
// the Dataset's completion-date bounds. The UI prepends its own "All"
// sentinel.
func Options(ds Dataset, cols Columns) FilterOptions {
	opts := FilterOptions{
		Offices:     distinctSorted(ds.Rows, OfficeKey),
		Departments: distinctSorted(ds.Rows, DepartmentKey),
		Teams:       distinctSorted(ds.Rows, cols.Team),
		Types:       distinctSorted(ds.Rows, TypeKey),
		Platforms:   distinctSorted(ds.Rows, PlatformKey),
	}

	if min, ok := minCompletionDate(ds.Rows, cols); ok {
		opts.MinDate = &min
	}
	if max, ok := maxCompletionDate(ds.Rows, cols); ok {
		opts.MaxDate = &max
	}
	return opts
}

func distinctSorted(rows []Row, key string) []string {
	values := lo.Uniq(lo.FilterMap(rows, func(row Row, _ int) (string, bool) {
		v := row.Get(key).String()
		return v, v != ""
	}))
	sort.Strings(values)
	return values
}
