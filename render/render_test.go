package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldlens-org/ldlens/report"
)

func TestDashboardRendersAllSections(t *testing.T) {
	d := &report.Dashboard{
		KPIs: []report.KPI{{Label: "Total Completions", Value: "4"}},
		OfficeCounts: report.ChartData{
			Labels: []string{"Brisbane", "Manila"},
			Values: []float64{2, 2},
		},
		Trend: report.TrendSeries{
			Months:       []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Current:      make([]float64, 12),
			Prior:        make([]float64, 12),
			CurrentLabel: "Apr 24 - Mar 25",
			PriorLabel:   "Apr 23 - Mar 24",
		},
		Leaderboard: []report.LeaderboardEntry{
			{Rank: 1, Label: "Ethics 101", Count: 2, Platform: "Learn365"},
		},
		FilteredRows: 4,
		TotalRows:    4,
		Errors:       []string{"trend: boom"},
	}

	out := Dashboard(d)

	assert.Contains(t, out, "Total Completions")
	assert.Contains(t, out, "Brisbane")
	assert.Contains(t, out, "Apr 24 - Mar 25")
	assert.Contains(t, out, "Ethics 101")
	assert.Contains(t, out, "4 of 4 rows")
	assert.Contains(t, out, "trend: boom")
}

func TestBarScaling(t *testing.T) {
	assert.Equal(t, "", bar(0, 0))
	assert.Len(t, []rune(bar(10, 10)), 30)
	assert.Len(t, []rune(bar(1, 1000)), 1, "non-zero values always draw at least one cell")
}
