// Package render is the terminal presentation adapter for the report
// pipeline. It consumes the plain data structures the core produces; the
// core never imports it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ldlens-org/ldlens/report"
)

// ============================================================================
// TERMINAL RENDERER — KPI cards, bar charts, trend, leaderboard
// ============================================================================

var (
	accent     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const barWidth = 30

// Dashboard renders the full dashboard as styled terminal output.
func Dashboard(d *report.Dashboard) string {
	var b strings.Builder

	b.WriteString(kpiCards(d.KPIs))
	b.WriteString("\n")
	b.WriteString(barChart("Completions by Office", d.OfficeCounts))
	b.WriteString(barChart("Completions by Team", d.TeamCounts))
	b.WriteString(barChart("Completions by Training Type", d.TypeCounts))
	b.WriteString(barChart("Platform Mix", d.PlatformMix))
	b.WriteString(barChart("CPD Hours by Team", d.TeamHours))
	b.WriteString(trendTable(d.Trend))
	b.WriteString(leaderboardTable(d.Leaderboard))
	b.WriteString(subtle.Render(fmt.Sprintf("%d of %d rows match the active filters",
		d.FilteredRows, d.TotalRows)))
	b.WriteString("\n")

	for _, e := range d.Errors {
		b.WriteString(warnStyle.Render("warning: "+e) + "\n")
	}
	return b.String()
}

// ============================================================================
// SECTIONS
// ============================================================================

func kpiCards(kpis []report.KPI) string {
	cards := make([]string, 0, len(kpis))
	for _, k := range kpis {
		cards = append(cards, cardStyle.Render(
			accent.Render(k.Value)+"\n"+subtle.Render(k.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n"
}

func barChart(title string, data report.ChartData) string {
	if len(data.Labels) == 0 {
		return ""
	}

	max := data.Values[0]
	labelWidth := 0
	for i, l := range data.Labels {
		if data.Values[i] > max {
			max = data.Values[i]
		}
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	for i, label := range data.Labels {
		b.WriteString(fmt.Sprintf("  %-*s %s %s\n",
			labelWidth, label,
			barStyle.Render(bar(data.Values[i], max)),
			subtle.Render(trimZero(data.Values[i]))))
	}
	b.WriteString("\n")
	return b.String()
}

func trendTable(t report.TrendSeries) string {
	if len(t.Months) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Monthly Completions, Rolling 12 Months") + "\n")
	b.WriteString("  " + subtle.Render(fmt.Sprintf("%-12s", "")))
	for _, m := range t.Months {
		b.WriteString(fmt.Sprintf("%5s", m))
	}
	b.WriteString("\n")
	b.WriteString("  " + fmt.Sprintf("%-12s", t.CurrentLabel))
	for _, v := range t.Current {
		b.WriteString(accent.Render(fmt.Sprintf("%5s", trimZero(v))))
	}
	b.WriteString("\n")
	b.WriteString("  " + fmt.Sprintf("%-12s", t.PriorLabel))
	for _, v := range t.Prior {
		b.WriteString(subtle.Render(fmt.Sprintf("%5s", trimZero(v))))
	}
	b.WriteString("\n\n")
	return b.String()
}

func leaderboardTable(entries []report.LeaderboardEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Course Leaderboard") + "\n")
	for _, e := range entries {
		line := fmt.Sprintf("  %2d. %-40s %4d  %s", e.Rank, e.Label, e.Count, e.Platform)
		if e.Rank <= 3 {
			line = accent.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// ============================================================================
// HELPERS
// ============================================================================

func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n == 0 && value > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func trimZero(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
