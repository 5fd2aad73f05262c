package report

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ============================================================================
// AGGREGATORS — Grouped counts, grouped sums, rolling trend, leaderboard
// ============================================================================
// Pure functions of a row subset. Pipeline per operation:
// group → aggregate → sort → limit. Ties keep first-seen grouping order.
// ============================================================================

// NABucket collects rows whose grouping cell is missing or empty.
const NABucket = "N/A"

// ============================================================================
// GROUPED COUNT
// ============================================================================

// GroupedCount groups rows by a column's display value and counts rows per
// group, descending. topN <= 0 keeps all groups. The counts always sum to
// len(rows): every row lands in exactly one bucket, including NABucket.
func GroupedCount(rows []Row, key string, topN int) ChartData {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, row := range rows {
		label := row.Get(key).String()
		if label == "" {
			label = NABucket
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}

	out := ChartData{
		Labels: make([]string, 0, len(order)),
		Values: make([]float64, 0, len(order)),
	}
	for _, label := range order {
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, float64(counts[label]))
	}
	return out
}

// ============================================================================
// GROUPED SUM
// ============================================================================

// GroupedSum groups rows by groupKey and sums the numeric sumKey column per
// group, descending. Non-numeric and missing cells contribute 0. Sums carry
// one-decimal precision, matching how hours are reported.
func GroupedSum(rows []Row, groupKey, sumKey string, topN int) ChartData {
	sums := make(map[string]float64)
	order := make([]string, 0)

	for _, row := range rows {
		label := row.Get(groupKey).String()
		if label == "" {
			label = NABucket
		}
		if _, seen := sums[label]; !seen {
			order = append(order, label)
		}
		sums[label] += row.Get(sumKey).Float()
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]] > sums[order[j]]
	})
	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}

	out := ChartData{
		Labels: make([]string, 0, len(order)),
		Values: make([]float64, 0, len(order)),
	}
	for _, label := range order {
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, roundTo1(sums[label]))
	}
	return out
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// ============================================================================
// ROLLING TREND — current vs prior 12-month window
// ============================================================================

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// RollingTrend buckets completions into two 12-month windows anchored at
// the maximum completion date across the given rows: "current" is the 12
// months ending at that date's month inclusive, "prior" the 12 months
// before that. Buckets align by month-of-year to the fixed Jan..Dec label
// sequence. Rows whose completion date does not parse, or falls outside
// the combined 24-month window, are skipped; the two series together sum
// to the remaining rows.
//
// The caller chooses the scope: the dashboard passes the whole Dataset so
// the trend stays stable while selectors narrow the other sections.
func RollingTrend(rows []Row, cols Columns) TrendSeries {
	trend := TrendSeries{
		Months:  monthLabels,
		Current: make([]float64, 12),
		Prior:   make([]float64, 12),
	}

	anchor, ok := maxCompletionDate(rows, cols)
	if !ok {
		return trend
	}

	// Window boundaries, first-of-month resolution. Current window:
	// [anchor-11 months .. anchor month]. Prior: the 12 months before.
	curEnd := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	curStart := curEnd.AddDate(0, -11, 0)
	priorStart := curStart.AddDate(0, -12, 0)

	for _, row := range rows {
		completed, ok := ParseDate(row.Get(cols.Completion))
		if !ok {
			continue
		}
		month := time.Date(completed.Year(), completed.Month(), 1, 0, 0, 0, 0, time.UTC)
		idx := int(completed.Month()) - 1

		switch {
		case !month.Before(curStart) && !month.After(curEnd):
			trend.Current[idx]++
		case !month.Before(priorStart) && month.Before(curStart):
			trend.Prior[idx]++
		}
	}

	trend.CurrentLabel = windowLabel(curStart, curEnd)
	trend.PriorLabel = windowLabel(priorStart, curStart.AddDate(0, -1, 0))
	return trend
}

// windowLabel renders a human-readable period, e.g. "Feb 24 - Jan 25".
func windowLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 06"), end.Format("Jan 06"))
}

// maxCompletionDate finds the latest parseable completion date in rows.
func maxCompletionDate(rows []Row, cols Columns) (time.Time, bool) {
	var max time.Time
	found := false
	for _, row := range rows {
		if d, ok := ParseDate(row.Get(cols.Completion)); ok {
			if !found || d.After(max) {
				max = d
				found = true
			}
		}
	}
	return max, found
}

// minCompletionDate finds the earliest parseable completion date in rows.
func minCompletionDate(rows []Row, cols Columns) (time.Time, bool) {
	var min time.Time
	found := false
	for _, row := range rows {
		if d, ok := ParseDate(row.Get(cols.Completion)); ok {
			if !found || d.Before(min) {
				min = d
				found = true
			}
		}
	}
	return min, found
}

// ============================================================================
// LEADERBOARD
// ============================================================================

// DefaultLeaderboardSize bounds the course leaderboard.
const DefaultLeaderboardSize = 20

// Leaderboard ranks training names by completion count, descending,
// truncated to limit (DefaultLeaderboardSize when limit <= 0). Each entry
// carries the platform of the first row seen for that course — first-seen
// wins, not the most frequent.
func Leaderboard(rows []Row, limit int) []LeaderboardEntry {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	counts := make(map[string]int)
	platforms := make(map[string]string)
	order := make([]string, 0)

	for _, row := range rows {
		label := row.Get(TrainingNameKey).String()
		if label == "" {
			label = NABucket
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
			platforms[label] = row.Get(PlatformKey).String()
		}
		counts[label]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for i, label := range order {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			Label:    label,
			Count:    counts[label],
			Platform: platforms[label],
		})
	}
	return entries
}
