package report

import "github.com/samber/lo"

// ============================================================================
// SUMMARY BUILDER — Scalar KPI reductions over a filtered subset
// ============================================================================
// Pure, order-independent, recomputed in full on every filter change.
// ============================================================================

// BuildSummary reduces a filtered row subset to the headline KPIs.
func BuildSummary(rows []Row, cols Columns) Summary {
	var hours float64
	for _, row := range rows {
		hours += row.Get(HoursKey).Float()
	}

	courses := lo.Uniq(lo.FilterMap(rows, func(row Row, _ int) (string, bool) {
		v := row.Get(TrainingNameKey).String()
		return v, v != ""
	}))
	learners := lo.Uniq(lo.FilterMap(rows, func(row Row, _ int) (string, bool) {
		v := row.Get(cols.Name).String()
		return v, v != ""
	}))

	avg := 0.0
	if len(learners) > 0 {
		avg = roundTo1(hours / float64(len(learners)))
	}

	return Summary{
		TotalCompletions: len(rows),
		TotalHours:       FormatHours(hours),
		UniqueCourses:    len(courses),
		UniqueLearners:   len(learners),
		AvgHoursLearner:  avg,
	}
}

// KPIs renders a Summary as ordered label/value cards.
func (s Summary) KPIs() []KPI {
	return []KPI{
		{Label: "Total Completions", Value: FormatInt(s.TotalCompletions)},
		{Label: "Total CPD Hours", Value: s.TotalHours},
		{Label: "Unique Courses", Value: FormatInt(s.UniqueCourses)},
		{Label: "Unique Learners", Value: FormatInt(s.UniqueLearners)},
		{Label: "Avg Hours per Learner", Value: FormatHours(s.AvgHoursLearner)},
	}
}
