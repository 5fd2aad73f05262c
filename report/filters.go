package report

import (
	"strings"
	"time"
)

// ============================================================================
// FILTER ENGINE — Conjunctive predicates over the Dataset
// ============================================================================
// Single pass: a row passes when ALL active predicates match. Inactive
// predicates (All sentinel / empty substring / unbounded range) never
// restrict. Output preserves Dataset order — this is filtering, not sorting.
// ============================================================================

// Apply returns the rows matching every active predicate in state.
func Apply(ds Dataset, cols Columns, state FilterState) []Row {
	exact := []struct {
		key   string
		value string
	}{
		{OfficeKey, state.Office},
		{DepartmentKey, state.Department},
		{cols.Team, state.Team},
		{TypeKey, state.Type},
		{PlatformKey, state.Platform},
	}

	rangeActive := state.From != nil || state.To != nil
	var lower, upper time.Time
	if state.From != nil {
		lower = startOfDay(*state.From)
	}
	if state.To != nil {
		upper = endOfDay(*state.To)
	}

	out := make([]Row, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		pass := true

		for _, p := range exact {
			if p.value == All {
				continue
			}
			if row.Get(p.key).String() != p.value {
				pass = false
				break
			}
		}

		if pass && state.Name != "" {
			identity := strings.ToLower(row.Get(cols.Name).String())
			if !strings.Contains(identity, state.Name) {
				pass = false
			}
		}

		if pass && rangeActive {
			completed, ok := ParseDate(row.Get(cols.Completion))
			if !ok {
				// A row without a readable completion date cannot prove it
				// falls inside the range — exclude, don't pass through.
				pass = false
			} else {
				if state.From != nil && completed.Before(lower) {
					pass = false
				}
				if state.To != nil && completed.After(upper) {
					pass = false
				}
			}
		}

		if pass {
			out = append(out, row)
		}
	}
	return out
}
