package report

import (
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// DATE PARSER — Heterogeneous completion-date cells → calendar date
// ============================================================================
// Exports carry dates as native date values, spreadsheet serials, or text
// in several layouts. Parsing never fails fatally: an unparseable cell is a
// reportable non-date and the row simply drops out of date-dependent
// aggregation.
//
// Recognized forms, in priority order:
//   1. Native date cell → used as-is
//   2. Numeric serial in a plausible window → 1899-12-30 epoch conversion
//   3. "D/M/YYYY[ time]" → day/month/year (deliberate locale choice)
//   4. "YYYY-M-D[ time]"  → year-month-day
//   5. Generic layout fallback
// ============================================================================

// Spreadsheet serial window that maps to real-world years (~2009–2064).
// Numbers outside it are treated as plain numbers, not dates.
const (
	serialMin = 40000
	serialMax = 60000
)

// serialEpoch is day zero of the spreadsheet date system.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Fallback layouts for strings that match none of the delimited forms.
var genericLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate converts one raw cell into a canonical calendar date.
// The second return is false for anything that is not a date. Idempotent on
// date cells: reparsing a parsed value yields the same date.
func ParseDate(c Cell) (time.Time, bool) {
	switch c.Kind {
	case CellDate:
		return dateOnly(c.Time), true

	case CellNumber:
		if c.Number >= serialMin && c.Number <= serialMax {
			d := serialEpoch.Add(time.Duration(c.Number * 86400 * float64(time.Second)))
			return dateOnly(d), true
		}
		return time.Time{}, false

	case CellText:
		return parseDateString(c.Text)

	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#") {
		// Empty cells and spreadsheet error markers (#VALUE!, #REF!).
		return time.Time{}, false
	}

	// Drop any time-of-day suffix: only the token before the first space
	// carries the date.
	datePart := s
	if i := strings.IndexByte(s, ' '); i >= 0 {
		datePart = s[:i]
	}

	if parts := strings.Split(datePart, "/"); len(parts) == 3 {
		return assembleDMY(parts[0], parts[1], parts[2])
	}
	if parts := strings.Split(datePart, "-"); len(parts) == 3 {
		return assembleDMY(parts[2], parts[1], parts[0])
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

// assembleDMY builds a date from day/month/year tokens, applying the year
// corrections seen in spreadsheet artifacts: 2-digit years promote to 2000+,
// and implausible 4+ digit years (>3000) correct modulo 100 plus 2000.
func assembleDMY(dayTok, monthTok, yearTok string) (time.Time, bool) {
	day, err := strconv.Atoi(strings.TrimSpace(dayTok))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthTok))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearTok))
	if err != nil {
		return time.Time{}, false
	}

	if year < 100 {
		year += 2000
	} else if year > 3000 {
		year = year%100 + 2000
	}

	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	// Reject impossible days instead of letting time.Date roll them into
	// the next month (31/04 → 01/05 would corrupt the month buckets).
	if day < 1 || day > daysInMonth(year, time.Month(month)) {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOnly truncates to midnight UTC so equal calendar dates compare equal.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfDay returns 23:59:59.999 for inclusive upper-bound comparison.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.UTC)
}

// startOfDay returns midnight for inclusive lower-bound comparison.
func startOfDay(t time.Time) time.Time {
	return dateOnly(t)
}
