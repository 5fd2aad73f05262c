package report

import "strings"

// ============================================================================
// COLUMN RESOLUTION — Logical roles over textually-varying headers
// ============================================================================
// Export snapshots spell headers inconsistently ("Name", "Employee Name",
// "TEAM", "Completion"). Three roles are detected from the loaded header
// sequence; everything else is addressed by its documented literal header.
// Resolution runs once per Dataset load and the result is reused by every
// filter/aggregate/summary pass in that load cycle.
// ============================================================================

// Literal fallback headers, used when detection finds no match.
const (
	defaultNameKey       = "Name"
	defaultTeamKey       = "Team"
	defaultCompletionKey = "Completion Date"
)

// Fixed-header columns. These do not vary across observed exports.
const (
	OfficeKey       = "Office"
	DepartmentKey   = "Department"
	TypeKey         = "Training Type"
	PlatformKey     = "Platform"
	TrainingNameKey = "Training Name"
	JobTitleKey     = "Job Title"
	HoursKey        = "CPD Hours"
)

// Columns maps logical column roles to the literal headers the current
// Dataset uses.
type Columns struct {
	Name       string `json:"name"`
	Team       string `json:"team"`
	Completion string `json:"completion"`
}

// ResolveColumns detects the variable column roles from a Dataset's header
// sequence:
//
//   - identity: first header containing "name" (case-insensitive) that does
//     not contain "manager"
//   - team: header equal to "team", ignoring case
//   - completion date: header equal to "completion" or "completion date",
//     ignoring case and surrounding space
//
// An empty Dataset yields zero Columns; downstream operations then see only
// empty cells. Must be re-run on every load — different snapshots use
// different headers.
func ResolveColumns(ds Dataset) Columns {
	if ds.Len() == 0 {
		return Columns{}
	}

	cols := Columns{
		Name:       defaultNameKey,
		Team:       defaultTeamKey,
		Completion: defaultCompletionKey,
	}

	nameFound := false
	for _, header := range ds.Headers {
		lower := strings.ToLower(header)
		trimmed := strings.TrimSpace(lower)

		if !nameFound && strings.Contains(lower, "name") && !strings.Contains(lower, "manager") {
			cols.Name = header
			nameFound = true
		}
		if lower == "team" {
			cols.Team = header
		}
		if trimmed == "completion" || trimmed == "completion date" {
			cols.Completion = header
		}
	}

	return cols
}
