// Package ldlens turns a raw training-completion export into a
// render-ready dashboard.
//
// Usage:
//
//	import (
//	    "github.com/ldlens-org/ldlens/ingest"
//	    "github.com/ldlens-org/ldlens/report"
//	)
//
//	ds, err := ingest.ReadFile("report_data.xlsx")
//	dashboard := report.Build(ds, report.FilterState{Office: "Brisbane"})
//
// The report package owns the pipeline: column-role resolution, date
// parsing, conjunctive filtering, aggregation, and the summary KPIs. It
// produces plain {labels, values} structures — chart rendering, theming,
// and persistence belong to whatever consumes them. All computation is
// local and synchronous: one load, one full recompute pass per filter
// change.
package ldlens
