package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ldlens-org/ldlens/ingest"
	"github.com/ldlens-org/ldlens/render"
	"github.com/ldlens-org/ldlens/report"
)

// ============================================================================
// LDLENS CLI — Training-completion reporting from a single export
// ============================================================================

const version = "0.3.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to XLSX or CSV export (required)")
	office := flag.String("office", "", "Filter: exact office")
	department := flag.String("department", "", "Filter: exact department")
	team := flag.String("team", "", "Filter: exact team")
	trainingType := flag.String("type", "", "Filter: exact training type")
	platform := flag.String("platform", "", "Filter: exact platform")
	name := flag.String("name", "", "Filter: name substring (case-insensitive)")
	from := flag.String("from", "", "Filter: completion date lower bound (DD/MM/YYYY or YYYY-MM-DD)")
	to := flag.String("to", "", "Filter: completion date upper bound (inclusive)")
	top := flag.Int("top", report.DefaultLeaderboardSize, "Leaderboard size")
	format := flag.String("format", "term", "Output format: term, json, pretty")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ldlens — training-completion reporting from a single export

Usage:
  ldlens --file report_data.xlsx
  ldlens --file completions.csv --office Brisbane --from 01/01/2025
  ldlens --file report_data.xlsx --format pretty --out dashboard.json

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  term      Styled terminal dashboard (default)
  json      Dashboard payload as JSON
  pretty    Pretty-printed JSON

Filter flags accept the exact values observed in the export; leave a flag
unset for no restriction. Date bounds are inclusive.
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("ldlens %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Load data ─────────────────────────────────────────────────────────
	ds, err := ingest.ReadFile(*filePath)
	if err != nil {
		fatalf("Failed to load %s: %v", *filePath, err)
	}
	log.Printf("Loaded %d rows, %d columns from %s", ds.Len(), len(ds.Headers), *filePath)

	// ── Filter state ──────────────────────────────────────────────────────
	state := report.FilterState{
		Office:     *office,
		Department: *department,
		Team:       *team,
		Type:       *trainingType,
		Platform:   *platform,
		Name:       strings.ToLower(*name),
	}
	if *from != "" {
		t, ok := parseBound(*from)
		if !ok {
			fatalf("Invalid --from date: %s", *from)
		}
		state.From = &t
	}
	if *to != "" {
		t, ok := parseBound(*to)
		if !ok {
			fatalf("Invalid --to date: %s", *to)
		}
		state.To = &t
	}

	// ── Build dashboard ───────────────────────────────────────────────────
	dashboard := report.Build(ds, state, report.WithLeaderboardSize(*top))
	for _, e := range dashboard.Errors {
		log.Printf("Section failed: %s", e)
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "json", "pretty":
		writeJSON(writer, dashboard, *format)
	default:
		fmt.Fprint(writer, render.Dashboard(dashboard))
	}

	if *outFile != "" {
		log.Printf("Output written to %s", *outFile)
	}
}

// parseBound reads a date bound flag through the same parser the pipeline
// uses for completion cells.
func parseBound(s string) (time.Time, bool) {
	return report.ParseDate(report.TextCell(s))
}

// ============================================================================
// OUTPUT HELPERS
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
