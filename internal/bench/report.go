package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DisplayName turns an algorithm name such as "mulreduce-lanes" into a
// heading such as "Mulreduce Lanes". A cases.Caser holds state, so each
// call builds its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

// ---------------------------------------------------------------------------
// Output formatters
// ---------------------------------------------------------------------------

// FormatTable writes a human-readable ASCII table of the report to w.
func FormatTable(report Report, w io.Writer) error {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "lane target %s (width %d, fused %v), cpu %s\n",
		report.Target, report.LaneWidth, report.Fused, report.Dispatch)
	fmt.Fprintf(sb, "size %d, lanes %d, reference %.6g\n\n", report.Size, report.Lanes, report.Reference)

	fmt.Fprintf(sb, "%-18s  %14s  %10s  %12s  %12s  %12s\n",
		"Algorithm", "Value", "RelErr", "Min(ns)", "Mean(ns)", "Max(ns)")
	fmt.Fprintln(sb, strings.Repeat("-", 86))

	for _, a := range report.Algorithms {
		fmt.Fprintf(sb, "%-18s  %14.7g  %10.2e  %12d  %12d  %12d\n",
			DisplayName(a.Name),
			a.Value,
			a.RelError,
			a.Stats.Min.Nanoseconds(),
			a.Stats.Mean.Nanoseconds(),
			a.Stats.Max.Nanoseconds(),
		)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// fileReport is the structure emitted by FormatJSON and FormatYAML.
type fileReport struct {
	RunID      string     `json:"run_id" yaml:"run_id"`
	Target     string     `json:"target" yaml:"target"`
	Dispatch   string     `json:"dispatch" yaml:"dispatch"`
	LaneWidth  int        `json:"lane_width" yaml:"lane_width"`
	Fused      bool       `json:"fused" yaml:"fused"`
	Size       int        `json:"size" yaml:"size"`
	Lanes      int        `json:"lanes" yaml:"lanes"`
	Reference  float64    `json:"reference" yaml:"reference"`
	Algorithms []fileAlgo `json:"algorithms" yaml:"algorithms"`
}

type fileAlgo struct {
	Name     string    `json:"name" yaml:"name"`
	Value    float32   `json:"value" yaml:"value"`
	RelError float64   `json:"rel_error" yaml:"rel_error"`
	Stats    fileStats `json:"stats" yaml:"stats"`
	Runs     []fileRun `json:"runs" yaml:"runs"`
}

type fileStats struct {
	MinNS  int64 `json:"min_ns" yaml:"min_ns"`
	MeanNS int64 `json:"mean_ns" yaml:"mean_ns"`
	MaxNS  int64 `json:"max_ns" yaml:"max_ns"`
}

type fileRun struct {
	Index      int     `json:"index" yaml:"index"`
	Cold       bool    `json:"cold" yaml:"cold"`
	DurationNS int64   `json:"duration_ns" yaml:"duration_ns"`
	Value      float32 `json:"value" yaml:"value"`
}

func toFileReport(report Report) fileReport {
	fr := fileReport{
		RunID:      report.RunID,
		Target:     report.Target,
		Dispatch:   report.Dispatch,
		LaneWidth:  report.LaneWidth,
		Fused:      report.Fused,
		Size:       report.Size,
		Lanes:      report.Lanes,
		Reference:  report.Reference,
		Algorithms: make([]fileAlgo, len(report.Algorithms)),
	}
	for i, a := range report.Algorithms {
		fa := fileAlgo{
			Name:     a.Name,
			Value:    a.Value,
			RelError: a.RelError,
			Stats: fileStats{
				MinNS:  a.Stats.Min.Nanoseconds(),
				MeanNS: a.Stats.Mean.Nanoseconds(),
				MaxNS:  a.Stats.Max.Nanoseconds(),
			},
			Runs: make([]fileRun, len(a.Runs)),
		}
		for j, r := range a.Runs {
			fa.Runs[j] = fileRun{
				Index:      r.Index,
				Cold:       r.Cold,
				DurationNS: r.Duration.Nanoseconds(),
				Value:      r.Value,
			}
		}
		fr.Algorithms[i] = fa
	}
	return fr
}

// FormatJSON writes a JSON report to w.
func FormatJSON(report Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toFileReport(report))
}

// FormatYAML writes a YAML report to w.
func FormatYAML(report Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toFileReport(report)); err != nil {
		return err
	}
	return enc.Close()
}

// Format writes report to w in the named format: "table", "json" or "yaml".
func Format(format string, report Report, w io.Writer) error {
	switch format {
	case "table", "":
		return FormatTable(report, w)
	case "json":
		return FormatJSON(report, w)
	case "yaml":
		return FormatYAML(report, w)
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}
