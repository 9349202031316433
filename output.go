package svgcomp

import (
	"io"
	"path/filepath"

	"github.com/yacobolo/svgcomp/internal/report"
)

// OutputFormat selects how batch results are reported
type OutputFormat string

// Output formats
const (
	OutputText    OutputFormat = "text"    // One line per component plus summary
	OutputSummary OutputFormat = "summary" // Summary line only
	OutputJSON    OutputFormat = "json"    // Machine-readable manifest
)

// OutputConfig carries the reporting context of a batch run
type OutputConfig struct {
	OutputDir string // Directory the components were written to
	IndexFile string // Written barrel file, empty when none
	DryRun    bool
	UseColors bool // Force colors on
	NoColor   bool
	Verbose   bool
}

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins
	if quiet {
		return OutputSummary
	}

	switch formatFlag {
	case "text", "":
		return OutputText
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		// Invalid format, fall back to the default
		return OutputText
	}
}

// WriteOutput writes the batch result in the specified format
func WriteOutput(w io.Writer, result *BatchResult, format OutputFormat, config OutputConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result, config)

	case OutputSummary:
		reporter := report.NewReporter(w, reportOptions(config))
		reporter.PrintSummary(buildSummary(result, config))

	default:
		reporter := report.NewReporter(w, reportOptions(config))
		summary := buildSummary(result, config)
		reporter.PrintResults(summary)
		reporter.PrintSummary(summary)
	}
	return nil
}

func reportOptions(config OutputConfig) report.Options {
	return report.Options{
		UseColors: config.UseColors,
		NoColor:   config.NoColor,
		Verbose:   config.Verbose,
	}
}

// buildSummary converts BatchResult to the reporter's view
func buildSummary(result *BatchResult, config OutputConfig) report.Summary {
	s := report.Summary{
		OutputDir: config.OutputDir,
		IndexFile: config.IndexFile,
		DryRun:    config.DryRun,
	}
	for _, r := range result.Results {
		s.Items = append(s.Items, report.Item{
			Source:    sourceLabel(r.Source, r.Name),
			Component: r.ComponentName,
			Filename:  outputPath(config.OutputDir, r.Filename),
			Props:     propNames(r.Props),
			Warnings:  r.Warnings,
		})
	}
	for _, e := range result.Errors {
		s.Failures = append(s.Failures, report.Failure{
			Source: sourceLabel(e.Source, e.Name),
			Err:    e.Err,
		})
	}
	return s
}

func sourceLabel(source, name string) string {
	if source != "" {
		return source
	}
	return name
}

func outputPath(dir, filename string) string {
	if dir == "" {
		return filename
	}
	return filepath.Join(dir, filename)
}

func propNames(props []Prop) []string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	return names
}
