package svgcomp

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON manifest schema
type JSONOutput struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Summary    JSONSummary     `json:"summary"`
	Components []JSONComponent `json:"components"`
	Errors     []JSONError     `json:"errors"`
	Index      string          `json:"index,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Components int  `json:"components"`
	Failures   int  `json:"failures"`
	Warnings   int  `json:"warnings"`
	DryRun     bool `json:"dry_run"`
}

// JSONComponent is one generated component
type JSONComponent struct {
	Source       string     `json:"source"`
	Component    string     `json:"component"`
	File         string     `json:"file"`
	Dependencies []string   `json:"dependencies"`
	Props        []JSONProp `json:"props"`
	Features     []string   `json:"features"`
	Warnings     []string   `json:"warnings"`
}

// JSONProp is one component prop and its default
type JSONProp struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Default string `json:"default"`
}

// JSONError is one failed input
type JSONError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// WriteJSON writes the batch result as a JSON manifest
func WriteJSON(w io.Writer, result *BatchResult, config OutputConfig) error {
	output := buildJSONOutput(result, config)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts BatchResult to JSONOutput
func buildJSONOutput(result *BatchResult, config OutputConfig) JSONOutput {
	warnings := 0
	components := make([]JSONComponent, len(result.Results))
	for i, r := range result.Results {
		props := make([]JSONProp, len(r.Props))
		for j, p := range r.Props {
			props[j] = JSONProp{Name: p.Name, Kind: string(p.Kind), Default: p.Default}
		}
		components[i] = JSONComponent{
			Source:       sourceLabel(r.Source, r.Name),
			Component:    r.ComponentName,
			File:         outputPath(config.OutputDir, r.Filename),
			Dependencies: nonNil(r.Dependencies),
			Props:        props,
			Features:     nonNil(r.Features),
			Warnings:     nonNil(r.Warnings),
		}
		warnings += len(r.Warnings)
	}

	errs := make([]JSONError, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = JSONError{
			Source:  sourceLabel(e.Source, e.Name),
			Message: e.Err.Error(),
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Components: len(result.Results),
			Failures:   len(result.Errors),
			Warnings:   warnings,
			DryRun:     config.DryRun,
		},
		Components: components,
		Errors:     errs,
		Index:      config.IndexFile,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
