package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/svgcomp"
	"github.com/yacobolo/svgcomp/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate [inputs...]",
	Short: "Check that SVG files can be converted",
	Long: `Parse every input and report malformed markup.
Exits with code 1 when any file is invalid.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringSlice("input", nil, "SVG files, directories or glob patterns (default: icons)")
	f.Bool("recursive", true, "Search input directories recursively")
	f.String("output-format", "", "Output format: text|json")
}

// fileValidation is one entry of the JSON validation report
type fileValidation struct {
	File string `json:"file"`
	svgcomp.ValidationResult
}

func runValidate(cmd *cobra.Command, args []string) error {
	inputs := resolveInputs(args)
	files, err := collectInputs(inputs, genBool("recursive", true))
	if err != nil {
		return err
	}

	var results []fileValidation
	invalid := 0
	for _, path := range files {
		res := validateFile(path)
		if !res.Valid {
			invalid++
		}
		results = append(results, fileValidation{File: path, ValidationResult: res})
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		if genString("output-format", "") == "json" {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		} else {
			reporter := newReporter(cmd)
			for _, r := range results {
				reporter.PrintValidation(r.File, r.Errors)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files are invalid", invalid, len(files))
	}
	return nil
}

func validateFile(path string) svgcomp.ValidationResult {
	text, err := svgcomp.ReadText(path)
	if err != nil {
		return svgcomp.ValidationResult{Errors: []string{err.Error()}}
	}
	return svgcomp.Validate(text)
}

func newReporter(cmd *cobra.Command) *report.Reporter {
	return report.NewReporter(cmd.OutOrStdout(), report.Options{
		UseColors: getBoolWithFallback("color", "color", false),
		NoColor:   getBoolWithFallback("no-color", "no-color", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	})
}
