package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/svgcomp"
)

var colorsCmd = &cobra.Command{
	Use:   "colors [inputs...]",
	Short: "List the colors each SVG file uses",
	Long: `Print the distinct colors of every input in document order.
These are the values that become color, color2, ... props.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runColors,
}

func init() {
	f := colorsCmd.Flags()
	f.StringSlice("input", nil, "SVG files, directories or glob patterns (default: icons)")
	f.Bool("recursive", true, "Search input directories recursively")
	f.String("output-format", "", "Output format: text|json")
}

// fileColors is one entry of the JSON colors report
type fileColors struct {
	File   string   `json:"file"`
	Colors []string `json:"colors"`
	Error  string   `json:"error,omitempty"`
}

func runColors(cmd *cobra.Command, args []string) error {
	files, err := collectInputs(resolveInputs(args), genBool("recursive", true))
	if err != nil {
		return err
	}

	results := make([]fileColors, 0, len(files))
	failed := 0
	for _, path := range files {
		entry := fileColors{File: path, Colors: []string{}}
		text, err := svgcomp.ReadText(path)
		if err == nil {
			var colors []string
			if colors, err = svgcomp.ExtractColors(text); err == nil {
				entry.Colors = colors
			}
		}
		if err != nil {
			entry.Error = err.Error()
			failed++
		}
		results = append(results, entry)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		if genString("output-format", "") == "json" {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		} else {
			reporter := newReporter(cmd)
			for _, r := range results {
				if r.Error != "" {
					reporter.PrintValidation(r.File, []string{r.Error})
					continue
				}
				reporter.PrintColors(r.File, r.Colors)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be processed", failed, len(files))
	}
	return nil
}
