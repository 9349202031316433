package svgcomp

import (
	"github.com/yacobolo/svgcomp/internal/extract"
	"github.com/yacobolo/svgcomp/internal/generate"
	"github.com/yacobolo/svgcomp/internal/svgast"
)

// ValidationResult reports whether an SVG document can be converted
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validate reports whether svgText would convert. Findings that conversion
// tolerates (duplicate attributes, malformed colors) are warnings.
func Validate(svgText string) ValidationResult {
	result := ValidationResult{Errors: []string{}}

	doc, err := svgast.Parse(svgText, svgast.ParseOptions{})
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = append(result.Warnings, doc.Warnings...)

	_, colorWarnings := extract.Colors(doc, extract.ColorOptions{})
	for _, w := range colorWarnings {
		result.Warnings = append(result.Warnings, w.String())
	}
	_, strokeWarnings := extract.StrokeWidths(doc)
	for _, w := range strokeWarnings {
		result.Warnings = append(result.Warnings, w.String())
	}

	result.Valid = true
	return result
}

// ExtractColors returns the distinct colors of svgText in first-seen document
// order, each spelled as it first appears.
func ExtractColors(svgText string) ([]string, error) {
	doc, err := svgast.Parse(svgText, svgast.ParseOptions{})
	if err != nil {
		return nil, &ConvertError{Name: "colors", Stage: StageParse, Err: err}
	}
	colors, _ := extract.Colors(doc, extract.ColorOptions{})
	return extract.Values(colors), nil
}

// IndexOptions configures GenerateIndexFile
type IndexOptions = generate.IndexOptions

// ExportType selects named or default re-exports
type ExportType = generate.ExportType

// Export types
const (
	ExportNamed   = generate.ExportNamed
	ExportDefault = generate.ExportDefault
)

// GenerateIndexFile builds a barrel module re-exporting every result in order.
// A result without a named export is re-exported through its default export
// whatever the ExportType.
func GenerateIndexFile(results []*ComponentResult, opts IndexOptions) string {
	entries := make([]generate.IndexEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, generate.IndexEntry{
			ComponentName: r.ComponentName,
			Filename:      r.Filename,
			DefaultOnly:   !r.NamedExport,
		})
	}
	return generate.GenerateIndexFile(entries, opts)
}

// IndexFilename is index.ts for TypeScript output, index.js otherwise
func IndexFilename(typeScript bool) string {
	return generate.IndexFilename(typeScript)
}

// FormatComponentName pascal-cases prefix, base and suffix into a valid
// JavaScript identifier.
func FormatComponentName(base, prefix, suffix string) string {
	return generate.FormatComponentName(base, prefix, suffix)
}

// ComponentBaseName is the base component name for an SVG file path
func ComponentBaseName(path string) string {
	return generate.BaseName(path)
}
