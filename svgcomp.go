// Package svgcomp converts SVG markup into React and Vue component source.
//
// A conversion parses the SVG, turns colors, stroke widths and size into
// component props, optionally minifies the markup and emits a component file
// for the selected framework.
//
// # Single file
//
//	opts := svgcomp.DefaultOptions()
//	opts.Name = "arrow-left"
//	opts.TypeScript = true
//	result, err := svgcomp.Convert(svgText, opts)
//	// result.Filename == "ArrowLeft.tsx"
//
// # Batch
//
// Convert many inputs concurrently. One malformed file never aborts the
// batch; failures are reported next to the successful results:
//
//	batch := svgcomp.ConvertBatch(items, svgcomp.BatchOptions{Options: opts})
//	index := svgcomp.GenerateIndexFile(batch.Results, svgcomp.IndexOptions{})
//
// # CLI Tool
//
// svgcomp also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/svgcomp/cmd/svgcomp@latest
package svgcomp

// Public API:
// - Convert(svgText string, opts Options) (*ComponentResult, error)
// - ConvertBatch(items []BatchItem, opts BatchOptions) *BatchResult
// - ExtractColors(svgText string) ([]string, error)
// - Validate(svgText string) ValidationResult
// - GenerateIndexFile(results []*ComponentResult, opts IndexOptions) string
// - ListSVGFiles, ReadText, WriteText
// - DetermineOutputFormat, WriteOutput
