// Package report prints conversion results for terminals and CI logs.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Item is one generated component
type Item struct {
	Source    string // Input path or name
	Component string
	Filename  string
	Props     []string
	Warnings  []string
}

// Failure is one input that produced no component
type Failure struct {
	Source string
	Err    error
}

// Summary is the outcome of a batch run
type Summary struct {
	Items     []Item
	Failures  []Failure
	OutputDir string
	IndexFile string // Written barrel file, empty when none
	DryRun    bool
}

// Reporter handles formatting and outputting conversion results
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// Options configures a Reporter
type Options struct {
	UseColors bool // Force colors on; otherwise detected from the environment
	NoColor   bool
	Verbose   bool // Also list props of each component
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:         w,
		useColors: !opts.NoColor && ShouldUseColors(opts.UseColors),
		verbose:   opts.Verbose,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintResults outputs one line per generated component followed by its
// warnings, then one line per failure.
func (r *Reporter) PrintResults(s Summary) {
	verb := "wrote"
	if s.DryRun {
		verb = "would write"
	}

	for _, item := range s.Items {
		fmt.Fprintf(r.w, "%s %s -> %s\n",
			RenderStyle(StyleGreen, "✓", r.useColors),
			RenderStyle(StyleCyan, item.Source, r.useColors),
			item.Filename)

		if r.verbose && len(item.Props) > 0 {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGray, "props: "+strings.Join(item.Props, ", "), r.useColors))
		}
		for _, w := range item.Warnings {
			fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleYellow, "warning:", r.useColors), w)
		}
	}

	for _, f := range s.Failures {
		fmt.Fprintf(r.w, "%s %s: %v\n",
			RenderStyle(StyleRed, "✗", r.useColors),
			RenderStyle(StyleCyan, f.Source, r.useColors),
			f.Err)
	}

	if s.IndexFile != "" {
		fmt.Fprintf(r.w, "%s index %s\n", verb, s.IndexFile)
	}
}

// PrintSummary outputs the component, failure and warning counts
func (r *Reporter) PrintSummary(s Summary) {
	warnings := 0
	for _, item := range s.Items {
		warnings += len(item.Warnings)
	}

	fmt.Fprintln(r.w, "")

	line := pluralizeCount(len(s.Items), "component", "components") + " generated"
	if s.DryRun {
		line += " (dry run)"
	}
	if len(s.Failures) > 0 || warnings > 0 {
		line = fmt.Sprintf("%s (%s, %s)", line,
			pluralizeCount(len(s.Failures), "failure", "failures"),
			pluralizeCount(warnings, "warning", "warnings"))
	}

	switch {
	case len(s.Failures) > 0:
		fmt.Fprintln(r.w, RenderStyle(StyleRed, line, r.useColors))
	case warnings > 0:
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, line, r.useColors))
	default:
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, line, r.useColors))
	}

	if s.OutputDir != "" && len(s.Items) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Output: "+s.OutputDir, r.useColors))
	}
}

// PrintColors lists the distinct colors of one input with a swatch each
func (r *Reporter) PrintColors(source string, colors []string) {
	fmt.Fprintf(r.w, "%s (%s)\n",
		RenderStyle(StyleCyan, source, r.useColors),
		pluralizeCount(len(colors), "color", "colors"))
	for _, c := range colors {
		if sw := Swatch(c, r.useColors); sw != "" {
			fmt.Fprintf(r.w, "  %s %s\n", sw, c)
			continue
		}
		fmt.Fprintf(r.w, "  %s\n", c)
	}
}

// PrintValidation reports whether one input parsed cleanly
func (r *Reporter) PrintValidation(source string, errs []string) {
	if len(errs) == 0 {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓", r.useColors), source)
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleRed, "✗", r.useColors), RenderStyle(StyleCyan, source, r.useColors))
	for _, e := range errs {
		fmt.Fprintf(r.w, "  %s\n", e)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
