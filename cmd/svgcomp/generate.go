package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yacobolo/svgcomp"
)

var generateCmd = &cobra.Command{
	Use:     "generate [inputs...]",
	Aliases: []string{"gen"},
	Short:   "Generate components from SVG files",
	Long: `Convert SVG files into React or Vue components.
Inputs are files, directories or glob patterns; directories are searched
for .svg files. One failing file does not stop the others.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generation flags on cmd. Defaults shown in
// help match DefaultOptions; unset flags never override the config file.
func addGenerateFlags(cmd *cobra.Command) {
	defaults := svgcomp.DefaultOptions()

	f := cmd.Flags()
	f.StringSlice("input", nil, "SVG files, directories or glob patterns (default: icons)")
	f.StringP("out-dir", "o", "src/components/icons", "Output directory for generated components")
	f.Bool("recursive", true, "Search input directories recursively")
	f.Bool("dry-run", false, "Convert without writing files")
	f.String("output-format", "", "Output format: text|summary|json")
	f.Int("concurrency", 0, "Parallel conversions (0 = number of CPUs)")

	// Naming
	f.String("prefix", "", "Component name prefix")
	f.String("suffix", "", "Component name suffix")

	// Generation
	f.StringP("framework", "f", string(defaults.Framework), "Target framework: react|vue")
	f.Bool("typescript", defaults.TypeScript, "Emit TypeScript")
	f.Bool("memo", defaults.Memo, "Wrap React components in memo")
	f.Bool("ref", defaults.Ref, "Forward refs to the <svg> element (React)")
	f.Bool("native-props", defaults.NativeProps, "Pass remaining props through to the <svg> element")
	f.Bool("named-export", defaults.NamedExport, "Add a named export next to the default export (React)")
	f.Bool("composition-api", defaults.CompositionAPI, "Use the Vue composition API")
	f.Bool("script-setup", defaults.ScriptSetup, "Use <script setup> (Vue, requires --composition-api)")
	f.Bool("index", true, "Write an index file re-exporting every component")
	f.String("export-type", string(svgcomp.ExportNamed), "Index re-exports: named|default")

	// Transformation
	f.String("dimensions", string(defaults.Dimensions), "Root width/height: keep|remove|size")
	f.Bool("split-colors", defaults.SplitColors, "Turn colors into props")
	f.Bool("split-special-colors", defaults.SplitSpecialColors, "Also turn none/transparent/currentColor into props")
	f.Bool("split-stroke-widths", defaults.SplitStrokeWidths, "Turn stroke widths into props")
	f.Bool("fixed-stroke-width", defaults.FixedStrokeWidth, "Keep stroke width constant when scaled")
	f.String("fill-policy", string(svgcomp.FillOff), "Paint for shapes without fill or stroke: off|currentColor|none")
	f.Bool("a11y", defaults.Accessibility, "Add role and aria attributes")
	f.String("id-prefix", "", "Prefix for generated title/desc ids (default: svg)")
	f.Bool("remove-comments", defaults.RemoveComments, "Drop comments")
	f.Bool("remove-duplicates", defaults.RemoveDuplicates, "Drop attributes that repeat an inherited value")
	f.Bool("remove-editor-data", defaults.RemoveEditorData, "Drop editor namespaces and metadata")

	// Optimization
	f.Bool("optimize", defaults.Optimize, "Minify markup")
	f.Bool("remove-viewbox", defaults.RemoveViewBox, "Drop the viewBox attribute")
	f.Int("precision", defaults.Precision, "Significant digits kept when minifying (0 = all)")
	f.Bool("strict", false, "Fail on duplicate attributes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config, err := buildGenerateConfig(args)
	if err != nil {
		return err
	}
	applyColorFlags()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if getBoolWithFallback("verbose", "verbose", false) && !quiet {
		config.Batch.Logger = newCLILogger(cmd.ErrOrStderr())
	}

	batch, indexFile, err := generateFiles(config)
	if err != nil {
		return err
	}

	format := svgcomp.DetermineOutputFormat(config.OutputFormat, quiet)
	if !quiet {
		if err := svgcomp.WriteOutput(cmd.OutOrStdout(), batch, format, svgcomp.OutputConfig{
			OutputDir: config.OutDir,
			IndexFile: indexFile,
			DryRun:    config.DryRun,
			UseColors: getBoolWithFallback("color", "color", false),
			NoColor:   getBoolWithFallback("no-color", "no-color", false),
			Verbose:   getBoolWithFallback("verbose", "verbose", false),
		}); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if len(batch.Errors) > 0 {
		total := len(batch.Errors) + len(batch.Results)
		return fmt.Errorf("%d of %d files failed", len(batch.Errors), total)
	}
	return nil
}

// generateFiles reads the inputs, converts them and writes the components
// and index file. Read failures are reported like conversion failures.
func generateFiles(config generateConfig) (*svgcomp.BatchResult, string, error) {
	files, err := collectInputs(config.Inputs, config.Recursive)
	if err != nil {
		return nil, "", err
	}
	if len(files) == 0 {
		return nil, "", fmt.Errorf("no SVG files found in %s", strings.Join(config.Inputs, ", "))
	}

	var (
		items     []svgcomp.BatchItem
		itemFiles []int // Index into files of each item
		readErrs  []*svgcomp.ItemError
	)
	for i, path := range files {
		name := svgcomp.ComponentBaseName(path)
		text, err := svgcomp.ReadText(path)
		if err != nil {
			readErrs = append(readErrs, &svgcomp.ItemError{Index: i, Name: name, Source: path, Err: err})
			continue
		}
		items = append(items, svgcomp.BatchItem{Name: name, Content: text, Source: path})
		itemFiles = append(itemFiles, i)
	}

	batch := svgcomp.ConvertBatch(items, config.Batch)

	// Error indexes refer to files, in input order
	for _, e := range batch.Errors {
		e.Index = itemFiles[e.Index]
	}
	batch.Errors = append(readErrs, batch.Errors...)
	sort.SliceStable(batch.Errors, func(i, j int) bool {
		return batch.Errors[i].Index < batch.Errors[j].Index
	})

	if !config.DryRun {
		for _, r := range batch.Results {
			if err := svgcomp.WriteText(filepath.Join(config.OutDir, r.Filename), r.Code); err != nil {
				return nil, "", err
			}
		}
	}

	indexFile := ""
	if config.Index && len(batch.Results) > 0 {
		indexFile = filepath.Join(config.OutDir, svgcomp.IndexFilename(config.Batch.TypeScript))
		if !config.DryRun {
			index := svgcomp.GenerateIndexFile(batch.Results, svgcomp.IndexOptions{ExportType: config.ExportType})
			if err := svgcomp.WriteText(indexFile, index); err != nil {
				return nil, "", err
			}
		}
	}

	return batch, indexFile, nil
}

// collectInputs expands files, directories and glob patterns into a
// deduplicated list of SVG files in argument order.
func collectInputs(inputs []string, recursive bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(paths []string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
		}
	}

	for _, input := range inputs {
		if strings.ContainsAny(input, "*?[{") {
			matches, _, err := svgcomp.GlobSVGFiles([]string{input})
			if err != nil {
				return nil, err
			}
			add(matches)
			continue
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, &svgcomp.IoError{Op: "stat", Path: input, Err: err}
		}
		if !info.IsDir() {
			add([]string{input})
			continue
		}

		matches, err := svgcomp.ListSVGFiles(input, recursive)
		if err != nil {
			return nil, err
		}
		add(matches)
	}
	return files, nil
}

// applyColorFlags makes fatih/color follow --color and --no-color
func applyColorFlags() {
	switch {
	case getBoolWithFallback("no-color", "no-color", false):
		color.NoColor = true
	case getBoolWithFallback("color", "color", false):
		color.NoColor = false
	}
}
