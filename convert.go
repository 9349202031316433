package svgcomp

import (
	"github.com/yacobolo/svgcomp/internal/generate"
	"github.com/yacobolo/svgcomp/internal/optimize"
	"github.com/yacobolo/svgcomp/internal/svgast"
	"github.com/yacobolo/svgcomp/internal/transform"
)

// ComponentResult is one generated component
type ComponentResult struct {
	Name          string // Input name the component was generated from
	Source        string // BatchItem.Source, empty for Convert
	Code          string
	Filename      string
	ComponentName string
	Dependencies  []string
	NamedExport   bool // ComponentName is exported by name next to the default export
	Props         []Prop
	Features      []string // Transformation passes that ran
	Warnings      []string
}

// Convert runs the full pipeline on one SVG document.
// A malformed document or an unusable option combination is returned as a
// *ConvertError naming the input and the failing stage.
func Convert(svgText string, opts Options) (*ComponentResult, error) {
	return convert(svgText, opts, opts.generateOptions())
}

func convert(svgText string, opts Options, genOpts generate.Options) (*ComponentResult, error) {
	name := opts.Name
	if name == "" {
		name = "component"
	}
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	// 1. Parse
	doc, err := svgast.Parse(svgText, opts.parseOptions())
	if err != nil {
		log.Errorf("%s: %v", name, err)
		return nil, &ConvertError{Name: name, Stage: StageParse, Err: err}
	}

	var warnings []string
	for _, w := range doc.Warnings {
		warnings = append(warnings, "parse: "+w)
	}

	// 2. Extract and rewrite
	tr := transform.Transform(doc, opts.transformOptions())
	for _, w := range tr.Warnings {
		warnings = append(warnings, w.String())
	}

	// 3. Minify; failures fall back to the unoptimized document
	optimized, optWarnings := optimize.Optimize(tr.Doc, opts.optimizeOptions())
	tr.Doc = optimized
	for _, w := range optWarnings {
		warnings = append(warnings, "optimize: "+w)
	}

	// 4. Emit component source
	gen, err := generate.Generate(tr, genOpts)
	if err != nil {
		log.Errorf("%s: %v", name, err)
		return nil, &ConvertError{Name: name, Stage: StageGenerate, Err: err}
	}
	for _, w := range gen.Warnings {
		warnings = append(warnings, "generate: "+w)
	}

	for _, w := range warnings {
		log.Warnf("%s: %s", name, w)
	}
	log.Infof("%s -> %s", name, gen.Filename)

	return &ComponentResult{
		Name:          opts.Name,
		Code:          gen.Code,
		Filename:      gen.Filename,
		ComponentName: gen.ComponentName,
		Dependencies:  gen.Dependencies,
		NamedExport:   gen.NamedExport,
		Props:         append([]Prop(nil), tr.Props...),
		Features:      tr.Features.Names(),
		Warnings:      warnings,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
