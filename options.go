package svgcomp

import (
	"github.com/yacobolo/svgcomp/internal/generate"
	"github.com/yacobolo/svgcomp/internal/optimize"
	"github.com/yacobolo/svgcomp/internal/svgast"
	"github.com/yacobolo/svgcomp/internal/transform"
)

// Framework selects the generated component flavor
type Framework = generate.Framework

// Supported frameworks
const (
	React = generate.React
	Vue   = generate.Vue
)

// DimensionMode controls root width/height handling
type DimensionMode = transform.DimensionMode

// Dimension modes
const (
	DimensionsKeep   = transform.DimensionsKeep
	DimensionsRemove = transform.DimensionsRemove
	DimensionsSize   = transform.DimensionsSize
)

// FillPolicy is the paint injected into shapes without fill or stroke
type FillPolicy = transform.FillPolicy

// Fill policies
const (
	FillOff          = transform.FillOff
	FillCurrentColor = transform.FillCurrentColor
	FillNone         = transform.FillNone
)

// Prop is one component input derived from the SVG
type Prop = transform.Prop

// Minifier performs markup minification for the optimizer
type Minifier = optimize.Minifier

// MinifierFunc adapts a function to Minifier
type MinifierFunc = optimize.MinifierFunc

// MinifyConfig is what the optimizer passes to a Minifier
type MinifyConfig = optimize.MinifyConfig

// Logger receives progress and warning messages. A nil Logger is silent.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Options holds configuration for a conversion
type Options struct {
	// Naming
	Name   string // Base component name, usually the file name without extension
	Prefix string
	Suffix string

	// Generation
	Framework      Framework
	TypeScript     bool
	Memo           bool // React only
	Ref            bool // React only
	NativeProps    bool
	NamedExport    bool // React only
	CompositionAPI bool // Vue only
	ScriptSetup    bool // Vue only

	// Transformation
	Dimensions         DimensionMode
	SplitColors        bool
	SplitSpecialColors bool // Also turn none/transparent/currentColor into props
	SplitStrokeWidths  bool
	FixedStrokeWidth   bool // Inject vector-effect="non-scaling-stroke"
	FillPolicy         FillPolicy
	Accessibility      bool
	IDPrefix           string // Prefix for generated title/desc ids
	RemoveComments     bool
	RemoveDuplicates   bool
	RemoveEditorData   bool

	// Optimization
	Optimize      bool
	RemoveViewBox bool
	Precision     int // Significant digits kept by the minifier, 0 keeps all
	Minifier      Minifier

	// Parsing
	Strict bool // Reject duplicate attributes instead of keeping the first

	Logger Logger
}

// DefaultOptions returns the options the CLI starts from: a React component
// with size and color props, default and named exports, accessibility markup
// and minified output.
func DefaultOptions() Options {
	return Options{
		Framework:        React,
		NativeProps:      true,
		NamedExport:      true,
		Dimensions:       DimensionsSize,
		SplitColors:      true,
		Accessibility:    true,
		RemoveComments:   true,
		RemoveDuplicates: true,
		RemoveEditorData: true,
		Optimize:         true,
	}
}

func (o Options) parseOptions() svgast.ParseOptions {
	return svgast.ParseOptions{Strict: o.Strict}
}

func (o Options) transformOptions() transform.Options {
	return transform.Options{
		Dimensions:         o.Dimensions,
		SplitColors:        o.SplitColors,
		SplitSpecialColors: o.SplitSpecialColors,
		SplitStrokeWidths:  o.SplitStrokeWidths,
		FixedStrokeWidth:   o.FixedStrokeWidth,
		FillPolicy:         o.FillPolicy,
		Accessibility:      o.Accessibility,
		IDPrefix:           o.IDPrefix,
		RemoveComments:     o.RemoveComments,
		RemoveDuplicates:   o.RemoveDuplicates,
		RemoveEditorData:   o.RemoveEditorData,
	}
}

func (o Options) optimizeOptions() optimize.Options {
	return optimize.Options{
		Enabled:       o.Optimize,
		RemoveViewBox: o.RemoveViewBox,
		Precision:     o.Precision,
		KeepComments:  !o.RemoveComments,
		Minifier:      o.Minifier,
	}
}

func (o Options) generateOptions() generate.Options {
	return generate.Options{
		Framework:      o.Framework,
		ComponentName:  o.Name,
		Prefix:         o.Prefix,
		Suffix:         o.Suffix,
		TypeScript:     o.TypeScript,
		Memo:           o.Memo,
		Ref:            o.Ref,
		NativeProps:    o.NativeProps,
		NamedExport:    o.NamedExport,
		CompositionAPI: o.CompositionAPI,
		ScriptSetup:    o.ScriptSetup,
	}
}
