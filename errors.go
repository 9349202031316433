package svgcomp

import (
	"fmt"

	"github.com/yacobolo/svgcomp/internal/generate"
	"github.com/yacobolo/svgcomp/internal/optimize"
	"github.com/yacobolo/svgcomp/internal/svgast"
	"github.com/yacobolo/svgcomp/internal/transform"
)

// Error types surfaced by the pipeline stages
type (
	// ParseError reports malformed SVG input
	ParseError = svgast.ParseError
	// TransformWarning is a site a transformation pass left untouched
	TransformWarning = transform.Warning
	// OptimizationError explains why minified output was discarded
	OptimizationError = optimize.OptimizationError
	// GenerationError reports an unsupported framework or option combination
	GenerationError = generate.GenerationError
)

// Stage names the pipeline step a conversion failed in
type Stage string

// Pipeline stages
const (
	StageParse    Stage = "parse"
	StageGenerate Stage = "generate"
)

// ConvertError is a fatal conversion failure for one input
type ConvertError struct {
	Name  string
	Stage Stage
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %s: %s: %v", e.Name, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// IoError reports a failed file operation
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
