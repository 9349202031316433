// Package generate turns a transformed SVG into component source code.
//
// Each framework is a Generator variant registered by name. Generate picks
// the variant, validates the options against it and stitches the sections
// it emits (imports, props declaration, wrapper, exports) into one file.
package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
	"github.com/yacobolo/svgcomp/internal/transform"
)

// Framework names a generator variant
type Framework string

// Supported frameworks
const (
	React Framework = "react"
	Vue   Framework = "vue"
)

// Options configures code generation.
type Options struct {
	Framework      Framework
	ComponentName  string // Base name; prefix and suffix are added around it
	ExactName      bool   // Use ComponentName as is; it is already a valid identifier
	Prefix         string
	Suffix         string
	TypeScript     bool
	Memo           bool // React only
	Ref            bool // React only: forwardRef to the <svg>
	NativeProps    bool // Pass remaining props/attrs through to the <svg>
	NamedExport    bool // React only: named export next to the default export
	CompositionAPI bool // Vue only
	ScriptSetup    bool // Vue only, requires CompositionAPI
}

// Component is what a variant renders.
type Component struct {
	Name    string
	Props   []transform.Prop
	Doc     *svgast.Document
	Options Options

	warnings []string
}

// Warn records a non-fatal generation issue
func (c *Component) Warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Result is generated component source.
type Result struct {
	Code          string
	Filename      string
	ComponentName string
	Dependencies  []string
	NamedExport   bool // ComponentName is also exported by name
	Warnings      []string
}

// Generator is one framework variant.
type Generator interface {
	Framework() Framework
	Extension(opts Options) string
	Dependencies(opts Options) []string
	// Validate rejects option combinations the variant cannot honor.
	Validate(opts Options) error

	Imports(c *Component) string
	PropsDecl(c *Component) string
	Wrapper(c *Component) string
	Exports(c *Component) string
	// Assemble places the script sections into the final file layout.
	Assemble(c *Component, script string) string
}

// GenerationError reports an unusable framework or option combination.
type GenerationError struct {
	Framework Framework
	Msg       string
	Err       error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("generate %s: %s", e.Framework, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

var registry = map[Framework]Generator{}

// Register adds a variant, replacing any with the same framework name.
func Register(g Generator) {
	registry[g.Framework()] = g
}

// Lookup returns the variant for a framework.
func Lookup(f Framework) (Generator, error) {
	g, ok := registry[Framework(strings.ToLower(string(f)))]
	if !ok {
		return nil, &GenerationError{
			Framework: f,
			Msg:       fmt.Sprintf("unsupported framework (available: %s)", strings.Join(Frameworks(), ", ")),
		}
	}
	return g, nil
}

// Frameworks lists the registered framework names, sorted.
func Frameworks() []string {
	names := make([]string, 0, len(registry))
	for f := range registry {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(reactGenerator{})
	Register(vueGenerator{})
}

// Generate renders the transformed document as a component.
func Generate(res *transform.Result, opts Options) (*Result, error) {
	g, err := Lookup(opts.Framework)
	if err != nil {
		return nil, err
	}
	opts.Framework = g.Framework()
	if err := g.Validate(opts); err != nil {
		return nil, err
	}

	name := opts.ComponentName
	if !opts.ExactName || name == "" {
		name = FormatComponentName(opts.ComponentName, opts.Prefix, opts.Suffix)
	}

	c := &Component{
		Name:    name,
		Props:   res.Props,
		Doc:     res.Doc,
		Options: opts,
	}

	var sections []string
	for _, s := range []string{g.Imports(c), g.PropsDecl(c), g.Wrapper(c), g.Exports(c)} {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}
	code := g.Assemble(c, strings.Join(sections, "\n\n"))

	return &Result{
		Code:          code,
		Filename:      c.Name + g.Extension(opts),
		ComponentName: c.Name,
		Dependencies:  append([]string(nil), g.Dependencies(opts)...),
		NamedExport:   g.Framework() == React && opts.NamedExport,
		Warnings:      c.warnings,
	}, nil
}

// propTS is the TypeScript type of a prop
func propTS(p transform.Prop) string {
	if p.Kind == transform.PropColor {
		return "string"
	}
	return "number | string"
}
