// Package optimize minifies transformed SVG without disturbing prop
// bindings.
//
// Bound attribute values are swapped for opaque placeholder tokens before
// the markup reaches the minifier and restored afterwards. If anything the
// generated component depends on does not survive, the unoptimized
// document is kept and a warning is returned instead.
package optimize

import (
	"fmt"
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
)

const tokenPrefix = "__svgcomp_bind_"

// Options controls optimization.
type Options struct {
	Enabled       bool
	RemoveViewBox bool
	Precision     int
	KeepComments  bool
	Minifier      Minifier // Defaults to DefaultMinifier
}

// OptimizationError reports why the minified output was rejected.
type OptimizationError struct {
	Stage string
	Err   error
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf("optimization failed at %s: %v", e.Stage, e.Err)
}

func (e *OptimizationError) Unwrap() error {
	return e.Err
}

// Optimize returns a minified copy of doc, or doc itself when optimization
// is disabled or had to fall back. Warnings explain any fallback.
// RemoveViewBox applies in every case.
func Optimize(doc *svgast.Document, opts Options) (*svgast.Document, []string) {
	if !opts.Enabled {
		if opts.RemoveViewBox {
			doc.Root.Remove("viewBox")
		}
		return doc, nil
	}
	minifier := opts.Minifier
	if minifier == nil {
		minifier = DefaultMinifier
	}

	out, err := optimize(doc, minifier, opts)
	if err != nil {
		if opts.RemoveViewBox {
			doc.Root.Remove("viewBox")
		}
		return doc, []string{err.Error() + ", using unoptimized markup"}
	}
	if opts.RemoveViewBox {
		out.Root.Remove("viewBox")
	}
	return out, nil
}

func optimize(doc *svgast.Document, minifier Minifier, opts Options) (*svgast.Document, error) {
	var bindings []svgast.Attr
	text := svgast.Serialize(doc, svgast.SerializeOptions{
		Bound: func(a svgast.Attr) string {
			bindings = append(bindings, a)
			return token(len(bindings) - 1)
		},
	})

	minified, err := minifier.Minify(text, MinifyConfig{Precision: opts.Precision, KeepComments: opts.KeepComments})
	if err != nil {
		return nil, &OptimizationError{Stage: "minify", Err: err}
	}

	out, err := svgast.Parse(minified, svgast.ParseOptions{})
	if err != nil {
		return nil, &OptimizationError{Stage: "reparse", Err: err}
	}

	if err := restoreBindings(out, bindings); err != nil {
		return nil, &OptimizationError{Stage: "restore bindings", Err: err}
	}
	if err := checkPreserved(doc, out, opts); err != nil {
		return nil, &OptimizationError{Stage: "verify", Err: err}
	}

	out.Warnings = append(append([]string(nil), doc.Warnings...), out.Warnings...)
	out.Reindex()
	return out, nil
}

func token(i int) string {
	return fmt.Sprintf("%s%d__", tokenPrefix, i)
}

// restoreBindings swaps every placeholder back for its binding. Each token
// must come back exactly once and untouched.
func restoreBindings(doc *svgast.Document, bindings []svgast.Attr) error {
	index := make(map[string]int, len(bindings))
	for i := range bindings {
		index[token(i)] = i
	}
	seen := make([]bool, len(bindings))

	var restoreErr error
	doc.Walk(func(el *svgast.Element) bool {
		for _, a := range el.Attrs {
			if !strings.Contains(a.Value, tokenPrefix) {
				continue
			}
			i, ok := index[strings.TrimSpace(a.Value)]
			if !ok {
				restoreErr = fmt.Errorf("placeholder altered in %s=%q", a.Name, a.Value)
				return false
			}
			if seen[i] {
				restoreErr = fmt.Errorf("placeholder for %s duplicated", bindings[i].Expr)
				return false
			}
			seen[i] = true
			orig := bindings[i]
			if a.Name != orig.Name {
				restoreErr = fmt.Errorf("binding %s moved from %s to %s", orig.Expr, orig.Name, a.Name)
				return false
			}
			el.Bind(a.Name, orig.Value, orig.Expr)
		}
		return restoreErr == nil
	})
	if restoreErr != nil {
		return restoreErr
	}

	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("binding %s on %s was removed", bindings[i].Expr, bindings[i].Name)
		}
	}
	return nil
}

// checkPreserved verifies the minifier kept what generated code relies on
func checkPreserved(before, after *svgast.Document, opts Options) error {
	if before.Root.Has("viewBox") && !after.Root.Has("viewBox") && !opts.RemoveViewBox {
		return fmt.Errorf("viewBox was removed")
	}

	for _, aria := range []string{"aria-labelledby", "aria-describedby"} {
		for _, id := range strings.Fields(before.Root.Get(aria)) {
			if hasID(before, id) && !hasID(after, id) {
				return fmt.Errorf("id %q referenced by %s was removed", id, aria)
			}
		}
	}
	return nil
}

func hasID(doc *svgast.Document, id string) bool {
	found := false
	doc.Walk(func(el *svgast.Element) bool {
		if el.Get("id") == id {
			found = true
		}
		return !found
	})
	return found
}
