// Package transform rewrites a parsed SVG so color, stroke width and size
// become component props.
//
// Passes run in a fixed order and each is a no-op when its option is off:
//
//	dimensions -> colors -> stroke widths -> fill policy -> accessibility -> cleanup
//
// Transform edits the document in place. Running it again on its own output
// with the same options leaves the document unchanged.
package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yacobolo/svgcomp/internal/extract"
	"github.com/yacobolo/svgcomp/internal/svgast"
)

const defaultIDPrefix = "svg"

// pipeline carries state shared by the passes of one run
type pipeline struct {
	doc    *svgast.Document
	opts   Options
	result *Result
}

func (p *pipeline) warn(pass string, el *svgast.Element, format string, args ...any) {
	w := Warning{Pass: pass, Message: fmt.Sprintf(format, args...)}
	if el != nil {
		w.Element = el.Path()
	}
	p.result.Warnings = append(p.result.Warnings, w)
}

// Transform runs every enabled pass over doc.
func Transform(doc *svgast.Document, opts Options) *Result {
	if opts.IDPrefix == "" {
		opts.IDPrefix = defaultIDPrefix
	}
	p := &pipeline{
		doc:    doc,
		opts:   opts,
		result: &Result{Doc: doc},
	}

	colors, colorWarnings := extract.Colors(doc, extract.ColorOptions{IncludeSpecial: opts.SplitSpecialColors})
	widths, widthWarnings := extract.StrokeWidths(doc)
	p.result.Colors = colors
	p.result.StrokeWidths = widths
	for _, w := range colorWarnings {
		p.result.Warnings = append(p.result.Warnings, Warning{Pass: "colors", Element: w.Element, Message: w.Message})
	}
	for _, w := range widthWarnings {
		p.result.Warnings = append(p.result.Warnings, Warning{Pass: "strokeWidths", Element: w.Element, Message: w.Message})
	}

	p.dimensions()
	p.splitColors()
	p.splitStrokeWidths()
	p.fixedStrokeWidth()
	p.fillPolicy()
	p.accessibility()
	p.cleanup()

	doc.Reindex()
	p.result.Props = collectProps(doc)
	return p.result
}

// collectProps derives the prop list from the bindings left in the
// document: size first, then colors, then stroke widths, each ordered by
// name index. Deriving from the tree keeps the list identical when an
// already transformed document is transformed again.
func collectProps(doc *svgast.Document) []Prop {
	seen := map[string]bool{}
	var props []Prop
	add := func(a svgast.Attr, kind PropKind) {
		if !a.Bound() || seen[a.Expr] {
			return
		}
		seen[a.Expr] = true
		props = append(props, Prop{Name: a.Expr, Kind: kind, Default: a.Value})
	}

	for _, name := range []string{"width", "height"} {
		if a, ok := doc.Root.Attr(name); ok {
			add(a, PropSize)
		}
	}
	doc.Walk(func(el *svgast.Element) bool {
		for _, name := range svgast.ColorAttributes {
			if a, ok := el.Attr(name); ok {
				add(a, PropColor)
			}
		}
		return true
	})
	doc.Walk(func(el *svgast.Element) bool {
		if a, ok := el.Attr("stroke-width"); ok {
			add(a, PropStrokeWidth)
		}
		return true
	})

	rank := map[PropKind]int{PropSize: 0, PropColor: 1, PropStrokeWidth: 2}
	sort.SliceStable(props, func(i, j int) bool {
		if rank[props[i].Kind] != rank[props[j].Kind] {
			return rank[props[i].Kind] < rank[props[j].Kind]
		}
		return nameIndex(props[i].Name) < nameIndex(props[j].Name)
	})
	return props
}

// nameIndex returns the numeric suffix of a generated prop name, treating
// an unsuffixed name as 1.
func nameIndex(name string) int {
	end := len(name)
	for end > 0 && name[end-1] >= '0' && name[end-1] <= '9' {
		end--
	}
	if end == len(name) {
		return 1
	}
	n, err := strconv.Atoi(name[end:])
	if err != nil {
		return 1
	}
	return n
}

// effectivePaint returns the value of a paint property on the element or
// its nearest ancestor. Bound values report their literal default.
func effectivePaint(el *svgast.Element, name string) (svgast.Attr, bool) {
	if v, ok := el.StyleValue(name); ok {
		return svgast.Attr{Name: name, Value: v}, true
	}
	if a, ok := el.Attr(name); ok {
		return a, true
	}
	return el.Inherited(name)
}

func isNone(a svgast.Attr) bool {
	return !a.Bound() && strings.EqualFold(strings.TrimSpace(a.Value), "none")
}
