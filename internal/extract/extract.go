// Package extract collects the colors and stroke widths of an SVG document.
//
// Extraction is read-only and walks the tree in document order, so prop
// names are assigned deterministically: color, color2, color3, ... and
// strokeWidth, strokeWidth2, ... in first-seen order.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
)

// Site is one place a value was found.
type Site struct {
	Element *svgast.Element
	Attr    string
}

// Color is a distinct normalized color and every site that uses it.
type Color struct {
	Original    string // First-seen spelling, trimmed
	Normalized  string
	Occurrences []Site
	PropName    string
}

// StrokeWidth is a distinct stroke-width value and every site that uses it.
type StrokeWidth struct {
	Original    string
	Normalized  string
	Occurrences []Site
	PropName    string
	NonScaling  bool // vector-effect="non-scaling-stroke" was injected for it
}

// Warning is a value that could not be extracted.
type Warning struct {
	Element string // Element path, e.g. "svg > g > path#3"
	Attr    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s]: %s", w.Element, w.Attr, w.Message)
}

// ColorOptions controls color extraction.
type ColorOptions struct {
	// IncludeSpecial also extracts none, transparent, currentColor and inherit
	IncludeSpecial bool
}

// Colors returns the distinct colors of the document in first-seen order.
// An inline style declaration wins over the attribute of the same name.
func Colors(doc *svgast.Document, opts ColorOptions) ([]*Color, []Warning) {
	var colors []*Color
	var warnings []Warning
	byValue := map[string]*Color{}

	doc.Walk(func(el *svgast.Element) bool {
		for _, attr := range svgast.ColorAttributes {
			raw, ok := literalPresentation(el, attr)
			if !ok {
				continue
			}
			normalized, err := NormalizeColor(raw)
			if err != nil {
				if !errors.Is(err, ErrPaintServer) {
					warnings = append(warnings, Warning{Element: el.Path(), Attr: attr, Message: err.Error()})
				}
				continue
			}
			if IsSpecialColor(normalized) && !opts.IncludeSpecial {
				continue
			}

			c, exists := byValue[normalized]
			if !exists {
				c = &Color{
					Original:   raw,
					Normalized: normalized,
					PropName:   PropName("color", len(colors)),
				}
				byValue[normalized] = c
				colors = append(colors, c)
			}
			c.Occurrences = append(c.Occurrences, Site{Element: el, Attr: attr})
		}
		return true
	})

	return colors, warnings
}

// StrokeWidths returns the distinct stroke widths in first-seen order.
func StrokeWidths(doc *svgast.Document) ([]*StrokeWidth, []Warning) {
	var widths []*StrokeWidth
	var warnings []Warning
	byValue := map[string]*StrokeWidth{}

	doc.Walk(func(el *svgast.Element) bool {
		raw, ok := literalPresentation(el, "stroke-width")
		if !ok {
			return true
		}
		normalized, err := NormalizeStrokeWidth(raw)
		if err != nil {
			warnings = append(warnings, Warning{Element: el.Path(), Attr: "stroke-width", Message: err.Error()})
			return true
		}

		sw, exists := byValue[normalized]
		if !exists {
			sw = &StrokeWidth{
				Original:   raw,
				Normalized: normalized,
				PropName:   PropName("strokeWidth", len(widths)),
			}
			byValue[normalized] = sw
			widths = append(widths, sw)
		}
		sw.Occurrences = append(sw.Occurrences, Site{Element: el, Attr: "stroke-width"})
		return true
	})

	return widths, warnings
}

// PropName returns the prop name for the i-th distinct value of a kind:
// base for the first, then base2, base3, ...
func PropName(base string, i int) string {
	if i == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, i+1)
}

// literalPresentation returns the trimmed literal value of a presentation
// property. Bound attributes already reference a prop and are skipped.
func literalPresentation(el *svgast.Element, name string) (string, bool) {
	if v, ok := el.StyleValue(name); ok {
		return strings.TrimSpace(v), true
	}
	a, ok := el.Attr(name)
	if !ok || a.Bound() {
		return "", false
	}
	return strings.TrimSpace(a.Value), true
}

// Values lists the original spelling of each color.
func Values(colors []*Color) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		out = append(out, c.Original)
	}
	return out
}
