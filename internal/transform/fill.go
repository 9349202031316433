package transform

import (
	"strings"

	"github.com/yacobolo/svgcomp/internal/extract"
	"github.com/yacobolo/svgcomp/internal/svgast"
)

// fillPolicy gives unpainted shapes an explicit fill.
//
// A shape qualifies when neither it nor any ancestor sets fill or stroke,
// by attribute or inline style. Shapes inside defs, clipPath, mask, symbol,
// marker and pattern inherit from their use site and are left alone.
func (p *pipeline) fillPolicy() {
	policy := p.opts.FillPolicy
	switch policy {
	case FillOff, "":
		return
	case FillCurrentColor, FillNone:
	default:
		p.warn("fillPolicy", nil, "unknown fill policy %q", policy)
		return
	}
	p.result.Features |= FeatureFillPolicy

	var painted []*svgast.Element
	p.doc.Walk(func(el *svgast.Element) bool {
		if svgast.IsNonRendered(el.Name) {
			return false
		}
		if !svgast.IsShape(el.Name) || hasPaint(el) {
			return true
		}
		el.Set("fill", string(policy))
		painted = append(painted, el)
		return true
	})

	// With special colors split, injected values become props as well so
	// a second run finds nothing left to bind
	if len(painted) > 0 && p.opts.SplitColors && p.opts.SplitSpecialColors {
		p.bindInjected(strings.ToLower(string(policy)), string(policy), painted)
	}
}

func (p *pipeline) bindInjected(normalized, value string, els []*svgast.Element) {
	var color *extract.Color
	for _, c := range p.result.Colors {
		if c.Normalized == normalized {
			color = c
			break
		}
	}
	if color == nil {
		color = &extract.Color{
			Original:   value,
			Normalized: normalized,
			PropName:   extract.PropName("color", len(p.result.Colors)),
		}
		p.result.Colors = append(p.result.Colors, color)
	}
	for _, el := range els {
		el.Bind("fill", value, color.PropName)
		color.Occurrences = append(color.Occurrences, extract.Site{Element: el, Attr: "fill"})
	}
}

func hasPaint(el *svgast.Element) bool {
	for cur := el; cur != nil; cur = cur.Parent {
		for _, name := range []string{"fill", "stroke"} {
			if _, _, ok := cur.Presentation(name); ok {
				return true
			}
		}
	}
	return false
}
