package transform

import (
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
)

const nonScalingStroke = "non-scaling-stroke"

// splitColors binds every extracted color site to its prop
func (p *pipeline) splitColors() {
	if !p.opts.SplitColors {
		return
	}
	p.result.Features |= FeatureSplitColors

	for _, c := range p.result.Colors {
		for _, site := range c.Occurrences {
			bindSite(site.Element, site.Attr, c.PropName)
		}
	}

	// Class selectors in <style> can paint elements too; those are left as is
	p.doc.Walk(func(el *svgast.Element) bool {
		if el.Name == "style" {
			p.warn("colors", el, "colors inside <style> are not split into props")
		}
		return true
	})
}

// splitStrokeWidths binds every extracted stroke-width site to its prop
func (p *pipeline) splitStrokeWidths() {
	if !p.opts.SplitStrokeWidths {
		return
	}
	p.result.Features |= FeatureSplitStrokeWidths

	for _, sw := range p.result.StrokeWidths {
		for _, site := range sw.Occurrences {
			bindSite(site.Element, site.Attr, sw.PropName)
		}
	}
}

// bindSite hoists an inline style declaration into the attribute, then
// binds the attribute to expr with the literal value as its default.
func bindSite(el *svgast.Element, attr, expr string) {
	value, fromStyle, ok := el.Presentation(attr)
	if !ok {
		return
	}
	if fromStyle {
		el.RemoveStyle(attr)
	}
	el.Bind(attr, strings.TrimSpace(value), expr)
}

// fixedStrokeWidth keeps stroke widths constant under scaling on every
// shape that is actually stroked.
func (p *pipeline) fixedStrokeWidth() {
	if !p.opts.FixedStrokeWidth {
		return
	}
	p.result.Features |= FeatureFixedStrokeWidth

	p.doc.Walk(func(el *svgast.Element) bool {
		if !svgast.IsShape(el.Name) {
			return true
		}
		stroke, ok := effectivePaint(el, "stroke")
		if !ok || isNone(stroke) {
			return true
		}
		if v, _, has := el.Presentation("vector-effect"); has {
			if strings.TrimSpace(v) != nonScalingStroke {
				p.warn("strokeWidths", el, "vector-effect %q left in place", v)
			}
			return true
		}
		el.Set("vector-effect", nonScalingStroke)
		return true
	})

	for _, sw := range p.result.StrokeWidths {
		for _, site := range sw.Occurrences {
			if hasNonScaling(site.Element) {
				sw.NonScaling = true
				break
			}
		}
	}
}

func hasNonScaling(el *svgast.Element) bool {
	found := false
	el.Walk(func(e *svgast.Element) bool {
		if v, _, ok := e.Presentation("vector-effect"); ok && strings.TrimSpace(v) == nonScalingStroke {
			found = true
		}
		return !found
	})
	return found
}
