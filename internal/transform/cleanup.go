package transform

import (
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
)

// cleanup removes comments, editor metadata and redundant attributes.
// Editor data goes first so redundancy checks see the final attributes.
func (p *pipeline) cleanup() {
	if p.opts.RemoveComments {
		p.result.Features |= FeatureRemoveComments
		removeComments(p.doc.Root)
	}
	if p.opts.RemoveEditorData {
		p.result.Features |= FeatureRemoveEditorData
		removeEditorData(p.doc.Root)
	}
	if p.opts.RemoveDuplicates {
		p.result.Features |= FeatureRemoveDuplicates
		p.removeRedundant()
	}
}

func removeComments(el *svgast.Element) {
	kept := el.Children[:0]
	for _, c := range el.Children {
		switch n := c.(type) {
		case *svgast.Comment:
			continue
		case *svgast.Element:
			removeComments(n)
		}
		kept = append(kept, c)
	}
	el.Children = kept
}

func removeEditorData(el *svgast.Element) {
	attrs := el.Attrs[:0]
	for _, a := range el.Attrs {
		if svgast.CategorizeAttribute(a.Name) == svgast.CategoryEditor {
			continue
		}
		attrs = append(attrs, a)
	}
	el.Attrs = attrs

	kept := el.Children[:0]
	for _, c := range el.Children {
		if child, ok := c.(*svgast.Element); ok {
			if svgast.IsEditorElement(child.Name) {
				continue
			}
			removeEditorData(child)
		}
		kept = append(kept, c)
	}
	el.Children = kept
}

// removeRedundant drops nested namespace declarations repeated from the
// root and inherited presentation attributes equal to the nearest ancestor
// value. Bound attributes compare by prop, literals by value.
func (p *pipeline) removeRedundant() {
	root := p.doc.Root
	p.doc.Walk(func(el *svgast.Element) bool {
		if el == root {
			return true
		}
		// Referenced content inherits from its use site, not its parent
		if svgast.IsNonRendered(el.Name) {
			return false
		}

		var attrs []svgast.Attr
		for _, a := range el.Attrs {
			if redundant(el, root, a) {
				continue
			}
			attrs = append(attrs, a)
		}
		el.Attrs = attrs
		return true
	})
}

func redundant(el, root *svgast.Element, a svgast.Attr) bool {
	if a.Name == "xmlns" || strings.HasPrefix(a.Name, "xmlns:") {
		r, ok := root.Attr(a.Name)
		return ok && r.Value == a.Value
	}
	if !svgast.IsInherited(a.Name) {
		return false
	}
	// An inline style declaration overrides the attribute already
	if _, ok := el.StyleValue(a.Name); ok {
		return false
	}
	inherited, ok := el.Inherited(a.Name)
	if !ok {
		return false
	}
	if a.Bound() || inherited.Bound() {
		return a.Expr == inherited.Expr
	}
	return strings.TrimSpace(a.Value) == strings.TrimSpace(inherited.Value)
}
