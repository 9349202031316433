package transform

import (
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
)

// accessibility wires role and aria attributes to the root's title and
// desc children. Attributes the author already set are never overwritten.
func (p *pipeline) accessibility() {
	if !p.opts.Accessibility {
		return
	}
	p.result.Features |= FeatureAccessibility
	root := p.doc.Root

	if !root.Has("role") {
		root.Set("role", "img")
	}

	p.label(root, "title", "aria-labelledby")
	p.label(root, "desc", "aria-describedby")
}

// label gives the first direct child named tag an id and points aria at it
func (p *pipeline) label(root *svgast.Element, tag, aria string) {
	var child *svgast.Element
	for _, el := range root.Elements() {
		if el.Name == tag {
			child = el
			break
		}
	}

	if child == nil {
		if ref := root.Get(aria); ref != "" && !idExists(p.doc, ref) {
			p.warn("accessibility", root, "%s references missing id %q", aria, ref)
		}
		return
	}

	id := strings.TrimSpace(child.Get("id"))
	if id == "" {
		id = p.opts.IDPrefix + "-" + tag
		child.Set("id", id)
	}
	if !root.Has(aria) {
		root.Set(aria, id)
	}
}

func idExists(doc *svgast.Document, id string) bool {
	found := false
	doc.Walk(func(el *svgast.Element) bool {
		if el.Get("id") == id {
			found = true
		}
		return !found
	})
	return found
}
