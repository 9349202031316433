// Package svgast holds the SVG document tree used by every conversion stage.
//
// A Document is created per conversion and owned by it. Nodes are never
// shared between documents; Clone produces an independent deep copy.
package svgast

import (
	"strconv"
	"strings"
)

// Node is an element, text or comment in the document tree.
type Node interface {
	node()
}

// Attr is a single attribute. A non-empty Expr marks the attribute as bound
// to a component prop; Value then holds the literal the prop defaults to.
type Attr struct {
	Name  string
	Value string
	Expr  string
}

// Bound reports whether the attribute references a component prop.
func (a Attr) Bound() bool {
	return a.Expr != ""
}

// Element is an SVG element with ordered, uniquely named attributes.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
	Parent   *Element
	Index    int // Document order, assigned by the parser
}

// Text is character data. CDATA sections keep their flag so they
// serialize back as CDATA.
type Text struct {
	Data  string
	CDATA bool
}

// Comment is an XML comment without its delimiters.
type Comment struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}
func (*Comment) node() {}

// Document is a parsed SVG with a single <svg> root.
type Document struct {
	Root     *Element
	Warnings []string // Non-fatal parser findings (duplicate attributes, etc.)
}

// Attr returns the attribute with the given name.
func (e *Element) Attr(name string) (Attr, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Get returns the literal value of an attribute, or "" when absent.
func (e *Element) Get(name string) string {
	a, _ := e.Attr(name)
	return a.Value
}

// Has reports whether the attribute is present.
func (e *Element) Has(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Set assigns a literal value, replacing an existing attribute in place so
// attribute order is preserved. Any binding is cleared.
func (e *Element) Set(name, value string) {
	e.put(Attr{Name: name, Value: value})
}

// Bind marks the attribute as bound to expr, keeping value as the default.
func (e *Element) Bind(name, value, expr string) {
	e.put(Attr{Name: name, Value: value, Expr: expr})
}

func (e *Element) put(attr Attr) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == attr.Name {
			e.Attrs[i] = attr
			return
		}
	}
	e.Attrs = append(e.Attrs, attr)
}

// Remove deletes an attribute and reports whether it existed.
func (e *Element) Remove(name string) bool {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Elements returns the element children, skipping text and comments.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Text returns the concatenated character data of direct text children.
func (e *Element) Text() string {
	var b strings.Builder
	for _, c := range e.Children {
		if t, ok := c.(*Text); ok {
			b.WriteString(t.Data)
		}
	}
	return b.String()
}

// Append adds a child and sets its parent link.
func (e *Element) Append(n Node) {
	if el, ok := n.(*Element); ok {
		el.Parent = e
	}
	e.Children = append(e.Children, n)
}

// Ancestors returns the parent chain, nearest first.
func (e *Element) Ancestors() []*Element {
	var out []*Element
	for p := e.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// Walk visits every element in pre-order, depth-first document order.
// Returning false from fn skips the element's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			el.Walk(fn)
		}
	}
}

// Walk visits every element of the document in document order.
func (d *Document) Walk(fn func(*Element) bool) {
	if d.Root != nil {
		d.Root.Walk(fn)
	}
}

// Reindex reassigns document-order indexes after structural edits.
func (d *Document) Reindex() {
	i := 0
	d.Walk(func(e *Element) bool {
		e.Index = i
		i++
		return true
	})
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Warnings: append([]string(nil), d.Warnings...)}
	if d.Root != nil {
		out.Root = cloneElement(d.Root, nil)
	}
	return out
}

func cloneElement(e *Element, parent *Element) *Element {
	c := &Element{
		Name:   e.Name,
		Attrs:  append([]Attr(nil), e.Attrs...),
		Parent: parent,
		Index:  e.Index,
	}
	for _, child := range e.Children {
		switch n := child.(type) {
		case *Element:
			c.Children = append(c.Children, cloneElement(n, c))
		case *Text:
			t := *n
			c.Children = append(c.Children, &t)
		case *Comment:
			cm := *n
			c.Children = append(c.Children, &cm)
		}
	}
	return c
}

// Path describes an element for warnings, e.g. "svg > g > path#3".
func (e *Element) Path() string {
	parts := []string{}
	for cur := e; cur != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " > ") + "#" + strconv.Itoa(e.Index)
}
