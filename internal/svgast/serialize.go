package svgast

import (
	"strings"
)

// SerializeOptions controls how a document is written back as SVG text.
type SerializeOptions struct {
	// Bound renders the value of a bound attribute. Nil writes the literal
	// default value, which reproduces the original rendering.
	Bound func(Attr) string
	// Indent, when non-empty, pretty-prints one element per line.
	Indent string
}

// Serialize writes the document as SVG markup.
func Serialize(doc *Document, opts SerializeOptions) string {
	var b strings.Builder
	if doc.Root != nil {
		writeElement(&b, doc.Root, opts, 0)
	}
	return b.String()
}

func writeElement(b *strings.Builder, e *Element, opts SerializeOptions, depth int) {
	if opts.Indent != "" {
		b.WriteString(strings.Repeat(opts.Indent, depth))
	}
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		value := a.Value
		if a.Bound() && opts.Bound != nil {
			value = opts.Bound(a)
		}
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(EscapeAttr(value))
		b.WriteByte('"')
	}

	if len(e.Children) == 0 {
		b.WriteString("/>")
		if opts.Indent != "" {
			b.WriteByte('\n')
		}
		return
	}
	b.WriteByte('>')

	// Mixed content keeps its whitespace exactly
	pretty := opts.Indent != "" && !hasText(e)
	if pretty {
		b.WriteByte('\n')
	}
	inner := opts
	if !pretty {
		inner.Indent = ""
	}
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Element:
			writeElement(b, n, inner, depth+1)
		case *Text:
			if pretty && IsWhitespace(n) {
				continue
			}
			if n.CDATA {
				b.WriteString("<![CDATA[")
				b.WriteString(n.Data)
				b.WriteString("]]>")
			} else {
				b.WriteString(n.Data)
			}
		case *Comment:
			if pretty {
				b.WriteString(strings.Repeat(opts.Indent, depth+1))
			}
			b.WriteString("<!--")
			b.WriteString(n.Data)
			b.WriteString("-->")
			if pretty {
				b.WriteByte('\n')
			}
		}
	}
	if pretty {
		b.WriteString(strings.Repeat(opts.Indent, depth))
	}
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
	if opts.Indent != "" {
		b.WriteByte('\n')
	}
}

// hasText reports whether an element holds non-whitespace character data.
func hasText(e *Element) bool {
	for _, c := range e.Children {
		if t, ok := c.(*Text); ok && (t.CDATA || strings.TrimSpace(t.Data) != "") {
			return true
		}
	}
	return false
}

// EscapeAttr escapes a raw attribute value for a double-quoted context.
// Existing entities are left alone so verbatim source values round-trip.
func EscapeAttr(v string) string {
	if !strings.ContainsAny(v, "\"<") {
		return v
	}
	v = strings.ReplaceAll(v, `"`, "&quot;")
	return strings.ReplaceAll(v, "<", "&lt;")
}

// IsWhitespace reports whether a node is a whitespace-only text node.
func IsWhitespace(n Node) bool {
	t, ok := n.(*Text)
	return ok && !t.CDATA && strings.TrimSpace(t.Data) == ""
}
