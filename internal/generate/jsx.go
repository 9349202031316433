package generate

import (
	"html"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/yacobolo/svgcomp/internal/svgast"
)

const indentUnit = "  "

// jsxAttrNames covers attributes whose React name is not a plain camel-case
// of the SVG name
var jsxAttrNames = map[string]string{
	"class":       "className",
	"for":         "htmlFor",
	"tabindex":    "tabIndex",
	"xlink:href":  "xlinkHref",
	"xml:space":   "xmlSpace",
	"xml:lang":    "xmlLang",
	"xmlns:xlink": "xmlnsXlink",
}

// JSXAttrName maps an SVG attribute name to its React prop name.
func JSXAttrName(name string) string {
	if mapped, ok := jsxAttrNames[name]; ok {
		return mapped
	}
	if strings.HasPrefix(name, "aria-") || strings.HasPrefix(name, "data-") {
		return name
	}
	if i := strings.IndexByte(name, ':'); i > 0 {
		return name[:i] + strcase.ToCamel(name[i+1:])
	}
	if strings.Contains(name, "-") {
		return strcase.ToLowerCamel(name)
	}
	return name
}

// jsxWriter renders an element tree as JSX markup
type jsxWriter struct {
	b strings.Builder
	c *Component
}

func renderJSX(c *Component, depth int) string {
	w := &jsxWriter{c: c}
	w.element(c.Doc.Root, depth, true)
	return strings.TrimRight(w.b.String(), "\n")
}

func (w *jsxWriter) element(el *svgast.Element, depth int, root bool) {
	indent := strings.Repeat(indentUnit, depth)
	w.b.WriteString(indent)
	w.openTag(el, root)

	children := significantChildren(el)
	if len(children) == 0 {
		w.b.WriteString(" />\n")
		return
	}
	w.b.WriteByte('>')

	if holdsText(el) {
		w.inline(el)
		w.b.WriteString("</" + el.Name + ">\n")
		return
	}

	w.b.WriteByte('\n')
	for _, child := range children {
		switch n := child.(type) {
		case *svgast.Element:
			w.element(n, depth+1, false)
		case *svgast.Comment:
			w.b.WriteString(indent + indentUnit + "{/*" + strings.ReplaceAll(n.Data, "*/", "* /") + "*/}\n")
		}
	}
	w.b.WriteString(indent + "</" + el.Name + ">\n")
}

func (w *jsxWriter) openTag(el *svgast.Element, root bool) {
	w.b.WriteString("<" + el.Name)
	for _, a := range el.Attrs {
		w.b.WriteByte(' ')
		w.b.WriteString(JSXAttrName(a.Name))
		w.b.WriteByte('=')
		w.b.WriteString(jsxAttrValue(a))
	}
	if root {
		if w.c.Options.Ref {
			w.b.WriteString(" ref={ref}")
		}
		if w.c.Options.NativeProps {
			w.b.WriteString(" {...props}")
		}
	}
}

// inline writes mixed content on one line so whitespace stays significant
func (w *jsxWriter) inline(el *svgast.Element) {
	for _, child := range el.Children {
		switch n := child.(type) {
		case *svgast.Text:
			if el.Name == "style" {
				w.b.WriteString("{`" + escapeTemplate(n.Data) + "`}")
			} else {
				w.b.WriteString(jsxText(n.Data))
			}
		case *svgast.Element:
			w.openTag(n, false)
			if len(n.Children) == 0 {
				w.b.WriteString(" />")
				continue
			}
			w.b.WriteByte('>')
			w.inline(n)
			w.b.WriteString("</" + n.Name + ">")
		}
	}
}

func jsxAttrValue(a svgast.Attr) string {
	if a.Bound() {
		return "{" + a.Expr + "}"
	}
	if a.Name == "style" {
		return "{" + styleObject(a.Value) + "}"
	}
	return `"` + strings.ReplaceAll(a.Value, `"`, "&quot;") + `"`
}

// styleObject converts an inline style attribute into a React style object
func styleObject(style string) string {
	decls := svgast.ParseStyle(style)
	if len(decls) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, styleKey(d.Property)+": "+jsLiteral(d.Value))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// styleKey is the React style object key of a CSS property. Vendor prefixes
// other than -ms- start with a capital letter (WebkitTransform, msTransform).
func styleKey(property string) string {
	switch {
	case strings.HasPrefix(property, "--"):
		return jsString(property)
	case strings.HasPrefix(property, "-ms-"):
		return strcase.ToLowerCamel(property[1:])
	case strings.HasPrefix(property, "-"):
		key := strcase.ToLowerCamel(property[1:])
		if key == "" {
			return jsString(property)
		}
		return strings.ToUpper(key[:1]) + key[1:]
	}
	return strcase.ToLowerCamel(property)
}

func jsxText(s string) string {
	if strings.ContainsAny(s, "{}<>") {
		return "{" + jsString(html.UnescapeString(s)) + "}"
	}
	return s
}

func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "${", "\\${")
}

// significantChildren drops whitespace-only text between elements
func significantChildren(el *svgast.Element) []svgast.Node {
	var out []svgast.Node
	for _, c := range el.Children {
		if svgast.IsWhitespace(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func holdsText(el *svgast.Element) bool {
	for _, c := range el.Children {
		if t, ok := c.(*svgast.Text); ok && (t.CDATA || strings.TrimSpace(t.Data) != "") {
			return true
		}
	}
	return false
}

// jsLiteral renders a prop default or style value: plain numbers stay
// numeric, everything else becomes a string.
func jsLiteral(v string) string {
	v = strings.TrimSpace(v)
	if isPlainNumber(v) {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return jsString(v)
}

func isPlainNumber(v string) bool {
	if v == "" {
		return false
	}
	digits := 0
	dot := false
	for i, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && !dot:
			dot = true
		case r == '-' && i == 0:
		default:
			return false
		}
	}
	return digits > 0
}

func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}
