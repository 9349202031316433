package generate

import (
	"fmt"
	"strings"

	"github.com/yacobolo/svgcomp/internal/svgast"
	"github.com/yacobolo/svgcomp/internal/transform"
)

type vueGenerator struct{}

func (vueGenerator) Framework() Framework { return Vue }

func (vueGenerator) Extension(Options) string { return ".vue" }

func (vueGenerator) Dependencies(Options) []string {
	return []string{"vue"}
}

func (vueGenerator) Validate(opts Options) error {
	switch {
	case opts.Memo:
		return &GenerationError{Framework: Vue, Msg: "memo is not supported"}
	case opts.Ref:
		return &GenerationError{Framework: Vue, Msg: "ref forwarding is not supported"}
	case opts.ScriptSetup && !opts.CompositionAPI:
		return &GenerationError{Framework: Vue, Msg: "scriptSetup requires compositionApi"}
	}
	return nil
}

func (vueGenerator) Imports(c *Component) string {
	if c.Options.ScriptSetup {
		return ""
	}
	names := []string{"defineComponent"}
	if c.Options.CompositionAPI && len(c.Props) > 0 {
		names = append(names, "toRefs")
	}
	lines := []string{fmt.Sprintf("import { %s } from 'vue';", strings.Join(names, ", "))}
	if c.Options.TypeScript && hasKind(c.Props, transform.PropSize, transform.PropStrokeWidth) {
		lines = append(lines, "import type { PropType } from 'vue';")
	}
	return strings.Join(lines, "\n")
}

func (vueGenerator) PropsDecl(c *Component) string {
	if len(c.Props) == 0 {
		return ""
	}
	var b strings.Builder

	switch {
	case c.Options.ScriptSetup && c.Options.TypeScript:
		fmt.Fprintf(&b, "interface %sProps {\n", c.Name)
		for _, p := range c.Props {
			fmt.Fprintf(&b, "%s%s?: %s;\n", indentUnit, p.Name, propTS(p))
		}
		b.WriteString("}")

	case c.Options.ScriptSetup:
		// defineProps cannot reference local bindings, so the object is
		// written inline by Wrapper
		return ""

	default:
		b.WriteString("const componentProps = ")
		b.WriteString(vuePropsObject(c, 0))
		b.WriteString(";")
	}
	return b.String()
}

func (vueGenerator) Wrapper(c *Component) string {
	var lines []string

	if c.Options.ScriptSetup {
		if !c.Options.NativeProps {
			lines = append(lines, "defineOptions({ inheritAttrs: false });")
		}
		switch {
		case len(c.Props) == 0:
		case c.Options.TypeScript:
			var b strings.Builder
			fmt.Fprintf(&b, "withDefaults(defineProps<%sProps>(), {\n", c.Name)
			for _, p := range c.Props {
				fmt.Fprintf(&b, "%s%s: %s,\n", indentUnit, p.Name, jsLiteral(p.Default))
			}
			b.WriteString("});")
			lines = append(lines, b.String())
		default:
			lines = append(lines, "defineProps("+vuePropsObject(c, 0)+");")
		}
		return strings.Join(lines, "\n\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "const %s = defineComponent({\n", c.Name)
	fmt.Fprintf(&b, "%sname: %s,\n", indentUnit, jsString(c.Name))
	if !c.Options.NativeProps {
		fmt.Fprintf(&b, "%sinheritAttrs: false,\n", indentUnit)
	}
	if len(c.Props) > 0 {
		fmt.Fprintf(&b, "%sprops: componentProps,\n", indentUnit)
		if c.Options.CompositionAPI {
			fmt.Fprintf(&b, "%ssetup(props) {\n", indentUnit)
			fmt.Fprintf(&b, "%sreturn { ...toRefs(props) };\n", strings.Repeat(indentUnit, 2))
			fmt.Fprintf(&b, "%s},\n", indentUnit)
		}
	}
	b.WriteString("});")
	return b.String()
}

func (vueGenerator) Exports(c *Component) string {
	if c.Options.ScriptSetup {
		return ""
	}
	return fmt.Sprintf("export default %s;", c.Name)
}

func (vueGenerator) Assemble(c *Component, script string) string {
	var b strings.Builder
	b.WriteString("<template>\n")
	w := &templateWriter{c: c}
	w.element(c.Doc.Root, 1)
	b.WriteString(w.b.String())
	b.WriteString("</template>\n")

	if script == "" {
		return b.String()
	}

	b.WriteString("\n<script")
	if c.Options.ScriptSetup {
		b.WriteString(" setup")
	}
	if c.Options.TypeScript {
		b.WriteString(` lang="ts"`)
	}
	b.WriteString(">\n")
	b.WriteString(script)
	b.WriteString("\n</script>\n")
	return b.String()
}

// vuePropsObject writes runtime prop declarations with types and defaults
func vuePropsObject(c *Component, depth int) string {
	indent := strings.Repeat(indentUnit, depth)
	var b strings.Builder
	b.WriteString("{\n")
	for _, p := range c.Props {
		fmt.Fprintf(&b, "%s%s%s: { type: %s, default: %s },\n",
			indent, indentUnit, p.Name, vuePropType(p, c.Options.TypeScript), jsLiteral(p.Default))
	}
	b.WriteString(indent + "}")
	return b.String()
}

func vuePropType(p transform.Prop, ts bool) string {
	if p.Kind == transform.PropColor {
		return "String"
	}
	if ts {
		return "[Number, String] as PropType<number | string>"
	}
	return "[Number, String]"
}

func hasKind(props []transform.Prop, kinds ...transform.PropKind) bool {
	for _, p := range props {
		for _, k := range kinds {
			if p.Kind == k {
				return true
			}
		}
	}
	return false
}

// templateWriter renders an element tree as Vue template markup
type templateWriter struct {
	b strings.Builder
	c *Component
}

func (w *templateWriter) element(el *svgast.Element, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	w.b.WriteString(indent)
	w.openTag(el)

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
			w.element(n, depth+1)
		case *svgast.Comment:
			w.b.WriteString(indent + indentUnit + "<!--" + n.Data + "-->\n")
		}
	}
	w.b.WriteString(indent + "</" + el.Name + ">\n")
}

func (w *templateWriter) openTag(el *svgast.Element) {
	if el.Name == "style" {
		w.c.Warn("<style> inside a Vue template is ignored by the compiler; move it to the SFC style block")
	}
	w.b.WriteString("<" + el.Name)
	for _, a := range el.Attrs {
		if a.Bound() {
			fmt.Fprintf(&w.b, ` :%s="%s"`, a.Name, a.Expr)
			continue
		}
		fmt.Fprintf(&w.b, ` %s="%s"`, a.Name, svgast.EscapeAttr(a.Value))
	}
	// Text that looks like an interpolation must stay literal
	if strings.Contains(el.Text(), "{{") {
		w.b.WriteString(" v-pre")
	}
}

func (w *templateWriter) inline(el *svgast.Element) {
	for _, child := range el.Children {
		switch n := child.(type) {
		case *svgast.Text:
			if n.CDATA {
				w.b.WriteString("<![CDATA[" + n.Data + "]]>")
			} else {
				w.b.WriteString(n.Data)
			}
		case *svgast.Element:
			w.openTag(n)
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
