package generate

import (
	"fmt"
	"strings"
)

type reactGenerator struct{}

func (reactGenerator) Framework() Framework { return React }

func (reactGenerator) Extension(opts Options) string {
	if opts.TypeScript {
		return ".tsx"
	}
	return ".jsx"
}

func (reactGenerator) Dependencies(Options) []string {
	return []string{"react"}
}

func (reactGenerator) Validate(opts Options) error {
	if opts.CompositionAPI || opts.ScriptSetup {
		return &GenerationError{Framework: React, Msg: "compositionApi and scriptSetup only apply to vue"}
	}
	return nil
}

func (reactGenerator) Imports(c *Component) string {
	lines := []string{"import * as React from 'react';"}

	if c.Options.TypeScript {
		var types []string
		if c.Options.Ref {
			types = append(types, "Ref")
		}
		if c.Options.NativeProps {
			types = append(types, "SVGProps")
		}
		if len(types) > 0 {
			lines = append(lines, fmt.Sprintf("import type { %s } from 'react';", strings.Join(types, ", ")))
		}
	}

	var wrappers []string
	if c.Options.Ref {
		wrappers = append(wrappers, "forwardRef")
	}
	if c.Options.Memo {
		wrappers = append(wrappers, "memo")
	}
	if len(wrappers) > 0 {
		lines = append(lines, fmt.Sprintf("import { %s } from 'react';", strings.Join(wrappers, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (reactGenerator) PropsDecl(c *Component) string {
	if !c.Options.TypeScript {
		return ""
	}
	name := c.Name + "Props"

	if len(c.Props) == 0 {
		if !c.Options.Ref && !c.Options.NativeProps {
			return ""
		}
		if c.Options.NativeProps {
			return fmt.Sprintf("type %s = SVGProps<SVGSVGElement>;", name)
		}
		return fmt.Sprintf("type %s = Record<string, never>;", name)
	}

	var b strings.Builder
	b.WriteString("interface " + name)
	if c.Options.NativeProps {
		b.WriteString(" extends SVGProps<SVGSVGElement>")
	}
	b.WriteString(" {\n")
	for _, p := range c.Props {
		fmt.Fprintf(&b, "%s%s?: %s;\n", indentUnit, p.Name, propTS(p))
	}
	b.WriteString("}")
	return b.String()
}

// Wrapper emits the component function plus forwardRef/memo wrapping
func (reactGenerator) Wrapper(c *Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const %s = (%s) => (\n", c.Name, reactParams(c))
	b.WriteString(renderJSX(c, 1))
	b.WriteString("\n);")

	if c.Options.Ref {
		fmt.Fprintf(&b, "\n\nconst ForwardRef = forwardRef(%s);", c.Name)
	}
	if c.Options.Memo {
		inner := c.Name
		if c.Options.Ref {
			inner = "ForwardRef"
		}
		fmt.Fprintf(&b, "\nconst Memo = memo(%s);", inner)
	}
	return b.String()
}

func (reactGenerator) Exports(c *Component) string {
	exported := c.Name
	switch {
	case c.Options.Memo:
		exported = "Memo"
	case c.Options.Ref:
		exported = "ForwardRef"
	}

	var lines []string
	if c.Options.NamedExport {
		if exported == c.Name {
			lines = append(lines, fmt.Sprintf("export { %s };", c.Name))
		} else {
			lines = append(lines, fmt.Sprintf("export { %s as %s };", exported, c.Name))
		}
	}
	lines = append(lines, fmt.Sprintf("export default %s;", exported))
	return strings.Join(lines, "\n")
}

func (reactGenerator) Assemble(_ *Component, script string) string {
	return script + "\n"
}

// reactParams builds the parameter list: destructured props with defaults,
// then the forwarded ref.
func reactParams(c *Component) string {
	ts := c.Options.TypeScript

	var fields []string
	for _, p := range c.Props {
		fields = append(fields, fmt.Sprintf("%s = %s", p.Name, jsLiteral(p.Default)))
	}
	if c.Options.NativeProps {
		fields = append(fields, "...props")
	}

	var params []string
	switch {
	case len(fields) > 0:
		param := "{ " + strings.Join(fields, ", ") + " }"
		if ts {
			param += ": " + c.Name + "Props"
		}
		params = append(params, param)
	case c.Options.Ref:
		param := "_props"
		if ts {
			param += ": " + c.Name + "Props"
		}
		params = append(params, param)
	}

	if c.Options.Ref {
		if ts {
			params = append(params, "ref: Ref<SVGSVGElement>")
		} else {
			params = append(params, "ref")
		}
	}
	return strings.Join(params, ", ")
}
