package svgast

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one property: value pair of an inline style attribute.
type Declaration struct {
	Property string
	Value    string
}

// ParseStyle reads the declarations of a style attribute in source order.
// Later declarations of the same property replace earlier ones, matching
// the cascade.
func ParseStyle(style string) []Declaration {
	lexer := css.NewLexer(parse.NewInputString(style))

	var decls []Declaration
	var currentProp string
	var currentVal []string
	var sawColon bool

	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			decls = setDeclaration(decls, currentProp, strings.TrimSpace(strings.Join(currentVal, "")))
		}
		currentProp = ""
		currentVal = nil
		sawColon = false
	}

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken {
			flush()
			break
		}

		switch {
		case tt == css.SemicolonToken:
			// End of declaration
			flush()
		case currentProp == "" && (tt == css.WhitespaceToken || tt == css.CommentToken):
			continue
		case currentProp == "":
			// Start of property name
			currentProp = strings.ToLower(string(text))
		case !sawColon:
			// Separator between property and value
			sawColon = tt == css.ColonToken
		default:
			currentVal = append(currentVal, string(text))
		}
	}

	return decls
}

func setDeclaration(decls []Declaration, prop, value string) []Declaration {
	for i := range decls {
		if decls[i].Property == prop {
			decls[i].Value = value
			return decls
		}
	}
	return append(decls, Declaration{Property: prop, Value: value})
}

// FormatStyle writes declarations back as a style attribute value.
func FormatStyle(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+":"+d.Value)
	}
	return strings.Join(parts, ";")
}

// StyleValue returns the value of a property in the element's inline style.
func (e *Element) StyleValue(prop string) (string, bool) {
	style, ok := e.Attr("style")
	if !ok || style.Bound() {
		return "", false
	}
	for _, d := range ParseStyle(style.Value) {
		if d.Property == prop {
			return d.Value, true
		}
	}
	return "", false
}

// RemoveStyle deletes a property from the inline style, dropping the style
// attribute once it is empty.
func (e *Element) RemoveStyle(prop string) bool {
	style, ok := e.Attr("style")
	if !ok || style.Bound() {
		return false
	}
	decls := ParseStyle(style.Value)
	kept := decls[:0]
	removed := false
	for _, d := range decls {
		if d.Property == prop {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	if !removed {
		return false
	}
	if len(kept) == 0 {
		e.Remove("style")
	} else {
		e.Set("style", FormatStyle(kept))
	}
	return true
}

// Presentation returns the effective value of a presentation property set
// on the element itself. An inline style declaration wins over the
// attribute.
func (e *Element) Presentation(name string) (value string, fromStyle bool, ok bool) {
	if v, found := e.StyleValue(name); found {
		return v, true, true
	}
	if a, found := e.Attr(name); found {
		return a.Value, false, true
	}
	return "", false, false
}
