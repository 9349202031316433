package generate

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

const (
	fallbackName = "SvgComponent"
	digitPrefix  = "Svg"
)

// FormatComponentName pascal-cases prefix, base and suffix as one name.
// The result is always a valid JavaScript identifier: a leading digit gets
// the "Svg" prefix and a name with no usable characters becomes
// "SvgComponent".
func FormatComponentName(base, prefix, suffix string) string {
	var parts []string
	for _, p := range []string{prefix, base, suffix} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	joined := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, strings.Join(parts, "-"))

	name := identifierChars(strcase.ToCamel(joined))
	if name == "" {
		return fallbackName
	}
	if name[0] >= '0' && name[0] <= '9' {
		return digitPrefix + name
	}
	name = strings.ToUpper(name[:1]) + name[1:]
	return name
}

// BaseName returns the component base name for an SVG file path
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func identifierChars(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || r == '$' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
