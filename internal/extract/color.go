package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	// ErrPaintServer marks url(...) references, which are never extracted
	ErrPaintServer = errors.New("paint server reference")

	hexColorPattern   = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	strokeWidthFormat = regexp.MustCompile(`^\+?(\d+\.?\d*|\.\d+)([e][+-]?\d+)?(px|em|rem|ex|pt|pc|cm|mm|in|%)?$`)
)

// specialColors are keywords that carry no literal color
var specialColors = map[string]bool{
	"none":         true,
	"transparent":  true,
	"currentcolor": true,
	"inherit":      true,
}

// IsSpecialColor reports whether a normalized value is none, transparent,
// currentColor or inherit.
func IsSpecialColor(normalized string) bool {
	return specialColors[normalized]
}

// NormalizeColor returns the comparison form of a paint value: trimmed,
// lower-cased, with whitespace inside functional notation collapsed. It
// fails for values that are not a recognizable color.
func NormalizeColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", errors.New("empty color value")
	}

	switch {
	case specialColors[v]:
		return v, nil

	case strings.HasPrefix(v, "url("):
		return "", ErrPaintServer

	case strings.HasPrefix(v, "#"):
		if !hexColorPattern.MatchString(v) {
			return "", fmt.Errorf("invalid hex color %q", value)
		}
		return v, nil

	case strings.ContainsRune(v, '('):
		return normalizeFunctional(v, value)

	default:
		if _, ok := colornames.Map[v]; !ok {
			return "", fmt.Errorf("unknown color name %q", value)
		}
		return v, nil
	}
}

func normalizeFunctional(v, original string) (string, error) {
	open := strings.IndexByte(v, '(')
	fn := strings.TrimSpace(v[:open])
	switch fn {
	case "rgb", "rgba", "hsl", "hsla":
	default:
		return "", fmt.Errorf("unsupported color function %q", original)
	}

	depth := 0
	for _, r := range v[open:] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", fmt.Errorf("unbalanced parentheses in %q", original)
			}
		}
	}
	if depth != 0 || !strings.HasSuffix(v, ")") {
		return "", fmt.Errorf("unbalanced parentheses in %q", original)
	}

	args := strings.Join(strings.Fields(v[open+1:len(v)-1]), " ")
	if args == "" {
		return "", fmt.Errorf("empty color function %q", original)
	}
	args = strings.ReplaceAll(args, " ,", ",")
	args = strings.ReplaceAll(args, ", ", ",")
	return fn + "(" + args + ")", nil
}

// NormalizeStrokeWidth validates a stroke-width value: a non-negative number
// with an optional unit.
func NormalizeStrokeWidth(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if !strokeWidthFormat.MatchString(v) {
		return "", fmt.Errorf("invalid stroke-width %q", value)
	}
	return strings.TrimPrefix(v, "+"), nil
}
