package svgast

import "strings"

// AttributeCategory groups SVG attributes by how the pipeline treats them.
type AttributeCategory string

// Attribute categories
const (
	CategoryPaint         AttributeCategory = "Paint"         // Color-valued presentation attributes
	CategoryStroke        AttributeCategory = "Stroke"        // Stroke geometry
	CategoryPresentation  AttributeCategory = "Presentation"  // Other presentation attributes
	CategoryGeometry      AttributeCategory = "Geometry"      // Shape coordinates and sizes
	CategoryAccessibility AttributeCategory = "Accessibility" // role, aria-*
	CategoryNamespace     AttributeCategory = "Namespace"     // xmlns, xmlns:*
	CategoryEditor        AttributeCategory = "Editor"        // Design tool export metadata
	CategoryOther         AttributeCategory = "Other"
)

// attributeCategories maps SVG attribute names to categories
var attributeCategories = map[string]AttributeCategory{
	// Paint
	"fill":           CategoryPaint,
	"stroke":         CategoryPaint,
	"stop-color":     CategoryPaint,
	"flood-color":    CategoryPaint,
	"lighting-color": CategoryPaint,
	"color":          CategoryPaint,

	// Stroke
	"stroke-width":      CategoryStroke,
	"stroke-linecap":    CategoryStroke,
	"stroke-linejoin":   CategoryStroke,
	"stroke-miterlimit": CategoryStroke,
	"stroke-dasharray":  CategoryStroke,
	"stroke-dashoffset": CategoryStroke,
	"stroke-opacity":    CategoryStroke,
	"vector-effect":     CategoryStroke,

	// Presentation
	"fill-opacity":    CategoryPresentation,
	"fill-rule":       CategoryPresentation,
	"clip-rule":       CategoryPresentation,
	"opacity":         CategoryPresentation,
	"stop-opacity":    CategoryPresentation,
	"flood-opacity":   CategoryPresentation,
	"visibility":      CategoryPresentation,
	"display":         CategoryPresentation,
	"font-family":     CategoryPresentation,
	"font-size":       CategoryPresentation,
	"font-style":      CategoryPresentation,
	"font-weight":     CategoryPresentation,
	"text-anchor":     CategoryPresentation,
	"shape-rendering": CategoryPresentation,

	// Geometry
	"x":       CategoryGeometry,
	"y":       CategoryGeometry,
	"x1":      CategoryGeometry,
	"x2":      CategoryGeometry,
	"y1":      CategoryGeometry,
	"y2":      CategoryGeometry,
	"cx":      CategoryGeometry,
	"cy":      CategoryGeometry,
	"r":       CategoryGeometry,
	"rx":      CategoryGeometry,
	"ry":      CategoryGeometry,
	"d":       CategoryGeometry,
	"points":  CategoryGeometry,
	"width":   CategoryGeometry,
	"height":  CategoryGeometry,
	"viewBox": CategoryGeometry,

	// Accessibility
	"role":  CategoryAccessibility,
	"title": CategoryAccessibility,

	// Editor
	"data-name":         CategoryEditor,
	"enable-background": CategoryEditor,
}

// inheritedAttributes are presentation attributes whose computed value
// flows from ancestors to descendants.
var inheritedAttributes = map[string]bool{
	"fill":              true,
	"fill-opacity":      true,
	"fill-rule":         true,
	"clip-rule":         true,
	"stroke":            true,
	"stroke-width":      true,
	"stroke-linecap":    true,
	"stroke-linejoin":   true,
	"stroke-miterlimit": true,
	"stroke-dasharray":  true,
	"stroke-dashoffset": true,
	"stroke-opacity":    true,
	"color":             true,
	"visibility":        true,
	"font-family":       true,
	"font-size":         true,
	"font-style":        true,
	"font-weight":       true,
	"text-anchor":       true,
	"shape-rendering":   true,
}

// editorPrefixes are namespace prefixes written by design tools
var editorPrefixes = []string{"sodipodi", "inkscape", "sketch", "i", "figma", "serif", "graph", "x", "a"}

// ColorAttributes are the attributes that accept a paint or color value.
var ColorAttributes = []string{"fill", "stroke", "stop-color", "flood-color", "lighting-color"}

// shapeElements are the elements that render fill and stroke
var shapeElements = map[string]bool{
	"path":     true,
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
	"text":     true,
}

// nonRenderedElements hold content that is only referenced, never painted
// in place.
var nonRenderedElements = map[string]bool{
	"defs":           true,
	"clipPath":       true,
	"mask":           true,
	"symbol":         true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
}

// CategorizeAttribute determines the category of an SVG attribute
func CategorizeAttribute(name string) AttributeCategory {
	// Check exact match
	if cat, exists := attributeCategories[name]; exists {
		return cat
	}

	if name == "xmlns" || strings.HasPrefix(name, "xmlns:") {
		if prefix := strings.TrimPrefix(name, "xmlns:"); prefix != name && isEditorPrefix(prefix) {
			return CategoryEditor
		}
		return CategoryNamespace
	}

	if strings.HasPrefix(name, "aria-") {
		return CategoryAccessibility
	}

	if i := strings.IndexByte(name, ':'); i > 0 && isEditorPrefix(name[:i]) {
		return CategoryEditor
	}

	return CategoryOther
}

// IsEditorElement reports whether an element is design-tool metadata.
func IsEditorElement(name string) bool {
	if name == "metadata" {
		return true
	}
	if i := strings.IndexByte(name, ':'); i > 0 {
		return isEditorPrefix(name[:i])
	}
	return false
}

func isEditorPrefix(prefix string) bool {
	for _, p := range editorPrefixes {
		if p == prefix {
			return true
		}
	}
	return false
}

// IsInherited reports whether a presentation attribute inherits.
func IsInherited(name string) bool {
	return inheritedAttributes[name]
}

// IsShape reports whether an element paints fill and stroke itself.
func IsShape(name string) bool {
	return shapeElements[name]
}

// IsNonRendered reports whether an element's subtree is only referenced.
func IsNonRendered(name string) bool {
	return nonRenderedElements[name]
}

// InNonRendered reports whether the element or an ancestor is a
// non-rendered container such as <defs> or <clipPath>.
func (e *Element) InNonRendered() bool {
	for cur := e; cur != nil; cur = cur.Parent {
		if IsNonRendered(cur.Name) {
			return true
		}
	}
	return false
}

// Inherited returns the nearest ancestor attribute for an inherited
// presentation property, checking inline style first on each ancestor.
func (e *Element) Inherited(name string) (Attr, bool) {
	for p := e.Parent; p != nil; p = p.Parent {
		if v, ok := p.StyleValue(name); ok {
			return Attr{Name: name, Value: v}, true
		}
		if a, ok := p.Attr(name); ok {
			return a, true
		}
	}
	return Attr{}, false
}
