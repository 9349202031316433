package transform

import (
	"strconv"
	"strings"
)

const (
	sizeProp    = "size"
	defaultSize = "24"
)

// dimensions applies the root width/height policy
func (p *pipeline) dimensions() {
	root := p.doc.Root

	switch p.opts.Dimensions {
	case DimensionsRemove:
		p.result.Features |= FeatureDimensions
		root.Remove("width")
		root.Remove("height")

	case DimensionsSize:
		p.result.Features |= FeatureDimensions
		p.bindSize()

	case DimensionsKeep, "":
	default:
		p.warn("dimensions", nil, "unknown dimensions mode %q, keeping width and height", p.opts.Dimensions)
	}
}

func (p *pipeline) bindSize() {
	root := p.doc.Root
	width, hasWidth := root.Attr("width")
	height, hasHeight := root.Attr("height")
	if (hasWidth && width.Bound()) || (hasHeight && height.Bound()) {
		return
	}

	// Keep the aspect ratio once both sides follow a single prop
	if !root.Has("viewBox") {
		w, wok := pixelLength(width.Value)
		h, hok := pixelLength(height.Value)
		if hasWidth && hasHeight && wok && hok {
			root.Set("viewBox", "0 0 "+w+" "+h)
		} else if hasWidth || hasHeight {
			p.warn("dimensions", root, "no viewBox, content may not scale with size")
		}
	}

	def := defaultSize
	switch {
	case hasWidth && strings.TrimSpace(width.Value) != "":
		def = strings.TrimSpace(width.Value)
	case hasHeight && strings.TrimSpace(height.Value) != "":
		def = strings.TrimSpace(height.Value)
	default:
		if w, ok := viewBoxWidth(root.Get("viewBox")); ok {
			def = w
		}
	}

	root.Bind("width", def, sizeProp)
	root.Bind("height", def, sizeProp)
}

// pixelLength returns the number of a unitless or px length
func pixelLength(v string) (string, bool) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if _, err := strconv.ParseFloat(v, 64); err != nil || v == "" {
		return "", false
	}
	return v, true
}

func viewBoxWidth(viewBox string) (string, bool) {
	fields := strings.FieldsFunc(viewBox, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return "", false
	}
	if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
		return "", false
	}
	return fields[2], true
}
