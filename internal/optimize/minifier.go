package optimize

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
)

const (
	svgMimetype = "image/svg+xml"
	cssMimetype = "text/css"
)

// MinifyConfig is passed through to the minifier
type MinifyConfig struct {
	Precision    int // Significant digits for numbers, 0 keeps all
	KeepComments bool
}

// Minifier shrinks SVG markup
type Minifier interface {
	Minify(text string, cfg MinifyConfig) (string, error)
}

// MinifierFunc adapts a function to the Minifier interface
type MinifierFunc func(text string, cfg MinifyConfig) (string, error)

// Minify calls f
func (f MinifierFunc) Minify(text string, cfg MinifyConfig) (string, error) {
	return f(text, cfg)
}

// DefaultMinifier minifies with tdewolff/minify
var DefaultMinifier Minifier = MinifierFunc(MinifySVG)

// MinifySVG runs the tdewolff SVG minifier. Inline styles and <style>
// elements go through its CSS minifier.
func MinifySVG(text string, cfg MinifyConfig) (string, error) {
	m := minify.New()
	m.AddFunc(cssMimetype, css.Minify)
	m.Add(svgMimetype, &svg.Minifier{
		Precision:    cfg.Precision,
		KeepComments: cfg.KeepComments,
	})

	out, err := m.String(svgMimetype, text)
	if err != nil {
		return "", fmt.Errorf("minify svg: %w", err)
	}
	return out, nil
}
