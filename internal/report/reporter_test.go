package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, verbose: true}

	r.PrintResults(Summary{
		Items: []Item{
			{Source: "icons/arrow.svg", Component: "Arrow", Filename: "out/Arrow.tsx", Props: []string{"size", "color"}},
			{Source: "icons/logo.svg", Component: "Logo", Filename: "out/Logo.tsx", Warnings: []string{"splitColors: <style> element is left untouched"}},
		},
		Failures:  []Failure{{Source: "icons/broken.svg", Err: errors.New("convert broken: parse: unexpected EOF")}},
		IndexFile: "out/index.ts",
	})

	want := "✓ icons/arrow.svg -> out/Arrow.tsx\n" +
		"  props: size, color\n" +
		"✓ icons/logo.svg -> out/Logo.tsx\n" +
		"  warning: splitColors: <style> element is left untouched\n" +
		"✗ icons/broken.svg: convert broken: parse: unexpected EOF\n" +
		"wrote index out/index.ts\n"
	require.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name:    "clean run",
			summary: Summary{Items: []Item{{}, {}}, OutputDir: "src/icons"},
			want:    "\n2 components generated\nOutput: src/icons\n",
		},
		{
			name:    "single component with warning",
			summary: Summary{Items: []Item{{Warnings: []string{"w"}}}},
			want:    "\n1 component generated (0 failures, 1 warning)\n",
		},
		{
			name:    "dry run with failure",
			summary: Summary{Failures: []Failure{{Source: "a.svg", Err: errors.New("boom")}}, DryRun: true},
			want:    "\n0 components generated (dry run) (1 failure, 0 warnings)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintSummary(tt.summary)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintColors(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintColors("logo.svg", []string{"#ff0000", "blue"})
	require.Equal(t, "logo.svg (2 colors)\n  #ff0000\n  blue\n", buf.String())
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf}
	r.PrintValidation("ok.svg", nil)
	r.PrintValidation("bad.svg", []string{"parse error at offset 12: unclosed element <g>"})
	require.Equal(t, "✓ ok.svg\n✗ bad.svg\n  parse error at offset 12: unclosed element <g>\n", buf.String())
}

func TestSwatchHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#f00", "#ff0000", true},
		{"#F00A", "#ff0000", true},
		{"#336699", "#336699", true},
		{"#33669980", "#336699", true},
		{"rebeccapurple", "#663399", true},
		{"currentcolor", "", false},
		{"rgb(0,0,0)", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := swatchHex(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderStyleWithoutColors(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
	assert.Equal(t, "", Swatch("#fff", false))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 file", pluralizeCount(1, "file", "files"))
	assert.Equal(t, "0 files", pluralizeCount(0, "file", "files"))
}
