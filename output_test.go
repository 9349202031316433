package svgcomp

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBatch() *BatchResult {
	return &BatchResult{
		Results: []*ComponentResult{
			{
				Name:          "arrow",
				Source:        "icons/arrow.svg",
				ComponentName: "Arrow",
				Filename:      "Arrow.tsx",
				Dependencies:  []string{"react"},
				Props: []Prop{
					{Name: "size", Kind: "size", Default: "24"},
					{Name: "color", Kind: "color", Default: "#000"},
				},
				Features: []string{"dimensions", "splitColors"},
				Warnings: []string{"colors: svg > path#2: unparsable color value \"#12\" left as is"},
			},
		},
		Errors: []*ItemError{
			{Index: 1, Name: "broken", Source: "icons/broken.svg", Err: errors.New("convert broken: parse: parse error at offset 5: unclosed element <g>")},
		},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "default", expected: OutputText},
		{name: "text", formatFlag: "text", expected: OutputText},
		{name: "summary", formatFlag: "summary", expected: OutputSummary},
		{name: "json", formatFlag: "json", expected: OutputJSON},
		{name: "quiet wins over json", formatFlag: "json", quiet: true, expected: OutputSummary},
		{name: "unknown falls back", formatFlag: "yaml", expected: OutputText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleBatch(), OutputConfig{OutputDir: "src/icons", IndexFile: "src/icons/index.ts"})
	require.NoError(t, err)

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, JSONSummary{Components: 1, Failures: 1, Warnings: 1}, output.Summary)
	assert.Equal(t, "src/icons/index.ts", output.Index)

	require.Len(t, output.Components, 1)
	c := output.Components[0]
	assert.Equal(t, "icons/arrow.svg", c.Source)
	assert.Equal(t, "Arrow", c.Component)
	assert.Equal(t, filepath.Join("src/icons", "Arrow.tsx"), c.File)
	assert.Equal(t, []JSONProp{
		{Name: "size", Kind: "size", Default: "24"},
		{Name: "color", Kind: "color", Default: "#000"},
	}, c.Props)

	require.Len(t, output.Errors, 1)
	assert.Equal(t, "icons/broken.svg", output.Errors[0].Source)
	assert.Contains(t, output.Errors[0].Message, "unclosed element <g>")
}

func TestJSONOutputSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &BatchResult{}, OutputConfig{}))

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Contains(t, output, "version")
	assert.Contains(t, output, "timestamp")
	assert.Contains(t, output, "summary")
	assert.Contains(t, output, "components")
	assert.Contains(t, output, "errors")
	assert.NotContains(t, output, "index")

	// Empty lists stay lists
	assert.Equal(t, []interface{}{}, output["components"])
	assert.Equal(t, []interface{}{}, output["errors"])

	summary := output["summary"].(map[string]interface{})
	assert.Contains(t, summary, "components")
	assert.Contains(t, summary, "failures")
	assert.Contains(t, summary, "warnings")
	assert.Contains(t, summary, "dry_run")
}

func TestWriteOutput_AllFormats(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		contains []string
		excludes []string
	}{
		{
			format:   OutputText,
			contains: []string{"icons/arrow.svg -> Arrow.tsx", "warning: colors:", "icons/broken.svg: convert broken", "1 component generated (1 failure, 1 warning)"},
		},
		{
			format:   OutputSummary,
			contains: []string{"1 component generated (1 failure, 1 warning)"},
			excludes: []string{"icons/arrow.svg"},
		},
		{
			format:   OutputJSON,
			contains: []string{`"component": "Arrow"`, `"failures": 1`},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, sampleBatch(), tt.format, OutputConfig{NoColor: true}))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
