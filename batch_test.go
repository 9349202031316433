package svgcomp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBatchIsolation(t *testing.T) {
	items := []BatchItem{
		{Name: "first", Content: scenarioSVG, Source: "icons/first.svg"},
		{Name: "second", Content: `<svg viewBox="0 0 4 4"><rect width="4" height="4" fill="blue"/></svg>`},
		{Name: "broken", Content: `<svg><g></svg>`, Source: "icons/broken.svg"},
		{Name: "fourth", Content: `<svg viewBox="0 0 4 4"><circle r="2"/></svg>`},
	}

	batch := ConvertBatch(items, BatchOptions{Options: scenarioOptions(), Concurrency: 2})

	require.Len(t, batch.Results, 3)
	require.Len(t, batch.Errors, 1)

	assert.Equal(t, []string{"First", "Second", "Fourth"}, componentNames(batch.Results))
	assert.Equal(t, "icons/first.svg", batch.Results[0].Source)

	failure := batch.Errors[0]
	assert.Equal(t, 2, failure.Index)
	assert.Equal(t, "broken", failure.Name)
	assert.Equal(t, "icons/broken.svg", failure.Source)
	assert.Contains(t, failure.Error(), "broken: convert broken: parse: ")

	var parseErr *ParseError
	assert.ErrorAs(t, failure, &parseErr)
}

func TestConvertBatchNameCollisions(t *testing.T) {
	items := []BatchItem{
		{Name: "arrow-left", Content: scenarioSVG},
		{Name: "arrow_left", Content: scenarioSVG},
		{Name: "ArrowLeft", Content: scenarioSVG},
		{Name: "arrow-left2", Content: scenarioSVG},
	}

	batch := ConvertBatch(items, BatchOptions{Options: scenarioOptions()})
	require.Empty(t, batch.Errors)

	assert.Equal(t, []string{"ArrowLeft", "ArrowLeft2", "ArrowLeft3", "ArrowLeft22"}, componentNames(batch.Results))
	assert.Equal(t, "ArrowLeft2.tsx", batch.Results[1].Filename)
	assert.Contains(t, batch.Results[2].Code, "const ArrowLeft3 = ")
}

func TestConvertBatchPrefixSuffix(t *testing.T) {
	opts := scenarioOptions()
	opts.Prefix = "svg"
	opts.Suffix = "icon"

	batch := ConvertBatch([]BatchItem{{Name: "home", Content: scenarioSVG}}, BatchOptions{Options: opts})
	require.Len(t, batch.Results, 1)
	assert.Equal(t, "SvgHomeIcon", batch.Results[0].ComponentName)
}

func TestConvertBatchMatchesConvert(t *testing.T) {
	items := make([]BatchItem, 20)
	for i := range items {
		items[i] = BatchItem{
			Name:    fmt.Sprintf("icon-%d", i),
			Content: fmt.Sprintf(`<svg viewBox="0 0 8 8"><path fill="#%06x" d="M0 0h8"/></svg>`, i*4096),
		}
	}

	opts := scenarioOptions()
	batch := ConvertBatch(items, BatchOptions{Options: opts, Concurrency: 4})
	require.Empty(t, batch.Errors)
	require.Len(t, batch.Results, len(items))

	for i, item := range items {
		single := opts
		single.Name = item.Name
		want, err := Convert(item.Content, single)
		require.NoError(t, err)
		assert.Equal(t, want.Code, batch.Results[i].Code, item.Name)
	}
}

func TestConvertBatchEmpty(t *testing.T) {
	batch := ConvertBatch(nil, BatchOptions{})
	assert.Empty(t, batch.Results)
	assert.Empty(t, batch.Errors)
}

func TestGenerateIndexFile(t *testing.T) {
	results := []*ComponentResult{
		{ComponentName: "ArrowLeft", Filename: "ArrowLeft.tsx", NamedExport: true},
		{ComponentName: "Home", Filename: "Home.tsx", NamedExport: true},
	}

	assert.Equal(t,
		"export { ArrowLeft } from './ArrowLeft';\nexport { Home } from './Home';\n",
		GenerateIndexFile(results, IndexOptions{ExportType: ExportNamed}))
	assert.Equal(t,
		"export { default as ArrowLeft } from './ArrowLeft';\nexport { default as Home } from './Home';\n",
		GenerateIndexFile(results, IndexOptions{ExportType: ExportDefault}))
}

func TestGenerateIndexFileMatchesComponentExports(t *testing.T) {
	tests := []struct {
		name        string
		namedExport bool
		wantIndex   string
		wantExport  string
	}{
		{
			name:        "named export",
			namedExport: true,
			wantIndex:   "export { Foo } from './Foo';\n",
			wantExport:  "export { Foo };",
		},
		{
			name:       "default export only",
			wantIndex:  "export { default as Foo } from './Foo';\n",
			wantExport: "export default Foo;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Name = "foo"
			opts.TypeScript = true
			opts.NamedExport = tt.namedExport

			res, err := Convert(`<svg viewBox="0 0 24 24"><path d="M1 1"/></svg>`, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.namedExport, res.NamedExport)
			assert.Contains(t, res.Code, tt.wantExport)

			for _, opts := range []IndexOptions{{}, {ExportType: ExportNamed}} {
				assert.Equal(t, tt.wantIndex, GenerateIndexFile([]*ComponentResult{res}, opts))
			}
		})
	}
}

func TestDefaultOptionsExportByName(t *testing.T) {
	opts := DefaultOptions()
	opts.Name = "foo"
	opts.TypeScript = true

	res, err := Convert(`<svg viewBox="0 0 24 24"><path d="M1 1"/></svg>`, opts)
	require.NoError(t, err)
	assert.Contains(t, res.Code, "export { Foo };")
	assert.Contains(t, res.Code, "export default Foo;")
	assert.Equal(t, "export { Foo } from './Foo';\n", GenerateIndexFile([]*ComponentResult{res}, IndexOptions{}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		src          string
		wantValid    bool
		wantErrors   int
		wantWarnings int
	}{
		{name: "valid", src: scenarioSVG, wantValid: true},
		{name: "duplicate attribute", src: `<svg><path fill="red" fill="blue"/></svg>`, wantValid: true, wantWarnings: 1},
		{name: "malformed color", src: `<svg><path fill="#12345" d="M0 0"/></svg>`, wantValid: true, wantWarnings: 1},
		{name: "unclosed", src: `<svg><g></svg>`, wantErrors: 1},
		{name: "not svg", src: `<html/>`, wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.src)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Len(t, res.Errors, tt.wantErrors)
			assert.Len(t, res.Warnings, tt.wantWarnings)
		})
	}
}

func TestExtractColorsMalformed(t *testing.T) {
	_, err := ExtractColors(`<svg`)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func componentNames(results []*ComponentResult) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.ComponentName
	}
	return names
}
