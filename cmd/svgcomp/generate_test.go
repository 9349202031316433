package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/svgcomp"
)

const (
	arrowSVG  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M5 12h14" stroke="#333"/></svg>`
	circleSVG = `<svg viewBox="0 0 10 10"><circle cx="5" cy="5" r="4" fill="red"/></svg>`
)

// writeIcons creates an icon tree in a temp directory and returns its root
func writeIcons(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// executeCommand runs the CLI with fresh config and flag state and returns
// what it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since the command tree is shared between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestCollectInputs(t *testing.T) {
	dir := writeIcons(t, map[string]string{
		"arrow.svg":         arrowSVG,
		"nested/circle.svg": circleSVG,
		"readme.md":         "# icons",
	})

	tests := []struct {
		name      string
		inputs    []string
		recursive bool
		want      []string
	}{
		{
			name:      "directory recursive",
			inputs:    []string{dir},
			recursive: true,
			want:      []string{"arrow.svg", "nested/circle.svg"},
		},
		{
			name:   "directory flat",
			inputs: []string{dir},
			want:   []string{"arrow.svg"},
		},
		{
			name:   "single file",
			inputs: []string{filepath.Join(dir, "nested", "circle.svg")},
			want:   []string{"nested/circle.svg"},
		},
		{
			name:   "glob pattern",
			inputs: []string{filepath.Join(dir, "**", "*.svg")},
			want:   []string{"arrow.svg", "nested/circle.svg"},
		},
		{
			name:      "duplicates removed",
			inputs:    []string{filepath.Join(dir, "arrow.svg"), dir},
			recursive: true,
			want:      []string{"arrow.svg", "nested/circle.svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := collectInputs(tt.inputs, tt.recursive)
			require.NoError(t, err)

			var rel []string
			for _, f := range files {
				r, err := filepath.Rel(dir, f)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.Equal(t, tt.want, rel)
		})
	}
}

func TestCollectInputs_MissingPath(t *testing.T) {
	_, err := collectInputs([]string{filepath.Join(t.TempDir(), "missing")}, true)
	require.Error(t, err)

	var ioErr *svgcomp.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "stat", ioErr.Op)
}

func testGenerateConfig(t *testing.T, inputs []string, outDir string) generateConfig {
	t.Helper()
	resetKoanf()
	config, err := buildGenerateConfig(inputs)
	require.NoError(t, err)
	config.OutDir = outDir
	return config
}

func TestGenerateFiles(t *testing.T) {
	dir := writeIcons(t, map[string]string{
		"arrow-left.svg": arrowSVG,
		"circle.svg":     circleSVG,
		"broken.svg":     `<svg><path></svg>`,
	})
	out := filepath.Join(t.TempDir(), "icons")

	batch, indexFile, err := generateFiles(testGenerateConfig(t, []string{dir}, out))
	require.NoError(t, err)

	require.Len(t, batch.Results, 2)
	require.Len(t, batch.Errors, 1)
	assert.Equal(t, filepath.Join(dir, "broken.svg"), batch.Errors[0].Source)

	assert.FileExists(t, filepath.Join(out, "ArrowLeft.jsx"))
	assert.FileExists(t, filepath.Join(out, "Circle.jsx"))
	assert.NoFileExists(t, filepath.Join(out, "Broken.jsx"))

	assert.Equal(t, filepath.Join(out, "index.js"), indexFile)
	index, err := os.ReadFile(indexFile)
	require.NoError(t, err)
	assert.Equal(t,
		"export { ArrowLeft } from './ArrowLeft';\nexport { Circle } from './Circle';\n",
		string(index))

	// Every name the index imports is exported by its component file
	for file, name := range map[string]string{"ArrowLeft.jsx": "ArrowLeft", "Circle.jsx": "Circle"} {
		code, err := os.ReadFile(filepath.Join(out, file))
		require.NoError(t, err)
		assert.Contains(t, string(code), "export { "+name+" };", file)
	}
}

func TestGenerateFiles_DefaultExportOnly(t *testing.T) {
	dir := writeIcons(t, map[string]string{"arrow.svg": arrowSVG})
	out := t.TempDir()

	config := testGenerateConfig(t, []string{dir}, out)
	config.Batch.NamedExport = false

	_, indexFile, err := generateFiles(config)
	require.NoError(t, err)

	code, err := os.ReadFile(filepath.Join(out, "Arrow.jsx"))
	require.NoError(t, err)
	assert.NotContains(t, string(code), "export { Arrow }")

	index, err := os.ReadFile(indexFile)
	require.NoError(t, err)
	assert.Equal(t, "export { default as Arrow } from './Arrow';\n", string(index))
}

func TestGenerateFiles_ErrorOrder(t *testing.T) {
	dir := writeIcons(t, map[string]string{
		"a.svg": `<?xml version="1.0" encoding="x-no-such-charset"?>` + arrowSVG,
		"b.svg": `<svg><path></svg>`,
		"c.svg": circleSVG,
		"d.svg": `<svg>`,
	})

	batch, _, err := generateFiles(testGenerateConfig(t, []string{dir}, t.TempDir()))
	require.NoError(t, err)
	require.Len(t, batch.Results, 1)
	require.Len(t, batch.Errors, 3)

	tests := []struct {
		index int
		file  string
	}{
		{0, "a.svg"},
		{1, "b.svg"},
		{3, "d.svg"},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.index, batch.Errors[i].Index)
		assert.Equal(t, filepath.Join(dir, tt.file), batch.Errors[i].Source)
	}

	var ioErr *svgcomp.IoError
	require.ErrorAs(t, batch.Errors[0], &ioErr)
	assert.Equal(t, "decode", ioErr.Op)
}

func TestGenerateFiles_DryRun(t *testing.T) {
	dir := writeIcons(t, map[string]string{"arrow.svg": arrowSVG})
	out := filepath.Join(t.TempDir(), "icons")

	config := testGenerateConfig(t, []string{dir}, out)
	config.DryRun = true

	batch, indexFile, err := generateFiles(config)
	require.NoError(t, err)
	require.Len(t, batch.Results, 1)
	assert.Equal(t, filepath.Join(out, "index.js"), indexFile)
	assert.NoDirExists(t, out)
}

func TestGenerateFiles_NoInputs(t *testing.T) {
	dir := writeIcons(t, map[string]string{"readme.md": "nothing here"})

	_, _, err := generateFiles(testGenerateConfig(t, []string{dir}, t.TempDir()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SVG files found")
}

func TestGenerateFiles_VueIndex(t *testing.T) {
	dir := writeIcons(t, map[string]string{"arrow.svg": arrowSVG})
	out := t.TempDir()

	config := testGenerateConfig(t, []string{dir}, out)
	config.Batch.Framework = svgcomp.Vue
	config.Batch.TypeScript = true

	_, indexFile, err := generateFiles(config)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "Arrow.vue"))

	index, err := os.ReadFile(indexFile)
	require.NoError(t, err)
	assert.Equal(t, "export { default as Arrow } from './Arrow.vue';\n", string(index))
}

func TestGenerateCommand(t *testing.T) {
	dir := writeIcons(t, map[string]string{
		"arrow.svg":  arrowSVG,
		"circle.svg": circleSVG,
	})
	out := filepath.Join(t.TempDir(), "icons")

	output, err := executeCommand(t,
		"generate", dir,
		"--out-dir", out,
		"--typescript",
		"--config", filepath.Join(dir, "none.yaml"),
		"--no-color",
	)
	require.NoError(t, err)

	assert.Contains(t, output, "2 components generated")
	assert.FileExists(t, filepath.Join(out, "Arrow.tsx"))
	assert.FileExists(t, filepath.Join(out, "Circle.tsx"))
	assert.FileExists(t, filepath.Join(out, "index.ts"))
}
