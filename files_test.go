package svgcomp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestListSVGFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.svg":                     "<svg/>",
		"a.svg":                     "<svg/>",
		"readme.md":                 "# icons",
		"nested/c.svg":              "<svg/>",
		"nested/deep/d.SVG":         "<svg/>",
		"node_modules/pkg/icon.svg": "<svg/>",
	})

	tests := []struct {
		name      string
		recursive bool
		want      []string
	}{
		{
			name: "top level only",
			want: []string{"a.svg", "b.svg"},
		},
		{
			name:      "recursive",
			recursive: true,
			want:      []string{"a.svg", "b.svg", "nested/c.svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ListSVGFiles(dir, tt.recursive)
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

func TestGlobSVGFilesStats(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.svg":                  "<svg/>",
		"node_modules/x/b.svg":   "<svg/>",
		"other/not-an-icon.json": "{}",
	})

	files, stats, err := GlobSVGFiles([]string{
		filepath.Join(dir, "**", "*"),
		filepath.Join(dir, "*.svg"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.svg")}, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 2, FilesListed: 1, FilesSkipped: 1}, stats)
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "utf-8",
			content: []byte(`<svg><title>Café</title></svg>`),
			want:    `<svg><title>Café</title></svg>`,
		},
		{
			name:    "utf-8 with bom",
			content: append([]byte("\xef\xbb\xbf"), []byte(`<svg/>`)...),
			want:    `<svg/>`,
		},
		{
			name:    "declared latin-1",
			content: []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><title>Caf\xe9</title></svg>"),
			want:    `<?xml version="1.0" encoding="ISO-8859-1"?><svg><title>Café</title></svg>`,
		},
		{
			name:    "utf-16 with bom",
			content: []byte{0xff, 0xfe, '<', 0, 's', 0, 'v', 0, 'g', 0, '/', 0, '>', 0},
			want:    `<svg/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "icon.svg")
			require.NoError(t, os.WriteFile(path, tt.content, 0o644))

			got, err := ReadText(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTextMissing(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.svg"))
	require.Error(t, err)

	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "components", "icons", "Arrow.tsx")

	require.NoError(t, WriteText(path, "export {};\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export {};\n", string(data))

	// A file where a directory is needed
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	err = WriteText(filepath.Join(blocker, "X.tsx"), "")
	var ioErr *IoError
	assert.ErrorAs(t, err, &ioErr)
}
