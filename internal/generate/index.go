package generate

import (
	"fmt"
	"path"
	"strings"
)

// ExportType selects how the index file re-exports components
type ExportType string

// Export types
const (
	ExportNamed   ExportType = "named"
	ExportDefault ExportType = "default"
)

// IndexEntry is one generated component listed in an index file
type IndexEntry struct {
	ComponentName string
	Filename      string
	DefaultOnly   bool // The module has no named export
}

// IndexOptions configures GenerateIndexFile
type IndexOptions struct {
	ExportType ExportType
}

// scriptExtensions are dropped from import paths; bundlers resolve them
var scriptExtensions = map[string]bool{
	".tsx": true,
	".jsx": true,
	".ts":  true,
	".js":  true,
}

// GenerateIndexFile builds a barrel module with one export per entry, in
// entry order. Vue single-file components and DefaultOnly entries only have
// a default export, so they always re-export it by name.
func GenerateIndexFile(entries []IndexEntry, opts IndexOptions) string {
	var b strings.Builder
	for _, e := range entries {
		file := path.Base(strings.ReplaceAll(e.Filename, `\`, "/"))
		ext := path.Ext(file)

		switch {
		case ext == ".vue", e.DefaultOnly, opts.ExportType == ExportDefault:
			fmt.Fprintf(&b, "export { default as %s } from './%s';\n", e.ComponentName, importPath(file, ext))
		default:
			fmt.Fprintf(&b, "export { %s } from './%s';\n", e.ComponentName, importPath(file, ext))
		}
	}
	return b.String()
}

func importPath(file, ext string) string {
	if scriptExtensions[ext] {
		return strings.TrimSuffix(file, ext)
	}
	return file
}

// IndexFilename is the barrel file name for a set of generated files
func IndexFilename(typeScript bool) string {
	if typeScript {
		return "index.ts"
	}
	return "index.js"
}
