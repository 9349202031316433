package svgcomp

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/net/html/charset"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesListed     int // Files returned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// encoding="..." in the XML declaration
	xmlEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*\bencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from conversion
//
// Two-layer filtering:
// 1. Pattern check (fast): skip anything under node_modules
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" {
			return true
		}
	}

	// Absolute paths (like /tmp/...) are not affected by the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ListSVGFiles returns the .svg files in dir, sorted. With recursive set,
// subdirectories are searched too.
func ListSVGFiles(dir string, recursive bool) ([]string, error) {
	pattern := "*.svg"
	if recursive {
		pattern = "**/*.svg"
	}
	files, _, err := GlobSVGFiles([]string{filepath.Join(dir, pattern)})
	return files, err
}

// GlobSVGFiles expands doublestar patterns to a sorted, deduplicated file
// list and tracks statistics.
func GlobSVGFiles(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, &IoError{Op: "glob", Path: pattern, Err: err}
		}

		for _, match := range matches {
			if seen[match] || !strings.EqualFold(filepath.Ext(match), ".svg") {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesListed++
		}
	}

	sort.Strings(allFiles)
	return allFiles, stats, nil
}

// ReadText reads a file and decodes it to UTF-8. The encoding comes from
// a byte order mark or the XML declaration; undeclared non-UTF-8 content
// is read as windows-1252.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IoError{Op: "read", Path: path, Err: err}
	}
	text, err := decodeText(data)
	if err != nil {
		return "", &IoError{Op: "decode", Path: path, Err: err}
	}
	return text, nil
}

func decodeText(data []byte) (string, error) {
	var (
		r   io.Reader
		err error
	)
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if m := xmlEncoding.FindSubmatch(bytes.TrimPrefix(head, []byte("\xef\xbb\xbf"))); m != nil {
		r, err = charset.NewReaderLabel(string(m[1]), bytes.NewReader(data))
	} else {
		r, err = charset.NewReader(bytes.NewReader(data), "image/svg+xml")
	}
	if err != nil {
		return "", err
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

// WriteText writes content to path, creating parent directories as needed
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IoError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &IoError{Op: "write", Path: path, Err: err}
	}
	return nil
}
