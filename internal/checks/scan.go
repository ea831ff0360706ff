package checks

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions are the file types scanned by symbol and idiom checks.
var sourceExtensions = map[string]bool{
	".rs":  true,
	".go":  true,
	".py":  true,
	".js":  true,
	".ts":  true,
	".c":   true,
	".h":   true,
	".cpp": true,
}

// skipDirs are directories never scanned: build output and vendored code.
var skipDirs = map[string]bool{
	".git":         true,
	"target":       true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".pathcheck":   true,
}

// scanResult describes the result of a source scan.
type scanResult struct {
	// found is true when any pattern matched.
	found bool
	// file is the path (relative to root) of the first matching file.
	file string
	// scanned counts the source files examined.
	scanned int
}

// scanSources walks the project tree looking for any of the given patterns
// in source files. Matching is plain substring search: these checks are
// heuristic by design and do not parse the language.
func scanSources(root string, patterns ...string) (scanResult, error) {
	var res scanResult

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal: a partial scan
			// still produces a usable outcome.
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !sourceExtensions[filepath.Ext(d.Name())] {
			return nil
		}

		res.scanned++
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}
		text := string(content)
		for _, pattern := range patterns {
			if strings.Contains(text, pattern) {
				res.found = true
				if rel, relErr := filepath.Rel(root, path); relErr == nil {
					res.file = rel
				} else {
					res.file = path
				}
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("scan %s: %w", root, err)
	}
	return res, nil
}

// tailLines returns the last n lines of s, prefixed with a truncation
// marker when lines were dropped. Bounds detail size on pathological
// build output.
func tailLines(s string, n int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	dropped := len(lines) - n
	kept := lines[dropped:]
	return fmt.Sprintf("... (%d earlier lines omitted)\n%s", dropped, strings.Join(kept, "\n"))
}
