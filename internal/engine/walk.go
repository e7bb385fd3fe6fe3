package engine

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// WalkOptions scopes a filesystem scan of exported message/text files.
type WalkOptions struct {
	Root     string
	Include  string // comma-separated globs; empty means everything
	Exclude  string // comma-separated globs
	MaxBytes int64  // skip files larger than this (0 = 1 MiB default)
}

// Walk traverses the tree under Root and invokes handle for each eligible
// text file. Binary files, oversized files, and glob-excluded paths are
// skipped silently; per-file read errors do not abort the walk.
func Walk(opts WalkOptions, handle func(path string, data []byte)) error {
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	includes := splitGlobs(opts.Include)
	excludes := splitGlobs(opts.Exclude)

	return filepath.WalkDir(opts.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isOwnFile(d.Name()) {
			return nil
		}
		rel, relErr := filepath.Rel(opts.Root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !matchGlobs(rel, includes, true) || matchGlobs(rel, excludes, false) {
			return nil
		}
		if info, infoErr := d.Info(); infoErr == nil && info.Size() > maxBytes {
			return nil
		}
		b, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil
		}
		if looksBinary(b) {
			return nil
		}
		handle(rel, b)
		return nil
	})
}

func splitGlobs(csv string) []string {
	var out []string
	for _, g := range strings.Split(csv, ",") {
		g = strings.TrimSpace(g)
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

// matchGlobs reports whether rel matches any glob; empty glob lists return
// the provided default (include-all vs exclude-none).
func matchGlobs(rel string, globs []string, whenEmpty bool) bool {
	if len(globs) == 0 {
		return whenEmpty
	}
	for _, g := range globs {
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// isOwnFile skips leakwarden's bookkeeping files inside the scan root.
func isOwnFile(name string) bool {
	switch name {
	case ".leakwarden.cache.json", ".leakwardenignore", "leakwarden.baseline.json",
		".leakwarden.yml", ".leakwarden.yaml", "leakwarden.yml", "leakwarden.yaml":
		return true
	}
	return false
}

func isDefaultDirExcluded(name string) bool {
	switch name {
	case ".git", "node_modules", "vendor", "dist", "build", ".cache":
		return true
	}
	return false
}

// looksBinary sniffs the first KiB for NUL bytes.
func looksBinary(b []byte) bool {
	n := len(b)
	if n > 1024 {
		n = 1024
	}
	return bytes.IndexByte(b[:n], 0) >= 0
}
