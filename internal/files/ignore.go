// Package files handles the .leakwardenignore file: glob patterns, one per
// line, excluded from path scans.
package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const ignoreName = ".leakwardenignore"

// LoadIgnore reads the ignore patterns at root. A missing file yields nil.
func LoadIgnore(root string) []string {
	f, err := os.Open(filepath.Join(root, ignoreName))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// AppendIgnore ensures the given pattern is present in .leakwardenignore at
// root. It creates the file if missing. Idempotent.
func AppendIgnore(root, pattern string) error {
	path := filepath.Join(root, ignoreName)
	existing := map[string]bool{}
	if f, err := os.Open(path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			existing[line] = true
		}
		_ = f.Close()
	}
	if existing[pattern] {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return err
	}
	return nil
}
