package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
}

func collectWalk(t *testing.T, opts WalkOptions) map[string]string {
	t.Helper()
	got := map[string]string{}
	require.NoError(t, Walk(opts, func(path string, data []byte) {
		got[path] = string(data)
	}))
	return got
}

func TestWalkVisitsTextFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "inbox.txt", []byte("card 4532015112830366"))
	writeFile(t, root, "exports/chat.txt", []byte("hello"))

	got := collectWalk(t, WalkOptions{Root: root})
	assert.Equal(t, map[string]string{
		"inbox.txt":        "card 4532015112830366",
		"exports/chat.txt": "hello",
	}, got)
}

func TestWalkSkipsBinaryAndOversized(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.txt", []byte("plain text"))
	writeFile(t, root, "blob.bin", []byte{'a', 0x00, 'b'})
	writeFile(t, root, "big.txt", make([]byte, 64))

	got := collectWalk(t, WalkOptions{Root: root, MaxBytes: 32})
	assert.Equal(t, []string{"ok.txt"}, keysOf(got))
}

func TestWalkGlobFilters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", []byte("a"))
	writeFile(t, root, "b.log", []byte("b"))
	writeFile(t, root, "sub/c.txt", []byte("c"))
	writeFile(t, root, "sub/skip.txt", []byte("d"))

	got := collectWalk(t, WalkOptions{
		Root:    root,
		Include: "**/*.txt",
		Exclude: "sub/skip.txt",
	})
	assert.ElementsMatch(t, []string{"a.txt", "sub/c.txt"}, keysOf(got))
}

func TestWalkSkipsDefaultDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.txt", []byte("x"))
	writeFile(t, root, ".git/config", []byte("x"))
	writeFile(t, root, "node_modules/pkg/index.js", []byte("x"))

	got := collectWalk(t, WalkOptions{Root: root})
	assert.Equal(t, []string{"keep.txt"}, keysOf(got))
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
