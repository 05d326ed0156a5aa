package filescan_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/filescan"
	"github.com/oxhq/sce/internal/langconfig/languages"
	"github.com/oxhq/sce/internal/langguess"
)

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.go"), []byte("package p\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "vendor", "c.py"), []byte("y = 2\n"), 0o644))
	return root
}

func newScanner(t *testing.T) *filescan.Scanner {
	t.Helper()
	reg, err := languages.Registry()
	require.NoError(t, err)
	return filescan.New(langguess.FromRegistry(reg))
}

func collect(t *testing.T, ch <-chan filescan.Result) []filescan.Result {
	t.Helper()
	var out []filescan.Result
	for r := range ch {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func TestScanGuessesLanguagePerFile(t *testing.T) {
	root := writeTree(t)
	s := newScanner(t)

	results := collect(t, s.Scan(context.Background(), filescan.Scope{Root: root}))
	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err)
	}
}

func TestScanHonorsExcludePatterns(t *testing.T) {
	root := writeTree(t)
	s := newScanner(t)

	results := collect(t, s.Scan(context.Background(), filescan.Scope{
		Root:    root,
		Exclude: []string{"**/vendor/**"},
	}))

	require.Len(t, results, 2)
	for _, r := range results {
		require.NotContains(t, r.Path, "vendor")
	}
}

func TestScanHonorsIncludePatterns(t *testing.T) {
	root := writeTree(t)
	s := newScanner(t)

	results := collect(t, s.Scan(context.Background(), filescan.Scope{
		Root:    root,
		Include: []string{"*.go"},
	}))

	require.Len(t, results, 1)
	require.Equal(t, "go", results[0].Language)
}
