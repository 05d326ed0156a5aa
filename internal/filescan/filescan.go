// Package filescan provides a parallel directory walk with include/exclude
// glob filtering and per-file language guessing, for batch CLI use over
// internal/engine's single-file operations.
//
// Grounded on termfx-morfx's core/filewalker.go: a worker pool consumes
// paths produced by a single recursive directory scan, doublestar handles
// both full-path and basename glob matching, and results stream back on a
// channel rather than being collected into a slice up front.
package filescan

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oxhq/sce/internal/langguess"
)

// Scope bounds a scan: the root directory plus include/exclude glob
// patterns and traversal limits.
type Scope struct {
	Root           string
	Include        []string
	Exclude        []string
	MaxFiles       int
	MaxDepth       int
	FollowSymlinks bool
}

// Result is one discovered file, with its language already guessed.
type Result struct {
	Path     string
	Language string
	Err      error
}

// Scanner walks a Scope's directory tree and guesses each surviving
// file's language via a Guesser.
type Scanner struct {
	Guesser *langguess.Guesser
	Workers int
}

// New returns a Scanner using guesser for language resolution. Workers
// defaults to 2x NumCPU, matching the teacher's I/O-bound sizing.
func New(guesser *langguess.Guesser) *Scanner {
	return &Scanner{Guesser: guesser, Workers: runtime.NumCPU() * 2}
}

// Scan streams every file under scope.Root that matches scope's include
// patterns (default: all) and none of its exclude patterns.
func (s *Scanner) Scan(ctx context.Context, scope Scope) <-chan Result {
	results := make(chan Result, 64)
	paths := make(chan string, 64)

	var wg sync.WaitGroup
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go s.worker(ctx, paths, results, &wg)
	}

	go func() {
		defer close(paths)
		processed := 0
		s.walkDir(ctx, scope.Root, scope, paths, 0, &processed)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (s *Scanner) worker(ctx context.Context, paths <-chan string, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}
			content, err := os.ReadFile(path)
			if err != nil {
				send(ctx, results, Result{Path: path, Err: err})
				continue
			}
			lang, err := s.Guesser.Guess(path, content)
			send(ctx, results, Result{Path: path, Language: lang, Err: err})
		}
	}
}

func send(ctx context.Context, results chan<- Result, r Result) {
	select {
	case <-ctx.Done():
	case results <- r:
	}
}

func (s *Scanner) walkDir(ctx context.Context, dir string, scope Scope, paths chan<- string, depth int, processed *int) {
	if scope.MaxFiles > 0 && *processed >= scope.MaxFiles {
		return
	}
	select {
	case <-ctx.Done():
		return
	default:
	}
	if scope.MaxDepth > 0 && depth > scope.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		full := filepath.Join(dir, entry.Name())
		if matchesAny(full, scope.Exclude) {
			continue
		}

		if entry.IsDir() {
			s.walkDir(ctx, full, scope, paths, depth+1, processed)
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 {
			if !scope.FollowSymlinks {
				continue
			}
			info, err := os.Stat(full)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}

		if !includes(full, scope.Include) {
			continue
		}

		if scope.MaxFiles > 0 && *processed >= scope.MaxFiles {
			return
		}
		select {
		case <-ctx.Done():
			return
		case paths <- full:
			*processed++
		}
	}
}

func includes(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(path, patterns)
}

func matchesAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if matchPattern(path, p) {
			return true
		}
	}
	return false
}

// matchPattern tries a full-path doublestar match first, then falls back
// to matching the pattern against the basename for patterns with no
// path separator (e.g. "*.go" should match regardless of directory).
func matchPattern(path, pattern string) bool {
	if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}
