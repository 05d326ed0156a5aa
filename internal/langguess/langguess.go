// Package langguess is the engine's external collaborator for resolving
// a language tag from a filename and, failing that, the file's content.
// spec.md §1 places this out of scope for the core transformation logic
// but still names it as a required boundary; this is the concrete
// implementation that boundary is tested against.
package langguess

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oxhq/sce/internal/errs"
)

// Extensions is the filename-extension -> language-tag table consulted
// before any content heuristic runs. Doublestar is used for the match so
// a config can register glob-style patterns (e.g. "*.d.ts") alongside
// plain extensions, the same matcher termfx-morfx's filewalker.go uses
// for its own ignore patterns.
type Extensions map[string]string

// Shebangs maps an interpreter line substring to a language tag, used
// when a file has no recognized extension (scripts named without one).
type Shebangs map[string]string

// Guesser resolves a language tag for a file.
type Guesser struct {
	extensions Extensions
	shebangs   Shebangs
}

// New returns a Guesser consulting ext for extensions and shebangs for
// the first-line interpreter heuristic.
func New(ext Extensions, shebangs Shebangs) *Guesser {
	return &Guesser{extensions: ext, shebangs: shebangs}
}

// Guess resolves filename/content to a language tag. Extension match
// wins; if none matches, the first line is checked against shebangs.
func (g *Guesser) Guess(filename string, content []byte) (string, error) {
	base := filepath.Base(filename)

	if ext := filepath.Ext(base); ext != "" {
		if lang, ok := g.extensions[ext]; ok {
			return lang, nil
		}
	}

	// Plain extensions are resolved above by direct lookup; anything
	// else registered (e.g. "*.d.ts") is a genuine glob pattern matched
	// against the full basename.
	for pattern, lang := range g.extensions {
		if !strings.ContainsAny(pattern, "*?[") {
			continue
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return lang, nil
		}
	}

	firstLine := content
	if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}
	if strings.HasPrefix(string(firstLine), "#!") {
		for needle, lang := range g.shebangs {
			if strings.Contains(string(firstLine), needle) {
				return lang, nil
			}
		}
	}

	return "", errs.New(errs.CodeUnknownLanguage, "could not guess a language for "+filename)
}
