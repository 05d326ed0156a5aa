// Package engine exposes the two public operations named in spec.md §6
// — slice and inline — resolving a language tag to a Config and driving
// the slicer/inliner packages behind that resolution.
package engine

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/sce/internal/errs"
	"github.com/oxhq/sce/internal/inliner"
	"github.com/oxhq/sce/internal/langconfig"
	"github.com/oxhq/sce/internal/langguess"
	"github.com/oxhq/sce/internal/point"
	"github.com/oxhq/sce/internal/ranges"
	"github.com/oxhq/sce/internal/slicer"
)

// Source is the slice/inline request payload: a file identity plus its
// content and the cursor position driving the operation.
type Source struct {
	Filename string
	Language string // empty means "guess from Filename/Content"
	Content  []byte
	Point    point.Point
}

// Engine resolves languages against a Registry, falling back to Guesser
// when a Source doesn't name one explicitly.
type Engine struct {
	Registry *langconfig.Registry
	Guesser  *langguess.Guesser
}

// New returns an Engine backed by the given registry and guesser.
func New(registry *langconfig.Registry, guesser *langguess.Guesser) *Engine {
	return &Engine{Registry: registry, Guesser: guesser}
}

func (e *Engine) resolve(source Source) (*langconfig.Config, error) {
	tag := source.Language
	if tag == "" {
		guessed, err := e.Guesser.Guess(source.Filename, source.Content)
		if err != nil {
			return nil, err
		}
		tag = guessed
	}

	cfg, err := e.Registry.Get(tag)
	if err != nil {
		return nil, errs.Wrap(errs.CodeUnknownLanguage, "no configuration for language \""+tag+"\"", err)
	}
	return cfg, nil
}

func toSitterPoint(p point.Point) sitter.Point {
	return sitter.Point{Row: uint32(p.Row), Column: uint32(p.Column)}
}

// Slice resolves source's language and returns the ranges to remove so
// that only statements affecting (or affected by, under Forward) the
// name at source.Point survive within its enclosing function.
func (e *Engine) Slice(ctx context.Context, source Source, direction slicer.Direction) ([]point.Range, error) {
	cfg, err := e.resolve(source)
	if err != nil {
		return nil, err
	}

	s := slicer.New(cfg, source.Content)
	return s.Slice(ctx, direction, toSitterPoint(source.Point))
}

// ApplySlice runs Slice and applies the resulting ranges via
// internal/ranges, returning the reduced source text and source.Point
// adjusted to still refer to the same surviving token.
func (e *Engine) ApplySlice(ctx context.Context, source Source, direction slicer.Direction) (string, point.Point, error) {
	rngs, err := e.Slice(ctx, source, direction)
	if err != nil {
		return "", point.Point{}, err
	}
	reduced, anchor := ranges.Apply(string(source.Content), rngs, source.Point)
	return reduced, anchor, nil
}

// Inline resolves source's language and inlines the callee found in
// calleeSource at calleeSource.Point into the call at source.Point.
func (e *Engine) Inline(ctx context.Context, source Source, calleeSource Source) (inliner.Result, error) {
	cfg, err := e.resolve(source)
	if err != nil {
		return inliner.Result{}, err
	}

	in := inliner.New(cfg)
	return in.Inline(ctx, source.Content, toSitterPoint(source.Point), calleeSource.Content, toSitterPoint(calleeSource.Point))
}
