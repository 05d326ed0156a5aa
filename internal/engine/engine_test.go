package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/engine"
	"github.com/oxhq/sce/internal/langconfig/languages"
	"github.com/oxhq/sce/internal/langguess"
	"github.com/oxhq/sce/internal/point"
	"github.com/oxhq/sce/internal/slicer"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	reg, err := languages.Registry()
	require.NoError(t, err)
	return engine.New(reg, langguess.FromRegistry(reg))
}

func TestApplySliceGuessesLanguageFromExtension(t *testing.T) {
	e := newEngine(t)

	src := "def f(a, b):\n    x = a + 1\n    y = b + 1\n    return x\n"
	out, anchor, err := e.ApplySlice(context.Background(), engine.Source{
		Filename: "prog.py",
		Content:  []byte(src),
		Point:    point.Point{Row: 3, Column: 11},
	}, slicer.Backward)

	require.NoError(t, err)
	require.NotContains(t, out, "y = b + 1")
	require.Contains(t, out, "x = a + 1")
	require.Equal(t, 2, anchor.Row, "the fully dropped `y = b + 1` line above the anchor moves it up one row")
}

func TestSliceUsesExplicitLanguageOverGuess(t *testing.T) {
	e := newEngine(t)

	src := "def f(a, b):\n    x = a + 1\n    y = b + 1\n    return x\n"
	rngs, err := e.Slice(context.Background(), engine.Source{
		Filename: "prog.txt",
		Language: "python",
		Content:  []byte(src),
		Point:    point.Point{Row: 3, Column: 11},
	}, slicer.Backward)

	require.NoError(t, err)
	require.NotEmpty(t, rngs)
}

func TestSliceErrorsWhenLanguageUnresolvable(t *testing.T) {
	e := newEngine(t)

	_, err := e.Slice(context.Background(), engine.Source{
		Filename: "mystery.xyz",
		Content:  []byte("whatever"),
		Point:    point.Point{Row: 0, Column: 0},
	}, slicer.Backward)

	require.Error(t, err)
}

func TestInlineResolvesLanguageAndSplicesBody(t *testing.T) {
	e := newEngine(t)

	callee := "int add(int x, int y) { return x + y; }"
	caller := "int main() { int z = add(1, 2 + 3); }"

	result, err := e.Inline(context.Background(),
		engine.Source{Filename: "main.c", Content: []byte(caller), Point: point.Point{Row: 0, Column: 25}},
		engine.Source{Filename: "add.c", Content: []byte(callee), Point: point.Point{Row: 0, Column: 4}},
	)

	require.NoError(t, err)
	require.False(t, result.MultipleReturnsUnhandled)
	require.Contains(t, result.Content, "inline_y")
}
