package langguess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/langconfig/languages"
	"github.com/oxhq/sce/internal/langguess"
)

func TestGuessResolvesByExtension(t *testing.T) {
	reg, err := languages.Registry()
	require.NoError(t, err)
	g := langguess.FromRegistry(reg)

	lang, err := g.Guess("main.py", nil)
	require.NoError(t, err)
	require.Equal(t, "python", lang)

	lang, err = g.Guess("widget.tsx", nil)
	require.NoError(t, err)
	require.Equal(t, "tsx", lang)
}

func TestGuessFallsBackToShebang(t *testing.T) {
	g := langguess.New(langguess.Extensions{}, langguess.Shebangs{"python": "python"})

	lang, err := g.Guess("script", []byte("#!/usr/bin/env python\nprint(1)\n"))
	require.NoError(t, err)
	require.Equal(t, "python", lang)
}

func TestGuessErrorsWhenUnresolvable(t *testing.T) {
	g := langguess.New(langguess.Extensions{}, langguess.Shebangs{})

	_, err := g.Guess("mystery.xyz", []byte("whatever"))
	require.Error(t, err)
}
