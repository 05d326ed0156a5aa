package difftext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/difftext"
)

func TestUnifiedReturnsEmptyForIdenticalContent(t *testing.T) {
	require.Empty(t, difftext.Unified("a.go", "same\n", "same\n", 3))
}

func TestUnifiedReportsDeletedLine(t *testing.T) {
	out := difftext.Unified("a.py", "def f():\n    x = 1\n    return x\n", "def f():\n    return x\n", 3)

	require.Contains(t, out, "--- a/a.py")
	require.Contains(t, out, "+++ b/a.py")
	require.Contains(t, out, "-    x = 1")
	lines := strings.Split(out, "\n")
	require.Contains(t, lines, "     return x")
}

func TestUnifiedReportsInsertedLine(t *testing.T) {
	out := difftext.Unified("a.go", "a\nb\n", "a\nx\nb\n", 1)
	require.Contains(t, out, "+x")
}
