package inliner_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/inliner"
	"github.com/oxhq/sce/internal/langconfig/languages"
)

func cConfig(t *testing.T) (*inliner.Inliner, error) {
	t.Helper()
	reg, err := languages.Registry()
	require.NoError(t, err)
	cfg, err := reg.Get("c")
	require.NoError(t, err)
	return inliner.New(cfg), nil
}

func TestInlineSingleReturnHoistsNonTrivialArg(t *testing.T) {
	in, _ := cConfig(t)

	callee := "int add(int x, int y) { return x + y; }"
	caller := "int main() { int z = add(1, 2 + 3); }"

	result, err := in.Inline(context.Background(), []byte(caller), sitter.Point{Row: 0, Column: 25}, []byte(callee), sitter.Point{Row: 0, Column: 4})
	require.NoError(t, err)
	require.False(t, result.MultipleReturnsUnhandled)
	require.Contains(t, result.Content, "inline_y")
	require.Contains(t, result.Content, "1 + inline_y")
}

func TestInlineZeroReturnSplicesBody(t *testing.T) {
	in, _ := cConfig(t)

	callee := `void log(int n) { printf("%d", n); }`
	caller := "int main() { log(k); }"

	result, err := in.Inline(context.Background(), []byte(caller), sitter.Point{Row: 0, Column: 14}, []byte(callee), sitter.Point{Row: 0, Column: 5})
	require.NoError(t, err)
	require.False(t, result.MultipleReturnsUnhandled)
	require.Contains(t, result.Content, `printf("%d", k)`)
}

// TestInlineSingleReturnNestedInConditionalIsNotDuplicated guards against
// renderBody only checking direct children of the function body for the
// statement marked for deletion: a single return nested inside an if's
// block must still be found and dropped, not rendered verbatim alongside
// the callsite's substituted expression.
func TestInlineSingleReturnNestedInConditionalIsNotDuplicated(t *testing.T) {
	in, _ := cConfig(t)

	callee := "int f(int x) { if (x > 0) { return x; } }"
	caller := "int main() { int z = f(5); }"

	result, err := in.Inline(context.Background(), []byte(caller), sitter.Point{Row: 0, Column: 21}, []byte(callee), sitter.Point{Row: 0, Column: 4})
	require.NoError(t, err)
	require.False(t, result.MultipleReturnsUnhandled)
	require.Contains(t, result.Content, "if (5 > 0)")
	require.Contains(t, result.Content, "z = 5")
	require.NotContains(t, result.Content, "return 5")
	require.NotContains(t, result.Content, "return x")
}

func TestInlineErrorsWhenNoCallAtPoint(t *testing.T) {
	in, _ := cConfig(t)

	callee := "int add(int x, int y) { return x + y; }"
	caller := "int main() { int z = 1; }"

	_, err := in.Inline(context.Background(), []byte(caller), sitter.Point{Row: 0, Column: 20}, []byte(callee), sitter.Point{Row: 0, Column: 4})
	require.Error(t, err)
}

func TestInlineErrorsWhenNoFunctionAtCalleePoint(t *testing.T) {
	in, _ := cConfig(t)

	callee := "int x = 1;"
	caller := "int main() { foo(1); }"

	_, err := in.Inline(context.Background(), []byte(caller), sitter.Point{Row: 0, Column: 14}, []byte(callee), sitter.Point{Row: 0, Column: 4})
	require.Error(t, err)
}
