package walker_test

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/walker"
)

// sampleTree mirrors original_source/sce/src/traverse.rs's sample_tree():
// a single function definition returning a chained binary expression.
func sampleTree(t *testing.T) *sitter.Tree {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte("def foo(a, b, c): return a + b + c"))
	require.NoError(t, err)
	return tree
}

func kinds(nodes []*sitter.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Type()
	}
	return out
}

var expectedAll = []string{
	"module",
	"function_definition",
	"def",
	"identifier",
	"parameters",
	"(",
	"identifier",
	",",
	"identifier",
	",",
	"identifier",
	")",
	":",
	"block",
	"return_statement",
	"return",
	"binary_operator",
	"binary_operator",
	"identifier",
	"+",
	"identifier",
	"+",
	"identifier",
}

func TestIterateVisitsEveryNodeOnceInPreOrder(t *testing.T) {
	tree := sampleTree(t)
	require.Equal(t, expectedAll, kinds(walker.Iterate(tree.RootNode())))
}

func TestDepthFirstAlwaysDescendingMatchesIterate(t *testing.T) {
	tree := sampleTree(t)

	var got []string
	walker.DepthFirst(tree.RootNode(), func(n *sitter.Node) bool {
		got = append(got, n.Type())
		return true
	})

	require.Equal(t, expectedAll, got)
}

func TestDepthFirstPrunesOnFalse(t *testing.T) {
	tree := sampleTree(t)

	var got []string
	walker.DepthFirst(tree.RootNode(), func(n *sitter.Node) bool {
		got = append(got, n.Type())
		return n.Type() != "binary_operator"
	})

	require.Equal(t, []string{
		"module",
		"function_definition",
		"def",
		"identifier",
		"parameters",
		"(",
		"identifier",
		",",
		"identifier",
		",",
		"identifier",
		")",
		":",
		"block",
		"return_statement",
		"return",
		"binary_operator",
	}, got)
}

type transition struct {
	kind, from, to string
}

func TestTraverseWithDepthFiresDescentAndAscent(t *testing.T) {
	tree := sampleTree(t)

	var transitions []transition
	walker.TraverseWithDepth(tree.RootNode(),
		func(*sitter.Node) bool { return true },
		func(from, to *sitter.Node) {
			transitions = append(transitions, transition{"DESCEND", from.Type(), to.Type()})
		},
		func(from, to *sitter.Node) {
			transitions = append(transitions, transition{"ASCEND", from.Type(), to.Type()})
		},
	)

	require.Equal(t, []transition{
		{"DESCEND", "module", "function_definition"},
		{"DESCEND", "function_definition", "def"},
		{"DESCEND", "parameters", "("},
		{"ASCEND", ")", "parameters"},
		{"DESCEND", "block", "return_statement"},
		{"DESCEND", "return_statement", "return"},
		{"DESCEND", "binary_operator", "binary_operator"},
		{"DESCEND", "binary_operator", "identifier"},
		{"ASCEND", "identifier", "binary_operator"},
		{"ASCEND", "identifier", "binary_operator"},
		{"ASCEND", "binary_operator", "return_statement"},
		{"ASCEND", "return_statement", "block"},
		{"ASCEND", "block", "function_definition"},
		{"ASCEND", "function_definition", "module"},
	}, transitions)
}

func TestNodeAtPointStopsAtFirstMatch(t *testing.T) {
	tree := sampleTree(t)

	n := walker.NodeAtPoint(tree.RootNode(), sitter.Point{Row: 0, Column: 8}, func(n *sitter.Node) bool {
		return n.Type() == "identifier"
	})
	require.NotNil(t, n)
	require.Equal(t, "identifier", n.Type())
}

func TestNodeAtPointReturnsNilWhenNeverSatisfied(t *testing.T) {
	tree := sampleTree(t)

	n := walker.NodeAtPoint(tree.RootNode(), sitter.Point{Row: 0, Column: 8}, func(n *sitter.Node) bool {
		return n.Type() == "this_kind_does_not_exist"
	})
	require.Nil(t, n)
}
