package nameref

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/sce/internal/walker"
)

// Components walks node's subtree collecting the text of every descendant
// whose kind is an identifier type, in source order. For `self.foo.bar`
// this yields ["self", "foo", "bar"] regardless of how the grammar nests
// the member-access chain, because it never looks at structure — only at
// which leaves are identifiers.
//
// Grounded on slicer.rs's name_components, which does the same
// traverse-and-filter over identifier_types.
func Components(c Classifier, src []byte, node *sitter.Node) []string {
	var out []string
	walker.DepthFirst(node, func(n *sitter.Node) bool {
		if c.IsIdentifierType(n.Type()) {
			out = append(out, n.Content(src))
		}
		return true
	})
	return out
}

// At descends from root toward point, stopping at the first node whose
// kind is a name type, and returns the NameRef built from it. It returns
// false if no name node lies on that path.
//
// Grounded on slicer.rs's name_at_point: goto_first_child_for_point until
// a name_types kind is reached.
func At(c Classifier, src []byte, root *sitter.Node, p sitter.Point) (NameRef, bool) {
	n := walker.NodeAtPoint(root, p, func(n *sitter.Node) bool {
		return c.IsNameType(n.Type())
	})
	if n == nil {
		return NameRef{}, false
	}
	return NameRef{Node: n, Components: Components(c, src, n)}, true
}

// Referenced returns every name reference within node's subtree, pruning
// descent as soon as a name-type node is reached so that a qualified name
// like `a.b.c` yields one NameRef rather than three.
//
// Grounded on slicer.rs's referenced_names: traverse_with_depth with the
// callback returning false at name_types nodes.
func Referenced(c Classifier, src []byte, node *sitter.Node) []NameRef {
	var out []NameRef
	walker.DepthFirst(node, func(n *sitter.Node) bool {
		if c.IsNameType(n.Type()) {
			out = append(out, NameRef{Node: n, Components: Components(c, src, n)})
			return false
		}
		return true
	})
	return out
}
