// Package walker implements the engine's single depth-first traversal
// primitive (spec.md §4.1). Every higher layer — name extraction, the
// slicer, the inliner — does its tree-cursor traversal through this
// package so there is one place that knows how to move a tree-sitter
// cursor; direct Parent/Child/NextSibling node navigation happens in
// those packages too.
//
// Grounded on original_source/slicer/src/traverse.rs and
// original_source/sce/src/traverse.rs, which are byte-for-byte identical:
// a cursor-based depth-first walk with a plain iterator form and two
// callback forms (prune-on-false, and prune-on-false plus descent/ascent
// hooks). The Go translation keeps the same control flow rather than
// reaching for a recursive helper, because the cursor is what lets the
// walk prune a subtree without allocating.
package walker

import sitter "github.com/smacker/go-tree-sitter"

// Visitor is called once per node in pre-order. Returning false prunes
// descent into that node's children; traversal resumes at the next
// sibling (of the node itself, or of the nearest ancestor that has one).
type Visitor func(n *sitter.Node) bool

// DepthFirst walks the subtree rooted at root in pre-order, calling cb for
// every node. It never visits anything outside of root.
func DepthFirst(root *sitter.Node, cb Visitor) {
	TraverseWithDepth(root, cb, func(*sitter.Node, *sitter.Node) {}, func(*sitter.Node, *sitter.Node) {})
}

// Iterate returns every node of the subtree rooted at root exactly once,
// in pre-order. It is the pull-iterator counterpart to DepthFirst, useful
// wherever callers want a plain slice instead of a callback.
func Iterate(root *sitter.Node) []*sitter.Node {
	var nodes []*sitter.Node
	DepthFirst(root, func(n *sitter.Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// TraverseWithDepth is DepthFirst plus two callbacks: onDescent fires just
// before the walk enters a node's children (from, firstChild), and
// onAscent fires when the walk leaves a layer (lastVisited, newParent).
// cb still governs pruning exactly as in DepthFirst.
func TraverseWithDepth(root *sitter.Node, cb Visitor, onDescent, onAscent func(from, to *sitter.Node)) {
	if root == nil {
		return
	}

	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

outer:
	for {
		node := cursor.CurrentNode()

		if cb(node) {
			if cursor.GoToFirstChild() {
				onDescent(node, cursor.CurrentNode())
				continue
			}
		}

		if cursor.GoToNextSibling() {
			continue
		}

		for {
			if !cursor.GoToParent() {
				return
			}
			parent := cursor.CurrentNode()
			onAscent(node, parent)

			if parent == root {
				return
			}
			node = parent

			if cursor.GoToNextSibling() {
				continue outer
			}
		}
	}
}

// NodeAtPoint descends from root along whichever child contains p,
// stopping as soon as stop(node) reports true. It returns nil if no node
// along that path satisfies stop. This is the shared descent used by
// name_at_point (spec.md §4.2) and the callsite/callee lookups in the
// slicer and inliner (§4.3 step 2, §4.5 steps 2-3).
func NodeAtPoint(root *sitter.Node, p sitter.Point, stop func(n *sitter.Node) bool) *sitter.Node {
	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	for {
		node := cursor.CurrentNode()
		if stop(node) {
			return node
		}
		if cursor.GoToFirstChildForPoint(p) < 0 {
			return nil
		}
	}
}
