// Package slicer implements backward/forward variable slicing: given a
// point inside a function, compute the set of byte ranges that can be
// removed from the source while preserving every statement that
// transitively affects (backward) or is affected by (forward) the name
// at that point.
//
// Grounded on original_source/slicer/src/slicer.rs's Slicer: name_at_point
// to find the target, propagate_targets to grow the target set to a
// fixed point, flatten_unreferenced to mark whole statements for
// deletion, and coalesce_ranges to merge AST-adjacent deletions into
// single ranges. The Go port splits name handling out into
// internal/nameref and keeps this package to propagation plus deletion.
package slicer

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/sce/internal/errs"
	"github.com/oxhq/sce/internal/langconfig"
	"github.com/oxhq/sce/internal/nameref"
	"github.com/oxhq/sce/internal/point"
	"github.com/oxhq/sce/internal/walker"
)

// Direction selects which way dependencies are followed.
type Direction int

const (
	// Backward extends the target set through the right-hand side of an
	// assignment whose left-hand side already affects a target: "what
	// does this variable depend on".
	Backward Direction = iota
	// Forward extends the target set through the left-hand side of an
	// assignment whose right-hand side already affects a target: "what
	// depends on this variable".
	Forward
)

// Slicer slices a single parsed source against a language Config.
type Slicer struct {
	Config *langconfig.Config
	Src    []byte
}

// New returns a Slicer bound to src under cfg.
func New(cfg *langconfig.Config, src []byte) *Slicer {
	return &Slicer{Config: cfg, Src: src}
}

// Slice computes the set of ranges to remove from the source so that
// only statements affecting (or affected by, under Forward) the name at
// targetPoint survive, within the function/method enclosing that point.
func (s *Slicer) Slice(ctx context.Context, direction Direction, targetPoint sitter.Point) ([]point.Range, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(s.Config.Language())
	tree, err := parser.ParseCtx(ctx, nil, s.Src)
	if err != nil {
		return nil, errs.Wrap(errs.CodeMalformedConfig, "parse failed", err)
	}
	root := tree.RootNode()

	targetName, ok := nameref.At(s.Config, s.Src, root, targetPoint)
	if !ok {
		return nil, errs.NewWithDetail(errs.CodeNoNameAtPoint, "no name found at the given point", pointDetail(targetPoint))
	}

	targetFunc := targetName.Node
	for !s.Config.IsSliceScopeType(targetFunc.Type()) {
		parent := targetFunc.Parent()
		if parent == nil {
			return nil, errs.NewWithDetail(errs.CodeNoNameAtPoint, "no enclosing slice scope found for point", pointDetail(targetPoint))
		}
		targetFunc = parent
	}

	targets := nameref.NewSet(targetName)
	s.propagate(direction, targetFunc, targets)

	deleteNodes := s.flattenUnreferenced(targetFunc, targets)
	return s.coalesceRanges(deleteNodes), nil
}

// propagate grows targets to a fixed point by walking every
// propagating-type descendant of scope and testing the direction's
// affects relation between the current target set and one side of the
// assignment, adding the names on the other side when it matches.
//
// Grounded on slicer.rs's propagate_targets, generalized from
// hard-coded backward propagation to both directions per the
// Forward-direction rule.
func (s *Slicer) propagate(direction Direction, scope *sitter.Node, targets *nameref.Set) {
	for {
		changedSize := targets.Len()

		for _, descendant := range walker.Iterate(scope) {
			prop, ok := s.Config.PropagatingFor(descendant.Type())
			if !ok {
				continue
			}

			defsNode := descendant.ChildByFieldName(prop.DefsField)
			refsNode := descendant.ChildByFieldName(prop.RefsField)
			if defsNode == nil || refsNode == nil {
				continue
			}

			defsNames := nameref.Referenced(s.Config, s.Src, defsNode)
			refsNames := nameref.Referenced(s.Config, s.Src, refsNode)

			switch direction {
			case Backward:
				if targets.AnyAffects(defsNames) {
					for _, n := range refsNames {
						targets.Add(n)
					}
				}
			case Forward:
				if targets.AnyAffects(refsNames) {
					for _, n := range defsNames {
						targets.Add(n)
					}
				}
			}
		}

		if targets.Len() == changedSize {
			return
		}
	}
}

// flattenUnreferenced returns, in source order, the highest-level
// statement nodes within targetFunc that reference none of targets. A
// statement is skipped if an ancestor is already marked for deletion, so
// the result names only the outermost deletable nodes.
//
// Grounded on slicer.rs's flatten_unreferenced: a single
// traverse_with_depth pass records which nodes contain a target
// reference (bubbling the flag up on ascent), then a second pass over
// statement-type nodes marks any node the first pass didn't flag.
func (s *Slicer) flattenUnreferenced(targetFunc *sitter.Node, targets *nameref.Set) []*sitter.Node {
	references := make(map[*sitter.Node]bool)

	walker.TraverseWithDepth(targetFunc,
		func(n *sitter.Node) bool {
			if s.Config.IsNameType(n.Type()) {
				name := nameref.NameRef{Node: n, Components: nameref.Components(s.Config, s.Src, n)}
				if targets.Contains(name) {
					references[n] = true
				}
				return false
			}
			return true
		},
		func(*sitter.Node, *sitter.Node) {},
		func(_, to *sitter.Node) {
			for i := 0; i < int(to.ChildCount()); i++ {
				if references[to.Child(i)] {
					references[to] = true
					break
				}
			}
		},
	)

	var deleteNodes []*sitter.Node
	walker.DepthFirst(targetFunc, func(statement *sitter.Node) bool {
		if !s.Config.IsStatementType(statement.Type()) {
			return true
		}

		if !references[statement] {
			parentDeleted := false
			for p := statement.Parent(); p != nil; p = p.Parent() {
				if containsNode(deleteNodes, p) {
					parentDeleted = true
					break
				}
			}
			if !parentDeleted {
				deleteNodes = append(deleteNodes, statement)
			}
		}

		return true
	})

	return deleteNodes
}

func containsNode(nodes []*sitter.Node, target *sitter.Node) bool {
	for _, n := range nodes {
		if n == target {
			return true
		}
	}
	return false
}

// coalesceRanges merges consecutive entries of nodes into a single Range
// whenever they are adjacent siblings in the AST (possibly after walking
// up to an ancestor's next sibling), rather than merging by line
// distance.
//
// Grounded on slicer.rs's coalesce_ranges.
func (s *Slicer) coalesceRanges(nodes []*sitter.Node) []point.Range {
	var ranges []point.Range

	i := 0
	for i < len(nodes) {
		start := nodes[i]
		endNode := nodes[i]

		for i+1 < len(nodes) {
			next := nextAcrossAncestors(endNode)
			if next == nil {
				break
			}
			if next == nodes[i+1] {
				endNode = next
				i++
				continue
			}
			break
		}

		ranges = append(ranges, point.Range{
			StartPoint: toPoint(start.StartPoint()),
			StartByte:  int(start.StartByte()),
			EndPoint:   toPoint(endNode.EndPoint()),
			EndByte:    int(endNode.EndByte()),
		})

		i++
	}

	return ranges
}

// nextAcrossAncestors returns n's next sibling, or failing that, the
// next sibling of the nearest ancestor that has one.
func nextAcrossAncestors(n *sitter.Node) *sitter.Node {
	cur := n
	for {
		if next := cur.NextSibling(); next != nil {
			return next
		}
		parent := cur.Parent()
		if parent == nil {
			return nil
		}
		cur = parent
	}
}

func toPoint(p sitter.Point) point.Point {
	return point.Point{Row: int(p.Row), Column: int(p.Column)}
}

func pointDetail(p sitter.Point) string {
	return fmt.Sprintf("row=%d column=%d", p.Row, p.Column)
}
