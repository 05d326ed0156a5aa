// Package inliner implements function inlining: splice a callee's body
// into a callsite, substituting parameters for arguments and hoisting
// non-trivial arguments into temporaries.
//
// original_source/ does not retain an inliner implementation (sce's
// engine.rs was never captured by the retrieval pack — only main.rs's
// calls into it were), so this package is built directly from spec.md
// §4.5 rather than ported from a Rust original.
package inliner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/sce/internal/errs"
	"github.com/oxhq/sce/internal/langconfig"
	"github.com/oxhq/sce/internal/walker"
)

// Temporary is a synthesized local binding emitted before the splice, one
// per non-constant/non-name argument.
type Temporary struct {
	Name  string
	Type  string
	Value string
}

// Result is the outcome of an Inline call. MultipleReturnsUnhandled is
// not one of spec.md's error kinds — it is a diagnostic the caller can
// inspect before deciding whether to apply Content, covering the design
// note that more than one return in the callee has no principled
// callsite rewrite under this design.
type Result struct {
	Content                  string
	MultipleReturnsUnhandled bool
}

// Inliner inlines a call within a caller source using a callee located in
// (possibly the same) callee source, both under the same language Config.
type Inliner struct {
	Config *langconfig.Config
}

// New returns an Inliner bound to cfg.
func New(cfg *langconfig.Config) *Inliner {
	return &Inliner{Config: cfg}
}

type param struct {
	name     string
	typeText string
}

type returnPair struct {
	statement *sitter.Node
	value     *sitter.Node
}

// Inline splices the function definition found at calleeDefPoint in
// calleeSrc into the call found at callPoint in callerSrc.
func (in *Inliner) Inline(ctx context.Context, callerSrc []byte, callPoint sitter.Point, calleeSrc []byte, calleeDefPoint sitter.Point) (Result, error) {
	callerTree, err := in.parse(ctx, callerSrc)
	if err != nil {
		return Result{}, err
	}
	calleeTree, err := in.parse(ctx, calleeSrc)
	if err != nil {
		return Result{}, err
	}

	callNode := walker.NodeAtPoint(callerTree.RootNode(), callPoint, func(n *sitter.Node) bool {
		return in.Config.IsFunctionCallType(n.Type())
	})
	if callNode == nil {
		return Result{}, errs.NewWithDetail(errs.CodeNoCallAtPoint, "no call expression found at the given point", pointDetail(callPoint))
	}

	calleeDef := walker.NodeAtPoint(calleeTree.RootNode(), calleeDefPoint, func(n *sitter.Node) bool {
		return in.Config.IsSliceScopeType(n.Type())
	})
	if calleeDef == nil {
		return Result{}, errs.NewWithDetail(errs.CodeNoNameAtPoint, "no function definition found at the given point", pointDetail(calleeDefPoint))
	}

	functionBody, params, err := in.extractFunction(calleeDef, calleeSrc)
	if err != nil {
		return Result{}, err
	}

	args := in.extractArgs(callNode)
	returns := in.extractReturns(functionBody)

	renameMap, temps := in.buildRenameMap(params, args, callerSrc)

	var deleteReturn *sitter.Node
	replacement := ""
	multipleUnhandled := false

	switch len(returns) {
	case 1:
		deleteReturn = returns[0].statement
		replacement = in.renderWithRenames(returns[0].value, calleeSrc, nil, renameMap)
	case 0:
		// no return: the call is replaced by nothing (statement-context call).
	default:
		multipleUnhandled = true
	}

	content := in.emit(callerSrc, callNode, calleeSrc, functionBody, deleteReturn, renameMap, temps, replacement)

	return Result{Content: content, MultipleReturnsUnhandled: multipleUnhandled}, nil
}

func (in *Inliner) parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(in.Config.Language())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errs.Wrap(errs.CodeMalformedConfig, "parse failed", err)
	}
	return tree, nil
}

// runQuery executes query against root and returns one map of
// capture-name -> node per match, in tree-sitter's natural match order.
// For a query whose inner pattern matches a repeated sibling (parameters,
// call arguments, return statements), that order is source order since
// each qualifying child produces its own match.
func runQuery(query *sitter.Query, root *sitter.Node) []map[string]*sitter.Node {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, root)

	var matches []map[string]*sitter.Node
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		captures := make(map[string]*sitter.Node, len(match.Captures))
		for _, c := range match.Captures {
			captures[query.CaptureNameForId(c.Index)] = c.Node
		}
		matches = append(matches, captures)
	}
	return matches
}

// extractFunction runs function_query against calleeDef and returns the
// callee's body node plus its parameters in declaration order.
func (in *Inliner) extractFunction(calleeDef *sitter.Node, calleeSrc []byte) (*sitter.Node, []param, error) {
	matches := runQuery(in.Config.FunctionQueryCompiled(), calleeDef)

	var functionBody *sitter.Node
	for _, m := range matches {
		if fb, ok := m["function_body"]; ok {
			functionBody = fb
			break
		}
	}
	if functionBody == nil {
		return nil, nil, errs.New(errs.CodeMalformedConfig, "function_query produced no @function_body capture")
	}

	type rawParam struct {
		nameNode *sitter.Node
		typeNode *sitter.Node
	}
	var raw []rawParam
	for _, m := range matches {
		name, ok := m["param_name"]
		if !ok {
			continue
		}
		raw = append(raw, rawParam{nameNode: name, typeNode: m["param_type"]})
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].nameNode.StartByte() < raw[j].nameNode.StartByte() })

	params := make([]param, 0, len(raw))
	for _, r := range raw {
		typeText := ""
		if r.typeNode != nil {
			typeText = r.typeNode.Content(calleeSrc)
		}
		params = append(params, param{name: r.nameNode.Content(calleeSrc), typeText: typeText})
	}

	return functionBody, params, nil
}

// extractArgs runs call_args_query against callNode and returns the
// argument value nodes in source order.
func (in *Inliner) extractArgs(callNode *sitter.Node) []*sitter.Node {
	matches := runQuery(in.Config.CallArgsQueryCompiled(), callNode)

	var values []*sitter.Node
	for _, m := range matches {
		if v, ok := m["value"]; ok {
			values = append(values, v)
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i].StartByte() < values[j].StartByte() })
	return values
}

// extractReturns runs returns_query against functionBody and returns
// (statement, value) pairs in source order.
func (in *Inliner) extractReturns(functionBody *sitter.Node) []returnPair {
	matches := runQuery(in.Config.ReturnsQueryCompiled(), functionBody)

	var pairs []returnPair
	for _, m := range matches {
		stmt, hasStmt := m["return_statement"]
		val, hasVal := m["return_value"]
		if !hasStmt {
			continue
		}
		pair := returnPair{statement: stmt}
		if hasVal {
			pair.value = val
		}
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].statement.StartByte() < pairs[j].statement.StartByte() })
	return pairs
}

// buildRenameMap pairs params with args positionally (spec.md §4.5 step
// 7): a constant or bare-name argument substitutes directly; anything
// else is hoisted into a Temporary and the parameter renamed to it.
func (in *Inliner) buildRenameMap(params []param, args []*sitter.Node, callerSrc []byte) (map[string]string, []Temporary) {
	renameMap := make(map[string]string, len(params))
	var temps []Temporary

	n := len(params)
	if len(args) < n {
		n = len(args)
	}

	for i := 0; i < n; i++ {
		p := params[i]
		arg := args[i]
		argText := arg.Content(callerSrc)

		if in.Config.IsConstantType(arg.Type()) || in.Config.IsNameType(arg.Type()) {
			renameMap[p.name] = argText
			continue
		}

		tempName := "inline_" + p.name
		renameMap[p.name] = tempName
		temps = append(temps, Temporary{Name: tempName, Type: p.typeText, Value: argText})
	}

	return renameMap, temps
}

// renderWithRenames walks node's subtree and renders its text, replacing
// any name-type leaf whose full text is a key in renameMap and dropping
// deleteReturn wherever it occurs in the subtree — not just as a direct
// child — so a single return nested inside a conditional or loop body is
// still found and suppressed rather than rendered verbatim alongside the
// callsite's substituted expression.
func (in *Inliner) renderWithRenames(node *sitter.Node, src []byte, deleteReturn *sitter.Node, renameMap map[string]string) string {
	if node == nil {
		return ""
	}
	if node == deleteReturn {
		return ""
	}
	if in.Config.IsNameType(node.Type()) {
		text := node.Content(src)
		if replacement, ok := renameMap[text]; ok {
			return replacement
		}
		return text
	}

	childCount := int(node.ChildCount())
	if childCount == 0 {
		return node.Content(src)
	}

	var b strings.Builder
	cursor := int(node.StartByte())
	for i := 0; i < childCount; i++ {
		child := node.Child(i)
		if int(child.StartByte()) > cursor {
			b.Write(src[cursor:child.StartByte()])
		}
		b.WriteString(in.renderWithRenames(child, src, deleteReturn, renameMap))
		cursor = int(child.EndByte())
	}
	if int(node.EndByte()) > cursor {
		b.Write(src[cursor:node.EndByte()])
	}
	return b.String()
}

// emit assembles the final caller text per spec.md §4.5 step 9.
func (in *Inliner) emit(callerSrc []byte, callNode *sitter.Node, calleeSrc []byte, functionBody, deleteReturn *sitter.Node, renameMap map[string]string, temps []Temporary, replacement string) string {
	lineStart := lineStartByte(callerSrc, int(callNode.StartPoint().Row))
	indent := leadingWhitespace(callerSrc, lineStart)

	var b strings.Builder
	b.Write(callerSrc[:lineStart])

	for _, t := range temps {
		b.WriteString(indent)
		b.WriteString(formatTempVar(in.Config.TempVarFormat, t))
		b.WriteString("\n")
	}

	body := in.renderBody(functionBody, calleeSrc, deleteReturn, renameMap)
	body = reindent(body, indent)
	if body != "" {
		b.WriteString(body)
	}

	b.Write(callerSrc[lineStart:callNode.StartByte()])
	b.WriteString(replacement)
	b.Write(callerSrc[callNode.EndByte():])

	return b.String()
}

// renderBody renders functionBody's interior (excluding its own
// delimiting braces-equivalent handled by the caller's splice point),
// substituting renames and dropping deleteReturn entirely wherever it
// appears in the subtree, even nested inside an if/loop body rather than
// a direct child of functionBody.
func (in *Inliner) renderBody(functionBody *sitter.Node, src []byte, deleteReturn *sitter.Node, renameMap map[string]string) string {
	var parts []string
	childCount := int(functionBody.ChildCount())
	for i := 0; i < childCount; i++ {
		child := functionBody.Child(i)
		if !child.IsNamed() {
			continue
		}
		text := in.renderWithRenames(child, src, deleteReturn, renameMap)
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}

func lineStartByte(src []byte, row int) int {
	line := 0
	for i, c := range src {
		if line == row {
			return i
		}
		if c == '\n' {
			line++
		}
	}
	return len(src)
}

func leadingWhitespace(src []byte, offset int) string {
	end := offset
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[offset:end])
}

func reindent(body, indent string) string {
	if body == "" {
		return ""
	}
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = indent + strings.TrimLeft(l, " \t")
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatTempVar(format string, t Temporary) string {
	out := strings.ReplaceAll(format, "{type}", t.Type)
	out = strings.ReplaceAll(out, "{name}", t.Name)
	out = strings.ReplaceAll(out, "{value}", t.Value)
	return out
}

func pointDetail(p sitter.Point) string {
	return fmt.Sprintf("row=%d column=%d", p.Row, p.Column)
}
