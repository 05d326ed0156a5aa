package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oxhq/sce/internal/auditlog"
	"github.com/oxhq/sce/internal/engine"
	"github.com/oxhq/sce/internal/errs"
	"github.com/oxhq/sce/internal/point"
	"github.com/oxhq/sce/internal/ranges"
	"github.com/oxhq/sce/internal/slicer"
)

// sourcePayload mirrors sourceSchema's JSON shape.
type sourcePayload struct {
	Filename string       `json:"filename"`
	Language string       `json:"language"`
	Content  string       `json:"content"`
	Point    pointPayload `json:"point"`
}

type pointPayload struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (s sourcePayload) toEngineSource() engine.Source {
	return engine.Source{
		Filename: s.Filename,
		Language: s.Language,
		Content:  []byte(s.Content),
		Point:    point.Point{Row: s.Point.Row, Column: s.Point.Column},
	}
}

type sliceParams struct {
	Source    sourcePayload `json:"source"`
	Direction string        `json:"direction"`
}

type sliceResult struct {
	RangesToRemove []rangePayload `json:"ranges_to_remove"`
	AdjustedAnchor pointPayload   `json:"adjusted_anchor"`
}

type rangePayload struct {
	StartPoint pointPayload `json:"start_point"`
	EndPoint   pointPayload `json:"end_point"`
}

type inlineParams struct {
	Source sourcePayload `json:"source"`
	Callee sourcePayload `json:"callee"`
}

type inlineResult struct {
	Content                  string `json:"content"`
	MultipleReturnsUnhandled bool   `json:"multiple_returns_unhandled"`
}

// Handlers dispatches "slice"/"inline" tool calls to an Engine, optionally
// recording each request via an auditlog.Log.
type Handlers struct {
	Engine *engine.Engine
	Audit  *auditlog.Log // nil disables auditing
}

// NewHandlers returns a Handlers bound to eng, auditing to log if non-nil.
func NewHandlers(eng *engine.Engine, log *auditlog.Log) *Handlers {
	return &Handlers{Engine: eng, Audit: log}
}

// HandleToolCall dispatches name/rawParams to the matching handler,
// returning a JSON-RPC-ready result or MCPError.
func (h *Handlers) HandleToolCall(ctx context.Context, name string, rawParams json.RawMessage) (any, *MCPError) {
	switch name {
	case "slice":
		return h.handleSlice(ctx, rawParams)
	case "inline":
		return h.handleInline(ctx, rawParams)
	default:
		return nil, NewMCPError(MethodNotFound, fmt.Sprintf("unknown tool %q", name))
	}
}

func (h *Handlers) handleSlice(ctx context.Context, rawParams json.RawMessage) (any, *MCPError) {
	var params sliceParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, NewMCPError(InvalidParams, "decoding slice params", err.Error())
	}

	direction := slicer.Backward
	if params.Direction == "forward" {
		direction = slicer.Forward
	}

	src := params.Source.toEngineSource()
	rngs, err := h.Engine.Slice(ctx, src, direction)
	h.record(auditlog.Operation{
		Kind:      "slice",
		Language:  src.Language,
		Filename:  src.Filename,
		Direction: params.Direction,
		Success:   err == nil,
		Detail:    detailOf(err),
	})
	if err != nil {
		return nil, errToMCP(err)
	}

	out := make([]rangePayload, len(rngs))
	for i, r := range rngs {
		out[i] = rangePayload{
			StartPoint: pointPayload{Row: r.StartPoint.Row, Column: r.StartPoint.Column},
			EndPoint:   pointPayload{Row: r.EndPoint.Row, Column: r.EndPoint.Column},
		}
	}

	_, anchor := ranges.Apply(string(src.Content), rngs, src.Point)
	return sliceResult{
		RangesToRemove: out,
		AdjustedAnchor: pointPayload{Row: anchor.Row, Column: anchor.Column},
	}, nil
}

func (h *Handlers) handleInline(ctx context.Context, rawParams json.RawMessage) (any, *MCPError) {
	var params inlineParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, NewMCPError(InvalidParams, "decoding inline params", err.Error())
	}

	src := params.Source.toEngineSource()
	callee := params.Callee.toEngineSource()

	result, err := h.Engine.Inline(ctx, src, callee)
	h.record(auditlog.Operation{
		Kind:     "inline",
		Language: src.Language,
		Filename: src.Filename,
		Success:  err == nil,
		Detail:   detailOf(err),
	})
	if err != nil {
		return nil, errToMCP(err)
	}

	return inlineResult{Content: result.Content, MultipleReturnsUnhandled: result.MultipleReturnsUnhandled}, nil
}

func (h *Handlers) record(op auditlog.Operation) {
	if h.Audit == nil {
		return
	}
	_ = h.Audit.Record(op)
}

func detailOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// errToMCP maps an errs.CLIError's code to the matching JSON-RPC error
// code, defaulting to InternalError for anything else.
func errToMCP(err error) *MCPError {
	cliErr, ok := err.(errs.CLIError)
	if !ok {
		return WrapError(InternalError, "internal error", err)
	}

	code := InternalError
	switch cliErr.Code {
	case errs.CodeUnknownLanguage:
		code = UnknownLanguage
	case errs.CodeParserVersionMismatch:
		code = ParserVersionMismatch
	case errs.CodeNoNameAtPoint:
		code = NoNameAtPoint
	case errs.CodeNoCallAtPoint:
		code = NoCallAtPoint
	case errs.CodeMalformedConfig:
		code = MalformedConfig
	}
	return NewMCPError(code, cliErr.Message, cliErr.Detail)
}
