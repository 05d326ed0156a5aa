package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// initializeResult is the minimal "initialize" response an MCP client
// expects before it calls tools/list or tools/call.
type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	ServerInfo      map[string]any `json:"serverInfo"`
	Capabilities    map[string]any `json:"capabilities"`
}

const protocolVersion = "2024-11-05"

// StdioServer reads JSON-RPC 2.0 requests from reader, dispatches
// "initialize", "tools/list" and "tools/call" to Handlers, and writes
// one response object per request to writer.
//
// Grounded on termfx-morfx's mcp/server.go: a buffered decoder reads one
// JSON value at a time off stdin and a mutex-guarded writer streams
// responses back. The teacher's router/session/progress/cancellation/
// resource-subscription machinery is dropped — this engine's tool calls
// are synchronous single-shot slice/inline requests with no streaming
// progress or client-initiated cancellation to track.
type StdioServer struct {
	handlers *Handlers
	reader   io.Reader
	writer   io.Writer
	writeMu  sync.Mutex
}

// NewStdioServer returns a server dispatching to handlers, reading reader
// and writing writer (typically os.Stdin/os.Stdout).
func NewStdioServer(handlers *Handlers, reader io.Reader, writer io.Writer) *StdioServer {
	return &StdioServer{handlers: handlers, reader: reader, writer: writer}
}

// Start processes requests from the reader until EOF or a fatal decode
// error, returning nil on a clean shutdown and the decode error otherwise.
// A value that is valid JSON but has a mistyped field is answered with a
// ParseError response and reading continues.
func (s *StdioServer) Start(ctx context.Context) error {
	decoder := json.NewDecoder(bufio.NewReader(s.reader))

	for {
		var req RequestMessage
		err := decoder.Decode(&req)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			s.send(ErrorResponse(nil, ParseError, err.Error()))
			if _, ok := err.(*json.UnmarshalTypeError); ok {
				continue
			}
			return err
		}

		if err := ensureVersion(req.JSONRPC); err != nil {
			s.send(ErrorResponse(req.ID, InvalidRequest, err.Error()))
			continue
		}

		s.send(s.dispatch(ctx, req))
	}
}

func (s *StdioServer) dispatch(ctx context.Context, req RequestMessage) ResponseMessage {
	switch req.Method {
	case "initialize":
		return SuccessResponse(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo:      map[string]any{"name": "sce", "version": "0.1.0"},
			Capabilities:    map[string]any{"tools": map[string]any{}},
		})
	case "tools/list":
		return SuccessResponse(req.ID, map[string]any{"tools": GetToolDefinitions()})
	case "tools/call":
		return s.dispatchToolCall(ctx, req)
	default:
		return ErrorResponse(req.ID, MethodNotFound, fmt.Sprintf("unknown method %q", req.Method))
	}
}

type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (s *StdioServer) dispatchToolCall(ctx context.Context, req RequestMessage) ResponseMessage {
	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return ErrorResponse(req.ID, InvalidParams, "decoding tools/call params: "+err.Error())
	}

	result, mcpErr := s.handlers.HandleToolCall(ctx, params.Name, params.Arguments)
	if mcpErr != nil {
		return ErrorResponse(req.ID, mcpErr.Code, mcpErr.Message, mcpErr.Data)
	}
	return SuccessResponse(req.ID, map[string]any{"content": result})
}

func (s *StdioServer) send(resp ResponseMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	enc := json.NewEncoder(s.writer)
	_ = enc.Encode(resp)
}
