package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/engine"
	"github.com/oxhq/sce/internal/langconfig/languages"
	"github.com/oxhq/sce/internal/langguess"
)

func newTestServer(t *testing.T, input string) (*StdioServer, *bytes.Buffer) {
	t.Helper()
	reg, err := languages.Registry()
	require.NoError(t, err)
	h := NewHandlers(engine.New(reg, langguess.FromRegistry(reg)), nil)

	out := &bytes.Buffer{}
	return NewStdioServer(h, strings.NewReader(input), out), out
}

func decodeResponses(t *testing.T, buf *bytes.Buffer) []ResponseMessage {
	t.Helper()
	dec := json.NewDecoder(buf)
	var out []ResponseMessage
	for {
		var resp ResponseMessage
		if err := dec.Decode(&resp); err != nil {
			break
		}
		out = append(out, resp)
	}
	return out
}

func TestStartHandlesInitializeAndToolsList(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n"

	s, out := newTestServer(t, input)
	require.NoError(t, s.Start(context.Background()))

	resps := decodeResponses(t, out)
	require.Len(t, resps, 2)
	require.Nil(t, resps[0].Error)
	require.Nil(t, resps[1].Error)
}

func TestStartHandlesToolsCallForSlice(t *testing.T) {
	params, err := json.Marshal(toolCallParams{
		Name: "slice",
		Arguments: mustMarshal(t, sliceParams{
			Source: sourcePayload{
				Filename: "prog.py",
				Content:  "def f(a, b):\n    x = a + 1\n    y = b + 1\n    return x\n",
				Point:    pointPayload{Row: 3, Column: 11},
			},
			Direction: "backward",
		}),
	})
	require.NoError(t, err)

	req, err := json.Marshal(RequestMessage{JSONRPC: JSONRPCVersion, ID: 1, Method: "tools/call", Params: params})
	require.NoError(t, err)

	s, out := newTestServer(t, string(req)+"\n")
	require.NoError(t, s.Start(context.Background()))

	resps := decodeResponses(t, out)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)
}

func TestStartReturnsMethodNotFoundForUnknownMethod(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"bogus"}` + "\n"
	s, out := newTestServer(t, input)
	require.NoError(t, s.Start(context.Background()))

	resps := decodeResponses(t, out)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	require.Equal(t, MethodNotFound, resps[0].Error.Code)
}

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
