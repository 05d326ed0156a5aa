package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessResponseCarriesResultAndID(t *testing.T) {
	resp := SuccessResponse(1, "ok")
	require.Equal(t, JSONRPCVersion, resp.JSONRPC)
	require.Equal(t, 1, resp.ID)
	require.Equal(t, "ok", resp.Result)
	require.Nil(t, resp.Error)
}

func TestErrorResponseBuildsErrorObject(t *testing.T) {
	resp := ErrorResponse("req-1", InvalidParams, "bad input")
	require.NotNil(t, resp.Error)
	require.Equal(t, InvalidParams, resp.Error.Code)
	require.Equal(t, "bad input", resp.Error.Message)
}

func TestErrorResponseWithDataAttachesData(t *testing.T) {
	resp := ErrorResponseWithData("req-1", InternalError, "failed", map[string]any{"x": 1})
	require.NotNil(t, resp.Error)
	require.Equal(t, map[string]any{"x": 1}, resp.Error.Data)
}

func TestRequestMessageRoundTripsThroughJSON(t *testing.T) {
	req, err := NewRequestMessage(7, "tools/call", map[string]string{"name": "slice"})
	require.NoError(t, err)

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded RequestMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "tools/call", decoded.Method)
	require.EqualValues(t, 7, decoded.ID)
}

func TestMetaProgressToken(t *testing.T) {
	m := Meta{}.WithProgressToken("tok-1")
	tok, ok := m.ProgressToken()
	require.True(t, ok)
	require.Equal(t, "tok-1", tok)

	cleared := m.WithProgressToken("")
	_, ok = cleared.ProgressToken()
	require.False(t, ok)
}

func TestEnsureVersionRejectsMismatch(t *testing.T) {
	require.NoError(t, ensureVersion("2.0"))
	require.Error(t, ensureVersion(""))
	require.Error(t, ensureVersion("1.0"))
}
