// Package errs provides the engine's uniform error payload, adapted from
// internal/core/errorfmt.go's CLIError: a small struct with a stable
// string code plus a human message, usable as both a Go error and a JSON
// payload for the mcp server.
package errs

import "encoding/json"

// Error codes the engine can report. Named after the conditions spec.md
// calls out explicitly: an unrecognized language, a parser/grammar
// version mismatch, a point that doesn't land on any name or call, and a
// language config that fails its own internal consistency checks.
const (
	CodeUnknownLanguage       = "ERR_UNKNOWN_LANGUAGE"
	CodeParserVersionMismatch = "ERR_PARSER_VERSION_MISMATCH"
	CodeNoNameAtPoint         = "ERR_NO_NAME_AT_POINT"
	CodeNoCallAtPoint         = "ERR_NO_CALL_AT_POINT"
	CodeMalformedConfig       = "ERR_MALFORMED_CONFIG"
)

// CLIError is a uniform error payload for both human and JSON output.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// JSON renders the error as the mcp server's error payload.
func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New builds a CLIError with no wrapped cause.
func New(code, message string) error {
	return CLIError{Code: code, Message: message}
}

// Wrap builds a CLIError carrying inner's message as Detail.
func Wrap(code, message string, inner error) error {
	if inner == nil {
		return CLIError{Code: code, Message: message}
	}
	return CLIError{Code: code, Message: message, Detail: inner.Error()}
}

// NewWithDetail builds a CLIError carrying a caller-supplied Detail, for
// cases like NoNameAtPoint/NoCallAtPoint where the detail is structured
// context (the offending point) rather than a wrapped error's message.
func NewWithDetail(code, message, detail string) error {
	return CLIError{Code: code, Message: message, Detail: detail}
}
