// Package i3 talks to the i3 window manager through i3-msg. The Client
// interface is the seam between the command/query logic and the live
// manager: handlers receive a Client value, tests inject fakes.
package i3

import (
	"context"
	"encoding/json"
)

// QueryKind names one of i3's get_* message types.
type QueryKind string

const (
	QueryTree         QueryKind = "tree"
	QueryWorkspaces   QueryKind = "workspaces"
	QueryOutputs      QueryKind = "outputs"
	QueryMarks        QueryKind = "marks"
	QueryBarConfig    QueryKind = "bar_config"
	QueryVersion      QueryKind = "version"
	QueryBindingModes QueryKind = "binding_modes"
	QueryBindingState QueryKind = "binding_state"
	QueryConfig       QueryKind = "config"
)

// ErrorKind classifies a failed transport call.
type ErrorKind string

const (
	ErrProcessFailure  ErrorKind = "process_failure"
	ErrMalformedOutput ErrorKind = "malformed_output"
	ErrTimeout         ErrorKind = "timeout"
)

// UnitReply is one element of i3's per-command JSON reply array: one
// entry per command unit on the line.
type UnitReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CommandResult is the outcome of executing one command line.
type CommandResult struct {
	Success   bool        `json:"success"`
	Output    []UnitReply `json:"output,omitempty"`
	Command   string      `json:"command"`
	Error     string      `json:"error,omitempty"`
	ErrorKind ErrorKind   `json:"error_kind,omitempty"`
	RawOutput string      `json:"raw_output,omitempty"`
}

// QueryResult is the outcome of a get_* query. Data holds the
// query-type-specific JSON payload on success.
type QueryResult struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	ErrorKind ErrorKind       `json:"error_kind,omitempty"`
	RawOutput string          `json:"raw_output,omitempty"`
}

// Client executes commands and queries against i3. Implementations are
// stateless between calls; each call opens, uses, and releases its own
// transport. Failed calls are reported in the result value, never as a
// Go error, so handlers can surface the manager's own error text.
type Client interface {
	RunCommand(ctx context.Context, command string) CommandResult
	Query(ctx context.Context, kind QueryKind, args ...string) QueryResult
}
