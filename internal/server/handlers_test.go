package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"i3mcp/internal/i3"
)

// fakeClient records calls and returns programmable results. The
// default is success for everything.
type fakeClient struct {
	commands  []string
	commandFn func(cmd string) i3.CommandResult
	queryFn   func(kind i3.QueryKind, args ...string) i3.QueryResult
}

func (f *fakeClient) RunCommand(_ context.Context, cmd string) i3.CommandResult {
	f.commands = append(f.commands, cmd)
	if f.commandFn != nil {
		return f.commandFn(cmd)
	}
	return i3.CommandResult{Success: true, Command: cmd, Output: []i3.UnitReply{{Success: true}}}
}

func (f *fakeClient) Query(_ context.Context, kind i3.QueryKind, args ...string) i3.QueryResult {
	if f.queryFn != nil {
		return f.queryFn(kind, args...)
	}
	return i3.QueryResult{Success: true, Data: json.RawMessage(`[]`)}
}

func newTestServer(client *fakeClient) *Server {
	return New(client, 0, zerolog.Nop())
}

func callReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return tc.Text
}

func TestFocusWindow_MutualExclusionSendsNothing(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleFocusWindow(context.Background(), callReq(map[string]interface{}{
		"direction": "left",
		"target":    "parent",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected an error result")
	}
	if len(client.commands) != 0 {
		t.Errorf("validation failure must not reach the transport, got %v", client.commands)
	}
}

func TestFocusWindow_Direction(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleFocusWindow(context.Background(), callReq(map[string]interface{}{
		"direction": "left",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if len(client.commands) != 1 || client.commands[0] != "focus left" {
		t.Errorf("commands = %v", client.commands)
	}
}

func TestMoveWindow_NumericParams(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	// JSON numbers arrive as float64.
	res, err := s.handleMoveWindow(context.Background(), callReq(map[string]interface{}{
		"position_x": float64(100),
		"position_y": float64(200),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if client.commands[0] != "move position 100 px 200 px" {
		t.Errorf("commands = %v", client.commands)
	}
}

func TestExec_WorkspaceSwitchRunsFirst(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleExec(context.Background(), callReq(map[string]interface{}{
		"command":   "firefox",
		"workspace": "3",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	want := []string{`workspace "3"`, "exec --no-startup-id firefox"}
	if len(client.commands) != 2 || client.commands[0] != want[0] || client.commands[1] != want[1] {
		t.Errorf("commands = %v, want %v", client.commands, want)
	}
}

func TestExec_WorkspaceFailureAbortsLaunch(t *testing.T) {
	client := &fakeClient{
		commandFn: func(cmd string) i3.CommandResult {
			return i3.CommandResult{Command: cmd, Error: "no such workspace", ErrorKind: i3.ErrProcessFailure}
		},
	}
	s := newTestServer(client)

	res, err := s.handleExec(context.Background(), callReq(map[string]interface{}{
		"command":   "firefox",
		"workspace": "3",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected an error result")
	}
	if len(client.commands) != 1 {
		t.Errorf("exec must not run after a failed workspace switch, got %v", client.commands)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "no such workspace") || !strings.Contains(text, `workspace \"3\"; exec --no-startup-id firefox`) {
		t.Errorf("expected the full command sequence in the error payload, got %s", text)
	}
}

func TestExec_WhitespaceCommandIsRejected(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleExec(context.Background(), callReq(map[string]interface{}{
		"command":  "   ",
		"floating": true,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError || len(client.commands) != 0 {
		t.Errorf("expected validation failure before transport, commands = %v", client.commands)
	}
}

func TestExec_MarkRequiresScratchpad(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleExec(context.Background(), callReq(map[string]interface{}{
		"command": "kitty",
		"mark_as": "term",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError || len(client.commands) != 0 {
		t.Errorf("expected validation failure before transport, commands = %v", client.commands)
	}
}

func TestExec_NotesForDeferredSettings(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleExec(context.Background(), callReq(map[string]interface{}{
		"command":  "gnome-calculator",
		"floating": true,
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "notes") || !strings.Contains(text, "for_window") {
		t.Errorf("expected launch notes and config suggestion, got %s", text)
	}
}

func TestSwapContainers_AbortsWhenSourceFocusFails(t *testing.T) {
	client := &fakeClient{
		commandFn: func(cmd string) i3.CommandResult {
			return i3.CommandResult{Command: cmd, Error: "no match", ErrorKind: i3.ErrProcessFailure}
		},
	}
	s := newTestServer(client)

	res, err := s.handleSwapContainers(context.Background(), callReq(map[string]interface{}{
		"target_id": float64(100),
		"source_id": float64(42),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected an error result")
	}
	if len(client.commands) != 1 || client.commands[0] != "[id=42] focus" {
		t.Errorf("swap must abort after a failed focus, got %v", client.commands)
	}
	if !strings.Contains(resultText(t, res), "failed to focus source window") {
		t.Errorf("unexpected error text: %s", resultText(t, res))
	}
}

func TestSwapContainers_SourceThenTarget(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleSwapContainers(context.Background(), callReq(map[string]interface{}{
		"target_mark": "browser",
		"source_id":   float64(42),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	want := []string{"[id=42] focus", `swap container with mark "browser"`}
	if len(client.commands) != 2 || client.commands[0] != want[0] || client.commands[1] != want[1] {
		t.Errorf("commands = %v, want %v", client.commands, want)
	}
}

func TestSwapContainers_TwoTargetsRejected(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, err := s.handleSwapContainers(context.Background(), callReq(map[string]interface{}{
		"target_id":   float64(1),
		"target_mark": "m",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError || len(client.commands) != 0 {
		t.Errorf("expected validation failure, commands = %v", client.commands)
	}
}

const bulkWorkspacesJSON = `[
	{"num": 1, "name": "1", "output": "eDP-1"},
	{"num": 2, "name": "2", "output": "eDP-1"},
	{"num": 3, "name": "3", "output": "HDMI-1"}
]`

func TestWorkspaceBulkMove_PreserveIsSkippedEntirely(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(bulkWorkspacesJSON)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"workspaces":         []interface{}{"1", "2"},
		"target_output":      "DP-1",
		"preserve_workspace": "1",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if len(client.commands) != 1 || client.commands[0] != `workspace "2"; move workspace to output DP-1` {
		t.Errorf("commands = %v", client.commands)
	}

	var result bulkMoveResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatal(err)
	}
	if result.MovedCount != 1 || result.FailedCount != 0 {
		t.Errorf("result = %+v", result)
	}
	// The preserved workspace is neither moved nor failed.
	for _, f := range result.FailedWorkspaces {
		if f.Workspace == "1" {
			t.Error("preserved workspace must not appear in failures")
		}
	}
}

func TestWorkspaceBulkMove_MissingWorkspaceFails(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(bulkWorkspacesJSON)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"workspaces":    []interface{}{"9"},
		"target_output": "DP-1",
	}))
	if err != nil {
		t.Fatal(err)
	}
	var result bulkMoveResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatal(err)
	}
	if result.FailedCount != 1 || result.FailedWorkspaces[0].Reason != "Workspace does not exist" {
		t.Errorf("result = %+v", result)
	}
	if len(client.commands) != 0 {
		t.Errorf("missing workspace must not produce commands, got %v", client.commands)
	}
}

func TestWorkspaceBulkMove_AllFailedReportsFailure(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(bulkWorkspacesJSON)}
		},
		commandFn: func(cmd string) i3.CommandResult {
			return i3.CommandResult{Command: cmd, Error: "output DP-1 unavailable", ErrorKind: i3.ErrProcessFailure}
		},
	}
	s := newTestServer(client)

	res, err := s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"workspaces":    []interface{}{"1", "2"},
		"target_output": "DP-1",
	}))
	if err != nil {
		t.Fatal(err)
	}

	var result bulkMoveResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Error("success must be false when no workspace moved")
	}
	if result.MovedCount != 0 || result.FailedCount != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestWorkspaceBulkMove_PartialFailureStillSucceeds(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(bulkWorkspacesJSON)}
		},
		commandFn: func(cmd string) i3.CommandResult {
			if strings.Contains(cmd, `workspace "2"`) {
				return i3.CommandResult{Command: cmd, Error: "move failed", ErrorKind: i3.ErrProcessFailure}
			}
			return i3.CommandResult{Success: true, Command: cmd, Output: []i3.UnitReply{{Success: true}}}
		},
	}
	s := newTestServer(client)

	res, err := s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"workspaces":    []interface{}{"1", "2"},
		"target_output": "DP-1",
	}))
	if err != nil {
		t.Fatal(err)
	}

	var result bulkMoveResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Success || result.MovedCount != 1 || result.FailedCount != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestWorkspaceBulkMove_PlaceholderPerLosingOutput(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(bulkWorkspacesJSON)}
		},
	}
	s := newTestServer(client)

	_, err := s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"workspaces":            []interface{}{"1", "2", "3"},
		"target_output":         "DP-1",
		"placeholder_workspace": "park",
	}))
	if err != nil {
		t.Fatal(err)
	}
	// Two losing outputs (eDP-1, HDMI-1) get a focus+create pair each,
	// before any move runs.
	want := []string{
		"focus output eDP-1", `workspace "park"`,
		"focus output HDMI-1", `workspace "park"`,
		`workspace "1"; move workspace to output DP-1`,
		`workspace "2"; move workspace to output DP-1`,
		`workspace "3"; move workspace to output DP-1`,
	}
	if len(client.commands) != len(want) {
		t.Fatalf("commands = %v", client.commands)
	}
	for i, w := range want {
		if client.commands[i] != w {
			t.Errorf("command %d = %q, want %q", i, client.commands[i], w)
		}
	}
}

func TestWorkspaceBulkMove_RequiresArguments(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, _ := s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"target_output": "DP-1",
	}))
	if !res.IsError {
		t.Error("expected error for empty workspaces")
	}
	res, _ = s.handleWorkspaceBulkMove(context.Background(), callReq(map[string]interface{}{
		"workspaces": []interface{}{"1"},
	}))
	if !res.IsError {
		t.Error("expected error for missing target_output")
	}
	if len(client.commands) != 0 {
		t.Errorf("commands = %v", client.commands)
	}
}

const scratchpadTreeJSON = `{
	"id": 1, "type": "root",
	"nodes": [
		{
			"id": 2, "type": "floating_con", "scratchpad_state": "changed", "output": "__i3",
			"nodes": [{"id": 3, "window": 201, "name": "Hidden", "window_properties": {"class": "a"}}]
		},
		{
			"id": 4, "type": "floating_con", "scratchpad_state": "fresh", "output": "HDMI-1",
			"nodes": [{"id": 5, "window": 202, "name": "Shown", "window_properties": {"class": "b"}}]
		}
	]
}`

func TestScratchpadHideAll_OnlyVisibleWindowsHidden(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(scratchpadTreeJSON)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleScratchpadHideAll(context.Background(), callReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if len(client.commands) != 1 || client.commands[0] != "[id=202] move scratchpad" {
		t.Errorf("commands = %v", client.commands)
	}

	var result hideAllResult
	if err := json.Unmarshal([]byte(resultText(t, res)), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Success || result.HiddenCount != 1 || result.TotalFound != 1 {
		t.Errorf("result = %+v", result)
	}
}

func TestScratchpadHideAll_NothingVisibleIsNoop(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(`{"id": 1, "type": "root"}`)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleScratchpadHideAll(context.Background(), callReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(client.commands) != 0 {
		t.Errorf("no command must run when nothing is visible, got %v", client.commands)
	}
	if !strings.Contains(resultText(t, res), "No visible scratchpad windows found") {
		t.Errorf("got %s", resultText(t, res))
	}
}

const filterTreeJSON = `{
	"id": 1, "type": "root",
	"nodes": [
		{"id": 2, "window": 101, "name": "Mozilla Firefox", "window_properties": {"class": "Firefox"}},
		{"id": 3, "window": 102, "name": "Terminal", "window_properties": {"class": "Terminator"}}
	]
}`

func TestGetTree_FilteredJSON(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(filterTreeJSON)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleGetTree(context.Background(), callReq(map[string]interface{}{
		"window_class":    "firefox",
		"response_format": "json",
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	var payload struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatal(err)
	}
	if !payload.Success || payload.Count != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestGetTree_UnfilteredMarkdownIsSummary(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(filterTreeJSON)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleGetTree(context.Background(), callReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "Total windows: 2") {
		t.Errorf("got %s", text)
	}
}

func TestGetFocused_NoFocusedWindow(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(`{"id": 1, "type": "root"}`)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleGetFocused(context.Background(), callReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resultText(t, res), "No window is currently focused") {
		t.Errorf("got %s", resultText(t, res))
	}
}

func TestGetMarks_MarkdownDefault(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(`["browser", "term"]`)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleGetMarks(context.Background(), callReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "### i3 Marks") || !strings.Contains(text, "- browser") {
		t.Errorf("got %s", text)
	}
}

func TestGapsAdjust_InvalidScopeSendsNothing(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	res, _ := s.handleGapsAdjust(context.Background(), callReq(map[string]interface{}{
		"gap_type":  "inner",
		"operation": "plus",
		"amount":    float64(5),
		"scope":     "everywhere",
	}))
	if !res.IsError || len(client.commands) != 0 {
		t.Errorf("expected validation failure, commands = %v", client.commands)
	}
}

func TestGapsAdjust_ScopeMapping(t *testing.T) {
	client := &fakeClient{}
	s := newTestServer(client)

	_, err := s.handleGapsAdjust(context.Background(), callReq(map[string]interface{}{
		"gap_type":  "inner",
		"operation": "plus",
		"amount":    float64(5),
		"scope":     "all",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if client.commands[0] != "gaps inner global plus 5" {
		t.Errorf("commands = %v", client.commands)
	}
}

func TestResponseTruncation(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Success: true, Data: json.RawMessage(filterTreeJSON)}
		},
	}
	s := New(client, 50, zerolog.Nop())

	res, err := s.handleGetTree(context.Background(), callReq(map[string]interface{}{
		"response_format": "json",
	}))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, "**Response truncated** (exceeded 50 characters)") {
		t.Errorf("expected truncation notice, got %s", text)
	}
}

func TestGetBarConfig_SpecificBarPassesArg(t *testing.T) {
	var gotArgs []string
	client := &fakeClient{
		queryFn: func(kind i3.QueryKind, args ...string) i3.QueryResult {
			gotArgs = args
			return i3.QueryResult{Success: true, Data: json.RawMessage(`{"id": "bar-0", "position": "top"}`)}
		},
	}
	s := newTestServer(client)

	res, err := s.handleGetBarConfig(context.Background(), callReq(map[string]interface{}{
		"bar_id": "bar-0",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "bar-0" {
		t.Errorf("query args = %v", gotArgs)
	}
	if !strings.Contains(resultText(t, res), "### i3bar Configuration: bar-0") {
		t.Errorf("got %s", resultText(t, res))
	}
}

func TestQueryFailurePropagates(t *testing.T) {
	client := &fakeClient{
		queryFn: func(i3.QueryKind, ...string) i3.QueryResult {
			return i3.QueryResult{Error: "connection refused", ErrorKind: i3.ErrProcessFailure}
		},
	}
	s := newTestServer(client)

	res, err := s.handleWorkspaceList(context.Background(), callReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected an error result")
	}
	if !strings.Contains(resultText(t, res), "connection refused") {
		t.Errorf("got %s", resultText(t, res))
	}
}
