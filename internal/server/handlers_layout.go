package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"i3mcp/internal/command"
)

func (s *Server) handleLayoutChange(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.SetLayout{
		Layout: stringParam(request.GetArguments(), "layout", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleSplitOrientation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.Split{
		Orientation: stringParam(request.GetArguments(), "orientation", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

// gapsScopeParam maps the caller-facing current/all scope onto i3's
// workspace/global grammar words.
func gapsScopeParam(params map[string]interface{}) (string, *mcp.CallToolResult) {
	switch stringParam(params, "scope", "current") {
	case "current":
		return "workspace", nil
	case "all":
		return "global", nil
	default:
		res, _ := validationError("invalid scope: must be 'current' or 'all'")
		return "", res
	}
}

func (s *Server) handleGapsSet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	scope, errRes := gapsScopeParam(params)
	if errRes != nil {
		return errRes, nil
	}
	cmd, err := command.SetGaps{
		Inner: optIntParam(params, "inner"),
		Outer: optIntParam(params, "outer"),
		Scope: scope,
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleGapsAdjust(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	scope, errRes := gapsScopeParam(params)
	if errRes != nil {
		return errRes, nil
	}
	cmd, err := command.AdjustGaps{
		Type:      stringParam(params, "gap_type", ""),
		Operation: stringParam(params, "operation", ""),
		Amount:    intParam(params, "amount", 0),
		Scope:     scope,
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleGapsToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scope, errRes := gapsScopeParam(request.GetArguments())
	if errRes != nil {
		return errRes, nil
	}
	cmd, err := command.ToggleGaps{Scope: scope}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleBarMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.BarMode{
		Mode:  stringParam(params, "mode", ""),
		BarID: stringParam(params, "bar_id", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleBarHiddenState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.BarHiddenState{
		State: stringParam(params, "state", ""),
		BarID: stringParam(params, "bar_id", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleMarkSet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.SetMark{
		Mark: stringParam(params, "mark", ""),
		Mode: stringParam(params, "mode", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleMarkUnmark(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := command.Unmark{
		Mark: stringParam(request.GetArguments(), "mark", ""),
	}.Build()
	return s.runCommand(ctx, cmd)
}

func (s *Server) handleModeActivate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.ActivateMode{
		Name: stringParam(request.GetArguments(), "mode_name", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}
