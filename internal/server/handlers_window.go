package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"i3mcp/internal/command"
	"i3mcp/internal/i3"
	"i3mcp/internal/model"
	"i3mcp/internal/output"
)

func (s *Server) handleFocusWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.FocusWindow{
		Direction: stringParam(params, "direction", ""),
		Target:    stringParam(params, "target", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleMoveWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.MoveWindow{
		Workspace: stringParam(params, "workspace", ""),
		Direction: stringParam(params, "direction", ""),
		Center:    boolParam(params, "center", false),
		ToMouse:   boolParam(params, "to_mouse", false),
		ToMark:    stringParam(params, "to_mark", ""),
		X:         optIntParam(params, "position_x"),
		Y:         optIntParam(params, "position_y"),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleResizeWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.ResizeWindow{
		Width:      optIntParam(params, "absolute_width"),
		Height:     optIntParam(params, "absolute_height"),
		GrowShrink: stringParam(params, "grow_shrink", ""),
		Dimension:  stringParam(params, "dimension", ""),
		Amount:     intParam(params, "amount", 10),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleKillWindow(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runCommand(ctx, command.Kill)
}

// execResult is the combined outcome of an exec launch, including the
// optional workspace switch that precedes it.
type execResult struct {
	Success    bool           `json:"success"`
	Output     []i3.UnitReply `json:"output,omitempty"`
	Command    string         `json:"command"`
	Error      string         `json:"error,omitempty"`
	Notes      []string       `json:"notes,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}

func (s *Server) handleExec(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	launch := command.Exec{
		Command:          stringParam(params, "command", ""),
		Workspace:        stringParam(params, "workspace", ""),
		MoveToScratchpad: boolParam(params, "move_to_scratchpad", false),
		MarkAs:           stringParam(params, "mark_as", ""),
	}
	floating := boolParam(params, "floating", false)
	fullscreen := boolParam(params, "fullscreen", false)

	steps, err := launch.Steps()
	if err != nil {
		return validationError(err.Error())
	}

	// The workspace switch is synchronous and checked before the launch,
	// so the application appears on the right workspace. A failed step
	// stops the sequence.
	var replies []i3.UnitReply
	for _, step := range steps {
		res := s.client.RunCommand(ctx, step)
		replies = append(replies, res.Output...)
		if !res.Success {
			return mcp.NewToolResultError(output.JSON(execResult{
				Output:  replies,
				Command: strings.Join(steps, "; "),
				Error:   res.Error,
			})), nil
		}
	}

	result := execResult{
		Success: true,
		Output:  replies,
		Command: strings.Join(steps, "; "),
	}

	// exec cannot apply window settings: the window does not exist yet.
	// Point the caller at the follow-up tools and the for_window rule
	// that would automate it.
	if floating || fullscreen || launch.MoveToScratchpad {
		result.Notes = append(result.Notes, "Application launched. To apply floating/fullscreen/scratchpad settings:")
		if floating {
			result.Notes = append(result.Notes, "  - Use i3_move_window or manually float the window once it appears")
		}
		if fullscreen {
			result.Notes = append(result.Notes, "  - Run 'i3-msg fullscreen toggle' once window appears, or ask to make it fullscreen")
		}
		if launch.MoveToScratchpad {
			markInstruction := ""
			if launch.MarkAs != "" {
				markInstruction = fmt.Sprintf(" and mark it as '%s'", launch.MarkAs)
			}
			result.Notes = append(result.Notes, "  - Use i3_scratchpad_move to move the window to scratchpad"+markInstruction)
		}

		suggestion := fmt.Sprintf(
			"For automatic window management on launch, consider adding rules to your i3 config:\n  for_window [class=%q] ",
			strings.Fields(launch.Command)[0])
		if floating {
			suggestion += "floating enable, "
		}
		if fullscreen {
			suggestion += "fullscreen enable, "
		}
		if launch.MoveToScratchpad {
			suggestion += "move scratchpad"
			if launch.MarkAs != "" {
				suggestion += fmt.Sprintf(", mark %q", launch.MarkAs)
			}
		}
		result.Suggestion = suggestion
	}

	return s.text(output.JSON(result)), nil
}

func (s *Server) handleMoveToOutput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.MoveToOutput{
		Output:    stringParam(params, "output", ""),
		Direction: stringParam(params, "direction", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleFocusOutput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.FocusOutput{
		Output:    stringParam(params, "output", ""),
		Direction: stringParam(params, "direction", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

// tristateMode maps the optional enable argument onto i3's
// toggle/enable/disable grammar.
func tristateMode(params map[string]interface{}) string {
	enable := optBoolParam(params, "enable")
	switch {
	case enable == nil:
		return "toggle"
	case *enable:
		return "enable"
	default:
		return "disable"
	}
}

func (s *Server) handleFloatingToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.Floating{Mode: tristateMode(request.GetArguments())}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleStickyToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.Sticky{Mode: tristateMode(request.GetArguments())}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleFullscreenToggle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.Fullscreen{
		Mode:   tristateMode(params),
		Global: boolParam(params, "global", false),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleBorderSet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.Border{
		Style: stringParam(params, "style", ""),
		Width: optIntParam(params, "width"),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

// swapResult reports a two-step swap (focus source, then swap with
// target).
type swapResult struct {
	Success bool           `json:"success"`
	Output  []i3.UnitReply `json:"output,omitempty"`
	Command string         `json:"command"`
	Error   string         `json:"error,omitempty"`
	Note    string         `json:"note,omitempty"`
}

func (s *Server) handleSwapContainers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	swap := command.SwapContainers{
		TargetID:    int64Param(params, "target_id", 0),
		TargetConID: int64Param(params, "target_con_id", 0),
		TargetMark:  stringParam(params, "target_mark", ""),
		SourceID:    int64Param(params, "source_id", 0),
		SourceConID: int64Param(params, "source_con_id", 0),
		SourceMark:  stringParam(params, "source_mark", ""),
	}
	if err := swap.Validate(); err != nil {
		return validationError(err.Error())
	}

	if !swap.HasSource() {
		return s.runCommand(ctx, swap.SwapCommand())
	}

	// Focus the source first; abort the swap if that fails, otherwise
	// the wrong container would be swapped.
	focusCmd := swap.FocusCommand()
	focusRes := s.client.RunCommand(ctx, focusCmd)
	if !focusRes.Success {
		return mcp.NewToolResultError(output.JSON(failure{
			Error: "failed to focus source window: " + focusRes.Error,
		})), nil
	}

	swapCmd := swap.SwapCommand()
	swapRes := s.client.RunCommand(ctx, swapCmd)
	result := swapResult{
		Success: swapRes.Success,
		Output:  swapRes.Output,
		Command: focusCmd + "; " + swapCmd,
		Error:   swapRes.Error,
		Note:    "Focused source window then swapped with target",
	}
	if !swapRes.Success {
		return mcp.NewToolResultError(output.JSON(result)), nil
	}
	return s.text(output.JSON(result)), nil
}

func (s *Server) handleFocusByCriteria(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	criteria := model.Criteria{
		Class:    stringParam(params, "window_class", ""),
		Title:    stringParam(params, "window_title", ""),
		Instance: stringParam(params, "window_instance", ""),
		Mark:     stringParam(params, "con_mark", ""),
		Urgent:   optBoolParam(params, "urgent"),
	}
	cmd, err := command.FocusByCriteria(criteria)
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleFocusMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.FocusModeToggle{
		Target: stringParam(request.GetArguments(), "target", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}
