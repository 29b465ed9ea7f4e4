package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"i3mcp/internal/command"
	"i3mcp/internal/i3"
	"i3mcp/internal/model"
	"i3mcp/internal/output"
)

func (s *Server) handleScratchpadShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := command.ShowScratchpad{
		Name: stringParam(request.GetArguments(), "scratchpad_name", ""),
	}.Build()
	return s.runCommand(ctx, cmd)
}

func (s *Server) handleScratchpadMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := command.MoveToScratchpad{
		MarkAs: stringParam(request.GetArguments(), "mark_as", ""),
	}.Build()
	return s.runCommand(ctx, cmd)
}

func (s *Server) handleScratchpadList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatParam(request.GetArguments(), output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}

	var tree model.Node
	if errRes := s.queryInto(ctx, i3.QueryTree, &tree); errRes != nil {
		return errRes, nil
	}

	scratchpad := model.FindNamedContainer(&tree, model.ScratchWorkspace)
	if scratchpad == nil {
		return s.text(output.JSON(struct {
			Success           bool          `json:"success"`
			ScratchpadWindows []*model.Node `json:"scratchpad_windows"`
			Message           string        `json:"message"`
		}{true, []*model.Node{}, "No scratchpad found or scratchpad is empty"})), nil
	}

	windows := model.FindWindows(scratchpad, model.Criteria{})

	if format == output.FormatJSON {
		return s.text(output.JSON(struct {
			Success           bool          `json:"success"`
			ScratchpadWindows []*model.Node `json:"scratchpad_windows"`
			Count             int           `json:"count"`
		}{true, windows, len(windows)})), nil
	}
	return s.text(output.ScratchpadWindows(windows)), nil
}

type hideAllResult struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message,omitempty"`
	HiddenCount   int                   `json:"hidden_count"`
	TotalFound    int                   `json:"total_found"`
	WindowsHidden []output.HiddenWindow `json:"windows_hidden,omitempty"`
	Errors        []output.HideFailure  `json:"errors,omitempty"`
}

// handleScratchpadHideAll hides every scratchpad window currently shown
// on a real output. Hiding what is already hidden would toggle it back
// into view, so only visible ones are touched.
func (s *Server) handleScratchpadHideAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatParam(request.GetArguments(), output.FormatJSON)
	if err != nil {
		return validationError(err.Error())
	}

	var tree model.Node
	if errRes := s.queryInto(ctx, i3.QueryTree, &tree); errRes != nil {
		return errRes, nil
	}

	visible := model.VisibleScratchpadWindows(&tree)
	if len(visible) == 0 {
		if format == output.FormatMarkdown {
			return s.text(output.HideAllSummary(nil, nil)), nil
		}
		return s.text(output.JSON(hideAllResult{
			Success: true,
			Message: "No visible scratchpad windows found",
		})), nil
	}

	var hidden []output.HiddenWindow
	var failures []output.HideFailure
	for _, w := range visible {
		res := s.client.RunCommand(ctx, command.HideWindow(w.WindowID))
		if res.Success {
			hidden = append(hidden, output.HiddenWindow{
				ID:    w.WindowID,
				Name:  w.Name,
				Class: w.Class,
			})
		} else {
			failures = append(failures, output.HideFailure{
				WindowID: w.WindowID,
				Name:     w.Name,
				Error:    res.Error,
			})
		}
	}

	if format == output.FormatMarkdown {
		return s.text(output.HideAllSummary(hidden, failures)), nil
	}

	result := hideAllResult{
		Success:       true,
		HiddenCount:   len(hidden),
		TotalFound:    len(visible),
		WindowsHidden: hidden,
		Errors:        failures,
	}
	if len(failures) > 0 {
		// Partial success when at least one window was hidden.
		result.Success = len(hidden) > 0
	}
	return s.text(output.JSON(result)), nil
}
