package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"i3mcp/internal/command"
	"i3mcp/internal/i3"
	"i3mcp/internal/model"
	"i3mcp/internal/output"
)

func (s *Server) handleWorkspaceSwitch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.SwitchWorkspace{
		Name: stringParam(request.GetArguments(), "workspace", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleWorkspaceMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.MoveToWorkspace{
		Workspace: stringParam(params, "workspace", ""),
		Follow:    boolParam(params, "follow", false),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleWorkspaceNavigate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd, err := command.NavigateWorkspace{
		Direction: stringParam(request.GetArguments(), "direction", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

func (s *Server) handleWorkspaceRename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	cmd, err := command.RenameWorkspace{
		OldName: stringParam(params, "old_name", ""),
		NewName: stringParam(params, "new_name", ""),
	}.Build()
	return s.runBuilt(ctx, cmd, err)
}

type movedWorkspace struct {
	Workspace  string `json:"workspace"`
	FromOutput string `json:"from_output"`
	ToOutput   string `json:"to_output"`
}

type failedWorkspace struct {
	Workspace string            `json:"workspace"`
	Reason    string            `json:"reason"`
	Details   *i3.CommandResult `json:"details,omitempty"`
}

type bulkMoveResult struct {
	Success              bool              `json:"success"`
	MovedCount           int               `json:"moved_count"`
	FailedCount          int               `json:"failed_count"`
	MovedWorkspaces      []movedWorkspace  `json:"moved_workspaces"`
	FailedWorkspaces     []failedWorkspace `json:"failed_workspaces"`
	PreservedWorkspace   string            `json:"preserved_workspace,omitempty"`
	PlaceholderWorkspace string            `json:"placeholder_workspace,omitempty"`
}

// handleWorkspaceBulkMove moves workspaces to a target output one at a
// time. The placeholder keeps each losing output from ending up empty,
// which would make i3 invent a workspace there.
func (s *Server) handleWorkspaceBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	workspaces := stringSliceParam(params, "workspaces")
	targetOutput := stringParam(params, "target_output", "")
	preserve := stringParam(params, "preserve_workspace", "")
	placeholder := stringParam(params, "placeholder_workspace", "")

	if len(workspaces) == 0 {
		return validationError("workspaces must contain at least one workspace name")
	}
	if targetOutput == "" {
		return validationError("target_output is required")
	}

	var current []model.Workspace
	if errRes := s.queryInto(ctx, i3.QueryWorkspaces, &current); errRes != nil {
		return errRes, nil
	}
	workspaceMap := make(map[string]model.Workspace, len(current))
	for _, ws := range current {
		workspaceMap[ws.Name] = ws
	}

	result := bulkMoveResult{
		MovedWorkspaces:      []movedWorkspace{},
		FailedWorkspaces:     []failedWorkspace{},
		PreservedWorkspace:   preserve,
		PlaceholderWorkspace: placeholder,
	}

	// Park the placeholder on every output that is about to lose
	// workspaces, before any move happens.
	if placeholder != "" {
		seen := make(map[string]bool)
		for _, name := range workspaces {
			ws, ok := workspaceMap[name]
			if !ok || seen[ws.Output] {
				continue
			}
			seen[ws.Output] = true

			focusRes := s.client.RunCommand(ctx, command.FocusOutputCommand(ws.Output))
			if !focusRes.Success {
				continue
			}
			createRes := s.client.RunCommand(ctx, "workspace "+command.Quote(placeholder))
			if !createRes.Success {
				result.FailedWorkspaces = append(result.FailedWorkspaces, failedWorkspace{
					Workspace: placeholder,
					Reason:    "Failed to create placeholder workspace",
				})
			}
		}
	}

	for _, name := range workspaces {
		if preserve != "" && name == preserve {
			continue
		}
		ws, ok := workspaceMap[name]
		if !ok {
			result.FailedWorkspaces = append(result.FailedWorkspaces, failedWorkspace{
				Workspace: name,
				Reason:    "Workspace does not exist",
			})
			continue
		}

		moveRes := s.client.RunCommand(ctx, command.MoveWorkspaceToOutput(name, targetOutput))
		if moveRes.Success {
			result.MovedWorkspaces = append(result.MovedWorkspaces, movedWorkspace{
				Workspace:  name,
				FromOutput: ws.Output,
				ToOutput:   targetOutput,
			})
		} else {
			result.FailedWorkspaces = append(result.FailedWorkspaces, failedWorkspace{
				Workspace: name,
				Reason:    "Move command failed",
				Details:   &moveRes,
			})
		}
	}

	result.MovedCount = len(result.MovedWorkspaces)
	result.FailedCount = len(result.FailedWorkspaces)
	// Partial success when at least one workspace moved; all-skipped runs
	// count as success.
	result.Success = result.MovedCount > 0 || result.FailedCount == 0
	return s.text(output.JSON(result)), nil
}

func (s *Server) handleWorkspaceList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatParam(request.GetArguments(), output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}

	var workspaces []model.Workspace
	if errRes := s.queryInto(ctx, i3.QueryWorkspaces, &workspaces); errRes != nil {
		return errRes, nil
	}

	if format == output.FormatJSON {
		return s.text(output.JSON(struct {
			Success    bool              `json:"success"`
			Workspaces []model.Workspace `json:"workspaces"`
		}{true, workspaces})), nil
	}
	return s.text(output.Workspaces(workspaces)), nil
}
