package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"i3mcp/internal/i3"
	"i3mcp/internal/model"
	"i3mcp/internal/output"
)

func (s *Server) handleGetTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	format, err := formatParam(params, output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}

	criteria := model.Criteria{
		Class:     stringParam(params, "window_class", ""),
		Title:     stringParam(params, "window_title", ""),
		Instance:  stringParam(params, "window_instance", ""),
		Role:      stringParam(params, "window_role", ""),
		Type:      stringParam(params, "window_type", ""),
		Floating:  optBoolParam(params, "floating"),
		Urgent:    optBoolParam(params, "urgent"),
		Workspace: stringParam(params, "workspace", ""),
	}

	var tree model.Node
	if errRes := s.queryInto(ctx, i3.QueryTree, &tree); errRes != nil {
		return errRes, nil
	}

	if !criteria.Empty() {
		windows := model.FindWindows(&tree, criteria)
		if format == output.FormatJSON {
			return s.text(output.JSON(struct {
				Success bool          `json:"success"`
				Windows []*model.Node `json:"windows"`
				Count   int           `json:"count"`
			}{true, windows, len(windows)})), nil
		}
		return s.text(output.MatchingWindows(windows)), nil
	}

	if format == output.FormatJSON {
		return s.text(output.JSON(tree)), nil
	}
	// The full tree is too noisy as markdown; return a summary.
	all := model.FindWindows(&tree, model.Criteria{})
	return s.text(output.TreeSummary(len(all))), nil
}

// focusedWindow is the condensed view of the focused container.
type focusedWindow struct {
	Name     string   `json:"name"`
	Class    string   `json:"class"`
	Instance string   `json:"instance"`
	ID       int64    `json:"id"`
	Type     string   `json:"type"`
	Geometry string   `json:"geometry"`
	Floating bool     `json:"floating"`
	Marks    []string `json:"marks"`
}

func (s *Server) handleGetFocused(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var tree model.Node
	if errRes := s.queryInto(ctx, i3.QueryTree, &tree); errRes != nil {
		return errRes, nil
	}

	focused := model.FindFocused(&tree)
	if focused == nil {
		return s.text(output.JSON(struct {
			Success       bool           `json:"success"`
			FocusedWindow *focusedWindow `json:"focused_window"`
			Message       string         `json:"message"`
		}{true, nil, "No window is currently focused"})), nil
	}

	marks := focused.Marks
	if marks == nil {
		marks = []string{}
	}
	info := focusedWindow{
		Name:     orDefault(focused.Name, "Untitled"),
		Class:    orDefault(focused.WindowProperties.Class, "N/A"),
		Instance: orDefault(focused.WindowProperties.Instance, "N/A"),
		ID:       focused.Window,
		Type:     orDefault(focused.WindowType, "N/A"),
		Geometry: fmt.Sprintf("%dx%d+%d+%d", focused.Rect.Width, focused.Rect.Height, focused.Rect.X, focused.Rect.Y),
		Floating: focused.IsFloating(),
		Marks:    marks,
	}
	return s.text(output.JSON(struct {
		Success       bool          `json:"success"`
		FocusedWindow focusedWindow `json:"focused_window"`
	}{true, info})), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (s *Server) handleGetOutputs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatParam(request.GetArguments(), output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}

	var outputs []model.Output
	if errRes := s.queryInto(ctx, i3.QueryOutputs, &outputs); errRes != nil {
		return errRes, nil
	}

	if format == output.FormatJSON {
		return s.text(output.JSON(struct {
			Success bool           `json:"success"`
			Outputs []model.Output `json:"outputs"`
		}{true, outputs})), nil
	}
	return s.text(output.Outputs(outputs)), nil
}

func (s *Server) handleGetMarks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatParam(request.GetArguments(), output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}

	var marks []string
	if errRes := s.queryInto(ctx, i3.QueryMarks, &marks); errRes != nil {
		return errRes, nil
	}

	if format == output.FormatJSON {
		return s.text(output.JSON(struct {
			Success bool     `json:"success"`
			Marks   []string `json:"marks"`
			Count   int      `json:"count"`
		}{true, marks, len(marks)})), nil
	}
	return s.text(output.Marks(marks)), nil
}

func (s *Server) handleGetBindingModes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := formatParam(request.GetArguments(), output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}

	var modes []string
	if errRes := s.queryInto(ctx, i3.QueryBindingModes, &modes); errRes != nil {
		return errRes, nil
	}

	if format == output.FormatJSON {
		return s.text(output.JSON(struct {
			Success      bool     `json:"success"`
			BindingModes []string `json:"binding_modes"`
			Count        int      `json:"count"`
		}{true, modes, len(modes)})), nil
	}
	return s.text(output.BindingModes(modes)), nil
}

func (s *Server) handleGetBindingState(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.Query(ctx, i3.QueryBindingState)
	if !res.Success {
		return mcp.NewToolResultError(output.JSON(res)), nil
	}
	return s.text(output.JSON(struct {
		Success      bool            `json:"success"`
		BindingState json.RawMessage `json:"binding_state"`
	}{true, res.Data})), nil
}

func (s *Server) handleGetVersion(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.client.Query(ctx, i3.QueryVersion)
	if !res.Success {
		return mcp.NewToolResultError(output.JSON(res)), nil
	}
	return s.text(output.JSON(struct {
		Success bool            `json:"success"`
		Version json.RawMessage `json:"version"`
	}{true, res.Data})), nil
}

// i3ConfigPayload is the get_config reply.
type i3ConfigPayload struct {
	Config        string   `json:"config"`
	IncludedFiles []string `json:"included_files,omitempty"`
}

func (s *Server) handleGetConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	includeContent := boolParam(request.GetArguments(), "include_content", false)

	var cfg i3ConfigPayload
	if errRes := s.queryInto(ctx, i3.QueryConfig, &cfg); errRes != nil {
		return errRes, nil
	}

	if !includeContent {
		preview := cfg.Config
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		return s.text(output.JSON(struct {
			Success       bool   `json:"success"`
			ConfigSummary struct {
				ConfigLength  int      `json:"config_length"`
				ConfigPreview string   `json:"config_preview"`
				IncludedFiles []string `json:"included_files"`
			} `json:"config_summary"`
			Note string `json:"note"`
		}{
			Success: true,
			ConfigSummary: struct {
				ConfigLength  int      `json:"config_length"`
				ConfigPreview string   `json:"config_preview"`
				IncludedFiles []string `json:"included_files"`
			}{len(cfg.Config), preview, cfg.IncludedFiles},
			Note: "Use include_content=true to get full config",
		})), nil
	}

	return s.text(output.JSON(struct {
		Success bool            `json:"success"`
		Config  i3ConfigPayload `json:"config"`
	}{true, cfg})), nil
}

func (s *Server) handleGetBarConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	format, err := formatParam(params, output.FormatMarkdown)
	if err != nil {
		return validationError(err.Error())
	}
	barID := stringParam(params, "bar_id", "")

	if barID == "" {
		var ids []string
		if errRes := s.queryInto(ctx, i3.QueryBarConfig, &ids); errRes != nil {
			return errRes, nil
		}
		if format == output.FormatJSON {
			return s.text(output.JSON(struct {
				Success bool     `json:"success"`
				BarIDs  []string `json:"bar_ids"`
				Count   int      `json:"count"`
			}{true, ids, len(ids)})), nil
		}
		return s.text(output.BarIDs(ids)), nil
	}

	res := s.client.Query(ctx, i3.QueryBarConfig, barID)
	if !res.Success {
		return mcp.NewToolResultError(output.JSON(res)), nil
	}

	if format == output.FormatJSON {
		return s.text(output.JSON(struct {
			Success   bool            `json:"success"`
			BarConfig json.RawMessage `json:"bar_config"`
		}{true, res.Data})), nil
	}

	var cfg model.BarConfig
	if err := json.Unmarshal(res.Data, &cfg); err != nil {
		return mcp.NewToolResultError(output.JSON(failure{
			Error: "failed to decode bar_config payload: " + err.Error(),
		})), nil
	}
	return s.text(output.BarConfig(barID, cfg)), nil
}
