// Package server exposes i3 control as MCP tools. Handlers validate
// arguments, synthesize commands via the command package, execute them
// through an i3.Client, and render results as JSON or markdown.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"i3mcp/internal/i3"
	"i3mcp/internal/output"
	"i3mcp/internal/version"
)

// Server wraps the MCP server with the i3 client and response settings.
type Server struct {
	client    i3.Client
	charLimit int
	log       zerolog.Logger
	mcp       *mcpserver.MCPServer
}

// New creates a server with every tool registered. charLimit of zero or
// less disables response truncation.
func New(client i3.Client, charLimit int, log zerolog.Logger) *Server {
	s := &Server{
		client:    client,
		charLimit: charLimit,
		log:       log,
	}
	s.mcp = mcpserver.NewMCPServer("i3mcp", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server on the given transport.
func (s *Server) Serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		s.log.Info().Int("port", port).Msg("serving MCP over http")
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or http)", transport)
	}
}

// text caps and wraps successful responses.
func (s *Server) text(content string) *mcp.CallToolResult {
	return mcp.NewToolResultText(output.Truncate(content, s.charLimit))
}

func formatOption() mcp.PropertyOption {
	return mcp.Description("Output format: 'json' for raw data or 'markdown' for human-readable")
}

func (s *Server) registerTools() {
	// Window management
	s.mcp.AddTool(
		mcp.NewTool("i3_focus_window",
			mcp.WithDescription("Focus a window by direction or tree target. Exactly one of direction and target is required."),
			mcp.WithString("direction", mcp.Description("Direction to focus: 'left', 'right', 'up', 'down'")),
			mcp.WithString("target", mcp.Description("Tree target to focus: 'parent' or 'child'")),
		),
		s.handleFocusWindow,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_move_window",
			mcp.WithDescription("Move the focused window by direction, to a workspace, or to a position (center, mouse, mark, or absolute coordinates)"),
			mcp.WithString("direction", mcp.Description("Direction to move: 'left', 'right', 'up', 'down'")),
			mcp.WithNumber("position_x", mcp.Description("Absolute X position for floating windows")),
			mcp.WithNumber("position_y", mcp.Description("Absolute Y position for floating windows")),
			mcp.WithBoolean("center", mcp.Description("Move to center of screen")),
			mcp.WithBoolean("to_mouse", mcp.Description("Move to mouse cursor position")),
			mcp.WithString("to_mark", mcp.Description("Move to marked window's position")),
			mcp.WithString("workspace", mcp.Description("Move window to specified workspace (e.g. '1', 'web')")),
		),
		s.handleMoveWindow,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_resize_window",
			mcp.WithDescription("Resize the focused window relatively (grow/shrink) or to an absolute floating size"),
			mcp.WithString("grow_shrink", mcp.Description("Whether to 'grow' or 'shrink' the window")),
			mcp.WithString("dimension", mcp.Description("Which dimension to resize: 'width' or 'height'")),
			mcp.WithNumber("amount", mcp.Description("Amount in pixels to resize (default 10)")),
			mcp.WithNumber("absolute_width", mcp.Description("Set absolute width in pixels (for floating windows)")),
			mcp.WithNumber("absolute_height", mcp.Description("Set absolute height in pixels (for floating windows)")),
		),
		s.handleResizeWindow,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_kill_window",
			mcp.WithDescription("Close the currently focused window"),
		),
		s.handleKillWindow,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_exec",
			mcp.WithDescription("Execute an application, optionally on a specific workspace"),
			mcp.WithString("command", mcp.Required(), mcp.Description("Command to execute (e.g. 'kitty', 'firefox')")),
			mcp.WithString("workspace", mcp.Description("Workspace to launch the application on")),
			mcp.WithBoolean("move_to_scratchpad", mcp.Description("Move launched application to scratchpad after launching")),
			mcp.WithString("mark_as", mcp.Description("Mark to assign to the window; requires move_to_scratchpad")),
			mcp.WithBoolean("floating", mcp.Description("Launch application as a floating window")),
			mcp.WithBoolean("fullscreen", mcp.Description("Launch application in fullscreen mode")),
		),
		s.handleExec,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_move_to_output",
			mcp.WithDescription("Move the focused container to another output (monitor). Exactly one of output and direction is required."),
			mcp.WithString("output", mcp.Description("Output name (e.g. 'eDP-1', 'HDMI-1')")),
			mcp.WithString("direction", mcp.Description("Direction to move: 'left', 'right', 'up', 'down'")),
		),
		s.handleMoveToOutput,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_floating_toggle",
			mcp.WithDescription("Toggle or set floating mode for the focused window"),
			mcp.WithBoolean("enable", mcp.Description("true to enable, false to disable; omit to toggle")),
		),
		s.handleFloatingToggle,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_border_set",
			mcp.WithDescription("Set the border style of the focused window"),
			mcp.WithString("style", mcp.Required(), mcp.Description("Border style: 'normal', 'pixel', 'none', or 'toggle'")),
			mcp.WithNumber("width", mcp.Description("Border width in pixels (for 'pixel' style)")),
		),
		s.handleBorderSet,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_sticky_toggle",
			mcp.WithDescription("Toggle or set sticky mode for the focused floating window"),
			mcp.WithBoolean("enable", mcp.Description("true to enable, false to disable; omit to toggle")),
		),
		s.handleStickyToggle,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_fullscreen_toggle",
			mcp.WithDescription("Toggle or set fullscreen for the focused window"),
			mcp.WithBoolean("enable", mcp.Description("true to enable, false to disable; omit to toggle")),
			mcp.WithBoolean("global", mcp.Description("Fullscreen across all outputs")),
		),
		s.handleFullscreenToggle,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_swap_containers",
			mcp.WithDescription("Swap two containers. Without a source, swaps the focused window with the target."),
			mcp.WithNumber("target_id", mcp.Description("X11 window ID of the target container")),
			mcp.WithNumber("target_con_id", mcp.Description("i3 container ID of the target container")),
			mcp.WithString("target_mark", mcp.Description("Mark of the target container")),
			mcp.WithNumber("source_id", mcp.Description("X11 window ID of the source container (default: focused window)")),
			mcp.WithNumber("source_con_id", mcp.Description("i3 container ID of the source container")),
			mcp.WithString("source_mark", mcp.Description("Mark of the source container")),
		),
		s.handleSwapContainers,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_focus_by_criteria",
			mcp.WithDescription("Focus a window matching criteria (class, title, instance, mark, urgency). At least one criterion is required."),
			mcp.WithString("window_class", mcp.Description("Window class to focus (e.g. 'Firefox')")),
			mcp.WithString("window_title", mcp.Description("Window title to match (partial)")),
			mcp.WithString("window_instance", mcp.Description("Window instance to focus")),
			mcp.WithString("con_mark", mcp.Description("Container mark to focus")),
			mcp.WithBoolean("urgent", mcp.Description("Focus urgent (true) or non-urgent (false) window")),
		),
		s.handleFocusByCriteria,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_focus_mode",
			mcp.WithDescription("Move focus between the floating and tiling layers"),
			mcp.WithString("target", mcp.Required(), mcp.Description("Focus target: 'floating', 'tiling', or 'mode_toggle'")),
		),
		s.handleFocusMode,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_focus_output",
			mcp.WithDescription("Focus another output (monitor). Exactly one of output and direction is required."),
			mcp.WithString("output", mcp.Description("Output name (e.g. 'eDP-1', 'HDMI-1')")),
			mcp.WithString("direction", mcp.Description("Direction to focus: 'left', 'right', 'up', 'down'")),
		),
		s.handleFocusOutput,
	)

	// Workspaces
	s.mcp.AddTool(
		mcp.NewTool("i3_workspace_switch",
			mcp.WithDescription("Switch to a workspace by name or number, creating it if needed"),
			mcp.WithString("workspace", mcp.Required(), mcp.Description("Workspace name or number (e.g. '1', 'web')")),
		),
		s.handleWorkspaceSwitch,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_workspace_move",
			mcp.WithDescription("Move the focused container to a workspace, optionally following it"),
			mcp.WithString("workspace", mcp.Required(), mcp.Description("Target workspace name or number")),
			mcp.WithBoolean("follow", mcp.Description("Switch to the workspace after moving")),
		),
		s.handleWorkspaceMove,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_workspace_navigate",
			mcp.WithDescription("Navigate between workspaces relative to the current one"),
			mcp.WithString("direction", mcp.Required(), mcp.Description("'next', 'prev', 'next_on_output', 'prev_on_output', or 'back_and_forth'")),
		),
		s.handleWorkspaceNavigate,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_workspace_rename",
			mcp.WithDescription("Rename a workspace. Without old_name the current workspace is renamed."),
			mcp.WithString("old_name", mcp.Description("Workspace to rename (default: current)")),
			mcp.WithString("new_name", mcp.Required(), mcp.Description("New workspace name")),
		),
		s.handleWorkspaceRename,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_workspace_bulk_move",
			mcp.WithDescription("Move multiple workspaces to a target output, optionally preserving one workspace and parking a placeholder on losing outputs"),
			mcp.WithArray("workspaces", mcp.Required(), mcp.Description("Workspace names to move"),
				mcp.Items(map[string]interface{}{"type": "string"})),
			mcp.WithString("target_output", mcp.Required(), mcp.Description("Target output name")),
			mcp.WithString("preserve_workspace", mcp.Description("Workspace to keep on its current output")),
			mcp.WithString("placeholder_workspace", mcp.Description("Workspace to create on each output that loses workspaces")),
		),
		s.handleWorkspaceBulkMove,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_workspace_list",
			mcp.WithDescription("List all workspaces with their state and output"),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleWorkspaceList,
	)

	// Scratchpad
	s.mcp.AddTool(
		mcp.NewTool("i3_scratchpad_show",
			mcp.WithDescription("Show or toggle a scratchpad window, optionally matched by title"),
			mcp.WithString("scratchpad_name", mcp.Description("Title substring of a named scratchpad window")),
		),
		s.handleScratchpadShow,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_scratchpad_move",
			mcp.WithDescription("Move the focused window to the scratchpad, optionally marking it"),
			mcp.WithString("mark_as", mcp.Description("Mark to assign before moving (creates a named scratchpad)")),
		),
		s.handleScratchpadMove,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_scratchpad_list",
			mcp.WithDescription("List windows currently parked in the scratchpad"),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleScratchpadList,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_scratchpad_hide_all",
			mcp.WithDescription("Hide every scratchpad window currently visible on any output"),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleScratchpadHideAll,
	)

	// Layout and appearance
	s.mcp.AddTool(
		mcp.NewTool("i3_layout_change",
			mcp.WithDescription("Change the layout of the focused container"),
			mcp.WithString("layout", mcp.Required(), mcp.Description("'stacking', 'tabbed', 'splith', 'splitv', or 'toggle'")),
		),
		s.handleLayoutChange,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_split_orientation",
			mcp.WithDescription("Set the split orientation for the next window"),
			mcp.WithString("orientation", mcp.Required(), mcp.Description("'horizontal', 'vertical', or 'toggle'")),
		),
		s.handleSplitOrientation,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_gaps_set",
			mcp.WithDescription("Set inner and/or outer gap sizes"),
			mcp.WithNumber("inner", mcp.Description("Inner gaps in pixels")),
			mcp.WithNumber("outer", mcp.Description("Outer gaps in pixels")),
			mcp.WithString("scope", mcp.Description("'current' workspace or 'all' workspaces (default current)")),
		),
		s.handleGapsSet,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_gaps_adjust",
			mcp.WithDescription("Adjust gaps incrementally or set to a value"),
			mcp.WithString("gap_type", mcp.Required(), mcp.Description("'inner' or 'outer'")),
			mcp.WithString("operation", mcp.Required(), mcp.Description("'plus', 'minus', or 'set'")),
			mcp.WithNumber("amount", mcp.Required(), mcp.Description("Amount in pixels")),
			mcp.WithString("scope", mcp.Description("'current' workspace or 'all' workspaces (default current)")),
		),
		s.handleGapsAdjust,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_gaps_toggle",
			mcp.WithDescription("Toggle gaps on or off"),
			mcp.WithString("scope", mcp.Description("'current' workspace or 'all' workspaces (default current)")),
		),
		s.handleGapsToggle,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_bar_mode",
			mcp.WithDescription("Change the display mode of i3bar"),
			mcp.WithString("mode", mcp.Required(), mcp.Description("'dock', 'hide', 'invisible', or 'toggle'")),
			mcp.WithString("bar_id", mcp.Description("Specific bar ID (omit for all bars)")),
		),
		s.handleBarMode,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_bar_hidden_state",
			mcp.WithDescription("Change the visibility of a hidden-mode i3bar"),
			mcp.WithString("state", mcp.Required(), mcp.Description("'hide', 'show', or 'toggle'")),
			mcp.WithString("bar_id", mcp.Description("Specific bar ID (omit for all bars)")),
		),
		s.handleBarHiddenState,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_mark_set",
			mcp.WithDescription("Mark the focused window for later reference"),
			mcp.WithString("mark", mcp.Required(), mcp.Description("Mark identifier")),
			mcp.WithString("mode", mcp.Description("'replace' (default), 'add', or 'toggle'")),
		),
		s.handleMarkSet,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_mark_unmark",
			mcp.WithDescription("Remove a mark, or all marks when none is given"),
			mcp.WithString("mark", mcp.Description("Mark to remove (omit to remove all marks)")),
		),
		s.handleMarkUnmark,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_mode_activate",
			mcp.WithDescription("Activate a binding mode defined in the i3 config"),
			mcp.WithString("mode_name", mcp.Required(), mcp.Description("Name of binding mode to activate ('default' restores normal bindings)")),
		),
		s.handleModeActivate,
	)

	// Queries
	s.mcp.AddTool(
		mcp.NewTool("i3_get_tree",
			mcp.WithDescription("Get the i3 window tree, optionally filtered by window properties"),
			mcp.WithString("window_class", mcp.Description("Filter by window class")),
			mcp.WithString("window_title", mcp.Description("Filter by window title (substring)")),
			mcp.WithString("window_instance", mcp.Description("Filter by window instance")),
			mcp.WithString("window_role", mcp.Description("Filter by window role")),
			mcp.WithString("window_type", mcp.Description("Filter by window type (e.g. 'dialog')")),
			mcp.WithBoolean("floating", mcp.Description("Filter by floating status")),
			mcp.WithBoolean("urgent", mcp.Description("Filter by urgent status")),
			mcp.WithString("workspace", mcp.Description("Filter by workspace (accepted, not applied)")),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleGetTree,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_focused",
			mcp.WithDescription("Get information about the currently focused window"),
		),
		s.handleGetFocused,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_outputs",
			mcp.WithDescription("List outputs (monitors) with their state and current workspace"),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleGetOutputs,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_marks",
			mcp.WithDescription("List all marks currently set on windows"),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleGetMarks,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_binding_modes",
			mcp.WithDescription("List all binding modes defined in the i3 config"),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleGetBindingModes,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_binding_state",
			mcp.WithDescription("Get the currently active binding mode"),
		),
		s.handleGetBindingState,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_version",
			mcp.WithDescription("Get i3 version information"),
		),
		s.handleGetVersion,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_config",
			mcp.WithDescription("Get the loaded i3 configuration"),
			mcp.WithBoolean("include_content", mcp.Description("Include full config file content (can be large)")),
		),
		s.handleGetConfig,
	)
	s.mcp.AddTool(
		mcp.NewTool("i3_get_bar_config",
			mcp.WithDescription("List bar IDs, or get the configuration of one bar"),
			mcp.WithString("bar_id", mcp.Description("Specific bar ID (omit to list all bars)")),
			mcp.WithString("response_format", formatOption()),
		),
		s.handleGetBarConfig,
	)
}
