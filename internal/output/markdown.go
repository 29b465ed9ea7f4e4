package output

import (
	"fmt"
	"strings"

	"i3mcp/internal/model"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// WindowInfo renders one window node as a markdown block.
func WindowInfo(n *model.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Window: %s\n\n", orDefault(n.Name, "Untitled"))
	fmt.Fprintf(&b, "- **ID**: %d\n", n.Window)
	fmt.Fprintf(&b, "- **Class**: %s\n", orDefault(n.WindowProperties.Class, "N/A"))
	fmt.Fprintf(&b, "- **Instance**: %s\n", orDefault(n.WindowProperties.Instance, "N/A"))
	fmt.Fprintf(&b, "- **Type**: %s\n", orDefault(n.WindowType, "N/A"))
	fmt.Fprintf(&b, "- **Focused**: %t\n", n.Focused)
	floating := "No"
	if n.IsFloating() {
		floating = "Yes"
	}
	fmt.Fprintf(&b, "- **Floating**: %s\n", floating)
	fmt.Fprintf(&b, "- **Geometry**: %dx%d at (%d, %d)\n",
		n.Rect.Width, n.Rect.Height, n.Rect.X, n.Rect.Y)
	return b.String()
}

// MatchingWindows renders a filtered window list, one WindowInfo block
// per match.
func MatchingWindows(windows []*model.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Matching Windows (%d found)\n\n", len(windows))
	if len(windows) == 0 {
		b.WriteString("No windows match the specified criteria.\n")
		return b.String()
	}
	for _, w := range windows {
		b.WriteString(WindowInfo(w))
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

// TreeSummary is the markdown rendering of an unfiltered tree query:
// rendering the whole tree as markdown is not useful, so only a count
// and a pointer to the filters is returned.
func TreeSummary(windowCount int) string {
	return fmt.Sprintf("### i3 Window Tree Summary\n\nTotal windows: %d\n\n"+
		"Use window_class or window_title parameters to filter specific windows.\n", windowCount)
}

// Workspaces renders the workspace list.
func Workspaces(workspaces []model.Workspace) string {
	var b strings.Builder
	b.WriteString("### i3 Workspaces\n\n")
	for _, ws := range workspaces {
		var flags []string
		if ws.Focused {
			flags = append(flags, "FOCUSED")
		}
		if ws.Visible {
			flags = append(flags, "VISIBLE")
		}
		if ws.Urgent {
			flags = append(flags, "URGENT")
		}
		flagStr := ""
		if len(flags) > 0 {
			flagStr = " [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Fprintf(&b, "%d. **%s**%s\n", ws.Num, ws.Name, flagStr)
		fmt.Fprintf(&b, "   - Output: %s\n\n", orDefault(ws.Output, "Unknown"))
	}
	return b.String()
}

// Outputs renders the output (monitor) list.
func Outputs(outputs []model.Output) string {
	var b strings.Builder
	b.WriteString("### i3 Outputs (Monitors)\n\n")
	for i, out := range outputs {
		var flags []string
		if out.Active {
			flags = append(flags, "ACTIVE")
		}
		if out.Primary {
			flags = append(flags, "PRIMARY")
		}
		flagStr := ""
		if len(flags) > 0 {
			flagStr = " [" + strings.Join(flags, ", ") + "]"
		}
		fmt.Fprintf(&b, "%d. **%s**%s\n", i+1, out.Name, flagStr)
		fmt.Fprintf(&b, "   - Current workspace: %s\n", orDefault(out.CurrentWorkspace, "None"))
		fmt.Fprintf(&b, "   - Position: %dx%d\n", out.Rect.X, out.Rect.Y)
		fmt.Fprintf(&b, "   - Resolution: %dx%d\n", out.Rect.Width, out.Rect.Height)
		b.WriteString("\n")
	}
	return b.String()
}

// Marks renders the mark list.
func Marks(marks []string) string {
	var b strings.Builder
	b.WriteString("### i3 Marks\n\n")
	if len(marks) == 0 {
		b.WriteString("No marks currently set.\n")
		return b.String()
	}
	for _, m := range marks {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	fmt.Fprintf(&b, "\nTotal: %d mark(s)\n", len(marks))
	return b.String()
}

// BindingModes renders the binding mode list.
func BindingModes(modes []string) string {
	var b strings.Builder
	b.WriteString("### i3 Binding Modes\n\n")
	if len(modes) == 0 {
		b.WriteString("No binding modes found.\n")
		return b.String()
	}
	for _, m := range modes {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	fmt.Fprintf(&b, "\nTotal: %d mode(s)\n", len(modes))
	return b.String()
}

// ScratchpadWindows renders the windows parked in the scratchpad
// workspace.
func ScratchpadWindows(windows []*model.Node) string {
	var b strings.Builder
	b.WriteString("### Scratchpad Windows\n\n")
	if len(windows) == 0 {
		b.WriteString("No windows in scratchpad.\n")
		return b.String()
	}
	for _, w := range windows {
		markStr := ""
		if len(w.Marks) > 0 {
			markStr = " [" + strings.Join(w.Marks, ", ") + "]"
		}
		fmt.Fprintf(&b, "- **%s**%s\n", orDefault(w.Name, "Untitled"), markStr)
		fmt.Fprintf(&b, "  - Class: %s\n", orDefault(w.WindowProperties.Class, "N/A"))
		fmt.Fprintf(&b, "  - ID: %d\n\n", w.Window)
	}
	fmt.Fprintf(&b, "\nTotal: %d window(s)\n", len(windows))
	return b.String()
}

// HiddenWindow describes one window successfully sent to the
// scratchpad by a hide-all sweep.
type HiddenWindow struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// HideFailure describes one window a hide-all sweep failed to hide.
type HideFailure struct {
	WindowID int64  `json:"window_id"`
	Name     string `json:"name"`
	Error    string `json:"error"`
}

// HideAllSummary renders the outcome of a hide-all sweep.
func HideAllSummary(hidden []HiddenWindow, failures []HideFailure) string {
	var b strings.Builder
	b.WriteString("### Hide All Scratchpads\n\n")
	if len(hidden) == 0 && len(failures) == 0 {
		b.WriteString("✓ No visible scratchpad windows found. All scratchpads are already hidden.\n")
		return b.String()
	}
	if len(hidden) > 0 {
		fmt.Fprintf(&b, "✓ Successfully hidden %d scratchpad window(s):\n\n", len(hidden))
		for _, w := range hidden {
			fmt.Fprintf(&b, "- **%s** (class: %s, ID: %d)\n", w.Name, w.Class, w.ID)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintf(&b, "\n✗ Failed to hide %d window(s):\n\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(&b, "- **%s** (ID: %d): %s\n", f.Name, f.WindowID, f.Error)
		}
	}
	if len(hidden) == 0 {
		b.WriteString("\n⚠ No windows were hidden.\n")
	}
	return b.String()
}

// BarIDs renders the configured bar identifiers.
func BarIDs(ids []string) string {
	var b strings.Builder
	b.WriteString("### i3bar IDs\n\n")
	if len(ids) == 0 {
		b.WriteString("No bars found.\n")
		return b.String()
	}
	for _, id := range ids {
		fmt.Fprintf(&b, "- %s\n", id)
	}
	fmt.Fprintf(&b, "\nTotal: %d bar(s)\n", len(ids))
	b.WriteString("\nUse bar_id parameter to get detailed config for a specific bar.\n")
	return b.String()
}

// BarConfig renders one bar's configuration.
func BarConfig(barID string, cfg model.BarConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### i3bar Configuration: %s\n\n", barID)
	fmt.Fprintf(&b, "- **Position:** %s\n", orDefault(cfg.Position, "N/A"))
	fmt.Fprintf(&b, "- **Mode:** %s\n", orDefault(cfg.Mode, "N/A"))
	fmt.Fprintf(&b, "- **Status Command:** %s\n", orDefault(cfg.StatusCommand, "N/A"))
	fmt.Fprintf(&b, "- **Font:** %s\n", orDefault(cfg.Font, "N/A"))
	fmt.Fprintf(&b, "- **Workspace Buttons:** %t\n", cfg.WorkspaceButtons)
	fmt.Fprintf(&b, "- **Tray Output:** %s\n", orDefault(cfg.TrayOutput, "N/A"))
	return b.String()
}
