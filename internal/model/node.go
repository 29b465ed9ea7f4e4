// Package model defines the typed representation of i3's container tree
// and the queries and criteria matching performed over it.
package model

// HiddenOutput is the sentinel output name i3 assigns to containers that
// are not currently shown on any real output (i.e. parked in the
// scratchpad holding area).
const HiddenOutput = "__i3"

// ScratchWorkspace is the name of the internal workspace that holds
// scratchpad windows.
const ScratchWorkspace = "__i3_scratch"

// Node container types as reported in the tree's "type" field.
const (
	TypeRoot        = "root"
	TypeOutput      = "output"
	TypeCon         = "con"
	TypeFloatingCon = "floating_con"
	TypeWorkspace   = "workspace"
	TypeDockarea    = "dockarea"
)

// Scratchpad states as reported in the tree's "scratchpad_state" field.
const (
	ScratchpadNone    = "none"
	ScratchpadFresh   = "fresh"
	ScratchpadChanged = "changed"
)

// Rect is a window or container geometry.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WindowProperties are the X11 properties i3 attaches to window nodes.
type WindowProperties struct {
	Class    string `json:"class,omitempty"`
	Instance string `json:"instance,omitempty"`
	Role     string `json:"window_role,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Node is one container in i3's tree, as returned by the tree query.
// Window-bearing nodes have a non-zero Window id; everything else is a
// structural container. Trees are fetched fresh per query and never
// mutated.
type Node struct {
	ID               int64            `json:"id"`
	Window           int64            `json:"window,omitempty"`
	Name             string           `json:"name,omitempty"`
	Type             string           `json:"type,omitempty"`
	WindowProperties WindowProperties `json:"window_properties,omitempty"`
	WindowType       string           `json:"window_type,omitempty"`
	Rect             Rect             `json:"rect"`
	Focused          bool             `json:"focused,omitempty"`
	Urgent           bool             `json:"urgent,omitempty"`
	Marks            []string         `json:"marks,omitempty"`
	ScratchpadState  string           `json:"scratchpad_state,omitempty"`
	Output           string           `json:"output,omitempty"`
	Nodes            []Node           `json:"nodes,omitempty"`
	FloatingNodes    []Node           `json:"floating_nodes,omitempty"`
}

// HasWindow reports whether the node carries an X11 window. This is the
// leaf-for-matching predicate: only window-bearing nodes are candidates
// for criteria matching, regardless of whether they have children.
func (n *Node) HasWindow() bool {
	return n.Window != 0
}

// IsFloating reports whether the node is a floating container.
func (n *Node) IsFloating() bool {
	return n.Type == TypeFloatingCon
}

// Workspace is one entry of the workspaces query.
type Workspace struct {
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
	Rect    Rect   `json:"rect"`
	Output  string `json:"output"`
}

// BarConfig is the configuration payload returned for a single bar id.
// Only the commonly inspected fields are modeled; the raw payload is
// still available to callers that want everything.
type BarConfig struct {
	ID               string `json:"id"`
	Position         string `json:"position,omitempty"`
	Mode             string `json:"mode,omitempty"`
	StatusCommand    string `json:"status_command,omitempty"`
	Font             string `json:"font,omitempty"`
	WorkspaceButtons bool   `json:"workspace_buttons,omitempty"`
	TrayOutput       string `json:"tray_output,omitempty"`
}

// Output is one entry of the outputs query.
type Output struct {
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	Primary          bool   `json:"primary"`
	CurrentWorkspace string `json:"current_workspace,omitempty"`
	Rect             Rect   `json:"rect"`
}
