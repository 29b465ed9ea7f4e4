package command

import (
	"errors"
	"fmt"
	"strings"

	"i3mcp/internal/model"
)

var cardinalDirections = map[string]bool{
	"left":  true,
	"right": true,
	"up":    true,
	"down":  true,
}

// FocusWindow shifts focus by direction or along the tree. Exactly one
// of Direction and Target must be set.
type FocusWindow struct {
	Direction string // left|right|up|down
	Target    string // parent|child
}

func (f FocusWindow) Build() (string, error) {
	if f.Direction != "" && f.Target != "" {
		return "", errors.New("direction and target are mutually exclusive; provide only one")
	}
	switch {
	case f.Direction != "":
		if !cardinalDirections[f.Direction] {
			return "", fmt.Errorf("invalid direction %q: must be left, right, up or down", f.Direction)
		}
		return "focus " + f.Direction, nil
	case f.Target != "":
		if f.Target != "parent" && f.Target != "child" {
			return "", fmt.Errorf("invalid target %q: must be parent or child", f.Target)
		}
		return "focus " + f.Target, nil
	default:
		return "", errors.New("either direction or target must be provided")
	}
}

// MoveWindow relocates the focused container. Workspace, direction and
// positioning units chain on one line in that order. The positioning
// modes are mutually exclusive.
type MoveWindow struct {
	Workspace string
	Direction string // left|right|up|down
	Center    bool
	ToMouse   bool
	ToMark    string
	X, Y      *int
}

func (m MoveWindow) Build() (string, error) {
	var units []string
	if m.Workspace != "" {
		units = append(units, "move container to workspace "+Quote(m.Workspace))
	}
	if m.Direction != "" {
		if !cardinalDirections[m.Direction] {
			return "", fmt.Errorf("invalid direction %q: must be left, right, up or down", m.Direction)
		}
		units = append(units, "move "+m.Direction)
	}

	positions := 0
	if m.Center {
		positions++
	}
	if m.ToMouse {
		positions++
	}
	if m.ToMark != "" {
		positions++
	}
	if m.X != nil || m.Y != nil {
		positions++
	}
	if positions > 1 {
		return "", errors.New("can only specify one positioning option: center, to_mouse, to_mark, or position_x/position_y")
	}

	switch {
	case m.Center:
		units = append(units, "move position center")
	case m.ToMouse:
		units = append(units, "move position mouse")
	case m.ToMark != "":
		units = append(units, "move window to mark "+Quote(m.ToMark))
	case m.X != nil || m.Y != nil:
		if m.X == nil || m.Y == nil {
			return "", errors.New("both position_x and position_y must be specified together")
		}
		units = append(units, fmt.Sprintf("move position %d px %d px", *m.X, *m.Y))
	}
	if len(units) == 0 {
		return "", errors.New("no move operation specified: provide a workspace, direction or position")
	}
	return joinUnits(units), nil
}

// ResizeWindow resizes the focused container, either to an absolute
// floating size (Width and Height together) or by a relative grow or
// shrink step.
type ResizeWindow struct {
	Width, Height *int   // absolute; both or neither
	GrowShrink    string // grow|shrink
	Dimension     string // width|height
	Amount        int    // pixels per relative step
}

func (r ResizeWindow) Build() (string, error) {
	if r.Width != nil || r.Height != nil {
		if r.Width == nil || r.Height == nil {
			return "", errors.New("both width and height are required for an absolute resize")
		}
		// Absolute sizes only apply to floating containers.
		return joinUnits([]string{
			"floating enable",
			fmt.Sprintf("resize set %d %d", *r.Width, *r.Height),
		}), nil
	}
	if r.GrowShrink == "" || r.Dimension == "" {
		return "", errors.New("provide width and height for an absolute resize, or grow_shrink and dimension for a relative one")
	}
	if r.GrowShrink != "grow" && r.GrowShrink != "shrink" {
		return "", fmt.Errorf("invalid grow_shrink %q: must be grow or shrink", r.GrowShrink)
	}
	if r.Dimension != "width" && r.Dimension != "height" {
		return "", fmt.Errorf("invalid dimension %q: must be width or height", r.Dimension)
	}
	amount := r.Amount
	if amount <= 0 {
		amount = 10
	}
	return fmt.Sprintf("resize %s %s %d px", r.GrowShrink, r.Dimension, amount), nil
}

// Exec launches a program, optionally after switching to a workspace.
// The workspace switch is a separate step so a bad workspace name stops
// the launch.
type Exec struct {
	Command          string
	Workspace        string
	MoveToScratchpad bool
	MarkAs           string
}

func (e Exec) Validate() error {
	if strings.TrimSpace(e.Command) == "" {
		return errors.New("command is required")
	}
	if e.MarkAs != "" && !e.MoveToScratchpad {
		return errors.New("mark_as requires move_to_scratchpad")
	}
	return nil
}

// Steps returns the commands to execute in order.
func (e Exec) Steps() ([]string, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	var steps []string
	if e.Workspace != "" {
		steps = append(steps, "workspace "+Quote(e.Workspace))
	}
	steps = append(steps, "exec --no-startup-id "+e.Command)
	return steps, nil
}

// MoveToOutput sends the focused container to another output, named or
// relative. Exactly one of Output and Direction must be set.
type MoveToOutput struct {
	Output    string
	Direction string // left|right|up|down
}

func (m MoveToOutput) Build() (string, error) {
	target, err := outputTarget(m.Output, m.Direction)
	if err != nil {
		return "", err
	}
	return "move container to output " + target, nil
}

// FocusOutput shifts focus to another output, named or relative.
type FocusOutput struct {
	Output    string
	Direction string
}

func (f FocusOutput) Build() (string, error) {
	target, err := outputTarget(f.Output, f.Direction)
	if err != nil {
		return "", err
	}
	return "focus output " + target, nil
}

func outputTarget(output, direction string) (string, error) {
	if output != "" && direction != "" {
		return "", errors.New("output and direction are mutually exclusive; provide only one")
	}
	if output != "" {
		return output, nil
	}
	if direction == "" {
		return "", errors.New("either output or direction must be provided")
	}
	if !cardinalDirections[direction] {
		return "", fmt.Errorf("invalid direction %q: must be left, right, up or down", direction)
	}
	return direction, nil
}

// tristate validates the shared toggle|enable|disable mode argument.
func tristate(name, mode string) (string, error) {
	if mode == "" {
		mode = "toggle"
	}
	switch mode {
	case "toggle", "enable", "disable":
		return name + " " + mode, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be toggle, enable or disable", mode)
	}
}

// Floating toggles or sets floating state on the focused container.
type Floating struct {
	Mode string // toggle|enable|disable; empty means toggle
}

func (f Floating) Build() (string, error) {
	return tristate("floating", f.Mode)
}

// Sticky toggles or sets sticky state on the focused container.
type Sticky struct {
	Mode string
}

func (s Sticky) Build() (string, error) {
	return tristate("sticky", s.Mode)
}

// Fullscreen toggles or sets fullscreen, optionally spanning all
// outputs.
type Fullscreen struct {
	Mode   string
	Global bool
}

func (f Fullscreen) Build() (string, error) {
	cmd, err := tristate("fullscreen", f.Mode)
	if err != nil {
		return "", err
	}
	if f.Global {
		cmd += " global"
	}
	return cmd, nil
}

// Border changes the border style of the focused container. A width is
// only meaningful for the pixel style.
type Border struct {
	Style string // normal|pixel|none|toggle
	Width *int
}

func (b Border) Build() (string, error) {
	switch b.Style {
	case "toggle":
		if b.Width != nil {
			return "", errors.New("width cannot be combined with border toggle")
		}
		return "border toggle", nil
	case "normal", "pixel", "none":
		if b.Width != nil {
			return fmt.Sprintf("border %s %d", b.Style, *b.Width), nil
		}
		return "border " + b.Style, nil
	case "":
		return "", errors.New("style is required")
	default:
		return "", fmt.Errorf("invalid style %q: must be normal, pixel, none or toggle", b.Style)
	}
}

// SwapContainers swaps the focused (or an explicitly selected source)
// container with a target container. Exactly one target reference is
// required; at most one source reference is allowed.
type SwapContainers struct {
	TargetID    int64 // X11 window id
	TargetConID int64 // i3 container id
	TargetMark  string

	SourceID    int64
	SourceConID int64
	SourceMark  string
}

func (s SwapContainers) Validate() error {
	targets := 0
	if s.TargetID != 0 {
		targets++
	}
	if s.TargetConID != 0 {
		targets++
	}
	if s.TargetMark != "" {
		targets++
	}
	if targets != 1 {
		return errors.New("exactly one of target_id, target_con_id or target_mark is required")
	}
	sources := 0
	if s.SourceID != 0 {
		sources++
	}
	if s.SourceConID != 0 {
		sources++
	}
	if s.SourceMark != "" {
		sources++
	}
	if sources > 1 {
		return errors.New("at most one of source_id, source_con_id or source_mark may be provided")
	}
	return nil
}

// HasSource reports whether a source selector was provided; without one
// the currently focused container is swapped.
func (s SwapContainers) HasSource() bool {
	return s.SourceID != 0 || s.SourceConID != 0 || s.SourceMark != ""
}

// FocusCommand returns the command that focuses the source container.
// Only valid when HasSource reports true.
func (s SwapContainers) FocusCommand() string {
	switch {
	case s.SourceID != 0:
		return fmt.Sprintf("[id=%d] focus", s.SourceID)
	case s.SourceConID != 0:
		return fmt.Sprintf("[con_id=%d] focus", s.SourceConID)
	default:
		return fmt.Sprintf("[con_mark=%s] focus", Quote(s.SourceMark))
	}
}

// SwapCommand returns the swap command against the target container.
func (s SwapContainers) SwapCommand() string {
	switch {
	case s.TargetID != 0:
		return fmt.Sprintf("swap container with id %d", s.TargetID)
	case s.TargetConID != 0:
		return fmt.Sprintf("swap container with con_id %d", s.TargetConID)
	default:
		return "swap container with mark " + Quote(s.TargetMark)
	}
}

// Kill closes the focused window.
const Kill = "kill"

// FocusByCriteria focuses the first window matching the selector built
// from the criteria. At least one selector-renderable field must be set.
func FocusByCriteria(c model.Criteria) (string, error) {
	sel := c.Selector()
	if sel == "" {
		return "", errors.New("at least one criterion is required")
	}
	return sel + " focus", nil
}
