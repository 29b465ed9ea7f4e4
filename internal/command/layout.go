package command

import (
	"errors"
	"fmt"
)

// SetLayout changes the layout of the focused container's parent.
type SetLayout struct {
	Layout string // stacking|tabbed|splith|splitv|toggle
}

func (s SetLayout) Build() (string, error) {
	switch s.Layout {
	case "stacking", "tabbed", "splith", "splitv":
		return "layout " + s.Layout, nil
	case "toggle":
		return "layout toggle split", nil
	case "":
		return "", errors.New("layout is required")
	default:
		return "", fmt.Errorf("invalid layout %q: must be stacking, tabbed, splith, splitv or toggle", s.Layout)
	}
}

// Split sets the split orientation for the next window opened from the
// focused container.
type Split struct {
	Orientation string // horizontal|vertical|toggle
}

func (s Split) Build() (string, error) {
	switch s.Orientation {
	case "horizontal":
		return "split h", nil
	case "vertical":
		return "split v", nil
	case "toggle":
		return "split toggle", nil
	case "":
		return "", errors.New("orientation is required")
	default:
		return "", fmt.Errorf("invalid orientation %q: must be horizontal, vertical or toggle", s.Orientation)
	}
}

func gapsScope(scope string) (string, error) {
	switch scope {
	case "":
		return "workspace", nil
	case "workspace", "global":
		return scope, nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be workspace or global", scope)
	}
}

// SetGaps sets inner and/or outer gap sizes. At least one of Inner and
// Outer must be provided.
type SetGaps struct {
	Inner, Outer *int
	Scope        string // workspace|global; empty means workspace
}

func (g SetGaps) Build() (string, error) {
	scope, err := gapsScope(g.Scope)
	if err != nil {
		return "", err
	}
	var units []string
	if g.Inner != nil {
		units = append(units, fmt.Sprintf("gaps inner %s set %d", scope, *g.Inner))
	}
	if g.Outer != nil {
		units = append(units, fmt.Sprintf("gaps outer %s set %d", scope, *g.Outer))
	}
	if len(units) == 0 {
		return "", errors.New("at least one of inner or outer is required")
	}
	return joinUnits(units), nil
}

// AdjustGaps changes one gap type by a relative step or to an absolute
// value.
type AdjustGaps struct {
	Type      string // inner|outer
	Operation string // plus|minus|set
	Amount    int
	Scope     string
}

func (g AdjustGaps) Build() (string, error) {
	if g.Type != "inner" && g.Type != "outer" {
		return "", fmt.Errorf("invalid gap type %q: must be inner or outer", g.Type)
	}
	if g.Operation != "plus" && g.Operation != "minus" && g.Operation != "set" {
		return "", fmt.Errorf("invalid operation %q: must be plus, minus or set", g.Operation)
	}
	if g.Amount < 0 {
		return "", fmt.Errorf("amount must not be negative, got %d", g.Amount)
	}
	scope, err := gapsScope(g.Scope)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("gaps %s %s %s %d", g.Type, scope, g.Operation, g.Amount), nil
}

// ToggleGaps toggles all gaps on or off.
type ToggleGaps struct {
	Scope string
}

func (g ToggleGaps) Build() (string, error) {
	scope, err := gapsScope(g.Scope)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("gaps %s toggle", scope), nil
}

// BarMode changes a bar's display mode, for every bar when BarID is
// empty.
type BarMode struct {
	Mode  string // dock|hide|invisible|toggle
	BarID string
}

func (b BarMode) Build() (string, error) {
	switch b.Mode {
	case "dock", "hide", "invisible", "toggle":
	case "":
		return "", errors.New("mode is required")
	default:
		return "", fmt.Errorf("invalid mode %q: must be dock, hide, invisible or toggle", b.Mode)
	}
	cmd := "bar mode " + b.Mode
	if b.BarID != "" {
		cmd += " " + b.BarID
	}
	return cmd, nil
}

// BarHiddenState changes a hidden-mode bar's visibility.
type BarHiddenState struct {
	State string // hide|show|toggle
	BarID string
}

func (b BarHiddenState) Build() (string, error) {
	switch b.State {
	case "hide", "show", "toggle":
	case "":
		return "", errors.New("state is required")
	default:
		return "", fmt.Errorf("invalid state %q: must be hide, show or toggle", b.State)
	}
	cmd := "bar hidden_state " + b.State
	if b.BarID != "" {
		cmd += " " + b.BarID
	}
	return cmd, nil
}

// SetMark marks the focused window.
type SetMark struct {
	Mark string
	Mode string // replace|add|toggle; empty means replace
}

func (m SetMark) Build() (string, error) {
	if m.Mark == "" {
		return "", errors.New("mark is required")
	}
	mode := m.Mode
	if mode == "" {
		mode = "replace"
	}
	switch mode {
	case "replace", "add", "toggle":
	default:
		return "", fmt.Errorf("invalid mode %q: must be replace, add or toggle", mode)
	}
	return fmt.Sprintf("mark --%s %s", mode, Quote(m.Mark)), nil
}

// Unmark removes one mark, or every mark when Mark is empty.
type Unmark struct {
	Mark string
}

func (u Unmark) Build() string {
	if u.Mark != "" {
		return "unmark " + Quote(u.Mark)
	}
	return "unmark"
}

// FocusModeToggle moves focus between the floating and tiling layers.
type FocusModeToggle struct {
	Target string // floating|tiling|mode_toggle
}

func (f FocusModeToggle) Build() (string, error) {
	switch f.Target {
	case "floating", "tiling", "mode_toggle":
		return "focus " + f.Target, nil
	case "":
		return "", errors.New("target is required")
	default:
		return "", fmt.Errorf("invalid target %q: must be floating, tiling or mode_toggle", f.Target)
	}
}

// ActivateMode switches i3 into a binding mode. "default" returns to
// normal keybindings.
type ActivateMode struct {
	Name string
}

func (a ActivateMode) Build() (string, error) {
	if a.Name == "" {
		return "", errors.New("mode is required")
	}
	return "mode " + Quote(a.Name), nil
}
