package command

import (
	"errors"
	"fmt"
)

var workspaceDirections = map[string]bool{
	"next":           true,
	"prev":           true,
	"next_on_output": true,
	"prev_on_output": true,
	"back_and_forth": true,
}

// SwitchWorkspace switches to a workspace by name, creating it if it
// does not exist.
type SwitchWorkspace struct {
	Name string
}

func (s SwitchWorkspace) Build() (string, error) {
	if s.Name == "" {
		return "", errors.New("workspace is required")
	}
	return "workspace " + Quote(s.Name), nil
}

// NavigateWorkspace moves through workspaces relative to the current
// one.
type NavigateWorkspace struct {
	Direction string // next|prev|next_on_output|prev_on_output|back_and_forth
}

func (n NavigateWorkspace) Build() (string, error) {
	if n.Direction == "" {
		return "", errors.New("direction is required")
	}
	if !workspaceDirections[n.Direction] {
		return "", fmt.Errorf("invalid direction %q: must be next, prev, next_on_output, prev_on_output or back_and_forth", n.Direction)
	}
	return "workspace " + n.Direction, nil
}

// MoveToWorkspace sends the focused container to a workspace and
// optionally follows it.
type MoveToWorkspace struct {
	Workspace string
	Follow    bool
}

func (m MoveToWorkspace) Build() (string, error) {
	if m.Workspace == "" {
		return "", errors.New("workspace is required")
	}
	units := []string{"move container to workspace " + Quote(m.Workspace)}
	if m.Follow {
		units = append(units, "workspace "+Quote(m.Workspace))
	}
	return joinUnits(units), nil
}

// RenameWorkspace renames a workspace. When OldName is empty the
// current workspace is renamed.
type RenameWorkspace struct {
	OldName string
	NewName string
}

func (r RenameWorkspace) Build() (string, error) {
	if r.NewName == "" {
		return "", errors.New("new_name is required")
	}
	if r.OldName != "" {
		return fmt.Sprintf("rename workspace %s to %s", Quote(r.OldName), Quote(r.NewName)), nil
	}
	return "rename workspace to " + Quote(r.NewName), nil
}

// MoveWorkspaceToOutput switches to the workspace and moves it to the
// output in one line, so the move applies to the right workspace even
// when it was not focused.
func MoveWorkspaceToOutput(workspace, output string) string {
	return fmt.Sprintf("workspace %s; move workspace to output %s", Quote(workspace), output)
}

// FocusOutputCommand focuses the named output. Used to park a
// placeholder workspace on an output about to lose its workspaces.
func FocusOutputCommand(output string) string {
	return "focus output " + output
}
