package command

import "fmt"

// ShowScratchpad cycles the scratchpad, or shows a specific window
// matched by title substring when Name is set.
type ShowScratchpad struct {
	Name string
}

func (s ShowScratchpad) Build() string {
	if s.Name != "" {
		return fmt.Sprintf("[title=%s] scratchpad show", Quote(s.Name))
	}
	return "scratchpad show"
}

// MoveToScratchpad parks the focused window in the scratchpad,
// optionally marking it first so it can be recalled by mark.
type MoveToScratchpad struct {
	MarkAs string
}

func (m MoveToScratchpad) Build() string {
	if m.MarkAs != "" {
		return joinUnits([]string{"mark " + Quote(m.MarkAs), "move scratchpad"})
	}
	return "move scratchpad"
}

// HideWindow sends a specific window to the scratchpad by X11 id.
func HideWindow(windowID int64) string {
	return fmt.Sprintf("[id=%d] move scratchpad", windowID)
}
