package model

// FindWindows walks the tree depth-first (primary children before
// floating children) and returns every window-bearing node matching the
// criteria, in visitation order. Empty criteria match all windows.
func FindWindows(root *Node, criteria Criteria) []*Node {
	if root == nil {
		return nil
	}
	var windows []*Node
	if root.HasWindow() && criteria.Matches(root) {
		windows = append(windows, root)
	}
	for i := range root.Nodes {
		windows = append(windows, FindWindows(&root.Nodes[i], criteria)...)
	}
	for i := range root.FloatingNodes {
		windows = append(windows, FindWindows(&root.FloatingNodes[i], criteria)...)
	}
	return windows
}

// FindFocused returns the first node with the focused flag set, or nil.
// A well-formed tree has at most one focused node, so first-match is
// safe.
func FindFocused(root *Node) *Node {
	if root == nil {
		return nil
	}
	if root.Focused {
		return root
	}
	for i := range root.Nodes {
		if found := FindFocused(&root.Nodes[i]); found != nil {
			return found
		}
	}
	for i := range root.FloatingNodes {
		if found := FindFocused(&root.FloatingNodes[i]); found != nil {
			return found
		}
	}
	return nil
}

// FindNamedContainer returns the first node with an exact name match, or
// nil. Used to locate the scratchpad holding workspace.
func FindNamedContainer(root *Node, name string) *Node {
	if root == nil {
		return nil
	}
	if root.Name == name {
		return root
	}
	for i := range root.Nodes {
		if found := FindNamedContainer(&root.Nodes[i], name); found != nil {
			return found
		}
	}
	for i := range root.FloatingNodes {
		if found := FindNamedContainer(&root.FloatingNodes[i], name); found != nil {
			return found
		}
	}
	return nil
}

// ScratchpadWindow describes one currently visible scratchpad window.
type ScratchpadWindow struct {
	WindowID        int64  `json:"window_id"`
	Name            string `json:"name"`
	Class           string `json:"class"`
	Output          string `json:"output"`
	ScratchpadState string `json:"scratchpad_state"`
}

// VisibleScratchpadWindows returns every scratchpad window currently
// shown on a real output. A container qualifies when its scratchpad
// state is not "none" and its output is not the hidden sentinel; the
// first window-bearing primary child is taken as the representative. A
// qualifying container without such a child yields nothing.
func VisibleScratchpadWindows(root *Node) []ScratchpadWindow {
	if root == nil {
		return nil
	}
	var windows []ScratchpadWindow
	if root.ScratchpadState != "" && root.ScratchpadState != ScratchpadNone &&
		root.Output != HiddenOutput {
		for i := range root.Nodes {
			child := &root.Nodes[i]
			if child.HasWindow() {
				name := child.Name
				if name == "" {
					name = "Untitled"
				}
				windows = append(windows, ScratchpadWindow{
					WindowID:        child.Window,
					Name:            name,
					Class:           child.WindowProperties.Class,
					Output:          root.Output,
					ScratchpadState: root.ScratchpadState,
				})
				break
			}
		}
	}
	for i := range root.Nodes {
		windows = append(windows, VisibleScratchpadWindows(&root.Nodes[i])...)
	}
	for i := range root.FloatingNodes {
		windows = append(windows, VisibleScratchpadWindows(&root.FloatingNodes[i])...)
	}
	return windows
}
