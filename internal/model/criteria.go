package model

import (
	"fmt"
	"strings"
)

// Criteria is a set of AND-combined window filters. A zero-value field
// means "don't filter on this". String comparisons are case-insensitive:
// Class, Instance, Role and Type require exact match, Title requires
// substring containment.
type Criteria struct {
	Class    string
	Title    string
	Instance string
	Role     string
	Type     string
	Floating *bool
	Urgent   *bool

	// Workspace is accepted but intentionally not applied during
	// matching; filtering by owning workspace would require walking
	// back up the tree. See DESIGN.md.
	Workspace string

	// Mark participates in Selector() only, never in Matches(): the
	// tree query matches on window properties, while i3's native
	// con_mark selector is resolved by i3 itself.
	Mark string
}

// Empty reports whether no filter field is set. Empty criteria match
// every window-bearing node.
func (c Criteria) Empty() bool {
	return c.Class == "" && c.Title == "" && c.Instance == "" &&
		c.Role == "" && c.Type == "" && c.Floating == nil &&
		c.Urgent == nil && c.Workspace == "" && c.Mark == ""
}

// Matches reports whether the node satisfies every set filter. Absent
// node fields fail the comparison rather than erroring.
func (c Criteria) Matches(n *Node) bool {
	if c.Class != "" && !strings.EqualFold(n.WindowProperties.Class, c.Class) {
		return false
	}
	if c.Title != "" && !strings.Contains(strings.ToLower(n.Name), strings.ToLower(c.Title)) {
		return false
	}
	if c.Instance != "" && !strings.EqualFold(n.WindowProperties.Instance, c.Instance) {
		return false
	}
	if c.Role != "" && !strings.EqualFold(n.WindowProperties.Role, c.Role) {
		return false
	}
	if c.Type != "" && !strings.EqualFold(n.WindowType, c.Type) {
		return false
	}
	if c.Floating != nil && n.IsFloating() != *c.Floating {
		return false
	}
	if c.Urgent != nil && n.Urgent != *c.Urgent {
		return false
	}
	return true
}

// Selector renders the criteria in i3's bracketed selector syntax, e.g.
// [class="Firefox" urgent=yes]. Keys i3's command grammar does not
// support as selectors (floating, workspace) are omitted. Returns ""
// when no renderable key is set.
func (c Criteria) Selector() string {
	var parts []string
	if c.Class != "" {
		parts = append(parts, fmt.Sprintf("class=%s", quoteSelectorValue(c.Class)))
	}
	if c.Instance != "" {
		parts = append(parts, fmt.Sprintf("instance=%s", quoteSelectorValue(c.Instance)))
	}
	if c.Title != "" {
		parts = append(parts, fmt.Sprintf("title=%s", quoteSelectorValue(c.Title)))
	}
	if c.Role != "" {
		parts = append(parts, fmt.Sprintf("window_role=%s", quoteSelectorValue(c.Role)))
	}
	if c.Type != "" {
		parts = append(parts, fmt.Sprintf("window_type=%s", quoteSelectorValue(c.Type)))
	}
	if c.Mark != "" {
		parts = append(parts, fmt.Sprintf("con_mark=%s", quoteSelectorValue(c.Mark)))
	}
	if c.Urgent != nil {
		if *c.Urgent {
			parts = append(parts, "urgent=yes")
		} else {
			parts = append(parts, "urgent=no")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// quoteSelectorValue wraps a selector value in double quotes, escaping
// embedded backslashes and quotes so a caller-supplied literal cannot
// alter the selector structure.
func quoteSelectorValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
