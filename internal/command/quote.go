// Package command translates validated operation parameters into i3's
// textual command grammar. Builders validate mutual-exclusion and
// required-field rules before any command string is produced; multi-step
// operations return their units in execution order.
package command

import "strings"

// Quote wraps a caller-supplied literal (mark, title, workspace name,
// mode name) in double quotes for embedding in a command, escaping
// embedded backslashes and quotes so the literal cannot alter the
// command structure.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// joinUnits chains command units on one line. i3 executes each unit in
// order and reports per-unit success; a failed unit does not stop the
// rest of the line.
func joinUnits(units []string) string {
	return strings.Join(units, ", ")
}
