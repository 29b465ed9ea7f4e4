package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"i3mcp/internal/i3"
	"i3mcp/internal/model"
)

// Direct query commands for shells and scripts. Output is YAML, one
// query per invocation.

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the i3 container tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printQuery(cmd, i3.QueryTree)
	},
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printQuery(cmd, i3.QueryWorkspaces)
	},
}

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List outputs (monitors)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printQuery(cmd, i3.QueryOutputs)
	},
}

var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "List window marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printQuery(cmd, i3.QueryMarks)
	},
}

var focusedCmd = &cobra.Command{
	Use:   "focused",
	Short: "Show the focused window",
	RunE:  runFocused,
}

var scratchpadCmd = &cobra.Command{
	Use:   "scratchpad",
	Short: "List scratchpad windows",
	RunE:  runScratchpad,
}

var msgCmd = &cobra.Command{
	Use:   "msg <command>...",
	Short: "Send a raw command to i3",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMsg,
}

func init() {
	rootCmd.AddCommand(treeCmd, workspacesCmd, outputsCmd, marksCmd, focusedCmd, scratchpadCmd, msgCmd)
}

func printQuery(cmd *cobra.Command, kind i3.QueryKind, args ...string) error {
	res := newClient().Query(cmd.Context(), kind, args...)
	if !res.Success {
		return fmt.Errorf("%s query failed: %s", kind, res.Error)
	}
	var v interface{}
	if err := json.Unmarshal(res.Data, &v); err != nil {
		return fmt.Errorf("decode %s payload: %w", kind, err)
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

func queryTree(cmd *cobra.Command) (*model.Node, error) {
	res := newClient().Query(cmd.Context(), i3.QueryTree)
	if !res.Success {
		return nil, fmt.Errorf("tree query failed: %s", res.Error)
	}
	var tree model.Node
	if err := json.Unmarshal(res.Data, &tree); err != nil {
		return nil, fmt.Errorf("decode tree payload: %w", err)
	}
	return &tree, nil
}

func runFocused(cmd *cobra.Command, _ []string) error {
	tree, err := queryTree(cmd)
	if err != nil {
		return err
	}
	focused := model.FindFocused(tree)
	if focused == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no window is focused")
		return nil
	}
	b, err := yaml.Marshal(struct {
		Name     string   `yaml:"name"`
		Class    string   `yaml:"class,omitempty"`
		Instance string   `yaml:"instance,omitempty"`
		Window   int64    `yaml:"window"`
		Marks    []string `yaml:"marks,omitempty"`
	}{focused.Name, focused.WindowProperties.Class, focused.WindowProperties.Instance, focused.Window, focused.Marks})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

func runScratchpad(cmd *cobra.Command, _ []string) error {
	tree, err := queryTree(cmd)
	if err != nil {
		return err
	}
	scratchpad := model.FindNamedContainer(tree, model.ScratchWorkspace)
	if scratchpad == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no scratchpad windows")
		return nil
	}
	type entry struct {
		Name   string   `yaml:"name"`
		Class  string   `yaml:"class,omitempty"`
		Window int64    `yaml:"window"`
		Marks  []string `yaml:"marks,omitempty"`
	}
	var entries []entry
	for _, w := range model.FindWindows(scratchpad, model.Criteria{}) {
		entries = append(entries, entry{w.Name, w.WindowProperties.Class, w.Window, w.Marks})
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no scratchpad windows")
		return nil
	}
	b, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

func runMsg(cmd *cobra.Command, args []string) error {
	res := newClient().RunCommand(cmd.Context(), strings.Join(args, " "))
	b, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	if !res.Success {
		return fmt.Errorf("command failed: %s", res.Error)
	}
	return nil
}
