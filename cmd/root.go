// Package cmd wires the CLI: the MCP server plus direct query commands
// for poking at i3 from a shell.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"i3mcp/internal/config"
	"i3mcp/internal/i3"
	"i3mcp/internal/version"
)

var (
	cfgFile  string
	logLevel string

	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "i3mcp",
	Short: "Control the i3 window manager over MCP",
	Long: `i3mcp exposes i3 window manager control as MCP tools: focus, move and
resize windows, manage workspaces, scratchpads, marks, gaps and layouts,
and query the container tree. It talks to i3 through i3-msg.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/i3mcp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q", level)
		}
		// Logs go to stderr so the stdio transport keeps stdout clean.
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(lvl).With().Timestamp().Logger()
		return nil
	}
}

// newClient builds the i3-msg transport from the loaded config.
func newClient() i3.Client {
	return i3.NewMsgClient(cfg.I3MsgPath, cfg.Timeout(), logger)
}
