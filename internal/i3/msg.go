package i3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every i3-msg invocation. A call that exceeds it
// is abandoned and reported as a timeout; there is no retry.
const DefaultTimeout = 5 * time.Second

// DefaultBinary is the i3-msg executable resolved via PATH.
const DefaultBinary = "i3-msg"

// runFunc executes a process and returns stdout, stderr and the exec
// error. Swapped out in tests.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// MsgClient is the production Client: one i3-msg subprocess per call.
type MsgClient struct {
	binary  string
	timeout time.Duration
	log     zerolog.Logger
	run     runFunc
}

// NewMsgClient returns a client using the given i3-msg binary and
// per-call timeout. Zero values select the defaults.
func NewMsgClient(binary string, timeout time.Duration, log zerolog.Logger) *MsgClient {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &MsgClient{binary: binary, timeout: timeout, log: log, run: execRun}
}

// RunCommand sends one command line to i3 and parses the per-unit reply
// array. The whole line fails if any unit reports failure.
func (c *MsgClient) RunCommand(ctx context.Context, command string) CommandResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.log.Debug().Str("command", command).Msg("i3-msg command")
	stdout, stderr, err := c.run(ctx, c.binary, "-t", "command", command)

	if ctxErr := classifyTimeout(ctx, err, c.timeout); ctxErr != "" {
		c.log.Error().Str("command", command).Msg("i3-msg timed out")
		return CommandResult{Command: command, Error: ctxErr, ErrorKind: ErrTimeout}
	}

	var replies []UnitReply
	parseErr := json.Unmarshal(stdout, &replies)

	if err != nil {
		// i3-msg exits non-zero when a unit is rejected; prefer the
		// manager's own error text over the exec error.
		msg := firstUnitError(replies, parseErr)
		if msg == "" {
			msg = strings.TrimSpace(string(stderr))
		}
		if msg == "" {
			msg = err.Error()
		}
		c.log.Error().Str("command", command).Str("error", msg).Msg("i3-msg command failed")
		return CommandResult{
			Command:   command,
			Output:    replies,
			Error:     msg,
			ErrorKind: ErrProcessFailure,
		}
	}

	if parseErr != nil {
		return CommandResult{
			Command:   command,
			Error:     fmt.Sprintf("failed to parse i3-msg output: %v", parseErr),
			ErrorKind: ErrMalformedOutput,
			RawOutput: string(stdout),
		}
	}

	for _, r := range replies {
		if !r.Success {
			return CommandResult{
				Command:   command,
				Output:    replies,
				Error:     firstUnitError(replies, nil),
				ErrorKind: ErrProcessFailure,
			}
		}
	}

	return CommandResult{Success: true, Output: replies, Command: command}
}

// Query runs one get_<kind> message and returns the raw JSON payload.
// Extra args are appended to the invocation (e.g. a bar id for
// bar_config).
func (c *MsgClient) Query(ctx context.Context, kind QueryKind, args ...string) QueryResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	argv := append([]string{"-t", "get_" + string(kind)}, args...)
	c.log.Debug().Str("query", string(kind)).Msg("i3-msg query")
	stdout, stderr, err := c.run(ctx, c.binary, argv...)

	if ctxErr := classifyTimeout(ctx, err, c.timeout); ctxErr != "" {
		c.log.Error().Str("query", string(kind)).Msg("i3-msg query timed out")
		return QueryResult{Error: ctxErr, ErrorKind: ErrTimeout}
	}

	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = err.Error()
		}
		c.log.Error().Str("query", string(kind)).Str("error", msg).Msg("i3-msg query failed")
		return QueryResult{Error: msg, ErrorKind: ErrProcessFailure}
	}

	if !json.Valid(stdout) {
		return QueryResult{
			Error:     "failed to parse i3-msg output: invalid JSON",
			ErrorKind: ErrMalformedOutput,
			RawOutput: string(stdout),
		}
	}

	return QueryResult{Success: true, Data: json.RawMessage(stdout)}
}

// classifyTimeout returns the timeout error message when the context
// deadline caused the failure, "" otherwise.
func classifyTimeout(ctx context.Context, err error, d time.Duration) string {
	if err == nil {
		return ""
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("command timed out after %s", d)
	}
	return ""
}

func firstUnitError(replies []UnitReply, parseErr error) string {
	if parseErr != nil {
		return ""
	}
	for _, r := range replies {
		if !r.Success && r.Error != "" {
			return r.Error
		}
	}
	for _, r := range replies {
		if !r.Success {
			return "command failed"
		}
	}
	return ""
}
