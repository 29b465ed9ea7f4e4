package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"i3mcp/internal/i3"
	"i3mcp/internal/output"
)

// failure is the structured error payload for rejected arguments.
type failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// validationError reports a rejected argument set. No command is sent
// to i3.
func validationError(msg string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(output.JSON(failure{Error: msg})), nil
}

// runCommand executes one command and renders its result.
func (s *Server) runCommand(ctx context.Context, cmd string) (*mcp.CallToolResult, error) {
	res := s.client.RunCommand(ctx, cmd)
	if !res.Success {
		return mcp.NewToolResultError(output.JSON(res)), nil
	}
	return s.text(output.JSON(res)), nil
}

// runBuilt pairs with the command builders: a build error is a
// validation failure, otherwise the command is executed.
func (s *Server) runBuilt(ctx context.Context, cmd string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return validationError(err.Error())
	}
	return s.runCommand(ctx, cmd)
}

// queryInto runs a get_* query and decodes the payload into v. Returns
// a non-nil result when the query or decode failed.
func (s *Server) queryInto(ctx context.Context, kind i3.QueryKind, v interface{}, args ...string) *mcp.CallToolResult {
	res := s.client.Query(ctx, kind, args...)
	if !res.Success {
		return mcp.NewToolResultError(output.JSON(res))
	}
	if err := json.Unmarshal(res.Data, v); err != nil {
		return mcp.NewToolResultError(output.JSON(failure{
			Error: "failed to decode " + string(kind) + " payload: " + err.Error(),
		}))
	}
	return nil
}

// formatParam reads the response_format argument with a per-tool
// default.
func formatParam(params map[string]interface{}, def output.Format) (output.Format, error) {
	return output.ParseFormat(stringParam(params, "response_format", string(def)))
}
