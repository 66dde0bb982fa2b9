// Package tools defines the four Seats.aero MCP tools: argument schemas,
// validation, and the registry that dispatches invocations.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/awardtools/seats-aero-mcp/format"
)

// Tool is one callable MCP tool
type Tool interface {
	// Definition returns the tool's MCP schema for registration
	Definition() mcp.Tool

	// Invoke validates the request, performs the upstream call, and
	// formats the response
	Invoke(ctx context.Context, req mcp.CallToolRequest) (*Result, error)
}

// Result is the payload of a successful invocation
type Result struct {
	Format  format.Format `json:"format"`
	Content string        `json:"content"`
}

// bindingError converts an argument decode failure into a ValidationError
// so the caller sees it as bad input rather than a server fault.
func bindingError(err error) error {
	ve := &ValidationError{}
	ve.add("arguments", err.Error())
	return ve
}

func responseFormatOption() mcp.ToolOption {
	return mcp.WithString("response_format",
		mcp.Description("Choose 'markdown' for summaries or 'json' for full data."),
		mcp.Enum(string(format.Markdown), string(format.JSON)),
	)
}
