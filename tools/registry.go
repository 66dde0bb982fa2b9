package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	appctx "github.com/awardtools/seats-aero-mcp/context"
	"github.com/awardtools/seats-aero-mcp/log"
)

// Registry manages the registration and dispatch of MCP tools
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry
func (r *Registry) Register(tool Tool) {
	name := tool.Definition().Name
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = tool
}

// Names returns the registered tool names in registration order
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Execute dispatches one invocation by tool name. Unknown names fail with
// a NotFoundError; each invocation gets its own request ID.
func (r *Registry) Execute(ctx context.Context, name string, req mcp.CallToolRequest) (*Result, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	if appctx.RequestIDFromContext(ctx) == "" {
		ctx = appctx.WithRequestID(ctx, appctx.NewRequestID())
	}

	log.Infof(ctx, "Invoking tool %s", name)
	result, err := tool.Invoke(ctx, req)
	if err != nil {
		kind, stage, _ := classify(err)
		log.Warnf(ctx, "Tool %s failed at %s stage: %s: %v", name, stage, kind, err)
		return nil, err
	}

	log.Infof(ctx, "Tool %s returned %d characters (%s)", name, len(result.Content), result.Format)
	return result, nil
}

// AttachTo registers every tool with the MCP server
func (r *Registry) AttachTo(s *server.MCPServer) {
	for _, name := range r.order {
		tool := r.tools[name]
		s.AddTool(tool.Definition(), r.handler(name))
	}
}

// handler adapts a registered tool to the mcp-go handler signature.
// Failures become structured tool errors, never protocol-level errors.
func (r *Registry) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := r.Execute(ctx, name, req)
		if err != nil {
			return mcp.NewToolResultError(renderError(err)), nil
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// renderError builds the caller-facing error text: kind, stage, detail,
// and a hint when one applies.
func renderError(err error) string {
	kind, stage, hint := classify(err)

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s stage: %v", kind, stage, err)
	if hint != "" {
		fmt.Fprintf(&b, " (%s)", hint)
	}
	return b.String()
}
