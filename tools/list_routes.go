package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/awardtools/seats-aero-mcp/format"
	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// ListRoutesTool lists the routes tracked by Seats.aero.
type ListRoutesTool struct {
	Client *seatsaero.Client
}

func (t *ListRoutesTool) Definition() mcp.Tool {
	return mcp.NewTool("seats_list_routes",
		mcp.WithDescription("List normalized routes tracked by Seats.aero, optionally filtered by mileage program."),
		mcp.WithTitleAnnotation("Seats.aero Get Routes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("source",
			mcp.Description("Filter routes to a specific mileage program."),
			mcp.Enum(SupportedPrograms...),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum routes to summarize in markdown (1-200, default 50; JSON always returns all)."),
			mcp.Min(1),
			mcp.Max(200),
		),
		responseFormatOption(),
	)
}

func (t *ListRoutesTool) Invoke(ctx context.Context, req mcp.CallToolRequest) (*Result, error) {
	var in ListRoutesInput
	if err := req.BindArguments(&in); err != nil {
		return nil, bindingError(err)
	}

	source, limit, responseFormat, err := in.Params()
	if err != nil {
		return nil, err
	}

	list, err := t.Client.Routes(ctx, source)
	if err != nil {
		return nil, staged(StageCall, err)
	}

	content, err := format.Routes(list, responseFormat, limit)
	if err != nil {
		return nil, staged(StageFormat, err)
	}
	return &Result{Format: responseFormat, Content: content}, nil
}
