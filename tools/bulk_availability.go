package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/awardtools/seats-aero-mcp/format"
	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// BulkAvailabilityTool retrieves high-volume availability for one program.
type BulkAvailabilityTool struct {
	Client *seatsaero.Client
}

func (t *BulkAvailabilityTool) Definition() mcp.Tool {
	return mcp.NewTool("seats_bulk_availability",
		mcp.WithDescription("Retrieve high-volume availability data for a single mileage program. "+
			"The dataset can be large, so prefer tight filters and use cursor/skip to paginate."),
		mcp.WithTitleAnnotation("Seats.aero Bulk Availability"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Mileage program to scan (e.g. 'american')."),
			mcp.Enum(SupportedPrograms...),
		),
		mcp.WithString("cabin",
			mcp.Description("Restrict to a specific cabin."),
			mcp.Enum(Cabins...),
		),
		mcp.WithString("start_date",
			mcp.Description("Filter departures on/after this date (YYYY-MM-DD)."),
		),
		mcp.WithString("end_date",
			mcp.Description("Filter departures on/before this date (YYYY-MM-DD)."),
		),
		mcp.WithString("origin_region",
			mcp.Description("Only results originating in this region."),
			mcp.Enum(Regions...),
		),
		mcp.WithString("destination_region",
			mcp.Description("Only results with this destination region."),
			mcp.Enum(Regions...),
		),
		mcp.WithNumber("take",
			mcp.Description("Page size for the API call (10-1000, default 50)."),
			mcp.Min(10),
			mcp.Max(1000),
		),
		mcp.WithNumber("cursor",
			mcp.Description("Cursor from a prior response."),
			mcp.Min(0),
		),
		mcp.WithNumber("skip",
			mcp.Description("Number of previously retrieved rows to skip when paginating."),
			mcp.Min(0),
		),
		mcp.WithBoolean("include_filtered",
			mcp.Description("Include dynamically priced results that are otherwise filtered."),
		),
		responseFormatOption(),
	)
}

func (t *BulkAvailabilityTool) Invoke(ctx context.Context, req mcp.CallToolRequest) (*Result, error) {
	var in BulkAvailabilityInput
	if err := req.BindArguments(&in); err != nil {
		return nil, bindingError(err)
	}

	params, responseFormat, err := in.Params()
	if err != nil {
		return nil, err
	}

	page, err := t.Client.BulkAvailability(ctx, params)
	if err != nil {
		return nil, staged(StageCall, err)
	}

	content, err := format.BulkAvailability(page, responseFormat)
	if err != nil {
		return nil, staged(StageFormat, err)
	}
	return &Result{Format: responseFormat, Content: content}, nil
}
