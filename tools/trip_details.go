package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/awardtools/seats-aero-mcp/format"
	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// TripDetailsTool fetches flight-level itinerary details for one cached
// availability record.
type TripDetailsTool struct {
	Client *seatsaero.Client
}

func (t *TripDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("seats_trip_details",
		mcp.WithDescription("Fetch flight-level itinerary details for a cached availability record."),
		mcp.WithTitleAnnotation("Seats.aero Trip Details"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("availability_id",
			mcp.Required(),
			mcp.Description("Availability ID returned by cached search or bulk availability."),
		),
		mcp.WithBoolean("include_filtered",
			mcp.Description("Include dynamically-priced trips that might be filtered out."),
		),
		responseFormatOption(),
	)
}

func (t *TripDetailsTool) Invoke(ctx context.Context, req mcp.CallToolRequest) (*Result, error) {
	var in TripDetailsInput
	if err := req.BindArguments(&in); err != nil {
		return nil, bindingError(err)
	}

	availabilityID, includeFiltered, responseFormat, err := in.Params()
	if err != nil {
		return nil, err
	}

	page, err := t.Client.TripDetails(ctx, availabilityID, includeFiltered)
	if err != nil {
		return nil, staged(StageCall, err)
	}

	content, err := format.Trips(page, responseFormat)
	if err != nil {
		return nil, staged(StageFormat, err)
	}
	return &Result{Format: responseFormat, Content: content}, nil
}
