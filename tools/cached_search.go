package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/awardtools/seats-aero-mcp/format"
	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// CachedSearchTool searches cached award availability between airport pairs.
type CachedSearchTool struct {
	Client *seatsaero.Client
}

func (t *CachedSearchTool) Definition() mcp.Tool {
	return mcp.NewTool("seats_cached_search",
		mcp.WithDescription("Search cached award availability between origin/destination pairs. "+
			"Provide at least one origin and destination airport code; narrow the response with "+
			"optional dates, mileage programs, cabins, and pagination controls."),
		mcp.WithTitleAnnotation("Seats.aero Cached Search"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("origin_airport",
			mcp.Required(),
			mcp.Description("Origin IATA airport code(s), comma-separated (e.g. 'JFK' or 'JFK,EWR')."),
		),
		mcp.WithString("destination_airport",
			mcp.Required(),
			mcp.Description("Destination IATA airport code(s), comma-separated (e.g. 'LHR')."),
		),
		mcp.WithString("start_date",
			mcp.Description("Filter departures on/after this date (YYYY-MM-DD)."),
		),
		mcp.WithString("end_date",
			mcp.Description("Filter departures on/before this date (YYYY-MM-DD)."),
		),
		mcp.WithNumber("cursor",
			mcp.Description("Pagination cursor returned from a previous response."),
			mcp.Min(0),
		),
		mcp.WithNumber("take",
			mcp.Description("Maximum number of results to retrieve (10-1000, default 50)."),
			mcp.Min(10),
			mcp.Max(1000),
		),
		mcp.WithNumber("skip",
			mcp.Description("Number of records to skip."),
			mcp.Min(0),
		),
		mcp.WithBoolean("include_trips",
			mcp.Description("Include trip-level data (increases payload size)."),
		),
		mcp.WithBoolean("minify_trips",
			mcp.Description("When include_trips is true, return reduced trip fields."),
		),
		mcp.WithBoolean("only_direct_flights",
			mcp.Description("Return only direct itineraries when true."),
		),
		mcp.WithString("carriers",
			mcp.Description("Limit to these carriers, comma-separated (e.g. 'AA,BA')."),
		),
		mcp.WithString("sources",
			mcp.Description("Limit to specific mileage programs, comma-separated (e.g. 'aeroplan')."),
		),
		mcp.WithString("cabins",
			mcp.Description("Require these cabins to be available (economy, premium, business, first)."),
		),
		mcp.WithBoolean("include_filtered",
			mcp.Description("Include dynamically-priced results normally filtered out."),
		),
		responseFormatOption(),
	)
}

func (t *CachedSearchTool) Invoke(ctx context.Context, req mcp.CallToolRequest) (*Result, error) {
	var in CachedSearchInput
	if err := req.BindArguments(&in); err != nil {
		return nil, bindingError(err)
	}

	params, responseFormat, err := in.Params()
	if err != nil {
		return nil, err
	}

	page, err := t.Client.CachedSearch(ctx, params)
	if err != nil {
		return nil, staged(StageCall, err)
	}

	content, err := format.CachedSearch(page, responseFormat)
	if err != nil {
		return nil, staged(StageFormat, err)
	}
	return &Result{Format: responseFormat, Content: content}, nil
}
