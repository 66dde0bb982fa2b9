// Package seatsaero is a thin client for the Seats.aero Partner API.
// One authenticated GET per call: no retries, no backoff, no caching
// beyond what the API itself does server-side.
package seatsaero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/awardtools/seats-aero-mcp/log"
)

const (
	// DefaultBaseURL is the production Partner API endpoint
	DefaultBaseURL = "https://seats.aero/partnerapi"

	// DefaultTimeout bounds every outbound call
	DefaultTimeout = 30 * time.Second
)

// Client is the Seats.aero Partner API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a new Partner API client.
// Returns an error if no token is supplied.
func NewClient(token, baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("partner API token is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		token:      token,
	}, nil
}

// get performs a single authenticated GET and returns the verbatim JSON body.
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Partner-Authorization", c.token)
	req.Header.Set("Accept", "application/json")

	log.Debugf(ctx, "[SeatsAero] GET %s", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("seats.aero returned invalid JSON")
	}

	return json.RawMessage(body), nil
}

// CachedSearchParams are the query options for GET /search.
type CachedSearchParams struct {
	OriginAirports      []string
	DestinationAirports []string
	StartDate           string
	EndDate             string
	Cursor              *int64
	Take                int
	Skip                int
	IncludeTrips        bool
	MinifyTrips         bool
	OnlyDirectFlights   bool
	Carriers            []string
	Sources             []string
	Cabins              []string
	IncludeFiltered     bool
}

func (p CachedSearchParams) encode() url.Values {
	q := url.Values{}
	setCSV(q, "origin_airport", p.OriginAirports)
	setCSV(q, "destination_airport", p.DestinationAirports)
	setString(q, "start_date", p.StartDate)
	setString(q, "end_date", p.EndDate)
	if p.Cursor != nil {
		q.Set("cursor", strconv.FormatInt(*p.Cursor, 10))
	}
	if p.Take > 0 {
		q.Set("take", strconv.Itoa(p.Take))
	}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	setBool(q, "include_trips", p.IncludeTrips)
	setBool(q, "minify_trips", p.MinifyTrips)
	setBool(q, "only_direct_flights", p.OnlyDirectFlights)
	setCSV(q, "carriers", p.Carriers)
	setCSV(q, "sources", p.Sources)
	setCSV(q, "cabins", p.Cabins)
	setBool(q, "include_filtered", p.IncludeFiltered)
	return q
}

// BulkAvailabilityParams are the query options for GET /availability.
type BulkAvailabilityParams struct {
	Source            string
	Cabin             string
	StartDate         string
	EndDate           string
	OriginRegion      string
	DestinationRegion string
	Take              int
	Cursor            *int64
	Skip              int
	IncludeFiltered   bool
}

func (p BulkAvailabilityParams) encode() url.Values {
	q := url.Values{}
	setString(q, "source", p.Source)
	setString(q, "cabin", p.Cabin)
	setString(q, "start_date", p.StartDate)
	setString(q, "end_date", p.EndDate)
	setString(q, "origin_region", p.OriginRegion)
	setString(q, "destination_region", p.DestinationRegion)
	if p.Take > 0 {
		q.Set("take", strconv.Itoa(p.Take))
	}
	if p.Cursor != nil {
		q.Set("cursor", strconv.FormatInt(*p.Cursor, 10))
	}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	setBool(q, "include_filtered", p.IncludeFiltered)
	return q
}

// CachedSearch queries cached award availability between airport pairs.
func (c *Client) CachedSearch(ctx context.Context, params CachedSearchParams) (*AvailabilityPage, error) {
	raw, err := c.get(ctx, "/search", params.encode())
	if err != nil {
		return nil, err
	}

	var page AvailabilityPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	page.Raw = raw
	return &page, nil
}

// BulkAvailability retrieves high-volume availability for one mileage program.
func (c *Client) BulkAvailability(ctx context.Context, params BulkAvailabilityParams) (*AvailabilityPage, error) {
	raw, err := c.get(ctx, "/availability", params.encode())
	if err != nil {
		return nil, err
	}

	var page AvailabilityPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}
	page.Raw = raw
	return &page, nil
}

// Routes lists the routes tracked by Seats.aero, optionally for one program.
func (c *Client) Routes(ctx context.Context, source string) (*RouteList, error) {
	q := url.Values{}
	setString(q, "source", source)

	raw, err := c.get(ctx, "/routes", q)
	if err != nil {
		return nil, err
	}

	var routes []Route
	if err := json.Unmarshal(raw, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes response: %w", err)
	}
	return &RouteList{Routes: routes, Raw: raw}, nil
}

// TripDetails fetches flight-level segments for one cached availability ID.
func (c *Client) TripDetails(ctx context.Context, availabilityID string, includeFiltered bool) (*TripsPage, error) {
	q := url.Values{}
	setBool(q, "include_filtered", includeFiltered)

	raw, err := c.get(ctx, "/trips/"+url.PathEscape(availabilityID), q)
	if err != nil {
		return nil, err
	}

	var page TripsPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode trips response: %w", err)
	}
	page.Raw = raw
	return &page, nil
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setCSV(q url.Values, key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, ","))
	}
}

func setBool(q url.Values, key string, value bool) {
	// The API treats the parameter's presence as opt-in, so false is omitted.
	if value {
		q.Set(key, "true")
	}
}
