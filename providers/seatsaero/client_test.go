package seatsaero

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPartnerServer mocks the Partner API endpoints used by the client
func mockPartnerServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/search":
			w.Write([]byte(`{
				"data": [{
					"ID": "avail-1",
					"Route": {"OriginAirport": "JFK", "DestinationAirport": "LHR", "Source": "aeroplan"},
					"Date": "2026-09-01",
					"JAvailable": true,
					"JMileageCost": "60000",
					"JRemainingSeats": 2,
					"JDirect": true,
					"Source": "aeroplan"
				}],
				"count": 1,
				"hasMore": false,
				"cursor": 0
			}`))
		case "/availability":
			w.Write([]byte(`{"data": [], "count": 0, "hasMore": false, "cursor": 0}`))
		case "/routes":
			w.Write([]byte(`[{
				"ID": "route-1",
				"OriginAirport": "SFO",
				"DestinationAirport": "NRT",
				"OriginRegion": "North America",
				"DestinationRegion": "Asia",
				"NumDaysOut": 330,
				"Distance": 5130,
				"Source": "alaska"
			}]`))
		case "/trips/avail-1":
			w.Write([]byte(`{
				"data": [{
					"ID": "trip-1",
					"AvailabilityID": "avail-1",
					"MileageCost": 60000,
					"Cabin": "business",
					"Carriers": "AC",
					"RemainingSeats": 2,
					"OriginAirport": "JFK",
					"DestinationAirport": "LHR",
					"AvailabilitySegments": [{
						"FlightNumber": "AC123",
						"OriginAirport": "JFK",
						"DestinationAirport": "LHR",
						"DepartsAt": "2026-09-01T18:00:00Z",
						"ArrivesAt": "2026-09-02T06:00:00Z",
						"Cabin": "business"
					}]
				}]
			}`))
		case "/trips/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "availability not found"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "unknown endpoint"}`))
		}
	}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("test-token", baseURL, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient("", DefaultBaseURL, 0)
	assert.Error(t, err)

	_, err = NewClient("   ", DefaultBaseURL, 0)
	assert.Error(t, err)

	client, err := NewClient("tok", "", 0)
	assert.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
}

func TestCachedSearch(t *testing.T) {
	ts := mockPartnerServer()
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	page, err := client.CachedSearch(context.Background(), CachedSearchParams{
		OriginAirports:      []string{"JFK"},
		DestinationAirports: []string{"LHR"},
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 1)
	assert.Equal(t, "avail-1", page.Data[0].ID)
	assert.Equal(t, Miles(60000), page.Data[0].JMileageCost)
	assert.Equal(t, []string{"business"}, page.Data[0].AvailableCabins())
	assert.Equal(t, Miles(60000), page.Data[0].LowestMiles())
	assert.True(t, page.Data[0].HasDirect())
	assert.NotEmpty(t, page.Raw)
}

func TestCachedSearch_QueryEncoding(t *testing.T) {
	var gotQuery map[string][]string
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Partner-Authorization")
		w.Write([]byte(`{"data": [], "count": 0}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	cursor := int64(42)
	_, err := client.CachedSearch(context.Background(), CachedSearchParams{
		OriginAirports:      []string{"JFK", "EWR"},
		DestinationAirports: []string{"LHR"},
		StartDate:           "2026-09-01",
		EndDate:             "2026-09-10",
		Cursor:              &cursor,
		Take:                100,
		OnlyDirectFlights:   true,
		Sources:             []string{"aeroplan", "united"},
	})
	require.NoError(t, err)

	assert.Equal(t, "test-token", gotAuth)
	assert.Equal(t, []string{"JFK,EWR"}, gotQuery["origin_airport"])
	assert.Equal(t, []string{"LHR"}, gotQuery["destination_airport"])
	assert.Equal(t, []string{"2026-09-01"}, gotQuery["start_date"])
	assert.Equal(t, []string{"42"}, gotQuery["cursor"])
	assert.Equal(t, []string{"100"}, gotQuery["take"])
	assert.Equal(t, []string{"true"}, gotQuery["only_direct_flights"])
	assert.Equal(t, []string{"aeroplan,united"}, gotQuery["sources"])

	// false booleans and empty optionals are omitted entirely
	assert.NotContains(t, gotQuery, "include_trips")
	assert.NotContains(t, gotQuery, "skip")
	assert.NotContains(t, gotQuery, "carriers")
}

func TestRoutes(t *testing.T) {
	ts := mockPartnerServer()
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	list, err := client.Routes(context.Background(), "alaska")
	require.NoError(t, err)
	assert.Len(t, list.Routes, 1)
	assert.Equal(t, "SFO", list.Routes[0].OriginAirport)
	assert.Equal(t, "Asia", list.Routes[0].DestinationRegion)
}

func TestTripDetails(t *testing.T) {
	ts := mockPartnerServer()
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	page, err := client.TripDetails(context.Background(), "avail-1", false)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, Miles(60000), page.Data[0].MileageCost)
	assert.Len(t, page.Data[0].AvailabilitySegments, 1)
	assert.Equal(t, "AC123", page.Data[0].AvailabilitySegments[0].FlightNumber)
}

func TestTripDetails_NotFound(t *testing.T) {
	ts := mockPartnerServer()
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	_, err := client.TripDetails(context.Background(), "missing", false)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "availability not found", apiErr.Message)
}

func TestGet_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	client := newTestClient(t, ts.URL)

	_, err := client.CachedSearch(context.Background(), CachedSearchParams{})
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestGet_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	_, err := client.Routes(context.Background(), "")
	assert.Error(t, err)
}

func TestAPIError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"ErrorField", `{"error": "rate limited"}`, "rate limited"},
		{"MessageField", `{"message": "bad request"}`, "bad request"},
		{"PlainText", `upstream exploded`, "upstream exploded"},
		{"Empty", ``, "no error detail provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newAPIError(http.StatusBadGateway, []byte(tt.body))
			assert.Equal(t, tt.expected, apiErr.Message)
			assert.Contains(t, apiErr.Error(), "502")
		})
	}
}

func TestMiles_Unmarshal(t *testing.T) {
	var record struct {
		Cost Miles `json:"cost"`
	}

	assert.NoError(t, json.Unmarshal([]byte(`{"cost": 12500}`), &record))
	assert.Equal(t, Miles(12500), record.Cost)

	assert.NoError(t, json.Unmarshal([]byte(`{"cost": "12500"}`), &record))
	assert.Equal(t, Miles(12500), record.Cost)

	assert.NoError(t, json.Unmarshal([]byte(`{"cost": null}`), &record))
	assert.Equal(t, Miles(0), record.Cost)

	assert.Error(t, json.Unmarshal([]byte(`{"cost": "lots"}`), &record))
}
