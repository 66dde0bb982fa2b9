package seatsaero

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cabin keys used by the Partner API. Availability fields are prefixed
// with these letters (YAvailable, JMileageCost, ...).
var cabinLabels = []struct {
	Key   string
	Label string
}{
	{"Y", "economy"},
	{"W", "premium"},
	{"J", "business"},
	{"F", "first"},
}

// Miles is a mileage cost. The API returns it as a bare number on some
// endpoints and as a quoted string on others, so it needs a tolerant
// unmarshaler.
type Miles int64

func (m *Miles) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid mileage cost %q", s)
	}
	*m = Miles(v)
	return nil
}

// Route is a normalized origin/destination pair tracked by Seats.aero,
// with the mileage program it applies to.
type Route struct {
	ID                 string `json:"ID"`
	OriginAirport      string `json:"OriginAirport"`
	OriginRegion       string `json:"OriginRegion"`
	DestinationAirport string `json:"DestinationAirport"`
	DestinationRegion  string `json:"DestinationRegion"`
	NumDaysOut         int    `json:"NumDaysOut"`
	Distance           int    `json:"Distance"`
	Source             string `json:"Source"`
	AutoCreated        bool   `json:"AutoCreated"`
}

// AvailabilityRecord is one cached search result: a route/date pair with
// per-cabin availability, mileage cost, and seat counts.
type AvailabilityRecord struct {
	ID      string `json:"ID"`
	RouteID string `json:"RouteID"`
	Route   Route  `json:"Route"`
	Date    string `json:"Date"`
	Source  string `json:"Source"`

	YAvailable bool `json:"YAvailable"`
	WAvailable bool `json:"WAvailable"`
	JAvailable bool `json:"JAvailable"`
	FAvailable bool `json:"FAvailable"`

	YMileageCost Miles `json:"YMileageCost"`
	WMileageCost Miles `json:"WMileageCost"`
	JMileageCost Miles `json:"JMileageCost"`
	FMileageCost Miles `json:"FMileageCost"`

	YRemainingSeats int `json:"YRemainingSeats"`
	WRemainingSeats int `json:"WRemainingSeats"`
	JRemainingSeats int `json:"JRemainingSeats"`
	FRemainingSeats int `json:"FRemainingSeats"`

	YDirect bool `json:"YDirect"`
	WDirect bool `json:"WDirect"`
	JDirect bool `json:"JDirect"`
	FDirect bool `json:"FDirect"`

	CreatedAt string `json:"CreatedAt"`
	UpdatedAt string `json:"UpdatedAt"`
}

// AvailableCabins lists the cabin names with availability on this record.
func (r *AvailabilityRecord) AvailableCabins() []string {
	available := map[string]bool{
		"Y": r.YAvailable,
		"W": r.WAvailable,
		"J": r.JAvailable,
		"F": r.FAvailable,
	}
	var cabins []string
	for _, c := range cabinLabels {
		if available[c.Key] {
			cabins = append(cabins, c.Label)
		}
	}
	return cabins
}

// LowestMiles returns the cheapest positive mileage cost across cabins,
// or 0 when no cabin has a usable cost.
func (r *AvailabilityRecord) LowestMiles() Miles {
	var lowest Miles
	for _, cost := range []Miles{r.YMileageCost, r.WMileageCost, r.JMileageCost, r.FMileageCost} {
		if cost > 0 && (lowest == 0 || cost < lowest) {
			lowest = cost
		}
	}
	return lowest
}

// HasDirect reports whether any cabin has a direct itinerary.
func (r *AvailabilityRecord) HasDirect() bool {
	return r.YDirect || r.WDirect || r.JDirect || r.FDirect
}

// AvailabilityPage is the paginated envelope returned by /search and
// /availability. Raw holds the upstream body verbatim for JSON passthrough.
type AvailabilityPage struct {
	Data    []AvailabilityRecord `json:"data"`
	Count   int                  `json:"count"`
	HasMore bool                 `json:"hasMore"`
	Cursor  int64                `json:"cursor"`
	MoreURL string               `json:"moreURL"`

	Raw json.RawMessage `json:"-"`
}

// RouteList is the /routes response.
type RouteList struct {
	Routes []Route

	Raw json.RawMessage `json:"-"`
}

// Segment is one flight-level leg of a trip.
type Segment struct {
	ID                 string `json:"ID"`
	RouteID            string `json:"RouteID"`
	AvailabilityID     string `json:"AvailabilityID"`
	FlightNumber       string `json:"FlightNumber"`
	Distance           int    `json:"Distance"`
	FareClass          string `json:"FareClass"`
	AircraftName       string `json:"AircraftName"`
	AircraftCode       string `json:"AircraftCode"`
	OriginAirport      string `json:"OriginAirport"`
	DestinationAirport string `json:"DestinationAirport"`
	DepartsAt          string `json:"DepartsAt"`
	ArrivesAt          string `json:"ArrivesAt"`
	Cabin              string `json:"Cabin"`
	Order              int    `json:"Order"`
	Source             string `json:"Source"`
}

// Trip is a bookable itinerary attached to one cached availability record.
type Trip struct {
	ID                   string    `json:"ID"`
	RouteID              string    `json:"RouteID"`
	AvailabilityID       string    `json:"AvailabilityID"`
	AvailabilitySegments []Segment `json:"AvailabilitySegments"`
	TotalDuration        int       `json:"TotalDuration"`
	Stops                int       `json:"Stops"`
	Carriers             string    `json:"Carriers"`
	RemainingSeats       int       `json:"RemainingSeats"`
	MileageCost          Miles     `json:"MileageCost"`
	TotalTaxes           int64     `json:"TotalTaxes"`
	TaxesCurrency        string    `json:"TaxesCurrency"`
	Cabin                string    `json:"Cabin"`
	FlightNumbers        string    `json:"FlightNumbers"`
	DepartsAt            string    `json:"DepartsAt"`
	ArrivesAt            string    `json:"ArrivesAt"`
	OriginAirport        string    `json:"OriginAirport"`
	DestinationAirport   string    `json:"DestinationAirport"`
	Source               string    `json:"Source"`
}

// TripsPage is the /trips/{id} response envelope.
type TripsPage struct {
	Data []Trip `json:"data"`

	Raw json.RawMessage `json:"-"`
}
