package tools

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/awardtools/seats-aero-mcp/format"
	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// defaultTake matches the Partner API's default page size.
const defaultTake = 50

// SupportedPrograms are the mileage programs the Partner API indexes.
var SupportedPrograms = []string{
	"aeromexico",
	"aeroplan",
	"alaska",
	"american",
	"azul",
	"connectmiles",
	"delta",
	"emirates",
	"etihad",
	"ethiopian",
	"eurobonus",
	"flyingblue",
	"jetblue",
	"qantas",
	"qatar",
	"saudia",
	"singapore",
	"smiles",
	"turkish",
	"united",
	"velocity",
	"virginatlantic",
}

// Regions accepted by the bulk availability filters.
var Regions = []string{
	"North America",
	"South America",
	"Africa",
	"Asia",
	"Europe",
	"Oceania",
}

// Cabins accepted by cabin filters.
var Cabins = []string{"economy", "premium", "business", "first"}

var supportedProgramSet = toSet(SupportedPrograms)
var regionSet = toSet(Regions)
var cabinSet = toSet(Cabins)

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

var airportCode = regexp.MustCompile(`^[A-Za-z]{3}$`)

// validate is the shared schema checker. Field names in error messages use
// the json tag so callers see the argument name they actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// collectTagViolations runs struct-tag validation and folds every violation
// into the collector, so the caller gets all problems in one pass.
func collectTagViolations(ve *ValidationError, input interface{}) {
	err := validate.Struct(input)
	if err == nil {
		return
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		ve.add("arguments", err.Error())
		return
	}

	for _, violation := range violations {
		ve.add(violation.Field(), tagMessage(violation))
	}
}

func tagMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a valid YYYY-MM-DD date"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(violation.Param(), " ", ", ")
	case "gte":
		return "must be at least " + violation.Param()
	case "lte":
		return "must be at most " + violation.Param()
	default:
		return fmt.Sprintf("failed %q validation", violation.Tag())
	}
}

// splitCSV splits a comma-separated argument, trimming whitespace, applying
// transform, and dropping blanks and duplicates while preserving order.
func splitCSV(value string, transform func(string) string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if transform != nil {
			part = transform(part)
		}
		if !seen[part] {
			seen[part] = true
			out = append(out, part)
		}
	}
	return out
}

// parseAirports normalizes a CSV of IATA codes to uppercase, recording a
// violation for each malformed code.
func parseAirports(ve *ValidationError, field, value string) []string {
	codes := splitCSV(value, strings.ToUpper)
	if len(codes) == 0 {
		ve.add(field, "at least one 3-letter IATA airport code is required")
		return nil
	}
	for _, code := range codes {
		if !airportCode.MatchString(code) {
			ve.add(field, fmt.Sprintf("%q is not a 3-letter IATA airport code", code))
		}
	}
	return codes
}

// parsePrograms validates a CSV of mileage programs, lowercased.
func parsePrograms(ve *ValidationError, field, value string) []string {
	programs := splitCSV(value, strings.ToLower)
	for _, program := range programs {
		checkProgram(ve, field, program)
	}
	return programs
}

func checkProgram(ve *ValidationError, field, program string) {
	if !supportedProgramSet[program] {
		ve.add(field, fmt.Sprintf("unsupported mileage program %q, supported: %s",
			program, strings.Join(SupportedPrograms, ", ")))
	}
}

// parseCabins validates a CSV of cabin names, lowercased.
func parseCabins(ve *ValidationError, field, value string) []string {
	cabins := splitCSV(value, strings.ToLower)
	for _, cabin := range cabins {
		if !cabinSet[cabin] {
			ve.add(field, fmt.Sprintf("invalid cabin %q, must be one of: %s",
				cabin, strings.Join(Cabins, ", ")))
		}
	}
	return cabins
}

func checkRegion(ve *ValidationError, field, region string) {
	if region != "" && !regionSet[region] {
		ve.add(field, fmt.Sprintf("invalid region %q, must be one of: %s",
			region, strings.Join(Regions, ", ")))
	}
}

// checkDateOrder rejects ranges where the start falls after the end.
// ISO dates compare correctly as strings once the format check has passed.
func checkDateOrder(ve *ValidationError, start, end string) {
	if start != "" && end != "" && start > end {
		ve.add("start_date", fmt.Sprintf("must not be after end_date (%s > %s)", start, end))
	}
}

// overlap returns the values present in both lists, preserving a's order.
func overlap(a, b []string) []string {
	inB := toSet(b)
	var both []string
	for _, v := range a {
		if inB[v] {
			both = append(both, v)
		}
	}
	sort.Strings(both)
	return both
}

// CachedSearchInput are the raw arguments of seats_cached_search.
type CachedSearchInput struct {
	OriginAirport      string `json:"origin_airport" validate:"required"`
	DestinationAirport string `json:"destination_airport" validate:"required"`
	StartDate          string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Cursor             *int64 `json:"cursor" validate:"omitempty,gte=0"`
	Take               int    `json:"take" validate:"omitempty,gte=10,lte=1000"`
	Skip               int    `json:"skip" validate:"omitempty,gte=0"`
	IncludeTrips       bool   `json:"include_trips"`
	MinifyTrips        bool   `json:"minify_trips"`
	OnlyDirectFlights  bool   `json:"only_direct_flights"`
	Carriers           string `json:"carriers"`
	Sources            string `json:"sources"`
	Cabins             string `json:"cabins"`
	IncludeFiltered    bool   `json:"include_filtered"`
	ResponseFormat     string `json:"response_format" validate:"omitempty,oneof=markdown json"`
}

// Params validates and normalizes the input into client query parameters.
func (in *CachedSearchInput) Params() (seatsaero.CachedSearchParams, format.Format, error) {
	ve := &ValidationError{}
	collectTagViolations(ve, in)

	// The required tag already covers fully-missing fields; parseAirports
	// handles present-but-malformed values like " , ".
	var origins, destinations []string
	if in.OriginAirport != "" {
		origins = parseAirports(ve, "origin_airport", in.OriginAirport)
	}
	if in.DestinationAirport != "" {
		destinations = parseAirports(ve, "destination_airport", in.DestinationAirport)
	}
	if both := overlap(origins, destinations); len(both) > 0 {
		ve.add("destination_airport", fmt.Sprintf(
			"must not overlap origin_airport (%s); searching an airport against itself returns nothing",
			strings.Join(both, ", ")))
	}

	checkDateOrder(ve, in.StartDate, in.EndDate)

	carriers := splitCSV(in.Carriers, strings.ToUpper)
	sources := parsePrograms(ve, "sources", in.Sources)
	cabins := parseCabins(ve, "cabins", in.Cabins)

	responseFormat, _ := format.Parse(in.ResponseFormat)

	if err := ve.orNil(); err != nil {
		return seatsaero.CachedSearchParams{}, "", err
	}

	take := in.Take
	if take == 0 {
		take = defaultTake
	}

	return seatsaero.CachedSearchParams{
		OriginAirports:      origins,
		DestinationAirports: destinations,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		Cursor:              in.Cursor,
		Take:                take,
		Skip:                in.Skip,
		IncludeTrips:        in.IncludeTrips,
		MinifyTrips:         in.MinifyTrips,
		OnlyDirectFlights:   in.OnlyDirectFlights,
		Carriers:            carriers,
		Sources:             sources,
		Cabins:              cabins,
		IncludeFiltered:     in.IncludeFiltered,
	}, responseFormat, nil
}

// BulkAvailabilityInput are the raw arguments of seats_bulk_availability.
type BulkAvailabilityInput struct {
	Source            string `json:"source" validate:"required"`
	Cabin             string `json:"cabin"`
	StartDate         string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate           string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	OriginRegion      string `json:"origin_region"`
	DestinationRegion string `json:"destination_region"`
	Take              int    `json:"take" validate:"omitempty,gte=10,lte=1000"`
	Cursor            *int64 `json:"cursor" validate:"omitempty,gte=0"`
	Skip              int    `json:"skip" validate:"omitempty,gte=0"`
	IncludeFiltered   bool   `json:"include_filtered"`
	ResponseFormat    string `json:"response_format" validate:"omitempty,oneof=markdown json"`
}

// Params validates and normalizes the input into client query parameters.
func (in *BulkAvailabilityInput) Params() (seatsaero.BulkAvailabilityParams, format.Format, error) {
	ve := &ValidationError{}
	collectTagViolations(ve, in)

	source := strings.ToLower(strings.TrimSpace(in.Source))
	if source != "" {
		checkProgram(ve, "source", source)
	}

	cabin := strings.ToLower(strings.TrimSpace(in.Cabin))
	if cabin != "" && !cabinSet[cabin] {
		ve.add("cabin", fmt.Sprintf("invalid cabin %q, must be one of: %s",
			cabin, strings.Join(Cabins, ", ")))
	}

	checkDateOrder(ve, in.StartDate, in.EndDate)
	checkRegion(ve, "origin_region", in.OriginRegion)
	checkRegion(ve, "destination_region", in.DestinationRegion)

	responseFormat, _ := format.Parse(in.ResponseFormat)

	if err := ve.orNil(); err != nil {
		return seatsaero.BulkAvailabilityParams{}, "", err
	}

	take := in.Take
	if take == 0 {
		take = defaultTake
	}

	return seatsaero.BulkAvailabilityParams{
		Source:            source,
		Cabin:             cabin,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		OriginRegion:      in.OriginRegion,
		DestinationRegion: in.DestinationRegion,
		Take:              take,
		Cursor:            in.Cursor,
		Skip:              in.Skip,
		IncludeFiltered:   in.IncludeFiltered,
	}, responseFormat, nil
}

// ListRoutesInput are the raw arguments of seats_list_routes.
type ListRoutesInput struct {
	Source         string `json:"source"`
	Limit          int    `json:"limit" validate:"omitempty,gte=1,lte=200"`
	ResponseFormat string `json:"response_format" validate:"omitempty,oneof=markdown json"`
}

// Params validates and normalizes the input.
func (in *ListRoutesInput) Params() (source string, limit int, f format.Format, err error) {
	ve := &ValidationError{}
	collectTagViolations(ve, in)

	source = strings.ToLower(strings.TrimSpace(in.Source))
	if source != "" {
		checkProgram(ve, "source", source)
	}

	responseFormat, _ := format.Parse(in.ResponseFormat)

	if err := ve.orNil(); err != nil {
		return "", 0, "", err
	}

	limit = in.Limit
	if limit == 0 {
		limit = defaultTake
	}
	return source, limit, responseFormat, nil
}

// TripDetailsInput are the raw arguments of seats_trip_details.
type TripDetailsInput struct {
	AvailabilityID  string `json:"availability_id" validate:"required"`
	IncludeFiltered bool   `json:"include_filtered"`
	ResponseFormat  string `json:"response_format" validate:"omitempty,oneof=markdown json"`
}

// Params validates and normalizes the input.
func (in *TripDetailsInput) Params() (availabilityID string, includeFiltered bool, f format.Format, err error) {
	ve := &ValidationError{}
	collectTagViolations(ve, in)

	availabilityID = strings.TrimSpace(in.AvailabilityID)
	if in.AvailabilityID != "" && availabilityID == "" {
		ve.add("availability_id", "must not be blank")
	}

	responseFormat, _ := format.Parse(in.ResponseFormat)

	if err := ve.orNil(); err != nil {
		return "", false, "", err
	}
	return availabilityID, in.IncludeFiltered, responseFormat, nil
}
