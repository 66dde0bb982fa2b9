package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awardtools/seats-aero-mcp/format"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	var names []string
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestCachedSearchInput_Valid(t *testing.T) {
	in := CachedSearchInput{
		OriginAirport:      "jfk, ewr",
		DestinationAirport: "lhr",
		StartDate:          "2026-09-01",
		EndDate:            "2026-09-10",
		Carriers:           "aa,ba",
		Sources:            "aeroplan,united",
		Cabins:             "Business",
	}

	params, f, err := in.Params()
	require.NoError(t, err)

	assert.Equal(t, []string{"JFK", "EWR"}, params.OriginAirports)
	assert.Equal(t, []string{"LHR"}, params.DestinationAirports)
	assert.Equal(t, []string{"AA", "BA"}, params.Carriers)
	assert.Equal(t, []string{"aeroplan", "united"}, params.Sources)
	assert.Equal(t, []string{"business"}, params.Cabins)
	assert.Equal(t, defaultTake, params.Take)
	assert.Equal(t, format.Markdown, f)
}

func TestCachedSearchInput_MissingRequired(t *testing.T) {
	in := CachedSearchInput{}
	_, _, err := in.Params()
	require.Error(t, err)

	names := fieldNames(t, err)
	assert.Contains(t, names, "origin_airport")
	assert.Contains(t, names, "destination_airport")
}

func TestCachedSearchInput_SameAirport(t *testing.T) {
	in := CachedSearchInput{
		OriginAirport:      "JFK",
		DestinationAirport: "jfk",
	}
	_, _, err := in.Params()
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "must not overlap")
	assert.Contains(t, ve.Error(), "JFK")
}

func TestCachedSearchInput_OverlappingLists(t *testing.T) {
	in := CachedSearchInput{
		OriginAirport:      "JFK,LAX",
		DestinationAirport: "LHR,LAX",
	}
	_, _, err := in.Params()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAX")
}

func TestCachedSearchInput_BadAirportCode(t *testing.T) {
	in := CachedSearchInput{
		OriginAirport:      "NEWARK",
		DestinationAirport: "LHR",
	}
	_, _, err := in.Params()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"NEWARK" is not a 3-letter IATA airport code`)
}

func TestCachedSearchInput_DateChecks(t *testing.T) {
	t.Run("BadFormat", func(t *testing.T) {
		in := CachedSearchInput{
			OriginAirport:      "JFK",
			DestinationAirport: "LHR",
			StartDate:          "09/01/2026",
		}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start_date: must be a valid YYYY-MM-DD date")
	})

	t.Run("StartAfterEnd", func(t *testing.T) {
		in := CachedSearchInput{
			OriginAirport:      "JFK",
			DestinationAirport: "LHR",
			StartDate:          "2026-09-10",
			EndDate:            "2026-09-01",
		}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be after end_date")
	})

	t.Run("NotACalendarDate", func(t *testing.T) {
		in := CachedSearchInput{
			OriginAirport:      "JFK",
			DestinationAirport: "LHR",
			StartDate:          "2026-02-30",
		}
		_, _, err := in.Params()
		assert.Error(t, err)
	})
}

func TestCachedSearchInput_ResponseFormat(t *testing.T) {
	in := CachedSearchInput{
		OriginAirport:      "JFK",
		DestinationAirport: "LHR",
		ResponseFormat:     "yaml",
	}
	_, _, err := in.Params()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response_format: must be one of: markdown, json")

	in.ResponseFormat = "json"
	_, f, err := in.Params()
	require.NoError(t, err)
	assert.Equal(t, format.JSON, f)
}

func TestCachedSearchInput_CollectsAllViolations(t *testing.T) {
	in := CachedSearchInput{
		OriginAirport:      "XX",
		DestinationAirport: "LHR",
		StartDate:          "bad",
		Take:               5,
		ResponseFormat:     "yaml",
	}
	_, _, err := in.Params()
	require.Error(t, err)

	names := fieldNames(t, err)
	assert.Contains(t, names, "origin_airport")
	assert.Contains(t, names, "start_date")
	assert.Contains(t, names, "take")
	assert.Contains(t, names, "response_format")
}

func TestBulkAvailabilityInput(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		in := BulkAvailabilityInput{
			Source:       "American",
			Cabin:        "Business",
			OriginRegion: "North America",
		}
		params, f, err := in.Params()
		require.NoError(t, err)
		assert.Equal(t, "american", params.Source)
		assert.Equal(t, "business", params.Cabin)
		assert.Equal(t, defaultTake, params.Take)
		assert.Equal(t, format.Markdown, f)
	})

	t.Run("MissingSource", func(t *testing.T) {
		in := BulkAvailabilityInput{}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source: is required")
	})

	t.Run("UnsupportedProgram", func(t *testing.T) {
		in := BulkAvailabilityInput{Source: "skymall"}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported mileage program "skymall"`)
	})

	t.Run("BadRegion", func(t *testing.T) {
		in := BulkAvailabilityInput{Source: "united", DestinationRegion: "Atlantis"}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid region "Atlantis"`)
	})

	t.Run("BadCabin", func(t *testing.T) {
		in := BulkAvailabilityInput{Source: "united", Cabin: "steerage"}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid cabin "steerage"`)
	})

	t.Run("TakeRange", func(t *testing.T) {
		in := BulkAvailabilityInput{Source: "united", Take: 2000}
		_, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "take: must be at most 1000")
	})
}

func TestListRoutesInput(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		in := ListRoutesInput{}
		source, limit, f, err := in.Params()
		require.NoError(t, err)
		assert.Empty(t, source)
		assert.Equal(t, defaultTake, limit)
		assert.Equal(t, format.Markdown, f)
	})

	t.Run("UnknownProgram", func(t *testing.T) {
		in := ListRoutesInput{Source: "monopoly"}
		_, _, _, err := in.Params()
		assert.Error(t, err)
	})

	t.Run("LimitRange", func(t *testing.T) {
		in := ListRoutesInput{Limit: 500}
		_, _, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit: must be at most 200")
	})
}

func TestTripDetailsInput(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		in := TripDetailsInput{AvailabilityID: " avail-1 "}
		id, includeFiltered, f, err := in.Params()
		require.NoError(t, err)
		assert.Equal(t, "avail-1", id)
		assert.False(t, includeFiltered)
		assert.Equal(t, format.Markdown, f)
	})

	t.Run("Missing", func(t *testing.T) {
		in := TripDetailsInput{}
		_, _, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "availability_id: is required")
	})

	t.Run("Blank", func(t *testing.T) {
		in := TripDetailsInput{AvailabilityID: "   "}
		_, _, _, err := in.Params()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be blank")
	})
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"JFK", "EWR"}, splitCSV("jfk, ewr,,jfk", strings.ToUpper))
	assert.Nil(t, splitCSV(" , ", nil))
	assert.Nil(t, splitCSV("", nil))
}
