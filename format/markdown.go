package format

import (
	"fmt"
	"strings"

	"github.com/awardtools/seats-aero-mcp/providers/seatsaero"
)

// markdownRowCap bounds how many availability rows a single markdown
// summary carries; JSON output always returns the full page.
const markdownRowCap = 50

// tableLines renders a markdown table as one line per part so truncation
// can drop trailing rows without breaking the table.
func tableLines(headers []string, rows [][]string) []string {
	lines := []string{
		"| " + strings.Join(headers, " | ") + " |",
		"| " + strings.Join(repeat("---", len(headers)), " | ") + " |",
	}
	for _, row := range rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return lines
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func miles(m seatsaero.Miles) string {
	if m <= 0 {
		return "—"
	}
	return groupDigits(int64(m))
}

// groupDigits formats 1234567 as "1,234,567"
func groupDigits(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func cabinsOrNone(record *seatsaero.AvailabilityRecord) string {
	cabins := record.AvailableCabins()
	if len(cabins) == 0 {
		return "None"
	}
	return strings.Join(cabins, ", ")
}

func orPlaceholder(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func pageSummary(page *seatsaero.AvailabilityPage) []string {
	summary := []string{
		fmt.Sprintf("**Returned** %d of %d records.", len(page.Data), page.Count),
		fmt.Sprintf("**Has more**: %t", page.HasMore),
		fmt.Sprintf("**Next cursor**: %d", page.Cursor),
	}
	if page.MoreURL != "" {
		summary = append(summary, fmt.Sprintf("Use `cursor=%d` or `skip` via %s for the next page.", page.Cursor, page.MoreURL))
	}
	return summary
}

func summarizePage(summary, table []string, hasRows bool) string {
	parts := summary
	if hasRows {
		parts = append(parts, "")
		parts = append(parts, table...)
	} else {
		parts = append(parts, "", "_No matching records were returned._")
	}
	return clampParts(parts, "\n")
}

// CachedSearch renders a /search page.
func CachedSearch(page *seatsaero.AvailabilityPage, f Format) (string, error) {
	if f == JSON {
		return PrettyJSON(page.Raw)
	}

	var rows [][]string
	for i := range page.Data {
		if i >= markdownRowCap {
			break
		}
		record := &page.Data[i]
		direct := "Mixed"
		if record.HasDirect() {
			direct = "Yes"
		}
		rows = append(rows, []string{
			orPlaceholder(record.Date),
			fmt.Sprintf("%s → %s", orPlaceholder(record.Route.OriginAirport), orPlaceholder(record.Route.DestinationAirport)),
			cabinsOrNone(record),
			miles(record.LowestMiles()),
			orPlaceholder(record.Route.Source),
			direct,
		})
	}

	headers := []string{"Date", "Route", "Cabins", "Lowest miles", "Program", "Direct"}
	return summarizePage(pageSummary(page), tableLines(headers, rows), len(rows) > 0), nil
}

// BulkAvailability renders an /availability page.
func BulkAvailability(page *seatsaero.AvailabilityPage, f Format) (string, error) {
	if f == JSON {
		return PrettyJSON(page.Raw)
	}

	var rows [][]string
	for i := range page.Data {
		if i >= markdownRowCap {
			break
		}
		record := &page.Data[i]
		program := record.Source
		if program == "" {
			program = record.Route.Source
		}
		rows = append(rows, []string{
			orPlaceholder(record.Date),
			fmt.Sprintf("%s → %s", orPlaceholder(record.Route.OriginAirport), orPlaceholder(record.Route.DestinationAirport)),
			cabinsOrNone(record),
			miles(record.LowestMiles()),
			orPlaceholder(program),
			fmt.Sprintf("%d", record.YRemainingSeats),
		})
	}

	headers := []string{"Date", "Route", "Cabins", "Lowest miles", "Program", "Y seats"}
	return summarizePage(pageSummary(page), tableLines(headers, rows), len(rows) > 0), nil
}

// Routes renders the /routes listing, capping markdown at limit rows.
func Routes(list *seatsaero.RouteList, f Format, limit int) (string, error) {
	if f == JSON {
		return PrettyJSON(list.Raw)
	}

	var rows [][]string
	for i := range list.Routes {
		if limit > 0 && i >= limit {
			break
		}
		route := &list.Routes[i]
		rows = append(rows, []string{
			fmt.Sprintf("%s → %s", orPlaceholder(route.OriginAirport), orPlaceholder(route.DestinationAirport)),
			orPlaceholder(route.OriginRegion) + " / " + orPlaceholder(route.DestinationRegion),
			fmt.Sprintf("%d", route.NumDaysOut),
			fmt.Sprintf("%s mi", groupDigits(int64(route.Distance))),
			orPlaceholder(route.Source),
		})
	}

	summary := []string{fmt.Sprintf("**Total routes retrieved**: %d", len(list.Routes))}
	headers := []string{"Route", "Regions", "Days Out", "Distance", "Program"}
	return summarizePage(summary, tableLines(headers, rows), len(rows) > 0), nil
}

// Trips renders a /trips/{id} page as one section per trip.
func Trips(page *seatsaero.TripsPage, f Format) (string, error) {
	if f == JSON {
		return PrettyJSON(page.Raw)
	}

	parts := []string{fmt.Sprintf("**Trips returned**: %d", len(page.Data))}
	for i := range page.Data {
		trip := &page.Data[i]

		lines := []string{
			fmt.Sprintf("**Trip %d:** %s → %s", i+1, orPlaceholder(trip.OriginAirport), orPlaceholder(trip.DestinationAirport)),
		}
		if trip.MileageCost > 0 {
			lines = append(lines, fmt.Sprintf("Cabin: %s | Mileage: %s", orPlaceholder(trip.Cabin), miles(trip.MileageCost)))
		} else {
			lines = append(lines, fmt.Sprintf("Cabin: %s", orPlaceholder(trip.Cabin)))
		}
		lines = append(lines, fmt.Sprintf("Carriers: %s | Remaining seats: %d", orPlaceholder(trip.Carriers), trip.RemainingSeats))

		for _, seg := range trip.AvailabilitySegments {
			lines = append(lines, fmt.Sprintf("• %s %s→%s (%s → %s) %s",
				orPlaceholder(seg.FlightNumber),
				orPlaceholder(seg.OriginAirport),
				orPlaceholder(seg.DestinationAirport),
				seg.DepartsAt,
				seg.ArrivesAt,
				seg.Cabin,
			))
		}

		parts = append(parts, strings.Join(lines, "\n"))
	}

	return clampParts(parts, "\n\n"), nil
}
