package ingest

import (
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-flightgraph/pkg/storage"
)

// SplitLine splits a row on every comma. Quoted commas are not honoured, and
// a single trailing empty field is dropped, so "a,b," yields two fields.
func SplitLine(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil
	}
	fields := strings.Split(line, ",")
	if n := len(fields); n > 1 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	return fields
}

func text(field string) string {
	return storage.StripQuotes(field)
}

func isNull(field string) bool {
	return field == "" || field == storage.NullMarker
}

// optionalInt parses an integer column where empty or \N mean 0.
func optionalInt(field string) (int, bool) {
	if isNull(field) {
		return 0, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(field))
	return n, err == nil
}

func requiredInt(field string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	return n, err == nil
}

func requiredFloat(field string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	return f, err == nil
}

// ParseAirportRow reads an airports.dat row:
// id, name, city, country, iata, icao, latitude, longitude, ...
// The identity and both coordinates must parse.
func ParseAirportRow(fields []string) RowResult[storage.Airport] {
	if len(fields) == 0 {
		return skip[storage.Airport](SkipEmptyLine, "")
	}
	if len(fields) < MinFields {
		return skip[storage.Airport](SkipTooFewFields, "")
	}

	id, ok := requiredInt(fields[0])
	if !ok {
		return skip[storage.Airport](SkipBadNumber, "id")
	}
	lat, ok := requiredFloat(fields[6])
	if !ok {
		return skip[storage.Airport](SkipBadNumber, "latitude")
	}
	lon, ok := requiredFloat(fields[7])
	if !ok {
		return skip[storage.Airport](SkipBadNumber, "longitude")
	}

	return accept(storage.Airport{
		ID:        id,
		Name:      text(fields[1]),
		City:      text(fields[2]),
		Country:   text(fields[3]),
		IATA:      text(fields[4]),
		Latitude:  lat,
		Longitude: lon,
	})
}

// ParseRouteRow reads a routes.dat row:
// airline, airline_id, source, source_id, destination, destination_id,
// codeshare, stops, ...
// Unknown numeric columns (empty or \N) become 0.
func ParseRouteRow(fields []string) RowResult[RouteRow] {
	if len(fields) == 0 {
		return skip[RouteRow](SkipEmptyLine, "")
	}
	if len(fields) < MinFields {
		return skip[RouteRow](SkipTooFewFields, "")
	}

	row := RouteRow{
		Airline:         text(fields[0]),
		SourceCode:      text(fields[2]),
		DestinationCode: text(fields[4]),
	}

	numeric := []struct {
		name   string
		column int
		dst    *int
	}{
		{"airline_id", 1, &row.AirlineID},
		{"source_id", 3, &row.SourceID},
		{"destination_id", 5, &row.DestinationID},
		{"stops", 7, &row.Stops},
	}
	for _, col := range numeric {
		n, ok := optionalInt(fields[col.column])
		if !ok {
			return skip[RouteRow](SkipBadNumber, col.name)
		}
		*col.dst = n
	}

	return accept(row)
}
