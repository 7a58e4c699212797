package storage

import (
	"math"
	"testing"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{"same point", 51.47, -0.46, 51.47, -0.46, 0},
		{"one degree of equator", 0, 0, 0, 1, EarthRadiusKm * math.Pi / 180},
		{"pole to pole", 90, 0, -90, 0, EarthRadiusKm * math.Pi},
		{"antipodal on equator", 0, 0, 0, 180, EarthRadiusKm * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.IsNaN(got) {
				t.Fatal("distance is NaN")
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("HaversineKm = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestAirport_HasIATA(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"LHR", true},
		{`"cdg"`, true},
		{"", false},
		{NullMarker, false},
		{`""`, false},
	}

	for _, tt := range tests {
		if got := (Airport{IATA: tt.code}).HasIATA(); got != tt.want {
			t.Errorf("HasIATA(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestNewRoute_Options(t *testing.T) {
	r := NewRoute(7, 9,
		WithTime(2.5),
		WithCost(40),
		WithDistance(1234.5),
		WithStops(1),
		WithAirline("BA", 1355),
		WithCodes("LHR", "JFK"))

	if r.SourceID != 7 || r.DestinationID != 9 {
		t.Errorf("endpoints = %d -> %d", r.SourceID, r.DestinationID)
	}
	if r.Time != 2.5 || r.Cost != 40 || r.Distance != 1234.5 || r.Stops != 1 {
		t.Errorf("weights not applied: %+v", r)
	}
	if r.Airline != "BA" || r.AirlineID != 1355 {
		t.Errorf("airline = %s/%d", r.Airline, r.AirlineID)
	}
	if r.SourceCode != "LHR" || r.DestinationCode != "JFK" {
		t.Errorf("codes = %s -> %s", r.SourceCode, r.DestinationCode)
	}
}
