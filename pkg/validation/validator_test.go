package validation

import (
	"strings"
	"testing"
)

func TestValidatePathRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         PathRequest
		expectError bool
		errorField  string
	}{
		{
			name: "Valid request with criterion",
			req:  PathRequest{Source: "JFK", Destination: "LAX", Criterion: "distance"},
		},
		{
			name: "Valid request without criterion",
			req:  PathRequest{Source: "LHR", Destination: "CDG"},
		},
		{
			name: "Digits allowed",
			req:  PathRequest{Source: "8N1", Destination: "CDG", Criterion: "hops"},
		},
		{
			name:        "Missing source",
			req:         PathRequest{Destination: "LAX"},
			expectError: true,
			errorField:  "Source",
		},
		{
			name:        "Missing destination",
			req:         PathRequest{Source: "JFK"},
			expectError: true,
			errorField:  "Destination",
		},
		{
			name:        "ICAO code rejected",
			req:         PathRequest{Source: "KJFK", Destination: "LAX"},
			expectError: true,
			errorField:  "Source",
		},
		{
			name:        "Punctuation rejected",
			req:         PathRequest{Source: "JFK", Destination: "L-X"},
			expectError: true,
			errorField:  "Destination",
		},
		{
			name:        "Unknown criterion",
			req:         PathRequest{Source: "JFK", Destination: "LAX", Criterion: "comfort"},
			expectError: true,
			errorField:  "Criterion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathRequest(&tt.req)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error for %s, got nil", tt.name)
				}
				if !strings.HasPrefix(err.Error(), tt.errorField+":") {
					t.Errorf("Expected error on %s, got: %v", tt.errorField, err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestValidatePathRequest_Nil(t *testing.T) {
	if err := ValidatePathRequest(nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestValidateLookupRequest(t *testing.T) {
	tests := []struct {
		code        string
		expectError bool
	}{
		{"GKA", false},
		{"", true},
		{"GK", true},
		{`"GKA"`, true}, // must be normalized first
		{"\\N", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := ValidateLookupRequest(&LookupRequest{Code: tt.code})
			if (err != nil) != tt.expectError {
				t.Errorf("ValidateLookupRequest(%q) error = %v, expectError %v", tt.code, err, tt.expectError)
			}
		})
	}

	if err := ValidateLookupRequest(nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestValidateReachRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         ReachRequest
		expectError string
	}{
		{"valid", ReachRequest{Source: "JFK", MaxHops: 2}, ""},
		{"upper bound", ReachRequest{Source: "JFK", MaxHops: MaxReachHops}, ""},
		{"zero hops", ReachRequest{Source: "JFK", MaxHops: 0}, "MaxHops: must be at least 1"},
		{"too many hops", ReachRequest{Source: "JFK", MaxHops: MaxReachHops + 1}, "MaxHops: must not exceed"},
		{"bad code", ReachRequest{Source: "J", MaxHops: 1}, "Source: must be exactly 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReachRequest(&tt.req)
			if tt.expectError == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.expectError) {
				t.Errorf("error = %v, want containing %q", err, tt.expectError)
			}
		})
	}
}

func TestFormatValidationError_PassThrough(t *testing.T) {
	if formatValidationError(nil) != nil {
		t.Error("nil should stay nil")
	}
	err := formatValidationError(errString("boom"))
	if err == nil || err.Error() != "boom" {
		t.Errorf("non-validator error should pass through, got %v", err)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
