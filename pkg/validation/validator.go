package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxReachHops bounds reachability queries; six flights cover the
	// connected part of the OpenFlights network.
	MaxReachHops = 6
)

func init() {
	validate = validator.New()
}

// PathRequest is a shortest-path query by IATA code. Codes are expected to
// be normalized (upper case, quotes stripped) before validation.
type PathRequest struct {
	Source      string `json:"from" validate:"required,len=3,alphanum"`
	Destination string `json:"to" validate:"required,len=3,alphanum"`
	Criterion   string `json:"criterion" validate:"omitempty,oneof=distance time cost stops hops"`
}

// LookupRequest is an airport lookup by IATA code.
type LookupRequest struct {
	Code string `json:"iata" validate:"required,len=3,alphanum"`
}

// ReachRequest asks which airports are reachable within MaxHops flights.
type ReachRequest struct {
	Source  string `json:"from" validate:"required,len=3,alphanum"`
	MaxHops int    `json:"maxHops" validate:"min=1"`
}

// ValidatePathRequest validates a shortest-path request
func ValidatePathRequest(req *PathRequest) error {
	if req == nil {
		return errors.New("path request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateLookupRequest validates an airport lookup request
func ValidateLookupRequest(req *LookupRequest) error {
	if req == nil {
		return errors.New("lookup request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateReachRequest validates a reachability request
func ValidateReachRequest(req *ReachRequest) error {
	if req == nil {
		return errors.New("reach request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	if req.MaxHops > MaxReachHops {
		return fmt.Errorf("MaxHops: must not exceed %d, got %d", MaxReachHops, req.MaxHops)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first failure only
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "len":
			return fmt.Errorf("%s: must be exactly %s characters, got %q", field, param, e.Value())
		case "alphanum":
			return fmt.Errorf("%s: %q must contain only letters and digits", field, e.Value())
		case "oneof":
			return fmt.Errorf("%s: %q must be one of [%s]", field, e.Value(), param)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
