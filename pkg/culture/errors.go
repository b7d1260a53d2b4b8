package culture

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Static errors for err113 compliance.
var (
	// ErrResourceNotSelected is returned when a request is serialized before a
	// resource was chosen.
	ErrResourceNotSelected = errors.New("API method must be set")
	ErrInvalidID           = errors.New("item id must be positive")
	ErrUnknownResource     = errors.New("unknown resource")
	ErrTransportRequired   = errors.New("transport is required")
	ErrConfigRequired      = errors.New("config is required")

	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("invalid parameter")

	// ErrTransport wraps any failure reported by the Transport.
	ErrTransport     = errors.New("transport failure")
	ErrEmptyResponse = errors.New("empty response")
	ErrInvalidJSON   = errors.New("response is not valid JSON")
	ErrInvalidDate   = errors.New("invalid date")

	errTrailingData = errors.New("trailing data after top-level value")
)

// ValidationError reports an enumerated parameter holding a value outside its
// allowed set.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

// Error implements the error interface. The wording mirrors the messages the
// upstream API documentation uses for each field.
func (e *ValidationError) Error() string {
	allowed := strings.Join(e.Allowed, ",")

	switch e.Field {
	case paramType:
		return fmt.Sprintf("Unknown category %s. Must be one from list: %s", e.Value, allowed)
	case paramFormat:
		return fmt.Sprintf("Unknown format %s. Must be one from list: %s", e.Value, allowed)
	case paramStatus:
		return fmt.Sprintf("Wrong status %s. Here allowed one from list - %s", e.Value, allowed)
	default:
		return fmt.Sprintf("invalid %s %q, must be one of: %s", e.Field, e.Value, allowed)
	}
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// APIError is the "error" field of an otherwise well-formed API response.
type APIError struct {
	Value interface{}
}

// Message renders the error value. Non-string values are compacted to JSON.
func (e *APIError) Message() string {
	if s, ok := e.Value.(string); ok {
		return s
	}

	data, err := json.Marshal(e.Value)
	if err != nil {
		return fmt.Sprint(e.Value)
	}

	return string(data)
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return "API error: " + e.Message()
}

// StatusError is returned by transports when the server answered with a status
// that carries no usable payload.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, truncate(string(e.Body), maxStatusBody))
}

// DateError reports a date string that could not be converted to epoch millis.
type DateError struct {
	Param string
	Input string
	Err   error
}

// Error implements the error interface.
func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Param, e.Input, e.Err)
}

// Unwrap returns ErrInvalidDate so callers can branch without the parser error.
func (e *DateError) Unwrap() []error {
	return []error{ErrInvalidDate, e.Err}
}

// ParseError reports a response body that is not a single JSON value. Body
// keeps the payload as received, which is how a format=csv answer reaches
// the caller.
type ParseError struct {
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidJSON, e.Err)
}

// Unwrap returns ErrInvalidJSON alongside the decoder error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.Err}
}

// IsValidationError checks if the error is an enumeration violation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsAPIError checks if the error came from an "error" field in the response.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsTransportError checks if the error was raised while talking to the server.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

const maxStatusBody = 200

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
