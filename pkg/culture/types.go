package culture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Resource identifies one of the top-level API collections.
type Resource string

// Resources exposed by the API. The same names form the allowed set for the
// "type" parameter.
const (
	ResourceEvents        Resource = "events"
	ResourceArticles      Resource = "articles"
	ResourceCategories    Resource = "categories"
	ResourceTags          Resource = "tags"
	ResourceLocales       Resource = "locales"
	ResourceOrganizations Resource = "organizations"
	ResourcePlaces        Resource = "places"
)

// Status filters events by moderation state.
type Status string

// Allowed statuses.
const (
	StatusAccepted Status = "accepted"
	StatusNew      Status = "new"
	StatusRejected Status = "rejected"
)

// Format selects the response encoding for articles and places.
type Format string

// Allowed formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	allowedTypes = []string{
		string(ResourceEvents),
		string(ResourceArticles),
		string(ResourceCategories),
		string(ResourceTags),
		string(ResourceLocales),
		string(ResourceOrganizations),
		string(ResourcePlaces),
	}
	allowedFormats  = []string{string(FormatJSON), string(FormatCSV)}
	allowedStatuses = []string{string(StatusAccepted), string(StatusNew), string(StatusRejected)}
)

// AllowedTypes returns the values accepted for the "type" parameter.
func AllowedTypes() []string {
	return append([]string(nil), allowedTypes...)
}

// AllowedFormats returns the values accepted for the "format" parameter.
func AllowedFormats() []string {
	return append([]string(nil), allowedFormats...)
}

// AllowedStatuses returns the values accepted for the "status" parameter.
func AllowedStatuses() []string {
	return append([]string(nil), allowedStatuses...)
}

// ParseResource maps a resource name to its Resource.
func ParseResource(name string) (Resource, error) {
	for _, allowed := range allowedTypes {
		if allowed == name {
			return Resource(name), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownResource, name)
}

// Response is a decoded API reply.
type Response struct {
	// Body is the raw payload returned by the transport.
	Body []byte `json:"-" yaml:"-"`
	// Value is the payload decoded with json.Number for numeric values.
	Value interface{} `json:"value" yaml:"value"`
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// Object returns the decoded value as a JSON object, if it is one.
func (r *Response) Object() (map[string]interface{}, bool) {
	obj, ok := r.Value.(map[string]interface{})

	return obj, ok
}

// DecodeResponse applies the response contract to a raw transport body: an
// empty body is ErrEmptyResponse, a body that is not JSON is a *ParseError
// matching ErrInvalidJSON and an object carrying a non-null "error" field is an *APIError.
func DecodeResponse(body []byte) (*Response, error) {
	if len(body) == 0 {
		return nil, ErrEmptyResponse
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value interface{}

	err := decoder.Decode(&value)
	if err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Body: body, Err: errTrailingData}
	}

	if obj, ok := value.(map[string]interface{}); ok {
		if apiErr, found := obj["error"]; found && apiErr != nil {
			return nil, &APIError{Value: apiErr}
		}
	}

	return &Response{Body: body, Value: value}, nil
}
