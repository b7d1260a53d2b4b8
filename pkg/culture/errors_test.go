package culture_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/allculture/pkg/culture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDial = errors.New("dial tcp: connection refused")

func TestAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{
			name:     "string message",
			value:    "not found",
			expected: "API error: not found",
		},
		{
			name:     "object message",
			value:    map[string]interface{}{"code": json.Number("404")},
			expected: `API error: {"code":404}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := &culture.APIError{Value: tt.value}
			assert.Equal(t, tt.expected, err.Error())
			assert.True(t, culture.IsAPIError(fmt.Errorf("listing events: %w", err)))
		})
	}
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	err := &culture.StatusError{StatusCode: 502}
	assert.Equal(t, "unexpected HTTP status 502", err.Error())

	err = &culture.StatusError{StatusCode: 500, Body: []byte("<html>oops</html>")}
	assert.Equal(t, "unexpected HTTP status 500: <html>oops</html>", err.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	transportErr := fmt.Errorf("%w: %w", culture.ErrTransport, errDial)
	assert.True(t, culture.IsTransportError(transportErr))
	assert.Contains(t, transportErr.Error(), "connection refused")
	assert.False(t, culture.IsAPIError(transportErr))
	assert.False(t, culture.IsValidationError(transportErr))

	validationErr := &culture.ValidationError{Field: "type", Value: "x", Allowed: culture.AllowedTypes()}
	assert.True(t, culture.IsValidationError(validationErr))
	assert.False(t, culture.IsTransportError(validationErr))
}

func TestValidationError_UnknownField(t *testing.T) {
	t.Parallel()

	err := &culture.ValidationError{Field: "kind", Value: "x", Allowed: []string{"a", "b"}}
	assert.Equal(t, `invalid kind "x", must be one of: a,b`, err.Error())
}

func TestDecodeResponse_KeepsUnparsedBody(t *testing.T) {
	t.Parallel()

	body := []byte("_id;name\n1;Эрмитаж\n")

	resp, err := culture.DecodeResponse(body)
	require.Nil(t, resp)
	require.ErrorIs(t, err, culture.ErrInvalidJSON)

	parseErr := &culture.ParseError{}
	require.True(t, errors.As(fmt.Errorf("events: %w", err), &parseErr))
	assert.Equal(t, body, parseErr.Body)
}

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    interface{}
		wantErr error
		apiErr  bool
	}{
		{
			name: "object",
			body: `{"id":1,"name":"x"}`,
			want: map[string]interface{}{"id": json.Number("1"), "name": "x"},
		},
		{
			name: "array",
			body: `[1,2]`,
			want: []interface{}{json.Number("1"), json.Number("2")},
		},
		{
			name: "null error field is not an error",
			body: `{"error":null,"total":0}`,
			want: map[string]interface{}{"error": nil, "total": json.Number("0")},
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: culture.ErrEmptyResponse,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: culture.ErrInvalidJSON,
		},
		{
			name:    "trailing garbage",
			body:    `{"a":1} x`,
			wantErr: culture.ErrInvalidJSON,
		},
		{
			name:   "api error",
			body:   `{"error":"not found"}`,
			apiErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := culture.DecodeResponse([]byte(tt.body))

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			case tt.apiErr:
				require.Error(t, err)
				assert.True(t, culture.IsAPIError(err))
				assert.Contains(t, err.Error(), "not found")
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, resp.Value)
				assert.Equal(t, []byte(tt.body), resp.Body)
			}
		})
	}
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	resp, err := culture.DecodeResponse([]byte(`{"total":2,"events":[{"_id":10,"name":"Concert"}]}`))
	require.NoError(t, err)

	var typed struct {
		Total  int `json:"total"`
		Events []struct {
			ID   int    `json:"_id"`
			Name string `json:"name"`
		} `json:"events"`
	}

	require.NoError(t, resp.Decode(&typed))
	assert.Equal(t, 2, typed.Total)
	require.Len(t, typed.Events, 1)
	assert.Equal(t, "Concert", typed.Events[0].Name)

	obj, ok := resp.Object()
	require.True(t, ok)
	assert.Equal(t, json.Number("2"), obj["total"])
}
