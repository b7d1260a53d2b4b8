package culture_test

import (
	"testing"

	"github.com/fivetwenty-io/allculture/pkg/culture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   *culture.Query
		wantErr string
		field   string
	}{
		{
			name:  "nothing to check",
			query: culture.NewQuery().SetIDs(1),
		},
		{
			name: "all valid",
			query: culture.NewQuery().
				SetType(culture.ResourcePlaces).
				SetFormat(culture.FormatCSV).
				SetStatus(culture.StatusRejected),
		},
		{
			name:    "bogus type",
			query:   culture.NewQuery().SetType("bogus"),
			wantErr: "Unknown category bogus. Must be one from list: events,articles,categories,tags,locales,organizations,places",
			field:   "type",
		},
		{
			name:    "bogus format",
			query:   culture.NewQuery().SetFormat("xml"),
			wantErr: "Unknown format xml. Must be one from list: json,csv",
			field:   "format",
		},
		{
			name:    "bogus status",
			query:   culture.NewQuery().SetStatus("deleted"),
			wantErr: "Wrong status deleted. Here allowed one from list - accepted,new,rejected",
			field:   "status",
		},
		{
			name:    "custom param is checked too",
			query:   culture.NewQuery().AddCustomParam("status", "pending"),
			wantErr: "Wrong status pending",
			field:   "status",
		},
		{
			name: "type reported before format and status",
			query: culture.NewQuery().
				SetStatus("deleted").
				SetFormat("xml").
				SetType("bogus"),
			wantErr: "Unknown category bogus",
			field:   "type",
		},
		{
			name: "format reported before status",
			query: culture.NewQuery().
				SetStatus("deleted").
				SetFormat("xml"),
			wantErr: "Unknown format xml",
			field:   "format",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.query.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, culture.IsValidationError(err))

			var validationErr *culture.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)

			_, err = tt.query.Request(culture.ResourceEvents, 0)
			require.ErrorIs(t, err, culture.ErrValidation)
		})
	}
}

func TestQuery_ValidateDoesNotMutate(t *testing.T) {
	t.Parallel()

	q := culture.NewQuery().SetType("bogus").SetIDs(1)
	require.Error(t, q.Validate())

	values, ok := q.Get("type")
	require.True(t, ok)
	assert.Equal(t, []string{"bogus"}, values)
}

func TestAllowedSets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"accepted", "new", "rejected"}, culture.AllowedStatuses())
	assert.Equal(t, []string{"json", "csv"}, culture.AllowedFormats())
	assert.Equal(t,
		[]string{"events", "articles", "categories", "tags", "locales", "organizations", "places"},
		culture.AllowedTypes())

	statuses := culture.AllowedStatuses()
	statuses[0] = "changed"
	assert.Equal(t, "accepted", culture.AllowedStatuses()[0])
}

func TestParseResource(t *testing.T) {
	t.Parallel()

	resource, err := culture.ParseResource("places")
	require.NoError(t, err)
	assert.Equal(t, culture.ResourcePlaces, resource)

	_, err = culture.ParseResource("theatres")
	require.ErrorIs(t, err, culture.ErrUnknownResource)
}
