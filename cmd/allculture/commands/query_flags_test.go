package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

func parseQuery(t *testing.T, args ...string) (*culture.Query, error) {
	t.Helper()

	flags := &queryFlags{}
	cmd := &cobra.Command{Use: "test"}
	addQueryFlags(cmd, flags)

	require.NoError(t, cmd.ParseFlags(args))

	return flags.buildQuery(cmd)
}

func TestQueryFlags_BuildQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no flags",
			args: nil,
			want: "",
		},
		{
			name: "flags apply in setter order",
			args: []string{"--places", "3", "--ids", "1,2", "--fields", "name,_id"},
			want: "ids=1,2&places=3&fields=name,_id",
		},
		{
			name: "offset alone sets limit to zero",
			args: []string{"--offset", "40"},
			want: "limit=0&offset=40",
		},
		{
			name: "sort fields appended last",
			args: []string{"--sort=-start,name", "--locales", "9"},
			want: "locales=9&sort=-start,name",
		},
		{
			name: "enumerations",
			args: []string{"--status", "new", "--type", "events", "--format", "csv"},
			want: "status=new&type=events&format=csv",
		},
		{
			name: "dates in UTC",
			args: []string{"--start", "2024-01-02 03:04:05", "--created-to", "2024-01-02"},
			want: "start=1704164645000&createDateEnd=1704153600000",
		},
		{
			name: "dates in a named zone",
			args: []string{"--timezone", "Europe/Moscow", "--end", "2024-01-02 03:00:00"},
			want: "end=1704153600000",
		},
		{
			name: "name query is form encoded",
			args: []string{"--name", "опера и балет"},
			want: "nameQuery=%D0%BE%D0%BF%D0%B5%D1%80%D0%B0+%D0%B8+%D0%B1%D0%B0%D0%BB%D0%B5%D1%82",
		},
		{
			name: "integration filters",
			args: []string{"--with-integration", "pro", "--in-source-id", "x-1", "--only-integrated"},
			want: "withIntegration=pro&inSourceId=x-1&onlyIntegrated=true",
		},
		{
			name: "custom params",
			args: []string{"--param", "foo=bar", "--param", "empty="},
			want: "foo=bar&empty=",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, err := parseQuery(t, tt.args...)
			require.NoError(t, err)

			request, err := query.Request(culture.ResourceEvents, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, request.RawQuery())
		})
	}
}

func TestQueryFlags_Errors(t *testing.T) {
	t.Parallel()
	t.Run("param without equals", func(t *testing.T) {
		t.Parallel()

		_, err := parseQuery(t, "--param", "nope")
		require.ErrorIs(t, err, constants.ErrInvalidConfigValue)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Parallel()

		_, err := parseQuery(t, "--timezone", "Mars/Olympus")
		require.ErrorIs(t, err, constants.ErrInvalidConfigValue)
	})

	t.Run("unparseable date surfaces on request", func(t *testing.T) {
		t.Parallel()

		query, err := parseQuery(t, "--start", "not a date")
		require.NoError(t, err)

		_, err = query.Request(culture.ResourceEvents, 0)
		require.ErrorIs(t, err, culture.ErrInvalidDate)
	})
}
