package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

func TestURLCommand(t *testing.T) {
	resetViper(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"collection", []string{"events"}, constants.DefaultBaseURL + "events\n"},
		{"single item", []string{"places", "12"}, constants.DefaultBaseURL + "places/12\n"},
		{
			"with filters",
			[]string{"organizations", "--ids", "4,5", "--sort=name", "--limit", "2"},
			constants.DefaultBaseURL + "organizations?ids=4,5&limit=2&offset=0&sort=name\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewURLCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestURLCommand_CustomAPI(t *testing.T) {
	resetViper(t)
	viper.Set("api", "http://localhost:8080/api")

	out, err := execute(t, NewURLCommand(), "tags")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/tags\n", out)
}

func TestURLCommand_APIWithoutScheme(t *testing.T) {
	resetViper(t)
	viper.Set("api", "all.culture.ru/api/2.2")

	out, err := execute(t, NewURLCommand(), "places", "7")
	require.NoError(t, err)
	assert.Equal(t, "https://all.culture.ru/api/2.2/places/7\n", out)
}

func TestURLCommand_Errors(t *testing.T) {
	resetViper(t)

	_, err := execute(t, NewURLCommand(), "concerts")
	require.ErrorIs(t, err, culture.ErrUnknownResource)

	_, err = execute(t, NewURLCommand(), "events", "0")
	require.ErrorIs(t, err, constants.ErrInvalidID)

	_, err = execute(t, NewURLCommand(), "events", "--status", "draft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong status draft. Here allowed one from list - accepted,new,rejected")
}

func TestImageURLCommand(t *testing.T) {
	resetViper(t)

	out, err := execute(t, NewImageURLCommand(), "2019/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultUploadsURL+"2019/photo.jpg\n", out)

	out, err = execute(t, NewImageURLCommand(), "photo.jpg", "--width", "300", "--height", "200")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultUploadsURL+"photo_w300_h200.jpg\n", out)

	_, err = execute(t, NewImageURLCommand(), "photo.jpg", "--width", "300")
	require.ErrorIs(t, err, constants.ErrDimensionsNeeded)

	viper.Set("uploads_url", "cdn.example.com/up")

	out, err = execute(t, NewImageURLCommand(), "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/up/photo.jpg\n", out)
}

func TestDateCommand(t *testing.T) {
	cmd := NewDateCommand()
	assert.Equal(t, "date", cmd.Use)
	assert.NotNil(t, findSubcommand(cmd, "to-millis"))
	assert.NotNil(t, findSubcommand(cmd, "format"))

	out, err := execute(t, NewDateCommand(), "to-millis", "2024-01-02 03:04:05")
	require.NoError(t, err)
	assert.Equal(t, "1704164645000\n", out)

	out, err = execute(t, NewDateCommand(), "to-millis", "2024-01-02 03:04:05", "--timezone", "Europe/Moscow")
	require.NoError(t, err)
	assert.Equal(t, "1704153845000\n", out)

	out, err = execute(t, NewDateCommand(), "format", "1704164645000")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 03:04:05\n", out)

	out, err = execute(t, NewDateCommand(), "format", "1704164645000", "-p", "%d.%m.%Y")
	require.NoError(t, err)
	assert.Equal(t, "02.01.2024\n", out)

	_, err = execute(t, NewDateCommand(), "format", "soon")
	require.ErrorIs(t, err, constants.ErrInvalidMillis)

	_, err = execute(t, NewDateCommand(), "to-millis", "someday")
	require.Error(t, err)
}
