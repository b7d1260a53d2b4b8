package commands

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/allculture/pkg/allculture"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// resetViper isolates a test from global viper state.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// stubClient points newClient at a canned transport and returns the URLs it
// was asked for.
func stubClient(t *testing.T, body string) func() []string {
	t.Helper()

	var (
		mu   sync.Mutex
		urls []string
	)

	transport := culture.TransportFunc(func(_ context.Context, url string) ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()

		urls = append(urls, url)

		return []byte(body), nil
	})

	previous := newClient
	newClient = func() (culture.Client, error) {
		return allculture.NewWithTransport(transport, nil)
	}

	t.Cleanup(func() { newClient = previous })

	return func() []string {
		mu.Lock()
		defer mu.Unlock()

		return append([]string(nil), urls...)
	}
}

// execute runs cmd with args and returns what it printed.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
