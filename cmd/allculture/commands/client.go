package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/internal/logging"
	"github.com/fivetwenty-io/allculture/pkg/allculture"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// registry collects request metrics for --metrics. It lives for the process.
var registry = prometheus.NewRegistry()

// buildClientConfig maps the effective CLI settings onto a client config.
func buildClientConfig(logOutput io.Writer) *culture.Config {
	verbose := viper.GetBool("verbose")

	config := &culture.Config{
		BaseURL:        viper.GetString("api"),
		UploadsURL:     viper.GetString("uploads_url"),
		ConnectTimeout: viper.GetDuration("connect_timeout"),
		HTTPTimeout:    viper.GetDuration("timeout"),
		RetryMax:       viper.GetInt("retry_max"),
		Debug:          verbose,
		Logger:         logging.New(logOutput, verbose),
	}

	if viper.GetBool("metrics") {
		config.Metrics = registry
	}

	return config
}

// CreateClient creates an API client from flags, environment and config file.
func CreateClient() (culture.Client, error) {
	client, err := allculture.New(buildClientConfig(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// commandContext bounds a command by the configured timeout, or the CLI
// default when none is set.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = constants.ShortHTTPTimeout
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithTimeout(ctx, timeout)
}

// WriteMetrics dumps the collected request metrics in Prometheus text format.
func WriteMetrics(w io.Writer) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, family := range families {
		_, err := expfmt.MetricFamilyToText(w, family)
		if err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return nil
}
