// Package allculture provides the main entry point for creating all.culture.ru API clients
package allculture

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/allculture/internal/client"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// New creates a new API client backed by the retrying HTTP transport.
func New(config *culture.Config) (culture.Client, error) {
	if config == nil {
		return nil, culture.ErrConfigRequired
	}

	normalizeConfig(config)

	apiClient, err := client.NewWithHTTP(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewDefault creates a client for the public API with default settings.
func NewDefault() (culture.Client, error) {
	return New(&culture.Config{})
}

// NewWithEndpoint creates a client for the API root at baseURL.
func NewWithEndpoint(baseURL string) (culture.Client, error) {
	return New(&culture.Config{BaseURL: baseURL})
}

// NewWithTransport creates a client that sends every request through
// transport instead of the built-in HTTP client. A nil transport, including a
// nil TransportFunc, is rejected with culture.ErrTransportRequired.
func NewWithTransport(transport culture.Transport, config *culture.Config) (culture.Client, error) {
	if config == nil {
		config = &culture.Config{}
	}

	normalizeConfig(config)

	apiClient, err := client.New(transport, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeConfig fills in a scheme and trailing slash on both roots.
func normalizeConfig(config *culture.Config) {
	config.BaseURL = NormalizeURL(config.BaseURL)
	config.UploadsURL = NormalizeURL(config.UploadsURL)
}

// NormalizeURL returns root with an https scheme when it has none and a
// trailing slash. A blank root stays empty so the default applies.
func NormalizeURL(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		return ""
	}

	if !strings.HasPrefix(root, "http://") && !strings.HasPrefix(root, "https://") {
		root = "https://" + root
	}

	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	return root
}
