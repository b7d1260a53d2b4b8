package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/internal/http"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// Client implements the culture.Client interface. It holds no per-request
// state and is safe for concurrent use if its Transport is.
type Client struct {
	transport  culture.Transport
	baseURL    string
	uploadsURL string
}

// New creates a client that sends every request through transport.
func New(transport culture.Transport, config *culture.Config) (*Client, error) {
	if transport == nil {
		return nil, culture.ErrTransportRequired
	}

	if fn, ok := transport.(culture.TransportFunc); ok && fn == nil {
		return nil, culture.ErrTransportRequired
	}

	if config == nil {
		config = &culture.Config{}
	}

	client := &Client{
		transport:  transport,
		baseURL:    config.BaseURL,
		uploadsURL: config.UploadsURL,
	}

	if client.baseURL == "" {
		client.baseURL = constants.DefaultBaseURL
	}

	if client.uploadsURL == "" {
		client.uploadsURL = constants.DefaultUploadsURL
	}

	return client, nil
}

// NewWithHTTP creates a client backed by the retrying HTTP transport built
// from config.
func NewWithHTTP(config *culture.Config) (*Client, error) {
	if config == nil {
		config = &culture.Config{}
	}

	return New(http.NewClient(createHTTPClientOptions(config)...), config)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *culture.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.ConnectTimeout > 0 {
		httpOpts = append(httpOpts, http.WithConnectTimeout(config.ConnectTimeout))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Metrics != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.Metrics))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL implements culture.Client.URL.
func (c *Client) URL(request *culture.Request) (string, error) {
	url, err := request.URL(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("building request URL: %w", err)
	}

	return url, nil
}

// Execute implements culture.Client.Execute.
func (c *Client) Execute(ctx context.Context, request *culture.Request) (*culture.Response, error) {
	url, err := c.URL(request)
	if err != nil {
		return nil, err
	}

	body, err := c.transport.DoRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", culture.ErrTransport, err)
	}

	resp, err := culture.DecodeResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", request.Resource(), err)
	}

	return resp, nil
}

// ImageURL implements culture.Client.ImageURL.
func (c *Client) ImageURL(name string, width, height int) string {
	return culture.ImageURL(c.uploadsURL, name, width, height)
}

// fetch freezes query for resource and performs the round-trip.
func (c *Client) fetch(ctx context.Context, resource culture.Resource, id int, query *culture.Query) (*culture.Response, error) {
	if query == nil {
		query = culture.NewQuery()
	}

	request, err := query.Request(resource, id)
	if err != nil {
		return nil, fmt.Errorf("preparing %s request: %w", resource, err)
	}

	return c.Execute(ctx, request)
}

// fetchItem is fetch for single-item stubs, which need a positive id.
func (c *Client) fetchItem(ctx context.Context, resource culture.Resource, id int, query *culture.Query) (*culture.Response, error) {
	if id <= 0 {
		return nil, fmt.Errorf("preparing %s request: %w: %d", resource, culture.ErrInvalidID, id)
	}

	return c.fetch(ctx, resource, id, query)
}
