package culture

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Transport performs a single GET against an absolute URL and returns the
// response body.
type Transport interface {
	DoRequest(ctx context.Context, url string) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, url string) ([]byte, error)

// DoRequest implements Transport.
func (f TransportFunc) DoRequest(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// ResourceClient selects a resource and performs the round-trip in one call.
// A nil query means no filters.
type ResourceClient interface {
	Events(ctx context.Context, query *Query) (*Response, error)
	Event(ctx context.Context, id int, query *Query) (*Response, error)
	Articles(ctx context.Context, query *Query) (*Response, error)
	Categories(ctx context.Context, query *Query) (*Response, error)
	Tags(ctx context.Context, query *Query) (*Response, error)
	Locales(ctx context.Context, query *Query) (*Response, error)
	Organizations(ctx context.Context, query *Query) (*Response, error)
	Places(ctx context.Context, query *Query) (*Response, error)
	Place(ctx context.Context, id int, query *Query) (*Response, error)
}

// Client is the main interface for the all.culture.ru API.
type Client interface {
	ResourceClient

	// Execute dispatches a frozen request and decodes the reply.
	Execute(ctx context.Context, request *Request) (*Response, error)

	// URL returns the absolute URL a request would be sent to.
	URL(request *Request) (string, error)

	// ImageURL addresses a stored image, optionally resized.
	ImageURL(name string, width, height int) string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Zero values fall back to the defaults: the public 2.2 API root, the public
// uploads root, a 3 second connect timeout, no overall timeout and no retries.
// Per-request deadlines should be set on the context passed to each call.
type Config struct {
	// BaseURL: versioned API root every resource stub is appended to.
	BaseURL string
	// UploadsURL: root for ImageURL.
	UploadsURL string
	// ConnectTimeout: bound on TCP connection setup.
	ConnectTimeout time.Duration
	// HTTPTimeout: optional bound on the whole exchange.
	HTTPTimeout time.Duration
	// RetryMax: retries for 5xx and connection errors. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Metrics: optional registerer for request counters and latency.
	Metrics prometheus.Registerer
}
