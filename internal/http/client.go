package http

import (
	"context"
	"fmt"
	"io"
	"net"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// Logger is the structured logger used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single outgoing call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
}

// Response is a fully buffered reply.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the HTTP transport for the API. It satisfies culture.Transport.
type Client struct {
	client         *retryablehttp.Client
	logger         Logger
	debug          bool
	userAgent      string
	connectTimeout time.Duration
	timeout        time.Duration
	retryMax       int
	retryWaitMin   time.Duration
	retryWaitMax   time.Duration
	registerer     prometheus.Registerer
	metrics        *metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithConnectTimeout bounds connection setup.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.connectTimeout = timeout
	}
}

// WithTimeout bounds the whole exchange, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig enables retries on connection errors and 5xx responses.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = maxRetries
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithMetrics registers request metrics with registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = registerer
	}
}

// NewClient creates a transport. Without options it makes one attempt per call
// with a three second connect timeout.
func NewClient(opts ...Option) *Client {
	client := &Client{
		userAgent:      constants.DefaultUserAgent,
		connectTimeout: constants.DefaultConnectTimeout,
		retryMax:       constants.DefaultRetryMax,
		retryWaitMin:   constants.DefaultRetryWaitMin,
		retryWaitMax:   constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   client.connectTimeout,
		KeepAlive: constants.DefaultKeepAlive,
	}).DialContext

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &nethttp.Client{
		Transport: transport,
		Timeout:   client.timeout,
	}
	retryClient.RetryMax = client.retryMax
	retryClient.RetryWaitMin = client.retryWaitMin
	retryClient.RetryWaitMax = client.retryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	// Retry attempts are only worth logging when there can be more than one.
	if client.logger != nil && client.retryMax > 0 {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	client.client = retryClient

	if client.registerer != nil {
		client.metrics = newMetrics(client.registerer)
	}

	return client
}

// Do performs a request and buffers the body. Responses with a 5xx status are
// returned together with a *culture.StatusError; every other status is left
// to the caller since the API reports failures inside the body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = nethttp.MethodGet
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    req.URL,
		})
	}

	start := time.Now()

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		c.metrics.observe("error", time.Since(start))

		return nil, fmt.Errorf("%s %s: %w", method, req.URL, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.metrics.observe("error", time.Since(start))

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	elapsed := time.Since(start)
	c.metrics.observe(strconv.Itoa(httpResp.StatusCode), elapsed)

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": resp.StatusCode,
			"bytes":       len(body),
			"duration":    elapsed.String(),
		})
	}

	if resp.StatusCode >= constants.HTTPStatusServerError {
		return resp, &culture.StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return resp, nil
}

// Get performs a GET against an absolute URL.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, URL: rawURL})
}

// DoRequest implements culture.Transport.
func (c *Client) DoRequest(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}
