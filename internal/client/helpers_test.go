package client_test

import (
	"context"
	"errors"
	"sync"

	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// Test static errors.
var (
	ErrTestConnectionRefused = errors.New("connection refused")
)

// recordingTransport answers every call with a canned body and remembers the
// URLs it was asked for.
type recordingTransport struct {
	mu   sync.Mutex
	urls []string
	body []byte
	err  error
}

func newRecordingTransport(body string) *recordingTransport {
	return &recordingTransport{body: []byte(body)}
}

func (r *recordingTransport) DoRequest(_ context.Context, url string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.urls = append(r.urls, url)

	return r.body, r.err
}

func (r *recordingTransport) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.urls...)
}

var _ culture.Transport = (*recordingTransport)(nil)
