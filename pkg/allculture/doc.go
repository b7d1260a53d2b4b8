// Package allculture provides the primary entry point for constructing an
// all.culture.ru API client that implements the culture.Client interface.
//
// It wires configuration and the HTTP transport underneath the query builder
// and request types defined in the culture package. Most applications import
// allculture to build a client, then describe calls with culture.Query.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/allculture/pkg/allculture"
//	  "github.com/fivetwenty-io/allculture/pkg/culture"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := allculture.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  query := culture.NewQuery().
//	    SetLocales(1).
//	    SetStart("2024-05-01").
//	    SetLimit(10, 0).
//	    AddSortField("start", false)
//
//	  resp, err := cli.Events(ctx, query)
//	  if err != nil { log.Fatal(err) }
//
//	  var page struct {
//	    Total  int                      `json:"total"`
//	    Events []map[string]interface{} `json:"events"`
//	  }
//	  _ = resp.Decode(&page)
//	}
//
// Configuration
//
//   - BaseURL and UploadsURL default to the public 2.2 API and uploads roots.
//     A missing scheme becomes https and a trailing slash is added.
//   - ConnectTimeout defaults to three seconds. HTTPTimeout is unset, so
//     callers bound whole calls with context deadlines.
//   - RetryMax is zero, meaning a single attempt per call.
//
// Errors
//
// Validation problems are reported before anything is sent and satisfy
// culture.IsValidationError. An "error" field in an otherwise valid reply is
// returned as *culture.APIError. Connection failures and 5xx statuses wrap
// culture.ErrTransport.
//
// Custom transports
//
// NewWithTransport accepts any culture.Transport, which is how tests and
// callers with their own HTTP stack plug in:
//
//	stub := culture.TransportFunc(func(ctx context.Context, url string) ([]byte, error) {
//	  return []byte(`{"total":0}`), nil
//	})
//	cli, _ := allculture.NewWithTransport(stub, nil)
package allculture
