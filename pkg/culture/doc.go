// Package culture provides types, query building and response handling for
// the all.culture.ru public API.
//
// # Overview
//
// A Query accumulates filters through fluent setters. Selecting a resource
// freezes the query into an immutable Request, which a Client serializes,
// sends through a Transport and decodes. The concrete client lives in the
// allculture package, which wires configuration and the HTTP transport.
//
//	cli, err := allculture.New(&culture.Config{})
//	if err != nil { log.Fatal(err) }
//
//	q := culture.NewQuery().
//	  SetLocales(1, 2).
//	  SetStart("2024-05-01").
//	  SetLimit(20, 0).
//	  AddSortField("start", true)
//
//	events, err := cli.Events(ctx, q)
//
// # Query strings
//
// Parameters serialize as key=value pairs joined by "&"; list values are
// joined by ",". Keys keep the position of their first write. Sort fields are
// appended as "sort" at serialization time without touching the Query. Values
// are not escaped, except for the name query.
//
// # Errors
//
// Every resource call either returns a decoded Response or exactly one error:
// ErrResourceNotSelected, *ValidationError, a wrapped ErrTransport,
// ErrEmptyResponse, ErrInvalidJSON or *APIError. Helpers such as
// IsValidationError, IsTransportError and IsAPIError make branching easy.
package culture
