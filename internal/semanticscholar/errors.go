// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semanticscholar

import "fmt"

// APIError reports a non-success HTTP status from the Graph API. Every
// non-200 status is reported the same way; in particular 429 carries no
// special handling, the inter-request pause is the only throttle.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("semantic scholar: HTTP %d from %s", e.StatusCode, e.URL)
}

// DecodeError reports a response body that could not be parsed as the
// expected JSON shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("semantic scholar: decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
