// envelope.go
// -----------
// The Envelope is the uniform result of every dispatch: status, response
// headers, the raw body (when the endpoint declares one), parsed rate-limit
// info, and an error state. Callers branch on Ok() / Err instead of catching
// anything; expected failures (remote 4xx/5xx, transport errors) never
// surface as panics.
package jiracloud

import (
	"encoding/json"
	"fmt"
)

// Envelope is the outcome of one dispatched request.
type Envelope struct {
	StatusCode int
	Headers    map[string]string

	// Body is the raw response payload. Empty when the Descriptor declared
	// NoContent or when the call ended in the error state (the error body
	// lives on Err instead).
	Body []byte

	// RateLimit is parsed from the response headers when Jira sent any;
	// informational only, the SDK never waits or retries on it.
	RateLimit *RateLimitInfo

	// Err is non-nil when the envelope is in the error state.
	Err *APIError
}

// Ok reports whether the dispatch succeeded.
func (e *Envelope) Ok() bool {
	return e.Err == nil
}

// DecodeJSON unmarshals the response body into out. Decoding a body that is
// not the expected shape returns an error but leaves Body untouched, so the
// raw payload is never lost to a failed decode. Envelopes with no body
// decode to nothing.
func (e *Envelope) DecodeJSON(out interface{}) error {
	if len(e.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Body, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
