package jiracloud

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is the error state of an Envelope. Remote failures carry the HTTP
// status and Jira's structured error body when it parsed; transport failures
// (no response at all) carry StatusCode 0 and the underlying cause.
type APIError struct {
	StatusCode int

	// ErrorMessages and Errors mirror Jira's standard error body shape.
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`

	// RawBody preserves the response text when it was not a valid Jira
	// error document.
	RawBody string `json:"-"`

	// Cause is the transport-level error, if any.
	Cause error `json:"-"`
}

func (e *APIError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("jira: request failed: %v", e.Cause)
	case len(e.ErrorMessages) > 0:
		return fmt.Sprintf("jira: %d: %s", e.StatusCode, strings.Join(e.ErrorMessages, "; "))
	case len(e.Errors) > 0:
		parts := make([]string, 0, len(e.Errors))
		for field, msg := range e.Errors {
			parts = append(parts, field+": "+msg)
		}
		return fmt.Sprintf("jira: %d: %s", e.StatusCode, strings.Join(parts, "; "))
	case e.RawBody != "":
		return fmt.Sprintf("jira: %d: %s", e.StatusCode, e.RawBody)
	default:
		return fmt.Sprintf("jira: %d", e.StatusCode)
	}
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// transportError wraps a failure that produced no response.
func transportError(err error) *APIError {
	return &APIError{Cause: err}
}

// remoteError builds the error state for a non-2xx response. A body that is
// not the standard Jira error document degrades to raw text rather than
// being discarded.
func remoteError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if len(body) == 0 {
		return apiErr
	}
	if err := json.Unmarshal(body, apiErr); err != nil || (len(apiErr.ErrorMessages) == 0 && len(apiErr.Errors) == 0) {
		apiErr.ErrorMessages = nil
		apiErr.Errors = nil
		apiErr.RawBody = string(body)
	}
	return apiErr
}
