// internal/time_parser.go
// ------------------------
// Helpers for parsing the time formats Jira uses in rate-limit response
// headers. X-RateLimit-Reset arrives as either an ISO-8601 timestamp or a
// UNIX epoch in seconds depending on the serving tier; Retry-After is a
// delta in whole seconds or an HTTP-date.
//
// Functions:
// - ParseResetTime: convert either reset form into milliseconds since epoch.
// - ParseRetryAfter: convert a Retry-After value into milliseconds of delay.
// - UnixToMs: convert a UNIX timestamp in seconds to milliseconds.
// - IsInFuture: check if a given timestamp (ms) is in the future.
package internal

import (
	"strconv"
	"strings"
	"time"
)

// ParseResetTime converts an X-RateLimit-Reset value into milliseconds since
// epoch. Returns 0 if the value is in neither accepted form.
func ParseResetTime(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return UnixToMs(secs)
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z", "2006-01-02T15:04:05Z0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}

	return 0
}

// ParseRetryAfter converts a Retry-After value (delta-seconds or HTTP-date)
// into a delay in milliseconds. Returns 0 if unparseable or in the past.
func ParseRetryAfter(s string, now time.Time) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs < 0 {
			return 0
		}
		return secs * 1000
	}

	if t, err := time.Parse(time.RFC1123, s); err == nil {
		if delta := t.Sub(now); delta > 0 {
			return delta.Milliseconds()
		}
	}

	return 0
}

// UnixToMs converts a UNIX timestamp in seconds to milliseconds.
func UnixToMs(timestamp int64) int64 {
	return timestamp * 1000
}

// IsInFuture checks if a timestamp (in ms) is in the future relative to the current time.
func IsInFuture(ms int64) bool {
	return ms > time.Now().UnixMilli()
}
