// rate_limit.go
// --------------
// Jira attaches rate-limit headers to most responses. The dispatcher parses
// them into a RateLimitInfo on every envelope so callers can pace themselves,
// but the SDK itself never waits, retries, or backs off: each dispatch is one
// best-effort attempt and rate limiting stays the caller's policy decision.
package jiracloud

import (
	"strconv"
	"time"

	"github.com/perigee-io/jira-cloud-sdk/internal"
)

// RateLimitInfo is the rate-limit state Jira reported on one response.
// Absent headers leave their field nil.
type RateLimitInfo struct {
	MaxRequests       *int   // X-RateLimit-Limit
	RemainingRequests *int   // X-RateLimit-Remaining
	ResetRequestsAt   *int64 // X-RateLimit-Reset, ms since epoch
	RetryAfterMs      *int64 // Retry-After, ms of delay; present on 429s
}

// Exhausted reports whether the window is spent and the reset time has not
// passed yet.
func (r *RateLimitInfo) Exhausted() bool {
	if r.RemainingRequests == nil || *r.RemainingRequests > 0 {
		return false
	}
	return r.ResetRequestsAt != nil && internal.IsInFuture(*r.ResetRequestsAt)
}

// parseRateLimitInfo extracts rate-limit headers from a response. Header keys
// are expected lower-cased, which is what transports produce. Returns nil
// when the response carried no rate-limit headers at all.
func parseRateLimitInfo(h map[string]string) *RateLimitInfo {
	parseInt := func(key string) *int {
		if val, ok := h[key]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
		}
		return nil
	}

	info := &RateLimitInfo{
		MaxRequests:       parseInt("x-ratelimit-limit"),
		RemainingRequests: parseInt("x-ratelimit-remaining"),
	}

	if val, ok := h["x-ratelimit-reset"]; ok {
		if ms := internal.ParseResetTime(val); ms > 0 {
			info.ResetRequestsAt = &ms
		}
	}

	if val, ok := h["retry-after"]; ok {
		if ms := internal.ParseRetryAfter(val, time.Now()); ms > 0 {
			info.RetryAfterMs = &ms
			// A Retry-After further out than the advertised reset wins.
			future := time.Now().UnixMilli() + ms
			if info.ResetRequestsAt == nil || future > *info.ResetRequestsAt {
				info.ResetRequestsAt = &future
			}
		}
	}

	if info.MaxRequests == nil && info.RemainingRequests == nil && info.ResetRequestsAt == nil && info.RetryAfterMs == nil {
		return nil
	}
	return info
}
