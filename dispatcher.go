// dispatcher.go
// -------------
// The dispatcher is the one piece of machinery every service method funnels
// through. It resolves the Descriptor into a NormalizedRequest, hands it to
// the client's Transport exactly once, and folds whatever comes back into an
// Envelope. There are no retries, no backoff, no batching, and no caching
// here: one Descriptor in, one transport call, one Envelope out.
package jiracloud

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Dispatch performs one request/response cycle for the given Descriptor.
//
// The returned error is non-nil only for caller-contract violations, such as
// a path placeholder with no value. Transport failures and remote 4xx/5xx
// responses come back as an error-state Envelope with a nil error, so
// callers branch on the envelope rather than distinguishing failure shapes
// themselves. Cancellation is a pass-through: ctx reaches the single
// underlying transport call and nothing else holds resources.
func (c *Client) Dispatch(ctx context.Context, d *Descriptor) (*Envelope, error) {
	endpoint, err := d.compile()
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(d.Headers)+2)
	headers["Accept"] = "application/json"
	if len(d.Body) > 0 {
		ct := d.ContentType
		if ct == "" {
			ct = "application/json"
		}
		headers["Content-Type"] = ct
	}
	// Per-call overlay wins on conflict.
	for k, v := range d.Headers {
		headers[k] = v
	}

	req := &NormalizedRequest{
		Method:   d.Method,
		Endpoint: endpoint,
		Headers:  headers,
		Body:     d.Body,
	}

	start := time.Now()
	resp, err := c.transport.Execute(ctx, req)
	if err != nil {
		c.logger.Debug("transport failure",
			zap.String("method", d.Method),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return &Envelope{Err: transportError(err)}, nil
	}

	env := &Envelope{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		RateLimit:  parseRateLimitInfo(resp.Headers),
	}
	if resp.StatusCode >= 400 {
		env.Err = remoteError(resp.StatusCode, resp.Data)
	} else if !d.NoContent {
		env.Body = resp.Data
	}

	c.logger.Debug("dispatched",
		zap.String("method", d.Method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return env, nil
}

// do dispatches and, on success, decodes the response body into out when out
// is non-nil. It returns the envelope alongside so callers keep access to
// status, headers, and rate-limit info.
func (c *Client) do(ctx context.Context, d *Descriptor, out interface{}) (*Envelope, error) {
	env, err := c.Dispatch(ctx, d)
	if err != nil {
		return nil, err
	}
	if env.Err != nil {
		return env, env.Err
	}
	if out != nil {
		if err := env.DecodeJSON(out); err != nil {
			return env, err
		}
	}
	return env, nil
}
