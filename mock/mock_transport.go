package mock

import (
	"context"
	"sync"

	jiracloud "github.com/perigee-io/jira-cloud-sdk"
)

// Outcome scripts one transport result: either a response or an error,
// never both.
type Outcome struct {
	Response *jiracloud.NormalizedResponse
	Err      error
}

// Transport is a scripted jiracloud.Transport for tests. Outcomes play back
// in order; the last one repeats once the script runs out, so a single
// outcome behaves as a fixed stub. Every request is recorded for later
// inspection.
type Transport struct {
	mu       sync.Mutex
	script   []Outcome
	calls    int
	Requests []*jiracloud.NormalizedRequest
}

// NewTransport builds a scripted transport. With no outcomes it answers
// every request with 200 and an empty JSON object.
func NewTransport(outcomes ...Outcome) *Transport {
	if len(outcomes) == 0 {
		outcomes = []Outcome{{Response: &jiracloud.NormalizedResponse{
			StatusCode: 200,
			Headers:    map[string]string{},
			Data:       []byte(`{}`),
		}}}
	}
	return &Transport{script: outcomes}
}

// RespondWith is shorthand for a fixed status/body stub.
func RespondWith(status int, body []byte) *Transport {
	return NewTransport(Outcome{Response: &jiracloud.NormalizedResponse{
		StatusCode: status,
		Headers:    map[string]string{},
		Data:       body,
	}})
}

func (t *Transport) Execute(ctx context.Context, req *jiracloud.NormalizedRequest) (*jiracloud.NormalizedResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Requests = append(t.Requests, req)
	idx := t.calls
	if idx >= len(t.script) {
		idx = len(t.script) - 1
	}
	t.calls++

	outcome := t.script[idx]
	if outcome.Err != nil {
		return nil, outcome.Err
	}
	return outcome.Response, nil
}

// LastRequest returns the most recent request, or nil.
func (t *Transport) LastRequest() *jiracloud.NormalizedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.Requests) == 0 {
		return nil
	}
	return t.Requests[len(t.Requests)-1]
}
