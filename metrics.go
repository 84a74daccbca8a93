package jiracloud

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedTransport wraps another Transport with prometheus counters and
// a latency histogram. Opt-in: wrap the transport before handing it to
// NewClient. Labels are method and status code; transport failures count
// under status "error".
type InstrumentedTransport struct {
	next Transport

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumentedTransport registers the collectors on reg and returns the
// wrapped transport.
func NewInstrumentedTransport(next Transport, reg prometheus.Registerer) (*InstrumentedTransport, error) {
	t := &InstrumentedTransport{
		next: next,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jiracloud",
			Name:      "requests_total",
			Help:      "Dispatched requests by method and status.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jiracloud",
			Name:      "request_duration_seconds",
			Help:      "Transport round-trip latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	for _, c := range []prometheus.Collector{t.requests, t.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// CounterFor returns the request counter for one method/status label pair.
func (t *InstrumentedTransport) CounterFor(method, status string) prometheus.Counter {
	return t.requests.WithLabelValues(method, status)
}

func (t *InstrumentedTransport) Execute(ctx context.Context, req *NormalizedRequest) (*NormalizedResponse, error) {
	start := time.Now()
	resp, err := t.next.Execute(ctx, req)
	t.duration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.requests.WithLabelValues(req.Method, status).Inc()
	return resp, err
}
