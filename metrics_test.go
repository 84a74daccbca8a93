package jiracloud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jiracloud "github.com/perigee-io/jira-cloud-sdk"
	"github.com/perigee-io/jira-cloud-sdk/mock"
)

func TestInstrumentedTransportCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	inner := mock.NewTransport(
		mock.Outcome{Response: &jiracloud.NormalizedResponse{StatusCode: 200, Data: []byte(`{}`)}},
		mock.Outcome{Response: &jiracloud.NormalizedResponse{StatusCode: 404, Data: []byte(`{}`)}},
		mock.Outcome{Err: errors.New("boom")},
	)
	transport, err := jiracloud.NewInstrumentedTransport(inner, reg)
	require.NoError(t, err)

	client := newTestClient(t, transport)
	for i := 0; i < 3; i++ {
		_, dispatchErr := client.Dispatch(context.Background(), &jiracloud.Descriptor{
			Method:       "GET",
			PathTemplate: "/rest/api/3/myself",
		})
		require.NoError(t, dispatchErr)
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(transport.CounterFor("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(transport.CounterFor("GET", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(transport.CounterFor("GET", "error")))
}

func TestInstrumentedTransportDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	inner := mock.NewTransport()
	_, err := jiracloud.NewInstrumentedTransport(inner, reg)
	require.NoError(t, err)
	_, err = jiracloud.NewInstrumentedTransport(inner, reg)
	assert.Error(t, err)
}
