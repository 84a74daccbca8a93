package adapters

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	jiracloud "github.com/perigee-io/jira-cloud-sdk"
)

func TestDirectTransportBasicAuth(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("X-RateLimit-Remaining", "42")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"key":"EX"}`))
	}))
	defer server.Close()

	cfg := &jiracloud.Config{BaseURL: server.URL, Email: "dev@example.com", APIToken: "secrettoken"}
	transport := NewDirectTransport(cfg)

	resp, err := transport.Execute(context.Background(), &jiracloud.NormalizedRequest{
		Method:   http.MethodGet,
		Endpoint: "/rest/api/3/project/EX?expand=lead",
		Headers:  map[string]string{"Accept": "application/json"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/rest/api/3/project/EX", got.URL.Path)
	assert.Equal(t, "lead", got.URL.Query().Get("expand"))

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("dev@example.com:secrettoken"))
	assert.Equal(t, expected, got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("X-Client-Request-Id"))

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte(`{"key":"EX"}`), resp.Data)
	assert.Equal(t, "42", resp.Headers["x-ratelimit-remaining"], "response header keys are lower-cased")
}

func TestDirectTransportBearerAuth(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := &jiracloud.Config{BaseURL: server.URL, BearerToken: "pat-token"}
	_, err := NewDirectTransport(cfg).Execute(context.Background(), &jiracloud.NormalizedRequest{
		Method:   http.MethodGet,
		Endpoint: "/rest/api/3/myself",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer pat-token", auth)
}

func TestDirectTransportTokenSource(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "oauth-token", TokenType: "Bearer"})
	cfg := &jiracloud.Config{BaseURL: server.URL, TokenSource: ts}
	_, err := NewDirectTransport(cfg).Execute(context.Background(), &jiracloud.NormalizedRequest{
		Method:   http.MethodGet,
		Endpoint: "/rest/api/3/myself",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer oauth-token", auth)
}

func TestDirectTransportOverlayAuthorizationWins(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := &jiracloud.Config{BaseURL: server.URL, Email: "dev@example.com", APIToken: "secrettoken"}
	_, err := NewDirectTransport(cfg).Execute(context.Background(), &jiracloud.NormalizedRequest{
		Method:   http.MethodGet,
		Endpoint: "/rest/atlassian-connect/1/addons/com.example/properties",
		Headers:  map[string]string{"Authorization": "JWT signed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "JWT signed", auth, "per-call Authorization must not be replaced by config credentials")
}

func TestDirectTransportKeepsCallerRequestID(t *testing.T) {
	var id string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = r.Header.Get("X-Client-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := &jiracloud.Config{BaseURL: server.URL}
	_, err := NewDirectTransport(cfg).Execute(context.Background(), &jiracloud.NormalizedRequest{
		Method:   http.MethodGet,
		Endpoint: "/rest/api/3/myself",
		Headers:  map[string]string{"X-Client-Request-Id": "fixed-id"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestDirectTransportNetworkFailure(t *testing.T) {
	cfg := &jiracloud.Config{BaseURL: "http://127.0.0.1:1"}
	_, err := NewDirectTransport(cfg).Execute(context.Background(), &jiracloud.NormalizedRequest{
		Method:   http.MethodGet,
		Endpoint: "/rest/api/3/myself",
	})
	require.Error(t, err)
}
