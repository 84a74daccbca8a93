package jiracloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteErrorParsesJiraBody(t *testing.T) {
	apiErr := remoteError(400, []byte(`{"errorMessages":["bad key"],"errors":{"projectKey":"invalid"}}`))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, []string{"bad key"}, apiErr.ErrorMessages)
	assert.Equal(t, "invalid", apiErr.Errors["projectKey"])
	assert.Empty(t, apiErr.RawBody)
}

func TestRemoteErrorKeepsRawText(t *testing.T) {
	apiErr := remoteError(502, []byte(`<html>Bad Gateway</html>`))
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Equal(t, `<html>Bad Gateway</html>`, apiErr.RawBody)
	assert.Empty(t, apiErr.ErrorMessages)
}

func TestRemoteErrorUnrecognizedJSONKeepsRawText(t *testing.T) {
	apiErr := remoteError(500, []byte(`{"trace":"a1b2"}`))
	assert.Equal(t, `{"trace":"a1b2"}`, apiErr.RawBody)
}

func TestRemoteErrorEmptyBody(t *testing.T) {
	apiErr := remoteError(401, nil)
	assert.Equal(t, "jira: 401", apiErr.Error())
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	apiErr := transportError(cause)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.ErrorIs(t, apiErr, cause)
	assert.Contains(t, apiErr.Error(), "request failed")
}

func TestErrorStringForms(t *testing.T) {
	assert.Contains(t, (&APIError{StatusCode: 400, ErrorMessages: []string{"bad key"}}).Error(), "bad key")
	assert.Contains(t, (&APIError{StatusCode: 400, Errors: map[string]string{"name": "taken"}}).Error(), "name: taken")
	assert.Contains(t, (&APIError{StatusCode: 502, RawBody: "oops"}).Error(), "oops")
}

func TestEnvelopeDecodePreservesRawBody(t *testing.T) {
	env := &Envelope{StatusCode: 200, Body: []byte(`{"total":"not-a-number"}`)}

	var out struct {
		Total int `json:"total"`
	}
	err := env.DecodeJSON(&out)
	require.Error(t, err)
	assert.Equal(t, []byte(`{"total":"not-a-number"}`), env.Body, "a failed decode must not consume the payload")
}

func TestEnvelopeDecodeEmptyBody(t *testing.T) {
	env := &Envelope{StatusCode: 204}
	var out map[string]interface{}
	require.NoError(t, env.DecodeJSON(&out))
	assert.Nil(t, out)
}
