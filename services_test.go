// Tests for the smaller endpoint groups: announcement banner, app
// properties, issue search, myself, avatars.
package jiracloud_test

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jiracloud "github.com/perigee-io/jira-cloud-sdk"
	"github.com/perigee-io/jira-cloud-sdk/mock"
)

func TestAnnouncementBannerGet(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"hashId":"9HN2FJK","isDismissible":false,"isEnabled":true,"message":"Maintenance tonight","visibility":"public"}`))
	client := newTestClient(t, transport)

	banner, _, err := client.AnnouncementBanner.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Maintenance tonight", banner.Message)
	assert.True(t, banner.IsEnabled)
	assert.Equal(t, "/rest/api/3/announcementBanner", transport.LastRequest().Endpoint)
}

func TestAnnouncementBannerSetNoContent(t *testing.T) {
	transport := mock.RespondWith(204, nil)
	client := newTestClient(t, transport)

	env, err := client.AnnouncementBanner.Set(context.Background(), &jiracloud.SetAnnouncementBannerRequest{
		IsEnabled: jiracloud.Bool(true),
		Message:   "Maintenance tonight",
	})
	require.NoError(t, err)
	assert.True(t, env.Ok())
	assert.Empty(t, env.Body)

	req := transport.LastRequest()
	assert.Equal(t, "PUT", req.Method)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, true, sent["isEnabled"])
	assert.NotContains(t, sent, "isDismissible")
}

func TestAppPropertiesSetPassesAuthAndRawValue(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"status-code":200,"message":"Property updated."}`))
	client := newTestClient(t, transport)

	value := json.RawMessage(`{"version":"1.4.2"}`)
	msg, _, err := client.AppProperties.Set(context.Background(), "com.example.app", "build-info", value, "JWT signed-token")
	require.NoError(t, err)
	assert.Equal(t, "Property updated.", msg.Message)

	req := transport.LastRequest()
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t, "/rest/atlassian-connect/1/addons/com.example.app/properties/build-info", req.Endpoint)
	assert.Equal(t, "JWT signed-token", req.Headers["Authorization"])
	assert.Equal(t, []byte(value), req.Body, "property value travels pre-serialized")
}

func TestAppPropertiesList(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"keys":[{"self":"https://x/properties/build-info","key":"build-info"}]}`))
	client := newTestClient(t, transport)

	keys, _, err := client.AppProperties.List(context.Background(), "com.example.app", "")
	require.NoError(t, err)
	require.Len(t, keys.Keys, 1)
	assert.Equal(t, "build-info", keys.Keys[0].Key)
	assert.NotContains(t, transport.LastRequest().Headers, "Authorization")
}

func TestAppPropertiesDeleteNoContent(t *testing.T) {
	transport := mock.RespondWith(204, nil)
	client := newTestClient(t, transport)

	env, err := client.AppProperties.Delete(context.Background(), "com.example.app", "build-info", "JWT signed-token")
	require.NoError(t, err)
	assert.True(t, env.Ok())
	assert.Equal(t, "DELETE", transport.LastRequest().Method)
}

func TestIssueSearchRepeatedFields(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"startAt":0,"maxResults":50,"total":1,"issues":[{"key":"EX-1","fields":{"summary":"Fix login","status":{"name":"In Progress"}}}]}`))
	client := newTestClient(t, transport)

	results, _, err := client.IssueSearch.Search(context.Background(), "project = EX", &jiracloud.SearchOptions{
		Fields: []string{"summary", "status", "assignee"},
	})
	require.NoError(t, err)
	require.Len(t, results.Issues, 1)
	assert.Equal(t, "EX-1", results.Issues[0].Key)
	assert.Equal(t, "Fix login", results.Issues[0].Fields.Summary)
	assert.Equal(t, "In Progress", results.Issues[0].Fields.Status.Name)

	endpoint := transport.LastRequest().Endpoint
	query := endpoint[strings.IndexByte(endpoint, '?')+1:]
	values, parseErr := url.ParseQuery(query)
	require.NoError(t, parseErr)
	assert.Equal(t, []string{"summary", "status", "assignee"}, values["fields"])
	assert.Equal(t, "project = EX", values.Get("jql"))
}

func TestIssueSearchPost(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"total":0,"issues":[]}`))
	client := newTestClient(t, transport)

	_, _, err := client.IssueSearch.SearchPost(context.Background(), &jiracloud.SearchRequest{
		JQL:        "project = EX AND labels = backend",
		MaxResults: 100,
	})
	require.NoError(t, err)

	req := transport.LastRequest()
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/rest/api/3/search", req.Endpoint)

	var sent jiracloud.SearchRequest
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "project = EX AND labels = backend", sent.JQL)
	assert.Equal(t, 100, sent.MaxResults)
}

func TestMyselfGet(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"accountId":"5b10a2844c20165700ede21g","displayName":"Mia Krystof","timeZone":"Australia/Sydney"}`))
	client := newTestClient(t, transport)

	me, _, err := client.Myself.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Mia Krystof", me.DisplayName)
	assert.Equal(t, "/rest/api/3/myself", transport.LastRequest().Endpoint)
}

func TestLoadProjectAvatarBinaryBody(t *testing.T) {
	transport := mock.RespondWith(201, []byte(`{"id":"1010","isSelected":false}`))
	client := newTestClient(t, transport)

	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	avatar, _, err := client.Avatars.LoadProjectAvatar(context.Background(), "EX", 0, 0, 128, "image/png", png)
	require.NoError(t, err)
	assert.Equal(t, "1010", avatar.ID)

	req := transport.LastRequest()
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, png, req.Body, "image bytes must travel untouched")
	assert.Equal(t, "image/png", req.Headers["Content-Type"])
	assert.Equal(t, "no-check", req.Headers["X-Atlassian-Token"])

	endpoint := req.Endpoint
	assert.Contains(t, endpoint, "/rest/api/3/project/EX/avatar2?")
	values, parseErr := url.ParseQuery(endpoint[strings.IndexByte(endpoint, '?')+1:])
	require.NoError(t, parseErr)
	assert.Equal(t, "128", values.Get("size"))
	assert.Equal(t, "0", values.Get("x"))
}
