package jiracloud_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jiracloud "github.com/perigee-io/jira-cloud-sdk"
	"github.com/perigee-io/jira-cloud-sdk/mock"
)

func TestFiltersGet(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`{"id":"10000","name":"My open issues","jql":"assignee = currentUser()"}`))
	client := newTestClient(t, transport)

	filter, _, err := client.Filters.Get(context.Background(), 10000, nil)
	require.NoError(t, err)
	assert.Equal(t, "My open issues", filter.Name)
	assert.Equal(t, "/rest/api/3/filter/10000", transport.LastRequest().Endpoint)
}

func TestFiltersDeletePermissionNoContent(t *testing.T) {
	transport := mock.RespondWith(204, nil)
	client := newTestClient(t, transport)

	env, err := client.Filters.DeletePermission(context.Background(), 10000, 10010)
	require.NoError(t, err)
	require.True(t, env.Ok())
	assert.Equal(t, 204, env.StatusCode)
	assert.Empty(t, env.Body)

	req := transport.LastRequest()
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "/rest/api/3/filter/10000/permission/10010", req.Endpoint)
	assert.Empty(t, req.Body)
}

func TestFiltersAddPermission(t *testing.T) {
	transport := mock.RespondWith(201, []byte(`[{"id":10010,"type":"group","group":{"name":"jira-developers"}}]`))
	client := newTestClient(t, transport)

	perms, _, err := client.Filters.AddPermission(context.Background(), 10000, &jiracloud.AddFilterPermissionRequest{
		Type:    "group",
		GroupID: "276f955c-63d7-42c8-9520-92d01dca0625",
	})
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, "group", perms[0].Type)
	assert.Equal(t, "jira-developers", perms[0].Group.Name)
}

func TestFiltersPermissions(t *testing.T) {
	transport := mock.RespondWith(200, []byte(`[{"id":10010,"type":"global"},{"id":10011,"type":"project"}]`))
	client := newTestClient(t, transport)

	perms, _, err := client.Filters.Permissions(context.Background(), 10000)
	require.NoError(t, err)
	assert.Len(t, perms, 2)
}
