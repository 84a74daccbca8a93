package jiracloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type FiltersService struct {
	client *Client
}

type Filter struct {
	Self            string `json:"self,omitempty"`
	ID              string `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	Owner           *User  `json:"owner,omitempty"`
	JQL             string `json:"jql,omitempty"`
	ViewURL         string `json:"viewUrl,omitempty"`
	SearchURL       string `json:"searchUrl,omitempty"`
	Favourite       bool   `json:"favourite,omitempty"`
	FavouritedCount int    `json:"favouritedCount,omitempty"`
}

type Group struct {
	Name    string `json:"name,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	Self    string `json:"self,omitempty"`
}

// FilterPermission is one share grant on a filter.
type FilterPermission struct {
	ID      int64    `json:"id,omitempty"`
	Type    string   `json:"type,omitempty"`
	Project *Project `json:"project,omitempty"`
	Group   *Group   `json:"group,omitempty"`
}

// AddFilterPermissionRequest shares a filter. Type selects which of the
// other fields applies: "project", "group", "user", "global", or
// "authenticated".
type AddFilterPermissionRequest struct {
	Type          string `json:"type"`
	ProjectID     string `json:"projectId,omitempty"`
	GroupID       string `json:"groupId,omitempty"`
	AccountID     string `json:"accountId,omitempty"`
	ProjectRoleID string `json:"projectRoleId,omitempty"`
}

// Get returns a filter by ID.
// GET /rest/api/3/filter/{id}
func (s *FiltersService) Get(ctx context.Context, id int64, expand []string) (*Filter, *Envelope, error) {
	q := url.Values{}
	addStrings(q, "expand", expand)
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/filter/{id}",
		PathParams:   map[string]string{"id": strconv.FormatInt(id, 10)},
		Query:        q,
	}
	var filter Filter
	env, err := s.client.do(ctx, d, &filter)
	if err != nil {
		return nil, env, err
	}
	return &filter, env, nil
}

// Delete deletes a filter. Jira answers 204 with no body.
// DELETE /rest/api/3/filter/{id}
func (s *FiltersService) Delete(ctx context.Context, id int64) (*Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodDelete,
		PathTemplate: "/rest/api/3/filter/{id}",
		PathParams:   map[string]string{"id": strconv.FormatInt(id, 10)},
		NoContent:    true,
	}
	return s.client.do(ctx, d, nil)
}

// Permissions lists a filter's share grants.
// GET /rest/api/3/filter/{id}/permission
func (s *FiltersService) Permissions(ctx context.Context, id int64) ([]FilterPermission, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/filter/{id}/permission",
		PathParams:   map[string]string{"id": strconv.FormatInt(id, 10)},
	}
	var perms []FilterPermission
	env, err := s.client.do(ctx, d, &perms)
	if err != nil {
		return nil, env, err
	}
	return perms, env, nil
}

// AddPermission shares a filter and returns the created grants.
// POST /rest/api/3/filter/{id}/permission
func (s *FiltersService) AddPermission(ctx context.Context, id int64, req *AddFilterPermissionRequest) ([]FilterPermission, *Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("serializing filter permission request: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPost,
		PathTemplate: "/rest/api/3/filter/{id}/permission",
		PathParams:   map[string]string{"id": strconv.FormatInt(id, 10)},
		Body:         body,
	}
	var perms []FilterPermission
	env, err := s.client.do(ctx, d, &perms)
	if err != nil {
		return nil, env, err
	}
	return perms, env, nil
}

// DeletePermission removes one share grant. Jira answers 204 with no body.
// DELETE /rest/api/3/filter/{id}/permission/{permissionId}
func (s *FiltersService) DeletePermission(ctx context.Context, id, permissionID int64) (*Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodDelete,
		PathTemplate: "/rest/api/3/filter/{id}/permission/{permissionId}",
		PathParams: map[string]string{
			"id":           strconv.FormatInt(id, 10),
			"permissionId": strconv.FormatInt(permissionID, 10),
		},
		NoContent: true,
	}
	return s.client.do(ctx, d, nil)
}
