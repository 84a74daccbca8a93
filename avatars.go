package jiracloud

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type AvatarsService struct {
	client *Client
}

type Avatar struct {
	ID             string            `json:"id"`
	IsSystemAvatar bool              `json:"isSystemAvatar,omitempty"`
	IsSelected     bool              `json:"isSelected,omitempty"`
	IsDeletable    bool              `json:"isDeletable,omitempty"`
	FileName       string            `json:"fileName,omitempty"`
	URLs           map[string]string `json:"urls,omitempty"`
}

// LoadProjectAvatar uploads avatar image bytes for a project. The body is
// raw binary with the caller-supplied media type; x, y, and size crop the
// image server-side.
// POST /rest/api/3/project/{projectIdOrKey}/avatar2
func (s *AvatarsService) LoadProjectAvatar(ctx context.Context, projectIdOrKey string, x, y, size int, contentType string, data []byte) (*Avatar, *Envelope, error) {
	q := url.Values{}
	q.Set("x", strconv.Itoa(x))
	q.Set("y", strconv.Itoa(y))
	q.Set("size", strconv.Itoa(size))
	d := &Descriptor{
		Method:       http.MethodPost,
		PathTemplate: "/rest/api/3/project/{projectIdOrKey}/avatar2",
		PathParams:   map[string]string{"projectIdOrKey": projectIdOrKey},
		Query:        q,
		Body:         data,
		ContentType:  contentType,
		// Jira rejects uploads without this header.
		Headers: map[string]string{"X-Atlassian-Token": "no-check"},
	}
	var avatar Avatar
	env, err := s.client.do(ctx, d, &avatar)
	if err != nil {
		return nil, env, err
	}
	return &avatar, env, nil
}
