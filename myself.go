package jiracloud

import (
	"context"
	"net/http"
	"net/url"
)

type MyselfService struct {
	client *Client
}

// Get returns the calling user.
// GET /rest/api/3/myself
func (s *MyselfService) Get(ctx context.Context, expand []string) (*User, *Envelope, error) {
	q := url.Values{}
	addStrings(q, "expand", expand)
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/myself",
		Query:        q,
	}
	var user User
	env, err := s.client.do(ctx, d, &user)
	if err != nil {
		return nil, env, err
	}
	return &user, env, nil
}
