package jiracloud

import (
	"context"
	"net/http"
	"net/url"
)

type UsersService struct {
	client *Client
}

type User struct {
	Self         string      `json:"self,omitempty"`
	AccountID    string      `json:"accountId,omitempty"`
	AccountType  string      `json:"accountType,omitempty"`
	EmailAddress string      `json:"emailAddress,omitempty"`
	DisplayName  string      `json:"displayName,omitempty"`
	Active       bool        `json:"active,omitempty"`
	TimeZone     string      `json:"timeZone,omitempty"`
	Locale       string      `json:"locale,omitempty"`
	AvatarUrls   *AvatarURLs `json:"avatarUrls,omitempty"`
}

type UserPage struct {
	MaxResults int    `json:"maxResults"`
	StartAt    int    `json:"startAt"`
	Total      int    `json:"total"`
	IsLast     bool   `json:"isLast"`
	Values     []User `json:"values"`
}

type FindUsersOptions struct {
	Query      string
	AccountID  string
	StartAt    *int
	MaxResults *int
}

func (o *FindUsersOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setString(q, "query", o.Query)
	setString(q, "accountId", o.AccountID)
	setInt(q, "startAt", o.StartAt)
	setInt(q, "maxResults", o.MaxResults)
	return q
}

// Get returns the user with the given account ID.
// GET /rest/api/3/user
func (s *UsersService) Get(ctx context.Context, accountID string, expand []string) (*User, *Envelope, error) {
	q := url.Values{}
	q.Set("accountId", accountID)
	addStrings(q, "expand", expand)
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/user",
		Query:        q,
	}
	var user User
	env, err := s.client.do(ctx, d, &user)
	if err != nil {
		return nil, env, err
	}
	return &user, env, nil
}

// Find searches for users matching the query.
// GET /rest/api/3/user/search
func (s *UsersService) Find(ctx context.Context, opts *FindUsersOptions) ([]User, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/user/search",
		Query:        opts.values(),
	}
	var users []User
	env, err := s.client.do(ctx, d, &users)
	if err != nil {
		return nil, env, err
	}
	return users, env, nil
}

// BulkGet returns a page of users for the given account IDs, passed as
// repeated accountId query parameters.
// GET /rest/api/3/user/bulk
func (s *UsersService) BulkGet(ctx context.Context, accountIDs []string, startAt, maxResults *int) (*UserPage, *Envelope, error) {
	q := url.Values{}
	addStrings(q, "accountId", accountIDs)
	setInt(q, "startAt", startAt)
	setInt(q, "maxResults", maxResults)
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/user/bulk",
		Query:        q,
	}
	var page UserPage
	env, err := s.client.do(ctx, d, &page)
	if err != nil {
		return nil, env, err
	}
	return &page, env, nil
}

// Delete removes a user. Jira answers 204 with no body.
// DELETE /rest/api/3/user
func (s *UsersService) Delete(ctx context.Context, accountID string) (*Envelope, error) {
	q := url.Values{}
	q.Set("accountId", accountID)
	d := &Descriptor{
		Method:       http.MethodDelete,
		PathTemplate: "/rest/api/3/user",
		Query:        q,
		NoContent:    true,
	}
	return s.client.do(ctx, d, nil)
}
