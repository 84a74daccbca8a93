package jiracloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type IssueSearchService struct {
	client *Client
}

type StatusCategory struct {
	Self      string `json:"self,omitempty"`
	ID        int    `json:"id,omitempty"`
	Key       string `json:"key,omitempty"`
	ColorName string `json:"colorName,omitempty"`
	Name      string `json:"name,omitempty"`
}

type Status struct {
	Self           string          `json:"self,omitempty"`
	Description    string          `json:"description,omitempty"`
	IconURL        string          `json:"iconUrl,omitempty"`
	Name           string          `json:"name,omitempty"`
	ID             string          `json:"id,omitempty"`
	StatusCategory *StatusCategory `json:"statusCategory,omitempty"`
}

// IssueTypeWithStatus maps one issue type to its valid statuses, as returned
// by the project statuses endpoint.
type IssueTypeWithStatus struct {
	Self     string   `json:"self,omitempty"`
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Subtask  bool     `json:"subtask,omitempty"`
	Statuses []Status `json:"statuses,omitempty"`
}

// IssueFields is the commonly used subset of an issue's fields. Anything not
// modeled here stays reachable through the envelope's raw body.
type IssueFields struct {
	Summary  string   `json:"summary,omitempty"`
	Status   *Status  `json:"status,omitempty"`
	Assignee *User    `json:"assignee,omitempty"`
	Reporter *User    `json:"reporter,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	Created  string   `json:"created,omitempty"`
	Updated  string   `json:"updated,omitempty"`
}

type Issue struct {
	Expand string       `json:"expand,omitempty"`
	ID     string       `json:"id,omitempty"`
	Self   string       `json:"self,omitempty"`
	Key    string       `json:"key,omitempty"`
	Fields *IssueFields `json:"fields,omitempty"`
}

type SearchResults struct {
	Expand     string  `json:"expand,omitempty"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

type SearchOptions struct {
	StartAt       *int
	MaxResults    *int
	Fields        []string
	Expand        []string
	ValidateQuery string
}

func (o *SearchOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "startAt", o.StartAt)
	setInt(q, "maxResults", o.MaxResults)
	addStrings(q, "fields", o.Fields)
	addStrings(q, "expand", o.Expand)
	setString(q, "validateQuery", o.ValidateQuery)
	return q
}

// SearchRequest is the POST-variant body, for JQL too long for a query
// string.
type SearchRequest struct {
	JQL           string   `json:"jql"`
	StartAt       int      `json:"startAt,omitempty"`
	MaxResults    int      `json:"maxResults,omitempty"`
	Fields        []string `json:"fields,omitempty"`
	Expand        []string `json:"expand,omitempty"`
	ValidateQuery string   `json:"validateQuery,omitempty"`
}

// Search runs a JQL search.
// GET /rest/api/3/search
func (s *IssueSearchService) Search(ctx context.Context, jql string, opts *SearchOptions) (*SearchResults, *Envelope, error) {
	q := opts.values()
	setString(q, "jql", jql)
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/search",
		Query:        q,
	}
	var results SearchResults
	env, err := s.client.do(ctx, d, &results)
	if err != nil {
		return nil, env, err
	}
	return &results, env, nil
}

// SearchPost runs a JQL search with the query in the request body.
// POST /rest/api/3/search
func (s *IssueSearchService) SearchPost(ctx context.Context, req *SearchRequest) (*SearchResults, *Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("serializing search request: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPost,
		PathTemplate: "/rest/api/3/search",
		Body:         body,
	}
	var results SearchResults
	env, err := s.client.do(ctx, d, &results)
	if err != nil {
		return nil, env, err
	}
	return &results, env, nil
}
