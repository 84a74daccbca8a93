// projects.go
// -----------
// Endpoint group for /rest/api/3/project. Like every service in this SDK it
// is a leaf over the dispatcher: literal path templates and option-to-query
// mapping, no logic of its own.
package jiracloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type ProjectsService struct {
	client *Client
}

// AvatarURLs carries the fixed avatar size variants Jira returns.
type AvatarURLs struct {
	Size16 string `json:"16x16,omitempty"`
	Size24 string `json:"24x24,omitempty"`
	Size32 string `json:"32x32,omitempty"`
	Size48 string `json:"48x48,omitempty"`
}

type Project struct {
	Expand         string      `json:"expand,omitempty"`
	Self           string      `json:"self,omitempty"`
	ID             string      `json:"id,omitempty"`
	Key            string      `json:"key,omitempty"`
	Name           string      `json:"name,omitempty"`
	Description    string      `json:"description,omitempty"`
	Lead           *User       `json:"lead,omitempty"`
	ProjectTypeKey string      `json:"projectTypeKey,omitempty"`
	Simplified     bool        `json:"simplified,omitempty"`
	Style          string      `json:"style,omitempty"`
	IsPrivate      bool        `json:"isPrivate,omitempty"`
	AvatarUrls     *AvatarURLs `json:"avatarUrls,omitempty"`
}

// ProjectPage is one page of project search results. Pagination is exposed
// raw; there is no iteration helper.
type ProjectPage struct {
	Self       string    `json:"self,omitempty"`
	NextPage   string    `json:"nextPage,omitempty"`
	MaxResults int       `json:"maxResults"`
	StartAt    int       `json:"startAt"`
	Total      int       `json:"total"`
	IsLast     bool      `json:"isLast"`
	Values     []Project `json:"values"`
}

// ProjectIdentifiers is what project creation returns.
type ProjectIdentifiers struct {
	Self string `json:"self,omitempty"`
	ID   int64  `json:"id"`
	Key  string `json:"key"`
}

type GetProjectOptions struct {
	Expand     []string
	Properties []string
}

func (o *GetProjectOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	addStrings(q, "expand", o.Expand)
	addStrings(q, "properties", o.Properties)
	return q
}

type SearchProjectsOptions struct {
	StartAt    *int
	MaxResults *int
	OrderBy    string
	ID         []int64
	Keys       []string
	Query      string
	TypeKey    string
	Action     string
	Expand     []string
}

func (o *SearchProjectsOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	setInt(q, "startAt", o.StartAt)
	setInt(q, "maxResults", o.MaxResults)
	setString(q, "orderBy", o.OrderBy)
	addInt64s(q, "id", o.ID)
	addStrings(q, "keys", o.Keys)
	setString(q, "query", o.Query)
	setString(q, "typeKey", o.TypeKey)
	setString(q, "action", o.Action)
	addStrings(q, "expand", o.Expand)
	return q
}

type CreateProjectRequest struct {
	Key                string `json:"key"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	ProjectTypeKey     string `json:"projectTypeKey,omitempty"`
	ProjectTemplateKey string `json:"projectTemplateKey,omitempty"`
	LeadAccountID      string `json:"leadAccountId,omitempty"`
	AssigneeType       string `json:"assigneeType,omitempty"`
	CategoryID         *int64 `json:"categoryId,omitempty"`
	URL                string `json:"url,omitempty"`
}

type UpdateProjectRequest struct {
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	LeadAccountID string `json:"leadAccountId,omitempty"`
	AssigneeType  string `json:"assigneeType,omitempty"`
	URL           string `json:"url,omitempty"`
}

// Get returns a single project by ID or key.
// GET /rest/api/3/project/{projectIdOrKey}
func (s *ProjectsService) Get(ctx context.Context, projectIdOrKey string, opts *GetProjectOptions) (*Project, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/project/{projectIdOrKey}",
		PathParams:   map[string]string{"projectIdOrKey": projectIdOrKey},
		Query:        opts.values(),
	}
	var project Project
	env, err := s.client.do(ctx, d, &project)
	if err != nil {
		return nil, env, err
	}
	return &project, env, nil
}

// Search returns a paginated project list.
// GET /rest/api/3/project/search
func (s *ProjectsService) Search(ctx context.Context, opts *SearchProjectsOptions) (*ProjectPage, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/project/search",
		Query:        opts.values(),
	}
	var page ProjectPage
	env, err := s.client.do(ctx, d, &page)
	if err != nil {
		return nil, env, err
	}
	return &page, env, nil
}

// Create creates a project and returns its identifiers.
// POST /rest/api/3/project
func (s *ProjectsService) Create(ctx context.Context, req *CreateProjectRequest) (*ProjectIdentifiers, *Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("serializing create project request: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPost,
		PathTemplate: "/rest/api/3/project",
		Body:         body,
	}
	var ids ProjectIdentifiers
	env, err := s.client.do(ctx, d, &ids)
	if err != nil {
		return nil, env, err
	}
	return &ids, env, nil
}

// Update updates project details and returns the updated project.
// PUT /rest/api/3/project/{projectIdOrKey}
func (s *ProjectsService) Update(ctx context.Context, projectIdOrKey string, req *UpdateProjectRequest) (*Project, *Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("serializing update project request: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPut,
		PathTemplate: "/rest/api/3/project/{projectIdOrKey}",
		PathParams:   map[string]string{"projectIdOrKey": projectIdOrKey},
		Body:         body,
	}
	var project Project
	env, err := s.client.do(ctx, d, &project)
	if err != nil {
		return nil, env, err
	}
	return &project, env, nil
}

// Delete deletes a project. Jira answers 204 with no body.
// DELETE /rest/api/3/project/{projectIdOrKey}
func (s *ProjectsService) Delete(ctx context.Context, projectIdOrKey string, enableUndo bool) (*Envelope, error) {
	q := url.Values{}
	if enableUndo {
		q.Set("enableUndo", "true")
	}
	d := &Descriptor{
		Method:       http.MethodDelete,
		PathTemplate: "/rest/api/3/project/{projectIdOrKey}",
		PathParams:   map[string]string{"projectIdOrKey": projectIdOrKey},
		Query:        q,
		NoContent:    true,
	}
	return s.client.do(ctx, d, nil)
}

// Statuses returns the valid statuses per issue type for a project.
// GET /rest/api/3/project/{projectIdOrKey}/statuses
func (s *ProjectsService) Statuses(ctx context.Context, projectIdOrKey string) ([]IssueTypeWithStatus, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/project/{projectIdOrKey}/statuses",
		PathParams:   map[string]string{"projectIdOrKey": projectIdOrKey},
	}
	var statuses []IssueTypeWithStatus
	env, err := s.client.do(ctx, d, &statuses)
	if err != nil {
		return nil, env, err
	}
	return statuses, env, nil
}
