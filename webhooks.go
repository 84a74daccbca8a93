// webhooks.go
// -----------
// Dynamic webhook registration, /rest/api/3/webhook. Registered webhooks
// expire; ExtendLife refreshes the ones about to lapse.
package jiracloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type WebhooksService struct {
	client *Client
}

type RegisteredWebhook struct {
	ID             int64    `json:"id"`
	JQLFilter      string   `json:"jqlFilter,omitempty"`
	FieldIdsFilter []string `json:"fieldIdsFilter,omitempty"`
	Events         []string `json:"events,omitempty"`
	ExpirationDate string   `json:"expirationDate,omitempty"`
}

type WebhookPage struct {
	MaxResults int                 `json:"maxResults"`
	StartAt    int                 `json:"startAt"`
	Total      int                 `json:"total"`
	IsLast     bool                `json:"isLast"`
	Values     []RegisteredWebhook `json:"values"`
}

type WebhookDetails struct {
	JQLFilter               string   `json:"jqlFilter"`
	FieldIdsFilter          []string `json:"fieldIdsFilter,omitempty"`
	IssuePropertyKeysFilter []string `json:"issuePropertyKeysFilter,omitempty"`
	Events                  []string `json:"events"`
}

type RegisterWebhooksRequest struct {
	URL      string           `json:"url"`
	Webhooks []WebhookDetails `json:"webhooks"`
}

type WebhookCreationResult struct {
	CreatedWebhookID int64    `json:"createdWebhookId,omitempty"`
	Errors           []string `json:"errors,omitempty"`
}

type RegisterWebhooksResult struct {
	WebhookRegistrationResult []WebhookCreationResult `json:"webhookRegistrationResult"`
}

type WebhookRefreshResult struct {
	ExpirationDate string `json:"expirationDate"`
}

// List returns the webhooks registered by the calling app.
// GET /rest/api/3/webhook
func (s *WebhooksService) List(ctx context.Context, startAt, maxResults *int) (*WebhookPage, *Envelope, error) {
	q := url.Values{}
	setInt(q, "startAt", startAt)
	setInt(q, "maxResults", maxResults)
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/webhook",
		Query:        q,
	}
	var page WebhookPage
	env, err := s.client.do(ctx, d, &page)
	if err != nil {
		return nil, env, err
	}
	return &page, env, nil
}

// Register creates webhooks and returns a per-entry result.
// POST /rest/api/3/webhook
func (s *WebhooksService) Register(ctx context.Context, req *RegisterWebhooksRequest) (*RegisterWebhooksResult, *Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("serializing webhook registration: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPost,
		PathTemplate: "/rest/api/3/webhook",
		Body:         body,
	}
	var result RegisterWebhooksResult
	env, err := s.client.do(ctx, d, &result)
	if err != nil {
		return nil, env, err
	}
	return &result, env, nil
}

// Delete removes webhooks by ID. The IDs travel in the request body; Jira
// answers 202 with no body.
// DELETE /rest/api/3/webhook
func (s *WebhooksService) Delete(ctx context.Context, webhookIDs []int64) (*Envelope, error) {
	body, err := json.Marshal(map[string][]int64{"webhookIds": webhookIDs})
	if err != nil {
		return nil, fmt.Errorf("serializing webhook ids: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodDelete,
		PathTemplate: "/rest/api/3/webhook",
		Body:         body,
		NoContent:    true,
	}
	return s.client.do(ctx, d, nil)
}

// ExtendLife refreshes the expiration of the given webhooks.
// PUT /rest/api/3/webhook/refresh
func (s *WebhooksService) ExtendLife(ctx context.Context, webhookIDs []int64) (*WebhookRefreshResult, *Envelope, error) {
	body, err := json.Marshal(map[string][]int64{"webhookIds": webhookIDs})
	if err != nil {
		return nil, nil, fmt.Errorf("serializing webhook ids: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPut,
		PathTemplate: "/rest/api/3/webhook/refresh",
		Body:         body,
	}
	var result WebhookRefreshResult
	env, err := s.client.do(ctx, d, &result)
	if err != nil {
		return nil, env, err
	}
	return &result, env, nil
}
