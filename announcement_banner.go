package jiracloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type AnnouncementBannerService struct {
	client *Client
}

type AnnouncementBanner struct {
	HashID        string `json:"hashId,omitempty"`
	IsDismissible bool   `json:"isDismissible"`
	IsEnabled     bool   `json:"isEnabled"`
	Message       string `json:"message,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
}

type SetAnnouncementBannerRequest struct {
	IsDismissible *bool  `json:"isDismissible,omitempty"`
	IsEnabled     *bool  `json:"isEnabled,omitempty"`
	Message       string `json:"message,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
}

// Get returns the current announcement banner.
// GET /rest/api/3/announcementBanner
func (s *AnnouncementBannerService) Get(ctx context.Context) (*AnnouncementBanner, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/api/3/announcementBanner",
	}
	var banner AnnouncementBanner
	env, err := s.client.do(ctx, d, &banner)
	if err != nil {
		return nil, env, err
	}
	return &banner, env, nil
}

// Set updates the announcement banner. Jira answers 204 with no body.
// PUT /rest/api/3/announcementBanner
func (s *AnnouncementBannerService) Set(ctx context.Context, req *SetAnnouncementBannerRequest) (*Envelope, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("serializing banner request: %w", err)
	}
	d := &Descriptor{
		Method:       http.MethodPut,
		PathTemplate: "/rest/api/3/announcementBanner",
		Body:         body,
		NoContent:    true,
	}
	return s.client.do(ctx, d, nil)
}
