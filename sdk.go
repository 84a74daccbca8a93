// sdk.go
// ------
// The sdk.go file contains the core Client struct and its constructor. This
// is the main entry point of the SDK for users.
//
// Key functionalities include:
// - Constructing a client with NewClient() from a Config and a Transport
// - Reaching endpoint groups through the typed service fields
// - Dispatching hand-built Descriptors via Client.Dispatch()
//
// The Client holds no mutable state of its own: the Config and Transport are
// fixed at construction, so concurrent calls need no coordination.
package jiracloud

import (
	"go.uber.org/zap"
)

type Client struct {
	config    *Config
	transport Transport
	logger    *zap.Logger

	// Endpoint groups. Each service is a thin leaf over the dispatcher:
	// literal path templates and parameter mapping, nothing else.
	AnnouncementBanner *AnnouncementBannerService
	AppProperties      *AppPropertiesService
	Avatars            *AvatarsService
	Filters            *FiltersService
	IssueSearch        *IssueSearchService
	Myself             *MyselfService
	Projects           *ProjectsService
	Users              *UsersService
	Webhooks           *WebhooksService
}

// NewClient builds a client around an already-validated Config and the
// Transport matching its mode, e.g.:
//
//	cfg := &jiracloud.Config{BaseURL: site, Email: email, APIToken: token}
//	client, err := jiracloud.NewClient(cfg, adapters.NewDirectTransport(cfg))
func NewClient(cfg *Config, transport Transport) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		config:    cfg,
		transport: transport,
		logger:    cfg.logger(),
	}
	c.AnnouncementBanner = &AnnouncementBannerService{client: c}
	c.AppProperties = &AppPropertiesService{client: c}
	c.Avatars = &AvatarsService{client: c}
	c.Filters = &FiltersService{client: c}
	c.IssueSearch = &IssueSearchService{client: c}
	c.Myself = &MyselfService{client: c}
	c.Projects = &ProjectsService{client: c}
	c.Users = &UsersService{client: c}
	c.Webhooks = &WebhooksService{client: c}
	return c, nil
}

// Config returns the client's configuration. The returned value must be
// treated as read-only.
func (c *Client) Config() *Config {
	return c.config
}
