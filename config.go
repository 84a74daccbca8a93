// config.go
// ----------
// This file defines the Config structure: the immutable, caller-constructed
// value that selects the deployment mode and carries everything the chosen
// transport needs. A Config is read by the client and its transport but never
// mutated by individual calls, so any number of independently configured
// clients can coexist in one process.
package jiracloud

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Mode selects the deployment context a client operates in.
type Mode string

const (
	// ModeDefault issues direct HTTPS calls against BaseURL with the
	// configured credentials.
	ModeDefault Mode = "default"

	// ModeBridge delegates each logical call to the host-provided
	// BridgeInvoker, which performs the network hop and auth itself.
	ModeBridge Mode = "bridge"
)

// Config carries the per-client settings shared by every call.
type Config struct {
	Mode Mode `koanf:"mode"`

	// BaseURL is the site root in default mode, e.g.
	// "https://your-domain.atlassian.net". Ignored in bridge mode.
	BaseURL string `koanf:"base_url"`

	// Credentials for default mode. Exactly one style applies, checked in
	// order: TokenSource (OAuth 2.0), BearerToken, then Email+APIToken
	// (basic auth).
	Email       string `koanf:"email"`
	APIToken    string `koanf:"api_token"`
	BearerToken string `koanf:"bearer_token"`

	TokenSource oauth2.TokenSource `koanf:"-"`

	// Bridge is the host request primitive, required in bridge mode.
	Bridge BridgeInvoker `koanf:"-"`

	// HTTPClient overrides the transport's underlying client in default
	// mode. Connection pooling and timeouts belong to it, not the SDK.
	HTTPClient *http.Client `koanf:"-"`

	// UserAgent is sent on every direct request when set.
	UserAgent string `koanf:"user_agent"`

	// Logger receives structured debug lines from the dispatcher and
	// transports. Defaults to a no-op logger.
	Logger *zap.Logger `koanf:"-"`
}

// Validate checks that the Config is usable for its declared mode.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDefault, "":
		if c.BaseURL == "" {
			return errors.New("config: base URL required in default mode")
		}
		if (c.Email == "") != (c.APIToken == "") {
			return errors.New("config: email and API token must be set together")
		}
	case ModeBridge:
		if c.Bridge == nil {
			return errors.New("config: bridge invoker required in bridge mode")
		}
	default:
		return errors.New("config: unknown mode " + string(c.Mode))
	}
	return nil
}

// logger returns the configured logger or a no-op one.
func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
