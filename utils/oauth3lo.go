// utils/oauth3lo.go
// ------------------
// Helpers for Atlassian's OAuth 2.0 (3LO) flow. The flow itself is standard
// golang.org/x/oauth2; what this file adds are the Atlassian endpoints, the
// accessible-resources lookup that resolves a token to the cloud sites it
// can act on, and the per-site API base URL. The resulting TokenSource plugs
// straight into Config.TokenSource for default-mode clients.
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	atlassianAuthURL  = "https://auth.atlassian.com/authorize"
	atlassianTokenURL = "https://auth.atlassian.com/oauth/token"

	accessibleResourcesURL = "https://api.atlassian.com/oauth/token/accessible-resources"
)

// OAuth3LOConfig returns an oauth2.Config wired to the Atlassian 3LO
// endpoints. Scopes use Jira's granular form, e.g. "read:jira-work".
func OAuth3LOConfig(clientID, clientSecret, redirectURL string, scopes []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  atlassianAuthURL,
			TokenURL: atlassianTokenURL,
		},
	}
}

// AccessibleResource is one cloud site a 3LO token can act on.
type AccessibleResource struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Name      string   `json:"name"`
	Scopes    []string `json:"scopes"`
	AvatarURL string   `json:"avatarUrl"`
}

// AccessibleResources lists the sites the token source's current token can
// reach. The returned IDs feed APIBaseURL.
func AccessibleResources(ctx context.Context, ts oauth2.TokenSource) ([]AccessibleResource, error) {
	client := oauth2.NewClient(ctx, ts)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, accessibleResourcesURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching accessible resources: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("accessible resources: status %d: %s", resp.StatusCode, string(data))
	}

	var resources []AccessibleResource
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("parsing accessible resources: %w", err)
	}
	return resources, nil
}

// APIBaseURL returns the gateway base URL for one cloud site, the BaseURL a
// 3LO-authenticated Config should carry.
func APIBaseURL(cloudID string) string {
	return "https://api.atlassian.com/ex/jira/" + cloudID
}
