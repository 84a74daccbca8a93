// app_properties.go
// -----------------
// Connect app properties, /rest/atlassian-connect/1/addons/{addonKey}/properties.
// These endpoints authenticate with a signed Connect JWT that the caller
// passes verbatim through the per-call header overlay; the utils package can
// produce one. Property values are opaque JSON the caller serializes and
// interprets.
package jiracloud

import (
	"context"
	"encoding/json"
	"net/http"
)

type AppPropertiesService struct {
	client *Client
}

type PropertyKey struct {
	Self string `json:"self,omitempty"`
	Key  string `json:"key,omitempty"`
}

type PropertyKeys struct {
	Keys []PropertyKey `json:"keys"`
}

type EntityProperty struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// OperationMessage is Jira's acknowledgement for property writes.
type OperationMessage struct {
	StatusCode int    `json:"status-code,omitempty"`
	Message    string `json:"message,omitempty"`
}

func connectOverlay(authorization string) map[string]string {
	if authorization == "" {
		return nil
	}
	return map[string]string{"Authorization": authorization}
}

// List returns the property keys stored for an app. authorization is the
// signed "JWT ..." header value.
// GET /rest/atlassian-connect/1/addons/{addonKey}/properties
func (s *AppPropertiesService) List(ctx context.Context, addonKey, authorization string) (*PropertyKeys, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/atlassian-connect/1/addons/{addonKey}/properties",
		PathParams:   map[string]string{"addonKey": addonKey},
		Headers:      connectOverlay(authorization),
	}
	var keys PropertyKeys
	env, err := s.client.do(ctx, d, &keys)
	if err != nil {
		return nil, env, err
	}
	return &keys, env, nil
}

// Get returns one property.
// GET /rest/atlassian-connect/1/addons/{addonKey}/properties/{propertyKey}
func (s *AppPropertiesService) Get(ctx context.Context, addonKey, propertyKey, authorization string) (*EntityProperty, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodGet,
		PathTemplate: "/rest/atlassian-connect/1/addons/{addonKey}/properties/{propertyKey}",
		PathParams:   map[string]string{"addonKey": addonKey, "propertyKey": propertyKey},
		Headers:      connectOverlay(authorization),
	}
	var prop EntityProperty
	env, err := s.client.do(ctx, d, &prop)
	if err != nil {
		return nil, env, err
	}
	return &prop, env, nil
}

// Set stores a property. value is already-serialized JSON and travels
// unmodified.
// PUT /rest/atlassian-connect/1/addons/{addonKey}/properties/{propertyKey}
func (s *AppPropertiesService) Set(ctx context.Context, addonKey, propertyKey string, value json.RawMessage, authorization string) (*OperationMessage, *Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodPut,
		PathTemplate: "/rest/atlassian-connect/1/addons/{addonKey}/properties/{propertyKey}",
		PathParams:   map[string]string{"addonKey": addonKey, "propertyKey": propertyKey},
		Body:         []byte(value),
		Headers:      connectOverlay(authorization),
	}
	var msg OperationMessage
	env, err := s.client.do(ctx, d, &msg)
	if err != nil {
		return nil, env, err
	}
	return &msg, env, nil
}

// Delete removes a property. Jira answers 204 with no body.
// DELETE /rest/atlassian-connect/1/addons/{addonKey}/properties/{propertyKey}
func (s *AppPropertiesService) Delete(ctx context.Context, addonKey, propertyKey, authorization string) (*Envelope, error) {
	d := &Descriptor{
		Method:       http.MethodDelete,
		PathTemplate: "/rest/atlassian-connect/1/addons/{addonKey}/properties/{propertyKey}",
		PathParams:   map[string]string{"addonKey": addonKey, "propertyKey": propertyKey},
		NoContent:    true,
		Headers:      connectOverlay(authorization),
	}
	return s.client.do(ctx, d, nil)
}
