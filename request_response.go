package jiracloud

// NormalizedRequest is the wire-level form of one call handed to a Transport:
// the fully resolved endpoint (path plus encoded query, relative to the site
// base), merged headers, and the body exactly as the caller serialized it.
type NormalizedRequest struct {
	Method   string
	Endpoint string
	Headers  map[string]string
	Body     []byte
}

// NormalizedResponse is what a Transport hands back. Header keys are
// lower-cased so rate-limit parsing does not depend on the transport's
// canonicalization.
type NormalizedResponse struct {
	StatusCode int
	Headers    map[string]string
	Data       []byte
}
