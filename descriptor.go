// descriptor.go
// -------------
// A Descriptor is the in-memory form of one pending REST call: the endpoint's
// path template with {placeholder} tokens, the HTTP method, path and query
// parameter values, an optional pre-serialized body, and a per-call header
// overlay. Service methods build one Descriptor per call and hand it to the
// dispatcher; a Descriptor is never reused or mutated after dispatch.
//
// Every {token} in the template must have a value in PathParams. A missing
// value is a bug in the calling code, so compile fails fast with an error
// instead of producing an error-state envelope.
package jiracloud

import (
	"fmt"
	"net/url"
	"strings"
)

// Descriptor describes one HTTP call against the Jira REST API.
type Descriptor struct {
	Method       string
	PathTemplate string
	PathParams   map[string]string
	Query        url.Values

	// Body is already-serialized content: JSON text for regular endpoints,
	// raw bytes for upload-style endpoints. The dispatcher never re-encodes
	// it.
	Body        []byte
	ContentType string

	// Headers is the per-call overlay. On conflict with transport-supplied
	// headers (auth and the like) the overlay wins.
	Headers map[string]string

	// NoContent marks endpoints that return no response body on success,
	// such as most DELETE and PUT operations. It is a per-endpoint constant
	// set by the service method, not inferred from the status code.
	NoContent bool
}

// compile resolves the path template and appends the encoded query string,
// producing the endpoint passed to the transport. Array-valued query
// parameters encode as repeated key=value pairs, which url.Values gives us
// for free; parameters that were never set simply do not appear.
func (d *Descriptor) compile() (string, error) {
	path, err := expandPath(d.PathTemplate, d.PathParams)
	if err != nil {
		return "", err
	}
	if len(d.Query) > 0 {
		path += "?" + d.Query.Encode()
	}
	return path, nil
}

// expandPath substitutes every {name} token with the URL-encoded parameter
// value, preserving the template's segment order.
func expandPath(template string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", fmt.Errorf("path template %q: unterminated placeholder", template)
		}
		name := rest[open+1 : open+closing]
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("path template %q: no value for placeholder {%s}", template, name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+closing+1:]
	}
	if strings.ContainsAny(rest, "{}") {
		return "", fmt.Errorf("path template %q: stray brace", template)
	}
	b.WriteString(rest)
	return b.String(), nil
}
