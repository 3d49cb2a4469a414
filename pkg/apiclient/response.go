package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the decoded shape of a response body.
type Kind int

const (
	// KindText is any body that is neither JSON nor binary.
	KindText Kind = iota
	// KindJSON is a body declared as application/json.
	KindJSON
	// KindBinary is a body declared as application/octet-stream.
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindBinary:
		return "binary"
	default:
		return "text"
	}
}

// Response is a successful (2xx) API response.
type Response struct {
	StatusCode  int
	ContentType string
	Kind        Kind
	Body        []byte
}

func newResponse(statusCode int, contentType string, body []byte) *Response {
	return &Response{
		StatusCode:  statusCode,
		ContentType: contentType,
		Kind:        kindOf(contentType),
		Body:        body,
	}
}

func kindOf(contentType string) Kind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/json"):
		return KindJSON
	case strings.Contains(ct, "application/octet-stream"):
		return KindBinary
	default:
		return KindText
	}
}

// Decode unmarshals a JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if r.Kind != KindJSON {
		return fmt.Errorf("cannot decode %s response (content type %q) as JSON", r.Kind, r.ContentType)
	}
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Raw returns the JSON body verbatim.
func (r *Response) Raw() (json.RawMessage, error) {
	if r.Kind != KindJSON {
		if len(bytes.TrimSpace(r.Body)) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("expected JSON response, got content type %q", r.ContentType)
	}
	return json.RawMessage(r.Body), nil
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Payload returns the body in its decoded form: a generic JSON value for
// JSON responses, a string for everything else.
func (r *Response) Payload() (any, error) {
	if r.Kind != KindJSON {
		return r.Text(), nil
	}
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
