package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
)

// Get issues a GET with params encoded in the query string.
func (c *Client) Get(ctx context.Context, path string, params *Params) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// Post issues a POST. A nil body sends no payload, which is how query-only
// endpoints are called.
func (c *Client) Post(ctx context.Context, path string, body any, params *Params) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Params: params,
		Body:   body,
	})
}

// Put issues a PUT. A nil body sends no payload.
func (c *Client) Put(ctx context.Context, path string, body any, params *Params) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Params: params,
		Body:   body,
	})
}

// Delete issues a DELETE with an empty body.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// Download fetches a file body. The server is asked for an octet stream and
// the raw bytes are returned whatever content type it answers with.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Header: http.Header{"Accept": []string{"application/octet-stream"}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, params *Params, out any) error {
	resp, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// GetRaw issues a GET and returns the JSON body undecoded, for endpoints
// whose response shape varies.
func (c *Client) GetRaw(ctx context.Context, path string, params *Params) (json.RawMessage, error) {
	resp, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return resp.Raw()
}

// PostJSON issues a POST and decodes a JSON response into out (if non-nil).
func (c *Client) PostJSON(ctx context.Context, path string, body any, params *Params, out any) error {
	resp, err := c.Post(ctx, path, body, params)
	if err != nil {
		return err
	}
	return decodeOptional(resp, out)
}

// PutJSON issues a PUT and decodes a JSON response into out (if non-nil).
func (c *Client) PutJSON(ctx context.Context, path string, body any, params *Params, out any) error {
	resp, err := c.Put(ctx, path, body, params)
	if err != nil {
		return err
	}
	return decodeOptional(resp, out)
}

// decodeOptional tolerates mutation endpoints that answer with an empty or
// non-JSON body.
func decodeOptional(resp *Response, out any) error {
	if out == nil || resp.Kind != KindJSON {
		return nil
	}
	return resp.Decode(out)
}
