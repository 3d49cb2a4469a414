// Package apiclient is the HTTP layer between the meter console and the
// instrument backend REST API.
//
// # Transport
//
// Client.Do performs exactly one request. It merges a default
// "Content-Type: application/json" header with caller headers (caller wins),
// attaches "Authorization: Bearer <token>" when the client has a TokenSource
// and the caller has not set Authorization, and tags the request with an
// X-Request-ID.
//
// Response bodies are classified by their declared content type:
//
//	application/json          -> KindJSON   (Response.Decode, Response.Raw)
//	application/octet-stream  -> KindBinary (Response.Body)
//	anything else             -> KindText   (Response.Text)
//
// # Errors
//
// Every failure is an *Error. A non-2xx response carries StatusCode, Status
// and the response Body; a network failure carries StatusCode 0 and wraps
// the cause. Failures are logged once, here, with method and path.
//
//	if apiclient.StatusCode(err) == http.StatusNotFound { ... }
//	if errors.Is(err, apiclient.ErrUnauthorized) { ... }
//
// # Resource helpers
//
// Get, Post, Put, Delete and Download wrap Do with the verb conventions the
// backend expects. Some mutations take only query parameters and an empty
// body; pass a nil body and a Params set for those.
package apiclient
