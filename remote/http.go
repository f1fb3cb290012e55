package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HTTPClient fetches document snapshots from a REST-style document store:
// GET <base>/<path> returns the document body, 404 means the document does
// not exist. Non-404 failures are translated into gRPC status errors keyed
// by the HTTP response code.
type HTTPClient struct {
	base   *url.URL
	hc     *http.Client
	header http.Header
}

// HTTPOption configures an [HTTPClient].
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithAuthorization sends the given value in the Authorization header of
// every fetch.
func WithAuthorization(value string) HTTPOption {
	return func(c *HTTPClient) { c.header.Set("Authorization", value) }
}

// NewHTTPClient creates a client rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("remote: parse base URL: %w", err)
	}
	c := &HTTPClient{
		base:   u,
		hc:     http.DefaultClient,
		header: make(http.Header),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// FetchByPath retrieves the document at path.
func (c *HTTPClient) FetchByPath(ctx context.Context, path string) (Snapshot, error) {
	u := c.base.JoinPath(strings.Split(path, "/")...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Snapshot{}, status.Errorf(codes.InvalidArgument, "remote: build request for %q: %v", path, err)
	}
	for k, vs := range c.header {
		req.Header[k] = vs
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		// Transport-level failures are retryable by convention.
		return Snapshot{}, status.Errorf(codes.Unavailable, "remote: fetch %q: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return NewSnapshot(path, nil, false), nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, status.Errorf(codes.Unavailable, "remote: read %q: %v", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, status.Errorf(codeForHTTP(resp.StatusCode),
			"remote: fetch %q: %s: %s", path, resp.Status, truncate(body))
	}
	return NewSnapshot(path, body, true), nil
}

// codeForHTTP maps an HTTP response code to the closest gRPC status code.
func codeForHTTP(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	default:
		if httpStatus >= 500 {
			return codes.Internal
		}
		return codes.Unknown
	}
}

// truncate keeps error messages readable when the server returns a page of
// HTML instead of a short error body.
func truncate(b []byte) string {
	const max = 256
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
