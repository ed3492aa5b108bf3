package mastodon

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"time"
)

// HTTPVersion selects the protocol version for the request transport. The
// zero value leaves the transport default in place.
type HTTPVersion string

const (
	HTTPVersionDefault HTTPVersion = ""
	HTTPVersion1_1     HTTPVersion = "1.1"
	HTTPVersion2       HTTPVersion = "2"
)

type Client struct {
	// HTTPClient overrides the per-call transport when set. When nil, every
	// call builds a fresh client with keep-alives disabled, so connections
	// are not reused across calls.
	HTTPClient *http.Client

	// Host is the API hostname, without scheme. Requests fail with
	// ErrNoHost while it is empty.
	Host string

	// UseIdempotencyKey enables Idempotency-Key derivation for POSTs to
	// status-creation endpoints.
	UseIdempotencyKey bool

	// UserAgent overrides the default User-Agent header.
	UserAgent *string

	// Headers are client-level defaults applied to every request before
	// per-call headers.
	Headers map[string]string

	bearerToken string
	httpVersion HTTPVersion
	timeout     time.Duration
}

func NewClient(host string) *Client {
	return &Client{Host: host}
}

// Configure re-initializes the connection target and the idempotency-key
// toggle together.
func (c *Client) Configure(host string, useIdempotencyKey bool) {
	c.Host = host
	c.UseIdempotencyKey = useIdempotencyKey
}

// SetBearerToken replaces the stored access token. An empty string clears it.
func (c *Client) SetBearerToken(token string) {
	c.bearerToken = token
}

// SetHTTPVersion replaces the protocol override. HTTPVersionDefault clears it.
func (c *Client) SetHTTPVersion(v HTTPVersion) {
	c.httpVersion = v
}

// SetRequestTimeout replaces the per-request timeout. Zero clears it, leaving
// requests unbounded.
func (c *Client) SetRequestTimeout(d time.Duration) {
	c.timeout = d
}

// Get issues a GET under the api/ namespace (or against the host root for
// oauth/ paths), with args folded into the query string.
func (c *Client) Get(ctx context.Context, path string, args map[string]any) (*json.RawMessage, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   path,
		Args:   args,
	})
}

// Post issues a POST with args JSON-encoded as the request body.
func (c *Client) Post(ctx context.Context, path string, args map[string]any) (*json.RawMessage, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   path,
		Args:   args,
	})
}

// httpClient returns the transport for a generic API call: the configured
// override if present, otherwise a single-use client honoring the version
// and timeout settings. TLS verification is always on.
func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	tr := &http.Transport{
		DisableKeepAlives: true,
	}
	switch c.httpVersion {
	case HTTPVersion2:
		tr.ForceAttemptHTTP2 = true
	case HTTPVersion1_1:
		// a non-nil empty TLSNextProto map disables HTTP/2 negotiation
		tr.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
	}
	return &http.Client{
		Transport: tr,
		Timeout:   c.timeout,
	}
}
