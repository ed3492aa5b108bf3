package mastodon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/carlmjohnson/versioninfo"
)

type Request struct {
	// HTTP method, eg "GET" (required). GET and POST dispatch natively;
	// any other string is sent as a custom method with the non-GET body
	// handling rules.
	Method string

	// API path, eg "v1/timelines/home". Leading/trailing slashes and
	// spaces are trimmed. Paths starting with "oauth/" are requested
	// against the host root and never carry the bearer token; everything
	// else goes under the "api/" namespace.
	Path string

	// Optional argument mapping. For GET it becomes the query string; for
	// other methods it becomes the JSON (or multipart) request body.
	Args map[string]any

	// Optional raw payload, sent verbatim with no Content-Type. When
	// non-empty it takes precedence over Args for the body.
	RawBody []byte

	// Multipart switches non-raw body encoding from JSON to
	// multipart/form-data. FormFile values in Args become file parts.
	Multipart bool
}

// Do builds, dispatches, and decodes one API request.
//
// The response body is validated as JSON and returned as-is, whether object,
// array, or scalar. HTTP status codes are not inspected: a 4xx/5xx with a
// JSON error payload is returned to the caller like any other response, and
// only transport-level non-responses and JSON decode failures produce errors.
func (c *Client) Do(ctx context.Context, req Request) (*json.RawMessage, error) {
	if c.Host == "" {
		return nil, ErrNoHost
	}

	path := strings.Trim(req.Path, "/ ")
	oauthPath := strings.HasPrefix(path, "oauth/")

	uri := "https://" + c.Host + "/"
	if !oauthPath {
		uri += "api/"
	}
	uri += path
	if req.Method == http.MethodGet && len(req.Args) > 0 {
		uri += "?" + makeParams(req.Args).Encode()
	}

	var body io.Reader
	var contentType string
	switch {
	case len(req.RawBody) > 0:
		body = bytes.NewReader(req.RawBody)
	case len(req.Args) > 0 && req.Multipart:
		buf, ctype, err := encodeMultipart(req.Args)
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ctype
	case len(req.Args) > 0 && req.Method != http.MethodGet:
		b, err := json.Marshal(req.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRequestEncoding, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case req.Method == http.MethodPost:
		// explicit zero-length payload, so the POST still carries
		// Content-Length: 0 framing
		body = bytes.NewReader(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, uri, body)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.UserAgent != nil {
		httpReq.Header.Set("User-Agent", *c.UserAgent)
	} else {
		httpReq.Header.Set("User-Agent", "mastokit/"+versioninfo.Short())
	}
	for k, v := range c.Headers {
		httpReq.Header.Set(k, v)
	}

	// oauth/ endpoints authenticate via their own parameters, never the
	// bearer token
	if !oauthPath && c.bearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	if c.UseIdempotencyKey && req.Method == http.MethodPost && strings.Contains(path, "/statuses") {
		key, err := idempotencyKey(req.Method, req.Path, req.Args)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Idempotency-Key", key)
	}

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrNoResponse, c.Host, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrNoResponse, c.Host, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoResponse, c.Host)
	}

	var out json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseDecoding, err)
	}
	return &out, nil
}
