package mastodon

import (
	"errors"
)

var (
	// ErrNoHost indicates a request was attempted before a host was
	// configured on the client.
	ErrNoHost = errors.New("no API host configured")

	// ErrNoResponse indicates the transport produced no response body at
	// all: connection refused, DNS failure, timeout, or an empty reply.
	ErrNoResponse = errors.New("no response from API host")

	// ErrRequestEncoding indicates the argument mapping (or the
	// idempotency-key payload derived from it) could not be serialized.
	ErrRequestEncoding = errors.New("encoding request arguments")

	// ErrResponseDecoding indicates the response body was not valid JSON.
	ErrResponseDecoding = errors.New("decoding API response")

	// ErrMissingAccessToken indicates a token-exchange response parsed as
	// JSON but carried no access_token field.
	ErrMissingAccessToken = errors.New("token response missing access_token")
)
