package mastodon

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// idempotencyKey derives the Idempotency-Key header value: the SHA-1 hex
// digest of the JSON encoding of [method, path, args]. Method and path are
// hashed as passed by the caller, before path normalization. The key is
// recomputed on every call, never cached, so identical retries collapse
// server-side while any change to the triple yields a fresh key.
func idempotencyKey(method, path string, args map[string]any) (string, error) {
	payload, err := json.Marshal([]any{method, path, args})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestEncoding, err)
	}
	sum := sha1.Sum(payload)
	return hex.EncodeToString(sum[:]), nil
}
