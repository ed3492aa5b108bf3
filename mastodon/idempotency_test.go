package mastodon

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyKeyDeterminism(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	args := map[string]any{"status": "hello", "visibility": "public"}

	k1, err := idempotencyKey("POST", "v1/statuses", args)
	require.NoError(err)
	k2, err := idempotencyKey("POST", "v1/statuses", args)
	require.NoError(err)
	assert.Equal(k1, k2)
	assert.Len(k1, 40)
	assert.Equal(strings.ToLower(k1), k1)

	otherMethod, err := idempotencyKey("PUT", "v1/statuses", args)
	require.NoError(err)
	assert.NotEqual(k1, otherMethod)

	otherPath, err := idempotencyKey("POST", "/v1/statuses", args)
	require.NoError(err)
	assert.NotEqual(k1, otherPath)

	otherArgs, err := idempotencyKey("POST", "v1/statuses", map[string]any{"status": "hello!"})
	require.NoError(err)
	assert.NotEqual(k1, otherArgs)
}

func TestIdempotencyHeaderGating(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	var gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		okJSON(w)
	})
	c.UseIdempotencyKey = true

	args := map[string]any{"status": "hello"}

	_, err := c.Post(ctx, "v1/statuses", args)
	require.NoError(err)
	want, err := idempotencyKey(http.MethodPost, "v1/statuses", args)
	require.NoError(err)
	assert.Equal(want, gotKey)

	// same triple, same key on a later call
	_, err = c.Post(ctx, "v1/statuses", args)
	require.NoError(err)
	assert.Equal(want, gotKey)

	// other POST endpoints are not fingerprinted
	_, err = c.Post(ctx, "v1/bookmarks", args)
	require.NoError(err)
	assert.Empty(gotKey)

	// neither are non-POST methods on a statuses path
	_, err = c.Do(ctx, Request{Method: "PUT", Path: "v1/statuses/1", Args: args})
	require.NoError(err)
	assert.Empty(gotKey)

	// toggle off, no key
	c.UseIdempotencyKey = false
	_, err = c.Post(ctx, "v1/statuses", args)
	require.NoError(err)
	assert.Empty(gotKey)
}
