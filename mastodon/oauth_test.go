package mastodon

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBearerToken(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("/oauth/token", r.URL.Path)
		q := r.URL.Query()
		assert.Equal("authorization_code", q.Get("grant_type"))
		assert.Equal("client-1", q.Get("client_id"))
		assert.Equal("s3cr3t", q.Get("client_secret"))
		assert.Equal("urn:ietf:wg:oauth:2.0:oob", q.Get("redirect_uri"))
		assert.Equal("read write", q.Get("scope"))
		assert.Equal("authcode", q.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"abc123","token_type":"Bearer"}`)
	})

	token, err := c.RequestBearerToken(context.Background(),
		"client-1", "s3cr3t", "urn:ietf:wg:oauth:2.0:oob", "read write", "authcode")
	require.NoError(err)
	assert.Equal("abc123", token)
}

func TestRequestBearerTokenMissingField(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token_type":"Bearer"}`)
	})

	_, err := c.RequestBearerToken(context.Background(), "id", "secret", "uri", "read", "code")
	assert.ErrorIs(err, ErrMissingAccessToken)
}

func TestRequestBearerTokenMalformed(t *testing.T) {
	assert := assert.New(t)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `oops`)
	})

	_, err := c.RequestBearerToken(context.Background(), "id", "secret", "uri", "read", "code")
	assert.ErrorIs(err, ErrResponseDecoding)
}

func TestRequestBearerTokenNoResponse(t *testing.T) {
	assert := assert.New(t)

	c := NewClient("127.0.0.1:1")
	_, err := c.RequestBearerToken(context.Background(), "id", "secret", "uri", "read", "code")
	assert.ErrorIs(err, ErrNoResponse)
	assert.Contains(err.Error(), "127.0.0.1:1")
}
