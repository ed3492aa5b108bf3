package mastodon

import (
	"context"
	"encoding/json"
)

// StatusParams are the commonly used fields of POST /api/v1/statuses.
type StatusParams struct {
	Status      string   `url:"status"`
	InReplyToID string   `url:"in_reply_to_id,omitempty"`
	MediaIDs    []string `url:"media_ids,omitempty"`
	Sensitive   bool     `url:"sensitive,omitempty"`
	SpoilerText string   `url:"spoiler_text,omitempty"`
	Visibility  string   `url:"visibility,omitempty"`
	Language    string   `url:"language,omitempty"`
}

// PostStatus publishes a status. When the client has idempotency keys
// enabled the request carries one, derived from these parameters.
func (c *Client) PostStatus(ctx context.Context, params StatusParams) (*json.RawMessage, error) {
	args, err := ParamValues(params)
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, "v1/statuses", args)
}
