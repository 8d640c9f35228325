package slack

import "context"

type emojiListResponse struct {
	Envelope
	Emoji map[string]string `json:"emoji"`
}

// ListEmoji lists the workspace's custom emoji, mapping name to image URL
// (or an "alias:name" reference).
func (c *Client) ListEmoji(ctx context.Context) (map[string]string, error) {
	resp, err := call[emojiListResponse](ctx, c, "emoji.list", nil)
	if err != nil {
		return nil, err
	}
	return resp.Emoji, nil
}
