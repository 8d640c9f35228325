package slack

import "context"

type pinParams struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp,omitempty"`
}

// AddPin pins a message to a channel.
func (c *Client) AddPin(ctx context.Context, channelID, timestamp string) error {
	_, err := call[Envelope](ctx, c, "pins.add", pinParams{channelID, timestamp})
	return err
}

// RemovePin unpins a message from a channel.
func (c *Client) RemovePin(ctx context.Context, channelID, timestamp string) error {
	_, err := call[Envelope](ctx, c, "pins.remove", pinParams{channelID, timestamp})
	return err
}

type pinsListResponse struct {
	Envelope
	Items []PinnedItem `json:"items"`
}

// ListPins lists everything pinned to a channel. The endpoint is not
// paginated at all; the whole list comes back in one response.
func (c *Client) ListPins(ctx context.Context, channelID string) ([]PinnedItem, error) {
	params := struct {
		Channel string `json:"channel"`
	}{channelID}
	resp, err := call[pinsListResponse](ctx, c, "pins.list", params)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
