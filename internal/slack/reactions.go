package slack

import "context"

type reactionTargetParams struct {
	Name      string `json:"name"`
	Channel   string `json:"channel,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	File      string `json:"file,omitempty"`
}

// AddReaction adds an emoji reaction to a message.
func (c *Client) AddReaction(ctx context.Context, name, channelID, timestamp string) error {
	_, err := call[Envelope](ctx, c, "reactions.add", reactionTargetParams{
		Name: name, Channel: channelID, Timestamp: timestamp,
	})
	return err
}

// RemoveReaction removes an emoji reaction from a message.
func (c *Client) RemoveReaction(ctx context.Context, name, channelID, timestamp string) error {
	_, err := call[Envelope](ctx, c, "reactions.remove", reactionTargetParams{
		Name: name, Channel: channelID, Timestamp: timestamp,
	})
	return err
}

type reactionsGetResponse struct {
	Envelope
	Type    string   `json:"type"`
	Channel string   `json:"channel,omitempty"`
	Message *Message `json:"message,omitempty"`
	File    *File    `json:"file,omitempty"`
}

// GetReactions fetches the reactions on a single message.
func (c *Client) GetReactions(ctx context.Context, channelID, timestamp string, full bool) (*ReactedItem, error) {
	params := struct {
		Channel   string `json:"channel"`
		Timestamp string `json:"timestamp"`
		Full      bool   `json:"full,omitempty"`
	}{channelID, timestamp, full}
	resp, err := call[reactionsGetResponse](ctx, c, "reactions.get", params)
	if err != nil {
		return nil, err
	}
	return &ReactedItem{
		Type:    resp.Type,
		Channel: resp.Channel,
		Message: resp.Message,
		File:    resp.File,
	}, nil
}

type reactionsListResponse struct {
	Envelope
	Items  []ReactedItem `json:"items"`
	Paging Paging        `json:"paging"`
}

// ListReactions lists items the calling (or given) user reacted to. This is
// a legacy page-counted endpoint: the page never carries a cursor.
func (c *Client) ListReactions(ctx context.Context, userID string, count, page int) (Page[ReactedItem], *Paging, error) {
	params := struct {
		User  string `json:"user,omitempty"`
		Count int    `json:"count,omitempty"`
		Page  int    `json:"page,omitempty"`
		Full  bool   `json:"full,omitempty"`
	}{User: userID, Count: count, Page: page}
	resp, err := call[reactionsListResponse](ctx, c, "reactions.list", params)
	if err != nil {
		return Page[ReactedItem]{}, nil, err
	}
	paging := resp.Paging
	return pageFromCounts(resp.Items, paging.Page, paging.Pages), &paging, nil
}
