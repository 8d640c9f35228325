package slack

import "context"

type bookmarkResponse struct {
	Envelope
	Bookmark Bookmark `json:"bookmark"`
}

// AddBookmark adds a link bookmark to a channel.
func (c *Client) AddBookmark(ctx context.Context, channelID, title, link, emoji string) (*Bookmark, error) {
	params := struct {
		ChannelID string `json:"channel_id"`
		Title     string `json:"title"`
		Type      string `json:"type"`
		Link      string `json:"link,omitempty"`
		Emoji     string `json:"emoji,omitempty"`
	}{ChannelID: channelID, Title: title, Type: "link", Link: link, Emoji: emoji}
	resp, err := call[bookmarkResponse](ctx, c, "bookmarks.add", params)
	if err != nil {
		return nil, err
	}
	return &resp.Bookmark, nil
}

// EditBookmark updates a bookmark's title, link, or emoji. Empty fields are
// omitted from the request and left unchanged remotely.
func (c *Client) EditBookmark(ctx context.Context, channelID, bookmarkID, title, link, emoji string) (*Bookmark, error) {
	params := struct {
		ChannelID  string `json:"channel_id"`
		BookmarkID string `json:"bookmark_id"`
		Title      string `json:"title,omitempty"`
		Link       string `json:"link,omitempty"`
		Emoji      string `json:"emoji,omitempty"`
	}{channelID, bookmarkID, title, link, emoji}
	resp, err := call[bookmarkResponse](ctx, c, "bookmarks.edit", params)
	if err != nil {
		return nil, err
	}
	return &resp.Bookmark, nil
}

// RemoveBookmark removes a bookmark from a channel.
func (c *Client) RemoveBookmark(ctx context.Context, channelID, bookmarkID string) error {
	params := struct {
		ChannelID  string `json:"channel_id"`
		BookmarkID string `json:"bookmark_id"`
	}{channelID, bookmarkID}
	_, err := call[Envelope](ctx, c, "bookmarks.remove", params)
	return err
}

type bookmarksListResponse struct {
	Envelope
	Bookmarks []Bookmark `json:"bookmarks"`
}

// ListBookmarks lists a channel's bookmarks. Unpaginated.
func (c *Client) ListBookmarks(ctx context.Context, channelID string) ([]Bookmark, error) {
	params := struct {
		ChannelID string `json:"channel_id"`
	}{channelID}
	resp, err := call[bookmarksListResponse](ctx, c, "bookmarks.list", params)
	if err != nil {
		return nil, err
	}
	return resp.Bookmarks, nil
}
