package slack

import "context"

type starParams struct {
	Channel   string `json:"channel,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	File      string `json:"file,omitempty"`
}

// AddStar stars a message or file.
func (c *Client) AddStar(ctx context.Context, channelID, timestamp, fileID string) error {
	_, err := call[Envelope](ctx, c, "stars.add", starParams{channelID, timestamp, fileID})
	return err
}

// RemoveStar removes a star from a message or file.
func (c *Client) RemoveStar(ctx context.Context, channelID, timestamp, fileID string) error {
	_, err := call[Envelope](ctx, c, "stars.remove", starParams{channelID, timestamp, fileID})
	return err
}

type starsListResponse struct {
	Envelope
	Items  []StarredItem `json:"items"`
	Paging Paging        `json:"paging"`
}

// ListStars lists the calling user's starred items. Legacy page-counted
// endpoint: no cursor, callers track the page number externally.
func (c *Client) ListStars(ctx context.Context, count, page int) (Page[StarredItem], *Paging, error) {
	params := struct {
		Count int `json:"count,omitempty"`
		Page  int `json:"page,omitempty"`
	}{count, page}
	resp, err := call[starsListResponse](ctx, c, "stars.list", params)
	if err != nil {
		return Page[StarredItem]{}, nil, err
	}
	paging := resp.Paging
	return pageFromCounts(resp.Items, paging.Page, paging.Pages), &paging, nil
}
