package slack

import "context"

type teamInfoResponse struct {
	Envelope
	Team Team `json:"team"`
}

// GetTeamInfo fetches the workspace's own metadata.
func (c *Client) GetTeamInfo(ctx context.Context) (*Team, error) {
	resp, err := call[teamInfoResponse](ctx, c, "team.info", nil)
	if err != nil {
		return nil, err
	}
	return &resp.Team, nil
}
