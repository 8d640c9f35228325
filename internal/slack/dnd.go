package slack

import "context"

type dndInfoResponse struct {
	Envelope
	DNDStatus
}

// GetDNDInfo fetches a user's do-not-disturb status. An empty userID
// targets the calling user.
func (c *Client) GetDNDInfo(ctx context.Context, userID string) (*DNDStatus, error) {
	params := struct {
		User string `json:"user,omitempty"`
	}{userID}
	resp, err := call[dndInfoResponse](ctx, c, "dnd.info", params)
	if err != nil {
		return nil, err
	}
	return &resp.DNDStatus, nil
}

type dndTeamInfoResponse struct {
	Envelope
	Users map[string]DNDStatus `json:"users"`
}

// GetDNDTeamInfo fetches DND status for several users at once
// (comma-separated IDs), keyed by user ID.
func (c *Client) GetDNDTeamInfo(ctx context.Context, userIDs string) (map[string]DNDStatus, error) {
	params := struct {
		Users string `json:"users"`
	}{userIDs}
	resp, err := call[dndTeamInfoResponse](ctx, c, "dnd.teamInfo", params)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

type snoozeResponse struct {
	Envelope
	SnoozeEnabled   bool  `json:"snooze_enabled"`
	SnoozeEndtime   int64 `json:"snooze_endtime,omitempty"`
	SnoozeRemaining int64 `json:"snooze_remaining,omitempty"`
}

// SetSnooze turns on notification snoozing for the given number of minutes
// and returns the resulting snooze state.
func (c *Client) SetSnooze(ctx context.Context, minutes int) (*DNDStatus, error) {
	params := struct {
		NumMinutes int `json:"num_minutes"`
	}{minutes}
	resp, err := call[snoozeResponse](ctx, c, "dnd.setSnooze", params)
	if err != nil {
		return nil, err
	}
	return &DNDStatus{
		SnoozeEnabled:   resp.SnoozeEnabled,
		SnoozeEndtime:   resp.SnoozeEndtime,
		SnoozeRemaining: resp.SnoozeRemaining,
	}, nil
}

// EndSnooze ends the current snooze and returns the resulting DND state.
func (c *Client) EndSnooze(ctx context.Context) (*DNDStatus, error) {
	resp, err := call[dndInfoResponse](ctx, c, "dnd.endSnooze", nil)
	if err != nil {
		return nil, err
	}
	return &resp.DNDStatus, nil
}

// EndDND ends the user's current DND session (scheduled or snoozed).
func (c *Client) EndDND(ctx context.Context) error {
	_, err := call[Envelope](ctx, c, "dnd.endDnd", nil)
	return err
}

// SnoozeOn is the legacy on/off surface over dnd.setSnooze. It
// intentionally discards the response body; callers wanting the resulting
// state must use SetSnooze.
func (c *Client) SnoozeOn(ctx context.Context, minutes int) error {
	_, err := c.SetSnooze(ctx, minutes)
	return err
}

// SnoozeOff is the legacy counterpart of SnoozeOn over dnd.endSnooze,
// discarding the response body.
func (c *Client) SnoozeOff(ctx context.Context) error {
	_, err := c.EndSnooze(ctx)
	return err
}
