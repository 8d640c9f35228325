package slack

import "context"

type reminderResponse struct {
	Envelope
	Reminder Reminder `json:"reminder"`
}

// AddReminder creates a reminder. The time parameter accepts a Unix
// timestamp or natural language ("in 20 minutes", "every Tuesday"); the
// remote API does the parsing. An empty userID targets the token's user.
func (c *Client) AddReminder(ctx context.Context, text, time, userID string) (*Reminder, error) {
	params := struct {
		Text string `json:"text"`
		Time string `json:"time"`
		User string `json:"user,omitempty"`
	}{text, time, userID}
	resp, err := call[reminderResponse](ctx, c, "reminders.add", params)
	if err != nil {
		return nil, err
	}
	return &resp.Reminder, nil
}

type reminderIDParams struct {
	Reminder string `json:"reminder"`
}

// CompleteReminder marks a reminder as complete.
func (c *Client) CompleteReminder(ctx context.Context, reminderID string) error {
	_, err := call[Envelope](ctx, c, "reminders.complete", reminderIDParams{reminderID})
	return err
}

// DeleteReminder deletes a reminder.
func (c *Client) DeleteReminder(ctx context.Context, reminderID string) error {
	_, err := call[Envelope](ctx, c, "reminders.delete", reminderIDParams{reminderID})
	return err
}

// GetReminderInfo fetches a single reminder.
func (c *Client) GetReminderInfo(ctx context.Context, reminderID string) (*Reminder, error) {
	resp, err := call[reminderResponse](ctx, c, "reminders.info", reminderIDParams{reminderID})
	if err != nil {
		return nil, err
	}
	return &resp.Reminder, nil
}

type remindersListResponse struct {
	Envelope
	Reminders []Reminder `json:"reminders"`
}

// ListReminders lists the calling user's reminders. Unpaginated.
func (c *Client) ListReminders(ctx context.Context) ([]Reminder, error) {
	resp, err := call[remindersListResponse](ctx, c, "reminders.list", nil)
	if err != nil {
		return nil, err
	}
	return resp.Reminders, nil
}
