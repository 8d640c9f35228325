package slack

import "context"

// PostMessageRequest are the parameters for chat.postMessage. Absent
// optional fields are omitted from the outgoing body, never sent as null,
// so the API cannot misread them as "clear this field". No local validation
// is applied: an empty text with no blocks or attachments is still sent and
// left for the API to accept or reject.
type PostMessageRequest struct {
	Channel        string       `json:"channel"`
	Text           string       `json:"text,omitempty"`
	Blocks         []any        `json:"blocks,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	ThreadTS       string       `json:"thread_ts,omitempty"`
	ReplyBroadcast bool         `json:"reply_broadcast,omitempty"`
	Markdown       bool         `json:"mrkdwn,omitempty"`
	UnfurlLinks    bool         `json:"unfurl_links,omitempty"`
	UnfurlMedia    bool         `json:"unfurl_media,omitempty"`
	IconEmoji      string       `json:"icon_emoji,omitempty"`
	Username       string       `json:"username,omitempty"`
}

type postMessageResponse struct {
	Envelope
	Channel string  `json:"channel"`
	TS      string  `json:"ts"`
	Message Message `json:"message"`
}

// PostMessage posts a message to a conversation and returns the materialized
// message with its timestamp.
func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest) (*Message, error) {
	resp, err := call[postMessageResponse](ctx, c, "chat.postMessage", req)
	if err != nil {
		return nil, err
	}
	msg := resp.Message
	msg.Channel = resp.Channel
	if msg.TS == "" {
		msg.TS = resp.TS
	}
	return &msg, nil
}

// PostEphemeral posts a message visible only to one user in a conversation.
// Returns the ephemeral message timestamp.
func (c *Client) PostEphemeral(ctx context.Context, channelID, userID, text string) (string, error) {
	params := struct {
		Channel string `json:"channel"`
		User    string `json:"user"`
		Text    string `json:"text,omitempty"`
	}{channelID, userID, text}
	resp, err := call[postMessageResponse](ctx, c, "chat.postEphemeral", params)
	if err != nil {
		return "", err
	}
	return resp.TS, nil
}

// UpdateMessageRequest are the parameters for chat.update.
type UpdateMessageRequest struct {
	Channel     string       `json:"channel"`
	TS          string       `json:"ts"`
	Text        string       `json:"text,omitempty"`
	Blocks      []any        `json:"blocks,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// UpdateMessage edits an existing message in place.
func (c *Client) UpdateMessage(ctx context.Context, req UpdateMessageRequest) (*Message, error) {
	resp, err := call[postMessageResponse](ctx, c, "chat.update", req)
	if err != nil {
		return nil, err
	}
	msg := resp.Message
	msg.Channel = resp.Channel
	if msg.TS == "" {
		msg.TS = resp.TS
	}
	return &msg, nil
}

// DeleteMessage deletes a message by channel and timestamp.
func (c *Client) DeleteMessage(ctx context.Context, channelID, ts string) error {
	params := struct {
		Channel string `json:"channel"`
		TS      string `json:"ts"`
	}{channelID, ts}
	_, err := call[Envelope](ctx, c, "chat.delete", params)
	return err
}

// MeMessage posts a /me-style action message.
func (c *Client) MeMessage(ctx context.Context, channelID, text string) error {
	params := struct {
		Channel string `json:"channel"`
		Text    string `json:"text"`
	}{channelID, text}
	_, err := call[Envelope](ctx, c, "chat.meMessage", params)
	return err
}

type permalinkResponse struct {
	Envelope
	Channel   string `json:"channel"`
	Permalink string `json:"permalink"`
}

// GetPermalink resolves a message's shareable permalink.
func (c *Client) GetPermalink(ctx context.Context, channelID, messageTS string) (string, error) {
	params := struct {
		Channel   string `json:"channel"`
		MessageTS string `json:"message_ts"`
	}{channelID, messageTS}
	resp, err := call[permalinkResponse](ctx, c, "chat.getPermalink", params)
	if err != nil {
		return "", err
	}
	return resp.Permalink, nil
}

// ScheduleMessageRequest are the parameters for chat.scheduleMessage.
type ScheduleMessageRequest struct {
	Channel  string `json:"channel"`
	Text     string `json:"text,omitempty"`
	PostAt   int64  `json:"post_at"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

type scheduleMessageResponse struct {
	Envelope
	Channel            string  `json:"channel"`
	ScheduledMessageID string  `json:"scheduled_message_id"`
	PostAt             int64   `json:"post_at"`
	Message            Message `json:"message"`
}

// ScheduleMessage queues a message for future delivery.
func (c *Client) ScheduleMessage(ctx context.Context, req ScheduleMessageRequest) (*ScheduledMessage, error) {
	resp, err := call[scheduleMessageResponse](ctx, c, "chat.scheduleMessage", req)
	if err != nil {
		return nil, err
	}
	return &ScheduledMessage{
		ID:        resp.ScheduledMessageID,
		ChannelID: resp.Channel,
		PostAt:    resp.PostAt,
		Text:      resp.Message.Text,
	}, nil
}

// DeleteScheduledMessage cancels a scheduled message before delivery.
func (c *Client) DeleteScheduledMessage(ctx context.Context, channelID, scheduledMessageID string) error {
	params := struct {
		Channel            string `json:"channel"`
		ScheduledMessageID string `json:"scheduled_message_id"`
	}{channelID, scheduledMessageID}
	_, err := call[Envelope](ctx, c, "chat.deleteScheduledMessage", params)
	return err
}

type scheduledMessagesListResponse struct {
	Envelope
	ScheduledMessages []ScheduledMessage `json:"scheduled_messages"`
}

// ListScheduledMessages lists messages queued for future delivery.
func (c *Client) ListScheduledMessages(ctx context.Context, channelID, cursor string, limit int) (Page[ScheduledMessage], error) {
	params := struct {
		Channel string `json:"channel,omitempty"`
		Cursor  string `json:"cursor,omitempty"`
		Limit   int    `json:"limit,omitempty"`
	}{channelID, cursor, limit}
	resp, err := call[scheduledMessagesListResponse](ctx, c, "chat.scheduledMessages.list", params)
	if err != nil {
		return Page[ScheduledMessage]{}, err
	}
	return pageFromMeta(resp.ScheduledMessages, resp.ResponseMetadata), nil
}
