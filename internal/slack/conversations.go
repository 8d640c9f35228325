package slack

import "context"

// ListConversationsRequest are the parameters for conversations.list.
type ListConversationsRequest struct {
	Types           string `json:"types,omitempty"` // comma-separated: public_channel,private_channel,mpim,im
	ExcludeArchived bool   `json:"exclude_archived,omitempty"`
	Limit           int    `json:"limit,omitempty"`
	Cursor          string `json:"cursor,omitempty"`
	TeamID          string `json:"team_id,omitempty"`
}

type conversationsListResponse struct {
	Envelope
	Channels []Channel `json:"channels"`
}

// ListConversations lists conversations visible to the calling token.
func (c *Client) ListConversations(ctx context.Context, req ListConversationsRequest) (Page[Channel], error) {
	resp, err := call[conversationsListResponse](ctx, c, "conversations.list", req)
	if err != nil {
		return Page[Channel]{}, err
	}
	return pageFromMeta(resp.Channels, resp.ResponseMetadata), nil
}

type conversationInfoResponse struct {
	Envelope
	Channel Channel `json:"channel"`
}

// GetConversationInfo fetches metadata for a single conversation.
func (c *Client) GetConversationInfo(ctx context.Context, channelID string, includeNumMembers bool) (*Channel, error) {
	params := struct {
		Channel           string `json:"channel"`
		IncludeNumMembers bool   `json:"include_num_members,omitempty"`
	}{channelID, includeNumMembers}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.info", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// HistoryRequest are the parameters for conversations.history and
// conversations.replies.
type HistoryRequest struct {
	Channel   string `json:"channel"`
	TS        string `json:"ts,omitempty"` // thread parent, replies only
	Latest    string `json:"latest,omitempty"`
	Oldest    string `json:"oldest,omitempty"`
	Inclusive bool   `json:"inclusive,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Cursor    string `json:"cursor,omitempty"`
}

type historyResponse struct {
	Envelope
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"has_more"`
}

// GetHistory fetches a conversation's message history. History signals
// continuation with a boolean flag in addition to the cursor; an empty page
// with HasMore set is legal and not end-of-stream.
func (c *Client) GetHistory(ctx context.Context, req HistoryRequest) (Page[Message], error) {
	resp, err := call[historyResponse](ctx, c, "conversations.history", req)
	if err != nil {
		return Page[Message]{}, err
	}
	page := pageFromFlag(resp.Messages, resp.HasMore)
	if resp.HasMore && resp.ResponseMetadata != nil {
		page.NextCursor = resp.ResponseMetadata.NextCursor
	}
	return page, nil
}

// GetReplies fetches a thread identified by its parent timestamp.
func (c *Client) GetReplies(ctx context.Context, req HistoryRequest) (Page[Message], error) {
	resp, err := call[historyResponse](ctx, c, "conversations.replies", req)
	if err != nil {
		return Page[Message]{}, err
	}
	page := pageFromFlag(resp.Messages, resp.HasMore)
	if resp.HasMore && resp.ResponseMetadata != nil {
		page.NextCursor = resp.ResponseMetadata.NextCursor
	}
	return page, nil
}

type membersResponse struct {
	Envelope
	Members []string `json:"members"`
}

// GetConversationMembers lists member user IDs of a conversation.
func (c *Client) GetConversationMembers(ctx context.Context, channelID, cursor string, limit int) (Page[string], error) {
	params := struct {
		Channel string `json:"channel"`
		Cursor  string `json:"cursor,omitempty"`
		Limit   int    `json:"limit,omitempty"`
	}{channelID, cursor, limit}
	resp, err := call[membersResponse](ctx, c, "conversations.members", params)
	if err != nil {
		return Page[string]{}, err
	}
	return pageFromMeta(resp.Members, resp.ResponseMetadata), nil
}

// CreateConversation creates a channel, optionally private.
func (c *Client) CreateConversation(ctx context.Context, name string, isPrivate bool) (*Channel, error) {
	params := struct {
		Name      string `json:"name"`
		IsPrivate bool   `json:"is_private,omitempty"`
	}{name, isPrivate}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.create", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// RenameConversation renames a channel.
func (c *Client) RenameConversation(ctx context.Context, channelID, name string) (*Channel, error) {
	params := struct {
		Channel string `json:"channel"`
		Name    string `json:"name"`
	}{channelID, name}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.rename", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

type channelIDParams struct {
	Channel string `json:"channel"`
}

// ArchiveConversation archives a conversation.
func (c *Client) ArchiveConversation(ctx context.Context, channelID string) error {
	_, err := call[Envelope](ctx, c, "conversations.archive", channelIDParams{channelID})
	return err
}

// UnarchiveConversation restores an archived conversation.
func (c *Client) UnarchiveConversation(ctx context.Context, channelID string) error {
	_, err := call[Envelope](ctx, c, "conversations.unarchive", channelIDParams{channelID})
	return err
}

// JoinConversation joins an existing public channel.
func (c *Client) JoinConversation(ctx context.Context, channelID string) (*Channel, error) {
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.join", channelIDParams{channelID})
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// LeaveConversation leaves a conversation.
func (c *Client) LeaveConversation(ctx context.Context, channelID string) error {
	_, err := call[Envelope](ctx, c, "conversations.leave", channelIDParams{channelID})
	return err
}

// InviteToConversation invites users (comma-separated IDs) to a channel.
func (c *Client) InviteToConversation(ctx context.Context, channelID, userIDs string) (*Channel, error) {
	params := struct {
		Channel string `json:"channel"`
		Users   string `json:"users"`
	}{channelID, userIDs}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.invite", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// KickFromConversation removes a user from a conversation.
func (c *Client) KickFromConversation(ctx context.Context, channelID, userID string) error {
	params := struct {
		Channel string `json:"channel"`
		User    string `json:"user"`
	}{channelID, userID}
	_, err := call[Envelope](ctx, c, "conversations.kick", params)
	return err
}

// OpenConversation opens or resumes a DM or group DM with the given users
// (comma-separated IDs), or resumes an existing conversation by channel ID.
func (c *Client) OpenConversation(ctx context.Context, channelID, userIDs string) (*Channel, error) {
	params := struct {
		Channel string `json:"channel,omitempty"`
		Users   string `json:"users,omitempty"`
	}{channelID, userIDs}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.open", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// CloseConversation closes a DM or group DM.
func (c *Client) CloseConversation(ctx context.Context, channelID string) error {
	_, err := call[Envelope](ctx, c, "conversations.close", channelIDParams{channelID})
	return err
}

// SetConversationTopic sets a conversation's topic. Note that an empty
// topic is serialized the same as an absent one (the field is omitted), so
// clearing a topic this way is indistinguishable from not sending it.
func (c *Client) SetConversationTopic(ctx context.Context, channelID, topic string) (*Channel, error) {
	params := struct {
		Channel string `json:"channel"`
		Topic   string `json:"topic,omitempty"`
	}{channelID, topic}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.setTopic", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// SetConversationPurpose sets a conversation's purpose. The same
// empty-vs-absent caveat as SetConversationTopic applies.
func (c *Client) SetConversationPurpose(ctx context.Context, channelID, purpose string) (*Channel, error) {
	params := struct {
		Channel string `json:"channel"`
		Purpose string `json:"purpose,omitempty"`
	}{channelID, purpose}
	resp, err := call[conversationInfoResponse](ctx, c, "conversations.setPurpose", params)
	if err != nil {
		return nil, err
	}
	return &resp.Channel, nil
}

// MarkConversation moves the read cursor of a conversation to the given
// message timestamp.
func (c *Client) MarkConversation(ctx context.Context, channelID, ts string) error {
	params := struct {
		Channel string `json:"channel"`
		TS      string `json:"ts"`
	}{channelID, ts}
	_, err := call[Envelope](ctx, c, "conversations.mark", params)
	return err
}
