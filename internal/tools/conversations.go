package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) conversationTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_list_channels",
				mcp.WithDescription("List channels, DMs, and group DMs visible to the token."),
				mcp.WithString("types", mcp.Description("Comma-separated types: public_channel, private_channel, mpim, im. Defaults to public_channel.")),
				mcp.WithBoolean("exclude_archived", mcp.Description("Skip archived channels.")),
				mcp.WithNumber("limit", mcp.Description("Max results per page (default 100).")),
				mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous call.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				page, err := c.ListConversations(ctx, slack.ListConversationsRequest{
					Types:           req.GetString("types", ""),
					ExcludeArchived: req.GetBool("exclude_archived", false),
					Limit:           req.GetInt("limit", 100),
					Cursor:          req.GetString("cursor", ""),
				})
				if err != nil {
					return "", err
				}
				return format.Channels(page), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_channel",
				mcp.WithDescription("Get metadata for one channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID, e.g. C0123456789.")),
				mcp.WithBoolean("include_num_members", mcp.Description("Include the member count.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				ch, err := c.GetConversationInfo(ctx, channelID, req.GetBool("include_num_members", true))
				if err != nil {
					return "", err
				}
				return format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_channel_history",
				mcp.WithDescription("Fetch a channel's message history, newest first."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("oldest", mcp.Description("Only messages after this timestamp.")),
				mcp.WithString("latest", mcp.Description("Only messages before this timestamp.")),
				mcp.WithNumber("limit", mcp.Description("Max messages per page (default 100).")),
				mcp.WithString("cursor", mcp.Description("Pagination cursor.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				page, err := c.GetHistory(ctx, slack.HistoryRequest{
					Channel: channelID,
					Oldest:  req.GetString("oldest", ""),
					Latest:  req.GetString("latest", ""),
					Limit:   req.GetInt("limit", 100),
					Cursor:  req.GetString("cursor", ""),
				})
				if err != nil {
					return "", err
				}
				return format.Messages(page), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_thread_replies",
				mcp.WithDescription("Fetch the replies in a message thread."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("thread_ts", mcp.Required(), mcp.Description("Timestamp of the thread's parent message.")),
				mcp.WithNumber("limit", mcp.Description("Max messages per page (default 100).")),
				mcp.WithString("cursor", mcp.Description("Pagination cursor.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				threadTS, err := req.RequireString("thread_ts")
				if err != nil {
					return "", err
				}
				page, err := c.GetReplies(ctx, slack.HistoryRequest{
					Channel: channelID,
					TS:      threadTS,
					Limit:   req.GetInt("limit", 100),
					Cursor:  req.GetString("cursor", ""),
				})
				if err != nil {
					return "", err
				}
				return format.Messages(page), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_channel_members",
				mcp.WithDescription("List the member user IDs of a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithNumber("limit", mcp.Description("Max members per page (default 100).")),
				mcp.WithString("cursor", mcp.Description("Pagination cursor.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				page, err := c.GetConversationMembers(ctx, channelID,
					req.GetString("cursor", ""), req.GetInt("limit", 100))
				if err != nil {
					return "", err
				}
				return format.Members(page), nil
			},
		},
		{
			def: mcp.NewTool("slack_create_channel",
				mcp.WithDescription("Create a channel."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Channel name, lowercase without #.")),
				mcp.WithBoolean("is_private", mcp.Description("Create as a private channel.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				name, err := req.RequireString("name")
				if err != nil {
					return "", err
				}
				ch, err := c.CreateConversation(ctx, name, req.GetBool("is_private", false))
				if err != nil {
					return "", err
				}
				return format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_rename_channel",
				mcp.WithDescription("Rename a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("name", mcp.Required(), mcp.Description("New channel name.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				name, err := req.RequireString("name")
				if err != nil {
					return "", err
				}
				ch, err := c.RenameConversation(ctx, channelID, name)
				if err != nil {
					return "", err
				}
				return format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_archive_channel",
				mcp.WithDescription("Archive a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
			),
			fn: channelAction("archived", (*slack.Client).ArchiveConversation),
		},
		{
			def: mcp.NewTool("slack_unarchive_channel",
				mcp.WithDescription("Unarchive a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
			),
			fn: channelAction("unarchived", (*slack.Client).UnarchiveConversation),
		},
		{
			def: mcp.NewTool("slack_join_channel",
				mcp.WithDescription("Join a public channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				ch, err := c.JoinConversation(ctx, channelID)
				if err != nil {
					return "", err
				}
				return "Joined.\n" + format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_leave_channel",
				mcp.WithDescription("Leave a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
			),
			fn: channelAction("left", (*slack.Client).LeaveConversation),
		},
		{
			def: mcp.NewTool("slack_invite_to_channel",
				mcp.WithDescription("Invite users to a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("user_ids", mcp.Required(), mcp.Description("Comma-separated user IDs, up to 1000.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				userIDs, err := req.RequireString("user_ids")
				if err != nil {
					return "", err
				}
				ch, err := c.InviteToConversation(ctx, channelID, userIDs)
				if err != nil {
					return "", err
				}
				return "Invited.\n" + format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_kick_from_channel",
				mcp.WithDescription("Remove a user from a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID to remove.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				userID, err := req.RequireString("user_id")
				if err != nil {
					return "", err
				}
				if err := c.KickFromConversation(ctx, channelID, userID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Removed %s from %s.", userID, channelID), nil
			},
		},
		{
			def: mcp.NewTool("slack_open_conversation",
				mcp.WithDescription("Open (or resume) a DM or group DM with users."),
				mcp.WithString("user_ids", mcp.Required(), mcp.Description("Comma-separated user IDs. One opens a DM, several a group DM.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				userIDs, err := req.RequireString("user_ids")
				if err != nil {
					return "", err
				}
				ch, err := c.OpenConversation(ctx, "", userIDs)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Conversation %s is open.", ch.ID), nil
			},
		},
		{
			def: mcp.NewTool("slack_close_conversation",
				mcp.WithDescription("Close a DM or group DM."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Conversation ID.")),
			),
			fn: channelAction("closed", (*slack.Client).CloseConversation),
		},
		{
			def: mcp.NewTool("slack_set_channel_topic",
				mcp.WithDescription("Set a channel's topic."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("topic", mcp.Required(), mcp.Description("New topic text.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				topic, err := req.RequireString("topic")
				if err != nil {
					return "", err
				}
				ch, err := c.SetConversationTopic(ctx, channelID, topic)
				if err != nil {
					return "", err
				}
				return format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_set_channel_purpose",
				mcp.WithDescription("Set a channel's purpose."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("purpose", mcp.Required(), mcp.Description("New purpose text.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				purpose, err := req.RequireString("purpose")
				if err != nil {
					return "", err
				}
				ch, err := c.SetConversationPurpose(ctx, channelID, purpose)
				if err != nil {
					return "", err
				}
				return format.Channel(ch), nil
			},
		},
		{
			def: mcp.NewTool("slack_mark_channel",
				mcp.WithDescription("Move the read cursor in a channel to a timestamp."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("ts", mcp.Required(), mcp.Description("Timestamp to mark as read up to.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				ts, err := req.RequireString("ts")
				if err != nil {
					return "", err
				}
				if err := c.MarkConversation(ctx, channelID, ts); err != nil {
					return "", err
				}
				return fmt.Sprintf("Marked %s read up to %s.", channelID, ts), nil
			},
		},
	}
}

// channelAction builds the handler body for tools that take only a
// channel_id and return no entity.
func channelAction(verb string, op func(*slack.Client, context.Context, string) error) handlerFunc {
	return func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
		channelID, err := req.RequireString("channel_id")
		if err != nil {
			return "", err
		}
		if err := op(c, ctx, channelID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Channel %s %s.", channelID, verb), nil
	}
}
