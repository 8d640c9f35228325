package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) chatTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_post_message",
				mcp.WithDescription("Post a message to a channel, optionally into a thread."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID to post into.")),
				mcp.WithString("text", mcp.Required(), mcp.Description("Message text (mrkdwn).")),
				mcp.WithString("thread_ts", mcp.Description("Parent timestamp to reply in a thread.")),
				mcp.WithBoolean("reply_broadcast", mcp.Description("Also show the thread reply in the channel.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				text, err := req.RequireString("text")
				if err != nil {
					return "", err
				}
				msg, err := c.PostMessage(ctx, slack.PostMessageRequest{
					Channel:        channelID,
					Text:           text,
					ThreadTS:       req.GetString("thread_ts", ""),
					ReplyBroadcast: req.GetBool("reply_broadcast", false),
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Posted message %s to %s.", msg.TS, msg.Channel), nil
			},
		},
		{
			def: mcp.NewTool("slack_post_ephemeral",
				mcp.WithDescription("Post a message visible only to one user in a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("user_id", mcp.Required(), mcp.Description("User who will see the message.")),
				mcp.WithString("text", mcp.Required(), mcp.Description("Message text.")),
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
				text, err := req.RequireString("text")
				if err != nil {
					return "", err
				}
				ts, err := c.PostEphemeral(ctx, channelID, userID, text)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Posted ephemeral message %s to %s for %s.", ts, channelID, userID), nil
			},
		},
		{
			def: mcp.NewTool("slack_update_message",
				mcp.WithDescription("Edit an existing message."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("ts", mcp.Required(), mcp.Description("Timestamp of the message to edit.")),
				mcp.WithString("text", mcp.Required(), mcp.Description("Replacement text.")),
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
				text, err := req.RequireString("text")
				if err != nil {
					return "", err
				}
				msg, err := c.UpdateMessage(ctx, slack.UpdateMessageRequest{
					Channel: channelID,
					TS:      ts,
					Text:    text,
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Updated message %s in %s.", msg.TS, msg.Channel), nil
			},
		},
		{
			def: mcp.NewTool("slack_delete_message",
				mcp.WithDescription("Delete a message."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("ts", mcp.Required(), mcp.Description("Timestamp of the message to delete.")),
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
				if err := c.DeleteMessage(ctx, channelID, ts); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted message %s from %s.", ts, channelID), nil
			},
		},
		{
			def: mcp.NewTool("slack_me_message",
				mcp.WithDescription("Send a /me action message to a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("text", mcp.Required(), mcp.Description("Action text.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				text, err := req.RequireString("text")
				if err != nil {
					return "", err
				}
				if err := c.MeMessage(ctx, channelID, text); err != nil {
					return "", err
				}
				return fmt.Sprintf("Sent me-message to %s.", channelID), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_permalink",
				mcp.WithDescription("Get a permanent link to a message."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("message_ts", mcp.Required(), mcp.Description("Timestamp of the message.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				messageTS, err := req.RequireString("message_ts")
				if err != nil {
					return "", err
				}
				link, err := c.GetPermalink(ctx, channelID, messageTS)
				if err != nil {
					return "", err
				}
				return link, nil
			},
		},
		{
			def: mcp.NewTool("slack_schedule_message",
				mcp.WithDescription("Schedule a message for future delivery."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("text", mcp.Required(), mcp.Description("Message text.")),
				mcp.WithNumber("post_at", mcp.Required(), mcp.Description("Unix timestamp to deliver at.")),
				mcp.WithString("thread_ts", mcp.Description("Parent timestamp to reply in a thread.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				text, err := req.RequireString("text")
				if err != nil {
					return "", err
				}
				postAt, err := req.RequireInt("post_at")
				if err != nil {
					return "", err
				}
				sched, err := c.ScheduleMessage(ctx, slack.ScheduleMessageRequest{
					Channel:  channelID,
					Text:     text,
					PostAt:   int64(postAt),
					ThreadTS: req.GetString("thread_ts", ""),
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Scheduled message %s in %s for delivery at %d.",
					sched.ID, sched.ChannelID, sched.PostAt), nil
			},
		},
		{
			def: mcp.NewTool("slack_delete_scheduled_message",
				mcp.WithDescription("Cancel a scheduled message before delivery."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel the message was scheduled in.")),
				mcp.WithString("scheduled_message_id", mcp.Required(), mcp.Description("ID returned when the message was scheduled.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				id, err := req.RequireString("scheduled_message_id")
				if err != nil {
					return "", err
				}
				if err := c.DeleteScheduledMessage(ctx, channelID, id); err != nil {
					return "", err
				}
				return fmt.Sprintf("Cancelled scheduled message %s.", id), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_scheduled_messages",
				mcp.WithDescription("List messages scheduled for future delivery."),
				mcp.WithString("channel_id", mcp.Description("Limit to one channel.")),
				mcp.WithNumber("limit", mcp.Description("Max results per page (default 100).")),
				mcp.WithString("cursor", mcp.Description("Pagination cursor.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				page, err := c.ListScheduledMessages(ctx,
					req.GetString("channel_id", ""), req.GetString("cursor", ""), req.GetInt("limit", 100))
				if err != nil {
					return "", err
				}
				return format.ScheduledMessages(page), nil
			},
		},
	}
}
