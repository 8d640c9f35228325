package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) reactionTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_add_reaction",
				mcp.WithDescription("Add an emoji reaction to a message."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Emoji name without colons, e.g. thumbsup.")),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message.")),
			),
			fn: reactionAction("Added", (*slack.Client).AddReaction),
		},
		{
			def: mcp.NewTool("slack_remove_reaction",
				mcp.WithDescription("Remove an emoji reaction from a message."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Emoji name without colons.")),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message.")),
			),
			fn: reactionAction("Removed", (*slack.Client).RemoveReaction),
		},
		{
			def: mcp.NewTool("slack_get_reactions",
				mcp.WithDescription("List the reactions on a message."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message.")),
				mcp.WithBoolean("full", mcp.Description("Include the complete reacting-user lists.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				timestamp, err := req.RequireString("timestamp")
				if err != nil {
					return "", err
				}
				item, err := c.GetReactions(ctx, channelID, timestamp, req.GetBool("full", false))
				if err != nil {
					return "", err
				}
				return format.Reactions(item), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_reactions",
				mcp.WithDescription("List items a user has reacted to. Page-counted: continue with page=N."),
				mcp.WithString("user_id", mcp.Description("User whose reactions to list; defaults to the calling user.")),
				mcp.WithNumber("count", mcp.Description("Items per page (default 100).")),
				mcp.WithNumber("page", mcp.Description("Page number, starting at 1.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				page, paging, err := c.ListReactions(ctx,
					req.GetString("user_id", ""), req.GetInt("count", 100), req.GetInt("page", 0))
				if err != nil {
					return "", err
				}
				return format.ReactedItems(page, paging), nil
			},
		},
	}
}

// reactionAction builds the handler body for add/remove, which share a
// signature.
func reactionAction(verb string, op func(*slack.Client, context.Context, string, string, string) error) handlerFunc {
	return func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return "", err
		}
		channelID, err := req.RequireString("channel_id")
		if err != nil {
			return "", err
		}
		timestamp, err := req.RequireString("timestamp")
		if err != nil {
			return "", err
		}
		if err := op(c, ctx, name, channelID, timestamp); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s :%s: on %s in %s.", verb, name, timestamp, channelID), nil
	}
}
