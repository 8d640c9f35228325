package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

// itemTools covers pins, stars, and bookmarks: the per-channel and
// per-user item collections.
func (r *Registry) itemTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_pin_message",
				mcp.WithDescription("Pin a message to its channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, timestamp, err := channelAndTS(req)
				if err != nil {
					return "", err
				}
				if err := c.AddPin(ctx, channelID, timestamp); err != nil {
					return "", err
				}
				return fmt.Sprintf("Pinned %s in %s.", timestamp, channelID), nil
			},
		},
		{
			def: mcp.NewTool("slack_unpin_message",
				mcp.WithDescription("Remove a pin from a message."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel containing the message.")),
				mcp.WithString("timestamp", mcp.Required(), mcp.Description("Timestamp of the message.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, timestamp, err := channelAndTS(req)
				if err != nil {
					return "", err
				}
				if err := c.RemovePin(ctx, channelID, timestamp); err != nil {
					return "", err
				}
				return fmt.Sprintf("Unpinned %s in %s.", timestamp, channelID), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_pins",
				mcp.WithDescription("List the pinned items in a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				items, err := c.ListPins(ctx, channelID)
				if err != nil {
					return "", err
				}
				return format.Pins(items), nil
			},
		},
		{
			def: mcp.NewTool("slack_add_star",
				mcp.WithDescription("Star a message or file for the calling user."),
				mcp.WithString("channel_id", mcp.Description("Channel, for starring a message.")),
				mcp.WithString("timestamp", mcp.Description("Message timestamp, for starring a message.")),
				mcp.WithString("file_id", mcp.Description("File ID, for starring a file.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				if err := c.AddStar(ctx, req.GetString("channel_id", ""),
					req.GetString("timestamp", ""), req.GetString("file_id", "")); err != nil {
					return "", err
				}
				return "Starred.", nil
			},
		},
		{
			def: mcp.NewTool("slack_remove_star",
				mcp.WithDescription("Remove a star from a message or file."),
				mcp.WithString("channel_id", mcp.Description("Channel, for a message star.")),
				mcp.WithString("timestamp", mcp.Description("Message timestamp, for a message star.")),
				mcp.WithString("file_id", mcp.Description("File ID, for a file star.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				if err := c.RemoveStar(ctx, req.GetString("channel_id", ""),
					req.GetString("timestamp", ""), req.GetString("file_id", "")); err != nil {
					return "", err
				}
				return "Star removed.", nil
			},
		},
		{
			def: mcp.NewTool("slack_list_stars",
				mcp.WithDescription("List the calling user's starred items. Page-counted: continue with page=N."),
				mcp.WithNumber("count", mcp.Description("Items per page (default 100).")),
				mcp.WithNumber("page", mcp.Description("Page number, starting at 1.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				page, paging, err := c.ListStars(ctx, req.GetInt("count", 100), req.GetInt("page", 0))
				if err != nil {
					return "", err
				}
				return format.Stars(page, paging), nil
			},
		},
		{
			def: mcp.NewTool("slack_add_bookmark",
				mcp.WithDescription("Add a link bookmark to a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("title", mcp.Required(), mcp.Description("Bookmark title.")),
				mcp.WithString("link", mcp.Required(), mcp.Description("URL to bookmark.")),
				mcp.WithString("emoji", mcp.Description("Emoji shown next to the bookmark.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				title, err := req.RequireString("title")
				if err != nil {
					return "", err
				}
				link, err := req.RequireString("link")
				if err != nil {
					return "", err
				}
				bm, err := c.AddBookmark(ctx, channelID, title, link, req.GetString("emoji", ""))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Added bookmark %s (%s).", bm.ID, bm.Title), nil
			},
		},
		{
			def: mcp.NewTool("slack_edit_bookmark",
				mcp.WithDescription("Edit a channel bookmark. Empty fields are left unchanged."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("bookmark_id", mcp.Required(), mcp.Description("Bookmark ID.")),
				mcp.WithString("title", mcp.Description("New title.")),
				mcp.WithString("link", mcp.Description("New URL.")),
				mcp.WithString("emoji", mcp.Description("New emoji.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				bookmarkID, err := req.RequireString("bookmark_id")
				if err != nil {
					return "", err
				}
				bm, err := c.EditBookmark(ctx, channelID, bookmarkID,
					req.GetString("title", ""), req.GetString("link", ""), req.GetString("emoji", ""))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Updated bookmark %s (%s).", bm.ID, bm.Title), nil
			},
		},
		{
			def: mcp.NewTool("slack_remove_bookmark",
				mcp.WithDescription("Remove a bookmark from a channel."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
				mcp.WithString("bookmark_id", mcp.Required(), mcp.Description("Bookmark ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				bookmarkID, err := req.RequireString("bookmark_id")
				if err != nil {
					return "", err
				}
				if err := c.RemoveBookmark(ctx, channelID, bookmarkID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Removed bookmark %s.", bookmarkID), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_bookmarks",
				mcp.WithDescription("List a channel's bookmarks."),
				mcp.WithString("channel_id", mcp.Required(), mcp.Description("Channel ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				channelID, err := req.RequireString("channel_id")
				if err != nil {
					return "", err
				}
				bookmarks, err := c.ListBookmarks(ctx, channelID)
				if err != nil {
					return "", err
				}
				return format.Bookmarks(bookmarks), nil
			},
		},
	}
}

func channelAndTS(req mcp.CallToolRequest) (string, string, error) {
	channelID, err := req.RequireString("channel_id")
	if err != nil {
		return "", "", err
	}
	timestamp, err := req.RequireString("timestamp")
	if err != nil {
		return "", "", err
	}
	return channelID, timestamp, nil
}
