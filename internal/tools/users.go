package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) userTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_list_users",
				mcp.WithDescription("List workspace members, including deactivated accounts."),
				mcp.WithNumber("limit", mcp.Description("Max users per page (default 100).")),
				mcp.WithString("cursor", mcp.Description("Pagination cursor.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				page, err := c.ListUsers(ctx, req.GetString("cursor", ""), req.GetInt("limit", 100), false)
				if err != nil {
					return "", err
				}
				return format.Users(page), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_user",
				mcp.WithDescription("Get one user's profile and flags."),
				mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID, e.g. U0123456789.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				userID, err := req.RequireString("user_id")
				if err != nil {
					return "", err
				}
				u, err := c.GetUserInfo(ctx, userID)
				if err != nil {
					return "", err
				}
				return format.User(u), nil
			},
		},
		{
			def: mcp.NewTool("slack_lookup_user_by_email",
				mcp.WithDescription("Find a user by email address."),
				mcp.WithString("email", mcp.Required(), mcp.Description("Email address to look up.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				email, err := req.RequireString("email")
				if err != nil {
					return "", err
				}
				u, err := c.LookupUserByEmail(ctx, email)
				if err != nil {
					return "", err
				}
				return format.User(u), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_presence",
				mcp.WithDescription("Get a user's presence (active or away)."),
				mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				userID, err := req.RequireString("user_id")
				if err != nil {
					return "", err
				}
				p, err := c.GetUserPresence(ctx, userID)
				if err != nil {
					return "", err
				}
				return format.Presence(p), nil
			},
		},
		{
			def: mcp.NewTool("slack_set_presence",
				mcp.WithDescription("Set the calling user's presence to auto or away."),
				mcp.WithString("presence", mcp.Required(), mcp.Description("Either \"auto\" or \"away\".")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				presence, err := req.RequireString("presence")
				if err != nil {
					return "", err
				}
				if err := c.SetUserPresence(ctx, presence); err != nil {
					return "", err
				}
				return fmt.Sprintf("Presence set to %s.", presence), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_user_profile",
				mcp.WithDescription("Get a user's profile fields."),
				mcp.WithString("user_id", mcp.Required(), mcp.Description("User ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				userID, err := req.RequireString("user_id")
				if err != nil {
					return "", err
				}
				p, err := c.GetUserProfile(ctx, userID, false)
				if err != nil {
					return "", err
				}
				return format.Profile(p), nil
			},
		},
		{
			def: mcp.NewTool("slack_set_user_profile",
				mcp.WithDescription("Update the calling user's profile. Empty fields are left unchanged; to clear a field pass a single space."),
				mcp.WithString("display_name", mcp.Description("Display name.")),
				mcp.WithString("status_text", mcp.Description("Status message.")),
				mcp.WithString("status_emoji", mcp.Description("Status emoji, e.g. :palm_tree:.")),
				mcp.WithString("title", mcp.Description("Job title.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				p, err := c.SetUserProfile(ctx, slack.UserProfile{
					DisplayName: req.GetString("display_name", ""),
					StatusText:  req.GetString("status_text", ""),
					StatusEmoji: req.GetString("status_emoji", ""),
					Title:       req.GetString("title", ""),
				})
				if err != nil {
					return "", err
				}
				return "Profile updated.\n" + format.Profile(p), nil
			},
		},
	}
}
