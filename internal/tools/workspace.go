package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

// workspaceTools covers team info, emoji, search, DND, and identity.
func (r *Registry) workspaceTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_auth_test",
				mcp.WithDescription("Check the configured credentials and report the authenticated identity."),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				id, err := c.AuthTest(ctx)
				if err != nil {
					return "", err
				}
				return format.Identity(id), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_team_info",
				mcp.WithDescription("Get the workspace's name, domain, and icon."),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				team, err := c.GetTeamInfo(ctx)
				if err != nil {
					return "", err
				}
				return format.Team(team), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_emoji",
				mcp.WithDescription("List the workspace's custom emoji."),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				emoji, err := c.ListEmoji(ctx)
				if err != nil {
					return "", err
				}
				return format.Emoji(emoji), nil
			},
		},
		{
			def: mcp.NewTool("slack_search_messages",
				mcp.WithDescription("Search messages. Requires a user token. Page-counted: continue with page=N."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query; supports modifiers like in:#channel and from:@user.")),
				mcp.WithString("sort", mcp.Description("\"score\" (default) or \"timestamp\".")),
				mcp.WithString("sort_dir", mcp.Description("\"asc\" or \"desc\".")),
				mcp.WithNumber("count", mcp.Description("Matches per page (default 20).")),
				mcp.WithNumber("page", mcp.Description("Page number, starting at 1.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				query, err := req.RequireString("query")
				if err != nil {
					return "", err
				}
				page, paging, err := c.SearchMessages(ctx, slack.SearchRequest{
					Query:   query,
					Sort:    req.GetString("sort", ""),
					SortDir: req.GetString("sort_dir", ""),
					Count:   req.GetInt("count", 20),
					Page:    req.GetInt("page", 0),
				})
				if err != nil {
					return "", err
				}
				return format.MessageMatches(page, paging), nil
			},
		},
		{
			def: mcp.NewTool("slack_search_files",
				mcp.WithDescription("Search files. Requires a user token. Page-counted: continue with page=N."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query.")),
				mcp.WithNumber("count", mcp.Description("Matches per page (default 20).")),
				mcp.WithNumber("page", mcp.Description("Page number, starting at 1.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				query, err := req.RequireString("query")
				if err != nil {
					return "", err
				}
				page, paging, err := c.SearchFiles(ctx, slack.SearchRequest{
					Query: query,
					Count: req.GetInt("count", 20),
					Page:  req.GetInt("page", 0),
				})
				if err != nil {
					return "", err
				}
				return format.Files(page, paging), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_dnd",
				mcp.WithDescription("Get a user's do-not-disturb status."),
				mcp.WithString("user_id", mcp.Description("User ID; defaults to the calling user.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				status, err := c.GetDNDInfo(ctx, req.GetString("user_id", ""))
				if err != nil {
					return "", err
				}
				return format.DND(status), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_team_dnd",
				mcp.WithDescription("Get do-not-disturb status for several users at once."),
				mcp.WithString("user_ids", mcp.Required(), mcp.Description("Comma-separated user IDs.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				userIDs, err := req.RequireString("user_ids")
				if err != nil {
					return "", err
				}
				statuses, err := c.GetDNDTeamInfo(ctx, userIDs)
				if err != nil {
					return "", err
				}
				return format.DNDTeam(statuses), nil
			},
		},
		{
			def: mcp.NewTool("slack_set_snooze",
				mcp.WithDescription("Turn on notification snooze for the calling user."),
				mcp.WithNumber("minutes", mcp.Required(), mcp.Description("How long to snooze, in minutes.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				minutes, err := req.RequireInt("minutes")
				if err != nil {
					return "", err
				}
				status, err := c.SetSnooze(ctx, minutes)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Snoozing for %d minutes.\n%s", minutes, format.DND(status)), nil
			},
		},
		{
			def: mcp.NewTool("slack_end_snooze",
				mcp.WithDescription("End the calling user's snooze early."),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				status, err := c.EndSnooze(ctx)
				if err != nil {
					return "", err
				}
				return "Snooze ended.\n" + format.DND(status), nil
			},
		},
		{
			def: mcp.NewTool("slack_end_dnd",
				mcp.WithDescription("End the calling user's do-not-disturb session."),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				if err := c.EndDND(ctx); err != nil {
					return "", err
				}
				return "Do-not-disturb ended.", nil
			},
		},
	}
}
