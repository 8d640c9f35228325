package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) userGroupTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_create_usergroup",
				mcp.WithDescription("Create a user group (@-mentionable handle)."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Group name.")),
				mcp.WithString("handle", mcp.Description("Mention handle without the @.")),
				mcp.WithString("description", mcp.Description("Group description.")),
				mcp.WithString("channel_ids", mcp.Description("Comma-separated default channel IDs.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				name, err := req.RequireString("name")
				if err != nil {
					return "", err
				}
				g, err := c.CreateUserGroup(ctx, slack.CreateUserGroupRequest{
					Name:        name,
					Handle:      req.GetString("handle", ""),
					Description: req.GetString("description", ""),
					Channels:    req.GetString("channel_ids", ""),
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Created user group %s (@%s).", g.ID, g.Handle), nil
			},
		},
		{
			def: mcp.NewTool("slack_update_usergroup",
				mcp.WithDescription("Update a user group's metadata. Empty fields are left unchanged."),
				mcp.WithString("usergroup_id", mcp.Required(), mcp.Description("User group ID, e.g. S0123456789.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("handle", mcp.Description("New handle.")),
				mcp.WithString("description", mcp.Description("New description.")),
				mcp.WithString("channel_ids", mcp.Description("New comma-separated default channel IDs.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				id, err := req.RequireString("usergroup_id")
				if err != nil {
					return "", err
				}
				g, err := c.UpdateUserGroup(ctx, slack.UpdateUserGroupRequest{
					UserGroup:   id,
					Name:        req.GetString("name", ""),
					Handle:      req.GetString("handle", ""),
					Description: req.GetString("description", ""),
					Channels:    req.GetString("channel_ids", ""),
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Updated user group %s (@%s).", g.ID, g.Handle), nil
			},
		},
		{
			def: mcp.NewTool("slack_enable_usergroup",
				mcp.WithDescription("Re-enable a disabled user group."),
				mcp.WithString("usergroup_id", mcp.Required(), mcp.Description("User group ID.")),
			),
			fn: userGroupAction("enabled", (*slack.Client).EnableUserGroup),
		},
		{
			def: mcp.NewTool("slack_disable_usergroup",
				mcp.WithDescription("Disable a user group."),
				mcp.WithString("usergroup_id", mcp.Required(), mcp.Description("User group ID.")),
			),
			fn: userGroupAction("disabled", (*slack.Client).DisableUserGroup),
		},
		{
			def: mcp.NewTool("slack_list_usergroups",
				mcp.WithDescription("List the workspace's user groups."),
				mcp.WithBoolean("include_disabled", mcp.Description("Include disabled groups.")),
				mcp.WithBoolean("include_users", mcp.Description("Include member user IDs.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				groups, err := c.ListUserGroups(ctx,
					req.GetBool("include_disabled", false), true, req.GetBool("include_users", false))
				if err != nil {
					return "", err
				}
				return format.UserGroups(groups), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_usergroup_members",
				mcp.WithDescription("List a user group's member user IDs."),
				mcp.WithString("usergroup_id", mcp.Required(), mcp.Description("User group ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				id, err := req.RequireString("usergroup_id")
				if err != nil {
					return "", err
				}
				ids, err := c.ListUserGroupMembers(ctx, id, false)
				if err != nil {
					return "", err
				}
				return format.IDList("members", ids), nil
			},
		},
		{
			def: mcp.NewTool("slack_update_usergroup_members",
				mcp.WithDescription("Replace a user group's membership."),
				mcp.WithString("usergroup_id", mcp.Required(), mcp.Description("User group ID.")),
				mcp.WithString("user_ids", mcp.Required(), mcp.Description("Comma-separated user IDs forming the complete new membership.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				id, err := req.RequireString("usergroup_id")
				if err != nil {
					return "", err
				}
				userIDs, err := req.RequireString("user_ids")
				if err != nil {
					return "", err
				}
				g, err := c.UpdateUserGroupMembers(ctx, id, userIDs)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("User group %s now has %d members.", g.ID, g.UserCount), nil
			},
		},
	}
}

func userGroupAction(verb string, op func(*slack.Client, context.Context, string) (*slack.UserGroup, error)) handlerFunc {
	return func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
		id, err := req.RequireString("usergroup_id")
		if err != nil {
			return "", err
		}
		g, err := op(c, ctx, id)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("User group %s %s.", g.ID, verb), nil
	}
}
