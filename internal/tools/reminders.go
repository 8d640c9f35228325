package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) reminderTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_add_reminder",
				mcp.WithDescription("Create a reminder."),
				mcp.WithString("text", mcp.Required(), mcp.Description("Reminder text.")),
				mcp.WithString("time", mcp.Required(), mcp.Description("When to fire: a unix timestamp or natural language like \"in 15 minutes\".")),
				mcp.WithString("user_id", mcp.Description("Remind another user instead of the caller.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				text, err := req.RequireString("text")
				if err != nil {
					return "", err
				}
				when, err := req.RequireString("time")
				if err != nil {
					return "", err
				}
				rem, err := c.AddReminder(ctx, text, when, req.GetString("user_id", ""))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Created reminder %s: %s", rem.ID, rem.Text), nil
			},
		},
		{
			def: mcp.NewTool("slack_complete_reminder",
				mcp.WithDescription("Mark a reminder complete."),
				mcp.WithString("reminder_id", mcp.Required(), mcp.Description("Reminder ID.")),
			),
			fn: reminderAction("complete", (*slack.Client).CompleteReminder),
		},
		{
			def: mcp.NewTool("slack_delete_reminder",
				mcp.WithDescription("Delete a reminder."),
				mcp.WithString("reminder_id", mcp.Required(), mcp.Description("Reminder ID.")),
			),
			fn: reminderAction("deleted", (*slack.Client).DeleteReminder),
		},
		{
			def: mcp.NewTool("slack_get_reminder",
				mcp.WithDescription("Get one reminder."),
				mcp.WithString("reminder_id", mcp.Required(), mcp.Description("Reminder ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				reminderID, err := req.RequireString("reminder_id")
				if err != nil {
					return "", err
				}
				rem, err := c.GetReminderInfo(ctx, reminderID)
				if err != nil {
					return "", err
				}
				return format.Reminders([]slack.Reminder{*rem}), nil
			},
		},
		{
			def: mcp.NewTool("slack_list_reminders",
				mcp.WithDescription("List the calling user's reminders."),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				reminders, err := c.ListReminders(ctx)
				if err != nil {
					return "", err
				}
				return format.Reminders(reminders), nil
			},
		},
	}
}

func reminderAction(verb string, op func(*slack.Client, context.Context, string) error) handlerFunc {
	return func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
		reminderID, err := req.RequireString("reminder_id")
		if err != nil {
			return "", err
		}
		if err := op(c, ctx, reminderID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Reminder %s %s.", reminderID, verb), nil
	}
}
