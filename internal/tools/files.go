package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func (r *Registry) fileTools() []tool {
	return []tool{
		{
			def: mcp.NewTool("slack_list_files",
				mcp.WithDescription("List files, optionally filtered by channel or user. Page-counted: continue with page=N."),
				mcp.WithString("channel_id", mcp.Description("Only files shared in this channel.")),
				mcp.WithString("user_id", mcp.Description("Only files uploaded by this user.")),
				mcp.WithString("types", mcp.Description("Comma-separated type filter, e.g. images,pdfs.")),
				mcp.WithNumber("count", mcp.Description("Files per page (default 100).")),
				mcp.WithNumber("page", mcp.Description("Page number, starting at 1.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				page, paging, err := c.ListFiles(ctx, slack.ListFilesRequest{
					Channel: req.GetString("channel_id", ""),
					User:    req.GetString("user_id", ""),
					Types:   req.GetString("types", ""),
					Count:   req.GetInt("count", 100),
					Page:    req.GetInt("page", 0),
				})
				if err != nil {
					return "", err
				}
				return format.Files(page, paging), nil
			},
		},
		{
			def: mcp.NewTool("slack_get_file",
				mcp.WithDescription("Get one file's metadata."),
				mcp.WithString("file_id", mcp.Required(), mcp.Description("File ID, e.g. F0123456789.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				fileID, err := req.RequireString("file_id")
				if err != nil {
					return "", err
				}
				f, err := c.GetFileInfo(ctx, fileID)
				if err != nil {
					return "", err
				}
				return format.File(f), nil
			},
		},
		{
			def: mcp.NewTool("slack_delete_file",
				mcp.WithDescription("Delete a file."),
				mcp.WithString("file_id", mcp.Required(), mcp.Description("File ID.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				fileID, err := req.RequireString("file_id")
				if err != nil {
					return "", err
				}
				if err := c.DeleteFile(ctx, fileID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted file %s.", fileID), nil
			},
		},
		{
			def: mcp.NewTool("slack_upload_file",
				mcp.WithDescription("Upload text content as a file, optionally sharing it into a channel."),
				mcp.WithString("filename", mcp.Required(), mcp.Description("File name including extension.")),
				mcp.WithString("content", mcp.Required(), mcp.Description("File content.")),
				mcp.WithString("title", mcp.Description("Display title.")),
				mcp.WithString("channel_id", mcp.Description("Channel to share the file into.")),
				mcp.WithString("thread_ts", mcp.Description("Thread to share into.")),
				mcp.WithString("initial_comment", mcp.Description("Message posted alongside the file.")),
			),
			fn: func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error) {
				filename, err := req.RequireString("filename")
				if err != nil {
					return "", err
				}
				content, err := req.RequireString("content")
				if err != nil {
					return "", err
				}
				f, err := c.UploadFile(ctx, slack.UploadFileRequest{
					Filename:       filename,
					Title:          req.GetString("title", ""),
					Content:        []byte(content),
					ChannelID:      req.GetString("channel_id", ""),
					ThreadTS:       req.GetString("thread_ts", ""),
					InitialComment: req.GetString("initial_comment", ""),
				})
				if err != nil {
					return "", err
				}
				return "Uploaded.\n" + format.File(f), nil
			},
		},
	}
}
