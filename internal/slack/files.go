package slack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// ListFilesRequest are the parameters for files.list, one of the legacy
// page-counted endpoints: continuation is by page number, not cursor.
type ListFilesRequest struct {
	Channel string `json:"channel,omitempty"`
	User    string `json:"user,omitempty"`
	Types   string `json:"types,omitempty"`
	TsFrom  string `json:"ts_from,omitempty"`
	TsTo    string `json:"ts_to,omitempty"`
	Count   int    `json:"count,omitempty"`
	Page    int    `json:"page,omitempty"`
}

type filesListResponse struct {
	Envelope
	Files  []File `json:"files"`
	Paging Paging `json:"paging"`
}

// ListFiles lists files matching the filters. The returned page never
// carries a cursor; callers wanting the next page must re-issue with
// Page+1.
func (c *Client) ListFiles(ctx context.Context, req ListFilesRequest) (Page[File], *Paging, error) {
	resp, err := call[filesListResponse](ctx, c, "files.list", req)
	if err != nil {
		return Page[File]{}, nil, err
	}
	paging := resp.Paging
	return pageFromCounts(resp.Files, paging.Page, paging.Pages), &paging, nil
}

type fileInfoResponse struct {
	Envelope
	File File `json:"file"`
}

// GetFileInfo fetches metadata for a single file.
func (c *Client) GetFileInfo(ctx context.Context, fileID string) (*File, error) {
	params := struct {
		File string `json:"file"`
	}{fileID}
	resp, err := call[fileInfoResponse](ctx, c, "files.info", params)
	if err != nil {
		return nil, err
	}
	return &resp.File, nil
}

// DeleteFile deletes a file.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	params := struct {
		File string `json:"file"`
	}{fileID}
	_, err := call[Envelope](ctx, c, "files.delete", params)
	return err
}

// UploadFileRequest describes a file upload.
type UploadFileRequest struct {
	Filename       string
	Title          string
	Content        []byte
	ChannelID      string
	ThreadTS       string
	InitialComment string
}

type uploadURLResponse struct {
	Envelope
	UploadURL string `json:"upload_url"`
	FileID    string `json:"file_id"`
}

type completeUploadResponse struct {
	Envelope
	Files []File `json:"files"`
}

// UploadFile runs the three-step external upload protocol: allocate an
// upload slot sized to the exact byte length of the content, push the raw
// bytes to the returned one-time URL with a plain unauthenticated POST, and
// finalize against the completion endpoint. Steps one and three go through
// the normal dispatcher and classification; a silent failure of step two
// surfaces as an inconsistent or failed step three. Steps are strictly
// sequential.
func (c *Client) UploadFile(ctx context.Context, req UploadFileRequest) (*File, error) {
	slotParams := struct {
		Filename string `json:"filename"`
		Length   int    `json:"length"`
	}{req.Filename, len(req.Content)}
	slot, err := call[uploadURLResponse](ctx, c, "files.getUploadURLExternal", slotParams)
	if err != nil {
		return nil, err
	}

	if err := c.pushBytes(ctx, slot.UploadURL, req.Content); err != nil {
		return nil, err
	}

	completeParams := struct {
		Files []struct {
			ID    string `json:"id"`
			Title string `json:"title,omitempty"`
		} `json:"files"`
		ChannelID      string `json:"channel_id,omitempty"`
		ThreadTS       string `json:"thread_ts,omitempty"`
		InitialComment string `json:"initial_comment,omitempty"`
	}{
		Files: []struct {
			ID    string `json:"id"`
			Title string `json:"title,omitempty"`
		}{{ID: slot.FileID, Title: req.Title}},
		ChannelID:      req.ChannelID,
		ThreadTS:       req.ThreadTS,
		InitialComment: req.InitialComment,
	}
	complete, err := call[completeUploadResponse](ctx, c, "files.completeUploadExternal", completeParams)
	if err != nil {
		return nil, err
	}
	if len(complete.Files) == 0 {
		return nil, &APIError{
			Kind:    KindGeneric,
			Message: fmt.Sprintf("upload of %s finalized with no files", req.Filename),
		}
	}
	return &complete.Files[0], nil
}

// pushBytes POSTs raw content to the one-time upload URL. This call is
// outside the authenticated API: no bearer header, no envelope.
func (c *Client) pushBytes(ctx context.Context, url string, content []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("slack: create upload request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode != http.StatusOK {
		return &APIError{
			Kind:       KindGeneric,
			Message:    fmt.Sprintf("upload POST returned status %d", resp.StatusCode),
			HTTPStatus: resp.StatusCode,
		}
	}
	return nil
}
