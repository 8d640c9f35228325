package slack

import "context"

// SearchRequest are the parameters for search.messages and search.files.
// Search is page-counted: continuation is by page number, not cursor.
type SearchRequest struct {
	Query     string `json:"query"`
	Sort      string `json:"sort,omitempty"`     // "score" or "timestamp"
	SortDir   string `json:"sort_dir,omitempty"` // "asc" or "desc"
	Highlight bool   `json:"highlight,omitempty"`
	Count     int    `json:"count,omitempty"`
	Page      int    `json:"page,omitempty"`
}

type searchMessagesResponse struct {
	Envelope
	Query    string `json:"query"`
	Messages struct {
		Total   int       `json:"total"`
		Paging  Paging    `json:"paging"`
		Matches []Message `json:"matches"`
	} `json:"messages"`
}

// SearchMessages searches messages matching the query. Requires a user
// token; bot tokens are rejected by the API with not_allowed_token_type.
func (c *Client) SearchMessages(ctx context.Context, req SearchRequest) (Page[Message], *Paging, error) {
	resp, err := call[searchMessagesResponse](ctx, c, "search.messages", req)
	if err != nil {
		return Page[Message]{}, nil, err
	}
	paging := resp.Messages.Paging
	return pageFromCounts(resp.Messages.Matches, paging.Page, paging.Pages), &paging, nil
}

type searchFilesResponse struct {
	Envelope
	Query string `json:"query"`
	Files struct {
		Total   int    `json:"total"`
		Paging  Paging `json:"paging"`
		Matches []File `json:"matches"`
	} `json:"files"`
}

// SearchFiles searches files matching the query. Same token requirements
// and paging model as SearchMessages.
func (c *Client) SearchFiles(ctx context.Context, req SearchRequest) (Page[File], *Paging, error) {
	resp, err := call[searchFilesResponse](ctx, c, "search.files", req)
	if err != nil {
		return Page[File]{}, nil, err
	}
	paging := resp.Files.Paging
	return pageFromCounts(resp.Files.Matches, paging.Page, paging.Pages), &paging, nil
}
