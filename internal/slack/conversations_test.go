package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListConversations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversations.list" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req ListConversationsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		if req.Limit != 2 {
			t.Errorf("limit = %d, want 2", req.Limit)
		}
		writeJSON(t, w, map[string]any{
			"ok": true,
			"channels": []map[string]any{
				{"id": "C1", "name": "general"},
				{"id": "C2", "name": "random"},
			},
			"response_metadata": map[string]any{"next_cursor": "abc"},
		})
	}))
	defer srv.Close()

	page, err := testClient(srv).ListConversations(context.Background(), ListConversationsRequest{Limit: 2})
	if err != nil {
		t.Fatalf("ListConversations() error: %v", err)
	}
	if page.Count != 2 || len(page.Items) != 2 {
		t.Fatalf("Count = %d, len(Items) = %d, want 2", page.Count, len(page.Items))
	}
	if page.Items[0].ID != "C1" || page.Items[1].ID != "C2" {
		t.Errorf("Items = [%s %s], want [C1 C2]", page.Items[0].ID, page.Items[1].ID)
	}
	if !page.HasMore {
		t.Error("HasMore = false, want true")
	}
	if page.NextCursor != "abc" {
		t.Errorf("NextCursor = %q, want abc", page.NextCursor)
	}
}

func TestGetHistoryFlagWithoutCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":       true,
			"messages": []map[string]any{{"ts": "1.0", "text": "hi"}},
			"has_more": true,
		})
	}))
	defer srv.Close()

	page, err := testClient(srv).GetHistory(context.Background(), HistoryRequest{Channel: "C1"})
	if err != nil {
		t.Fatalf("GetHistory() error: %v", err)
	}
	if !page.HasMore {
		t.Error("HasMore = false, want true from the boolean flag")
	}
	if page.NextCursor != "" {
		t.Errorf("NextCursor = %q, want empty when the API sent none", page.NextCursor)
	}
}

func TestGetHistoryEmptyPageWithMore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":       true,
			"messages": []any{},
			"has_more": true,
		})
	}))
	defer srv.Close()

	page, err := testClient(srv).GetHistory(context.Background(), HistoryRequest{Channel: "C1"})
	if err != nil {
		t.Fatalf("GetHistory() error: %v", err)
	}
	if page.Count != 0 || !page.HasMore {
		t.Errorf("got {Count:%d HasMore:%v}, want empty page with HasMore", page.Count, page.HasMore)
	}
}

func TestSetConversationTopic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversations.setTopic" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(t, w, map[string]any{
			"ok":      true,
			"channel": map[string]any{"id": "C1", "topic": map[string]any{"value": "standup notes"}},
		})
	}))
	defer srv.Close()

	ch, err := testClient(srv).SetConversationTopic(context.Background(), "C1", "standup notes")
	if err != nil {
		t.Fatalf("SetConversationTopic() error: %v", err)
	}
	if ch.Topic.Value != "standup notes" {
		t.Errorf("Topic = %q", ch.Topic.Value)
	}
}
