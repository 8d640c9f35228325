package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.postMessage" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req PostMessageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		if req.Channel != "C1" || req.Text != "hello" {
			t.Errorf("got {Channel:%q Text:%q}", req.Channel, req.Text)
		}
		writeJSON(t, w, map[string]any{
			"ok":      true,
			"channel": "C1",
			"ts":      "1700000000.000100",
			"message": map[string]any{"text": "hello", "user": "U1"},
		})
	}))
	defer srv.Close()

	msg, err := testClient(srv).PostMessage(context.Background(), PostMessageRequest{Channel: "C1", Text: "hello"})
	if err != nil {
		t.Fatalf("PostMessage() error: %v", err)
	}
	if msg.TS != "1700000000.000100" {
		t.Errorf("TS = %q", msg.TS)
	}
	if msg.Channel != "C1" {
		t.Errorf("Channel = %q, want C1", msg.Channel)
	}
}

func TestPostMessageEmptyTextStillSerializes(t *testing.T) {
	// The client performs no local validation: an empty text with no blocks
	// or attachments must still reach the wire; rejection is the API's call.
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		writeJSON(t, w, map[string]any{"ok": false, "error": "no_text"})
	}))
	defer srv.Close()

	_, err := testClient(srv).PostMessage(context.Background(), PostMessageRequest{Channel: "C1"})
	if err == nil {
		t.Fatal("expected the remote rejection to surface")
	}
	if len(gotBody) == 0 {
		t.Fatal("request was never serialized")
	}
	var decoded map[string]any
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("unmarshal request: %v", err)
	}
	if decoded["channel"] != "C1" {
		t.Errorf("channel = %v", decoded["channel"])
	}
}

func TestGetPermalink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":        true,
			"channel":   "C1",
			"permalink": "https://example.slack.com/archives/C1/p1700000000000100",
		})
	}))
	defer srv.Close()

	link, err := testClient(srv).GetPermalink(context.Background(), "C1", "1700000000.000100")
	if err != nil {
		t.Fatalf("GetPermalink() error: %v", err)
	}
	if link == "" {
		t.Error("permalink is empty")
	}
}

func TestScheduleMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":                   true,
			"channel":              "C1",
			"scheduled_message_id": "Q123",
			"post_at":              1800000000,
			"message":              map[string]any{"text": "later"},
		})
	}))
	defer srv.Close()

	sm, err := testClient(srv).ScheduleMessage(context.Background(), ScheduleMessageRequest{
		Channel: "C1", Text: "later", PostAt: 1800000000,
	})
	if err != nil {
		t.Fatalf("ScheduleMessage() error: %v", err)
	}
	if sm.ID != "Q123" || sm.PostAt != 1800000000 {
		t.Errorf("got {ID:%q PostAt:%d}", sm.ID, sm.PostAt)
	}
}
