package tools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/audit"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry(t *testing.T, handler http.HandlerFunc, opts ...RegistryOption) *Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append(opts, WithClientOptions(slack.WithBaseURL(srv.URL)))
	return NewRegistry(discard(), slack.Credentials{BotToken: "xoxb-test"}, opts...)
}

func allTools(r *Registry) []tool {
	var all []tool
	for _, group := range [][]tool{
		r.conversationTools(), r.chatTools(), r.userTools(), r.fileTools(),
		r.reactionTools(), r.itemTools(), r.reminderTools(),
		r.userGroupTools(), r.workspaceTools(),
	} {
		all = append(all, group...)
	}
	return all
}

// invoke finds a tool by name and runs it through the shared wrapper.
func invoke(t *testing.T, r *Registry, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	for _, tl := range allTools(r) {
		if tl.def.Name != name {
			continue
		}
		req := mcp.CallToolRequest{}
		req.Params.Name = name
		req.Params.Arguments = args
		result, err := r.wrap(name, tl.fn)(context.Background(), req)
		if err != nil {
			t.Fatalf("%s returned protocol error: %v", name, err)
		}
		return result
	}
	t.Fatalf("tool %s not found", name)
	return nil
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("result has %d content blocks, want 1", len(result.Content))
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func writeOK(t *testing.T, w http.ResponseWriter, body map[string]any) {
	t.Helper()
	body["ok"] = true
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestToolNamesUnique(t *testing.T) {
	r := NewRegistry(discard(), slack.Credentials{BotToken: "xoxb-test"})
	seen := map[string]bool{}
	for _, tl := range allTools(r) {
		name := tl.def.Name
		if !strings.HasPrefix(name, "slack_") {
			t.Errorf("tool %q does not carry the slack_ prefix", name)
		}
		if seen[name] {
			t.Errorf("duplicate tool name %q", name)
		}
		seen[name] = true
	}
	if len(seen) < 60 {
		t.Errorf("registry has %d tools, want at least 60", len(seen))
	}
}

func TestPostMessageTool(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	r := testRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		if err := json.NewDecoder(req.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		writeOK(t, w, map[string]any{
			"channel": "C1", "ts": "1700000000.000100",
			"message": map[string]any{"ts": "1700000000.000100", "text": "hi"},
		})
	})

	result := invoke(t, r, "slack_post_message", map[string]any{
		"channel_id": "C1", "text": "hi",
	})
	if result.IsError {
		t.Fatalf("result is an error: %s", resultText(t, result))
	}
	if gotPath != "/chat.postMessage" {
		t.Errorf("path = %q, want /chat.postMessage", gotPath)
	}
	if gotBody["channel"] != "C1" || gotBody["text"] != "hi" {
		t.Errorf("request body = %v", gotBody)
	}
	if text := resultText(t, result); !strings.Contains(text, "1700000000.000100") {
		t.Errorf("result %q does not name the posted timestamp", text)
	}
}

func TestToolErrorBecomesResult(t *testing.T) {
	r := testRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "channel_not_found"})
	})

	result := invoke(t, r, "slack_get_channel", map[string]any{"channel_id": "C404"})
	if !result.IsError {
		t.Fatal("result.IsError = false, want true")
	}
	if text := resultText(t, result); !strings.Contains(text, "channel_not_found") {
		t.Errorf("error text %q does not carry the remote code", text)
	}
}

func TestRateLimitAdviceSurfaces(t *testing.T) {
	r := testRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Retry-After", "17")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	result := invoke(t, r, "slack_list_channels", nil)
	if !result.IsError {
		t.Fatal("result.IsError = false, want true")
	}
	text := resultText(t, result)
	if !strings.Contains(text, "retry after 17s") {
		t.Errorf("error text %q does not carry the retry-after hint", text)
	}
	if !strings.Contains(text, "(retryable)") {
		t.Errorf("error text %q does not mark the failure retryable", text)
	}
}

func TestMissingArgumentSkipsDispatch(t *testing.T) {
	called := false
	r := testRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	result := invoke(t, r, "slack_get_channel", nil)
	if !result.IsError {
		t.Fatal("result.IsError = false, want true")
	}
	if called {
		t.Error("request was dispatched despite the missing argument")
	}
}

func TestContextCredentialsOverride(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeOK(t, w, map[string]any{"team": "t", "user": "u", "team_id": "T1", "user_id": "U1"})
	}))
	defer srv.Close()

	r := NewRegistry(discard(), slack.Credentials{BotToken: "xoxb-config"},
		WithClientOptions(slack.WithBaseURL(srv.URL)))

	ctx := slack.WithCredentials(context.Background(), slack.Credentials{UserToken: "xoxp-request"})
	c := r.client(ctx)
	if _, err := c.AuthTest(ctx); err != nil {
		t.Fatalf("AuthTest() error = %v", err)
	}
	if gotAuth != "Bearer xoxp-request" {
		t.Errorf("Authorization = %q, want the request-scoped token", gotAuth)
	}
}

func TestAuditRecordsInvocation(t *testing.T) {
	store, err := audit.Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("audit.Open() error = %v", err)
	}
	defer store.Close()

	r := testRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "invalid_auth"})
	}, WithAudit(store))

	invoke(t, r, "slack_get_team_info", nil)

	records, err := store.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("audit has %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Tool != "slack_get_team_info" {
		t.Errorf("rec.Tool = %q", rec.Tool)
	}
	if rec.Outcome != "error" || rec.ErrorKind != "authentication" {
		t.Errorf("rec = %+v, want error/authentication", rec)
	}
}
