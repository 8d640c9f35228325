package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

func testGateway(mcpHandler http.Handler) *Gateway {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	g := New(log, mcpHandler, "127.0.0.1:0", "test")
	g.startedAt = time.Now()
	return g
}

func TestHealthz(t *testing.T) {
	g := testGateway(http.NotFoundHandler())
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("health.Status = %q, want ok", health.Status)
	}
	if health.Version != "test" {
		t.Errorf("health.Version = %q, want test", health.Version)
	}
}

func TestStatus(t *testing.T) {
	g := testGateway(http.NotFoundHandler())
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status error = %v", err)
	}
	defer resp.Body.Close()

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.UptimeSeconds < 0 {
		t.Errorf("uptime = %f, want >= 0", status.UptimeSeconds)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	g := testGateway(http.NotFoundHandler())
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMCPMountReceivesRequests(t *testing.T) {
	var hit bool
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hit = true
		w.WriteHeader(http.StatusOK)
	})
	g := testGateway(mcpHandler)
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/mcp", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /mcp error = %v", err)
	}
	resp.Body.Close()

	if !hit {
		t.Error("MCP handler was not reached")
	}
}

func TestCredentialHeadersReachContext(t *testing.T) {
	var got slack.Credentials
	var present bool
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got, present = slack.CredentialsFromContext(req.Context())
	})
	g := testGateway(mcpHandler)
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/mcp", nil)
	req.Header.Set("X-Slack-Bot-Token", "xoxb-header")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST /mcp error = %v", err)
	}
	resp.Body.Close()

	if !present {
		t.Fatal("context carries no credentials")
	}
	if got.BotToken != "xoxb-header" {
		t.Errorf("BotToken = %q, want xoxb-header", got.BotToken)
	}
}

func TestNoHeadersNoContextCredentials(t *testing.T) {
	var present bool
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, present = slack.CredentialsFromContext(req.Context())
	})
	g := testGateway(mcpHandler)
	srv := httptest.NewServer(g.buildRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/mcp", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /mcp error = %v", err)
	}
	resp.Body.Close()

	if present {
		t.Error("context carries credentials despite bare request")
	}
}

func TestStartStop(t *testing.T) {
	g := testGateway(http.NotFoundHandler())
	if err := g.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := g.Stop(t.Context()); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}
