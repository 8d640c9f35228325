package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

// buildRouter constructs the chi mux with all routes wired.
func (g *Gateway) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(g.requestLogger)

	// Operational surface — no auth.
	r.Get("/healthz", g.handleHealth())
	r.Get("/status", g.handleStatus())
	r.Handle("/metrics", promhttp.Handler())

	// MCP endpoint. Callers may supply their own Slack tokens per request;
	// the middleware lifts them onto the context before dispatch.
	r.Group(func(r chi.Router) {
		r.Use(credentialHeaders)
		r.Mount("/mcp", g.mcp)
	})

	return r
}

// credentialHeaders copies caller-supplied Slack tokens from request
// headers onto the context, where tool dispatch prefers them over the
// configured defaults.
func credentialHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		creds := slack.Credentials{
			BotToken:  req.Header.Get("X-Slack-Bot-Token"),
			UserToken: req.Header.Get("X-Slack-User-Token"),
		}
		if creds.BotToken != "" || creds.UserToken != "" {
			req = req.WithContext(slack.WithCredentials(req.Context(), creds))
		}
		next.ServeHTTP(w, req)
	})
}

// requestLogger logs one line per request. Tokens never appear here: only
// method, path, status, and latency are recorded.
func (g *Gateway) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		g.log.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
		)
	})
}

// HealthResponse is the JSON response for GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: g.version})
	}
}

// StatusResponse is the JSON response for GET /status.
type StatusResponse struct {
	Version       string  `json:"version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (g *Gateway) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(StatusResponse{
			Version:       g.version,
			UptimeSeconds: time.Since(g.startedAt).Seconds(),
		})
	}
}
