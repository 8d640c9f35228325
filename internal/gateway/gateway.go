// Package gateway serves the MCP endpoint over HTTP alongside the
// operational surface: health, status, and Prometheus metrics.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Gateway is the HTTP front end. Start is non-blocking; Stop drains
// in-flight requests.
type Gateway struct {
	log       *slog.Logger
	mcp       http.Handler
	version   string
	bind      string
	startedAt time.Time
	server    *http.Server
}

// New creates a gateway serving mcpHandler at /mcp.
func New(log *slog.Logger, mcpHandler http.Handler, bind, version string) *Gateway {
	return &Gateway{
		log:     log,
		mcp:     mcpHandler,
		version: version,
		bind:    bind,
	}
}

// Start binds the listener and begins serving in a background goroutine.
func (g *Gateway) Start() error {
	g.startedAt = time.Now()

	g.server = &http.Server{
		Addr:         g.bind,
		Handler:      g.buildRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(context.Background(), "tcp", g.bind)
	if err != nil {
		return errors.New("gateway: listen failed: " + err.Error())
	}

	go func() {
		g.log.Info("gateway listening", "addr", g.bind)
		if err := g.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.log.Error("gateway serve error", "error", err)
		}
	}()

	return nil
}

// Stop shuts the server down gracefully.
func (g *Gateway) Stop(ctx context.Context) error {
	if g.server == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	g.log.Info("gateway shutting down")
	return g.server.Shutdown(shutdownCtx)
}
