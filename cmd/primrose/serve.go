package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/audit"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/config"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/gateway"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/security"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/telemetry"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/tools"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio or HTTP transport)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to configuration file")
	return cmd
}

// newLogger builds the process logger. Every known token is added to the
// redactor so it can never appear in log output.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	redactor := security.NewRedactor()
	redactor.AddLiteral(cfg.Slack.BotToken)
	redactor.AddLiteral(cfg.Slack.UserToken)

	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(security.NewRedactingHandler(inner, redactor))
}

func serve(cfg *config.Config) error {
	log := newLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tracing, err := telemetry.Setup(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.Insecure, version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			log.Warn("trace shutdown failed", "error", err)
		}
	}()

	registryOpts := []tools.RegistryOption{tools.WithTracer(tracing.Tracer())}
	if cfg.Slack.BaseURL != "" {
		registryOpts = append(registryOpts, tools.WithClientOptions(
			slack.WithBaseURL(cfg.Slack.BaseURL),
			slack.WithTimeout(cfg.Slack.Timeout),
		))
	} else {
		registryOpts = append(registryOpts, tools.WithClientOptions(
			slack.WithTimeout(cfg.Slack.Timeout),
		))
	}

	if cfg.Audit.Path != "" {
		store, err := audit.Open(cfg.Audit.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		registryOpts = append(registryOpts, tools.WithAudit(store))
		log.Info("audit trail enabled", "path", cfg.Audit.Path)
	}

	creds := slack.Credentials{
		BotToken:  cfg.Slack.BotToken,
		UserToken: cfg.Slack.UserToken,
	}
	registry := tools.NewRegistry(log, creds, registryOpts...)

	s := server.NewMCPServer("primrose-slack", version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	registry.Register(s)

	switch cfg.Server.Transport {
	case "http":
		return serveHTTP(ctx, log, cfg, s)
	default:
		log.Info("serving MCP over stdio")
		return server.ServeStdio(s)
	}
}

func serveHTTP(ctx context.Context, log *slog.Logger, cfg *config.Config, s *server.MCPServer) error {
	httpServer := server.NewStreamableHTTPServer(s)
	gw := gateway.New(log, httpServer, cfg.Server.Listen, version)
	if err := gw.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	if err := gw.Stop(stopCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
