// Package tools exposes the Slack client as MCP tools. Each tool is a thin
// dispatch shim: parse arguments, call the client, render the result as
// text. Errors come back as tool results, not protocol errors, so the
// calling model sees the classification and retry advice.
package tools

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/audit"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/format"
	"github.com/primrose-mcp/primrose-mcp-slack/internal/slack"
)

// Registry builds and registers every Slack tool against an MCP server.
type Registry struct {
	log        *slog.Logger
	creds      slack.Credentials
	clientOpts []slack.Option
	tracer     trace.Tracer
	audit      *audit.Store // nil when auditing is disabled
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClientOptions passes options through to every client the registry
// constructs. Used to point tools at a test server.
func WithClientOptions(opts ...slack.Option) RegistryOption {
	return func(r *Registry) { r.clientOpts = opts }
}

// WithTracer sets the tracer tool invocations create spans from.
func WithTracer(t trace.Tracer) RegistryOption {
	return func(r *Registry) { r.tracer = t }
}

// WithAudit enables invocation auditing.
func WithAudit(store *audit.Store) RegistryOption {
	return func(r *Registry) { r.audit = store }
}

// NewRegistry creates a registry using creds as the default credentials.
// Per-request credentials attached to the context (HTTP mode) take
// precedence over the defaults.
func NewRegistry(log *slog.Logger, creds slack.Credentials, opts ...RegistryOption) *Registry {
	r := &Registry{
		log:    log,
		creds:  creds,
		tracer: noop.NewTracerProvider().Tracer("tools"),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// tool pairs a definition with its handler body.
type tool struct {
	def mcp.Tool
	fn  handlerFunc
}

type handlerFunc func(ctx context.Context, c *slack.Client, req mcp.CallToolRequest) (string, error)

// Register adds every tool to the server.
func (r *Registry) Register(s *server.MCPServer) {
	groups := [][]tool{
		r.conversationTools(),
		r.chatTools(),
		r.userTools(),
		r.fileTools(),
		r.reactionTools(),
		r.itemTools(),
		r.reminderTools(),
		r.userGroupTools(),
		r.workspaceTools(),
	}
	for _, group := range groups {
		for _, t := range group {
			s.AddTool(t.def, r.wrap(t.def.Name, t.fn))
		}
	}
}

// client returns the client for one invocation, preferring credentials
// carried on the context over the configured defaults. Clients are cheap;
// one is built per call.
func (r *Registry) client(ctx context.Context) *slack.Client {
	creds := r.creds
	if reqCreds, ok := slack.CredentialsFromContext(ctx); ok {
		creds = reqCreds
	}
	return slack.NewClient(creds, r.clientOpts...)
}

// wrap turns a handler body into a server.ToolHandlerFunc, adding the
// span, metrics, logging, and audit record shared by every tool.
func (r *Registry) wrap(name string, fn handlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := r.tracer.Start(ctx, name, trace.WithAttributes(
			attribute.String("slack.tool", name),
		))
		defer span.End()

		start := time.Now()
		text, err := fn(ctx, r.client(ctx), req)
		r.observe(ctx, name, time.Since(start), err)

		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return mcp.NewToolResultError(format.Error(err)), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func (r *Registry) observe(ctx context.Context, name string, elapsed time.Duration, err error) {
	outcome := "ok"
	kind := ""
	retryable := false
	if err != nil {
		outcome = "error"
		kind = errorKind(err)
		retryable = isRetryable(err)
	}

	invocations.WithLabelValues(name, outcome).Inc()
	latency.WithLabelValues(name).Observe(elapsed.Seconds())

	if err != nil {
		r.log.Warn("tool failed", "tool", name, "kind", kind, "retryable", retryable,
			"elapsed", elapsed, "error", err)
	} else {
		r.log.Debug("tool succeeded", "tool", name, "elapsed", elapsed)
	}

	if r.audit != nil {
		rec := audit.Record{
			Tool:      name,
			Outcome:   outcome,
			ErrorKind: kind,
			Retryable: retryable,
			Duration:  elapsed,
		}
		if auditErr := r.audit.Append(ctx, rec); auditErr != nil {
			r.log.Warn("audit append failed", "tool", name, "error", auditErr)
		}
	}
}

func errorKind(err error) string {
	var apiErr *slack.APIError
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return "generic"
}

func isRetryable(err error) bool {
	var apiErr *slack.APIError
	return errors.As(err, &apiErr) && apiErr.Retryable
}
