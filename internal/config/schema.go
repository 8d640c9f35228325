// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for the server.
package config

import "time"

// Config is the top-level configuration structure.
type Config struct {
	// Slack configures the Web API client defaults. Tokens set here are
	// the fallback for calls that do not carry their own credentials.
	Slack SlackConfig `yaml:"slack"`

	// Server configures how the MCP server is exposed.
	Server ServerConfig `yaml:"server"`

	// Logging configures the slog output.
	Logging LoggingConfig `yaml:"logging,omitempty"`

	// Telemetry configures optional OTLP trace export.
	Telemetry TelemetryConfig `yaml:"telemetry,omitempty"`

	// Audit configures the optional invocation audit trail.
	Audit AuditConfig `yaml:"audit,omitempty"`
}

// SlackConfig holds Web API client settings.
type SlackConfig struct {
	// BotToken is the workspace bot token (xoxb-...). Usually supplied as
	// ${SLACK_BOT_TOKEN} and expanded at load time.
	BotToken string `yaml:"bot_token,omitempty"`

	// UserToken is the user token (xoxp-...), required by endpoints like
	// search.* that reject bot tokens.
	UserToken string `yaml:"user_token,omitempty"`

	// BaseURL overrides the API endpoint. Defaults to the public Slack API.
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout is the transport timeout per call.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ServerConfig holds MCP serving settings.
type ServerConfig struct {
	// Transport selects how clients connect: "stdio" or "http".
	Transport string `yaml:"transport,omitempty"`

	// Listen is the HTTP listen address, used when Transport is "http".
	Listen string `yaml:"listen,omitempty"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// TelemetryConfig holds trace export settings.
type TelemetryConfig struct {
	// OTLPEndpoint is the OTLP/HTTP collector endpoint. Tracing is
	// disabled when empty.
	OTLPEndpoint string `yaml:"otlp_endpoint,omitempty"`

	// Insecure disables TLS on the exporter connection.
	Insecure bool `yaml:"insecure,omitempty"`
}

// AuditConfig holds audit trail settings.
type AuditConfig struct {
	// Path is the SQLite database file for invocation records. Auditing
	// is disabled when empty.
	Path string `yaml:"path,omitempty"`
}

// Defaults fills unset fields with their defaults.
func (c *Config) Defaults() {
	if c.Slack.Timeout == 0 {
		c.Slack.Timeout = 60 * time.Second
	}
	if c.Server.Transport == "" {
		c.Server.Transport = "stdio"
	}
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
