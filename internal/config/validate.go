package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the structural validity of a Config. Token presence is
// not enforced here: credentials may also arrive per call (HTTP headers),
// so a tokenless config is legal.
func Validate(cfg *Config) error {
	var errs []error

	switch cfg.Server.Transport {
	case "stdio", "http":
	default:
		errs = append(errs, fmt.Errorf("config: unsupported transport %q (supported: stdio, http)", cfg.Server.Transport))
	}

	if cfg.Server.Transport == "http" && cfg.Server.Listen == "" {
		errs = append(errs, errors.New("config: server.listen is required for http transport"))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: unknown logging level %q", cfg.Logging.Level))
	}

	if tok := cfg.Slack.BotToken; tok != "" && !strings.HasPrefix(tok, "xoxb-") {
		errs = append(errs, errors.New("config: slack.bot_token does not look like a bot token (xoxb-...)"))
	}
	if tok := cfg.Slack.UserToken; tok != "" && !strings.HasPrefix(tok, "xoxp-") {
		errs = append(errs, errors.New("config: slack.user_token does not look like a user token (xoxp-...)"))
	}
	if cfg.Slack.Timeout < 0 {
		errs = append(errs, errors.New("config: slack.timeout must not be negative"))
	}

	return errors.Join(errs...)
}
