package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/primrose-mcp/primrose-mcp-slack/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(configCheckCmd(), configInitCmd())
	return cmd
}

func configCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			fmt.Printf("Configuration OK (transport: %s)\n", cfg.Server.Transport)
			return nil
		},
	}
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Interactively create a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "primrose.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			var botToken, userToken, transport, listen string
			transport = "stdio"
			listen = ":8080"

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Bot token (xoxb-...)").
						Description("Leave empty to read from SLACK_BOT_TOKEN at runtime.").
						EchoMode(huh.EchoModePassword).
						Value(&botToken),
					huh.NewInput().
						Title("User token (xoxp-...)").
						Description("Optional; required only for search tools.").
						EchoMode(huh.EchoModePassword).
						Value(&userToken),
					huh.NewSelect[string]().
						Title("Transport").
						Options(
							huh.NewOption("stdio (for local MCP clients)", "stdio"),
							huh.NewOption("http (streamable HTTP endpoint)", "http"),
						).
						Value(&transport),
				),
				huh.NewGroup(
					huh.NewInput().
						Title("Listen address").
						Value(&listen),
				).WithHideFunc(func() bool { return transport != "http" }),
			)
			if err := form.Run(); err != nil {
				return err
			}

			cfg := config.Config{}
			cfg.Slack.BotToken = botToken
			cfg.Slack.UserToken = userToken
			cfg.Server.Transport = transport
			if transport == "http" {
				cfg.Server.Listen = listen
			}
			// Unset tokens fall back to environment expansion at load time.
			if cfg.Slack.BotToken == "" {
				cfg.Slack.BotToken = "${SLACK_BOT_TOKEN:-}"
			}
			if cfg.Slack.UserToken == "" {
				cfg.Slack.UserToken = "${SLACK_USER_TOKEN:-}"
			}

			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o700); err != nil {
					return err
				}
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
	return cmd
}
