package cli

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ytlookup/internal/api"
	"ytlookup/internal/proxy"
	"ytlookup/internal/tui"
	"ytlookup/internal/view"
)

func (c *CLI) newBrowseCmd() *cobra.Command {
	var (
		configPath string
		proxyURL   string
		dark       bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "browse [video-id-or-url]",
		Short: "Browse video metadata in the terminal",
		Long:  "Browse video metadata in the terminal. Without --proxy (or proxyUrl in the config) a private proxy is started on a free local port.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}

			if proxyURL == "" {
				proxyURL = cfg.ProxyURL
			}
			if !cmd.Flags().Changed("dark") {
				dark = cfg.DefaultTheme == "dark"
			}

			if proxyURL == "" {
				// Log lines would tear the terminal UI.
				slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

				local := *cfg
				local.BindHost = "127.0.0.1"
				local.WebServerPort = 0

				service, cacheMgr := newLookupService(&local, c.lookupEnv)
				server, err := api.NewServer(&local, service, api.WithCache(cacheMgr), api.WithoutAccessLog())
				if err != nil {
					return err
				}
				if err := server.Start(); err != nil {
					return err
				}
				defer server.Stop()

				proxyURL = server.URL()
			}

			client := proxy.NewClient(proxyURL, &http.Client{Timeout: timeout})

			opts := []tui.Option{tui.WithDark(dark), tui.WithTimeout(timeout)}
			if len(args) == 1 {
				opts = append(opts, tui.WithInitialID(args[0]))
			}
			model := tui.New(client, view.NewFormatter(cfg.Locale), opts...)

			return tui.Run(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: data dir config.json)")
	cmd.Flags().StringVar(&proxyURL, "proxy", "", "base URL of a running ytlookup server")
	cmd.Flags().BoolVar(&dark, "dark", false, "start with the dark palette")
	cmd.Flags().DurationVar(&timeout, "timeout", 20*time.Second, "per-request timeout")

	return cmd
}
