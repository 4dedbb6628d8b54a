package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ytlookup/internal/api"
	"ytlookup/internal/config"
)

func (c *CLI) newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web client and /api/youtube proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				cfg.WebServerPort = port
			}
			if cmd.Flags().Changed("host") {
				cfg.BindHost = host
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			if key, _ := c.lookupEnv(cfg.APIKeyEnv); key == "" {
				slog.Warn("API key is not set; lookups will fail", slog.String("env", cfg.APIKeyEnv))
			}

			service, cacheMgr := newLookupService(cfg, c.lookupEnv)
			server, err := api.NewServer(cfg, service, api.WithCache(cacheMgr), api.WithVersion(c.version))
			if err != nil {
				return err
			}

			if err := server.Start(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Server listening on %s\n", server.URL())
			fmt.Fprintln(out, "Press Ctrl+C to stop")

			<-cmd.Context().Done()

			slog.Info("shutting down")
			return server.Stop()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: data dir config.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "listen port (0 picks a free port)")
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "listen address")

	return cmd
}
