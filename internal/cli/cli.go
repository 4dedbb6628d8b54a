// Package cli wires the ytlookup commands together.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ytlookup/internal/config"
	"ytlookup/internal/normalize"
	"ytlookup/pkg/models"
)

// ErrNoVideoID is returned when the input normalizes to nothing
var ErrNoVideoID = errors.New("no video ID in input")

// CLI represents the command-line interface
type CLI struct {
	version   string
	lookupEnv func(string) (string, bool)
}

// NewCLI creates a new CLI instance
func NewCLI(version string) *CLI {
	return &CLI{
		version:   version,
		lookupEnv: os.LookupEnv,
	}
}

// RootCommand builds the command tree
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ytlookup",
		Short:         "Look up YouTube video metadata",
		Long:          "ytlookup serves a small web client and JSON proxy for the YouTube Data API, and browses the same data from the terminal.",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate("ytlookup version {{.Version}}\n")

	root.AddCommand(c.newServeCmd())
	root.AddCommand(c.newBrowseCmd())
	root.AddCommand(c.newNormalizeCmd())
	root.AddCommand(c.newConfigCmd())

	return root
}

// Run executes the CLI with the given arguments and returns the exit code
func (c *CLI) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openConfig opens the config file, creating it with defaults if missing
func (c *CLI) openConfig(path string) (*config.Manager, error) {
	if path == "" {
		path = config.GetDefaultConfigPath()
	}
	return config.NewManager(path)
}

// loadConfig reads the config file and applies environment overrides
func (c *CLI) loadConfig(path string) (*models.Config, error) {
	mgr, err := c.openConfig(path)
	if err != nil {
		return nil, err
	}

	cfg := mgr.Get()
	if err := config.ApplyEnv(cfg, c.lookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *CLI) newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <video-id-or-url>",
		Short: "Print the video ID extracted from an ID or URL",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := normalize.VideoID(strings.Join(args, " "))
			if id == "" {
				return ErrNoVideoID
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func (c *CLI) newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: data dir config.json)")

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := c.openConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mgr.Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting in the config file",
		Long:  "Change one setting in the config file. Keys: " + strings.Join(config.Keys(), ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := c.openConfig(configPath)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := mgr.Update(func(cfg *models.Config) error {
				return config.SetField(cfg, key, value)
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s updated in %s\n", key, mgr.Path())
			return nil
		},
	})

	return cmd
}
