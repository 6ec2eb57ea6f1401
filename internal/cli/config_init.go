package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/findash/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var (
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
$FINDASH_HOME/config.yaml (default ~/.findash/config.yaml).`,
		Example: `  # Create global configuration
  findash config init

  # Create configuration, overwriting existing
  findash config init --force

  # Write defaults to a project overlay
  findash config init --path ./findash.yaml`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultPath()
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&path, "path", "", "write to this file instead of the global config")

	return cmd
}

// initConfig writes the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	// Check if config already exists and force isn't set
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.New().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("configuration initialized")
	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}

// NewConfigListCmd creates the config list command printing the effective values.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective configuration values",
		Long:  "Prints every configuration key with its value after config files, environment and flags are applied.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
			for _, kv := range configEntries(cfg) {
				_, _ = fmt.Fprintf(tw, "%s\t%v\n", kv.key, kv.value)
			}
			return tw.Flush()
		},
	}
}

type configEntry struct {
	key   string
	value any
}

func configEntries(cfg *config.Config) []configEntry {
	return []configEntry{
		{"version", cfg.Version},
		{"dashboard.dataset_size", cfg.Dashboard.DatasetSize},
		{"dashboard.page_size", cfg.Dashboard.PageSize},
		{"dashboard.scroll_threshold", cfg.Dashboard.ScrollThreshold},
		{"dashboard.seed", cfg.Dashboard.Seed},
		{"dashboard.year", cfg.Dashboard.Year},
		{"dashboard.coalesce_ms", cfg.Dashboard.CoalesceMS},
		{"output.default_format", cfg.Output.DefaultFormat},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.file", cfg.Logging.File},
		{"profile.name", cfg.Profile.Name},
		{"profile.email", cfg.Profile.Email},
	}
}
