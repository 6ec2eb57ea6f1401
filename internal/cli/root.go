package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/findash/internal/config"
	"github.com/rshade/findash/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the flags that feed the configuration.
type rootFlags struct {
	configPath  string
	seed        uint64
	datasetSize int
	pageSize    int
	threshold   int
	plain       bool
}

// NewRootCmd creates the root Cobra command for the findash CLI.
// Without a subcommand it opens the interactive dashboard.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.Args, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with explicit args and env lookup for testability.
// args follows os.Args: the program name comes first.
func NewRootCmdWithArgs(
	ver string,
	args []string,
	lookupEnv func(string) (string, bool),
) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		flags     rootFlags
	)

	cmd := &cobra.Command{
		Use:           "findash",
		Short:         "Finance dashboard for invoices",
		Long:          "findash: browse synthetic invoices in a terminal dashboard or print them as table, JSON or YAML",
		Version:       ver,
		Example:       rootCmdExample,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, flags, lookupEnv); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, flags.plain)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "configuration overlay file merged over the global config")
	cmd.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "seed for the synthetic dataset (0 = random)")
	cmd.PersistentFlags().IntVar(&flags.datasetSize, "dataset-size", 0, "number of synthetic invoices (default from config)")

	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "invoices loaded per scroll step (default from config)")
	cmd.Flags().IntVar(&flags.threshold, "threshold", 0, "rows from the bottom that trigger loading the next page")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print the dashboard summary instead of starting the interactive view")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cmd.AddCommand(newInvoicesCmd(), newConfigCmd())

	if len(args) > 0 {
		cmd.SetArgs(args[1:])
	}
	return cmd
}

const rootCmdExample = `  # Open the interactive dashboard
  findash

  # Use a fixed dataset and smaller pages
  findash --seed 42 --page-size 10

  # Print the dashboard summary without the interactive view
  findash --plain

  # List the second page of overdue invoices as JSON
  findash invoices list --status overdue --page 2 --page-size 10 --output json

  # Show one invoice
  findash invoices show INV-0042 --seed 42

  # Initialize configuration
  findash config init`

// loadConfig builds the effective configuration: defaults, config files,
// environment, then flags. The result is stored as the global config.
func loadConfig(cmd *cobra.Command, flags rootFlags, lookupEnv func(string) (string, bool)) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return fmt.Errorf("applying environment: %w", err)
	}

	// CLI flags override environment variables and config file
	if cmd.Flags().Changed("seed") {
		cfg.Dashboard.Seed = flags.seed
	}
	if cmd.Flags().Changed("dataset-size") {
		cfg.Dashboard.DatasetSize = flags.datasetSize
	}
	root := cmd.Root()
	if root.Flags().Changed("page-size") {
		cfg.Dashboard.PageSize = flags.pageSize
	}
	if root.Flags().Changed("threshold") {
		cfg.Dashboard.ScrollThreshold = flags.threshold
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigListCmd())
	return cmd
}
