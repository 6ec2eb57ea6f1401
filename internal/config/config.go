package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/findash/internal/invoice"
	"github.com/rshade/findash/internal/pager"
)

// Configuration file layout.
const (
	// SchemaVersion is written by `config init`.
	SchemaVersion = "1.0.0"
	// supportedSchema is the range of schema versions this build understands.
	supportedSchema = "^1.0.0"

	configFileName = "config.yaml"
	defaultDirName = ".findash"

	// EnvHome overrides the configuration directory.
	EnvHome = "FINDASH_HOME"
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "FINDASH_LOG_LEVEL"
	// EnvLogFormat overrides logging.format.
	EnvLogFormat = "FINDASH_LOG_FORMAT"
	// EnvPageSize overrides dashboard.page_size.
	EnvPageSize = "FINDASH_PAGE_SIZE"

	defaultCoalesceMS = 16
	configFilePerm    = 0o600
	configDirPerm     = 0o700
)

// Validation errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidPageSize    = errors.New("dashboard.page_size must be >= 1")
	ErrInvalidDataset     = errors.New("dashboard.dataset_size must be >= 0")
	ErrInvalidThreshold   = errors.New("dashboard.scroll_threshold must be >= 0")
	ErrInvalidFormat      = errors.New("output.default_format must be table, json or yaml")
)

// Config is the complete findash configuration.
type Config struct {
	Version   string          `yaml:"version"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Profile   ProfileConfig   `yaml:"profile"`
}

// DashboardConfig controls the synthetic dataset and the invoice list.
type DashboardConfig struct {
	DatasetSize     int    `yaml:"dataset_size"`
	PageSize        int    `yaml:"page_size"`
	ScrollThreshold int    `yaml:"scroll_threshold"`
	Seed            uint64 `yaml:"seed"`
	Year            int    `yaml:"year"`
	// CoalesceMS is the delay before a burst of scroll events is evaluated.
	CoalesceMS int `yaml:"coalesce_ms"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// ProfileConfig is shown on the profile page and in the sidebar footer.
type ProfileConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Version: SchemaVersion,
		Dashboard: DashboardConfig{
			DatasetSize:     invoice.DefaultDatasetSize,
			PageSize:        pager.DefaultPageSize,
			ScrollThreshold: pager.DefaultThreshold,
			Year:            invoice.DefaultYear,
			CoalesceMS:      defaultCoalesceMS,
		},
		Output: OutputConfig{DefaultFormat: "table"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   defaultLogFile(),
		},
		Profile: ProfileConfig{
			Name:  "Admin User",
			Email: "admin@finance.app",
		},
	}
}

// Dir returns the configuration directory: $FINDASH_HOME, else ~/.findash.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(userHome, defaultDirName)
}

// DefaultPath returns the path of the global config file.
func DefaultPath() string {
	return filepath.Join(Dir(), configFileName)
}

// Load returns defaults overlaid with the global config file (if present) and
// then with overlayPath (if non-empty). A missing global file is not an error;
// a missing explicit overlay is.
func Load(overlayPath string) (*Config, error) {
	cfg := New()

	if _, err := os.Stat(DefaultPath()); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, DefaultPath()); mergeErr != nil {
			return nil, mergeErr
		}
	}

	if overlayPath != "" {
		if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ApplyEnv applies environment overrides using lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvPageSize, err)
		}
		c.Dashboard.PageSize = n
	}
	return nil
}

// Validate checks the schema version and value ranges.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if c.Dashboard.PageSize < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, c.Dashboard.PageSize)
	}
	if c.Dashboard.DatasetSize < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidDataset, c.Dashboard.DatasetSize)
	}
	if c.Dashboard.ScrollThreshold < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidThreshold, c.Dashboard.ScrollThreshold)
	}
	switch c.Output.DefaultFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidFormat, c.Output.DefaultFormat)
	}
	return nil
}

// checkVersion verifies version falls within the supported schema range.
// An empty version is treated as the current schema.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing supported schema range: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedSchema)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// GeneratorOptions maps the dashboard section onto invoice generator options.
func (d DashboardConfig) GeneratorOptions() invoice.GeneratorOptions {
	return invoice.GeneratorOptions{
		Size: d.DatasetSize,
		Year: d.Year,
		Seed: d.Seed,
	}
}

// globalConfig is the configuration of the running invocation.
//
//nolint:gochecknoglobals // Set once at startup, read by commands.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// SetGlobalConfig stores cfg for use by commands.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the stored configuration, or defaults when none was set.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return New()
	}
	return globalConfig
}

// GetOutputFormat returns flagValue when set, otherwise the configured default format.
func GetOutputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return GetGlobalConfig().Output.DefaultFormat
}
