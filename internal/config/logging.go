package config

import (
	"os"
	"path/filepath"

	"github.com/rshade/findash/internal/logging"
)

// logFileName is the default log file name inside the logs directory.
const logFileName = "findash.log"

// LoggingConfig is the logging section of the configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// defaultLogFile returns the log file used when none is configured.
func defaultLogFile() string {
	return filepath.Join(LogDir(), logFileName)
}

// LogDir returns the directory holding log files.
func LogDir() string {
	return filepath.Join(Dir(), "logs")
}

// EnsureLogDir creates the log directory if it does not exist.
func EnsureLogDir() error {
	return os.MkdirAll(LogDir(), configDirPerm)
}

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns the Logging section of the global configuration.
// Any command-line overrides (for example --debug) are expected to be applied
// by the caller after retrieving this value.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
