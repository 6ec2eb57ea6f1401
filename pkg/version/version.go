// Package version exposes build information injected at link time.
package version

import "fmt"

// Build information, set with -ldflags "-X github.com/rshade/findash/pkg/version.version=...".
//
//nolint:gochecknoglobals // Link-time variables.
var (
	version   = "dev"
	gitCommit = "none"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
