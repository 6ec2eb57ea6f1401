package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/findash/internal/cli"
	"github.com/rshade/findash/pkg/version"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// extractExitCode maps a command error to the process exit code.
func extractExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitError
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(extractExitCode(err))
}
