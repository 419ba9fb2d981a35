package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/rpath/cmd"
	"github.com/mutagen-io/rpath/pkg/version"
)

// versionMain is the entry point for the version command.
func versionMain(command *cobra.Command, _ []string) error {
	// Print version information.
	_, err := fmt.Fprintln(command.OutOrStdout(), version.Version)
	return err
}

// versionCommand is the version command.
var versionCommand = &cobra.Command{
	Use:          "version",
	Short:        "Show version information",
	Args:         cmd.DisallowArguments,
	RunE:         versionMain,
	SilenceUsage: true,
}
