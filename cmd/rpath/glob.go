package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

// globMain is the entry point for the glob command.
func globMain(command *cobra.Command, arguments []string) error {
	matches, err := rpath.From(arguments[0]).Glob(arguments[1])
	if err != nil {
		return err
	}
	for _, match := range matches {
		if err := match.Display(command.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}

// globCommand is the glob command.
var globCommand = &cobra.Command{
	Use:   "glob <directory> <pattern>",
	Short: "List paths beneath a directory matching a pattern",
	Long: `List paths beneath a directory matching a pattern.

Patterns use forward slashes and support ** to match any number of
directories, as well as {a,b} alternation.`,
	Args:         cobra.ExactArgs(2),
	RunE:         globMain,
	SilenceUsage: true,
}

// matchMain is the entry point for the match command.
func matchMain(command *cobra.Command, arguments []string) error {
	matched, err := rpath.From(arguments[0]).Match(arguments[1])
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(command.OutOrStdout(), matched); err != nil {
		return err
	}
	if !matched {
		logger.Debugf("%s does not match %s", arguments[0], arguments[1])
	}
	return nil
}

// matchCommand is the match command.
var matchCommand = &cobra.Command{
	Use:          "match <path> <pattern>",
	Short:        "Report whether a path matches a pattern",
	Args:         cobra.ExactArgs(2),
	RunE:         matchMain,
	SilenceUsage: true,
}
