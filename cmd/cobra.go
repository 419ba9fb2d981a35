package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Mainify is a small utility that wraps a non-standard Cobra entry point (one
// returning an error) and generates a standard Cobra entry point. It's useful
// for entry points to be able to rely on defer-based cleanup, which doesn't
// occur if the entry point terminates the process. This method allows the entry
// point to indicate an error while still performing cleanup.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}

// DisallowArguments is a Cobra arguments validator that disallows positional
// arguments.
func DisallowArguments(_ *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("command does not accept arguments")
	}
	return nil
}

// RequirePath is a Cobra arguments validator that requires exactly one
// positional path argument.
func RequirePath(_ *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.Errorf("expected exactly one path argument, got %d", len(arguments))
	}
	return nil
}

// RequirePathAnd returns a Cobra arguments validator that requires a path
// argument followed by at least minimum additional arguments.
func RequirePathAnd(minimum int) cobra.PositionalArgs {
	return func(_ *cobra.Command, arguments []string) error {
		if len(arguments) < minimum+1 {
			return errors.Errorf("expected a path and at least %d more argument(s), got %d argument(s)", minimum, len(arguments))
		}
		return nil
	}
}
