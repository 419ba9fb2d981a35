package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/rpath/cmd"
	"github.com/mutagen-io/rpath/pkg/rpath"
)

// expandMain is the entry point for the expand command.
func expandMain(command *cobra.Command, arguments []string) error {
	path := rpath.From(arguments[0])

	// Attempt resolution, falling back to the original path unless strict
	// resolution was requested.
	canonical, err := path.Canonicalize()
	if err != nil {
		if expandConfiguration.strict {
			return err
		}
		logger.Infof("using unresolved path: %v", err)
		canonical = path
	}
	return canonical.Display(command.OutOrStdout())
}

// expandCommand is the expand command.
var expandCommand = &cobra.Command{
	Use:   "expand <path>",
	Short: "Resolve a path to its canonical absolute form",
	Long: `Resolve a path to its canonical absolute form, evaluating symbolic links.

If the path can't be resolved (e.g. because it doesn't exist), it is printed
unchanged unless --strict is specified.`,
	Args:         cmd.RequirePath,
	RunE:         expandMain,
	SilenceUsage: true,
}

// expandConfiguration stores configuration for the expand command.
var expandConfiguration struct {
	// strict indicates that resolution failures should be reported.
	strict bool
}

func init() {
	flags := expandCommand.Flags()
	flags.SortFlags = false
	flags.BoolVar(&expandConfiguration.strict, "strict", false, "Fail if the path can't be resolved")
}

// normalizeMain is the entry point for the normalize command.
func normalizeMain(command *cobra.Command, arguments []string) error {
	normalized, err := rpath.From(arguments[0]).Normalize()
	if err != nil {
		return err
	}
	return normalized.Display(command.OutOrStdout())
}

// normalizeCommand is the normalize command.
var normalizeCommand = &cobra.Command{
	Use:          "normalize <path>",
	Short:        "Expand a leading tilde and convert a path to a clean absolute path",
	Args:         cmd.RequirePath,
	RunE:         normalizeMain,
	SilenceUsage: true,
}
