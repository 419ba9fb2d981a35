package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/rpath/cmd"
	"github.com/mutagen-io/rpath/pkg/rpath"
)

// basenameMain is the entry point for the basename command.
func basenameMain(command *cobra.Command, arguments []string) error {
	basename, err := rpath.From(arguments[0]).Basename()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(command.OutOrStdout(), basename)
	return err
}

// basenameCommand is the basename command.
var basenameCommand = &cobra.Command{
	Use:          "basename <path>",
	Short:        "Print the final component of a path",
	Args:         cmd.RequirePath,
	RunE:         basenameMain,
	SilenceUsage: true,
}

// dirnameMain is the entry point for the dirname command.
func dirnameMain(command *cobra.Command, arguments []string) error {
	dirname, err := rpath.From(arguments[0]).Dirname()
	if err != nil {
		return err
	}
	return dirname.Display(command.OutOrStdout())
}

// dirnameCommand is the dirname command.
var dirnameCommand = &cobra.Command{
	Use:          "dirname <path>",
	Short:        "Print the parent of a path",
	Args:         cmd.RequirePath,
	RunE:         dirnameMain,
	SilenceUsage: true,
}

// extensionMain is the entry point for the extension command.
func extensionMain(command *cobra.Command, arguments []string) error {
	extension, err := rpath.From(arguments[0]).Extension()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(command.OutOrStdout(), extension)
	return err
}

// extensionCommand is the extension command.
var extensionCommand = &cobra.Command{
	Use:   "extension <path>",
	Short: "Print the text after the final dot of a path's basename",
	Long: `Print the text after the final dot of a path's basename.

If the basename contains no dot, the whole basename is printed.`,
	Args:         cmd.RequirePath,
	RunE:         extensionMain,
	SilenceUsage: true,
}

// joinMain is the entry point for the join command.
func joinMain(command *cobra.Command, arguments []string) error {
	path := rpath.From(arguments[0])
	path.JoinMultiple(arguments[1:]...)
	return path.Display(command.OutOrStdout())
}

// joinCommand is the join command.
var joinCommand = &cobra.Command{
	Use:          "join <path> <component>...",
	Short:        "Join components onto a path",
	Args:         cmd.RequirePathAnd(1),
	RunE:         joinMain,
	SilenceUsage: true,
}

// withBasenameMain is the entry point for the with-basename command.
func withBasenameMain(command *cobra.Command, arguments []string) error {
	result, err := rpath.From(arguments[0]).WithBasename(arguments[1])
	if err != nil {
		return err
	}
	return result.Display(command.OutOrStdout())
}

// withBasenameCommand is the with-basename command.
var withBasenameCommand = &cobra.Command{
	Use:          "with-basename <path> <name>",
	Short:        "Replace the final component of a path",
	Args:         cobra.ExactArgs(2),
	RunE:         withBasenameMain,
	SilenceUsage: true,
}

// withDirnameMain is the entry point for the with-dirname command.
func withDirnameMain(command *cobra.Command, arguments []string) error {
	result, err := rpath.From(arguments[0]).WithDirname(arguments[1])
	if err != nil {
		return err
	}
	return result.Display(command.OutOrStdout())
}

// withDirnameCommand is the with-dirname command.
var withDirnameCommand = &cobra.Command{
	Use:          "with-dirname <path> <directory>",
	Short:        "Move the final component of a path under another directory",
	Args:         cobra.ExactArgs(2),
	RunE:         withDirnameMain,
	SilenceUsage: true,
}
