package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/rpath/cmd"
	"github.com/mutagen-io/rpath/pkg/rpath"
)

// pwdMain is the entry point for the pwd command.
func pwdMain(command *cobra.Command, _ []string) error {
	pwd, err := rpath.Pwd()
	if err != nil {
		return err
	}
	return pwd.Display(command.OutOrStdout())
}

// pwdCommand is the pwd command.
var pwdCommand = &cobra.Command{
	Use:          "pwd",
	Short:        "Print the current working directory",
	Args:         cmd.DisallowArguments,
	RunE:         pwdMain,
	SilenceUsage: true,
}

// homeMain is the entry point for the home command.
func homeMain(command *cobra.Command, _ []string) error {
	home, err := rpath.HomeDirectory()
	if err != nil {
		return err
	}
	return home.Display(command.OutOrStdout())
}

// homeCommand is the home command.
var homeCommand = &cobra.Command{
	Use:          "home",
	Short:        "Print the current user's home directory",
	Args:         cmd.DisallowArguments,
	RunE:         homeMain,
	SilenceUsage: true,
}
