package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// exit terminates the process.
var exit = os.Exit

// Error prints an error message to standard error.
func Error(err error) {
	fmt.Fprintln(color.Error, color.RedString("Error:"), err)
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	exit(1)
}
