// Package must wraps the fallible operations of the rpath package with
// process-terminating error handling. Each function prints an error message to
// standard error and exits with status 1 if the underlying operation fails.
// It is intended for small programs and scripts where a missing path component
// is unrecoverable.
package must

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

var (
	// diagnostics is the stream to which fatal errors are written.
	diagnostics io.Writer = color.Error
	// exit terminates the process.
	exit = os.Exit
)

// fatal prints an error message and terminates the process.
func fatal(err error) {
	fmt.Fprintln(diagnostics, color.RedString("Error:"), err)
	exit(1)
}

func must1[T any](t T, err error) T {
	if err != nil {
		fatal(err)
	}
	return t
}

// Pwd returns the current working directory.
func Pwd() rpath.Path {
	return must1(rpath.Pwd())
}

// HomeDirectory returns the current user's home directory.
func HomeDirectory() rpath.Path {
	return must1(rpath.HomeDirectory())
}

// Basename returns the final component of path.
func Basename(path rpath.Path) string {
	return must1(path.Basename())
}

// Dirname returns the parent of path.
func Dirname(path rpath.Path) rpath.Path {
	return must1(path.Dirname())
}

// WithBasename returns path with its final component replaced by name.
func WithBasename(path rpath.Path, name string) rpath.Path {
	return must1(path.WithBasename(name))
}

// WithDirname returns the final component of path placed under directory.
func WithDirname(path rpath.Path, directory string) rpath.Path {
	return must1(path.WithDirname(directory))
}

// Extension returns the extension of path.
func Extension(path rpath.Path) string {
	return must1(path.Extension())
}
