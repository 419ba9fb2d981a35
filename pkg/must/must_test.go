package must

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

// exitCode is the panic value used to intercept process termination.
type exitCode int

// intercept replaces process termination for the duration of a test. The
// returned function runs an operation and reports the exit code it requested
// (or -1 if it returned normally) along with any diagnostic output.
func intercept(t *testing.T) func(func()) (int, string) {
	t.Helper()

	// Swap out termination and diagnostics, restoring them afterward.
	previousExit, previousDiagnostics := exit, diagnostics
	buffer := &bytes.Buffer{}
	exit = func(code int) { panic(exitCode(code)) }
	diagnostics = buffer
	t.Cleanup(func() {
		exit, diagnostics = previousExit, previousDiagnostics
	})

	// Create the runner.
	return func(operation func()) (code int, output string) {
		buffer.Reset()
		defer func() {
			if r := recover(); r != nil {
				c, ok := r.(exitCode)
				if !ok {
					panic(r)
				}
				code, output = int(c), buffer.String()
			}
		}()
		operation()
		return -1, buffer.String()
	}
}

func TestBasenameSuccess(t *testing.T) {
	run := intercept(t)
	var basename string
	if code, _ := run(func() { basename = Basename(rpath.From(filepath.FromSlash("/temp/abc.txt"))) }); code != -1 {
		t.Fatal("basename terminated unexpectedly with code", code)
	}
	if basename != "abc.txt" {
		t.Error("basename does not match expected:", basename)
	}
}

func TestBasenameFatal(t *testing.T) {
	run := intercept(t)
	code, output := run(func() { Basename(rpath.New()) })
	if code != 1 {
		t.Error("basename of empty path did not exit with status 1:", code)
	}
	if !strings.Contains(output, rpath.ErrNoBasename.Error()) {
		t.Errorf("diagnostic does not describe failure: %q", output)
	}
}

func TestDirnameFatal(t *testing.T) {
	run := intercept(t)
	if code, output := run(func() { Dirname(rpath.From(filepath.FromSlash("/"))) }); code != 1 {
		t.Error("dirname of root did not exit with status 1:", code)
	} else if !strings.Contains(output, rpath.ErrNoParent.Error()) {
		t.Errorf("diagnostic does not describe failure: %q", output)
	}
}

func TestWithBasenameAndDirname(t *testing.T) {
	run := intercept(t)
	var replaced rpath.Path
	code, _ := run(func() {
		replaced = WithDirname(WithBasename(rpath.From(filepath.FromSlash("/a/b.txt")), "c.md"), filepath.FromSlash("/d"))
	})
	if code != -1 {
		t.Fatal("operation terminated unexpectedly with code", code)
	}
	if expected := rpath.From(filepath.FromSlash("/d/c.md")); !replaced.Equal(expected) {
		t.Error("result does not match expected:", replaced, "!=", expected)
	}
}

func TestExtension(t *testing.T) {
	run := intercept(t)
	var extension string
	if code, _ := run(func() { extension = Extension(rpath.From("a.b.c")) }); code != -1 {
		t.Fatal("extension terminated unexpectedly with code", code)
	}
	if extension != "c" {
		t.Error("extension does not match expected:", extension)
	}
	if code, _ := run(func() { Extension(rpath.New()) }); code != 1 {
		t.Error("extension of empty path did not exit with status 1:", code)
	}
}

func TestEnvironment(t *testing.T) {
	run := intercept(t)
	if code, _ := run(func() { Pwd() }); code != -1 {
		t.Error("pwd terminated unexpectedly with code", code)
	}
	t.Setenv("HOME", t.TempDir())
	if code, _ := run(func() { HomeDirectory() }); code != -1 {
		t.Error("home directory lookup terminated unexpectedly with code", code)
	}
}

func TestPwdFatal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the working directory can't be removed on Windows")
	}

	// Switch into a directory that's then removed, restoring the original
	// working directory afterward.
	previous, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to get working directory:", err)
	}
	directory, err := os.MkdirTemp(t.TempDir(), "removed")
	if err != nil {
		t.Fatal("unable to create directory:", err)
	}
	if err := os.Chdir(directory); err != nil {
		t.Fatal("unable to change working directory:", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(previous); err != nil {
			t.Error("unable to restore working directory:", err)
		}
	})
	if err := os.Remove(directory); err != nil {
		t.Fatal("unable to remove working directory:", err)
	}
	t.Setenv("PWD", "")

	// Verify termination.
	run := intercept(t)
	if code, output := run(func() { Pwd() }); code != 1 {
		t.Error("pwd in removed directory did not exit with status 1:", code)
	} else if !strings.Contains(output, "Error:") || !strings.Contains(output, rpath.ErrEnvironmentUnavailable.Error()) {
		t.Errorf("diagnostic does not describe failure: %q", output)
	}
}
