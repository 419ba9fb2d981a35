package rpath

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// changeDirectory switches the working directory for the duration of a test.
func changeDirectory(t *testing.T, directory string) {
	t.Helper()
	previous, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to get working directory:", err)
	}
	if err := os.Chdir(directory); err != nil {
		t.Fatal("unable to change working directory:", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(previous); err != nil {
			t.Error("unable to restore working directory:", err)
		}
	})
}

func TestPwd(t *testing.T) {
	expected, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to get working directory:", err)
	}
	if pwd, err := Pwd(); err != nil {
		t.Fatal("pwd failed:", err)
	} else if pwd.Native() != expected {
		t.Error("pwd does not match working directory:", pwd.Native(), "!=", expected)
	}
}

func TestPwdRemoved(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the working directory can't be removed on Windows")
	}

	// Switch into a directory and then remove it. Clear PWD so that the
	// working directory can't be recovered from the environment.
	directory, err := os.MkdirTemp(t.TempDir(), "removed")
	if err != nil {
		t.Fatal("unable to create directory:", err)
	}
	changeDirectory(t, directory)
	if err := os.Remove(directory); err != nil {
		t.Fatal("unable to remove working directory:", err)
	}
	t.Setenv("PWD", "")

	// Verify that both the error kind and the operating system cause are
	// exposed.
	_, err = Pwd()
	if !errors.Is(err, ErrEnvironmentUnavailable) {
		t.Error("pwd failure not reported as environment failure:", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("pwd failure does not expose non-existence cause:", err)
	}
}

func TestHomeDirectory(t *testing.T) {
	expected, err := os.UserHomeDir()
	if err != nil {
		t.Skip("home directory not available from environment:", err)
	}
	if home, err := HomeDirectory(); err != nil {
		t.Fatal("home directory lookup failed:", err)
	} else if home.Native() != expected {
		t.Error("home directory does not match expected:", home.Native(), "!=", expected)
	}
}

func TestExpandExisting(t *testing.T) {
	// Create a source directory and switch into its parent.
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "src"), 0700); err != nil {
		t.Fatal("unable to create directory:", err)
	}
	changeDirectory(t, root)

	// Compute the expected result. The temporary directory may itself sit
	// beneath a symbolic link (e.g. on macOS), so resolve the working
	// directory as well.
	pwd, err := Pwd()
	if err != nil {
		t.Fatal("pwd failed:", err)
	}
	resolved, err := filepath.EvalSymlinks(pwd.Native())
	if err != nil {
		t.Fatal("unable to resolve working directory:", err)
	}
	expected := From(resolved).Join("src")

	// Verify expansion.
	if expanded := From(native("./src")).Expand(); !expanded.Equal(expected) {
		t.Error("expanded path does not match expected:", expanded, "!=", expected)
	}
}

func TestExpandMissingFallsBack(t *testing.T) {
	changeDirectory(t, t.TempDir())
	original := From(native("./src"))
	if expanded := original.Expand(); expanded != original {
		t.Error("expansion of missing path did not fall back:", expanded.Native())
	}
	if _, err := original.Canonicalize(); !errors.Is(err, os.ErrNotExist) {
		t.Error("canonicalization of missing path did not report non-existence:", err)
	}
}

func TestExpandMissingParentFallsBack(t *testing.T) {
	changeDirectory(t, t.TempDir())

	// A parent reference beneath a missing directory doesn't exist, even though
	// it would clean lexically to the working directory.
	original := From(native("missing/.."))
	if expanded := original.Expand(); expanded != original {
		t.Error("expansion of missing parent reference did not fall back:", expanded.Native())
	}

	// The same holds for a parent reference beneath a regular file.
	if err := os.WriteFile("file.txt", nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	original = From(native("file.txt/.."))
	if expanded := original.Expand(); expanded != original {
		t.Error("expansion of parent reference beneath file did not fall back:", expanded.Native())
	}
}

func TestExpandResolvesLinkBeforeParent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic link creation requires privileges on Windows")
	}

	// Create a nested target and a link to it.
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal("unable to resolve temporary directory:", err)
	}
	target := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(target, 0700); err != nil {
		t.Fatal("unable to create target:", err)
	}
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal("unable to create link:", err)
	}

	// The parent of the link is the parent of its target.
	expected := filepath.Join(root, "a")
	if expanded := From(link).Join("..").Expand(); expanded.Native() != expected {
		t.Error("expanded path does not match expected:", expanded.Native(), "!=", expected)
	}

	// Relative paths resolve the same way.
	changeDirectory(t, root)
	if expanded := From(native("link/..")).Expand(); expanded.Native() != expected {
		t.Error("expanded relative path does not match expected:", expanded.Native(), "!=", expected)
	}
}

func TestExpandResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic link creation requires privileges on Windows")
	}

	// Create a target and a link to it.
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal("unable to resolve temporary directory:", err)
	}
	target := filepath.Join(root, "target")
	if err := os.Mkdir(target, 0700); err != nil {
		t.Fatal("unable to create target:", err)
	}
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal("unable to create link:", err)
	}

	// Verify resolution.
	if expanded := From(root).Join(native("target/../link")).Expand(); expanded.Native() != target {
		t.Error("expanded link does not match target:", expanded.Native(), "!=", target)
	}
}

// TestTildeNotPathSeparator ensures that ~ is not considered a path separator
// on the platform, since tilde expansion relies on this.
func TestTildeNotPathSeparator(t *testing.T) {
	if os.IsPathSeparator('~') {
		t.Fatal("tilde considered path separator")
	}
}

func TestExpandTildePassthrough(t *testing.T) {
	for _, path := range []string{"", "a/~", native("/~x")} {
		if expanded, err := From(path).expandTilde(); err != nil {
			t.Error("tilde expansion failed:", err)
		} else if expanded.Native() != path {
			t.Error("path without leading tilde was modified:", expanded.Native())
		}
	}
}

func TestExpandTildeHome(t *testing.T) {
	// Compute the path to the user's home directory.
	home, err := HomeDirectory()
	if err != nil {
		t.Fatal("unable to compute home directory:", err)
	}

	// Perform expansion of both forms.
	for _, path := range []string{"~", native("~/")} {
		if expanded, err := From(path).expandTilde(); err != nil {
			t.Fatal("tilde expansion failed:", err)
		} else if !expanded.Equal(home) {
			t.Error("tilde-expanded path does not match expected:", expanded, "!=", home)
		}
	}

	// Verify that the remainder is joined beneath the home directory.
	if expanded, err := From(native("~/a/b")).expandTilde(); err != nil {
		t.Fatal("tilde expansion failed:", err)
	} else if expected := home.Join(native("a/b")); !expanded.Equal(expected) {
		t.Error("tilde-expanded path does not match expected:", expanded, "!=", expected)
	}
}

// currentUsername is a utility wrapper around user.Current for Windows systems,
// where the Username field will be of the form DOMAIN\username.
func currentUsername() (string, error) {
	// Grab the user.
	currentUser, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "unable to get current user")
	}

	// If we're on a POSIX system, we're done.
	if runtime.GOOS != "windows" {
		return currentUser.Username, nil
	}

	// If we're on Windows, there may be a DOMAIN\ prefix on the username.
	if index := strings.IndexByte(currentUser.Username, '\\'); index >= 0 {
		if index == len(currentUser.Username)-1 {
			return "", errors.New("domain extends to end of username")
		}
		return currentUser.Username[index+1:], nil
	}
	return currentUser.Username, nil
}

func TestExpandTildeLookup(t *testing.T) {
	// Grab the current user and their home directory.
	username, err := currentUsername()
	if err != nil {
		t.Skip("unable to look up current username:", err)
	}
	lookedUp, err := user.Lookup(username)
	if err != nil {
		t.Skip("unable to look up user:", err)
	}

	// Perform expansion.
	expanded, err := From(fmt.Sprintf("~%s%c", username, filepath.Separator)).expandTilde()
	if err != nil {
		t.Fatal("tilde expansion failed:", err)
	}

	// Ensure that the result matches the expected values.
	if !expanded.Equal(From(lookedUp.HomeDir)) {
		t.Error("tilde-expanded path does not match expected:", expanded, "!=", lookedUp.HomeDir)
	}
}

func TestNormalize(t *testing.T) {
	// Compute the expected home-relative result.
	home, err := HomeDirectory()
	if err != nil {
		t.Fatal("unable to compute home directory:", err)
	}
	expected := filepath.Join(home.Native(), "a", "c")

	// Normalize and verify.
	normalized, err := From(native("~/a/b/../c")).Normalize()
	if err != nil {
		t.Fatal("normalization failed:", err)
	} else if normalized.Native() != expected {
		t.Error("normalized path does not match expected:", normalized.Native(), "!=", expected)
	}
}

func TestNormalizeRelative(t *testing.T) {
	pwd, err := Pwd()
	if err != nil {
		t.Fatal("pwd failed:", err)
	}
	normalized, err := From("missing").Normalize()
	if err != nil {
		t.Fatal("normalization failed:", err)
	} else if !normalized.Equal(pwd.Join("missing")) {
		t.Error("normalized path does not match expected:", normalized, "!=", pwd.Join("missing"))
	}
}
