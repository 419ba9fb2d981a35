package rpath

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Canonicalize resolves the path to an absolute, cleaned path with all
// symbolic links evaluated. The path must exist. Symbolic links are resolved
// before ".." components are applied, so "link/.." names the parent of the
// link's target rather than the directory containing the link.
func (p Path) Canonicalize() (Path, error) {
	// Ensure that the path exists. The operating system resolves the path, so
	// this also rejects paths like "missing/.." and "file/..".
	if _, err := os.Stat(p.native); err != nil {
		return Path{}, errors.Wrap(err, "unable to access path")
	}

	// Anchor relative paths at the working directory without cleaning them, so
	// that symbolic links in the working directory are resolved too.
	anchored := p
	if p.IsRelative() && filepath.VolumeName(p.native) == "" {
		pwd, err := Pwd()
		if err != nil {
			return Path{}, err
		}
		anchored = pwd.Join(p.native)
	}

	// Resolve symbolic links.
	resolved, err := filepath.EvalSymlinks(anchored.native)
	if err != nil {
		return Path{}, errors.Wrap(err, "unable to resolve symbolic links")
	}

	// Ensure that the result is absolute and clean.
	absolute, err := filepath.Abs(resolved)
	if err != nil {
		return Path{}, errors.Wrap(err, "unable to compute absolute path")
	}

	// Success.
	return Path{native: absolute}, nil
}

// Expand returns the canonical form of the path if it can be computed (see
// Canonicalize) and otherwise returns the path unchanged.
func (p Path) Expand() Path {
	if canonical, err := p.Canonicalize(); err == nil {
		return canonical
	}
	return p
}

// isSeparator returns whether or not r is a path separator on the platform.
func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}

// homeOf returns the home directory of the named user, or of the current user
// if username is empty.
func homeOf(username string) (Path, error) {
	if username == "" {
		return HomeDirectory()
	}
	u, err := user.Lookup(username)
	if err != nil {
		return Path{}, errors.Wrap(err, "unable to lookup user")
	}
	return From(u.HomeDir), nil
}

// expandTilde replaces a leading ~ or ~<username> component with the
// corresponding home directory. Paths without a leading tilde are returned
// unchanged.
func (p Path) expandTilde() (Path, error) {
	// Only process relevant paths.
	if !strings.HasPrefix(p.native, "~") {
		return p, nil
	}

	// Split off the username portion.
	username, remaining := p.native[1:], ""
	if index := strings.IndexFunc(p.native, isSeparator); index > 0 {
		username, remaining = p.native[1:index], p.native[index+1:]
	}

	// Re-root the remainder at the home directory.
	home, err := homeOf(username)
	if err != nil {
		return Path{}, err
	}
	if remaining == "" {
		return home, nil
	}
	return home.Join(remaining), nil
}

// Normalize expands any leading home directory tilde, anchors relative paths
// at the working directory, and cleans the result. Unlike Canonicalize, it
// doesn't require the path to exist and doesn't resolve symbolic links.
func (p Path) Normalize() (Path, error) {
	// Expand any leading tilde.
	expanded, err := p.expandTilde()
	if err != nil {
		return Path{}, errors.Wrap(err, "unable to perform tilde expansion")
	}

	// Anchor relative paths. Volume-relative paths on Windows are left to
	// filepath.Abs, which knows the per-volume working directories.
	if expanded.IsRelative() && filepath.VolumeName(expanded.native) == "" {
		pwd, err := Pwd()
		if err != nil {
			return Path{}, err
		}
		expanded = pwd.Join(expanded.native)
	}

	// Clean the result.
	absolute, err := filepath.Abs(expanded.native)
	if err != nil {
		return Path{}, errors.Wrap(err, "unable to compute absolute path")
	}
	return Path{native: absolute}, nil
}
