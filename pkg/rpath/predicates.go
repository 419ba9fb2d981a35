package rpath

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// Exists returns whether or not the path refers to an existing filesystem
// entry. Symbolic links are followed, so a dangling link doesn't exist.
func (p Path) Exists() bool {
	_, err := os.Stat(p.native)
	return err == nil
}

// IsDir returns whether or not the path refers to a directory, following
// symbolic links.
func (p Path) IsDir() bool {
	info, err := os.Stat(p.native)
	return err == nil && info.IsDir()
}

// IsFile returns whether or not the path refers to a regular file, following
// symbolic links.
func (p Path) IsFile() bool {
	info, err := os.Stat(p.native)
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink returns whether or not the path itself is a symbolic link.
func (p Path) IsSymlink() bool {
	info, err := os.Lstat(p.native)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Match reports whether the path matches a doublestar glob pattern. Both the
// path and the pattern use forward slashes regardless of platform. It doesn't
// consult the filesystem.
func (p Path) Match(pattern string) (bool, error) {
	matched, err := doublestar.Match(pattern, filepath.ToSlash(p.native))
	if err != nil {
		return false, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	return matched, nil
}
