package rpath

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Basename returns the final component of the path. It fails with
// ErrNoBasename if the path is empty, a root, or ends in "." or "..", and with
// ErrNotUTF8 if the final component is not valid UTF-8 text.
func (p Path) Basename() (string, error) {
	// Grab the final name component, if any.
	names := decompose(p.native).names
	if len(names) == 0 {
		return "", errors.Wrapf(ErrNoBasename, "unable to get basename of %q", p.native)
	}
	name := names[len(names)-1]
	if name == currentDirectory || name == parentDirectory {
		return "", errors.Wrapf(ErrNoBasename, "unable to get basename of %q", p.native)
	}

	// Ensure that the name is representable as text.
	if !utf8.ValidString(name) {
		return "", errors.Wrapf(ErrNotUTF8, "unable to convert basename of %q", p.String())
	}

	// Success.
	return name, nil
}

// Dirname returns the parent of the path, i.e. the path without its final
// component. A single relative component has the empty path as its parent. It
// fails with ErrNoParent if the path is empty or consists only of a root.
func (p Path) Dirname() (Path, error) {
	d := decompose(p.native)
	if len(d.names) == 0 {
		return Path{}, errors.Wrapf(ErrNoParent, "unable to get dirname of %q", p.native)
	}
	d.names = d.names[:len(d.names)-1]
	return Path{native: d.native()}, nil
}

// WithBasename returns the path with its final component replaced by name.
func (p Path) WithBasename(name string) (Path, error) {
	parent, err := p.Dirname()
	if err != nil {
		return Path{}, err
	}
	return parent.Join(name), nil
}

// WithDirname returns the path's final component placed under directory.
func (p Path) WithDirname(directory string) (Path, error) {
	basename, err := p.Basename()
	if err != nil {
		return Path{}, err
	}
	return From(directory).Join(basename), nil
}

// Extension returns the text following the final "." in the basename. If the
// basename contains no ".", the whole basename is returned, so a name without
// an extension can't be distinguished from its extension by this method alone.
// A trailing "." yields an empty extension. If the path has no usable basename,
// the error matches both ErrExtensionNotFound and the basename failure.
func (p Path) Extension() (string, error) {
	basename, err := p.Basename()
	if err != nil {
		return "", wrapKind(ErrExtensionNotFound, err, "unable to compute extension")
	}
	if index := strings.LastIndexByte(basename, '.'); index >= 0 {
		return basename[index+1:], nil
	}
	return basename, nil
}
