package rpath

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// currentDirectory is the component naming the current directory.
	currentDirectory = "."
	// parentDirectory is the component naming the parent directory.
	parentDirectory = ".."
)

// decomposition is the structural form of a native path.
type decomposition struct {
	// root is the root prefix of the path (a volume name and/or a separator).
	// It is empty for relative paths.
	root string
	// names are the non-root components of the path.
	names []string
}

// decompose splits a native path into its root and components. Repeated
// separators are collapsed and "." components are dropped, except for a
// leading "." in a relative path. No other normalization is performed.
func decompose(native string) decomposition {
	// Extract the volume name, if any. This is only non-empty on Windows.
	volume := filepath.VolumeName(native)
	rest := native[len(volume):]

	// Determine whether or not the remainder is rooted. Path separators are
	// always single-byte, so we can safely inspect bytes.
	root := volume
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root += string(filepath.Separator)
	}

	// Split the remainder into names.
	var names []string
	start := 0
	for i := 0; i <= len(rest); i++ {
		if i < len(rest) && !os.IsPathSeparator(rest[i]) {
			continue
		}
		if name := rest[start:i]; name != "" {
			if name != currentDirectory || (root == "" && len(names) == 0 && start == 0) {
				names = append(names, name)
			}
		}
		start = i + 1
	}

	// Done.
	return decomposition{root: root, names: names}
}

// empty returns whether or not the decomposition has no components at all.
func (d decomposition) empty() bool {
	return d.root == "" && len(d.names) == 0
}

// components returns the full component list, with the root (if any) first.
func (d decomposition) components() []string {
	result := make([]string, 0, len(d.names)+1)
	if d.root != "" {
		result = append(result, d.root)
	}
	return append(result, d.names...)
}

// native recomposes the decomposition into a native path.
func (d decomposition) native() string {
	return d.root + strings.Join(d.names, string(filepath.Separator))
}
