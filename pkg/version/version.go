// Package version provides version information for rpath.
package version

import (
	"fmt"
)

const (
	// Major represents the current major version of rpath.
	Major = 0
	// Minor represents the current minor version of rpath.
	Minor = 3
	// Patch represents the current patch version of rpath.
	Patch = 0
	// Tag represents a tag to be appended to the version string. It must not
	// contain spaces. If empty, no tag is appended to the version string.
	Tag = ""
)

// Version provides a stringified version of the current rpath version.
var Version string

func init() {
	// Compute the stringified version.
	if Tag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", Major, Minor, Patch, Tag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	}
}
