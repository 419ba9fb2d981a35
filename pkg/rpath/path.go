package rpath

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// PathLike is the set of types from which a Path can be constructed.
type PathLike interface {
	~string | ~[]byte
}

// Path is a filesystem path value. It stores the platform-native path string
// verbatim and performs no normalization beyond the structural comparison
// provided by Equal, Compare, and Hash. The zero value is the empty path.
//
// Path values are independent: transformations return new values and only
// JoinMultiple and Clear modify the receiver.
type Path struct {
	// native is the platform-native representation of the path.
	native string
}

// New creates an empty path.
func New() Path {
	return Path{}
}

// From creates a path from a string or byte slice.
func From[S PathLike](source S) Path {
	return Path{native: string(source)}
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return Path{native: p.native}
}

// Join returns a new path with component appended. If component is absolute
// (or begins with a separator), it replaces the path entirely. A separator is
// inserted only when needed and no cleaning is performed, so ".." components
// are preserved.
func (p Path) Join(component string) Path {
	// Handle replacement.
	if filepath.IsAbs(component) || (component != "" && os.IsPathSeparator(component[0])) {
		return Path{native: component}
	}

	// Handle an empty base.
	if p.native == "" {
		return Path{native: component}
	}

	// Append, adding a separator unless one is already present. A volume-only
	// base (e.g. "C:") is joined without a separator to remain relative to
	// the volume.
	if os.IsPathSeparator(p.native[len(p.native)-1]) || p.native == filepath.VolumeName(p.native) {
		return Path{native: p.native + component}
	}
	return Path{native: p.native + string(filepath.Separator) + component}
}

// JoinMultiple joins each component in order, replacing the path with the
// result. Calling it without components leaves the path unchanged.
func (p *Path) JoinMultiple(components ...string) {
	result := *p
	for _, component := range components {
		result = result.Join(component)
	}
	*p = result
}

// Clear resets the path to the empty path.
func (p *Path) Clear() {
	p.native = ""
}

// IsEmpty returns whether or not the path is empty.
func (p Path) IsEmpty() bool {
	return p.native == ""
}

// Components returns the structural components of the path, with the root (if
// any) first.
func (p Path) Components() []string {
	return decompose(p.native).components()
}

// Equal returns whether or not two paths are structurally equal, i.e. whether
// their components are identical.
func (p Path) Equal(other Path) bool {
	return p.Compare(other) == 0
}

// Compare orders paths component by component. It returns -1, 0, or 1.
func (p Path) Compare(other Path) int {
	left, right := p.Components(), other.Components()
	for i := 0; i < len(left) && i < len(right); i++ {
		if c := strings.Compare(left[i], right[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(left) < len(right):
		return -1
	case len(left) > len(right):
		return 1
	default:
		return 0
	}
}

// Hash returns a structural hash of the path. Paths that are Equal have the
// same hash.
func (p Path) Hash() uint64 {
	digest := xxhash.New()
	for _, component := range p.Components() {
		digest.WriteString(component)
		digest.Write([]byte{0})
	}
	return digest.Sum64()
}

// Native returns the platform-native representation of the path.
func (p Path) Native() string {
	return p.native
}

// String returns the path as UTF-8 text. Byte sequences that are not valid
// UTF-8 are replaced with U+FFFD.
func (p Path) String() string {
	if result, _, err := transform.String(runes.ReplaceIllFormed(), p.native); err == nil {
		return result
	}
	return strings.ToValidUTF8(p.native, string(utf8.RuneError))
}

// IsAbsolute returns whether or not the path is absolute. It does not consult
// the filesystem.
func (p Path) IsAbsolute() bool {
	return filepath.IsAbs(p.native)
}

// IsRelative returns whether or not the path is relative. It does not consult
// the filesystem.
func (p Path) IsRelative() bool {
	return !filepath.IsAbs(p.native)
}

// MarshalText implements encoding.TextMarshaler using the text form of the
// path.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	p.native = string(text)
	return nil
}
