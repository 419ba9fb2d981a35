package rpath

import (
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// directoryBatchSize is the number of entries requested from the operating
// system per directory read.
const directoryBatchSize = 64

// DirectoryEntry is a single entry produced by a DirectoryIterator.
type DirectoryEntry struct {
	// parent is the directory being iterated.
	parent Path
	// entry is the underlying directory entry.
	entry fs.DirEntry
}

// Name returns the entry's name within its directory.
func (e DirectoryEntry) Name() string {
	return e.entry.Name()
}

// Path returns the full path of the entry, i.e. the iterated directory joined
// with the entry name.
func (e DirectoryEntry) Path() Path {
	return e.parent.Join(e.entry.Name())
}

// IsDir reports whether the entry is a directory. Symbolic links are not
// followed.
func (e DirectoryEntry) IsDir() bool {
	return e.entry.IsDir()
}

// Type returns the type bits of the entry.
func (e DirectoryEntry) Type() fs.FileMode {
	return e.entry.Type()
}

// Info returns file information for the entry. It may fail if the entry was
// removed after the directory was read.
func (e DirectoryEntry) Info() (fs.FileInfo, error) {
	return e.entry.Info()
}

// DirectoryIterator lazily produces the entries of a directory. It is
// single-use: once exhausted or closed, Next always returns io.EOF. It is not
// safe for concurrent use.
type DirectoryIterator struct {
	// path is the directory being iterated.
	path Path
	// directory is the open directory handle. It is nil once the iterator is
	// exhausted or closed.
	directory *os.File
	// pending are entries read from the directory but not yet returned.
	pending []fs.DirEntry
	// failure is a read failure that has not yet been returned.
	failure error
	// failed indicates that the most recent read failed.
	failed bool
}

// ReadDir opens the path as a directory for iteration. It fails if the path
// can't be opened or isn't a directory. The caller should Close the iterator
// if it isn't exhausted.
func (p Path) ReadDir() (*DirectoryIterator, error) {
	// Open the directory.
	directory, err := os.Open(p.native)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open directory")
	}

	// Ensure that it's actually a directory.
	if info, err := directory.Stat(); err != nil {
		directory.Close()
		return nil, errors.Wrap(err, "unable to query directory metadata")
	} else if !info.IsDir() {
		directory.Close()
		return nil, errors.Wrapf(syscall.ENOTDIR, "unable to read %q", p.native)
	}

	// Success.
	return &DirectoryIterator{path: p, directory: directory}, nil
}

// Next returns the next entry. A non-nil error other than io.EOF indicates
// that some entries couldn't be read; iteration may still continue. If two
// consecutive reads fail, the iterator is closed after the failure is
// returned. io.EOF indicates that iteration is complete.
func (i *DirectoryIterator) Next() (DirectoryEntry, error) {
	for len(i.pending) == 0 {
		// Report any outstanding failure.
		if i.failure != nil {
			err := i.failure
			i.failure = nil
			return DirectoryEntry{}, err
		}

		// Check whether or not we're done.
		if i.directory == nil {
			return DirectoryEntry{}, io.EOF
		}

		// Read the next batch.
		entries, err := i.directory.ReadDir(directoryBatchSize)
		i.pending = entries
		if err == io.EOF {
			i.release()
		} else if err != nil {
			i.failure = errors.Wrapf(err, "unable to read entries of %q", i.path.native)
			if i.failed {
				i.release()
			}
			i.failed = true
		} else {
			i.failed = false
		}
	}

	// Pop the next entry.
	entry := i.pending[0]
	i.pending = i.pending[1:]
	return DirectoryEntry{parent: i.path, entry: entry}, nil
}

// All returns a sequence over the remaining entries, including per-entry
// failures. The iterator is closed when the sequence ends or the caller stops
// ranging.
func (i *DirectoryIterator) All() iter.Seq2[DirectoryEntry, error] {
	return func(yield func(DirectoryEntry, error) bool) {
		defer i.Close()
		for {
			entry, err := i.Next()
			if err == io.EOF {
				return
			}
			if !yield(entry, err) {
				return
			}
		}
	}
}

// Close releases the directory handle. Remaining entries are discarded. It is
// safe to call Close multiple times.
func (i *DirectoryIterator) Close() error {
	i.pending = nil
	i.failure = nil
	return i.release()
}

// release closes the directory handle without discarding entries that have
// already been read.
func (i *DirectoryIterator) release() error {
	if i.directory == nil {
		return nil
	}
	err := i.directory.Close()
	i.directory = nil
	if err != nil {
		return errors.Wrap(err, "unable to close directory")
	}
	return nil
}

// Glob returns the paths beneath the path that match a doublestar glob
// pattern. The pattern uses forward slashes. An empty path is treated as the
// current directory.
func (p Path) Glob(pattern string) ([]Path, error) {
	// Determine the search root.
	root := p.native
	if root == "" {
		root = currentDirectory
	}

	// Perform the search.
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to glob %q", pattern)
	}

	// Convert matches into paths relative to the receiver.
	result := make([]Path, len(matches))
	for m, match := range matches {
		result[m] = p.Join(filepath.FromSlash(match))
	}
	return result, nil
}
