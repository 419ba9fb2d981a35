package rpath

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoBasename indicates that a path has no final normal component,
	// e.g. because it is empty, a root, or ends in "." or "..".
	ErrNoBasename = errors.New("path has no basename")
	// ErrNoParent indicates that a path has no parent, e.g. because it is
	// empty or consists only of a root.
	ErrNoParent = errors.New("path has no parent")
	// ErrNotUTF8 indicates that a path component is not valid UTF-8 text.
	ErrNotUTF8 = errors.New("path component is not valid UTF-8")
	// ErrExtensionNotFound indicates that no extension could be extracted.
	ErrExtensionNotFound = errors.New("extension not found")
	// ErrEnvironmentUnavailable indicates that the process environment could
	// not provide a requested location (working or home directory).
	ErrEnvironmentUnavailable = errors.New("environment location unavailable")
)

// wrapKind annotates a sentinel error with a message and an optional cause.
// The result matches the sentinel under errors.Is and exposes the cause under
// errors.As.
func wrapKind(kind error, cause error, message string) error {
	if cause == nil {
		return errors.Wrap(kind, message)
	}
	return &kindError{kind: kind, cause: cause, message: message}
}

// kindError pairs an error kind with an underlying operating system error.
type kindError struct {
	// kind is the sentinel error identifying the failure.
	kind error
	// cause is the underlying error that triggered the failure.
	cause error
	// message describes the failed operation.
	message string
}

// Error implements error.Error.
func (e *kindError) Error() string {
	return e.message + ": " + e.kind.Error() + ": " + e.cause.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}
