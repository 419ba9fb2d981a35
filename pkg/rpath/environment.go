package rpath

import (
	"os"
	"os/user"

	"github.com/pkg/errors"
)

// Pwd returns the current working directory of the process.
func Pwd() (Path, error) {
	directory, err := os.Getwd()
	if err != nil {
		return Path{}, wrapKind(ErrEnvironmentUnavailable, err, "unable to get current directory")
	}
	return Path{native: directory}, nil
}

// HomeDirectory returns the current user's home directory. It consults the
// environment first and then the user database. An empty result is treated as
// a failure, because when compiling without cgo the user database lookup falls
// back to $HOME and we can't guarantee that the environment is sane.
func HomeDirectory() (Path, error) {
	// Try the environment.
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return Path{native: home}, nil
	}

	// Fall back to the user database.
	currentUser, err := user.Current()
	if err != nil {
		return Path{}, wrapKind(ErrEnvironmentUnavailable, err, "unable to lookup current user")
	} else if currentUser.HomeDir == "" {
		return Path{}, errors.Wrap(ErrEnvironmentUnavailable, "unable to determine home directory")
	}
	return Path{native: currentUser.HomeDir}, nil
}
