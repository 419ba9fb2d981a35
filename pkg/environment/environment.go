// Package environment loads environment variables from the process and from
// optional dotenv files.
package environment

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

// ToMap converts an environment variable specification from a slice of
// "KEY=value" strings to a map with equivalent contents. Any entries not
// adhering to the specified format are ignored. Entries are processed in order,
// meaning that the last entry seen for a key will be what populates the map.
func ToMap(environment []string) map[string]string {
	result := make(map[string]string, len(environment))
	for _, specification := range environment {
		if key, value, ok := strings.Cut(specification, "="); ok && key != "" {
			result[key] = value
		}
	}
	return result
}

// Load loads a dotenv file and merges the current process environment into it,
// with the process environment taking precedence. If path is empty or the file
// doesn't exist, the result is just the process environment.
func Load(path rpath.Path) (map[string]string, error) {
	// Load the dotenv file, if any.
	var environment map[string]string
	if !path.IsEmpty() {
		var err error
		environment, err = godotenv.Read(path.Native())
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "unable to load environment file (%s)", path)
		}
	}

	// If the environment wasn't allocated, then do so now.
	if environment == nil {
		environment = make(map[string]string)
	}

	// Add environment variables from the process.
	for key, value := range ToMap(os.Environ()) {
		environment[key] = value
	}

	// Success.
	return environment, nil
}
