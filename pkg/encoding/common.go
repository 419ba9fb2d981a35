package encoding

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

// LoadAndUnmarshal reads the file at the specified path and invokes the
// specified unmarshaling callback (usually a closure) to decode its contents.
// Non-existence errors are returned unwrapped so that callers can test them
// with os.IsNotExist.
func LoadAndUnmarshal(path rpath.Path, unmarshal func([]byte) error) error {
	// Grab the file contents.
	data, err := os.ReadFile(path.Native())
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return errors.Wrap(err, "unable to load file")
	}

	// Perform the unmarshaling.
	if err := unmarshal(data); err != nil {
		return errors.Wrap(err, "unable to unmarshal data")
	}

	// Success.
	return nil
}
