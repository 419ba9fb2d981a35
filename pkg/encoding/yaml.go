package encoding

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Unknown fields are rejected. An empty file leaves
// the structure unmodified.
func LoadAndUnmarshalYAML(path rpath.Path, value any) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(value); err != nil && err != io.EOF {
			return err
		}
		return nil
	})
}
