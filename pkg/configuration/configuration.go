// Package configuration provides loading facilities for the rpath command's
// YAML configuration file and its environment variable overrides.
package configuration

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mutagen-io/rpath/pkg/encoding"
	"github.com/mutagen-io/rpath/pkg/logging"
	"github.com/mutagen-io/rpath/pkg/rpath"
)

const (
	// FileName is the name of the configuration file within the user's home
	// directory.
	FileName = ".rpath.yml"

	// LogLevelEnvironmentVariable overrides the configured log level.
	LogLevelEnvironmentVariable = "RPATH_LOG_LEVEL"
	// ColorEnvironmentVariable overrides the configured color mode.
	ColorEnvironmentVariable = "RPATH_COLOR"
	// ListLongEnvironmentVariable overrides the configured listing format.
	ListLongEnvironmentVariable = "RPATH_LIST_LONG"
)

// Configuration is the YAML configuration object type.
type Configuration struct {
	// Logging is the logging configuration.
	Logging struct {
		// Level is the name of the log level.
		Level string `yaml:"level"`
	} `yaml:"logging"`
	// Color controls colorized output.
	Color ColorMode `yaml:"color"`
	// List is the directory listing configuration.
	List struct {
		// Long indicates whether or not listings include size, modification
		// time, and type information.
		Long bool `yaml:"long"`
		// Human indicates whether or not sizes and times in long listings are
		// rendered in human-readable form.
		Human bool `yaml:"human"`
	} `yaml:"list"`
}

// Default returns the default configuration.
func Default() *Configuration {
	result := &Configuration{Color: ColorModeAuto}
	result.Logging.Level = logging.LevelWarn.String()
	result.List.Human = true
	return result
}

// Path returns the path of the configuration file. It does not verify that
// the file exists.
func Path() (rpath.Path, error) {
	home, err := rpath.HomeDirectory()
	if err != nil {
		return rpath.Path{}, errors.Wrap(err, "unable to compute path to home directory")
	}
	return home.Join(FileName), nil
}

// Load loads the configuration file at the specified path on top of the
// default configuration. If path is empty, the default location is used. If the
// file doesn't exist, the default configuration is returned. The returned
// structure is not re-used, so its members can be freely mutated.
func Load(path rpath.Path) (*Configuration, error) {
	// Determine the path.
	if path.IsEmpty() {
		if p, err := Path(); err != nil {
			return nil, err
		} else {
			path = p
		}
	}

	// Attempt to load the configuration from disk. Values not specified in the
	// file retain their defaults.
	result := Default()
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "unable to load configuration from %s", path)
		}
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}

// ApplyEnvironment applies environment variable overrides from the specified
// environment.
func (c *Configuration) ApplyEnvironment(environment map[string]string) error {
	if level, ok := environment[LogLevelEnvironmentVariable]; ok && level != "" {
		c.Logging.Level = level
	}
	if color, ok := environment[ColorEnvironmentVariable]; ok && color != "" {
		c.Color = ColorMode(color)
	}
	if long, ok := environment[ListLongEnvironmentVariable]; ok && long != "" {
		value, err := strconv.ParseBool(long)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", ListLongEnvironmentVariable)
		}
		c.List.Long = value
	}
	return c.EnsureValid()
}

// LogLevel returns the configured log level.
func (c *Configuration) LogLevel() logging.Level {
	level, _ := logging.NameToLevel(c.Logging.Level)
	return level
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	if _, ok := logging.NameToLevel(c.Logging.Level); !ok {
		return errors.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if !c.Color.valid() {
		return errors.Errorf("invalid color mode: %s", c.Color)
	}
	return nil
}
