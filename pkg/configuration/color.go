package configuration

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ColorMode controls whether or not output is colorized.
type ColorMode string

const (
	// ColorModeAuto colorizes output only when writing to a terminal.
	ColorModeAuto ColorMode = "auto"
	// ColorModeAlways always colorizes output.
	ColorModeAlways ColorMode = "always"
	// ColorModeNever never colorizes output.
	ColorModeNever ColorMode = "never"
)

// valid returns whether or not the mode is a known mode.
func (m ColorMode) valid() bool {
	return m == ColorModeAuto || m == ColorModeAlways || m == ColorModeNever
}

// Enabled returns whether or not output to the specified file should be
// colorized under this mode.
func (m ColorMode) Enabled(file *os.File) bool {
	switch m {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		fd := file.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// String implements pflag.Value.String.
func (m *ColorMode) String() string {
	return string(*m)
}

// Set implements pflag.Value.Set.
func (m *ColorMode) Set(value string) error {
	if mode := ColorMode(value); !mode.valid() {
		return errors.Errorf("invalid color mode: %s", value)
	} else {
		*m = mode
	}
	return nil
}

// Type implements pflag.Value.Type.
func (m *ColorMode) Type() string {
	return "mode"
}
