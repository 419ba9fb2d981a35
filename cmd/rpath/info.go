package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mutagen-io/rpath/cmd"
	"github.com/mutagen-io/rpath/pkg/rpath"
)

// pathInfo is the YAML document printed by the info command. Structural
// fields are omitted when the path lacks the corresponding component.
type pathInfo struct {
	Path       rpath.Path  `yaml:"path"`
	Components []string    `yaml:"components,flow"`
	Basename   string      `yaml:"basename,omitempty"`
	Dirname    *rpath.Path `yaml:"dirname,omitempty"`
	Extension  string      `yaml:"extension,omitempty"`
	Absolute   bool        `yaml:"absolute"`
	Exists     bool        `yaml:"exists"`
	Directory  bool        `yaml:"directory"`
	File       bool        `yaml:"file"`
	Symlink    bool        `yaml:"symlink"`
	Canonical  *rpath.Path `yaml:"canonical,omitempty"`
}

// describe computes the info document for a path.
func describe(path rpath.Path) *pathInfo {
	result := &pathInfo{
		Path:       path,
		Components: path.Components(),
		Absolute:   path.IsAbsolute(),
		Exists:     path.Exists(),
		Directory:  path.IsDir(),
		File:       path.IsFile(),
		Symlink:    path.IsSymlink(),
	}
	if basename, err := path.Basename(); err == nil {
		result.Basename = basename
	}
	if dirname, err := path.Dirname(); err == nil {
		result.Dirname = &dirname
	}
	if extension, err := path.Extension(); err == nil {
		result.Extension = extension
	}
	if canonical, err := path.Canonicalize(); err == nil {
		result.Canonical = &canonical
	}
	return result
}

// infoMain is the entry point for the info command.
func infoMain(command *cobra.Command, arguments []string) error {
	encoder := yaml.NewEncoder(command.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(describe(rpath.From(arguments[0]))); err != nil {
		return err
	}
	return encoder.Close()
}

// infoCommand is the info command.
var infoCommand = &cobra.Command{
	Use:          "info <path>",
	Short:        "Print a YAML description of a path",
	Args:         cmd.RequirePath,
	RunE:         infoMain,
	SilenceUsage: true,
}
