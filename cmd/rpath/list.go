package main

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/rpath/pkg/rpath"
)

var (
	// directoryColor renders directory names.
	directoryColor = color.New(color.FgBlue, color.Bold)
	// symlinkColor renders symbolic link names.
	symlinkColor = color.New(color.FgCyan)
)

// colorizeName renders an entry name according to its type.
func colorizeName(entry rpath.DirectoryEntry) string {
	switch {
	case entry.IsDir():
		return directoryColor.Sprint(entry.Name())
	case entry.Type()&fs.ModeSymlink != 0:
		return symlinkColor.Sprint(entry.Name())
	default:
		return entry.Name()
	}
}

// printLong prints an entry with its mode, size, and modification time.
func printLong(output io.Writer, entry rpath.DirectoryEntry, human bool) error {
	info, err := entry.Info()
	if err != nil {
		return err
	}
	size := strconv.FormatInt(info.Size(), 10)
	modified := info.ModTime().Format("2006-01-02 15:04")
	if human {
		size = humanize.Bytes(uint64(info.Size()))
		modified = humanize.Time(info.ModTime())
	}
	_, err = fmt.Fprintf(output, "%s %10s %16s %s\n", info.Mode(), size, modified, colorizeName(entry))
	return err
}

// listMain is the entry point for the list command.
func listMain(command *cobra.Command, arguments []string) error {
	// Determine the target directory.
	target := rpath.From(".")
	if len(arguments) == 1 {
		target = rpath.From(arguments[0])
	}

	// Determine the listing format.
	flags := command.Flags()
	long := settings.List.Long
	if flags.Changed("long") {
		long = listConfiguration.long
	}
	human := settings.List.Human
	if flags.Changed("raw") {
		human = !listConfiguration.raw
	}

	// Read entries. Failures for individual entries are reported as warnings
	// and don't prevent the remaining entries from being listed.
	iterator, err := target.ReadDir()
	if err != nil {
		return err
	}
	var entries []rpath.DirectoryEntry
	for entry, err := range iterator.All() {
		if err != nil {
			logger.Warn(err)
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	logger.Debugf("read %d entries from %s", len(entries), target)

	// Print entries.
	output := command.OutOrStdout()
	for _, entry := range entries {
		if long {
			if err := printLong(output, entry, human); err != nil {
				logger.Warn(errors.Wrapf(err, "unable to query %s", entry.Path()))
			}
		} else if _, err := fmt.Fprintln(output, colorizeName(entry)); err != nil {
			return err
		}
	}

	// Success.
	return nil
}

// listCommand is the list command.
var listCommand = &cobra.Command{
	Use:          "list [<directory>]",
	Aliases:      []string{"ls"},
	Short:        "List the contents of a directory",
	Args:         cobra.MaximumNArgs(1),
	RunE:         listMain,
	SilenceUsage: true,
}

// listConfiguration stores configuration for the list command.
var listConfiguration struct {
	// long indicates that entries should be listed with metadata.
	long bool
	// raw indicates that sizes and times should not be humanized.
	raw bool
}

func init() {
	flags := listCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&listConfiguration.long, "long", "l", false, "Include mode, size, and modification time")
	flags.BoolVar(&listConfiguration.raw, "raw", false, "Print exact sizes and timestamps in long listings")
}
