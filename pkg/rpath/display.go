package rpath

import (
	"fmt"
	"io"
	"os"
)

// Displayer is implemented by values that can render themselves as a single
// line of text.
type Displayer interface {
	// Display writes the value's textual form, followed by a newline.
	Display(w io.Writer) error
}

// DefaultDisplay provides a fallback Display implementation. Types may embed it
// to satisfy Displayer without rendering anything specific.
type DefaultDisplay struct{}

// DefaultDisplayText is the line written by DefaultDisplay.
const DefaultDisplayText = "Default print implementation for Path"

// Display implements Displayer.Display.
func (DefaultDisplay) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, DefaultDisplayText)
	return err
}

// Display implements Displayer.Display by writing the path's string form.
func (p Path) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

// Print writes the displayed form of d to standard output.
func Print(d Displayer) error {
	return d.Display(os.Stdout)
}

// Print writes the path to standard output.
func (p Path) Print() error {
	return Print(p)
}
