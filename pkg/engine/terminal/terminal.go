// Package terminal reports the size of the controlling terminal for
// layout decisions. Every lookup degrades to an 80x24 screen when
// stdout is not attached to a terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions for a non-terminal stdout
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal dimensions
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Width returns the current terminal width
func Width() int {
	w, _ := Size()
	return w
}

// Height returns the current terminal height
func Height() int {
	_, h := Size()
	return h
}

// CenterIndent returns the left margin that centers content of the
// given width, never negative
func CenterIndent(contentWidth int) int {
	indent := (Width() - contentWidth) / 2
	if indent < 0 {
		return 0
	}
	return indent
}
