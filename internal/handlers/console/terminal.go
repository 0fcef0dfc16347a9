package console

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be read
const DefaultWidth = 80

// Width returns the width of the terminal behind f, or DefaultWidth
func Width(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
