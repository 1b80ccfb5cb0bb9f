package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Viewport returns how many map columns and rows fit in a terminal of the
// given size once reserved rows (header, messages, help) are taken off.
func Viewport(width, height, reservedRows int) (cols, rows int) {
	cols = width
	rows = height - reservedRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// ClearScreen returns the escape sequence that clears the screen and homes the cursor
func ClearScreen() string {
	return "\033[H\033[2J"
}
