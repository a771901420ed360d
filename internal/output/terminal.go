// Package output renders decoded Oracle request reports to the
// terminal or as JSON.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Colors for report rendering
var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// section prints a report section heading.
func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n\n", bold(cyan("===== "+title+" =====")))
}

// field prints one "Label: value" report line.
func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s: %s\n", label, value)
}

// DisableColors turns off color output (for non-TTY or JSON mode)
func DisableColors() {
	color.NoColor = true
}

// ClearScreen clears the terminal (for watch mode)
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// truncateID shortens an object ID for table display.
func truncateID(id string) string {
	if len(id) <= 14 {
		return id
	}
	return id[:8] + "..." + id[len(id)-4:]
}
