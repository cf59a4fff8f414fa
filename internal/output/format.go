// Package output provides terminal output helpers for the lcui-release CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ConfigureColor decides whether colored output is used and applies it to
// fatih/color globally. Colors are off when plain is set, when NO_COLOR is
// set, or when w is not a terminal.
func ConfigureColor(w io.Writer, plain bool) bool {
	enabled := !plain && os.Getenv("NO_COLOR") == "" && IsTerminal(w)
	color.NoColor = !enabled
	return enabled
}

// PrintSuccess prints a green checkmark followed by the message, with the
// highlighted part in cyan.
func PrintSuccess(out io.Writer, message, highlight string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	if highlight == "" {
		fmt.Fprintf(out, "%s %s\n", green("✓"), message)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", green("✓"), message, cyan(highlight))
}

// PrintFailure prints a red cross followed by the message.
func PrintFailure(out io.Writer, message string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), message)
}
