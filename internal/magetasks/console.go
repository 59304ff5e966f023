package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Out receives all task output.
var Out io.Writer = os.Stdout

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	width := 80
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, strings.Repeat("=", width))
	padding := max((width-runewidth.StringWidth(title))/2, 0)
	fmt.Fprintf(Out, "%s%s\n", strings.Repeat(" ", padding), title)
	fmt.Fprintln(Out, strings.Repeat("=", width))
	fmt.Fprintln(Out)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "=== %s ===\n", title)
	fmt.Fprintln(Out)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Out, "✅ %s\n", msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Out, "⚠️  %s\n", msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(Out, "❌ %s\n", msg)
}
