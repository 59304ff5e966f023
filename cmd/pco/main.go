// pco runs pre-commit conformance checks on a project: file headers and
// embedded version strings.
//
// Usage:
//
//	pco header [files...]
//	pco version [files...]
//	pco all [files...]
//
// Without file arguments the files under --root are discovered with
// git ls-files, or a directory walk outside a repository.
//
// Output modes (auto-detected):
//
//	terminal  styled output (default when TTY)
//	llm       terse plain text (default when piped)
//	json      structured JSON for automation
//	sarif     SARIF 2.1.0 for code scanning
//
// Exit codes: 0 clean (warnings allowed), 1 failures, 2 usage or
// configuration error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/dkoosis/pco/internal/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := fang.Execute(
		ctx,
		root,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(reportError),
	)
	return exitCode(err)
}

// reportError prints err unless it only carries an exit status.
func reportError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *exitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintf(w, "pco: %v\n", err)
}

// exitCode maps a command error to the process exit status. Errors that are
// not an exitError come from flag or argument parsing.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 2
}
