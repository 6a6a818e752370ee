package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"zinc/internal/runner"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree and maps its error to a process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	root.SetArgs(rewriteShorthand(args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if perr := a.stopProfiles(); perr != nil {
		fmt.Fprintf(stderr, "zn: %v\n", perr)
	}
	if err == nil {
		return 0
	}
	var exitErr *runner.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintf(stderr, "zn: %v\n", err)
		return 1
	}
}
