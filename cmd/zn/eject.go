package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/quick"
	"github.com/spf13/cobra"

	"zinc/internal/diagfmt"
	"zinc/internal/driver"
	"zinc/internal/runner"
)

func newEjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eject [flags] <file.zn>",
		Short: "Write the generated Rust instead of running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eject(cmd, args[0])
		},
	}
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	cmd.Flags().Bool("wrap", false, "wrap the body in the runner's main function")
	cmd.Flags().Bool("highlight", false, "syntax-highlight stdout output")
	cmd.Flags().Bool("strict", false, "report constructs that lower to nothing as warnings")
	return cmd
}

func (a *app) eject(cmd *cobra.Command, path string) error {
	output, _ := cmd.Flags().GetString("output")
	wrap, _ := cmd.Flags().GetBool("wrap")
	highlight, _ := cmd.Flags().GetBool("highlight")

	res, err := driver.TranspileFile(path, a.driverOptions(cmd))
	if err != nil {
		return err
	}
	a.printWarnings(cmd, res)
	if !res.OK() {
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), res.Diag, res.FileSet, a.prettyOpts()); err != nil {
			return err
		}
		return errReported
	}

	code := res.Out
	if wrap {
		code = driver.Wrap(code)
	}
	code += "\n"
	defer a.printTimings(cmd)
	defer a.timer.Track("emit")()

	if output != "" {
		if err := runner.WriteSource(output, code); err != nil {
			return err
		}
		if !a.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
		}
		return nil
	}
	return writeRust(cmd.OutOrStdout(), code, highlight && a.color && isTerminal(os.Stdout))
}

func writeRust(w io.Writer, code string, highlight bool) error {
	if highlight {
		if err := quick.Highlight(w, code, "rust", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err := io.WriteString(w, code)
	return err
}
