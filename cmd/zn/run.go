package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"zinc/internal/diag"
	"zinc/internal/diagfmt"
	"zinc/internal/driver"
	"zinc/internal/license"
	"zinc/internal/runner"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] <file.zn> [-- cargo args]",
		Short: "Transpile a Zinc program and run it through cargo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProgram(cmd, args[0], args[1:])
		},
	}
	cmd.Flags().Bool("json", false, "print a failure as one JSON diagnostic on stdout")
	cmd.Flags().Bool("strict", false, "report constructs that lower to nothing as warnings")
	cmd.Flags().Bool("print-commands", false, "echo the cargo invocation")
	return cmd
}

func (a *app) runProgram(cmd *cobra.Command, path string, extra []string) error {
	jsonMode, _ := cmd.Flags().GetBool("json")

	gate, err := license.Default()
	if err != nil {
		return err
	}
	if err := gate.Ensure(); err != nil {
		if errors.Is(err, license.ErrDeclined) {
			return errReported
		}
		return err
	}

	res, err := driver.TranspileFile(path, a.driverOptions(cmd))
	if err != nil {
		if jsonMode {
			fmt.Fprintln(cmd.OutOrStdout(), diag.ErrorJSON(err.Error()))
			return errReported
		}
		return err
	}
	a.printWarnings(cmd, res)
	if !res.OK() {
		if jsonMode {
			if err := diagfmt.JSON(cmd.OutOrStdout(), res.Diag, res.FileSet, diagfmt.JSONOpts{}); err != nil {
				return err
			}
		} else if err := diagfmt.Pretty(cmd.ErrOrStderr(), res.Diag, res.FileSet, a.prettyOpts()); err != nil {
			return err
		}
		a.printTimings(cmd)
		return errReported
	}

	printCommands, _ := cmd.Flags().GetBool("print-commands")
	opts := runner.Options{
		Cargo:         a.cfg.Run.Cargo,
		Runtime:       a.cfg.Run.Runtime,
		Bin:           a.cfg.Run.Bin,
		Args:          append(append([]string(nil), a.cfg.Run.Args...), extra...),
		Stdout:        cmd.OutOrStdout(),
		Stderr:        cmd.ErrOrStderr(),
		PrintCommands: printCommands,
	}
	stop := a.timer.Track("run")
	err = runner.Run(cmd.Context(), driver.Wrap(res.Out), opts)
	stop()
	a.printTimings(cmd)
	return err
}

func (a *app) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: a.color, PathMode: diagfmt.PathModeAuto}
}

// printWarnings renders strict-mode warnings to stderr unless --quiet.
func (a *app) printWarnings(cmd *cobra.Command, res *driver.Result) {
	if a.quiet || res == nil || len(res.Warnings) == 0 {
		return
	}
	_ = diagfmt.PrettyAll(cmd.ErrOrStderr(), res.Warnings, res.FileSet, a.prettyOpts())
}
