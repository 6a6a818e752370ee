package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"zinc/internal/diag"
	"zinc/internal/diagfmt"
	"zinc/internal/driver"
	"zinc/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, out io.Writer) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && isTerminal(f)
	}
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <file.zn|directory>...",
		Short: "Transpile without running and report errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd, args)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=config or GOMAXPROCS)")
	cmd.Flags().String("ui", "off", "progress view (auto|on|off)")
	cmd.Flags().Bool("strict", false, "report constructs that lower to nothing as warnings")
	return cmd
}

func (a *app) check(cmd *cobra.Command, paths []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format %q (expected pretty|json|short)", format)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	if !cmd.Flags().Changed("jobs") {
		jobs = a.cfg.Check.Jobs
	}
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	files, err := driver.ListZincFiles(paths)
	if err != nil {
		return err
	}
	opts := driver.CheckOptions{Options: a.driverOptions(cmd), Jobs: jobs}
	// фазы одного процесса check не разбиваются по файлам
	opts.Timer = nil

	idx := a.timer.Begin("check")
	var results []driver.FileResult
	if format == "pretty" && shouldUseTUI(mode, cmd.OutOrStdout()) && len(files) > 1 {
		results, err = checkWithUI(cmd.Context(), files, opts, cmd.OutOrStdout(), cmd.InOrStdin())
	} else {
		results, err = driver.CheckFiles(cmd.Context(), files, opts)
	}
	a.timer.End(idx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}

	failed, err := a.reportCheck(cmd, format, results)
	if err != nil {
		return err
	}
	a.printTimings(cmd)
	if failed > 0 {
		return errReported
	}
	return nil
}

func (a *app) reportCheck(cmd *cobra.Command, format string, results []driver.FileResult) (int, error) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := 0
	report := diagfmt.ReportJSON{Files: len(results)}
	jsonOpts := diagfmt.JSONOpts{Indent: true, IncludeFile: true, IncludeCode: true}

	for _, r := range results {
		if r.Failed() {
			failed++
		}
		if r.Err != nil {
			switch format {
			case "json":
				report.Diagnostics = append(report.Diagnostics, diagfmt.DiagnosticJSON{
					File: r.Path, Message: r.Err.Error(), Severity: "error",
				})
			default:
				fmt.Fprintf(errOut, "%s: %v\n", r.Path, r.Err)
			}
			continue
		}
		res := r.Result
		var diags []*diag.Diagnostic
		if res.Diag != nil {
			diags = append(diags, res.Diag)
		}
		diags = append(diags, res.Warnings...)
		for _, d := range diags {
			var err error
			switch format {
			case "json":
				report.Diagnostics = append(report.Diagnostics, diagfmt.MakeJSON(d, res.FileSet, jsonOpts))
			case "short":
				err = diagfmt.ShortFile(out, r.Path, d)
			default:
				if a.quiet && d != res.Diag {
					continue
				}
				err = diagfmt.Pretty(errOut, d, res.FileSet, a.prettyOpts())
			}
			if err != nil {
				return failed, err
			}
		}
	}

	switch format {
	case "json":
		report.Failed = failed
		return failed, diagfmt.Report(out, report, jsonOpts)
	case "pretty":
		if !a.quiet {
			fmt.Fprintf(errOut, "checked %d file(s), %d failed\n", len(results), failed)
		}
	}
	return failed, nil
}

type checkOutcome struct {
	results []driver.FileResult
	err     error
}

// checkWithUI renders progress to out; keys are read from in only when it is a terminal.
func checkWithUI(ctx context.Context, files []string, opts driver.CheckOptions, out io.Writer, in io.Reader) ([]driver.FileResult, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	opts.OnStart = func(path string) {
		events <- ui.Event{File: path, Status: ui.StatusWorking}
	}
	opts.OnDone = func(_, _ int, r driver.FileResult) {
		ev := ui.Event{File: r.Path, Status: ui.StatusDone}
		switch {
		case r.Failed():
			ev.Status = ui.StatusFailed
			if r.Result != nil && r.Result.Diag != nil {
				ev.Detail = fmt.Sprintf("%d:%d", r.Result.Diag.Line, r.Result.Diag.Column)
			}
		case r.Result.Cached:
			ev.Status = ui.StatusCached
		}
		events <- ev
	}

	go func() {
		res, err := driver.CheckFiles(ctx, files, opts)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking", files, events)
	teaOpts := []tea.ProgramOption{tea.WithOutput(out), tea.WithContext(ctx), tea.WithInput(nil)}
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		teaOpts[2] = tea.WithInput(f)
	}
	program := tea.NewProgram(model, teaOpts...)
	_, uiErr := program.Run()
	// окно могли закрыть раньше времени: дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
