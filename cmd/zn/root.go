package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"zinc/internal/cache"
	"zinc/internal/config"
	"zinc/internal/driver"
	"zinc/internal/logx"
	"zinc/internal/observ"
	"zinc/internal/prof"
	"zinc/internal/version"
)

// errReported means diagnostics were already printed; the process exits with 1 silently.
var errReported = errors.New("diagnostics reported")

// app carries per-invocation state resolved in PersistentPreRunE.
type app struct {
	cfg     *config.Config
	timer   *observ.Timer
	prof    *prof.Session
	color   bool
	quiet   bool
	timings bool
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "zn [file.zn]",
		Short: "Zinc to Rust transpiler",
		Long: heredoc.Doc(`
			zn transpiles Zinc scripts to Rust and runs them through cargo.

			  zn main.zn             transpile and run (same as zn run main.zn)
			  zn check src/          report syntax errors in every .zn file
			  zn eject main.zn -o main.rs
		`),
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		},
	}

	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "print phase timings to stderr")
	pf.String("log-level", "", "log level (debug|info|warn|error|off)")
	pf.String("config", "", "path to zinc.toml (default: search upward from the working directory)")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("trace", "", "write a runtime trace to file")

	root.AddCommand(
		newRunCmd(a),
		newCheckCmd(a),
		newEjectCmd(a),
		newTokenizeCmd(a),
		newTreeCmd(a),
		newGrammarCmd(),
		newLSPCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// valueFlags are persistent flags whose value may follow as a separate argument.
var valueFlags = map[string]bool{
	"--color": true, "--log-level": true, "--config": true,
	"--cpuprofile": true, "--memprofile": true, "--trace": true,
}

// rewriteShorthand turns `zn file.zn ...` into `zn run file.zn ...`.
func rewriteShorthand(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if valueFlags[arg] {
				i++
			}
			continue
		}
		if driver.IsZincPath(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, "run")
			return append(out, args...)
		}
		return args
	}
	return args
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(".", configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if v, _ := flags.GetString("log-level"); v != "" {
		level = v
	}
	if _, err := logx.Setup(level, cfg.Log.Format, cmd.ErrOrStderr()); err != nil {
		return err
	}

	a.quiet, _ = flags.GetBool("quiet")
	a.timings, _ = flags.GetBool("timings")
	if a.timings {
		a.timer = observ.NewTimer()
	}

	mode, _ := flags.GetString("color")
	switch strings.ToLower(mode) {
	case "on":
		a.color = true
	case "off":
		a.color = false
	case "", "auto":
		a.color = isTerminal(os.Stderr) && os.Getenv("NO_COLOR") == ""
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	color.NoColor = !a.color

	var po prof.Options
	po.CPU, _ = flags.GetString("cpuprofile")
	po.Mem, _ = flags.GetString("memprofile")
	po.Trace, _ = flags.GetString("trace")
	if po.Enabled() {
		a.prof, err = prof.Start(po)
		if err != nil {
			return err
		}
	}
	return nil
}

// stopProfiles flushes profiles started in setup.
func (a *app) stopProfiles() error {
	err := a.prof.Stop()
	a.prof = nil
	return err
}

// driverOptions builds transpile options from config, honouring a --strict override.
func (a *app) driverOptions(cmd *cobra.Command) driver.Options {
	strict := a.cfg.Check.Strict
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		strict, _ = cmd.Flags().GetBool("strict")
	}
	opts := driver.Options{Strict: strict, Timer: a.timer}
	if a.timer == nil {
		opts.Timer = nil
	}
	if c := a.openCache(); c != nil {
		opts.Cache = c
	}
	return opts
}

func (a *app) openCache() *cache.Disk {
	if !a.cfg.Cache.Enabled {
		return nil
	}
	dir := a.cfg.Cache.Dir
	if dir == "" {
		d, err := cache.DefaultDir("zinc")
		if err != nil {
			return nil
		}
		dir = d
	}
	c, err := cache.Open(dir)
	if err != nil {
		// кэш необязателен
		return nil
	}
	return c
}

func (a *app) printTimings(cmd *cobra.Command) {
	if a.timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), a.timer.Summary())
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
