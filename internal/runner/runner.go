// Package runner compiles and executes generated Rust through cargo.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Options locate the runtime crate and cargo.
type Options struct {
	Cargo   string   // cargo executable, "cargo" when empty
	Runtime string   // directory holding the runtime crate's Cargo.toml
	Bin     string   // binary name, "temp_runner" when empty
	Args    []string // extra arguments passed to cargo before "--"

	Stdout io.Writer
	Stderr io.Writer
	// PrintCommands echoes the cargo invocation to Stderr.
	PrintCommands bool
}

// ExitError reports a non-zero exit of the cargo process or the program.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("program exited with status %d", e.Code)
}

func (o Options) withDefaults() Options {
	if o.Cargo == "" {
		o.Cargo = "cargo"
	}
	if o.Bin == "" {
		o.Bin = "temp_runner"
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// SourcePath is where the generated program is written inside the runtime crate.
func (o Options) SourcePath() string {
	o = o.withDefaults()
	return filepath.Join(o.Runtime, "src", "bin", o.Bin+".rs")
}

// Command returns the cargo argument list.
func (o Options) Command() []string {
	o = o.withDefaults()
	args := []string{"run", "--manifest-path", filepath.Join(o.Runtime, "Cargo.toml"), "--bin", o.Bin}
	args = append(args, o.Args...)
	return args
}

// Run writes program and runs it, streaming its output.
func Run(ctx context.Context, program string, opts Options) error {
	opts = opts.withDefaults()
	if opts.Runtime == "" {
		return errors.New("runtime crate directory is not configured")
	}
	manifest := filepath.Join(opts.Runtime, "Cargo.toml")
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("runtime crate not found: %w", err)
	}
	if err := WriteSource(opts.SourcePath(), program); err != nil {
		return err
	}
	return runCommand(ctx, opts, opts.Cargo, opts.Command()...)
}

// WriteSource replaces path with content via a temp file and rename.
func WriteSource(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".runner-*.rs")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to move program into place: %w", err)
	}
	slog.Debug("runner source written", "path", path, "bytes", len(content))
	return nil
}

func runCommand(ctx context.Context, opts Options, name string, args ...string) error {
	if opts.PrintCommands {
		if _, err := fmt.Fprintf(opts.Stderr, "%s %s\n", name, strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to print command: %w", err)
		}
	}
	slog.Debug("running", "cmd", name, "args", args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("%s: %w", name, err)
}
