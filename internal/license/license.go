// Package license gates `zn run` behind a one-time acceptance of the usage terms.
package license

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"zinc/internal/config"
)

// MarkerName is created in the user's home directory once the terms are accepted.
const MarkerName = ".zinc_accepted"

// EnvAccept pre-accepts the terms for non-interactive use.
const EnvAccept = "ZINC_ACCEPT_LICENSE"

var (
	ErrDeclined = errors.New("license terms not accepted")
	ErrNoHome   = errors.New("cannot locate home directory (set HOME or USERPROFILE)")
)

var banner = []string{
	"----------------------------------------------------------",
	"Zinc Language (Fair Usage License)",
	" FREE: Annual Revenue < $1M USD",
	" PAID: $2k/yr ($1M-$5M) | $10k/yr (>$5M / Public Co)",
	"* Revenue based on consolidated group. See COMMERCIAL_TERMS.md",
	"----------------------------------------------------------",
}

// Gate holds the environment the check runs against.
type Gate struct {
	Marker      string
	In          io.Reader
	Out         io.Writer
	Interactive bool
	Getenv      func(string) string
}

// MarkerPath resolves ~/.zinc_accepted, USERPROFILE taking priority over HOME.
func MarkerPath(getenv func(string) string) (string, error) {
	for _, key := range []string{"USERPROFILE", "HOME"} {
		if home := getenv(key); home != "" {
			return filepath.Join(home, MarkerName), nil
		}
	}
	return "", ErrNoHome
}

// Default wires the gate to the process: stdin, stderr and the real environment.
func Default() (*Gate, error) {
	marker, err := MarkerPath(os.Getenv)
	if err != nil {
		return nil, err
	}
	return &Gate{
		Marker:      marker,
		In:          os.Stdin,
		Out:         os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		Getenv:      os.Getenv,
	}, nil
}

// Accepted reports whether the marker file exists.
func (g *Gate) Accepted() bool {
	_, err := os.Stat(g.Marker)
	return err == nil
}

// Ensure returns nil when the terms are (or become) accepted.
func (g *Gate) Ensure() error {
	if g.Accepted() {
		return nil
	}
	g.printBanner()

	ok := false
	switch {
	case g.Getenv != nil && config.Truthy(g.Getenv(EnvAccept)):
		ok = true
	case g.Interactive:
		ok = g.prompt()
	default:
		fmt.Fprintf(g.Out, "stdin is not a terminal; set %s=1 to accept\n", EnvAccept)
	}
	if !ok {
		fmt.Fprintln(g.Out, "Aborted.")
		return ErrDeclined
	}
	if err := os.WriteFile(g.Marker, []byte("accepted"), 0o644); err != nil {
		return fmt.Errorf("failed to record acceptance: %w", err)
	}
	fmt.Fprintln(g.Out, "Thank you!")
	return nil
}

func (g *Gate) printBanner() {
	head := color.New(color.FgYellow, color.Bold)
	for i, line := range banner {
		if i == 1 {
			head.Fprintln(g.Out, line)
			continue
		}
		fmt.Fprintln(g.Out, line)
	}
}

func (g *Gate) prompt() bool {
	fmt.Fprint(g.Out, "Accept? [y/N]: ")
	line, err := bufio.NewReader(g.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
