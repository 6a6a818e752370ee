package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"zinc/internal/diag"
	"zinc/internal/source"
)

type palette struct {
	err, warn, info, bold, gutter, caret, help *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		bold:   color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgRed, color.Bold),
		help:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.bold, p.gutter, p.caret, p.help} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) (*color.Color, string) {
	switch sev {
	case diag.SevWarning:
		return p.warn, "warning"
	case diag.SevInfo:
		return p.info, "info"
	default:
		return p.err, "error"
	}
}

// Pretty renders one diagnostic:
//
//	error[SYN2102]: expected identifier, found `=`
//	 --> main.zn:2:5
//	  |
//	2 | let = 1
//	  |     ^---
//	  |
//	  = help: check syntax near the reported location
//
// Diagnostics without a location print the header and the help line only.
func Pretty(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	sevColor, sevName := p.severity(d.Severity)

	var sb strings.Builder
	sb.WriteString(sevColor.Sprintf("%s[%s]", sevName, d.Code.ID()))
	sb.WriteString(p.bold.Sprint(": " + d.Summary()))
	sb.WriteByte('\n')

	if d.Located && fs != nil && fs.Get(d.Span.File) != nil {
		writeExcerpt(&sb, d, fs, opts, p)
	}
	if !opts.HideSuggestion && d.Suggestion != "" {
		pad := "  "
		if d.Located {
			pad = strings.Repeat(" ", len(strconv.FormatUint(uint64(d.Line), 10))+1)
		}
		sb.WriteString(pad + p.gutter.Sprint("=") + " " + p.help.Sprint("help") + ": " + d.Suggestion + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeExcerpt(sb *strings.Builder, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	file := fs.Get(d.Span.File)
	line := file.GetLine(d.Line)
	num := strconv.FormatUint(uint64(d.Line), 10)
	pad := strings.Repeat(" ", len(num))
	bar := p.gutter.Sprint("|")

	fmt.Fprintf(sb, "%s%s %s:%d:%d\n", pad, p.gutter.Sprint("-->"), formatPath(file, fs, opts.PathMode), d.Line, d.Column)
	sb.WriteString(pad + " " + bar + "\n")
	sb.WriteString(p.gutter.Sprint(num+" |") + " " + line + "\n")

	start, end := fs.Resolve(d.Span)
	marker := diag.Marker(line, start, end)
	sb.WriteString(pad + " " + bar + " " + strings.Repeat(" ", diag.CaretOffset(line, start.Col)) + p.caret.Sprint(marker) + "\n")
	sb.WriteString(pad + " " + bar + "\n")
}

// PrettyAll renders diagnostics separated by blank lines.
func PrettyAll(w io.Writer, diags []*diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := Pretty(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}
