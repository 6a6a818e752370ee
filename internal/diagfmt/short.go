package diagfmt

import (
	"fmt"
	"io"

	"zinc/internal/diag"
	"zinc/internal/source"
)

// Short writes `path:line:col: message` with the one-line summary.
func Short(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, mode PathMode) error {
	path := pathOf(d, fs, mode)
	if !d.Located {
		// у диагностики без позиции Span.File ничего не значит
		path = ""
	}
	if path == "" {
		path = "-"
	}
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", path, d.Line, d.Column, d.Summary())
	return err
}

// ShortFile is Short for diagnostics that carry no span, such as the empty-program error.
func ShortFile(w io.Writer, path string, d *diag.Diagnostic) error {
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", path, d.Line, d.Column, d.Summary())
	return err
}
