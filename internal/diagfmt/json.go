package diagfmt

import (
	"io"

	json "github.com/goccy/go-json"

	"zinc/internal/diag"
	"zinc/internal/source"
)

// DiagnosticJSON is the wire shape: the four fields of diag.Diagnostic,
// optionally preceded by the file and followed by code and severity.
type DiagnosticJSON struct {
	File       string `json:"file,omitempty"`
	Line       uint32 `json:"line"`
	Column     uint32 `json:"column"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Code       string `json:"code,omitempty"`
	Severity   string `json:"severity,omitempty"`
}

// ReportJSON wraps the diagnostics of a multi-file check.
type ReportJSON struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Files       int              `json:"files"`
	Failed      int              `json:"failed"`
}

// MakeJSON converts d; path is used only with opts.IncludeFile.
func MakeJSON(d *diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Line:       d.Line,
		Column:     d.Column,
		Message:    d.Message,
		Suggestion: d.Suggestion,
	}
	if opts.IncludeFile {
		out.File = pathOf(d, fs, opts.PathMode)
	}
	if opts.IncludeCode {
		out.Code = d.Code.ID()
		out.Severity = d.Severity.String()
	}
	return out
}

// JSON writes one diagnostic followed by a newline.
func JSON(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	return encode(w, MakeJSON(d, fs, opts), opts.Indent)
}

// Report writes a ReportJSON document.
func Report(w io.Writer, r ReportJSON, opts JSONOpts) error {
	if r.Diagnostics == nil {
		r.Diagnostics = []DiagnosticJSON{}
	}
	return encode(w, r, opts.Indent)
}

func encode(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
