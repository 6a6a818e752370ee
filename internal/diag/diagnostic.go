package diag

import (
	"fmt"

	json "github.com/goccy/go-json"

	"zinc/internal/source"
)

const (
	// SuggestCheckSyntax accompanies every lexer and parser failure.
	SuggestCheckSyntax = "check syntax near the reported location"
	// SuggestAddStatement accompanies the empty-program diagnostic.
	SuggestAddStatement = "Add at least one statement"
	// SuggestGeneric accompanies errors without a parser location.
	SuggestGeneric = "check the input and try again"
	// SuggestDropped accompanies strict-mode warnings.
	SuggestDropped = "this construct produces no Rust code; check its arguments"

	msgNoStatements = "No statements found"
)

// Diagnostic is a located failure with a fix hint.
type Diagnostic struct {
	Line       uint32 `json:"line"`
	Column     uint32 `json:"column"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`

	Code     Code        `json:"-"`
	Severity Severity    `json:"-"`
	Span     source.Span `json:"-"`
	Label    string      `json:"-"`
	Located  bool        `json:"-"` // false for (0,0) diagnostics without a span
}

// Error makes *Diagnostic usable as a Go error.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "<nil diagnostic>"
	}
	if !d.Located {
		return d.Message
	}
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Summary())
}

// Summary returns the one-line explanation without the source excerpt.
func (d *Diagnostic) Summary() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Message
}

// JSON serializes the diagnostic to its wire shape.
func (d *Diagnostic) JSON() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromMessage builds a diagnostic for a failure that has no source location.
func FromMessage(msg string) *Diagnostic {
	return &Diagnostic{
		Message:    msg,
		Suggestion: SuggestGeneric,
		Code:       SynGenericParseError,
		Severity:   SevError,
		Label:      msg,
	}
}

// ErrorJSON is FromMessage followed by JSON. Marshalling four plain fields
// cannot fail, so the error is folded into a hand-built fallback.
func ErrorJSON(msg string) string {
	out, err := FromMessage(msg).JSON()
	if err != nil {
		return fmt.Sprintf(`{"line":0,"column":0,"message":%q,"suggestion":%q}`, msg, SuggestGeneric)
	}
	return out
}

// EmptyProgram is reported when a source parses but holds no statements.
func EmptyProgram() *Diagnostic {
	return &Diagnostic{
		Message:    msgNoStatements,
		Suggestion: SuggestAddStatement,
		Code:       SynEmptyProgram,
		Severity:   SevError,
		Label:      msgNoStatements,
	}
}

// FromFailure locates a span-based report: line and column come from the
// start of span, Message is the rendered excerpt. Column counts characters.
func FromFailure(fs *source.FileSet, code Code, span source.Span, label string) *Diagnostic {
	start, _ := fs.Resolve(span)
	return &Diagnostic{
		Line:       start.Line,
		Column:     fs.Get(span.File).CharCol(start),
		Message:    Render(fs, span, label),
		Suggestion: SuggestCheckSyntax,
		Code:       code,
		Severity:   SevError,
		Span:       span,
		Label:      label,
		Located:    true,
	}
}
