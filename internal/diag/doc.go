// Package diag defines the diagnostic model shared by the lexer, parser and
// code generator.
//
// # Data model
//
// Diagnostic is the record surfaced to users. Its serialized form is fixed:
//
//	{"line": 3, "column": 7, "message": "...", "suggestion": "..."}
//
// Line and Column are 1-based and point at the first byte of the failure.
// The "no statements" diagnostic is the one exception: it has no location and
// reports (0, 0). Message is the rendered explanation (location header, source
// excerpt, caret line and the "expected ..." summary); Label keeps the short
// summary alone for renderers that draw their own excerpt.
//
// Code, Severity and Span travel with the record but are never serialized.
//
// # Producers
//
// Phases do not build Diagnostic values directly. They call Reporter.Report
// with a span; Bag collects the reports and Locate turns a span-based report
// into a located Diagnostic once a FileSet is available.
//
// # Scope
//
// Package diag does not write to terminals or files. Colored and machine
// output lives in internal/diagfmt.
package diag
