package lsp

import (
	"time"

	"zinc/internal/diag"
	"zinc/internal/driver"
	"zinc/internal/source"
)

const diagnosticSource = "zinc"

func (s *Server) scheduleDiagnostics(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return
	}
	seq := s.seq.Add(1)
	doc.seq = seq
	if doc.timer != nil {
		doc.timer.Stop()
	}
	doc.timer = time.AfterFunc(s.debounce, func() {
		s.runDiagnostics(uri, seq)
	})
}

// runDiagnostics transpiles the document as of seq and publishes the outcome
// unless the document changed or closed in the meantime.
func (s *Server) runDiagnostics(uri string, seq uint64) {
	if s.baseCtx.Err() != nil {
		return
	}
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok || doc.seq != seq {
		s.mu.Unlock()
		return
	}
	text, version := doc.text, doc.version
	s.mu.Unlock()

	res := driver.Compile(displayName(uri), []byte(text), driver.Options{Strict: s.strict})
	list := toLSP(res)

	s.mu.Lock()
	doc, ok = s.docs[uri]
	stale := !ok || doc.seq != seq
	s.mu.Unlock()
	if stale {
		return
	}
	if err := s.sendPublish(uri, &version, list); err != nil {
		s.logf("publish %s: %v", uri, err)
	}
}

func toLSP(res *driver.Result) []lspDiagnostic {
	var out []lspDiagnostic
	if res.Diag != nil {
		out = append(out, convert(res.FileSet, res.Diag, severityError))
	}
	for _, w := range res.Warnings {
		out = append(out, convert(res.FileSet, w, severityWarning))
	}
	return out
}

// convert places d on the character at (line-1, col-1), measured in UTF-16
// units of the source line; unlocated diagnostics sit at 0:0.
func convert(fs *source.FileSet, d *diag.Diagnostic, severity int) lspDiagnostic {
	var r lspRange
	if d.Line > 0 && d.Column > 0 {
		var text string
		if fs != nil && d.Located {
			text = fs.Get(d.Span.File).GetLine(d.Line)
		}
		from, to := utf16Range(text, int(d.Column)-1)
		line := int(d.Line) - 1
		r = lspRange{
			Start: position{Line: line, Character: from},
			End:   position{Line: line, Character: to},
		}
	}
	msg := d.Summary()
	if d.Suggestion != "" {
		msg += "\n" + d.Suggestion
	}
	return lspDiagnostic{
		Range:    r,
		Severity: severity,
		Code:     d.Code.ID(),
		Source:   diagnosticSource,
		Message:  msg,
	}
}
