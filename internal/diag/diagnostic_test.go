package diag

import (
	"strings"
	"testing"

	"zinc/internal/source"
)

func TestEmptyProgramJSON(t *testing.T) {
	got, err := EmptyProgram().JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := `{"line":0,"column":0,"message":"No statements found","suggestion":"Add at least one statement"}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestErrorJSON(t *testing.T) {
	got := ErrorJSON("Parse failed")
	want := `{"line":0,"column":0,"message":"Parse failed","suggestion":"check the input and try again"}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestFromFailureLocatesSpanStart(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.zn", []byte("print(1)\nlet = 1\n"))
	span := source.Span{File: id, Start: 13, End: 14} // '='

	d := FromFailure(fs, SynExpectIdentifier, span, "expected identifier")
	if d.Line != 2 || d.Column != 5 {
		t.Fatalf("location = %d:%d, want 2:5", d.Line, d.Column)
	}
	if d.Suggestion != SuggestCheckSyntax {
		t.Fatalf("suggestion = %q", d.Suggestion)
	}
	want := strings.Join([]string{
		" --> 2:5",
		"  |",
		"2 | let = 1",
		"  |     ^---",
		"  |",
		"  = expected identifier",
	}, "\n")
	if d.Message != want {
		t.Fatalf("message mismatch\n got:\n%s\nwant:\n%s", d.Message, want)
	}
	if d.Error() != "2:5: expected identifier" {
		t.Fatalf("Error() = %q", d.Error())
	}
}

func TestRenderRangedSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.zn", []byte(`print("abc`))
	msg := Render(fs, source.Span{File: id, Start: 6, End: 10}, "unterminated string literal")

	lines := strings.Split(msg, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), msg)
	}
	if lines[3] != "  |       ^--^" {
		t.Fatalf("caret line = %q", lines[3])
	}
}

func TestBagLimitAndFirstError(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	r.Report(GenDroppedExpr, SevWarning, source.Span{Start: 1}, "dropped")
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 5}, "expected expression")
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 9}, "ignored")

	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	first, ok := bag.FirstError()
	if !ok || first.Span.Start != 5 {
		t.Fatalf("FirstError = %+v, %v", first, ok)
	}
	if !bag.HasErrors() {
		t.Fatalf("HasErrors = false")
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:      "LEX1001",
		SynExpectIdentifier: "SYN2102",
		GenArityMismatch:    "GEN3003",
		IONotZinc:           "IO4002",
		UnknownCode:         "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}

func TestFromFailureCountsCharacters(t *testing.T) {
	fs := source.NewFileSet()
	src := "print(\"héllo wörld\") ="
	id := fs.AddVirtual("a.zn", []byte(src))
	off := uint32(strings.IndexByte(src, '='))
	span := source.Span{File: id, Start: off, End: off + 1}

	d := FromFailure(fs, SynExpectIdentifier, span, "expected identifier")
	if d.Line != 1 || d.Column != 22 {
		t.Fatalf("location = %d:%d, want 1:22", d.Line, d.Column)
	}
	if !strings.Contains(d.Message, "--> 1:22") {
		t.Fatalf("message header does not use the character column:\n%s", d.Message)
	}
	// каретка стоит под '=': все символы строки однократной ширины
	lines := strings.Split(d.Message, "\n")
	if got := strings.Index(lines[3], "^"); got != len("  | ")+int(d.Column)-1 {
		t.Fatalf("caret misplaced:\n%s", d.Message)
	}
}
