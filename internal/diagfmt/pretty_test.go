package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"zinc/internal/diag"
	"zinc/internal/source"
)

func located(t *testing.T, path, src string, span source.Span, code diag.Code, label string) (*diag.Diagnostic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(src))
	span.File = id
	return diag.FromFailure(fs, code, span, label), fs
}

func TestPrettyLocated(t *testing.T) {
	d, fs := located(t, "main.zn", "print(1)\nlet = 1\n", source.Span{Start: 13, End: 14},
		diag.SynExpectIdentifier, "expected identifier, found `=`")

	var buf bytes.Buffer
	if err := Pretty(&buf, d, fs, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := strings.Join([]string{
		"error[SYN2102]: expected identifier, found `=`",
		" --> main.zn:2:5",
		"  |",
		"2 | let = 1",
		"  |     ^---",
		"  |",
		"  = help: check syntax near the reported location",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("pretty mismatch\n got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyRangeMarker(t *testing.T) {
	d, fs := located(t, "s.zn", `print("abc`, source.Span{Start: 6, End: 10},
		diag.LexUnterminatedString, "unterminated string literal")
	var buf bytes.Buffer
	if err := Pretty(&buf, d, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  |       ^--^\n") {
		t.Fatalf("range marker missing:\n%s", buf.String())
	}
}

func TestPrettyUnlocated(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, diag.EmptyProgram(), nil, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "error[SYN2200]: No statements found\n  = help: Add at least one statement\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyWarningAndColor(t *testing.T) {
	d, fs := located(t, "w.zn", "leak(1)", source.Span{Start: 0, End: 7}, diag.GenArityMismatch, "`leak` takes 0 argument(s), got 1")
	d.Severity = diag.SevWarning

	var plain, colored bytes.Buffer
	if err := Pretty(&plain, d, fs, PrettyOpts{HideSuggestion: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(plain.String(), "warning[GEN3003]: ") {
		t.Fatalf("warning header missing: %q", plain.String())
	}
	if strings.Contains(plain.String(), "help:") {
		t.Fatalf("suggestion must be hidden")
	}
	if err := Pretty(&colored, d, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes with Color: true")
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/user/project/src/test.zn", []byte("let = 1"))
	fs.SetBaseDir("/home/user/project")
	d := diag.FromFailure(fs, diag.SynExpectIdentifier, source.Span{File: id, Start: 4, End: 5}, "expected identifier")

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/test.zn:1:5"},
		{PathModeRelative, "src/test.zn:1:5"},
		{PathModeBasename, "test.zn:1:5"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, d, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), "--> "+tt.want+"\n") {
				t.Fatalf("want location %q in:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestPrettyAllSeparates(t *testing.T) {
	var buf bytes.Buffer
	err := PrettyAll(&buf, []*diag.Diagnostic{diag.EmptyProgram(), diag.FromMessage("boom")}, nil, PrettyOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "statement\n\nerror[") {
		t.Fatalf("expected a blank line between diagnostics:\n%s", buf.String())
	}
}
