package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"zinc/internal/diag"
	"zinc/internal/source"
)

func TestJSONWireShape(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.EmptyProgram(), nil, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	want := `{"line":0,"column":0,"message":"No statements found","suggestion":"Add at least one statement"}` + "\n"
	if buf.String() != want {
		t.Fatalf("got  %s\nwant %s", buf.String(), want)
	}
}

func TestJSONWithFileAndCode(t *testing.T) {
	d, fs := located(t, "a.zn", "let = 1", source.Span{Start: 4, End: 5}, diag.SynExpectIdentifier, "expected identifier")
	var buf bytes.Buffer
	if err := JSON(&buf, d, fs, JSONOpts{IncludeFile: true, IncludeCode: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, frag := range []string{`"file":"a.zn"`, `"line":1`, `"column":5`, `"code":"SYN2102"`, `"severity":"ERROR"`, `"message":" --> 1:5\n`} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %s in %s", frag, out)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, ReportJSON{Files: 2}, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"diagnostics":[],"files":2,"failed":0}`+"\n" {
		t.Fatalf("got %s", got)
	}
}

func TestShort(t *testing.T) {
	d, fs := located(t, "a.zn", "let = 1", source.Span{Start: 4, End: 5}, diag.SynExpectIdentifier, "expected identifier")
	var buf bytes.Buffer
	if err := Short(&buf, d, fs, PathModeAuto); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a.zn:1:5: expected identifier\n" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	if err := ShortFile(&buf, "empty.zn", diag.EmptyProgram()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "empty.zn:0:0: No statements found\n" {
		t.Fatalf("got %q", buf.String())
	}
}
