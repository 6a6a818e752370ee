package driver

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zinc/internal/cache"
	"zinc/internal/diag"
	"zinc/internal/observ"
)

func TestTranspileWithError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"print", `print("x")`, `println!("{:?}", r#"x"#);`},
		{"spider default profile", `spider.get(url)`, `zinc_std::spider::get(url, None);`},
		{"spider with profile", `spider.get(url, profile)`, `zinc_std::spider::get(url, Some(profile));`},
		{"bom stripped", "\ufeffprint(1)", `println!("{:?}", 1);`},
		{"crlf", "let a = 1\r\nprint(a)", `let a = 1;println!("{:?}", a);`},
		{"comments", "# hash\n// line\n/* block /* nested */ */ break", `break;`},
		{"all dropped is not an error", `leak(1)`, ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, d := TranspileWithError(tc.src)
			require.Nil(t, d)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestScriptTranspiles(t *testing.T) {
	src := heredoc.Doc(`
		let page = spider.get("https://example.com")
		let links = html.select(page, "a")
		loop {
			if links == "" { break }
			links |> print
			break
		}
	`)
	want := `let page = zinc_std::spider::get(r#"https://example.com"#, None);` +
		`let links = zinc_std::html::select(&page, &r#"a"#);` +
		"loop {\nif (links == r#\"\"#) {\nbreak;}println!(\"{:?}\", links);break;}"
	out, d := TranspileWithError(src)
	require.Nil(t, d)
	assert.Equal(t, want, out)
}

func TestSyntaxErrorLocation(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		line, col uint32
		code      diag.Code
	}{
		{"missing let name", "print(1)\nlet = 1", 2, 5, diag.SynExpectIdentifier},
		{"unterminated string", `print("abc`, 1, 7, diag.LexUnterminatedString},
		{"unterminated comment", "print(1) /* x", 1, 10, diag.LexUnterminatedBlockComment},
		{"unknown char", "let a = @", 1, 9, diag.LexUnknownChar},
		{"unclosed call", "print(1", 1, 8, diag.SynUnclosedParen},
		{"invalid utf8 in string", "print(\"x\xc3(\")", 1, 9, diag.LexInvalidUTF8},
		{"carriage return in string", "print(\"a\rb\")", 1, 9, diag.LexCarriageReturnInString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, d := TranspileWithError(tc.src)
			require.NotNil(t, d)
			assert.Empty(t, out)
			assert.Equal(t, tc.line, d.Line)
			assert.Equal(t, tc.col, d.Column)
			assert.Equal(t, tc.code, d.Code)
			assert.Equal(t, diag.SuggestCheckSyntax, d.Suggestion)
		})
	}
}

func TestSyntaxErrorColumnCountsCharacters(t *testing.T) {
	_, d := TranspileWithError("print(\"héllo wörld\") =")
	require.NotNil(t, d)
	assert.Equal(t, uint32(1), d.Line)
	assert.Equal(t, uint32(22), d.Column)
	assert.Contains(t, d.Message, " --> 1:22\n")
}

func TestStringLiteralsStayValidRust(t *testing.T) {
	out, d := TranspileWithError("print(\"a\\rb\")\r\nprint(\"ö\")")
	require.Nil(t, d)
	assert.Equal(t, `println!("{:?}", r#"a\rb"#);println!("{:?}", r#"ö"#);`, out)
}

func TestSyntaxErrorMessageExcerpt(t *testing.T) {
	_, d := TranspileWithError("print(1)\nlet = 1")
	require.NotNil(t, d)
	assert.Contains(t, d.Message, " --> 2:5\n")
	assert.Contains(t, d.Message, "2 | let = 1\n")
	assert.Contains(t, d.Message, "  |     ^---\n")
	assert.Contains(t, d.Message, "= expected identifier")
}

func TestEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "   \n", "// nothing here\n", "\ufeff"} {
		_, d := TranspileWithError(src)
		require.NotNil(t, d, "src %q", src)
		assert.Equal(t, uint32(0), d.Line)
		assert.Equal(t, uint32(0), d.Column)
		assert.Equal(t, "No statements found", d.Message)
		assert.Equal(t, "Add at least one statement", d.Suggestion)
	}
}

func TestTranspileLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.Empty(t, Transpile("let = 1"))
	assert.Contains(t, buf.String(), "transpile failed")
	assert.Contains(t, buf.String(), "line=1")

	buf.Reset()
	assert.Equal(t, "break;", Transpile("break"))
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "fn main() {\nbreak;\n zinc_std::check_leaks();\n}", Wrap("break;"))
}

func TestTranspileFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "main.zn")
	require.NoError(t, os.WriteFile(good, []byte("print(1)\n"), 0o600))

	tm := observ.NewTimer()
	res, err := TranspileFile(good, Options{Timer: tm})
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, `println!("{:?}", 1);`, res.Out)
	names := make([]string, 0, 4)
	for _, p := range tm.Report().Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"read", "parse", "lower", "codegen"}, names)

	_, err = TranspileFile(filepath.Join(dir, "main.txt"), Options{})
	require.True(t, errors.Is(err, ErrNotZinc))
	assert.EqualError(t, err, "expected a .zn file, got: "+filepath.Join(dir, "main.txt"))

	_, err = TranspileFile(filepath.Join(dir, "missing.zn"), Options{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotZinc))
}

func TestStrictWarnings(t *testing.T) {
	res := Compile("w.zn", []byte("db.query(a)\nprint(1)"), Options{Strict: true})
	require.True(t, res.OK())
	assert.Equal(t, `println!("{:?}", 1);`, res.Out)
	require.Len(t, res.Warnings, 2)
	for _, w := range res.Warnings {
		assert.Equal(t, diag.SevWarning, w.Severity)
		assert.Equal(t, diag.SuggestDropped, w.Suggestion)
		assert.Equal(t, uint32(1), w.Line)
	}

	res = Compile("w.zn", []byte("db.query(a)"), Options{})
	assert.Empty(t, res.Warnings)
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := cache.Open(t.TempDir())
	require.NoError(t, err)
	opts := Options{Cache: c}

	first := Compile("a.zn", []byte("print(1)"), opts)
	require.False(t, first.Cached)
	second := Compile("a.zn", []byte("print(1)"), opts)
	require.True(t, second.Cached)
	assert.Equal(t, first.Out, second.Out)

	bad := Compile("b.zn", []byte("let = 1"), opts)
	require.NotNil(t, bad.Diag)
	again := Compile("b.zn", []byte("let = 1"), opts)
	require.True(t, again.Cached)
	require.NotNil(t, again.Diag)
	assert.Equal(t, bad.Diag.Line, again.Diag.Line)
	assert.Equal(t, bad.Diag.Message, again.Diag.Message)
	assert.Equal(t, again.File.ID, again.Diag.Span.File)

	strict := Compile("a.zn", []byte("print(1)"), Options{Cache: c, Strict: true})
	assert.False(t, strict.Cached, "strict mode uses its own key")
}
