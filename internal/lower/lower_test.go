package lower_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/lower"
	"zinc/internal/parser"
	"zinc/internal/source"
)

func lowerSource(t *testing.T, src string) *ast.Builder {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.zn", []byte(src))
	bag := diag.NewBag(8)
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	require.True(t, res.OK, "parse failed for %q", src)
	require.Zero(t, bag.Len())
	return lower.Program(res.Tree)
}

func dump(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, ast.Dump(&buf, lowerSource(t, src)))
	return strings.TrimRight(buf.String(), "\n")
}

func TestLowerStatements(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"let", `let a = 1`, `(let a 1)`},
		{"break", `break`, `(break)`},
		{"loop", `loop { break }`, `(loop {(break)})`},
		{"if", `if a == 1 { b }`, `(if (== a 1) {b})`},
		{"if else", `if a { b } else { c }`, `(if a {b} {c})`},
		{"else if", `if a { b } else if c { d }`, `(if a {b} {(if c {d})})`},
		{"fn", `fn go(x, y) { print(x) }`, `(fn go [x y] {(call print x)})`},
		{"fn no params", `fn run() { }`, `(fn run [] {})`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, dump(t, tc.src))
		})
	}
}

func TestLowerFoldsLeftToRight(t *testing.T) {
	require.Equal(t, `(== (+ a b) c)`, dump(t, `a + b == c`))
	require.Equal(t, `(|> (|> a f) g)`, dump(t, `a |> f |> g`))
	require.Equal(t, `(+ a (group (== b c)))`, dump(t, `a + (b == c)`))
}

func TestLowerSuffixChains(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`xs[0]`, `(index xs 0)`},
		{`a.b`, `(field a b)`},
		{`a.b()`, `(mcall a b)`},
		{`json.get(o, "k")[0].name`, `(field (index (mcall json get o "k") 0) name)`},
		{`f(1, [2, 3])`, `(call f 1 (array 2 3))`},
		{`print()`, `(call print)`},
		{`[]`, `(array)`},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			require.Equal(t, tc.want, dump(t, tc.src))
		})
	}
}

func TestLowerKeepsSpans(t *testing.T) {
	b := lowerSource(t, "let x = a + bb;\nbreak")
	require.Len(t, b.Program.Stmts, 2)

	let, ok := b.Stmts.Let(b.Program.Stmts[0])
	require.True(t, ok)
	require.Equal(t, uint32(4), let.NameSpan.Start)
	require.Equal(t, uint32(5), let.NameSpan.End)

	bin := b.Exprs.Get(let.Value)
	require.Equal(t, ast.ExprBinary, bin.Kind)
	require.Equal(t, uint32(8), bin.Span.Start)
	require.Equal(t, uint32(14), bin.Span.End)

	first := b.Stmts.Get(b.Program.Stmts[0])
	require.Equal(t, uint32(15), first.Span.End, "statement span covers the semicolon")
}

func TestLowerNilTree(t *testing.T) {
	b := lower.Program(nil)
	require.Empty(t, b.Program.Stmts)
}
