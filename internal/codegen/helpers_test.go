package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zinc/internal/codegen"
	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/lower"
	"zinc/internal/parser"
	"zinc/internal/source"
)

func generate(t *testing.T, src string, opts codegen.Options) codegen.Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.zn", []byte(src))
	bag := diag.NewBag(8)
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	require.True(t, res.OK, "parse failed for %q", src)
	return codegen.Generate(lower.Program(res.Tree), opts)
}

func gen(t *testing.T, src string) string {
	t.Helper()
	return generate(t, src, codegen.Options{}).Out
}
