// Package driver wires the pipeline: source → lexer → parser → lower → codegen.
package driver

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"zinc/internal/ast"
	"zinc/internal/cache"
	"zinc/internal/codegen"
	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/lower"
	"zinc/internal/parser"
	"zinc/internal/ptree"
	"zinc/internal/source"
)

// ErrNotZinc is returned for paths without the .zn extension.
var ErrNotZinc = errors.New("expected a .zn file")

// VirtualPath names sources that did not come from a file.
const VirtualPath = "<input>"

// Options configure one transpile call. The zero value is the permissive, uncached pipeline.
type Options struct {
	Strict   bool
	MaxDepth int
	Cache    *cache.Disk
	Timer    Timer
}

// Timer is the subset of *observ.Timer the driver uses.
type Timer interface {
	Begin(name string) int
	End(idx int, note string)
}

type nopTimer struct{}

func (nopTimer) Begin(string) int { return -1 }
func (nopTimer) End(int, string)  {}

func (o Options) timer() Timer {
	if o.Timer == nil {
		return nopTimer{}
	}
	return o.Timer
}

// Result of one transpile call. Diag is nil on success.
type Result struct {
	FileSet  *source.FileSet
	File     *source.File
	Tree     *ptree.Tree
	AST      *ast.Builder
	Out      string
	Diag     *diag.Diagnostic
	Warnings []*diag.Diagnostic
	Cached   bool
}

func (r *Result) OK() bool { return r != nil && r.Diag == nil }

// TranspileWithError returns the Rust body for src, or the first diagnostic.
func TranspileWithError(src string) (string, *diag.Diagnostic) {
	res := Compile(VirtualPath, []byte(src), Options{})
	return res.Out, res.Diag
}

// Transpile is TranspileWithError that logs the diagnostic and returns "" on failure.
func Transpile(src string) string {
	out, d := TranspileWithError(src)
	if d != nil {
		slog.Error("transpile failed", "line", d.Line, "column", d.Column, "error", d.Summary())
		return ""
	}
	return out
}

// TranspileFile reads and transpiles a .zn file.
func TranspileFile(path string, opts Options) (*Result, error) {
	if !IsZincPath(path) {
		return nil, fmt.Errorf("%w, got: %s", ErrNotZinc, path)
	}
	t := opts.timer()
	idx := t.Begin("read")
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	t.End(idx, "")
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return compile(fs, id, opts), nil
}

// Compile transpiles src registered under path; path only names the file in diagnostics.
func Compile(path string, src []byte, opts Options) *Result {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, src)
	return compile(fs, id, opts)
}

// IsZincPath reports whether path has the .zn extension.
func IsZincPath(path string) bool {
	return filepath.Ext(path) == ".zn"
}

// Wrap places a generated body inside the runner's main function.
func Wrap(out string) string {
	return "fn main() {\n" + out + "\n zinc_std::check_leaks();\n}"
}

func compile(fs *source.FileSet, id source.FileID, opts Options) *Result {
	res := &Result{FileSet: fs, File: fs.Get(id)}
	if opts.Cache == nil {
		run(res, opts)
		return res
	}

	key := cacheKey(res.File, opts)
	t := opts.timer()
	idx := t.Begin("cache")
	var e cacheEntry
	ok, err := opts.Cache.Get(key, &e)
	if err != nil {
		slog.Debug("cache read failed", "path", res.File.Path, "err", err)
	}
	if ok && e.Schema == cacheSchema {
		t.End(idx, "hit")
		e.restore(res)
		return res
	}
	t.End(idx, "miss")

	run(res, opts)
	if err := opts.Cache.Put(key, newCacheEntry(res)); err != nil {
		slog.Debug("cache write failed", "path", res.File.Path, "err", err)
	}
	return res
}

func run(res *Result, opts Options) {
	fs, file := res.FileSet, res.File
	t := opts.timer()

	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}

	idx := t.Begin("parse")
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	pr := parser.ParseFile(fs, lx, parser.Options{MaxDepth: opts.MaxDepth, Reporter: rep})
	res.Tree = pr.Tree
	if pr.Tree != nil {
		t.End(idx, strconv.Itoa(pr.Tree.Len())+" nodes")
	} else {
		t.End(idx, "failed")
	}

	// останавливаемся на первой ошибке лексера или парсера
	if first, ok := bag.FirstError(); ok {
		res.Diag = diag.FromFailure(fs, first.Code, first.Span, first.Msg)
		return
	}
	if !pr.OK {
		res.Diag = diag.FromMessage("Parse failed")
		return
	}
	if len(pr.Tree.Children(pr.Tree.Root)) == 0 {
		res.Diag = diag.EmptyProgram()
		return
	}

	idx = t.Begin("lower")
	res.AST = lower.Program(pr.Tree)
	t.End(idx, "")

	warnings := diag.NewBag(64)
	idx = t.Begin("codegen")
	gen := codegen.Generate(res.AST, codegen.Options{
		Strict:   opts.Strict,
		Reporter: diag.BagReporter{Bag: warnings},
	})
	t.End(idx, "")

	res.Out = gen.Out
	res.Warnings = warnings.Locate(fs)
	for _, w := range res.Warnings {
		w.Suggestion = diag.SuggestDropped
	}
}
