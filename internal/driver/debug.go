package driver

import (
	"fmt"

	"zinc/internal/diag"
	"zinc/internal/lexer"
	"zinc/internal/parser"
	"zinc/internal/ptree"
	"zinc/internal/source"
	"zinc/internal/token"
)

// TokenizeResult backs `zn tokenize`.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path to EOF; lexer errors land in Bag and lexing continues.
func Tokenize(path string) (*TokenizeResult, error) {
	fs, file, err := load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{FileSet: fs, File: file, Tokens: lx.All(), Bag: bag}, nil
}

// ParseResult backs `zn tree`.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ptree.Tree
	Diag    *diag.Diagnostic
}

// Parse builds the parse tree of path without lowering it.
func Parse(path string, maxDepth int) (*ParseResult, error) {
	fs, file, err := load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	pr := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{MaxDepth: maxDepth, Reporter: rep})
	res := &ParseResult{FileSet: fs, File: file, Tree: pr.Tree}
	if first, ok := bag.FirstError(); ok {
		res.Diag = diag.FromFailure(fs, first.Code, first.Span, first.Msg)
	}
	return res, nil
}

func load(path string) (*source.FileSet, *source.File, error) {
	if !IsZincPath(path) {
		return nil, nil, fmt.Errorf("%w, got: %s", ErrNotZinc, path)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return fs, fs.Get(id), nil
}
