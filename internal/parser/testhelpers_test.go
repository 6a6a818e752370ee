package parser

import (
	"fmt"
	"strings"
	"testing"

	"zinc/internal/diag"
	"zinc/internal/grammar"
	"zinc/internal/lexer"
	"zinc/internal/ptree"
	"zinc/internal/source"
)

func parseSourceOpts(t *testing.T, input string, opts Options) (Result, *source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.zn", []byte(input))
	bag := diag.NewBag(16)
	opts.Reporter = diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: opts.Reporter})
	return ParseFile(fs, lx, opts), fs, bag
}

func parseSource(t *testing.T, input string) (*ptree.Tree, *diag.Bag) {
	t.Helper()
	res, _, bag := parseSourceOpts(t, input, Options{})
	return res.Tree, bag
}

func mustParse(t *testing.T, input string) *ptree.Tree {
	t.Helper()
	tree, bag := parseSource(t, input)
	if bag.Len() != 0 || tree == nil {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return tree
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil || bag.Len() == 0 {
		return "<none>"
	}
	parts := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		parts = append(parts, fmt.Sprintf("%s@%d: %s", d.Code.ID(), d.Span.Start, d.Msg))
	}
	return strings.Join(parts, "; ")
}

// shape renders the tree as nested rule names, leaves with their text:
// program(statement(let_stmt(identifier:a expr(...))))
func shape(tree *ptree.Tree, id ptree.NodeID) string {
	n := tree.Node(id)
	if n.IsLeaf() && n.Text != "" {
		return n.Rule.String() + ":" + n.Text
	}
	kids := tree.Children(id)
	if len(kids) == 0 {
		return n.Rule.String()
	}
	parts := make([]string, 0, len(kids))
	for _, k := range kids {
		parts = append(parts, shape(tree, k))
	}
	return n.Rule.String() + "(" + strings.Join(parts, " ") + ")"
}

func statements(tree *ptree.Tree) []ptree.NodeID {
	out := tree.Children(tree.Root)
	for _, s := range out {
		if tree.Rule(s) != grammar.Statement {
			panic("program child is not a statement")
		}
	}
	return out
}
