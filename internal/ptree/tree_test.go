package ptree

import (
	"strings"
	"testing"

	"zinc/internal/grammar"
	"zinc/internal/source"
	"zinc/internal/token"
)

// builds: program(statement(expr_stmt(expr(term(atom(identifier "a"))))))
func buildSample() *Tree {
	b := NewBuilder(0, 8)
	root := b.Mark()
	stmt := b.Mark()
	expr := b.Mark()
	b.Leaf(grammar.Identifier, token.Token{Kind: token.Ident, Text: "a", Span: source.Span{Start: 0, End: 1}})
	b.Leaf(grammar.Op, token.Token{Kind: token.Plus, Text: "+", Span: source.Span{Start: 2, End: 3}})
	b.Leaf(grammar.Identifier, token.Token{Kind: token.Ident, Text: "b", Span: source.Span{Start: 4, End: 5}})
	b.Close(expr, grammar.Expr, source.Span{Start: 0, End: 5})
	b.Close(stmt, grammar.Statement, source.Span{Start: 0, End: 5})
	return b.Finish(root, source.Span{Start: 0, End: 5})
}

func TestBuilderNesting(t *testing.T) {
	tree := buildSample()

	if tree.Rule(tree.Root) != grammar.Program {
		t.Fatalf("root rule = %s", tree.Rule(tree.Root))
	}
	stmts := tree.Children(tree.Root)
	if len(stmts) != 1 || tree.Rule(stmts[0]) != grammar.Statement {
		t.Fatalf("program children = %v", stmts)
	}
	expr := tree.Child(stmts[0], 0)
	kids := tree.Children(expr)
	if len(kids) != 3 {
		t.Fatalf("expr children = %d, want 3", len(kids))
	}
	if tree.Text(kids[0]) != "a" || tree.Node(kids[1]).Tok != token.Plus || tree.Text(kids[2]) != "b" {
		t.Fatalf("children in wrong order")
	}
	if tree.ChildByRule(expr, grammar.Op) != kids[1] {
		t.Fatalf("ChildByRule did not find op")
	}
	if tree.Len() != 6 {
		t.Fatalf("Len = %d, want 6", tree.Len())
	}
}

func TestOutOfRange(t *testing.T) {
	tree := buildSample()
	if tree.Node(NoNodeID) != nil || tree.Node(NodeID(999)) != nil {
		t.Fatalf("invalid ids must resolve to nil")
	}
	if tree.Child(tree.Root, 5) != NoNodeID {
		t.Fatalf("Child past end must be NoNodeID")
	}
	if tree.Rule(NodeID(999)) != grammar.Invalid {
		t.Fatalf("Rule of invalid id must be Invalid")
	}
}

func TestAbandon(t *testing.T) {
	b := NewBuilder(0, 4)
	root := b.Mark()
	m := b.Mark()
	b.Leaf(grammar.Identifier, token.Token{Kind: token.Ident, Text: "x"})
	b.Abandon(m)
	tree := b.Finish(root, source.Span{})
	if n := len(tree.Children(tree.Root)); n != 0 {
		t.Fatalf("abandoned node still attached: %d children", n)
	}
}

func TestDump(t *testing.T) {
	var sb strings.Builder
	if err := Dump(&sb, buildSample()); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := strings.Join([]string{
		"program 0..5",
		"  statement 0..5",
		"    expr 0..5",
		`      identifier 0..1 "a"`,
		`      op 2..3 "+"`,
		`      identifier 4..5 "b"`,
		"",
	}, "\n")
	if sb.String() != want {
		t.Fatalf("dump mismatch:\n%s\nwant:\n%s", sb.String(), want)
	}
}
