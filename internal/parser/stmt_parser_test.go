package parser

import (
	"testing"

	"zinc/internal/diag"
	"zinc/internal/grammar"
)

func TestStatementShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "let",
			input: "let a = 1;",
			want:  "statement(let_stmt(identifier:a expr(term(atom(number:1)))))",
		},
		{
			name:  "break without semicolon",
			input: "break",
			want:  "statement(break_stmt)",
		},
		{
			name:  "loop",
			input: "loop { break; }",
			want:  "statement(loop_stmt(block(statement(break_stmt))))",
		},
		{
			name:  "if else",
			input: "if x { break } else { y }",
			want: "statement(if_stmt(expr(term(atom(identifier:x))) block(statement(break_stmt)) " +
				"block(statement(expr_stmt(expr(term(atom(identifier:y))))))))",
		},
		{
			name:  "else if chains nest",
			input: "if a { break } else if b { break }",
			want: "statement(if_stmt(expr(term(atom(identifier:a))) block(statement(break_stmt)) " +
				"if_stmt(expr(term(atom(identifier:b))) block(statement(break_stmt)))))",
		},
		{
			name:  "fn with params",
			input: "fn greet(name, greeting,) { print(name) }",
			want: "statement(fn_def(identifier:greet param_list(identifier:name identifier:greeting) " +
				"block(statement(expr_stmt(expr(term(atom(call(identifier:print arg_list(expr(term(atom(identifier:name)))))))))))))",
		},
		{
			name:  "fn without params",
			input: "fn main() { }",
			want:  "statement(fn_def(identifier:main block))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.input)
			stmts := statements(tree)
			if len(stmts) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(stmts))
			}
			if got := shape(tree, stmts[0]); got != tt.want {
				t.Fatalf("shape mismatch\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestSemicolonsAreOptional(t *testing.T) {
	tree := mustParse(t, "let a = 1\nprint(a);\n\nbreak;")
	if n := len(statements(tree)); n != 3 {
		t.Fatalf("got %d statements, want 3", n)
	}
}

func TestEmptyProgramParses(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment\n# and another", "/* block */"} {
		tree := mustParse(t, input)
		if n := len(statements(tree)); n != 0 {
			t.Fatalf("%q: got %d statements, want 0", input, n)
		}
		if tree.Rule(tree.Root) != grammar.Program {
			t.Fatalf("root is %s", tree.Rule(tree.Root))
		}
	}
}

func TestStatementSpans(t *testing.T) {
	input := "let a = 1;\n  loop { break }"
	tree := mustParse(t, input)
	stmts := statements(tree)
	if got := tree.Span(stmts[0]); got.Start != 0 || got.End != 10 {
		t.Fatalf("let span = %d..%d, want 0..10", got.Start, got.End)
	}
	if got := tree.Span(stmts[1]); got.Start != 13 || got.End != uint32(len(input)) {
		t.Fatalf("loop span = %d..%d", got.Start, got.End)
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		start uint32
		msg   string
	}{
		{"let without name", "let = 1", diag.SynExpectIdentifier, 4, "expected identifier, found `=`"},
		{"let with keyword name", "let loop = 1", diag.SynExpectIdentifier, 4, "expected identifier, found keyword `loop`"},
		{"let without value", "let a =", diag.SynExpectExpression, 7, "expected expression, found end of input"},
		{"let missing assign", "let a 1", diag.SynUnexpectedToken, 6, "expected `=`, found number `1`"},
		{"unclosed block", "loop {", diag.SynUnclosedBrace, 6, "expected statement or `}`, found end of input"},
		{"loop without block", "loop break", diag.SynExpectBlock, 5, "expected `{`, found keyword `break`"},
		{"stray else", "else { }", diag.SynUnexpectedToken, 0, "expected statement, found keyword `else`"},
		{"stray brace", "print(1) }", diag.SynUnexpectedToken, 9, "expected statement, found `}`"},
		{"fn without parens", "fn main { }", diag.SynUnexpectedToken, 8, "expected `(`, found `{`"},
		{"fn bad param", "fn main(1) { }", diag.SynUnclosedParen, 8, "expected `)`, found number `1`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, bag := parseSource(t, tt.input)
			if tree != nil {
				t.Fatalf("expected parse failure")
			}
			if bag.Len() != 1 {
				t.Fatalf("expected exactly one diagnostic, got %s", diagnosticsSummary(bag))
			}
			d := bag.Items()[0]
			if d.Code != tt.code || d.Span.Start != tt.start || d.Msg != tt.msg {
				t.Fatalf("got %s@%d %q, want %s@%d %q", d.Code.ID(), d.Span.Start, d.Msg, tt.code.ID(), tt.start, tt.msg)
			}
		})
	}
}

func TestNestingLimit(t *testing.T) {
	res, _, bag := parseSourceOpts(t, "loop { loop { loop { loop { break } } } }", Options{MaxDepth: 3})
	if res.OK {
		t.Fatalf("expected nesting failure")
	}
	d := bag.Items()[0]
	if d.Code != diag.SynNestingTooDeep {
		t.Fatalf("code = %s, want %s", d.Code.ID(), diag.SynNestingTooDeep.ID())
	}

	res, _, _ = parseSourceOpts(t, "loop { loop { loop { break } } }", Options{MaxDepth: 3})
	if !res.OK {
		t.Fatalf("three levels must fit in MaxDepth 3")
	}
}

func TestLexerErrorIsReportedOnce(t *testing.T) {
	tree, bag := parseSource(t, "print(@)")
	if tree != nil {
		t.Fatalf("expected failure")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
}
