// Package lower turns a ptree.Tree into an ast program.
//
// The parse tree keeps every production; lowering drops the wrappers
// (statement, atom, term, suffix) and folds flat operator chains left to
// right. Nodes of an unexpected shape lower to NoStmtID / NoExprID, which
// code generation renders as empty text.
package lower

import (
	"zinc/internal/ast"
	"zinc/internal/grammar"
	"zinc/internal/ptree"
	"zinc/internal/source"
	"zinc/internal/token"
)

// Program lowers the whole tree rooted at t.Root.
func Program(t *ptree.Tree) *ast.Builder {
	if t == nil || !t.Root.IsValid() {
		return ast.NewBuilder(ast.Hints{})
	}
	hint := uint(max(t.Len(), 0))
	b := ast.NewBuilder(ast.Hints{Stmts: hint / 4, Exprs: hint / 2})
	l := &lowerer{tree: t, b: b}
	b.Program = ast.Program{
		Span:  t.Span(t.Root),
		Stmts: l.stmtList(t.Root),
	}
	return b
}

type lowerer struct {
	tree *ptree.Tree
	b    *ast.Builder
}

// stmtList lowers every statement child of a program or block node.
func (l *lowerer) stmtList(id ptree.NodeID) []ast.StmtID {
	kids := l.tree.Children(id)
	out := make([]ast.StmtID, 0, len(kids))
	for _, k := range kids {
		if l.tree.Rule(k) != grammar.Statement {
			continue
		}
		out = append(out, l.stmt(k))
	}
	return out
}

func (l *lowerer) block(id ptree.NodeID) ast.BlockID {
	if l.tree.Rule(id) != grammar.Block {
		return ast.NoBlockID
	}
	return l.b.NewBlock(l.tree.Span(id), l.stmtList(id))
}

func (l *lowerer) name(id ptree.NodeID) source.StringID {
	return l.b.Intern(l.tree.Text(id))
}

func binaryOp(k token.Kind) (ast.ExprBinaryOp, bool) {
	switch k {
	case token.PipeGt:
		return ast.ExprBinaryPipe, true
	case token.Plus:
		return ast.ExprBinaryConcat, true
	case token.EqEq:
		return ast.ExprBinaryEq, true
	case token.BangEq:
		return ast.ExprBinaryNe, true
	case token.Lt:
		return ast.ExprBinaryLt, true
	case token.LtEq:
		return ast.ExprBinaryLe, true
	case token.Gt:
		return ast.ExprBinaryGt, true
	case token.GtEq:
		return ast.ExprBinaryGe, true
	default:
		return 0, false
	}
}
