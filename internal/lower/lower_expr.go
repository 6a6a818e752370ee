package lower

import (
	"zinc/internal/ast"
	"zinc/internal/grammar"
	"zinc/internal/ptree"
	"zinc/internal/source"
)

// expr folds term (op term)* left to right: a + b |> f is (a + b) |> f.
func (l *lowerer) expr(id ptree.NodeID) ast.ExprID {
	if l.tree.Rule(id) != grammar.Expr {
		return ast.NoExprID
	}
	kids := l.tree.Children(id)
	if len(kids) == 0 {
		return ast.NoExprID
	}
	acc := l.term(kids[0])
	for i := 1; i+1 < len(kids); i += 2 {
		opNode := l.tree.Node(kids[i])
		op, ok := binaryOp(opNode.Tok)
		if !ok {
			return ast.NoExprID
		}
		rhs := l.term(kids[i+1])
		span := l.tree.Span(kids[0]).Cover(l.tree.Span(kids[i+1]))
		acc = l.b.Exprs.NewBinary(span, op, acc, rhs)
	}
	return acc
}

// term: atom suffix*; each suffix wraps the expression built so far.
func (l *lowerer) term(id ptree.NodeID) ast.ExprID {
	kids := l.tree.Children(id)
	if len(kids) == 0 {
		return ast.NoExprID
	}
	start := l.tree.Span(kids[0])
	cur := l.atom(kids[0])
	for _, s := range kids[1:] {
		cur = l.suffix(s, cur, start)
	}
	return cur
}

func (l *lowerer) suffix(id ptree.NodeID, recv ast.ExprID, start source.Span) ast.ExprID {
	inner := l.tree.Child(id, 0)
	span := start.Cover(l.tree.Span(id))

	switch l.tree.Rule(inner) {
	case grammar.IndexingSuffix:
		return l.b.Exprs.NewIndex(span, recv, l.expr(l.tree.Child(inner, 0)))
	case grammar.MemberSuffix:
		name := l.name(l.tree.ChildByRule(inner, grammar.Identifier))
		if args := l.tree.ChildByRule(inner, grammar.ArgList); args.IsValid() {
			return l.b.Exprs.NewMemberCall(span, recv, name, l.args(args))
		}
		return l.b.Exprs.NewMember(span, recv, name)
	default:
		return ast.NoExprID
	}
}

func (l *lowerer) atom(id ptree.NodeID) ast.ExprID {
	inner := l.tree.Child(id, 0)
	span := l.tree.Span(inner)

	switch l.tree.Rule(inner) {
	case grammar.Identifier:
		return l.b.Exprs.NewIdent(span, l.name(inner))
	case grammar.Number:
		return l.b.Exprs.NewLiteral(span, ast.ExprNumber, l.name(inner))
	case grammar.String:
		return l.b.Exprs.NewLiteral(span, ast.ExprString, l.name(inner))
	case grammar.Call:
		callee := l.tree.ChildByRule(inner, grammar.Identifier)
		args := l.args(l.tree.ChildByRule(inner, grammar.ArgList))
		return l.b.Exprs.NewCall(span, l.name(callee), l.tree.Span(callee), args)
	case grammar.Array:
		return l.b.Exprs.NewArray(span, l.exprList(inner))
	case grammar.Group:
		return l.b.Exprs.NewGroup(span, l.expr(l.tree.Child(inner, 0)))
	default:
		return ast.NoExprID
	}
}

func (l *lowerer) args(id ptree.NodeID) []ast.ExprID {
	if !id.IsValid() {
		return nil
	}
	return l.exprList(id)
}

func (l *lowerer) exprList(id ptree.NodeID) []ast.ExprID {
	kids := l.tree.Children(id)
	out := make([]ast.ExprID, 0, len(kids))
	for _, k := range kids {
		out = append(out, l.expr(k))
	}
	return out
}
