package lower

import (
	"zinc/internal/ast"
	"zinc/internal/grammar"
	"zinc/internal/ptree"
	"zinc/internal/source"
)

// stmt lowers a statement wrapper node; the span covers the optional `;`.
func (l *lowerer) stmt(id ptree.NodeID) ast.StmtID {
	inner := l.tree.Child(id, 0)
	span := l.tree.Span(id)

	switch l.tree.Rule(inner) {
	case grammar.ExprStmt:
		return l.b.Stmts.NewExpr(span, l.expr(l.tree.Child(inner, 0)))
	case grammar.LetStmt:
		return l.letStmt(inner, span)
	case grammar.IfStmt:
		return l.ifStmt(inner, span)
	case grammar.LoopStmt:
		return l.b.Stmts.NewLoop(span, l.block(l.tree.ChildByRule(inner, grammar.Block)))
	case grammar.BreakStmt:
		return l.b.Stmts.NewBreak(span)
	case grammar.FnDef:
		return l.fnDef(inner, span)
	default:
		return ast.NoStmtID
	}
}

// let_stmt: identifier expr
func (l *lowerer) letStmt(id ptree.NodeID, span source.Span) ast.StmtID {
	nameNode := l.tree.ChildByRule(id, grammar.Identifier)
	value := l.expr(l.tree.ChildByRule(id, grammar.Expr))
	return l.b.Stmts.NewLet(span, l.name(nameNode), l.tree.Span(nameNode), value)
}

// if_stmt: expr block (block | if_stmt)?
func (l *lowerer) ifStmt(id ptree.NodeID, span source.Span) ast.StmtID {
	kids := l.tree.Children(id)
	var (
		cond       = ast.NoExprID
		then, els  = ast.NoBlockID, ast.NoBlockID
		seenBlocks int
	)
	for _, k := range kids {
		switch l.tree.Rule(k) {
		case grammar.Expr:
			cond = l.expr(k)
		case grammar.Block:
			if seenBlocks == 0 {
				then = l.block(k)
			} else {
				els = l.block(k)
			}
			seenBlocks++
		case grammar.IfStmt:
			// else if: вложенный if как единственный оператор else-блока
			nestedSpan := l.tree.Span(k)
			nested := l.ifStmt(k, nestedSpan)
			els = l.b.NewBlock(nestedSpan, []ast.StmtID{nested})
		}
	}
	return l.b.Stmts.NewIf(span, cond, then, els)
}

// fn_def: identifier param_list? block
func (l *lowerer) fnDef(id ptree.NodeID, span source.Span) ast.StmtID {
	name := l.name(l.tree.ChildByRule(id, grammar.Identifier))
	var params []source.StringID
	if pl := l.tree.ChildByRule(id, grammar.ParamList); pl.IsValid() {
		for _, p := range l.tree.Children(pl) {
			params = append(params, l.name(p))
		}
	}
	body := l.block(l.tree.ChildByRule(id, grammar.Block))
	return l.b.Stmts.NewFn(span, name, params, body)
}
