package codegen

import (
	"strings"

	"zinc/internal/ast"
	"zinc/internal/diag"
)

func (g *generator) stmt(id ast.StmtID) string {
	st := g.b.Stmts.Get(id)
	if st == nil {
		return ""
	}

	var out string
	switch st.Kind {
	case ast.StmtExpr:
		out = g.exprStmt(id)
	case ast.StmtLet:
		out = g.letStmt(id)
	case ast.StmtIf:
		out = g.ifStmt(id)
	case ast.StmtLoop:
		out = g.loopStmt(id)
	case ast.StmtBreak:
		return "break;"
	case ast.StmtFn:
		// тело функции встраивается на место определения
		if fn, ok := g.b.Stmts.Fn(id); ok {
			out = g.block(fn.Body)
		}
	}
	if out == "" {
		g.drop(diag.GenDroppedStatement, st.Span, st.Kind.String()+" statement produces no output")
	}
	return out
}

func (g *generator) block(id ast.BlockID) string {
	blk := g.b.Block(id)
	if blk == nil {
		return ""
	}
	var sb strings.Builder
	for _, st := range blk.Stmts {
		sb.WriteString(g.stmt(st))
	}
	return sb.String()
}

func (g *generator) exprStmt(id ast.StmtID) string {
	d, _ := g.b.Stmts.Expr(id)
	e := g.expr(d.Expr)
	if e == "" {
		return ""
	}
	return e + ";"
}

func (g *generator) letStmt(id ast.StmtID) string {
	d, _ := g.b.Stmts.Let(id)
	name := g.name(d.Name)
	value := g.expr(d.Value)
	if name == "" || value == "" {
		return ""
	}
	return "let " + name + " = " + value + ";"
}

func (g *generator) ifStmt(id ast.StmtID) string {
	d, _ := g.b.Stmts.If(id)
	cond := g.expr(d.Cond)
	then := g.block(d.Then)
	if cond == "" || then == "" {
		return ""
	}
	els := g.block(d.Else)
	if els == "" {
		return "if " + cond + " {\n" + then + "}"
	}
	return "if " + cond + " {\n" + then + "} else {\n" + els + "}"
}

func (g *generator) loopStmt(id ast.StmtID) string {
	d, _ := g.b.Stmts.Loop(id)
	body := g.block(d.Body)
	if body == "" {
		return ""
	}
	return "loop {\n" + body + "}"
}
