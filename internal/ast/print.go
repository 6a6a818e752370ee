package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the program as one s-expression per top-level statement.
func Dump(w io.Writer, b *Builder) error {
	for _, id := range b.Program.Stmts {
		if _, err := fmt.Fprintln(w, b.FormatStmt(id)); err != nil {
			return err
		}
	}
	return nil
}

// FormatStmt renders a statement as an s-expression; missing nodes print as "_".
func (b *Builder) FormatStmt(id StmtID) string {
	var sb strings.Builder
	b.writeStmt(&sb, id)
	return sb.String()
}

// FormatExpr renders an expression as an s-expression.
func (b *Builder) FormatExpr(id ExprID) string {
	var sb strings.Builder
	b.writeExpr(&sb, id)
	return sb.String()
}

func (b *Builder) writeBlock(sb *strings.Builder, id BlockID) {
	blk := b.Block(id)
	if blk == nil {
		sb.WriteString("_")
		return
	}
	sb.WriteString("{")
	for i, st := range blk.Stmts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		b.writeStmt(sb, st)
	}
	sb.WriteString("}")
}

func (b *Builder) writeStmt(sb *strings.Builder, id StmtID) {
	st := b.Stmts.Get(id)
	if st == nil {
		sb.WriteString("_")
		return
	}
	switch st.Kind {
	case StmtExpr:
		d, _ := b.Stmts.Expr(id)
		b.writeExpr(sb, d.Expr)
	case StmtLet:
		d, _ := b.Stmts.Let(id)
		fmt.Fprintf(sb, "(let %s ", b.Name(d.Name))
		b.writeExpr(sb, d.Value)
		sb.WriteString(")")
	case StmtIf:
		d, _ := b.Stmts.If(id)
		sb.WriteString("(if ")
		b.writeExpr(sb, d.Cond)
		sb.WriteByte(' ')
		b.writeBlock(sb, d.Then)
		if d.Else.IsValid() {
			sb.WriteByte(' ')
			b.writeBlock(sb, d.Else)
		}
		sb.WriteString(")")
	case StmtLoop:
		d, _ := b.Stmts.Loop(id)
		sb.WriteString("(loop ")
		b.writeBlock(sb, d.Body)
		sb.WriteString(")")
	case StmtBreak:
		sb.WriteString("(break)")
	case StmtFn:
		d, _ := b.Stmts.Fn(id)
		fmt.Fprintf(sb, "(fn %s [", b.Name(d.Name))
		for i, p := range d.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Name(p))
		}
		sb.WriteString("] ")
		b.writeBlock(sb, d.Body)
		sb.WriteString(")")
	}
}

func (b *Builder) writeExprs(sb *strings.Builder, ids []ExprID) {
	for _, id := range ids {
		sb.WriteByte(' ')
		b.writeExpr(sb, id)
	}
}

func (b *Builder) writeExpr(sb *strings.Builder, id ExprID) {
	e := b.Exprs.Get(id)
	if e == nil {
		sb.WriteString("_")
		return
	}
	switch e.Kind {
	case ExprIdent:
		d, _ := b.Exprs.Ident(id)
		sb.WriteString(b.Name(d.Name))
	case ExprNumber, ExprString:
		d, _ := b.Exprs.Literal(id)
		sb.WriteString(b.Name(d.Value))
	case ExprBinary:
		d, _ := b.Exprs.Binary(id)
		fmt.Fprintf(sb, "(%s ", d.Op)
		b.writeExpr(sb, d.Left)
		sb.WriteByte(' ')
		b.writeExpr(sb, d.Right)
		sb.WriteString(")")
	case ExprCall:
		d, _ := b.Exprs.Call(id)
		fmt.Fprintf(sb, "(call %s", b.Name(d.Name))
		b.writeExprs(sb, d.Args)
		sb.WriteString(")")
	case ExprMemberCall:
		d, _ := b.Exprs.MemberCall(id)
		sb.WriteString("(mcall ")
		b.writeExpr(sb, d.Receiver)
		fmt.Fprintf(sb, " %s", b.Name(d.Method))
		b.writeExprs(sb, d.Args)
		sb.WriteString(")")
	case ExprMember:
		d, _ := b.Exprs.Member(id)
		sb.WriteString("(field ")
		b.writeExpr(sb, d.Receiver)
		fmt.Fprintf(sb, " %s)", b.Name(d.Field))
	case ExprIndex:
		d, _ := b.Exprs.Index(id)
		sb.WriteString("(index ")
		b.writeExpr(sb, d.Target)
		sb.WriteByte(' ')
		b.writeExpr(sb, d.Index)
		sb.WriteString(")")
	case ExprArray:
		d, _ := b.Exprs.Array(id)
		sb.WriteString("(array")
		b.writeExprs(sb, d.Elems)
		sb.WriteString(")")
	case ExprGroup:
		d, _ := b.Exprs.Group(id)
		sb.WriteString("(group ")
		b.writeExpr(sb, d.Inner)
		sb.WriteString(")")
	}
}
