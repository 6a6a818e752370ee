package codegen

import (
	"strings"

	"zinc/internal/ast"
	"zinc/internal/diag"
)

// expr returns "" when id cannot be lowered.
func (g *generator) expr(id ast.ExprID) string {
	e := g.b.Exprs.Get(id)
	if e == nil {
		return ""
	}

	switch e.Kind {
	case ast.ExprIdent:
		d, _ := g.b.Exprs.Ident(id)
		return g.name(d.Name)
	case ast.ExprNumber:
		d, _ := g.b.Exprs.Literal(id)
		return g.name(d.Value)
	case ast.ExprString:
		d, _ := g.b.Exprs.Literal(id)
		return StringLiteral(g.name(d.Value))
	case ast.ExprBinary:
		return g.binary(id)
	case ast.ExprCall:
		d, _ := g.b.Exprs.Call(id)
		args, ok := g.args(d.Args)
		if !ok {
			return ""
		}
		return g.call(id, g.name(d.Name), args)
	case ast.ExprMemberCall:
		d, _ := g.b.Exprs.MemberCall(id)
		if recv, ok := g.b.Exprs.Ident(d.Receiver); ok {
			args, ok := g.args(d.Args)
			if !ok {
				return ""
			}
			return g.memberCall(id, g.name(recv.Name), g.name(d.Method), args)
		}
		return g.suffix(g.expr(d.Receiver), id)
	case ast.ExprMember, ast.ExprIndex:
		return g.suffix(g.expr(g.b.Exprs.Receiver(id)), id)
	case ast.ExprArray:
		return g.array(id)
	case ast.ExprGroup:
		d, _ := g.b.Exprs.Group(id)
		inner := g.expr(d.Inner)
		if inner == "" {
			return ""
		}
		return "(" + inner + ")"
	default:
		return ""
	}
}

func (g *generator) binary(id ast.ExprID) string {
	d, _ := g.b.Exprs.Binary(id)
	if d.Op == ast.ExprBinaryPipe {
		return g.pipeline(d.Left, d.Right)
	}
	lhs := g.expr(d.Left)
	rhs := g.expr(d.Right)
	if lhs == "" || rhs == "" {
		return ""
	}
	if d.Op == ast.ExprBinaryConcat {
		return `format!("{}{}", ` + lhs + ", " + rhs + ")"
	}
	return "(" + lhs + " " + d.Op.String() + " " + rhs + ")"
}

// suffix applies one index, member or method suffix to already lowered text.
func (g *generator) suffix(cur string, id ast.ExprID) string {
	if cur == "" {
		return ""
	}
	e := g.b.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprIndex:
		d, _ := g.b.Exprs.Index(id)
		idx := g.expr(d.Index)
		if idx == "" {
			return ""
		}
		return cur + "[" + idx + " as usize]"
	case ast.ExprMember:
		d, _ := g.b.Exprs.Member(id)
		return cur + "." + g.name(d.Field)
	case ast.ExprMemberCall:
		d, _ := g.b.Exprs.MemberCall(id)
		args, ok := g.args(d.Args)
		if !ok {
			return ""
		}
		return cur + "." + g.name(d.Method) + "(" + strings.Join(args, ", ") + ")"
	default:
		return ""
	}
}

// args lowers call arguments; one empty argument empties the whole call.
func (g *generator) args(ids []ast.ExprID) ([]string, bool) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		a := g.expr(id)
		if a == "" {
			return nil, false
		}
		out = append(out, a)
	}
	return out, true
}

// array skips elements that lower empty.
func (g *generator) array(id ast.ExprID) string {
	d, _ := g.b.Exprs.Array(id)
	items := make([]string, 0, len(d.Elems))
	for _, el := range d.Elems {
		item := g.expr(el)
		if item == "" {
			if e := g.b.Exprs.Get(el); e != nil {
				g.drop(diag.GenDroppedExpr, e.Span, "array element produces no output")
			}
			continue
		}
		items = append(items, item)
	}
	return "vec![" + strings.Join(items, ", ") + "]"
}
