package codegen

import (
	"zinc/internal/ast"
)

// pipeline desugars lhs |> rhs into a call that takes lhs as its first argument.
//
//	a |> f(b)         f(a, b)
//	a |> f            f(a)
//	a |> obj.m(b)     obj.m(a, b), through the member table
//	a |> xs[0]        xs[0 as usize](a)
func (g *generator) pipeline(lhsID, rhsID ast.ExprID) string {
	lhs := g.expr(lhsID)
	if lhs == "" {
		return ""
	}
	base, chain := g.b.Exprs.Unchain(rhsID)

	if call, ok := g.b.Exprs.Call(base); ok {
		args, ok := g.args(call.Args)
		if !ok {
			return ""
		}
		cur := g.call(base, g.name(call.Name), prepend(lhs, args))
		return g.suffixes(cur, chain)
	}

	if ident, ok := g.b.Exprs.Ident(base); ok {
		if len(chain) == 0 {
			return g.call(base, g.name(ident.Name), []string{lhs})
		}
		if mc, ok := g.b.Exprs.MemberCall(chain[0]); ok {
			args, ok := g.args(mc.Args)
			if !ok {
				return ""
			}
			cur := g.memberCall(chain[0], g.name(ident.Name), g.name(mc.Method), prepend(lhs, args))
			return g.suffixes(cur, chain[1:])
		}
	}

	rhs := g.expr(rhsID)
	if rhs == "" {
		return ""
	}
	if e := g.b.Exprs.Get(rhsID); e != nil && e.Kind == ast.ExprBinary {
		rhs = "(" + rhs + ")"
	}
	return rhs + "(" + lhs + ")"
}

func (g *generator) suffixes(cur string, chain []ast.ExprID) string {
	for _, s := range chain {
		cur = g.suffix(cur, s)
	}
	return cur
}

func prepend(first string, rest []string) []string {
	out := make([]string, 0, len(rest)+1)
	out = append(out, first)
	return append(out, rest...)
}
