package ast

import (
	"testing"

	"zinc/internal/source"
)

func TestArenaIndexing(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatalf("index 0 must be empty")
	}
	id := a.Allocate(42)
	if id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}
	if got := *a.Get(id); got != 42 {
		t.Fatalf("Get(1) = %d", got)
	}
	if a.Get(2) != nil {
		t.Fatalf("out of range index must be nil")
	}
}

func TestPayloadKindChecks(t *testing.T) {
	b := NewBuilder(Hints{})
	x := b.Exprs.NewIdent(source.Span{}, b.Intern("x"))
	n := b.Exprs.NewLiteral(source.Span{}, ExprNumber, b.Intern("1"))

	if _, ok := b.Exprs.Binary(x); ok {
		t.Fatalf("ident must not resolve as binary")
	}
	lit, ok := b.Exprs.Literal(n)
	if !ok || b.Name(lit.Value) != "1" {
		t.Fatalf("literal lookup failed: %+v %v", lit, ok)
	}
	id, ok := b.Exprs.Ident(x)
	if !ok || b.Name(id.Name) != "x" {
		t.Fatalf("ident lookup failed")
	}
	if b.Exprs.Get(NoExprID) != nil {
		t.Fatalf("NoExprID must resolve to nil")
	}
}

func TestUnchain(t *testing.T) {
	b := NewBuilder(Hints{})
	xs := b.Exprs.NewIdent(source.Span{}, b.Intern("xs"))
	zero := b.Exprs.NewLiteral(source.Span{}, ExprNumber, b.Intern("0"))
	idx := b.Exprs.NewIndex(source.Span{}, xs, zero)
	mem := b.Exprs.NewMember(source.Span{}, idx, b.Intern("name"))
	call := b.Exprs.NewMemberCall(source.Span{}, mem, b.Intern("len"), nil)

	base, chain := b.Exprs.Unchain(call)
	if base != xs {
		t.Fatalf("base = %d, want %d", base, xs)
	}
	want := []ExprID{idx, mem, call}
	if len(chain) != len(want) {
		t.Fatalf("chain = %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Fatalf("chain[%d] = %d, want %d", i, chain[i], want[i])
		}
	}

	base, chain = b.Exprs.Unchain(xs)
	if base != xs || len(chain) != 0 {
		t.Fatalf("plain ident must unchain to itself")
	}
}

func TestBinaryOpClassification(t *testing.T) {
	for _, op := range []ExprBinaryOp{ExprBinaryEq, ExprBinaryNe, ExprBinaryLt, ExprBinaryLe, ExprBinaryGt, ExprBinaryGe} {
		if !op.IsComparison() {
			t.Errorf("%s must be a comparison", op)
		}
	}
	if ExprBinaryPipe.IsComparison() || ExprBinaryConcat.IsComparison() {
		t.Fatalf("pipe and concat are not comparisons")
	}
}
