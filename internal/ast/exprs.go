package ast

import (
	"zinc/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena       *Arena[Expr]
	Idents      *Arena[ExprIdentData]
	Literals    *Arena[ExprLiteralData]
	Binaries    *Arena[ExprBinaryData]
	Calls       *Arena[ExprCallData]
	MemberCalls *Arena[ExprMemberCallData]
	Members     *Arena[ExprMemberData]
	Indices     *Arena[ExprIndexData]
	Arrays      *Arena[ExprArrayData]
	Groups      *Arena[ExprGroupData]
}

// NewExprs creates per-kind arenas with capHint capacity (1<<8 when zero).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Idents:      NewArena[ExprIdentData](capHint),
		Literals:    NewArena[ExprLiteralData](capHint),
		Binaries:    NewArena[ExprBinaryData](capHint),
		Calls:       NewArena[ExprCallData](capHint),
		MemberCalls: NewArena[ExprMemberCallData](capHint),
		Members:     NewArena[ExprMemberData](capHint),
		Indices:     NewArena[ExprIndexData](capHint),
		Arrays:      NewArena[ExprArrayData](capHint),
		Groups:      NewArena[ExprGroupData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payloadOf(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payloadOf(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

// NewLiteral creates a number or string literal; kind must be ExprNumber or ExprString.
func (e *Exprs) NewLiteral(span source.Span, kind ExprKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Value: value})
	return e.new(kind, span, PayloadID(payload))
}

// Literal returns literal data for number and string expressions.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprNumber && expr.Kind != ExprString) {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payloadOf(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, name source.StringID, nameSpan source.Span, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Name:     name,
		NameSpan: nameSpan,
		Args:     append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payloadOf(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewMemberCall(span source.Span, receiver ExprID, method source.StringID, args []ExprID) ExprID {
	payload := e.MemberCalls.Allocate(ExprMemberCallData{
		Receiver: receiver,
		Method:   method,
		Args:     append([]ExprID(nil), args...),
	})
	return e.new(ExprMemberCall, span, PayloadID(payload))
}

func (e *Exprs) MemberCall(id ExprID) (*ExprMemberCallData, bool) {
	p, ok := e.payloadOf(id, ExprMemberCall)
	if !ok {
		return nil, false
	}
	return e.MemberCalls.Get(p), true
}

func (e *Exprs) NewMember(span source.Span, receiver ExprID, field source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Receiver: receiver, Field: field})
	return e.new(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payloadOf(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	p, ok := e.payloadOf(id, ExprIndex)
	if !ok {
		return nil, false
	}
	return e.Indices.Get(p), true
}

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprArray, span, PayloadID(payload))
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	p, ok := e.payloadOf(id, ExprArray)
	if !ok {
		return nil, false
	}
	return e.Arrays.Get(p), true
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	p, ok := e.payloadOf(id, ExprGroup)
	if !ok {
		return nil, false
	}
	return e.Groups.Get(p), true
}

// Receiver returns the wrapped expression of an index, member or member-call node.
func (e *Exprs) Receiver(id ExprID) ExprID {
	expr := e.Get(id)
	if expr == nil {
		return NoExprID
	}
	switch expr.Kind {
	case ExprIndex:
		return e.Indices.Get(uint32(expr.Payload)).Target
	case ExprMember:
		return e.Members.Get(uint32(expr.Payload)).Receiver
	case ExprMemberCall:
		return e.MemberCalls.Get(uint32(expr.Payload)).Receiver
	default:
		return NoExprID
	}
}

// Unchain splits a suffix chain into its base and the suffix nodes applied to it,
// innermost first: xs[0].a yields (xs, [xs[0], xs[0].a]).
func (e *Exprs) Unchain(id ExprID) (ExprID, []ExprID) {
	var suffixes []ExprID
	cur := id
	for {
		expr := e.Get(cur)
		if expr == nil || !expr.Kind.IsSuffix() {
			break
		}
		suffixes = append(suffixes, cur)
		cur = e.Receiver(cur)
	}
	for i, j := 0, len(suffixes)-1; i < j; i, j = i+1, j-1 {
		suffixes[i], suffixes[j] = suffixes[j], suffixes[i]
	}
	return cur, suffixes
}
