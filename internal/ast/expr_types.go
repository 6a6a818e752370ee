package ast

import (
	"zinc/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprNumber
	ExprString
	ExprBinary
	ExprCall
	ExprMemberCall
	ExprMember
	ExprIndex
	ExprArray
	ExprGroup
)

var exprKindNames = [...]string{
	ExprIdent:      "ident",
	ExprNumber:     "number",
	ExprString:     "string",
	ExprBinary:     "binary",
	ExprCall:       "call",
	ExprMemberCall: "member_call",
	ExprMember:     "member",
	ExprIndex:      "index",
	ExprArray:      "array",
	ExprGroup:      "group",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "expr?"
}

// IsSuffix reports whether k wraps a receiver: indexing, member access or method call.
func (k ExprKind) IsSuffix() bool {
	return k == ExprIndex || k == ExprMember || k == ExprMemberCall
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprBinaryOp uint8

const (
	ExprBinaryPipe ExprBinaryOp = iota
	ExprBinaryConcat
	ExprBinaryEq
	ExprBinaryNe
	ExprBinaryLt
	ExprBinaryLe
	ExprBinaryGt
	ExprBinaryGe
)

var binaryOpSpelling = [...]string{
	ExprBinaryPipe:   "|>",
	ExprBinaryConcat: "+",
	ExprBinaryEq:     "==",
	ExprBinaryNe:     "!=",
	ExprBinaryLt:     "<",
	ExprBinaryLe:     "<=",
	ExprBinaryGt:     ">",
	ExprBinaryGe:     ">=",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpSpelling) {
		return binaryOpSpelling[op]
	}
	return "?"
}

// IsComparison reports ==, !=, <, <=, > and >=.
func (op ExprBinaryOp) IsComparison() bool {
	return op >= ExprBinaryEq && op <= ExprBinaryGe
}

type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData keeps the literal exactly as written; strings include their quotes.
type ExprLiteralData struct {
	Value source.StringID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprCallData is a call of a bare identifier: name(args).
type ExprCallData struct {
	Name     source.StringID
	NameSpan source.Span
	Args     []ExprID
}

// ExprMemberCallData is receiver.method(args).
type ExprMemberCallData struct {
	Receiver ExprID
	Method   source.StringID
	Args     []ExprID
}

// ExprMemberData is receiver.field with no argument list.
type ExprMemberData struct {
	Receiver ExprID
	Field    source.StringID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprArrayData struct {
	Elems []ExprID
}

type ExprGroupData struct {
	Inner ExprID
}
