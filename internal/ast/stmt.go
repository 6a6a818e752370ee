package ast

import (
	"zinc/internal/source"
)

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtLet
	StmtIf
	StmtLoop
	StmtBreak
	StmtFn
)

var stmtKindNames = [...]string{
	StmtExpr:  "expr",
	StmtLet:   "let",
	StmtIf:    "if",
	StmtLoop:  "loop",
	StmtBreak: "break",
	StmtFn:    "fn",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "stmt?"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtExprData struct {
	Expr ExprID
}

type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

// StmtIfData.Else is NoBlockID without an else branch; else-if is a block holding one if statement.
type StmtIfData struct {
	Cond ExprID
	Then BlockID
	Else BlockID
}

type StmtLoopData struct {
	Body BlockID
}

// StmtFnData описывает fn-определение; параметры только запоминаются.
type StmtFnData struct {
	Name   source.StringID
	Params []source.StringID
	Body   BlockID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena     *Arena[Stmt]
	ExprStmts *Arena[StmtExprData]
	Lets      *Arena[StmtLetData]
	Ifs       *Arena[StmtIfData]
	Loops     *Arena[StmtLoopData]
	Fns       *Arena[StmtFnData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		ExprStmts: NewArena[StmtExprData](capHint),
		Lets:      NewArena[StmtLetData](capHint),
		Ifs:       NewArena[StmtIfData](capHint),
		Loops:     NewArena[StmtLoopData](capHint),
		Fns:       NewArena[StmtFnData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payloadOf(id StmtID, kind StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != kind {
		return 0, false
	}
	return uint32(st.Payload), true
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	p, ok := s.payloadOf(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.ExprStmts.Get(p), true
}

func (s *Stmts) NewLet(span source.Span, name source.StringID, nameSpan source.Span, value ExprID) StmtID {
	payload := s.Lets.Allocate(StmtLetData{Name: name, NameSpan: nameSpan, Value: value})
	return s.new(StmtLet, span, PayloadID(payload))
}

func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	p, ok := s.payloadOf(id, StmtLet)
	if !ok {
		return nil, false
	}
	return s.Lets.Get(p), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els BlockID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	p, ok := s.payloadOf(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

func (s *Stmts) NewLoop(span source.Span, body BlockID) StmtID {
	payload := s.Loops.Allocate(StmtLoopData{Body: body})
	return s.new(StmtLoop, span, PayloadID(payload))
}

func (s *Stmts) Loop(id StmtID) (*StmtLoopData, bool) {
	p, ok := s.payloadOf(id, StmtLoop)
	if !ok {
		return nil, false
	}
	return s.Loops.Get(p), true
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewFn(span source.Span, name source.StringID, params []source.StringID, body BlockID) StmtID {
	payload := s.Fns.Allocate(StmtFnData{
		Name:   name,
		Params: append([]source.StringID(nil), params...),
		Body:   body,
	})
	return s.new(StmtFn, span, PayloadID(payload))
}

func (s *Stmts) Fn(id StmtID) (*StmtFnData, bool) {
	p, ok := s.payloadOf(id, StmtFn)
	if !ok {
		return nil, false
	}
	return s.Fns.Get(p), true
}
