package ast

import (
	"zinc/internal/source"
)

type Hints struct{ Stmts, Exprs, Blocks uint }

// Builder owns every arena of one lowered program.
type Builder struct {
	Stmts   *Stmts
	Exprs   *Exprs
	Blocks  *Arena[Block]
	Strings *source.Interner
	Program Program
}

// Program is the lowered top level: statements in source order.
type Program struct {
	Span  source.Span
	Stmts []StmtID
}

// Block is a brace-delimited statement list.
type Block struct {
	Span  source.Span
	Stmts []StmtID
}

func NewBuilder(hints Hints) *Builder {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Blocks == 0 {
		hints.Blocks = 1 << 4
	}
	return &Builder{
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Blocks:  NewArena[Block](hints.Blocks),
		Strings: source.NewInterner(),
	}
}

// NewBlock allocates a block holding stmts.
func (b *Builder) NewBlock(span source.Span, stmts []StmtID) BlockID {
	return BlockID(b.Blocks.Allocate(Block{Span: span, Stmts: append([]StmtID(nil), stmts...)}))
}

// Block returns the block for id, or nil.
func (b *Builder) Block(id BlockID) *Block {
	return b.Blocks.Get(uint32(id))
}

// Name resolves an interned identifier or literal.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}

// Intern stores s and returns its id.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}
