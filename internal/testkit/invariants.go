// Package testkit holds helpers shared by package tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"zinc/internal/ast"
	"zinc/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a lowered program:
// 1) the program span lies within the file content
// 2) every statement span is non-empty and inside its parent (program or block)
// 3) statements of one list appear in source order without overlap
func CheckSpanInvariants(b *ast.Builder, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	p := b.Program.Span
	if p.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", p.File, sf.ID)
	}
	if p.End > lenContent || p.Start > p.End {
		return fmt.Errorf("program span %v outside content of %d bytes", p, lenContent)
	}
	return checkList(b, sf.ID, p, b.Program.Stmts)
}

func checkList(b *ast.Builder, file source.FileID, parent source.Span, stmts []ast.StmtID) error {
	var prevEnd uint32
	for i, id := range stmts {
		st := b.Stmts.Get(id)
		if st == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := st.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty %s span: %v", st.Kind, sp)
		}
		if sp.File != file {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", st.Kind, sp.File, file)
		}
		if sp.Start < parent.Start || sp.End > parent.End {
			return fmt.Errorf("%s span %v is outside parent span %v", st.Kind, sp, parent)
		}
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("%s span %v overlaps previous statement ending at %d", st.Kind, sp, prevEnd)
		}
		prevEnd = sp.End
		for _, blk := range childBlocks(b, id) {
			block := b.Block(blk)
			if block == nil {
				continue
			}
			if block.Span.Start < sp.Start || block.Span.End > sp.End {
				return fmt.Errorf("block span %v is outside %s span %v", block.Span, st.Kind, sp)
			}
			if err := checkList(b, file, block.Span, block.Stmts); err != nil {
				return err
			}
		}
	}
	return nil
}

func childBlocks(b *ast.Builder, id ast.StmtID) []ast.BlockID {
	if d, ok := b.Stmts.If(id); ok {
		return []ast.BlockID{d.Then, d.Else}
	}
	if d, ok := b.Stmts.Loop(id); ok {
		return []ast.BlockID{d.Body}
	}
	if d, ok := b.Stmts.Fn(id); ok {
		return []ast.BlockID{d.Body}
	}
	return nil
}
