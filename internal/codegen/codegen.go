// Package codegen emits Rust source text for a lowered Zinc program.
//
// Generation never fails. A node that cannot be lowered produces empty text,
// and empty text propagates upward: an empty argument empties its call, an
// empty expression empties its statement. With Options.Strict every such
// drop is reported as a warning; the output is the same either way.
package codegen

import (
	"strings"

	"zinc/internal/ast"
	"zinc/internal/diag"
	"zinc/internal/source"
)

type Options struct {
	// Strict reports dropped statements, expressions and arity mismatches as warnings.
	Strict   bool
	Reporter diag.Reporter
}

// Result is the generated program body, without the fn main wrapper.
type Result struct {
	Out     string
	Dropped int
}

// Generate lowers every top-level statement of b in source order.
func Generate(b *ast.Builder, opts Options) Result {
	g := &generator{b: b, opts: opts}
	var sb strings.Builder
	for _, id := range b.Program.Stmts {
		sb.WriteString(g.stmt(id))
	}
	return Result{Out: sb.String(), Dropped: g.dropped}
}

type generator struct {
	b       *ast.Builder
	opts    Options
	dropped int
}

func (g *generator) name(id source.StringID) string {
	return g.b.Name(id)
}

// drop учитывает потерянный узел; в строгом режиме ещё и сообщает о нём.
func (g *generator) drop(code diag.Code, span source.Span, msg string) {
	g.dropped++
	if g.opts.Strict && g.opts.Reporter != nil {
		g.opts.Reporter.Report(code, diag.SevWarning, span, msg)
	}
}
