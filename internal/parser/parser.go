package parser

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"zinc/internal/diag"
	"zinc/internal/grammar"
	"zinc/internal/lexer"
	"zinc/internal/ptree"
	"zinc/internal/source"
	"zinc/internal/token"
)

// DefaultMaxDepth bounds nesting of blocks and expressions.
const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth limits recursion; 0 means DefaultMaxDepth.
	MaxDepth int
	Reporter diag.Reporter
}

type Result struct {
	Tree *ptree.Tree // nil when parsing failed
	OK   bool
}

// Parser - состояние парсера на один файл.
// Разбор останавливается на первой ошибке: восстановления нет.
type Parser struct {
	lx       *lexer.Lexer
	tb       *ptree.Builder
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	depth    int
	failed   bool
}

// ParseFile parses the whole file behind lx as a program.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	file := lx.File()
	p := Parser{
		lx:       lx,
		tb:       ptree.NewBuilder(file.ID, len(file.Content)/2),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	tree := p.parseProgram()
	if p.failed {
		return Result{}
	}
	return Result{Tree: tree, OK: true}
}

// parseProgram: statement* EOF
func (p *Parser) parseProgram() *ptree.Tree {
	root := p.tb.Mark()
	for !p.at(token.EOF) {
		if !p.parseStatement() {
			return nil
		}
	}
	end, err := safecast.Conv[uint32](len(p.lx.File().Content))
	if err != nil {
		panic(fmt.Errorf("file too large: %w", err))
	}
	return p.tb.Finish(root, source.Span{File: p.lx.File().ID, Start: 0, End: end})
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// spanFrom покрывает всё от start до последнего съеденного токена.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func startsExpr(k token.Kind) bool {
	switch k {
	case token.Ident, token.NumberLit, token.StringLit, token.LBracket, token.LParen:
		return true
	default:
		return false
	}
}

// enter increments the nesting depth; leave must follow on every path.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.err(diag.SynNestingTooDeep, "nesting too deep")
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// leaf consumes the current token into a childless node.
func (p *Parser) leaf(rule grammar.Rule) ptree.NodeID {
	return p.tb.Leaf(rule, p.advance())
}
