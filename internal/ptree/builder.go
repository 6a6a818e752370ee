package ptree

import (
	"fmt"

	"fortio.org/safecast"

	"zinc/internal/grammar"
	"zinc/internal/source"
	"zinc/internal/token"
)

// Builder assembles a Tree bottom-up. Parse functions take a Mark before
// parsing their children and Close it afterwards; every node built in
// between becomes a child of the closed node.
type Builder struct {
	tree  Tree
	stack []NodeID // ещё не присоединённые узлы
}

// Mark is a position in the pending-children stack.
type Mark int

func NewBuilder(file source.FileID, capHint int) *Builder {
	if capHint <= 0 {
		capHint = 64
	}
	b := &Builder{
		tree: Tree{
			File:  file,
			nodes: make([]Node, 1, capHint+1),
			kids:  make([]NodeID, 0, capHint),
		},
		stack: make([]NodeID, 0, 32),
	}
	return b
}

func (b *Builder) Mark() Mark {
	return Mark(len(b.stack))
}

// Leaf adds a childless node carrying tok's text.
func (b *Builder) Leaf(rule grammar.Rule, tok token.Token) NodeID {
	id := b.push(Node{Rule: rule, Span: tok.Span, Tok: tok.Kind, Text: tok.Text})
	return id
}

// Close wraps every node pushed since m into a new node of rule.
func (b *Builder) Close(m Mark, rule grammar.Rule, span source.Span) NodeID {
	pending := b.stack[m:]
	first := b.u32(len(b.tree.kids))
	b.tree.kids = append(b.tree.kids, pending...)
	count := b.u32(len(pending))
	b.stack = b.stack[:m]
	return b.push(Node{Rule: rule, Span: span, first: first, count: count})
}

// Abandon drops every node pushed since m from the pending stack.
// The nodes stay in the arena but are unreachable.
func (b *Builder) Abandon(m Mark) {
	b.stack = b.stack[:m]
}

// Finish closes the root and returns the tree. The builder must not be reused.
func (b *Builder) Finish(m Mark, span source.Span) *Tree {
	root := b.Close(m, grammar.Program, span)
	b.tree.Root = root
	b.stack = nil
	t := b.tree
	return &t
}

func (b *Builder) push(n Node) NodeID {
	b.tree.nodes = append(b.tree.nodes, n)
	id := NodeID(b.u32(len(b.tree.nodes) - 1))
	b.stack = append(b.stack, id)
	return id
}

func (b *Builder) u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("parse tree overflow: %w", err))
	}
	return v
}
