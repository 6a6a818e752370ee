// Package ptree stores the concrete parse tree produced by internal/parser.
//
// Nodes live in one flat slice and refer to their children by index; every
// node's children occupy a contiguous range of a shared index slice. A Tree
// is immutable once Builder.Finish returns it and is safe to read from several
// goroutines.
package ptree

import (
	"zinc/internal/grammar"
	"zinc/internal/source"
	"zinc/internal/token"
)

// NodeID indexes Tree nodes; NoNodeID is never a valid node.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

// Node is one matched production.
type Node struct {
	Rule grammar.Rule
	Span source.Span
	// Tok and Text are set on leaves only: identifiers, literals and operators.
	Tok  token.Kind
	Text string

	first uint32 // начало диапазона детей в Tree.kids
	count uint32
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.count == 0 }

// Tree is an arena-and-index parse tree rooted at a program node.
type Tree struct {
	File  source.FileID
	Root  NodeID
	nodes []Node // nodes[0] - заглушка под NoNodeID
	kids  []NodeID
}

// Node returns the node for id, or nil for NoNodeID and out-of-range ids.
func (t *Tree) Node(id NodeID) *Node {
	if id == NoNodeID || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Rule returns the rule of id, or grammar.Invalid.
func (t *Tree) Rule(id NodeID) grammar.Rule {
	if n := t.Node(id); n != nil {
		return n.Rule
	}
	return grammar.Invalid
}

// Text returns the leaf text of id.
func (t *Tree) Text(id NodeID) string {
	if n := t.Node(id); n != nil {
		return n.Text
	}
	return ""
}

// Span returns the source span matched by id.
func (t *Tree) Span(id NodeID) source.Span {
	if n := t.Node(id); n != nil {
		return n.Span
	}
	return source.Span{File: t.File}
}

// Children returns the ordered children of id. READONLY.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil || n.count == 0 {
		return nil
	}
	return t.kids[n.first : n.first+n.count]
}

// Child returns the i-th child, or NoNodeID.
func (t *Tree) Child(id NodeID, i int) NodeID {
	kids := t.Children(id)
	if i < 0 || i >= len(kids) {
		return NoNodeID
	}
	return kids[i]
}

// ChildByRule returns the first child tagged with rule.
func (t *Tree) ChildByRule(id NodeID, rule grammar.Rule) NodeID {
	for _, k := range t.Children(id) {
		if t.nodes[k].Rule == rule {
			return k
		}
	}
	return NoNodeID
}

// Len counts nodes, the sentinel excluded.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Walk visits id and its descendants depth-first in source order.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	t.walk(id, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if t.Node(id) == nil {
		return
	}
	if !fn(id, depth) {
		return
	}
	for _, k := range t.Children(id) {
		t.walk(k, depth+1, fn)
	}
}
