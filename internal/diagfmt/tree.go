package diagfmt

import (
	"io"
	"strings"

	"zinc/internal/grammar"
	"zinc/internal/ptree"
)

// TreeNodeJSON is a parse tree node; leaves carry Text, inner nodes Children.
type TreeNodeJSON struct {
	Rule     string         `json:"rule"`
	Start    uint32         `json:"start"`
	End      uint32         `json:"end"`
	Text     string         `json:"text,omitempty"`
	Children []TreeNodeJSON `json:"children,omitempty"`
}

// FormatTreePretty writes the indented outline of ptree.Dump.
func FormatTreePretty(w io.Writer, t *ptree.Tree) error {
	return ptree.Dump(w, t)
}

// FormatTreeJSON writes the tree as nested JSON objects.
func FormatTreeJSON(w io.Writer, t *ptree.Tree) error {
	return encode(w, treeNode(t, t.Root), true)
}

func treeNode(t *ptree.Tree, id ptree.NodeID) TreeNodeJSON {
	n := t.Node(id)
	out := TreeNodeJSON{
		Rule:  n.Rule.String(),
		Start: n.Span.Start,
		End:   n.Span.End,
		Text:  n.Text,
	}
	for _, k := range t.Children(id) {
		out.Children = append(out.Children, treeNode(t, k))
	}
	return out
}

// FormatGrammar prints the production table, one rule per line.
func FormatGrammar(w io.Writer) error {
	width := 0
	prods := grammar.Productions()
	for _, p := range prods {
		width = max(width, len(p.Rule.String()))
	}
	for _, p := range prods {
		name := p.Rule.String()
		if _, err := io.WriteString(w, name+strings.Repeat(" ", width-len(name))+" = "+p.Body+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n"+grammar.Trivia+"\n")
	return err
}
