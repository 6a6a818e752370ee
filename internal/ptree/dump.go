package ptree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree, one node per line:
//
//	program 0..8
//	  statement 0..8
//	    expr_stmt 0..8
func Dump(w io.Writer, t *Tree) error {
	var err error
	t.Walk(t.Root, func(id NodeID, depth int) bool {
		if err != nil {
			return false
		}
		n := t.Node(id)
		line := fmt.Sprintf("%s%s %d..%d", strings.Repeat("  ", depth), n.Rule, n.Span.Start, n.Span.End)
		if n.Text != "" {
			line += fmt.Sprintf(" %q", n.Text)
		}
		_, err = fmt.Fprintln(w, line)
		return true
	})
	return err
}
