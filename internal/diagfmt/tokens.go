package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"zinc/internal/source"
	"zinc/internal/token"
)

type TokenOutput struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Start   uint32   `json:"start"`
	End     uint32   `json:"end"`
	Leading []string `json:"leading,omitempty"`
}

// FormatTokensPretty prints one token per line with its position and leading trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&sb, " %q", tok.Text)
		}
		fmt.Fprintf(&sb, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if len(tok.Leading) > 0 {
			kinds := make([]string, 0, len(tok.Leading))
			for _, tr := range tok.Leading {
				kinds = append(kinds, tr.Kind.String())
			}
			sb.WriteString(" (leading: " + strings.Join(kinds, ", ") + ")")
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token list as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		for _, tr := range tok.Leading {
			o.Leading = append(o.Leading, tr.Kind.String())
		}
		out = append(out, o)
	}
	return encode(w, out, true)
}
