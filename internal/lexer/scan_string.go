package lexer

import (
	"unicode/utf8"

	"zinc/internal/diag"
	"zinc/internal/token"
)

// scanString: "..." with the escapes \" and \\ kept verbatim in Text.
// Any other backslash is kept as well; the code generator decides what it
// means. A newline or EOF before the closing quote is an error, and so are
// bytes that are not valid UTF-8 and a carriage return not followed by '\n':
// the literal is copied into a Rust raw string, which accepts neither.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	bad := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if bad {
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		case b == '\n':
			return lx.unterminatedString(start)
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				if next := lx.cursor.Peek(); next == '"' || next == '\\' {
					lx.cursor.Bump()
				}
			}
		case b == '\r':
			at := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.errLex(diag.LexCarriageReturnInString, lx.cursor.SpanFrom(at), "bare carriage return in string literal")
			bad = true
		case b >= utf8.RuneSelf:
			at := lx.cursor.Mark()
			r, size := lx.peekRune()
			lx.bumpRune()
			if r == utf8.RuneError && size <= 1 {
				lx.errLex(diag.LexInvalidUTF8, lx.cursor.SpanFrom(at), "invalid UTF-8 in string literal")
				bad = true
			}
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminatedString(start)
}

func (lx *Lexer) unterminatedString(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
