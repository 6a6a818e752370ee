// Package token defines lexical token kinds and trivia for the Zinc transpiler.
// Invariants:
//   - Token.Text is a slice of the original source, except for identifiers,
//     which are NFC-normalized.
//   - Token.Span covers the lexeme exactly (Start..End).
//   - Comments and whitespace never appear in the main token stream; they are
//     attached to the next token as leading Trivia.
//   - true/false are identifiers: the transpiler emits them verbatim.
package token
