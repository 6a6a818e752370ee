package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwFn represents the 'fn' keyword.
	KwFn // fn

	// NumberLit represents an integer or decimal literal, optionally signed.
	NumberLit
	// StringLit represents a double-quoted string literal, quotes included.
	StringLit

	PipeGt    // |>
	Plus      // +
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Assign    // =
	Comma     // ,
	Semicolon // ;
	Dot       // .
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwLet:     "KwLet",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwLoop:    "KwLoop",
	KwBreak:   "KwBreak",
	KwFn:      "KwFn",
	NumberLit: "NumberLit",
	StringLit: "StringLit",
	PipeGt:    "PipeGt",
	Plus:      "Plus",
	EqEq:      "EqEq",
	BangEq:    "BangEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	Assign:    "Assign",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Dot:       "Dot",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
}

var kindLexemes = map[Kind]string{
	KwLet: "let", KwIf: "if", KwElse: "else", KwLoop: "loop", KwBreak: "break", KwFn: "fn",
	PipeGt: "|>", Plus: "+", EqEq: "==", BangEq: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Assign: "=", Comma: ",", Semicolon: ";", Dot: ".",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Lexeme returns the fixed spelling of keywords and punctuation,
// or "" for kinds whose text varies.
func (k Kind) Lexeme() string {
	return kindLexemes[k]
}

// IsBinaryOp reports whether k joins two terms in an expression chain.
func (k Kind) IsBinaryOp() bool {
	switch k {
	case PipeGt, Plus, EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// IsComparison reports whether k is one of the six comparison operators.
func (k Kind) IsComparison() bool {
	switch k {
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}
