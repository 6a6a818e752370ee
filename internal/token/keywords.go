package token

var keywords = map[string]Kind{
	"let":   KwLet,
	"if":    KwIf,
	"else":  KwElse,
	"loop":  KwLoop,
	"break": KwBreak,
	"fn":    KwFn,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords lists the reserved words in declaration order.
func Keywords() []string {
	return []string{"let", "if", "else", "loop", "break", "fn"}
}
