package parser

import (
	"zinc/internal/diag"
	"zinc/internal/source"
	"zinc/internal/token"
)

// advance - съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// eat consumes the current token when it has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// getDiagnosticSpan - лучший span для диагностики.
// На EOF указываем сразу за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect - ожидаем конкретный токен. Если нет - репортим "expected <what>, found ...".
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, "expected "+what)
	return token.Token{Kind: token.Invalid}, false
}

// err репортит ошибку на текущем токене и помечает разбор проваленным.
// Invalid-токен уже отрепорчен лексером - второй раз не пишем.
func (p *Parser) err(code diag.Code, expected string) bool {
	if p.failed {
		return false
	}
	p.failed = true
	peek := p.lx.Peek()
	if peek.Kind == token.Invalid {
		return false
	}
	p.report(code, diag.SevError, p.getDiagnosticSpan(), expected+", found "+describe(peek))
	return false
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg)
	}
}

// describe names a token the way "found ..." messages print it.
func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "end of input"
	case tok.Kind == token.Ident:
		return "identifier `" + tok.Text + "`"
	case tok.Kind == token.NumberLit:
		return "number `" + tok.Text + "`"
	case tok.Kind == token.StringLit:
		return "string literal"
	case tok.IsKeyword():
		return "keyword `" + tok.Text + "`"
	default:
		return "`" + tok.Text + "`"
	}
}
