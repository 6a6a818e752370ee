package parser

import (
	"zinc/internal/diag"
	"zinc/internal/grammar"
	"zinc/internal/token"
)

// parseExpr: term (op term)*
// Операторы не имеют приоритетов: дерево хранит плоскую цепочку, свёртка слева
// направо делается при понижении.
func (p *Parser) parseExpr() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	m := p.tb.Mark()
	start := p.lx.Peek().Span
	if !p.parseTerm() {
		return false
	}
	for p.lx.Peek().Kind.IsBinaryOp() {
		p.leaf(grammar.Op)
		if !p.parseTerm() {
			return false
		}
	}
	p.tb.Close(m, grammar.Expr, p.spanFrom(start))
	return true
}

// parseTerm: atom suffix*
func (p *Parser) parseTerm() bool {
	m := p.tb.Mark()
	start := p.lx.Peek().Span
	if !p.parseAtom() {
		return false
	}
	for p.at_or(token.LBracket, token.Dot) {
		if !p.parseSuffix() {
			return false
		}
	}
	p.tb.Close(m, grammar.Term, p.spanFrom(start))
	return true
}

// parseAtom: call | array | group | string | number | identifier
func (p *Parser) parseAtom() bool {
	m := p.tb.Mark()
	start := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.Ident:
		callMark := p.tb.Mark()
		p.leaf(grammar.Identifier)
		if p.at(token.LParen) {
			if !p.parseArgList() {
				return false
			}
			p.tb.Close(callMark, grammar.Call, p.spanFrom(start))
		}
	case token.NumberLit:
		p.leaf(grammar.Number)
	case token.StringLit:
		p.leaf(grammar.String)
	case token.LBracket:
		if !p.parseArray() {
			return false
		}
	case token.LParen:
		if !p.parseGroup() {
			return false
		}
	default:
		return p.err(diag.SynExpectExpression, "expected expression")
	}
	p.tb.Close(m, grammar.Atom, p.spanFrom(start))
	return true
}

// parseArgList: "(" (expr ("," expr)* ","?)? ")"
// Узел создаётся всегда, даже для пустых скобок: по нему отличаем вызов от поля.
func (p *Parser) parseArgList() bool {
	m := p.tb.Mark()
	start := p.advance().Span // (
	if !p.at(token.RParen) {
		if !p.parseExpr() {
			return false
		}
		for p.eat(token.Comma) {
			if p.at(token.RParen) {
				break
			}
			if !p.parseExpr() {
				return false
			}
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "`,` or `)`"); !ok {
		return false
	}
	p.tb.Close(m, grammar.ArgList, p.spanFrom(start))
	return true
}

// parseArray: "[" (expr ("," expr)* ","?)? "]"
func (p *Parser) parseArray() bool {
	m := p.tb.Mark()
	start := p.advance().Span // [
	if !p.at(token.RBracket) {
		if !p.parseExpr() {
			return false
		}
		for p.eat(token.Comma) {
			if p.at(token.RBracket) {
				break
			}
			if !p.parseExpr() {
				return false
			}
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "`,` or `]`"); !ok {
		return false
	}
	p.tb.Close(m, grammar.Array, p.spanFrom(start))
	return true
}

// parseGroup: "(" expr ")"
func (p *Parser) parseGroup() bool {
	m := p.tb.Mark()
	start := p.advance().Span // (
	if !p.parseExpr() {
		return false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "`)`"); !ok {
		return false
	}
	p.tb.Close(m, grammar.Group, p.spanFrom(start))
	return true
}

// parseSuffix: indexing_suffix | member_suffix
func (p *Parser) parseSuffix() bool {
	m := p.tb.Mark()
	start := p.lx.Peek().Span
	var ok bool
	if p.at(token.LBracket) {
		ok = p.parseIndexingSuffix()
	} else {
		ok = p.parseMemberSuffix()
	}
	if !ok {
		return false
	}
	p.tb.Close(m, grammar.Suffix, p.spanFrom(start))
	return true
}

// parseIndexingSuffix: "[" expr "]"
func (p *Parser) parseIndexingSuffix() bool {
	m := p.tb.Mark()
	start := p.advance().Span // [
	if !p.parseExpr() {
		return false
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "`]`"); !ok {
		return false
	}
	p.tb.Close(m, grammar.IndexingSuffix, p.spanFrom(start))
	return true
}

// parseMemberSuffix: "." identifier ("(" arg_list ")")?
func (p *Parser) parseMemberSuffix() bool {
	m := p.tb.Mark()
	start := p.advance().Span // .
	if !p.at(token.Ident) {
		return p.err(diag.SynExpectIdentifier, "expected identifier")
	}
	p.leaf(grammar.Identifier)
	if p.at(token.LParen) && !p.parseArgList() {
		return false
	}
	p.tb.Close(m, grammar.MemberSuffix, p.spanFrom(start))
	return true
}
