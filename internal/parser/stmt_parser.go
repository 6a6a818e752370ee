package parser

import (
	"zinc/internal/diag"
	"zinc/internal/grammar"
	"zinc/internal/token"
)

// parseStatement: (let_stmt | if_stmt | loop_stmt | break_stmt | fn_def | expr_stmt) ";"?
func (p *Parser) parseStatement() bool {
	m := p.tb.Mark()
	start := p.lx.Peek().Span

	var ok bool
	switch k := p.lx.Peek().Kind; {
	case k == token.KwLet:
		ok = p.parseLetStmt()
	case k == token.KwIf:
		ok = p.parseIfStmt()
	case k == token.KwLoop:
		ok = p.parseLoopStmt()
	case k == token.KwBreak:
		ok = p.parseBreakStmt()
	case k == token.KwFn:
		ok = p.parseFnDef()
	case startsExpr(k):
		ok = p.parseExprStmt()
	default:
		return p.err(diag.SynUnexpectedToken, "expected statement")
	}
	if !ok {
		return false
	}
	p.eat(token.Semicolon)
	p.tb.Close(m, grammar.Statement, p.spanFrom(start))
	return true
}

// parseLetStmt: "let" identifier "=" expr
func (p *Parser) parseLetStmt() bool {
	m := p.tb.Mark()
	start := p.advance().Span // let

	if !p.at(token.Ident) {
		return p.err(diag.SynExpectIdentifier, "expected identifier")
	}
	p.leaf(grammar.Identifier)
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "`=`"); !ok {
		return false
	}
	if !p.parseExpr() {
		return false
	}
	p.tb.Close(m, grammar.LetStmt, p.spanFrom(start))
	return true
}

// parseIfStmt: "if" expr block ("else" (block | if_stmt))?
func (p *Parser) parseIfStmt() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	m := p.tb.Mark()
	start := p.advance().Span // if

	if !p.parseExpr() || !p.parseBlock() {
		return false
	}
	if p.eat(token.KwElse) {
		var ok bool
		if p.at(token.KwIf) {
			ok = p.parseIfStmt()
		} else {
			ok = p.parseBlock()
		}
		if !ok {
			return false
		}
	}
	p.tb.Close(m, grammar.IfStmt, p.spanFrom(start))
	return true
}

// parseLoopStmt: "loop" block
func (p *Parser) parseLoopStmt() bool {
	m := p.tb.Mark()
	start := p.advance().Span
	if !p.parseBlock() {
		return false
	}
	p.tb.Close(m, grammar.LoopStmt, p.spanFrom(start))
	return true
}

// parseBreakStmt: "break"
func (p *Parser) parseBreakStmt() bool {
	m := p.tb.Mark()
	start := p.advance().Span
	p.tb.Close(m, grammar.BreakStmt, start)
	return true
}

// parseFnDef: "fn" identifier "(" param_list? ")" block
func (p *Parser) parseFnDef() bool {
	m := p.tb.Mark()
	start := p.advance().Span // fn

	if !p.at(token.Ident) {
		return p.err(diag.SynExpectIdentifier, "expected identifier")
	}
	p.leaf(grammar.Identifier)
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "`(`"); !ok {
		return false
	}
	if p.at(token.Ident) && !p.parseParamList() {
		return false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "`)`"); !ok {
		return false
	}
	if !p.parseBlock() {
		return false
	}
	p.tb.Close(m, grammar.FnDef, p.spanFrom(start))
	return true
}

// parseParamList: identifier ("," identifier)* ","?
func (p *Parser) parseParamList() bool {
	m := p.tb.Mark()
	start := p.lx.Peek().Span
	p.leaf(grammar.Identifier)
	for p.eat(token.Comma) {
		if p.at(token.RParen) {
			break
		}
		if !p.at(token.Ident) {
			return p.err(diag.SynExpectIdentifier, "expected identifier")
		}
		p.leaf(grammar.Identifier)
	}
	p.tb.Close(m, grammar.ParamList, p.spanFrom(start))
	return true
}

// parseBlock: "{" statement* "}"
func (p *Parser) parseBlock() bool {
	if !p.enter() {
		return false
	}
	defer p.leave()

	m := p.tb.Mark()
	start := p.lx.Peek().Span
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "`{`"); !ok {
		return false
	}
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return p.err(diag.SynUnclosedBrace, "expected statement or `}`")
		}
		if !p.parseStatement() {
			return false
		}
	}
	p.advance() // }
	p.tb.Close(m, grammar.Block, p.spanFrom(start))
	return true
}

// parseExprStmt: expr
func (p *Parser) parseExprStmt() bool {
	m := p.tb.Mark()
	start := p.lx.Peek().Span
	if !p.parseExpr() {
		return false
	}
	p.tb.Close(m, grammar.ExprStmt, p.spanFrom(start))
	return true
}
