package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

// parseBracedBody parses `{ stmt* }`.
func (p *Parser) parseBracedBody() syntax.NodeID {
	body := p.tree.New(syntax.NodeBody, p.peek().Span)
	p.bump(body) // '{'
	p.parseStmtsInto(body, token.RBrace)
	p.expect(body, token.RBrace, diag.SynUnclosedBrace, "unclosed rule body")
	return body
}

// parseStmtsInto fills body with statements until the closer or EOF.
// Semicolons between statements are consumed; newlines separate on their own.
func (p *Parser) parseStmtsInto(body syntax.NodeID, closer token.Kind) {
	for !p.at(closer) && !p.at(token.EOF) {
		before := p.pos
		p.tree.AddChild(body, p.parseStmt())
		if p.at(token.Semicolon) {
			p.bump(body)
		}
		if p.pos == before {
			// parseStmt made no progress; swallow one token and go on
			p.errorNode(body)
		}
	}
}

// parseStmt parses one statement: a `some` declaration, an `every`
// quantifier, a negation, or an expression with optional `with` modifiers.
func (p *Parser) parseStmt() syntax.NodeID {
	stmt := p.tree.New(syntax.NodeStmt, p.peek().Span)
	switch p.peek().Kind {
	case token.KwSome:
		p.tree.AddChild(stmt, p.parseSome())
	case token.KwEvery:
		p.tree.AddChild(stmt, p.parseEvery())
	case token.KwNot:
		not := p.tree.New(syntax.NodeNot, p.peek().Span)
		p.tree.AddChild(stmt, not)
		p.bump(not) // `not`
		p.tree.AddChild(not, p.parseExpr(0))
	default:
		p.tree.AddChild(stmt, p.parseExpr(0))
	}
	for p.at(token.KwWith) {
		p.tree.AddChild(stmt, p.parseWith())
	}
	return stmt
}

// parseSome parses `some x, y` or `some x[, y] in xs`.
func (p *Parser) parseSome() syntax.NodeID {
	some := p.tree.New(syntax.NodeSome, p.peek().Span)
	p.bump(some) // `some`
	p.expect(some, token.Ident, diag.SynExpectIdentifier, "expected variable after `some`")
	for p.at(token.Comma) {
		p.bump(some)
		p.expect(some, token.Ident, diag.SynExpectIdentifier, "expected variable after `,`")
	}
	if p.at(token.KwIn) {
		p.bump(some)
		p.tree.AddChild(some, p.parseExpr(0))
	}
	return some
}

// parseEvery parses `every x[, y] in xs { body }`.
func (p *Parser) parseEvery() syntax.NodeID {
	every := p.tree.New(syntax.NodeEvery, p.peek().Span)
	p.bump(every) // `every`
	p.expect(every, token.Ident, diag.SynExpectIdentifier, "expected variable after `every`")
	if p.at(token.Comma) {
		p.bump(every)
		p.expect(every, token.Ident, diag.SynExpectIdentifier, "expected variable after `,`")
	}
	if p.expect(every, token.KwIn, diag.SynUnexpectedToken, "expected `in` in `every` quantifier") {
		// domain expression; `in` here is the quantifier separator, and any
		// further `in` inside the expression is the membership operator
		p.tree.AddChild(every, p.parseExpr(precSetLogic+1))
	}
	if p.at(token.LBrace) {
		p.tree.AddChild(every, p.parseBracedBody())
	} else {
		p.err(diag.SynExpectRuleBody, "expected `{` body after `every` domain")
	}
	return every
}

// parseWith parses `with <ref> as <expr>`.
func (p *Parser) parseWith() syntax.NodeID {
	with := p.tree.New(syntax.NodeWith, p.peek().Span)
	p.bump(with) // `with`
	p.tree.AddChild(with, p.parseExpr(precAssign+1))
	p.expect(with, token.KwAs, diag.SynUnexpectedToken, "expected `as` in `with` modifier")
	p.tree.AddChild(with, p.parseExpr(precAssign+1))
	return with
}
