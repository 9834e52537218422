package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

// parseRule parses one rule definition. Rules sharing a head name stay
// separate siblings under the script; merging is the evaluator's business.
//
// Shapes accepted after the head:
//
//	contains <expr> [if <body|expr>]
//	:= / = <expr> [if <body|expr>] [{ body }]
//	if <body|expr>
//	{ body }
func (p *Parser) parseRule() (syntax.NodeID, bool) {
	rule := p.tree.New(syntax.NodeRule, p.peek().Span)

	if p.at(token.KwDefault) {
		p.bump(rule)
	}

	head, ok := p.parseRuleHead(rule)
	if !ok {
		return rule, false
	}
	_ = head

	switch p.peek().Kind {
	case token.KwContains:
		p.bump(rule)
		p.tree.AddChild(rule, p.parseExpr(0))
		p.parseOptionalGuard(rule)
		p.parseElseChain(rule)
		return rule, true

	case token.ColonAssign, token.Assign:
		p.bump(rule)
		p.tree.AddChild(rule, p.parseExpr(0))
		p.parseOptionalGuard(rule)
		if p.at(token.LBrace) {
			p.tree.AddChild(rule, p.parseBracedBody())
		}
		p.parseElseChain(rule)
		return rule, true

	case token.KwIf:
		p.bump(rule)
		p.tree.AddChild(rule, p.parseGuardTail())
		p.parseElseChain(rule)
		return rule, true

	case token.LBrace:
		p.tree.AddChild(rule, p.parseBracedBody())
		p.parseElseChain(rule)
		return rule, true

	default:
		p.err(diag.SynExpectRuleBody, "expected rule body, `:=`, `if`, or `contains` after rule head")
		return rule, false
	}
}

// parseRuleHead parses the rule name (possibly dotted), an optional
// argument list, and an optional partial-object key.
func (p *Parser) parseRuleHead(rule syntax.NodeID) (syntax.NodeID, bool) {
	head := p.tree.New(syntax.NodeRuleHead, p.peek().Span)
	p.tree.AddChild(rule, head)

	if !p.expect(head, token.Ident, diag.SynExpectIdentifier, "expected rule name") {
		return head, false
	}
	for p.at(token.Dot) {
		p.bump(head)
		if !p.expect(head, token.Ident, diag.SynExpectIdentifier, "expected identifier after `.`") {
			return head, false
		}
	}

	if p.at(token.LParen) {
		args := p.tree.New(syntax.NodeRuleArgs, p.peek().Span)
		p.tree.AddChild(head, args)
		p.bump(args) // '('
		for !p.at(token.RParen) && !p.at(token.EOF) {
			p.tree.AddChild(args, p.parseExpr(0))
			if p.at(token.Comma) {
				p.bump(args)
				continue
			}
			break
		}
		if !p.expect(args, token.RParen, diag.SynUnclosedParen, "unclosed argument list") {
			return head, false
		}
	}

	// partial object rule key, `a[k] := v`
	if p.at(token.LBracket) {
		idx := p.tree.New(syntax.NodeIndex, p.peek().Span)
		p.tree.AddChild(head, idx)
		p.bump(idx) // '['
		if p.at(token.Underscore) {
			p.bump(idx)
		} else {
			p.tree.AddChild(idx, p.parseExpr(0))
		}
		if !p.expect(idx, token.RBracket, diag.SynUnclosedBracket, "unclosed `[` in rule head") {
			return head, false
		}
	}
	return head, true
}

// parseOptionalGuard handles a trailing `if <body|expr>` after a rule value.
func (p *Parser) parseOptionalGuard(rule syntax.NodeID) {
	if !p.at(token.KwIf) {
		return
	}
	p.bump(rule)
	p.tree.AddChild(rule, p.parseGuardTail())
}

// parseGuardTail parses what follows `if`: a braced body or a bare
// statement wrapped in a single-statement body.
func (p *Parser) parseGuardTail() syntax.NodeID {
	if p.at(token.LBrace) {
		return p.parseBracedBody()
	}
	body := p.tree.New(syntax.NodeBody, p.peek().Span)
	p.tree.AddChild(body, p.parseStmt())
	return body
}

// parseElseChain parses zero or more `else [:= expr] [if] <body|expr>`
// branches.
func (p *Parser) parseElseChain(rule syntax.NodeID) {
	for p.at(token.KwElse) {
		els := p.tree.New(syntax.NodeElse, p.peek().Span)
		p.tree.AddChild(rule, els)
		p.bump(els) // `else`
		if p.at(token.ColonAssign) || p.at(token.Assign) {
			p.bump(els)
			p.tree.AddChild(els, p.parseExpr(0))
		}
		if p.at(token.KwIf) {
			p.bump(els)
			p.tree.AddChild(els, p.parseGuardTail())
		} else if p.at(token.LBrace) {
			p.tree.AddChild(els, p.parseBracedBody())
		}
	}
}
