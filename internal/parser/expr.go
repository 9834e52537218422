package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

// parseExpr is a precedence climber. minPrec is the loosest operator the
// caller still wants combined; `3 + 4 * 5` nests the multiplication under
// the addition's right operand.
func (p *Parser) parseExpr(minPrec int) syntax.NodeID {
	lhs := p.parseUnary()
	for {
		prec, ok := p.binaryPrec(p.peek().Kind)
		if !ok || prec < minPrec {
			return lhs
		}
		bin := p.tree.New(syntax.NodeBinary, p.tree.Get(lhs).Span)
		p.tree.AddChild(bin, lhs)
		p.bump(bin) // operator
		p.tree.AddChild(bin, p.parseExpr(prec+1))
		lhs = bin
	}
}

// parseUnary handles right-associative prefix `-` and `!`.
func (p *Parser) parseUnary() syntax.NodeID {
	if p.at(token.Minus) || p.at(token.Bang) {
		un := p.tree.New(syntax.NodeUnary, p.peek().Span)
		p.bump(un) // operator
		p.tree.AddChild(un, p.parseUnary())
		return un
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix chains `.name`, `[index]`, and `(args)` onto a primary.
func (p *Parser) parsePostfix(lhs syntax.NodeID) syntax.NodeID {
	for {
		switch p.peek().Kind {
		case token.Dot:
			if p.tree.Get(lhs).Kind == syntax.NodeRef {
				p.bump(lhs)
				p.expect(lhs, token.Ident, diag.SynExpectIdentifier, "expected identifier after `.`")
				continue
			}
			ref := p.tree.New(syntax.NodeRef, p.tree.Get(lhs).Span)
			p.tree.AddChild(ref, lhs)
			p.bump(ref)
			p.expect(ref, token.Ident, diag.SynExpectIdentifier, "expected identifier after `.`")
			lhs = ref

		case token.LBracket:
			idx := p.tree.New(syntax.NodeIndex, p.tree.Get(lhs).Span)
			p.tree.AddChild(idx, lhs)
			p.bump(idx) // '['
			if p.at(token.Underscore) {
				p.bump(idx)
			} else {
				saved := p.noPipe
				p.noPipe = 0
				p.tree.AddChild(idx, p.parseExpr(0))
				p.noPipe = saved
			}
			p.expect(idx, token.RBracket, diag.SynUnclosedBracket, "unclosed index expression")
			lhs = idx

		case token.LParen:
			call := p.tree.New(syntax.NodeCall, p.tree.Get(lhs).Span)
			p.tree.AddChild(call, lhs)
			p.bump(call) // '('
			saved := p.noPipe
			p.noPipe = 0
			for !p.at(token.RParen) && !p.at(token.EOF) {
				p.tree.AddChild(call, p.parseExpr(0))
				if p.at(token.Comma) {
					p.bump(call)
					continue
				}
				break
			}
			p.noPipe = saved
			p.expect(call, token.RParen, diag.SynUnclosedParen, "unclosed call")
			lhs = call

		default:
			return lhs
		}
	}
}

// parsePrimary parses a leaf expression: identifier, literal, group, or a
// collection form.
func (p *Parser) parsePrimary() syntax.NodeID {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident, token.Underscore,
		token.IntLit, token.FloatLit, token.StringLit, token.RawStringLit,
		token.KwTrue, token.KwFalse, token.KwNull:
		return p.term()

	case token.LParen:
		grp := p.tree.New(syntax.NodeGroup, tok.Span)
		p.bump(grp) // '('
		saved := p.noPipe
		p.noPipe = 0
		p.tree.AddChild(grp, p.parseExpr(0))
		p.noPipe = saved
		p.expect(grp, token.RParen, diag.SynUnclosedParen, "unclosed group")
		return grp

	case token.LBracket:
		return p.parseBracketed()

	case token.LBrace:
		return p.parseBraced()

	default:
		p.err(diag.SynExpectExpression, "expected expression")
		errNode := p.tree.New(syntax.NodeError, p.diagSpan())
		if !isDelimiter(tok.Kind) {
			p.bump(errNode)
		}
		return errNode
	}
}

// term consumes the current token into a detached Term leaf.
func (p *Parser) term() syntax.NodeID {
	tok := p.peek()
	p.pos++
	p.lastSpan = tok.Span
	return p.tree.NewTerm(tok)
}

// isDelimiter reports tokens a failed primary must leave for its caller.
func isDelimiter(k token.Kind) bool {
	switch k {
	case token.EOF, token.RParen, token.RBrace, token.RBracket, token.Comma, token.Semicolon, token.Colon, token.Pipe:
		return true
	}
	return false
}
