package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

type braceClass uint8

const (
	braceObject braceClass = iota
	braceSet
	braceBody
	braceSetCompr
	braceObjectCompr
)

// classifyBrace decides what an expression-position `{` opens by scanning
// ahead to its matching `}`. Depth counts every unresolved `{ [ (` opener,
// so markers inside nested structures never leak out: `{ {"a":1} }` is a
// Set even though it contains a colon.
//
// Priority: a depth-zero `|` makes a comprehension (object flavor when a
// depth-zero `:` precedes the pipe); then a depth-zero `:` makes an Object;
// then any depth-zero statement marker makes a Body; otherwise Set. Empty
// braces are an empty Object; the empty set is only spellable as `set()`.
func (p *Parser) classifyBrace() braceClass {
	if p.peekAt(1).Kind == token.RBrace {
		return braceObject
	}

	depth := 0
	sawColon := false
	sawStmt := false
	pipe := false
	colonBeforePipe := false

scan:
	for i := p.pos + 1; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.EOF:
			break scan
		case token.LBrace, token.LBracket, token.LParen:
			depth++
			continue
		case token.RBracket, token.RParen:
			if depth > 0 {
				depth--
			}
			continue
		case token.RBrace:
			if depth == 0 {
				break scan
			}
			depth--
			continue
		}
		if depth != 0 {
			continue
		}
		switch p.toks[i].Kind {
		case token.Pipe:
			if !pipe {
				pipe = true
				colonBeforePipe = sawColon
			}
		case token.Colon:
			sawColon = true
		case token.KwSome, token.KwEvery, token.KwNot, token.KwWith,
			token.ColonAssign, token.Assign, token.Semicolon:
			sawStmt = true
		}
	}

	switch {
	case pipe && colonBeforePipe:
		return braceObjectCompr
	case pipe:
		return braceSetCompr
	case sawColon:
		return braceObject
	case sawStmt:
		return braceBody
	default:
		return braceSet
	}
}

// parseBraced dispatches on classifyBrace. The cursor sits on `{`.
func (p *Parser) parseBraced() syntax.NodeID {
	switch p.classifyBrace() {
	case braceObject:
		return p.parseObject()
	case braceSet:
		return p.parseSet()
	case braceBody:
		return p.parseBracedBody()
	case braceSetCompr:
		return p.parseSetCompr()
	default:
		return p.parseObjectCompr()
	}
}

// parseObject parses `{ k: v, ... }`.
func (p *Parser) parseObject() syntax.NodeID {
	obj := p.tree.New(syntax.NodeObject, p.peek().Span)
	p.bump(obj) // '{'
	saved := p.noPipe
	p.noPipe = 0
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		entry := p.tree.New(syntax.NodeEntry, p.peek().Span)
		p.tree.AddChild(obj, entry)
		p.tree.AddChild(entry, p.parseExpr(0))
		if p.expect(entry, token.Colon, diag.SynExpectColon, "expected `:` in object entry") {
			p.tree.AddChild(entry, p.parseExpr(0))
		}
		if p.at(token.Comma) {
			p.bump(obj)
			continue
		}
		break
	}
	p.noPipe = saved
	p.expect(obj, token.RBrace, diag.SynUnclosedBrace, "unclosed object")
	return obj
}

// parseSet parses `{ a, b, ... }`.
func (p *Parser) parseSet() syntax.NodeID {
	set := p.tree.New(syntax.NodeSet, p.peek().Span)
	p.bump(set) // '{'
	saved := p.noPipe
	p.noPipe = 0
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.tree.AddChild(set, p.parseExpr(0))
		if p.at(token.Comma) {
			p.bump(set)
			continue
		}
		break
	}
	p.noPipe = saved
	p.expect(set, token.RBrace, diag.SynUnclosedBrace, "unclosed set")
	return set
}

// parseSetCompr parses `{ head | body }`.
func (p *Parser) parseSetCompr() syntax.NodeID {
	compr := p.tree.New(syntax.NodeSetCompr, p.peek().Span)
	p.bump(compr) // '{'
	p.noPipe++
	p.tree.AddChild(compr, p.parseExpr(0))
	p.noPipe--
	p.expect(compr, token.Pipe, diag.SynUnexpectedToken, "expected `|` in comprehension")
	p.tree.AddChild(compr, p.parseComprBody(token.RBrace))
	p.expect(compr, token.RBrace, diag.SynUnclosedBrace, "unclosed set comprehension")
	return compr
}

// parseObjectCompr parses `{ key: value | body }`.
func (p *Parser) parseObjectCompr() syntax.NodeID {
	compr := p.tree.New(syntax.NodeObjectCompr, p.peek().Span)
	p.bump(compr) // '{'
	p.noPipe++
	entry := p.tree.New(syntax.NodeEntry, p.peek().Span)
	p.tree.AddChild(compr, entry)
	p.tree.AddChild(entry, p.parseExpr(0))
	if p.expect(entry, token.Colon, diag.SynExpectColon, "expected `:` in object comprehension head") {
		p.tree.AddChild(entry, p.parseExpr(0))
	}
	p.noPipe--
	p.expect(compr, token.Pipe, diag.SynUnexpectedToken, "expected `|` in comprehension")
	p.tree.AddChild(compr, p.parseComprBody(token.RBrace))
	p.expect(compr, token.RBrace, diag.SynUnclosedBrace, "unclosed object comprehension")
	return compr
}

// parseBracketed parses `[ ... ]`: an array literal, or an array
// comprehension when a depth-zero `|` appears before the matching `]`.
func (p *Parser) parseBracketed() syntax.NodeID {
	if p.bracketHasPipe() {
		compr := p.tree.New(syntax.NodeArrayCompr, p.peek().Span)
		p.bump(compr) // '['
		p.noPipe++
		p.tree.AddChild(compr, p.parseExpr(0))
		p.noPipe--
		p.expect(compr, token.Pipe, diag.SynUnexpectedToken, "expected `|` in comprehension")
		p.tree.AddChild(compr, p.parseComprBody(token.RBracket))
		p.expect(compr, token.RBracket, diag.SynUnclosedBracket, "unclosed array comprehension")
		return compr
	}

	arr := p.tree.New(syntax.NodeArray, p.peek().Span)
	p.bump(arr) // '['
	saved := p.noPipe
	p.noPipe = 0
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		p.tree.AddChild(arr, p.parseExpr(0))
		if p.at(token.Comma) {
			p.bump(arr)
			continue
		}
		break
	}
	p.noPipe = saved
	p.expect(arr, token.RBracket, diag.SynUnclosedBracket, "unclosed array")
	return arr
}

// bracketHasPipe scans for a depth-zero `|` before the matching `]`.
func (p *Parser) bracketHasPipe() bool {
	depth := 0
	for i := p.pos + 1; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.EOF:
			return false
		case token.LBrace, token.LBracket, token.LParen:
			depth++
		case token.RBrace, token.RParen:
			if depth > 0 {
				depth--
			}
		case token.RBracket:
			if depth == 0 {
				return false
			}
			depth--
		case token.Pipe:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// parseComprBody parses the generating statements of a comprehension up to
// the closing delimiter.
func (p *Parser) parseComprBody(closer token.Kind) syntax.NodeID {
	body := p.tree.New(syntax.NodeBody, p.peek().Span)
	if p.at(closer) {
		p.warn(diag.SynEmptyComprehension, "comprehension has an empty body")
		return body
	}
	p.parseStmtsInto(body, closer)
	return body
}
