package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// bump consumes the current token and attaches it under parent as a Term
// leaf. Every significant token ends up in the tree exactly once; all
// consumption goes through here so coverage holds.
func (p *Parser) bump(parent syntax.NodeID) syntax.NodeID {
	tok := p.peek()
	if tok.Kind == token.EOF {
		return syntax.NilNode
	}
	p.pos++
	p.lastSpan = tok.Span
	return p.tree.AddToken(parent, tok)
}

// expect consumes a token of the wanted kind under parent, or reports and
// returns false without consuming.
func (p *Parser) expect(parent syntax.NodeID, k token.Kind, code diag.Code, msg string) bool {
	if p.at(k) {
		p.bump(parent)
		return true
	}
	p.report(code, diag.SevError, p.diagSpan(), msg)
	return false
}

// diagSpan returns the best span for a diagnostic. At EOF the caret sits
// just past the last consumed token instead of on a zero-width EOF span.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) warn(code diag.Code, msg string) {
	p.report(code, diag.SevWarning, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		if p.opts.Enough() {
			return
		}
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

// errorNode consumes the current token into a fresh NodeError under parent.
// Guarantees progress at any malformed token.
func (p *Parser) errorNode(parent syntax.NodeID) syntax.NodeID {
	errNode := p.tree.New(syntax.NodeError, p.peek().Span)
	p.tree.AddChild(parent, errNode)
	p.bump(errNode)
	return errNode
}
