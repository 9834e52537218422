// Package parser builds a concrete syntax tree from the token stream.
//
// The parser is tolerant: malformed regions become NodeError subtrees and
// parsing continues, so highlighting and completion keep working around a
// syntax error. A full reparse per edit is the model; the tree is rebuilt
// from scratch every time.
package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/lexer"
	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree   *syntax.Tree
	Script syntax.NodeID
	// EOF is the final token; its leading trivia holds trailing comments.
	EOF token.Token
	Bag *diag.Bag
}

// Parser holds per-file parse state. The whole token stream is lexed up
// front so brace classification can look ahead arbitrarily far.
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	tree     *syntax.Tree
	opts     Options
	lastSpan source.Span

	// noPipe suppresses '|' as a binary operator while a comprehension
	// head is being parsed; the pipe belongs to the comprehension.
	noPipe int
}

// ParseFile lexes and parses one file.
func ParseFile(file *source.File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	toks := make([]token.Token, 0, len(file.Content)/4+8)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return ParseTokens(file, toks, opts)
}

// ParseTokens parses an already-lexed stream. The stream must end with EOF.
func ParseTokens(file *source.File, toks []token.Token, opts Options) Result {
	p := Parser{
		file: file,
		toks: toks,
		tree: syntax.NewTree(uint(len(toks)) * 2),
		opts: opts,
	}
	script := p.parseScript()
	p.tree.SetRoot(script)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Tree: p.tree, Script: script, EOF: toks[len(toks)-1], Bag: bag}
}

// parseScript is the top-level loop: package clause, imports, rules.
func (p *Parser) parseScript() syntax.NodeID {
	script := p.tree.New(syntax.NodeScript, p.peek().Span)

	if p.at(token.KwPackage) {
		p.tree.AddChild(script, p.parsePackage())
	} else if !p.at(token.EOF) {
		p.warn(diag.SynExpectPackage, "script should start with a package clause")
	}

	for p.at(token.KwImport) {
		p.tree.AddChild(script, p.parseImport())
	}

	for !p.at(token.EOF) {
		rule, ok := p.parseRule()
		if rule != syntax.NilNode {
			p.tree.AddChild(script, rule)
		}
		if !ok {
			p.resyncTop(script)
		}
	}
	return script
}

// resyncTop skips tokens into an error node until something that can start
// a top-level item appears on a fresh line.
func (p *Parser) resyncTop(script syntax.NodeID) {
	if p.at(token.EOF) {
		return
	}
	errNode := p.tree.New(syntax.NodeError, p.peek().Span)
	p.tree.AddChild(script, errNode)
	p.bump(errNode)
	for !p.at(token.EOF) {
		tok := p.peek()
		if startsLine(tok) && canStartItem(tok.Kind) {
			return
		}
		p.bump(errNode)
	}
}

func startsLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

func canStartItem(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwDefault, token.KwImport, token.KwPackage:
		return true
	}
	return false
}
