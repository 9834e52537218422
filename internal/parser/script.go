package parser

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

// parsePackage parses `package a.b.c`.
func (p *Parser) parsePackage() syntax.NodeID {
	pkg := p.tree.New(syntax.NodePackage, p.peek().Span)
	p.bump(pkg) // `package`
	p.parseRefPath(pkg, diag.SynExpectIdentifier, "expected package name")
	return pkg
}

// parseImport parses `import data.x.y` with an optional `as` alias.
func (p *Parser) parseImport() syntax.NodeID {
	imp := p.tree.New(syntax.NodeImport, p.peek().Span)
	p.bump(imp) // `import`
	p.parseRefPath(imp, diag.SynExpectImportPath, "expected import path")
	if p.at(token.KwAs) {
		p.bump(imp)
		p.expect(imp, token.Ident, diag.SynExpectIdentifier, "expected alias after `as`")
	}
	return imp
}

// parseRefPath parses `ident (. ident)*` under parent as a NodeRef.
func (p *Parser) parseRefPath(parent syntax.NodeID, code diag.Code, msg string) syntax.NodeID {
	ref := p.tree.New(syntax.NodeRef, p.peek().Span)
	p.tree.AddChild(parent, ref)
	if !p.expect(ref, token.Ident, code, msg) {
		return ref
	}
	for p.at(token.Dot) {
		p.bump(ref)
		if !p.expect(ref, token.Ident, diag.SynExpectIdentifier, "expected identifier after `.`") {
			break
		}
	}
	return ref
}
