package lexer

import (
	"github.com/HZMonama/regolab/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies reserved words via
// LookupKeyword. Keywords are case-sensitive. Token.Text is exactly the
// source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !isIdentStartByte(lx.cursor.Peek()) {
		return lx.scanOperatorOrPunct()
	}
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
