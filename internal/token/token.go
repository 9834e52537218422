package token

import (
	"github.com/HZMonama/regolab/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, string, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, RawStringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Amp, Pipe, Assign, ColonAssign,
		EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq, Colon, Semicolon, Comma, Dot,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, Underscore:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPackage, KwImport, KwDefault, KwSome, KwEvery, KwIf, KwElse,
		KwContains, KwWith, KwAs, KwIn, KwNot, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
