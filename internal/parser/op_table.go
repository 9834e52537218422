package parser

import (
	"github.com/HZMonama/regolab/internal/token"
)

// Binding tightness, loosest to tightest. All binary levels are
// left-associative; unary prefix binds tighter than everything here.
const (
	precAssign         = 1 // := =
	precSetLogic       = 2 // & |
	precComparison     = 3 // == != < <= > >= in
	precAdditive       = 4 // + -
	precMultiplicative = 5 // * / %
)

// binaryPrec returns the precedence of a binary operator token, or ok=false
// for non-operators. '|' is withheld while a comprehension head is open;
// there the pipe terminates the head instead of combining expressions.
func (p *Parser) binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.ColonAssign, token.Assign:
		return precAssign, true
	case token.Amp:
		return precSetLogic, true
	case token.Pipe:
		if p.noPipe > 0 {
			return 0, false
		}
		return precSetLogic, true
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwIn:
		return precComparison, true
	case token.Plus, token.Minus:
		return precAdditive, true
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, true
	default:
		return 0, false
	}
}
