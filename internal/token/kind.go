package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer emits it for bytes it
	// cannot classify and keeps scanning; tokenization is total.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwSome represents the 'some' keyword.
	KwSome // some
	// KwEvery represents the 'every' keyword.
	KwEvery // every
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwContains represents the 'contains' keyword.
	KwContains // contains
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the quoted string literal token.
	StringLit
	// RawStringLit represents the backtick raw string literal token.
	RawStringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Amp represents the set-intersection operator token.
	Amp // &
	// Pipe represents the set-union / comprehension separator token.
	Pipe // |
	// Assign represents the unification operator token.
	Assign // =
	// ColonAssign represents the assignment operator token.
	ColonAssign // :=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Bang represents the prefix negation operator token.
	Bang // !
	// Colon represents the colon token (object key separator).
	Colon // :
	// Semicolon represents the statement separator token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Underscore represents the wildcard variable token.
	Underscore // _
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	KwPackage:    "KwPackage",
	KwImport:     "KwImport",
	KwDefault:    "KwDefault",
	KwSome:       "KwSome",
	KwEvery:      "KwEvery",
	KwIf:         "KwIf",
	KwElse:       "KwElse",
	KwContains:   "KwContains",
	KwWith:       "KwWith",
	KwAs:         "KwAs",
	KwIn:         "KwIn",
	KwNot:        "KwNot",
	KwTrue:       "KwTrue",
	KwFalse:      "KwFalse",
	KwNull:       "KwNull",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StringLit:    "StringLit",
	RawStringLit: "RawStringLit",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	Amp:          "Amp",
	Pipe:         "Pipe",
	Assign:       "Assign",
	ColonAssign:  "ColonAssign",
	EqEq:         "EqEq",
	BangEq:       "BangEq",
	Lt:           "Lt",
	LtEq:         "LtEq",
	Gt:           "Gt",
	GtEq:         "GtEq",
	Bang:         "Bang",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	Dot:          "Dot",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Underscore:   "Underscore",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
