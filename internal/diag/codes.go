package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectPackage      Code = 2005
	SynExpectRuleBody     Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBrace      Code = 2008
	SynUnclosedBracket    Code = 2009
	SynExpectColon        Code = 2010
	SynExpectImportPath   Code = 2011
	SynEmptyComprehension Code = 2012

	// External linter findings mapped onto the buffer
	LintFinding    Code = 4000
	LintParseError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown diagnostic",
	LexInfo:               "lexical note",
	LexUnknownChar:        "unrecognized character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",
	SynInfo:               "syntax note",
	SynUnexpectedToken:    "unexpected token",
	SynUnexpectedTopLevel: "unexpected top-level construct",
	SynExpectIdentifier:   "expected identifier",
	SynExpectExpression:   "expected expression",
	SynExpectPackage:      "expected package declaration",
	SynExpectRuleBody:     "expected rule body",
	SynUnclosedParen:      "unclosed parenthesis",
	SynUnclosedBrace:      "unclosed brace",
	SynUnclosedBracket:    "unclosed bracket",
	SynExpectColon:        "expected ':' in object literal",
	SynExpectImportPath:   "expected import path",
	SynEmptyComprehension: "comprehension is missing a body",
	LintFinding:           "linter finding",
	LintParseError:        "linter could not parse the policy",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LINT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
