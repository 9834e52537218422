package token

var keywords = map[string]Kind{
	"package":  KwPackage,
	"import":   KwImport,
	"default":  KwDefault,
	"some":     KwSome,
	"every":    KwEvery,
	"if":       KwIf,
	"else":     KwElse,
	"contains": KwContains,
	"with":     KwWith,
	"as":       KwAs,
	"in":       KwIn,
	"not":      KwNot,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
}

// LookupKeyword returns the keyword kind for ident, if it is a reserved
// word. Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
