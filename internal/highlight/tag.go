// Package highlight assigns presentation tags to syntax tree leaves. The
// mapping is a pure function of the leaf and its ancestor path, so the same
// token kind renders differently when it defines a name, calls one, or
// merely references it.
package highlight

// Tag labels a source region for presentation.
type Tag uint8

const (
	TagNone Tag = iota
	// TagKeyword covers declaration keywords: package, import, default.
	TagKeyword
	// TagControlKeyword covers flow and quantifier keywords: if, else,
	// some, every, not, contains, with, as, in.
	TagControlKeyword
	// TagFunctionDefinition marks the name being defined in a rule head.
	TagFunctionDefinition
	// TagFunctionCall marks the callee of a call expression.
	TagFunctionCall
	// TagNamespace marks identifiers inside package and import paths.
	TagNamespace
	// TagVariable is any other identifier reference.
	TagVariable
	// TagOperator covers binary and unary operator tokens.
	TagOperator
	// TagString covers string and raw string literals.
	TagString
	// TagNumber covers integer and float literals.
	TagNumber
	// TagConstant covers true, false, null, and the `_` wildcard.
	TagConstant
	// TagComment covers line comments, which live in token trivia.
	TagComment
	// TagPunctuation covers delimiters: braces, brackets, commas, colons.
	TagPunctuation
	// TagError marks tokens inside unparsable regions.
	TagError
)

var tagNames = [...]string{
	TagNone:               "none",
	TagKeyword:            "keyword",
	TagControlKeyword:     "controlKeyword",
	TagFunctionDefinition: "function.definition",
	TagFunctionCall:       "function.call",
	TagNamespace:          "namespace",
	TagVariable:           "variable",
	TagOperator:           "operator",
	TagString:             "string",
	TagNumber:             "number",
	TagConstant:           "constant",
	TagComment:            "comment",
	TagPunctuation:        "punctuation",
	TagError:              "error",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Tag(?)"
}
