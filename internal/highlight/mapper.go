package highlight

import (
	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

// Region is one styled source range. Regions are emitted in source order
// and never overlap.
type Region struct {
	Span source.Span
	Tag  Tag
}

// File walks the whole tree and returns styled regions for every leaf and
// every comment. trailing carries the trivia attached to EOF, so a comment
// on the last line still gets styled.
func File(tree *syntax.Tree, trailing []token.Trivia) []Region {
	regions := make([]Region, 0, tree.Len())
	var path []syntax.NodeID

	var walk func(id syntax.NodeID)
	walk = func(id syntax.NodeID) {
		n := tree.Get(id)
		if n == nil {
			return
		}
		path = append(path, id)
		if n.Kind == syntax.NodeTerm {
			for _, tr := range n.Token.Leading {
				if tr.Kind == token.TriviaLineComment {
					regions = append(regions, Region{Span: tr.Span, Tag: TagComment})
				}
			}
			regions = append(regions, Region{Span: n.Span, Tag: ForLeaf(tree, path)})
		}
		for _, c := range n.Children {
			walk(c)
		}
		path = path[:len(path)-1]
	}
	walk(tree.Root())

	for _, tr := range trailing {
		if tr.Kind == token.TriviaLineComment {
			regions = append(regions, Region{Span: tr.Span, Tag: TagComment})
		}
	}
	return regions
}

// ForLeaf classifies one Term leaf given its ancestor path (root first,
// leaf last). Pure; safe to call on every render.
func ForLeaf(tree *syntax.Tree, path []syntax.NodeID) Tag {
	if len(path) == 0 {
		return TagNone
	}
	leaf := tree.Get(path[len(path)-1])
	if leaf == nil || leaf.Kind != syntax.NodeTerm {
		return TagNone
	}
	for _, id := range path[:len(path)-1] {
		if tree.Get(id).Kind == syntax.NodeError {
			return TagError
		}
	}

	switch leaf.Token.Kind {
	case token.StringLit, token.RawStringLit:
		return TagString
	case token.IntLit, token.FloatLit:
		return TagNumber
	case token.KwTrue, token.KwFalse, token.KwNull, token.Underscore:
		return TagConstant
	case token.KwPackage, token.KwImport, token.KwDefault:
		return TagKeyword
	case token.KwIf, token.KwElse, token.KwSome, token.KwEvery,
		token.KwContains, token.KwWith, token.KwAs, token.KwIn, token.KwNot:
		return TagControlKeyword
	case token.Ident:
		return identTag(tree, path)
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Amp, token.Pipe, token.Assign, token.ColonAssign,
		token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.Bang:
		return TagOperator
	case token.Invalid:
		return TagError
	default:
		return TagPunctuation
	}
}

// identTag disambiguates identifiers by position: defining occurrence in a
// rule head, callee of a call, segment of a package or import path, or a
// plain variable reference.
func identTag(tree *syntax.Tree, path []syntax.NodeID) Tag {
	leaf := path[len(path)-1]
	for _, id := range path[:len(path)-1] {
		switch tree.Get(id).Kind {
		case syntax.NodePackage, syntax.NodeImport:
			return TagNamespace
		}
	}
	if len(path) < 2 {
		return TagVariable
	}
	parent := path[len(path)-2]

	switch tree.Get(parent).Kind {
	case syntax.NodeRuleHead:
		return TagFunctionDefinition
	case syntax.NodeCall:
		if tree.Kids(parent)[0] == leaf {
			return TagFunctionCall
		}
	case syntax.NodeRef:
		// the final segment of a reference that is being called
		if len(path) >= 3 {
			grand := path[len(path)-3]
			if tree.Get(grand).Kind == syntax.NodeCall &&
				tree.Kids(grand)[0] == parent &&
				lastIdentChild(tree, parent) == leaf {
				return TagFunctionCall
			}
		}
	}
	return TagVariable
}

func lastIdentChild(tree *syntax.Tree, id syntax.NodeID) syntax.NodeID {
	kids := tree.Kids(id)
	for i := len(kids) - 1; i >= 0; i-- {
		if tree.TermKind(kids[i]) == token.Ident {
			return kids[i]
		}
	}
	return syntax.NilNode
}
