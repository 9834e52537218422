package syntax

// NodeKind discriminates concrete syntax tree nodes. The tree is lossless
// over significant tokens: every token the lexer produced for the region a
// node spans is reachable as a Term leaf under that node.
type NodeKind uint8

const (
	// NodeInvalid is the zero kind; a real tree never contains it.
	NodeInvalid NodeKind = iota
	// NodeScript is the root: package clause, imports, rules.
	NodeScript
	// NodePackage is a `package a.b.c` clause.
	NodePackage
	// NodeImport is an `import data.x as y` clause.
	NodeImport
	// NodeRule is one rule definition, head plus optional bodies.
	NodeRule
	// NodeRuleHead is the rule name, arguments, value, or `contains` term.
	NodeRuleHead
	// NodeRuleArgs is the parenthesized parameter list of a function rule.
	NodeRuleArgs
	// NodeElse is an `else` branch with its optional value and body.
	NodeElse
	// NodeBody is a braced sequence of statements.
	NodeBody
	// NodeStmt is one statement inside a body.
	NodeStmt
	// NodeSome is a `some x, y` or `some x in xs` declaration.
	NodeSome
	// NodeEvery is an `every x in xs { ... }` quantifier.
	NodeEvery
	// NodeWith is a `with input.x as v` modifier attached to a statement.
	NodeWith
	// NodeNot negates the statement it wraps.
	NodeNot
	// NodeBinary is an infix expression; the operator is a Term child.
	NodeBinary
	// NodeUnary is a prefix expression, `-x`.
	NodeUnary
	// NodeCall is `f(a, b)`; the callee reference is the first child.
	NodeCall
	// NodeIndex is `x[k]` including the `input[_]` wildcard form.
	NodeIndex
	// NodeRef is a dotted reference path, `input.user.name`.
	NodeRef
	// NodeGroup is a parenthesized expression.
	NodeGroup
	// NodeObject is `{k: v, ...}`.
	NodeObject
	// NodeEntry is one `k: v` pair inside an object.
	NodeEntry
	// NodeSet is `{a, b}`. `set()` is the only empty set spelling.
	NodeSet
	// NodeArray is `[a, b]`.
	NodeArray
	// NodeArrayCompr is `[head | body]`.
	NodeArrayCompr
	// NodeSetCompr is `{head | body}`.
	NodeSetCompr
	// NodeObjectCompr is `{k: v | body}`.
	NodeObjectCompr
	// NodeTerm is a leaf holding exactly one token.
	NodeTerm
	// NodeError covers a region the parser could not interpret. Its Term
	// children keep the skipped tokens addressable.
	NodeError
)

var nodeKindNames = [...]string{
	NodeInvalid:     "Invalid",
	NodeScript:      "Script",
	NodePackage:     "Package",
	NodeImport:      "Import",
	NodeRule:        "Rule",
	NodeRuleHead:    "RuleHead",
	NodeRuleArgs:    "RuleArgs",
	NodeElse:        "Else",
	NodeBody:        "Body",
	NodeStmt:        "Stmt",
	NodeSome:        "Some",
	NodeEvery:       "Every",
	NodeWith:        "With",
	NodeNot:         "Not",
	NodeBinary:      "Binary",
	NodeUnary:       "Unary",
	NodeCall:        "Call",
	NodeIndex:       "Index",
	NodeRef:         "Ref",
	NodeGroup:       "Group",
	NodeObject:      "Object",
	NodeEntry:       "Entry",
	NodeSet:         "Set",
	NodeArray:       "Array",
	NodeArrayCompr:  "ArrayCompr",
	NodeSetCompr:    "SetCompr",
	NodeObjectCompr: "ObjectCompr",
	NodeTerm:        "Term",
	NodeError:       "Error",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// IsCollection reports whether the node is a container literal.
func (k NodeKind) IsCollection() bool {
	switch k {
	case NodeObject, NodeSet, NodeArray:
		return true
	}
	return false
}

// IsComprehension reports whether the node is a comprehension form.
func (k NodeKind) IsComprehension() bool {
	switch k {
	case NodeArrayCompr, NodeSetCompr, NodeObjectCompr:
		return true
	}
	return false
}
