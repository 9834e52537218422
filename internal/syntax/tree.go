package syntax

import (
	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/token"
)

// NodeID indexes a node inside its Tree. IDs are 1-based; 0 is NilNode.
type NodeID uint32

// NilNode is the absent node.
const NilNode NodeID = 0

// Node is one concrete syntax tree node. Term leaves carry their token;
// interior nodes carry children in source order. A node's span covers
// every child span.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Token    token.Token
	Children []NodeID
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree owns the node arena for one parsed script.
type Tree struct {
	nodes []Node
	root  NodeID
}

func NewTree(capHint uint) *Tree {
	return &Tree{nodes: make([]Node, 0, capHint)}
}

// New allocates a node and returns its ID.
func (t *Tree) New(kind NodeKind, span source.Span) NodeID {
	t.nodes = append(t.nodes, Node{Kind: kind, Span: span})
	return NodeID(len(t.nodes))
}

// NewTerm allocates a leaf for a single token.
func (t *Tree) NewTerm(tok token.Token) NodeID {
	t.nodes = append(t.nodes, Node{Kind: NodeTerm, Span: tok.Span, Token: tok})
	return NodeID(len(t.nodes))
}

// Get returns the node for id, or nil for NilNode.
func (t *Tree) Get(id NodeID) *Node {
	if id == NilNode || int(id) > len(t.nodes) {
		return nil
	}
	return &t.nodes[id-1]
}

// AddChild appends child under parent and widens the parent span to cover it.
func (t *Tree) AddChild(parent, child NodeID) {
	if parent == NilNode || child == NilNode {
		return
	}
	pn := t.Get(parent)
	pn.Children = append(pn.Children, child)
	cn := t.Get(child)
	if pn.Span.Empty() && pn.Span.Start == 0 {
		pn.Span = cn.Span
	} else {
		pn.Span = pn.Span.Cover(cn.Span)
	}
}

// AddToken appends a Term leaf for tok under parent.
func (t *Tree) AddToken(parent NodeID, tok token.Token) NodeID {
	id := t.NewTerm(tok)
	t.AddChild(parent, id)
	return id
}

// SetRoot records the root node; there is exactly one per tree.
func (t *Tree) SetRoot(id NodeID) { t.root = id }

// Root returns the root node ID.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of allocated nodes.
func (t *Tree) Len() uint32 { return uint32(len(t.nodes)) }

// Kids returns the children of id; nil for leaves and NilNode.
func (t *Tree) Kids(id NodeID) []NodeID {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	return n.Children
}

// FirstChildOfKind returns the first direct child of the given kind.
func (t *Tree) FirstChildOfKind(id NodeID, kind NodeKind) NodeID {
	for _, c := range t.Kids(id) {
		if t.Get(c).Kind == kind {
			return c
		}
	}
	return NilNode
}

// TermText returns the token text of a Term leaf, "" otherwise.
func (t *Tree) TermText(id NodeID) string {
	n := t.Get(id)
	if n == nil || n.Kind != NodeTerm {
		return ""
	}
	return n.Token.Text
}

// TermKind returns the token kind of a Term leaf, token.Invalid otherwise.
func (t *Tree) TermKind(id NodeID) token.Kind {
	n := t.Get(id)
	if n == nil || n.Kind != NodeTerm {
		return token.Invalid
	}
	return n.Token.Kind
}
