package syntax

// Visitor receives each node in preorder. Returning false skips the
// node's subtree.
type Visitor func(id NodeID, n *Node) bool

// Walk traverses the subtree rooted at id in preorder.
func (t *Tree) Walk(id NodeID, visit Visitor) {
	n := t.Get(id)
	if n == nil {
		return
	}
	if !visit(id, n) {
		return
	}
	for _, c := range n.Children {
		t.Walk(c, visit)
	}
}

// PathAt returns the chain of nodes from the root down to the deepest node
// whose span contains the byte offset. Empty when the offset falls outside
// the root span.
func (t *Tree) PathAt(off uint32) []NodeID {
	var path []NodeID
	id := t.root
	for id != NilNode {
		n := t.Get(id)
		if !n.Span.Contains(off) {
			break
		}
		path = append(path, id)
		next := NilNode
		for _, c := range n.Children {
			if t.Get(c).Span.Contains(off) {
				next = c
				break
			}
		}
		id = next
	}
	return path
}

// LeafAt returns the deepest Term leaf containing the offset, or NilNode.
func (t *Tree) LeafAt(off uint32) NodeID {
	path := t.PathAt(off)
	for i := len(path) - 1; i >= 0; i-- {
		if t.Get(path[i]).Kind == NodeTerm {
			return path[i]
		}
	}
	return NilNode
}

// CountKind returns how many nodes of the given kind the subtree holds.
func (t *Tree) CountKind(id NodeID, kind NodeKind) int {
	count := 0
	t.Walk(id, func(_ NodeID, n *Node) bool {
		if n.Kind == kind {
			count++
		}
		return true
	})
	return count
}
