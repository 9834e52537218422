package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/HZMonama/regolab/internal/syntax"
	"github.com/HZMonama/regolab/internal/token"
)

type nodeJSON struct {
	Kind     string     `json:"kind"`
	Start    uint32     `json:"start"`
	End      uint32     `json:"end"`
	Token    string     `json:"token,omitempty"`
	Text     string     `json:"text,omitempty"`
	Children []nodeJSON `json:"children,omitempty"`
}

// FormatTreePretty writes the syntax tree as an indented outline, one node
// per line, terms with their token kind and text.
func FormatTreePretty(w io.Writer, tree *syntax.Tree, root syntax.NodeID) {
	writeNode(w, tree, root, 0)
}

func writeNode(w io.Writer, tree *syntax.Tree, id syntax.NodeID, depth int) {
	n := tree.Get(id)
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	if n.Kind == syntax.NodeTerm {
		text := n.Token.Text
		if text == "" {
			text = n.Token.Kind.String()
		}
		fmt.Fprintf(w, "%s%s %s %q [%d-%d]\n",
			indent, n.Kind, n.Token.Kind, text, n.Span.Start, n.Span.End)
		return
	}
	fmt.Fprintf(w, "%s%s [%d-%d]\n", indent, n.Kind, n.Span.Start, n.Span.End)
	for _, kid := range n.Children {
		writeNode(w, tree, kid, depth+1)
	}
}

// FormatTreeJSON writes the syntax tree as nested JSON objects.
func FormatTreeJSON(w io.Writer, tree *syntax.Tree, root syntax.NodeID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodeToJSON(tree, root))
}

func nodeToJSON(tree *syntax.Tree, id syntax.NodeID) nodeJSON {
	n := tree.Get(id)
	if n == nil {
		return nodeJSON{Kind: syntax.NodeInvalid.String()}
	}
	nj := nodeJSON{
		Kind:  n.Kind.String(),
		Start: n.Span.Start,
		End:   n.Span.End,
	}
	if n.Kind == syntax.NodeTerm {
		if n.Token.Kind != token.EOF {
			nj.Token = n.Token.Kind.String()
		}
		nj.Text = n.Token.Text
		return nj
	}
	for _, kid := range n.Children {
		nj.Children = append(nj.Children, nodeToJSON(tree, kid))
	}
	return nj
}
