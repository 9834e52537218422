package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/token"
)

type tokenJSON struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Start   uint32   `json:"start"`
	End     uint32   `json:"end"`
	Leading []string `json:"leading,omitempty"`
}

// FormatTokensPretty writes one token per line with position and trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, tr := range tok.Leading {
			leading = append(leading, tr.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-14s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		tj := tokenJSON{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		}
		for _, tr := range tok.Leading {
			tj.Leading = append(tj.Leading, tr.Kind.String())
		}
		out = append(out, tj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
