package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/HZMonama/regolab/internal/highlight"
	"github.com/HZMonama/regolab/internal/source"
)

type regionJSON struct {
	Tag   string `json:"tag"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Text  string `json:"text,omitempty"`
}

// FormatRegionsPretty writes one style region per line with its source text.
func FormatRegionsPretty(w io.Writer, regions []highlight.Region, file *source.File) {
	for _, r := range regions {
		text := ""
		if file != nil && r.Span.End <= uint32(len(file.Content)) {
			text = string(file.Content[r.Span.Start:r.Span.End])
		}
		fmt.Fprintf(w, "%-21s [%d-%d] %q\n", r.Tag, r.Span.Start, r.Span.End, text)
	}
}

// FormatRegionsJSON writes the style regions as a JSON array.
func FormatRegionsJSON(w io.Writer, regions []highlight.Region, file *source.File) error {
	out := make([]regionJSON, 0, len(regions))
	for _, r := range regions {
		rj := regionJSON{
			Tag:   r.Tag.String(),
			Start: r.Span.Start,
			End:   r.Span.End,
		}
		if file != nil && r.Span.End <= uint32(len(file.Content)) {
			rj.Text = string(file.Content[r.Span.Start:r.Span.End])
		}
		out = append(out, rj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
