package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/source"
)

type spanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type positionJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type diagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Source   string        `json:"source,omitempty"`
	Message  string        `json:"message"`
	Path     string        `json:"path"`
	Span     spanJSON      `json:"span"`
	From     *positionJSON `json:"from,omitempty"`
	To       *positionJSON `json:"to,omitempty"`
}

// DiagnosticsJSON writes the bag as a JSON array.
func DiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]diagnosticJSON, 0, len(items))
	for _, d := range items {
		file := fs.Get(d.Primary.File)
		dj := diagnosticJSON{
			Severity: severityName(d.Severity),
			Code:     d.Code.ID(),
			Source:   d.Source,
			Message:  d.Message,
			Path:     displayPath(file, opts.PathMode),
			Span:     spanJSON{Start: d.Primary.Start, End: d.Primary.End},
		}
		if opts.IncludePositions {
			from, to := fs.Resolve(d.Primary)
			dj.From = &positionJSON{Line: from.Line, Col: from.Col}
			dj.To = &positionJSON{Line: to.Line, Col: to.Col}
		}
		out = append(out, dj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func severityName(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}
