// Package diagfmt renders diagnostics, token streams, syntax trees, and
// style regions for the CLI, in both human and JSON form.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty writes diagnostics in human-readable form, one per block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline when ShowPreview is
// set, and indented notes when ShowNotes is set. Call bag.Sort() first
// for deterministic output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	color.NoColor = !opts.Color
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := severityLabel(d.Severity)
	code := d.Code.ID()
	if d.Source != "" {
		code = d.Source
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		posColor.Sprintf("%s:%d:%d", displayPath(file, opts.PathMode), start.Line, start.Col),
		sev, code, d.Message)

	if opts.ShowPreview && file != nil {
		writePreview(w, file, d.Primary, start)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			npos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "    note: %d:%d: %s\n", npos.Line, npos.Col, n.Msg)
		}
	}
}

func writePreview(w io.Writer, file *source.File, sp source.Span, start source.LineCol) {
	line := file.GetLine(start.Line)
	if line == "" && sp.Start >= uint32(len(file.Content)) {
		return
	}
	fmt.Fprintf(w, "    %s\n", strings.TrimRight(line, "\n"))

	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if avail := len(line) - int(start.Col) + 1; width > avail && avail > 0 {
		width = avail
	}
	fmt.Fprintf(w, "    %s%s\n",
		strings.Repeat(" ", int(start.Col)-1),
		strings.Repeat("^", 1)+strings.Repeat("~", width-1))
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return errColor.Sprint("error")
	case diag.SevWarning:
		return warnColor.Sprint("warning")
	default:
		return infoColor.Sprint("info")
	}
}

func displayPath(file *source.File, mode PathMode) string {
	if file == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(file.Path)
	}
	return file.Path
}
