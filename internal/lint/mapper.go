package lint

import (
	"slices"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/source"
)

// DefaultSuppressedRules are filtered out of every report. Documents here
// are stored flat, never in package-mirroring directories, so the
// directory layout rule can only misfire.
var DefaultSuppressedRules = []string{
	"directory-package-mismatch",
}

// MapFindings converts linter findings into diagnostics anchored in the
// current buffer. The linter's snapshot may lag behind live edits, so
// every offset is recomputed against file and clamped into its bounds; a
// stale row or a shortened line never yields an out-of-range span.
func MapFindings(rep *Report, file *source.File, suppressed []string) []diag.Diagnostic {
	if rep == nil {
		return nil
	}
	if suppressed == nil {
		suppressed = DefaultSuppressedRules
	}

	out := make([]diag.Diagnostic, 0, len(rep.Violations))
	docLen := uint32(len(file.Content))
	for _, f := range rep.Violations {
		if slices.Contains(suppressed, f.Rule) {
			continue
		}

		row := f.Location.Row
		if row < 1 {
			row = 1
		}
		if lc := int(file.LineCount()); row > lc {
			row = lc
		}
		col := f.Location.Col
		if col < 1 {
			col = 1
		}

		start := file.OffsetOf(source.LineCol{Line: uint32(row), Col: uint32(col)})
		width := uint32(len(f.Location.Text))
		if width == 0 {
			width = 1
		}
		end := start + width
		if end > docLen {
			end = docLen
		}
		if start > end {
			start = end
		}

		sev := diag.SevWarning
		if f.Level == "error" {
			sev = diag.SevError
		}
		out = append(out, diag.Diagnostic{
			Severity: sev,
			Code:     diag.LintFinding,
			Message:  f.Description,
			Primary:  source.Span{File: file.ID, Start: start, End: end},
			Source:   f.Rule,
		})
	}
	return out
}
