package driver

import (
	"context"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/lint"
	"github.com/HZMonama/regolab/internal/source"
)

type LintResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Report      *lint.Report
	Diagnostics []diag.Diagnostic
	// Cached is true when the report came from the disk cache.
	Cached bool
}

// Lint runs the external linter over one file and maps its findings onto
// the file's offsets. cache may be nil.
func Lint(ctx context.Context, path string, client lint.Client, suppressed []string, cache *DiskCache) (*LintResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	res := &LintResult{FileSet: fs, File: file}

	var payload DiskPayload
	if ok, _ := cache.Get(file.Hash, &payload); ok {
		res.Report = &payload.Report
		res.Cached = true
	} else {
		rep, err := client.Lint(ctx, file.Content)
		if err != nil {
			return nil, err
		}
		res.Report = rep
		if cache != nil {
			// best effort; a failed write only costs the next run
			_ = cache.Put(file.Hash, &DiskPayload{Path: path, Report: *rep})
		}
	}

	res.Diagnostics = lint.MapFindings(res.Report, file, suppressed)
	return res, nil
}
