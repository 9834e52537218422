package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/HZMonama/regolab/internal/lint"
)

// LintDirResult is one file's outcome from a bulk lint run.
type LintDirResult struct {
	Path   string
	Result *LintResult
	Err    error
}

// ListRegoFiles returns a sorted list of all *.rego files under dir.
func ListRegoFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rego") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LintDir lints every *.rego file under dir, jobs files at a time.
// Results come back in file order regardless of completion order. The
// optional progress callback fires once per finished file.
func LintDir(ctx context.Context, dir string, client lint.Client, suppressed []string, cache *DiskCache, jobs int, progress func(res LintDirResult)) ([]LintDirResult, error) {
	files, err := ListRegoFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]LintDirResult, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			res, err := Lint(gctx, path, client, suppressed, cache)
			out := LintDirResult{Path: path, Result: res, Err: err}
			mu.Lock()
			results[i] = out
			mu.Unlock()
			if progress != nil {
				progress(out)
			}
			// per-file failures are carried in the result, not fatal
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
