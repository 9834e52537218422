package driver_test

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/HZMonama/regolab/internal/driver"
	"github.com/HZMonama/regolab/internal/lint"
	"github.com/HZMonama/regolab/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.rego", "package p\nallow := true\n")

	res, err := driver.Tokenize(path, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("token stream must end with EOF")
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected lex errors: %v", res.Bag.Items())
	}
}

func TestParseFileProducesTree(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.rego", "package p\nallow := true\n")

	res, err := driver.Parse(path, 64)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result.Tree.Len() == 0 {
		t.Error("empty tree")
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected parse errors: %v", res.Bag.Items())
	}
}

func TestHighlightFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "p.rego", "package p\n# note\nallow := true\n")

	res, err := driver.Highlight(path, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Regions) == 0 {
		t.Error("no regions")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := driver.OpenDiskCache("regolab-test")
	if err != nil {
		t.Fatal(err)
	}

	key := sha256.Sum256([]byte("package p\n"))
	in := &driver.DiskPayload{
		Path: "p.rego",
		Report: lint.Report{Violations: []lint.Finding{{
			Rule: "r", Level: "warning",
		}}},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out driver.DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if len(out.Report.Violations) != 1 || out.Report.Violations[0].Rule != "r" {
		t.Errorf("payload = %+v", out)
	}

	var miss driver.DiskPayload
	otherKey := sha256.Sum256([]byte("other"))
	if ok, err := cache.Get(otherKey, &miss); ok || err != nil {
		t.Errorf("miss = %v, %v", ok, err)
	}
}

type countingLinter struct {
	mu    sync.Mutex
	calls int
}

func (l *countingLinter) Lint(_ context.Context, _ []byte) (*lint.Report, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return &lint.Report{}, nil
}

func (l *countingLinter) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func TestLintDirWalksAndOrders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.rego", "package b\n")
	writeFile(t, dir, "a.rego", "package a\n")
	writeFile(t, dir, "sub/c.rego", "package c\n")
	writeFile(t, dir, "ignore.txt", "not a policy")

	linter := &countingLinter{}
	results, err := driver.LintDir(context.Background(), dir, linter, nil, nil, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if filepath.Base(results[0].Path) != "a.rego" || filepath.Base(results[2].Path) != "c.rego" {
		t.Errorf("results out of order: %v, %v", results[0].Path, results[2].Path)
	}
	if linter.callCount() != 3 {
		t.Errorf("lint calls = %d", linter.callCount())
	}
}

func TestLintUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("regolab-test")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := writeFile(t, dir, "p.rego", "package p\n")

	linter := &countingLinter{}
	first, err := driver.Lint(context.Background(), path, linter, nil, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first run must not be cached")
	}

	second, err := driver.Lint(context.Background(), path, linter, nil, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second run should hit the cache")
	}
	if linter.callCount() != 1 {
		t.Errorf("lint calls = %d, want 1", linter.callCount())
	}
}
