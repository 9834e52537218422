// Package session owns the per-editor state: the three text buffers, the
// freshest syntax tree and schema context, and the lint pipeline. One
// session serves one editor; sessions share nothing.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/highlight"
	"github.com/HZMonama/regolab/internal/lint"
	"github.com/HZMonama/regolab/internal/parser"
	"github.com/HZMonama/regolab/internal/resolve"
	"github.com/HZMonama/regolab/internal/schema"
	"github.com/HZMonama/regolab/internal/source"
)

type Config struct {
	// LintClient runs the external linter; nil disables linting.
	LintClient lint.Client
	// Debounce and MinLintLength tune the scheduler; zero means default.
	Debounce      int // milliseconds
	MinLintLength int
	// SuppressedRules overrides lint.DefaultSuppressedRules when non-nil.
	SuppressedRules []string
	// OnDiagnostics, when set, is called with the full replacement
	// diagnostic list after every lint publish.
	OnDiagnostics func([]diag.Diagnostic)
	// MaxDiagnostics caps collected parse diagnostics per reparse.
	MaxDiagnostics int
}

// Session is the host-facing API. All methods are safe for concurrent use;
// each rebuild swaps in a fresh immutable tree or schema, so readers never
// observe partial state.
type Session struct {
	mu  sync.Mutex
	cfg Config

	fs     *source.FileSet
	policy *source.File
	parse  parser.Result

	schemas schema.Context

	sched *lint.Scheduler
	// lintDiags is the last published lint set; fully replaced, never
	// patched.
	lintDiags   []diag.Diagnostic
	lintVersion uint64
	lastLintErr error
}

func New(ctx context.Context, cfg Config) *Session {
	if cfg.MaxDiagnostics <= 0 {
		cfg.MaxDiagnostics = 256
	}
	s := &Session{cfg: cfg, fs: source.NewFileSet()}
	s.setPolicyLocked("")

	if cfg.LintClient != nil {
		s.sched = lint.NewScheduler(ctx, lint.SchedulerConfig{
			Client:    cfg.LintClient,
			Debounce:  millis(cfg.Debounce),
			MinLength: cfg.MinLintLength,
			Publish:   s.publish,
		})
	}
	return s
}

// SetPolicy replaces the policy buffer, reparses it, and schedules a lint
// run for the new snapshot.
func (s *Session) SetPolicy(text string) {
	s.mu.Lock()
	s.setPolicyLocked(text)
	s.mu.Unlock()

	if s.sched != nil {
		s.sched.Touch([]byte(text))
	}
}

func (s *Session) setPolicyLocked(text string) {
	// the policy buffer owns one FileSet slot for the session's lifetime;
	// every edit overwrites it so superseded snapshots are not retained
	if s.policy == nil {
		id := s.fs.AddVirtual("policy.rego", nil)
		s.policy = s.fs.Get(id)
	}
	s.policy = s.fs.Update(s.policy.ID, []byte(text))
	bag := diag.NewBag(s.cfg.MaxDiagnostics)
	s.parse = parser.ParseFile(s.policy, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
}

// SetInput replaces the input buffer and rebuilds its schema. A buffer
// that fails to parse as JSON leaves a nil schema, which is a normal state.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas.Input = schema.Build([]byte(text), "input")
}

// SetData replaces the data buffer and rebuilds its schema.
func (s *Session) SetData(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas.Data = schema.Build([]byte(text), "data")
}

// Highlight returns styled regions for the current policy buffer.
func (s *Session) Highlight() []highlight.Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return highlight.File(s.parse.Tree, s.parse.EOF.Leading)
}

// Complete resolves completion candidates for a path prefix against the
// current schemas.
func (s *Session) Complete(prefix string) []resolve.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolve.Complete(&s.schemas, prefix)
}

// Hover resolves type/example/source info for a complete path.
func (s *Session) Hover(path string) *resolve.HoverInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolve.Hover(&s.schemas, path)
}

// Diagnostics returns parse diagnostics merged with the latest published
// lint findings, in document order.
func (s *Session) Diagnostics() []diag.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()

	bag := diag.NewBag(s.cfg.MaxDiagnostics + len(s.lintDiags))
	if s.parse.Bag != nil {
		for _, d := range s.parse.Bag.Items() {
			bag.Add(d)
		}
	}
	for _, d := range s.lintDiags {
		bag.Add(d)
	}
	bag.Sort()
	return bag.Items()
}

// LastLintErr reports the transport error from the most recent lint
// attempt, nil after a successful run.
func (s *Session) LastLintErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLintErr
}

// Tree exposes the current parse result for one-shot tooling.
func (s *Session) Tree() parser.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parse
}

// Close stops the lint scheduler.
func (s *Session) Close() {
	if s.sched != nil {
		s.sched.Close()
	}
}

// publish receives scheduler results. Stale versions are dropped; a
// transport failure clears the lint set instead of surfacing as findings.
func (s *Session) publish(version uint64, rep *lint.Report, err error) {
	s.mu.Lock()
	if version < s.lintVersion {
		s.mu.Unlock()
		return
	}
	s.lintVersion = version
	s.lastLintErr = err
	if err != nil || rep == nil {
		s.lintDiags = nil
	} else {
		s.lintDiags = lint.MapFindings(rep, s.policy, s.cfg.SuppressedRules)
	}
	notify := s.cfg.OnDiagnostics
	s.mu.Unlock()

	if notify != nil {
		notify(s.Diagnostics())
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
