package lint_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/HZMonama/regolab/internal/lint"
)

type fakeClient struct {
	mu    sync.Mutex
	calls [][]byte
	// when non-nil, every Lint call waits for one token before returning
	block chan struct{}
	rep   *lint.Report
	err   error
}

func (c *fakeClient) Lint(_ context.Context, src []byte) (*lint.Report, error) {
	c.mu.Lock()
	c.calls = append(c.calls, append([]byte(nil), src...))
	block := c.block
	c.mu.Unlock()
	if block != nil {
		<-block
	}
	return c.rep, c.err
}

func (c *fakeClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *fakeClient) call(i int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[i]
}

type published struct {
	version uint64
	rep     *lint.Report
	err     error
}

func newScheduler(t *testing.T, client *fakeClient, debounce time.Duration) (*lint.Scheduler, chan published) {
	t.Helper()
	results := make(chan published, 16)
	s := lint.NewScheduler(context.Background(), lint.SchedulerConfig{
		Client:   client,
		Debounce: debounce,
		Publish: func(version uint64, rep *lint.Report, err error) {
			results <- published{version, rep, err}
		},
	})
	t.Cleanup(s.Close)
	return s, results
}

func waitPublished(t *testing.T, results chan published) published {
	t.Helper()
	select {
	case p := <-results:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a published result")
		return published{}
	}
}

func TestEditsCollapseToOneCall(t *testing.T) {
	client := &fakeClient{rep: &lint.Report{}}
	s, results := newScheduler(t, client, 40*time.Millisecond)

	s.Touch([]byte("package p\nx := 1\n"))
	s.Touch([]byte("package p\nx := 12\n"))
	v3 := s.Touch([]byte("package p\nx := 123\n"))

	if got := s.State(); got != lint.StatePending {
		t.Errorf("state after edits = %v, want pending", got)
	}

	p := waitPublished(t, results)
	if p.version != v3 {
		t.Errorf("published version = %d, want %d", p.version, v3)
	}
	if client.callCount() != 1 {
		t.Fatalf("lint calls = %d, want 1", client.callCount())
	}
	if string(client.call(0)) != "package p\nx := 123\n" {
		t.Errorf("lint saw %q, want the third edit", client.call(0))
	}
	if got := s.State(); got != lint.StateIdle {
		t.Errorf("state after publish = %v, want idle", got)
	}
}

func TestSupersededResponseIsDiscarded(t *testing.T) {
	client := &fakeClient{rep: &lint.Report{}, block: make(chan struct{})}
	s, results := newScheduler(t, client, 20*time.Millisecond)

	v1 := s.Touch([]byte("package p\nfirst := 1\n"))
	// wait for the first call to go out
	for i := 0; client.callCount() == 0; i++ {
		if i > 500 {
			t.Fatal("first lint call never issued")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// edit while in flight supersedes the snapshot
	v2 := s.Touch([]byte("package p\nsecond := 2\n"))

	client.block <- struct{}{} // let the stale call finish
	client.block <- struct{}{} // let the follow-up call finish

	p := waitPublished(t, results)
	if p.version == v1 {
		t.Fatal("stale snapshot result must be discarded")
	}
	if p.version != v2 {
		t.Errorf("published version = %d, want %d", p.version, v2)
	}
	if client.callCount() != 2 {
		t.Errorf("lint calls = %d, want 2", client.callCount())
	}
	if string(client.call(1)) != "package p\nsecond := 2\n" {
		t.Errorf("second call saw %q", client.call(1))
	}
	select {
	case extra := <-results:
		t.Errorf("unexpected extra publish: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestShortBufferPublishesEmptyWithoutCall(t *testing.T) {
	client := &fakeClient{rep: &lint.Report{}}
	s, results := newScheduler(t, client, 20*time.Millisecond)

	v := s.Touch([]byte("x"))
	p := waitPublished(t, results)

	if p.version != v {
		t.Errorf("version = %d, want %d", p.version, v)
	}
	if p.err != nil || p.rep == nil || len(p.rep.Violations) != 0 {
		t.Errorf("short buffer should publish an empty report, got %+v", p)
	}
	if client.callCount() != 0 {
		t.Errorf("linter must not run for short buffers")
	}
	if got := s.State(); got != lint.StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
}

func TestShortEditDuringFlightReturnsToIdle(t *testing.T) {
	client := &fakeClient{rep: &lint.Report{}, block: make(chan struct{})}
	s, results := newScheduler(t, client, 20*time.Millisecond)

	s.Touch([]byte("package p\nfirst := 1\n"))
	for i := 0; client.callCount() == 0; i++ {
		if i > 500 {
			t.Fatal("lint call never issued")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// the buffer shrinks below the gate while the call is out
	v2 := s.Touch([]byte("x"))

	p := waitPublished(t, results)
	if p.version != v2 || p.rep == nil || len(p.rep.Violations) != 0 {
		t.Fatalf("short edit should publish an empty report immediately, got %+v", p)
	}

	client.block <- struct{}{} // let the superseded call finish

	// the discarded completion has nothing scheduled behind it and must
	// not leave the machine parked in pending
	deadline := time.Now().Add(2 * time.Second)
	for s.State() != lint.StateIdle {
		if time.Now().After(deadline) {
			t.Fatalf("state = %v long after the stale completion, want idle", s.State())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if client.callCount() != 1 {
		t.Errorf("lint calls = %d, want 1", client.callCount())
	}
	select {
	case extra := <-results:
		t.Errorf("unexpected extra publish: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTransportFailurePublishesError(t *testing.T) {
	client := &fakeClient{err: errors.New("linter exploded")}
	s, results := newScheduler(t, client, 20*time.Millisecond)

	v := s.Touch([]byte("package p\nx := 1\n"))
	p := waitPublished(t, results)

	if p.version != v {
		t.Errorf("version = %d, want %d", p.version, v)
	}
	if p.err == nil || p.rep != nil {
		t.Errorf("failure should publish nil report with error, got %+v", p)
	}
	if got := s.State(); got != lint.StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
}

func TestCloseStopsScheduling(t *testing.T) {
	client := &fakeClient{rep: &lint.Report{}}
	s, results := newScheduler(t, client, 20*time.Millisecond)

	s.Touch([]byte("package p\nx := 1\n"))
	s.Close()

	select {
	case p := <-results:
		// the timer may have fired before Close; only a result for the
		// latest version is acceptable
		if p.version != s.Version() {
			t.Errorf("published stale version %d after close", p.version)
		}
	case <-time.After(100 * time.Millisecond):
	}
}
