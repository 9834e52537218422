package lint

import (
	"context"
	"sync"
	"time"
)

// State is the scheduler's position in Idle -> Pending -> InFlight.
type State uint8

const (
	StateIdle State = iota
	StatePending
	StateInFlight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateInFlight:
		return "in-flight"
	}
	return "State(?)"
}

// PublishFunc receives lint results. rep is nil on transport failure; the
// consumer publishes an empty diagnostic set in that case rather than
// surfacing the infrastructure error as a finding.
type PublishFunc func(version uint64, rep *Report, err error)

const (
	// DefaultDebounce is how long edits must settle before a lint run.
	DefaultDebounce = 750 * time.Millisecond
	// DefaultMinLength gates lint runs on near-empty buffers.
	DefaultMinLength = 3
)

type SchedulerConfig struct {
	Client    Client
	Publish   PublishFunc
	Debounce  time.Duration
	MinLength int
}

// Scheduler debounces buffer edits into single-flight lint calls. Each
// edit bumps a snapshot version; at most one call is in flight, and a
// response for anything but the newest version is discarded on arrival.
// A superseded call is not aborted, just ignored.
type Scheduler struct {
	mu  sync.Mutex
	cfg SchedulerConfig
	ctx context.Context

	state   State
	version uint64
	content []byte
	timer   *time.Timer
	// deferred marks a debounce expiry that hit while a call was in
	// flight; the completion handler owes it a restart.
	deferred bool
	closed   bool
}

func NewScheduler(ctx context.Context, cfg SchedulerConfig) *Scheduler {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	return &Scheduler{cfg: cfg, ctx: ctx}
}

// State returns the current machine state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version returns the newest snapshot version the scheduler has seen.
func (s *Scheduler) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Touch registers an edit. Edits inside one debounce window collapse into
// a single pending request holding only the latest content. Buffers below
// the minimum length publish an empty report immediately instead of
// linting. Returns the snapshot version assigned to this edit.
func (s *Scheduler) Touch(content []byte) uint64 {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return s.version
	}
	s.version++
	v := s.version

	if len(content) < s.cfg.MinLength {
		if s.timer != nil {
			s.timer.Stop()
		}
		s.content = nil
		if s.state == StatePending {
			s.state = StateIdle
		}
		s.mu.Unlock()
		go s.cfg.Publish(v, &Report{}, nil)
		return v
	}

	s.content = append([]byte(nil), content...)
	if s.state != StateInFlight {
		s.state = StatePending
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.cfg.Debounce, s.fire)
	} else {
		s.timer.Reset(s.cfg.Debounce)
	}
	s.mu.Unlock()
	return v
}

// fire runs on debounce expiry. With a call already in flight it only
// records the expiry; the completion handler restarts the cycle.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.closed || s.content == nil {
		s.mu.Unlock()
		return
	}
	if s.state == StateInFlight {
		s.deferred = true
		s.mu.Unlock()
		return
	}
	s.state = StateInFlight
	v := s.version
	snap := s.content
	s.mu.Unlock()

	go s.run(v, snap)
}

func (s *Scheduler) run(v uint64, snap []byte) {
	rep, err := s.cfg.Client.Lint(s.ctx, snap)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if v != s.version {
		// a newer snapshot was scheduled while this call was out; drop
		// the result and give the newer one its debounce turn
		if s.content == nil {
			// the newer edit was below the minimum length and already
			// published its empty report; nothing is waiting behind us
			s.state = StateIdle
			s.deferred = false
		} else {
			s.state = StatePending
			if s.deferred {
				s.deferred = false
				s.timer.Reset(0)
			}
		}
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	s.deferred = false
	s.mu.Unlock()

	if err != nil {
		s.cfg.Publish(v, nil, err)
		return
	}
	s.cfg.Publish(v, rep, nil)
}

// Close stops the timer and ignores everything still in flight.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
