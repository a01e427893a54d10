package calendar

import (
	"context"
	"errors"
	"sync"

	"github.com/iliyamo/event-calendar/internal/model"
)

// LoadState is the phase of a load session's state machine. Loads are
// discrete operations triggered by explicit events (a viewer being set, a
// retry) rather than implicit side effects.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String renders a LoadState for logs and debugging.
func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrStaleLoad is returned when a load completes after the session's
// viewer has changed. The stale result is discarded, never stored.
var ErrStaleLoad = errors.New("load superseded by viewer change")

// Session drives load cycles for one consumer as an explicit state
// machine: Idle → Loading → Loaded | Failed. Changing the viewer resets
// the session to Idle and bumps a generation counter; any load still in
// flight for an earlier generation is discarded when it lands, so a slow
// response can never be applied to a newer identity's state.
type Session struct {
	loader *Loader

	mu     sync.Mutex
	state  LoadState
	gen    uint64
	viewer *model.Viewer
	cred   model.Credential
	snap   Snapshot
	err    error
}

// NewSession creates an idle session over the given loader.
func NewSession(loader *Loader) *Session {
	return &Session{loader: loader}
}

// SetViewer installs the identity for subsequent loads. Every call, even
// with the same viewer, starts a fresh generation and returns the session
// to Idle; results from loads started before the call are discarded.
func (s *Session) SetViewer(viewer *model.Viewer, cred model.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.viewer = viewer
	s.cred = cred
	s.state = StateIdle
	s.snap = Snapshot{}
	s.err = nil
}

// Load runs one load cycle for the current viewer and blocks until it
// settles. If the viewer changes while the cycle is in flight the result
// is dropped and ErrStaleLoad is returned; the session's state then
// reflects the newer generation, not the discarded load.
func (s *Session) Load(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	gen := s.gen
	viewer := s.viewer
	cred := s.cred
	s.state = StateLoading
	s.mu.Unlock()

	snap, err := s.loader.Load(ctx, cred, viewer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return Snapshot{}, ErrStaleLoad
	}
	if err != nil {
		s.state = StateFailed
		s.err = err
		return Snapshot{}, err
	}
	s.state = StateLoaded
	s.snap = snap
	s.err = nil
	return snap, nil
}

// State reports the session's current phase.
func (s *Session) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Viewer returns the identity the session currently loads for.
func (s *Session) Viewer() *model.Viewer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer
}

// Err returns the failure recorded by the last settled load, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
