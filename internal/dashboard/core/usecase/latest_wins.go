package usecase

import (
	"context"
	"errors"
	"sync"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/observability"
)

// DashboardExecutor is what LatestWins wraps; GetDashboardUseCase satisfies it.
type DashboardExecutor interface {
	Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error)
}

// Session tracks the requests of one dashboard client. Every refresh takes a
// new generation; a refresh that finishes after a newer one started is
// discarded with ErrStaleRequest and never replaces the last result.
type Session struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	last   *domain.Dashboard
}

// Refresh runs build under a context that is cancelled as soon as a newer
// refresh begins on the same session.
func (s *Session) Refresh(ctx context.Context, build func(ctx context.Context) (*domain.Dashboard, error)) (*domain.Dashboard, error) {
	s.mu.Lock()
	s.gen++
	token := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer cancel()

	d, err := build(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.gen {
		return nil, ErrStaleRequest
	}
	s.cancel = nil
	if err != nil {
		return nil, err
	}
	s.last = d
	return d, nil
}

// Last returns the most recent completed dashboard, or nil.
func (s *Session) Last() *domain.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Generation is the token of the latest refresh started.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// LatestWins applies the latest-wins contract per session id.
type LatestWins struct {
	uc      DashboardExecutor
	metrics *observability.Metrics
	max     int

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewLatestWins keeps at most maxSessions sessions; beyond that an idle one is dropped.
func NewLatestWins(uc DashboardExecutor, maxSessions int, metrics *observability.Metrics) *LatestWins {
	if maxSessions <= 0 {
		maxSessions = 1024
	}
	return &LatestWins{
		uc:       uc,
		metrics:  metrics,
		max:      maxSessions,
		sessions: make(map[string]*Session),
	}
}

func (l *LatestWins) session(id string) *Session {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.sessions[id]; ok {
		return s
	}
	if len(l.sessions) >= l.max {
		l.evictLocked()
	}
	s := &Session{}
	l.sessions[id] = s
	return s
}

func (l *LatestWins) evictLocked() {
	for id, s := range l.sessions {
		if s.mu.TryLock() {
			idle := s.cancel == nil
			s.mu.Unlock()
			if idle {
				delete(l.sessions, id)
				return
			}
		}
	}
	// everything is busy; drop any
	for id := range l.sessions {
		delete(l.sessions, id)
		return
	}
}

// Execute runs the use case. With an empty session id there is nothing to
// supersede and the call goes straight through.
func (l *LatestWins) Execute(ctx context.Context, sessionID string, in GetDashboardInput) (*domain.Dashboard, error) {
	if sessionID == "" {
		return l.uc.Execute(ctx, in)
	}

	d, err := l.session(sessionID).Refresh(ctx, func(ctx context.Context) (*domain.Dashboard, error) {
		return l.uc.Execute(ctx, in)
	})
	if errors.Is(err, ErrStaleRequest) {
		l.metrics.StaleDiscard()
	}
	return d, err
}

// Last returns the last dashboard completed for the session, or nil.
func (l *LatestWins) Last(sessionID string) *domain.Dashboard {
	l.mu.Lock()
	s, ok := l.sessions[sessionID]
	l.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Last()
}
