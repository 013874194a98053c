// Package state holds the process-wide project collection and notifies
// subscribers on every change.
package state

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/projboard/internal/domain"
	"github.com/google/uuid"
)

// Listener receives the complete project sequence after each change.
// The slice is a fresh copy owned by the listener.
type Listener func(projects []domain.Project)

// Store is the in-memory project collection. Projects are append-only and
// kept in insertion order; listeners are notified in registration order.
//
// AddProject does not validate its input. Callers are expected to run the
// validation engine first.
type Store struct {
	mu        sync.Mutex
	projects  []domain.Project
	listeners []Listener

	newID  func() string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the uuid-based project id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces time.Now for project creation timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// New creates an empty store. Applications create exactly one and pass it to
// every view at assembly time.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  func() string { return uuid.New().String() },
		now:    func() time.Time { return time.Now().UTC() },
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	instance     *Store
	instanceOnce sync.Once
)

// Instance returns the process-wide store, creating it on first call.
func Instance() *Store {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// AddListener registers fn. There is no deduplication and no unsubscribe.
func (s *Store) AddListener(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	n := len(s.listeners)
	s.mu.Unlock()

	s.logger.Debug("listener_added", "listeners", n)
}

// AddProject appends a new Active project and then calls every listener, in
// registration order, with a copy of the full sequence.
//
// Listeners run on the caller's goroutine after the lock is released, so a
// listener may read the store. Every listener sees the sequence as it was
// right after this append. A panicking listener stops the fan-out.
func (s *Store) AddProject(title, description string, people int) {
	p := domain.NewProject(s.newID(), title, description, people, s.now())

	s.mu.Lock()
	s.projects = append(s.projects, p)
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	total := len(s.projects)
	seq := s.projects[:total:total]
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelInfo, "project_added",
		slog.String("project_id", p.ID),
		slog.Int("people", p.People),
		slog.Int("total", total),
		slog.Int("listeners", len(listeners)),
	)

	for _, fn := range listeners {
		fn(slices.Clone(seq))
	}
}

// Projects returns a copy of the current sequence.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Listeners returns the number of registered listeners.
func (s *Store) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
