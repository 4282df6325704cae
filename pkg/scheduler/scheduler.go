// Package scheduler fires one-shot completion actions for entities with
// a deadline: giveaways and timed mutes. Entities live in the state
// store; the scheduler polls their sources on a fixed interval and runs
// each entity's action at most once.
//
// The at-most-once guarantee comes from the claim contract: a Source
// removes the entity from its active set inside the same store-locked
// step that returns it, so the poll loop and a manual early end can
// never both obtain the same entity.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ANN7660/hoshimi/pkg/logger"
)

// Entity is an expiring record claimed from a Source. Payload carries
// the kind-specific data (a state.Giveaway, a state.TimedMute, ...).
type Entity struct {
	Kind      string
	ID        string
	GuildID   string
	ExpiresAt time.Time
	Payload   any
}

// Source hands out expiring entities. Both methods must remove the
// returned entities from the active set atomically with the lookup
// (claim-and-remove), and persist the removal.
type Source interface {
	// ClaimDue removes and returns every entity due at now.
	ClaimDue(now time.Time) ([]Entity, error)
	// Claim removes and returns one entity by id, due or not.
	Claim(id string) (Entity, bool, error)
	// Cancel removes one entity by id without returning it.
	Cancel(id string) (bool, error)
}

// Handler is the completion action for one kind of entity. A failing
// handler is logged and swallowed; the entity stays retired either way
// (best-effort, at most once, never retried).
type Handler func(e Entity) error

type kind struct {
	source  Source
	handler Handler
}

// Scheduler runs the poll loop over all registered kinds.
type Scheduler struct {
	interval time.Duration
	now      func() time.Time

	mu    sync.RWMutex
	kinds map[string]kind

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Scheduler polling at the given interval.
func New(interval time.Duration) *Scheduler {
	return &Scheduler{
		interval: interval,
		now:      time.Now,
		kinds:    make(map[string]kind),
	}
}

// Register binds a source and its completion action to an entity kind.
// Must be called before Start.
func (s *Scheduler) Register(name string, source Source, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kinds[name] = kind{source: source, handler: handler}
}

// Start launches the poll loop. It returns immediately; the loop stops
// when Stop is called.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.System(fmt.Sprintf("Expiry scheduler started (every %s)", s.interval), "Scheduler")
}

// Stop terminates the poll loop and waits for the current tick to end.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	logger.System("Expiry scheduler stopped", "Scheduler")
}

// Tick claims and completes every due entity across all kinds. Exposed
// so tests and shutdown paths can drive the loop directly.
func (s *Scheduler) Tick() {
	now := s.now()

	s.mu.RLock()
	kinds := make(map[string]kind, len(s.kinds))
	for name, k := range s.kinds {
		kinds[name] = k
	}
	s.mu.RUnlock()

	for name, k := range kinds {
		due, err := k.source.ClaimDue(now)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to claim due %s entities: %v", name, err), "Scheduler")
			continue
		}
		for _, e := range due {
			s.complete(k, e)
		}
	}
}

// EndNow claims a single entity ahead of its deadline and runs its
// completion action. It reports false when the entity is gone, either
// never scheduled or already completed.
func (s *Scheduler) EndNow(kindName, id string) (bool, error) {
	s.mu.RLock()
	k, ok := s.kinds[kindName]
	s.mu.RUnlock()
	if !ok {
		return false, fmt.Errorf("scheduler: unknown kind %q", kindName)
	}

	e, found, err := k.source.Claim(id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	s.complete(k, e)
	return true, nil
}

// Cancel removes a scheduled entity without firing its action.
func (s *Scheduler) Cancel(kindName, id string) (bool, error) {
	s.mu.RLock()
	k, ok := s.kinds[kindName]
	s.mu.RUnlock()
	if !ok {
		return false, fmt.Errorf("scheduler: unknown kind %q", kindName)
	}
	return k.source.Cancel(id)
}

// complete runs the handler for a claimed entity, shielding the loop
// from panics. Failures are terminal: the entity was already removed.
func (s *Scheduler) complete(k kind, e Entity) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("Completion action for %s %s panicked: %v", e.Kind, e.ID, r), "Scheduler")
		}
	}()
	if err := k.handler(e); err != nil {
		logger.Warn(fmt.Sprintf("Completion action for %s %s failed: %v", e.Kind, e.ID, err), "Scheduler")
	}
}
