package scheduler

import (
	"sync"
	"testing"
	"time"
)

// fakeSource is an in-memory Source with the claim-and-remove contract.
type fakeSource struct {
	mu       sync.Mutex
	entities map[string]Entity
}

func newFakeSource(entities ...Entity) *fakeSource {
	s := &fakeSource{entities: make(map[string]Entity)}
	for _, e := range entities {
		s.entities[e.ID] = e
	}
	return s
}

func (s *fakeSource) ClaimDue(now time.Time) ([]Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []Entity
	for id, e := range s.entities {
		if !e.ExpiresAt.After(now) {
			due = append(due, e)
			delete(s.entities, id)
		}
	}
	return due, nil
}

func (s *fakeSource) Claim(id string) (Entity, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entities[id]
	if ok {
		delete(s.entities, id)
	}
	return e, ok, nil
}

func (s *fakeSource) Cancel(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entities[id]
	delete(s.entities, id)
	return ok, nil
}

// countingHandler records every completion in a goroutine-safe way.
type countingHandler struct {
	mu    sync.Mutex
	fired []string
}

func (h *countingHandler) handle(e Entity) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fired = append(h.fired, e.ID)
	return nil
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.fired)
}

func testEntity(id string, expiresAt time.Time) Entity {
	return Entity{Kind: "test", ID: id, GuildID: "g1", ExpiresAt: expiresAt}
}

func TestTickFiresDueEntities(t *testing.T) {
	source := newFakeSource(
		testEntity("due", time.Unix(100, 0)),
		testEntity("future", time.Unix(900, 0)),
	)
	handler := &countingHandler{}

	s := New(time.Second)
	s.now = func() time.Time { return time.Unix(500, 0) }
	s.Register("test", source, handler.handle)

	s.Tick()

	if got := handler.count(); got != 1 {
		t.Fatalf("handler fired %d times, want 1", got)
	}
	if handler.fired[0] != "due" {
		t.Errorf("fired entity = %v, want due", handler.fired[0])
	}

	// The same entity never fires twice.
	s.Tick()
	if got := handler.count(); got != 1 {
		t.Errorf("handler fired %d times after second tick, want 1", got)
	}
}

func TestEndNowFiresEarly(t *testing.T) {
	source := newFakeSource(testEntity("e1", time.Unix(900, 0)))
	handler := &countingHandler{}

	s := New(time.Second)
	s.now = func() time.Time { return time.Unix(100, 0) }
	s.Register("test", source, handler.handle)

	fired, err := s.EndNow("test", "e1")
	if err != nil {
		t.Fatalf("EndNow() returned error: %v", err)
	}
	if !fired {
		t.Fatal("EndNow() should fire a pending entity")
	}
	if got := handler.count(); got != 1 {
		t.Errorf("handler fired %d times, want 1", got)
	}

	// Gone now, both for EndNow and the poll loop.
	if fired, _ := s.EndNow("test", "e1"); fired {
		t.Error("EndNow() must not fire the same entity twice")
	}
	s.now = func() time.Time { return time.Unix(1000, 0) }
	s.Tick()
	if got := handler.count(); got != 1 {
		t.Errorf("handler fired %d times after tick, want 1", got)
	}
}

func TestEndNowUnknownKind(t *testing.T) {
	s := New(time.Second)
	if _, err := s.EndNow("nope", "e1"); err == nil {
		t.Error("EndNow() with unknown kind should fail")
	}
}

func TestEndNowRacesTick(t *testing.T) {
	// The entity is due, and a manual end arrives at the same moment as
	// the poll: the claim contract allows exactly one completion.
	source := newFakeSource(testEntity("e1", time.Unix(100, 0)))
	handler := &countingHandler{}

	s := New(time.Second)
	s.now = func() time.Time { return time.Unix(500, 0) }
	s.Register("test", source, handler.handle)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Tick()
	}()
	go func() {
		defer wg.Done()
		_, _ = s.EndNow("test", "e1")
	}()
	wg.Wait()

	if got := handler.count(); got != 1 {
		t.Errorf("handler fired %d times, want exactly 1", got)
	}
}

func TestCancelPreventsFire(t *testing.T) {
	source := newFakeSource(testEntity("e1", time.Unix(100, 0)))
	handler := &countingHandler{}

	s := New(time.Second)
	s.now = func() time.Time { return time.Unix(500, 0) }
	s.Register("test", source, handler.handle)

	found, err := s.Cancel("test", "e1")
	if err != nil {
		t.Fatalf("Cancel() returned error: %v", err)
	}
	if !found {
		t.Error("Cancel() should report the entity existed")
	}

	s.Tick()
	if got := handler.count(); got != 0 {
		t.Errorf("handler fired %d times after cancel, want 0", got)
	}
}

func TestHandlerPanicDoesNotKillTick(t *testing.T) {
	source := newFakeSource(
		testEntity("boom", time.Unix(100, 0)),
		testEntity("fine", time.Unix(100, 0)),
	)
	handler := &countingHandler{}

	s := New(time.Second)
	s.now = func() time.Time { return time.Unix(500, 0) }
	s.Register("test", source, func(e Entity) error {
		if e.ID == "boom" {
			panic("handler exploded")
		}
		return handler.handle(e)
	})

	s.Tick() // must not panic

	// Map order decides whether "fine" ran before or after "boom"; a
	// second tick proves nothing is retried either way.
	s.Tick()
	if got := handler.count(); got > 1 {
		t.Errorf("non-panicking handler fired %d times, want at most 1", got)
	}
}

func TestStartStop(t *testing.T) {
	source := newFakeSource(testEntity("e1", time.Unix(100, 0)))
	handler := &countingHandler{}

	s := New(10 * time.Millisecond)
	s.now = func() time.Time { return time.Unix(500, 0) }
	s.Register("test", source, handler.handle)

	s.Start()
	deadline := time.After(time.Second)
	for handler.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("poll loop never fired the due entity")
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Stop()

	if got := handler.count(); got != 1 {
		t.Errorf("handler fired %d times, want 1", got)
	}
}
