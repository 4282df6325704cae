package state

import (
	"sync"
	"testing"
	"time"
)

func TestPremiumSetHas(t *testing.T) {
	list := NewPremiumList(newTestStore(t))

	if list.Has("g1", "u1") {
		t.Error("Has() should be false before any grant")
	}
	if err := list.Set("g1", "u1", true); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if !list.Has("g1", "u1") {
		t.Error("Has() should be true after grant")
	}
	if err := list.Set("g1", "u1", false); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if list.Has("g1", "u1") {
		t.Error("Has() should be false after revoke")
	}
}

func TestAutoResponderMatch(t *testing.T) {
	resp := NewAutoResponder(newTestStore(t))

	if err := resp.Add("g1", "Bonjour", "Salut !"); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	// Matching is a case-insensitive substring check.
	got, ok := resp.Match("g1", "eh BONJOUR tout le monde")
	if !ok || got != "Salut !" {
		t.Errorf("Match() = %q %v, want %q true", got, ok, "Salut !")
	}

	if _, ok := resp.Match("g1", "rien à voir"); ok {
		t.Error("Match() should not fire without a trigger")
	}

	found, err := resp.Remove("g1", "Bonjour")
	if err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}
	if !found {
		t.Error("Remove() should report the trigger existed")
	}
	if _, ok := resp.Match("g1", "bonjour"); ok {
		t.Error("Match() should not fire after removal")
	}
}

func TestLinkPolicy(t *testing.T) {
	policy := NewLinkPolicy(newTestStore(t))

	if policy.HasRules("g1") {
		t.Error("HasRules() should be false with no configuration")
	}

	if err := policy.Allow("g1", "c1"); err != nil {
		t.Fatalf("Allow() returned error: %v", err)
	}
	if !policy.HasRules("g1") {
		t.Error("HasRules() should be true once a channel is allowed")
	}
	if !policy.IsAllowed("g1", "c1") {
		t.Error("IsAllowed() should be true for an allowed channel")
	}
	if policy.IsAllowed("g1", "c2") {
		t.Error("IsAllowed() should be false for other channels")
	}

	if err := policy.Disallow("g1", "c1"); err != nil {
		t.Fatalf("Disallow() returned error: %v", err)
	}
	if policy.IsAllowed("g1", "c1") {
		t.Error("IsAllowed() should be false after Disallow")
	}
}

func TestBadgeCaseDedup(t *testing.T) {
	badges := NewBadgeCase(newTestStore(t))

	for i := 0; i < 3; i++ {
		if err := badges.Grant("g1", "u1", "fleur"); err != nil {
			t.Fatalf("Grant() returned error: %v", err)
		}
	}
	if err := badges.Grant("g1", "u1", "coeur"); err != nil {
		t.Fatalf("Grant() returned error: %v", err)
	}

	got := badges.Badges("g1", "u1")
	if len(got) != 2 {
		t.Errorf("Badges() = %v, want 2 distinct badges", got)
	}
}

func TestSuggestionLifecycle(t *testing.T) {
	box := NewSuggestionBox(newTestStore(t))
	box.now = func() time.Time { return time.Unix(1234, 0) }

	id, err := box.Submit("g1", "u1", "plus de giveaways")
	if err != nil {
		t.Fatalf("Submit() returned error: %v", err)
	}
	if len(id) != 8 {
		t.Errorf("Submit() id length = %d, want 8", len(id))
	}

	sug, found, err := box.Resolve("g1", id, SuggestionAccepted)
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if !found {
		t.Fatal("Resolve() should find the submitted suggestion")
	}
	if sug.Status != SuggestionAccepted || sug.AuthorID != "u1" || sug.CreatedAt != 1234 {
		t.Errorf("resolved suggestion = %+v", sug)
	}

	if _, found, _ := box.Resolve("g1", "missing", SuggestionDenied); found {
		t.Error("Resolve() should not find unknown ids")
	}
}

func TestTempVoiceReleaseOnce(t *testing.T) {
	dir := NewTempVoiceDir(newTestStore(t))

	if err := dir.Track("c1", "g1", "u1"); err != nil {
		t.Fatalf("Track() returned error: %v", err)
	}
	if !dir.IsTemp("c1") {
		t.Error("IsTemp() should be true for a tracked channel")
	}

	// Racing leave events: exactly one handler wins the claim.
	const racers = 8
	var wg sync.WaitGroup
	wins := make(chan struct{}, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if claimed, err := dir.Release("c1"); err == nil && claimed {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	if got := len(wins); got != 1 {
		t.Errorf("%d releases claimed the channel, want exactly 1", got)
	}
	if dir.IsTemp("c1") {
		t.Error("IsTemp() should be false after release")
	}
}

func TestTicketCloseOnce(t *testing.T) {
	desk := NewTicketDesk(newTestStore(t))

	if err := desk.Open("g1", "c1", "u1"); err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if !desk.IsTicket("g1", "c1") {
		t.Error("IsTicket() should be true for an open ticket")
	}
	if got := desk.Count("g1"); got != 1 {
		t.Errorf("Count() = %v, want 1", got)
	}

	claimed, err := desk.Close("g1", "c1")
	if err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if !claimed {
		t.Error("first Close() should claim the ticket")
	}

	claimed, err = desk.Close("g1", "c1")
	if err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if claimed {
		t.Error("second Close() must not claim again")
	}
}
