package state

import (
	"sync"
	"testing"
	"time"
)

func testGiveaway(messageID string, endsAt int64) *Giveaway {
	return &Giveaway{
		MessageID: messageID,
		GuildID:   "g1",
		ChannelID: "c1",
		Prize:     "nitro",
		EndsAt:    endsAt,
	}
}

func TestGiveawayCreateGet(t *testing.T) {
	book := NewGiveawayBook(newTestStore(t))

	if err := book.Create(testGiveaway("m1", 100)); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	g, found := book.Get("m1")
	if !found {
		t.Fatal("Get() should find the created giveaway")
	}
	if g.Prize != "nitro" || g.EndsAt != 100 {
		t.Errorf("Get() = %+v, want prize nitro ending at 100", g)
	}

	// The returned copy must not alias the stored entrants.
	g.Entrants = append(g.Entrants, "intruder")
	if stored, _ := book.Get("m1"); len(stored.Entrants) != 0 {
		t.Error("mutating a returned giveaway changed the store")
	}
}

func TestGiveawayEntrants(t *testing.T) {
	book := NewGiveawayBook(newTestStore(t))

	if err := book.Create(testGiveaway("m1", 100)); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := book.AddEntrant("m1", "u1"); err != nil {
			t.Fatalf("AddEntrant() returned error: %v", err)
		}
	}
	if err := book.AddEntrant("m1", "u2"); err != nil {
		t.Fatalf("AddEntrant() returned error: %v", err)
	}

	g, _ := book.Get("m1")
	if len(g.Entrants) != 2 {
		t.Errorf("entrants = %v, want the 2 distinct users", g.Entrants)
	}

	if err := book.RemoveEntrant("m1", "u1"); err != nil {
		t.Fatalf("RemoveEntrant() returned error: %v", err)
	}
	g, _ = book.Get("m1")
	if len(g.Entrants) != 1 || g.Entrants[0] != "u2" {
		t.Errorf("entrants after removal = %v, want [u2]", g.Entrants)
	}

	// Unknown giveaways are a no-op.
	if err := book.AddEntrant("unknown", "u1"); err != nil {
		t.Errorf("AddEntrant() on unknown giveaway returned error: %v", err)
	}
}

func TestGiveawayClaimDue(t *testing.T) {
	book := NewGiveawayBook(newTestStore(t))

	for _, g := range []*Giveaway{
		testGiveaway("late", 300),
		testGiveaway("early", 100),
		testGiveaway("future", 900),
	} {
		if err := book.Create(g); err != nil {
			t.Fatalf("Create() returned error: %v", err)
		}
	}

	due, err := book.ClaimDue(time.Unix(500, 0))
	if err != nil {
		t.Fatalf("ClaimDue() returned error: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("ClaimDue() returned %d entities, want 2", len(due))
	}
	if due[0].ID != "early" || due[1].ID != "late" {
		t.Errorf("ClaimDue() order = %s, %s, want early, late", due[0].ID, due[1].ID)
	}

	// Claimed giveaways are gone; the future one remains.
	if _, found := book.Get("early"); found {
		t.Error("claimed giveaway should be removed")
	}
	if _, found := book.Get("future"); !found {
		t.Error("undue giveaway should remain")
	}

	// A second poll finds nothing.
	due, err = book.ClaimDue(time.Unix(500, 0))
	if err != nil {
		t.Fatalf("ClaimDue() returned error: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("second ClaimDue() returned %d entities, want 0", len(due))
	}
}

func TestGiveawayClaimOnce(t *testing.T) {
	book := NewGiveawayBook(newTestStore(t))

	if err := book.Create(testGiveaway("m1", 100)); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	e, found, err := book.Claim("m1")
	if err != nil {
		t.Fatalf("Claim() returned error: %v", err)
	}
	if !found || e.ID != "m1" {
		t.Fatalf("Claim() = %v %v, want the giveaway", e.ID, found)
	}

	if _, found, _ := book.Claim("m1"); found {
		t.Error("a giveaway must not be claimable twice")
	}
}

func TestGiveawayConcurrentClaims(t *testing.T) {
	book := NewGiveawayBook(newTestStore(t))

	if err := book.Create(testGiveaway("m1", 100)); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	const claimers = 8
	var wg sync.WaitGroup
	wins := make(chan string, claimers)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, found, err := book.Claim("m1"); err == nil && found {
				wins <- "claimed"
			}
		}()
	}
	wg.Wait()
	close(wins)

	if got := len(wins); got != 1 {
		t.Errorf("%d claimers succeeded, want exactly 1", got)
	}
}

func TestGiveawayCancel(t *testing.T) {
	book := NewGiveawayBook(newTestStore(t))

	if err := book.Create(testGiveaway("m1", 100)); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	found, err := book.Cancel("m1")
	if err != nil {
		t.Fatalf("Cancel() returned error: %v", err)
	}
	if !found {
		t.Error("Cancel() should report the giveaway existed")
	}

	if due, _ := book.ClaimDue(time.Unix(1000, 0)); len(due) != 0 {
		t.Error("a cancelled giveaway must never come due")
	}
}
