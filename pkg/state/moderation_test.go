package state

import (
	"testing"
	"time"
)

func TestAddWarningCounts(t *testing.T) {
	led := NewModerationLedger(newTestStore(t))

	for i, reason := range []string{"spam", "flood", "insulte"} {
		count, err := led.AddWarning("g1", "u1", reason, "mod1")
		if err != nil {
			t.Fatalf("AddWarning() returned error: %v", err)
		}
		if count != i+1 {
			t.Errorf("AddWarning() count = %v, want %v", count, i+1)
		}
	}
}

func TestWarningsOrderedOldestFirst(t *testing.T) {
	led := NewModerationLedger(newTestStore(t))

	tick := time.Unix(1000, 0)
	led.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	reasons := []string{"premier", "deuxième", "troisième"}
	for _, r := range reasons {
		if _, err := led.AddWarning("g1", "u1", r, "mod1"); err != nil {
			t.Fatalf("AddWarning() returned error: %v", err)
		}
	}

	warns := led.Warnings("g1", "u1")
	if len(warns) != 3 {
		t.Fatalf("Warnings() length = %v, want 3", len(warns))
	}
	for i, r := range reasons {
		if warns[i].Reason != r {
			t.Errorf("Warnings()[%d].Reason = %v, want %v", i, warns[i].Reason, r)
		}
	}
	if !(warns[0].IssuedAt < warns[1].IssuedAt && warns[1].IssuedAt < warns[2].IssuedAt) {
		t.Error("warnings should be ordered oldest first")
	}
}

func TestClearWarnings(t *testing.T) {
	led := NewModerationLedger(newTestStore(t))

	if _, err := led.AddWarning("g1", "u1", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}
	if err := led.ClearWarnings("g1", "u1"); err != nil {
		t.Fatalf("ClearWarnings() returned error: %v", err)
	}
	if got := len(led.Warnings("g1", "u1")); got != 0 {
		t.Errorf("Warnings() after clear = %v entries, want 0", got)
	}

	// Clearing again is a no-op.
	if err := led.ClearWarnings("g1", "u1"); err != nil {
		t.Errorf("ClearWarnings() on clean user returned error: %v", err)
	}
}

func TestWarningsIsolatedPerGuild(t *testing.T) {
	led := NewModerationLedger(newTestStore(t))

	if _, err := led.AddWarning("g1", "u1", "spam", "mod1"); err != nil {
		t.Fatalf("AddWarning() returned error: %v", err)
	}

	if got := len(led.Warnings("g2", "u1")); got != 0 {
		t.Errorf("warnings leaked across guilds: got %v, want 0", got)
	}
}
