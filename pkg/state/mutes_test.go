package state

import (
	"testing"
	"time"
)

func TestMuteCreateFind(t *testing.T) {
	book := NewMuteBook(newTestStore(t))

	id, err := book.Create("g1", "u1", "r1", time.Unix(500, 0))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if id == "" {
		t.Fatal("Create() should return an id")
	}

	m, found := book.Find("g1", "u1")
	if !found {
		t.Fatal("Find() should see the pending mute")
	}
	if m.ID != id || m.RoleID != "r1" || m.ExpiresAt != 500 {
		t.Errorf("Find() = %+v", m)
	}

	if _, found := book.Find("g1", "someone_else"); found {
		t.Error("Find() should not match other users")
	}
}

func TestMuteClaimDue(t *testing.T) {
	book := NewMuteBook(newTestStore(t))

	early, err := book.Create("g1", "u1", "r1", time.Unix(100, 0))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if _, err := book.Create("g1", "u2", "r1", time.Unix(900, 0)); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	due, err := book.ClaimDue(time.Unix(500, 0))
	if err != nil {
		t.Fatalf("ClaimDue() returned error: %v", err)
	}
	if len(due) != 1 || due[0].ID != early {
		t.Fatalf("ClaimDue() = %+v, want only the early mute", due)
	}

	payload, ok := due[0].Payload.(TimedMute)
	if !ok || payload.UserID != "u1" {
		t.Errorf("payload = %+v, want the u1 mute", due[0].Payload)
	}

	// The due mute is gone, the future one still pending.
	if _, found := book.Find("g1", "u1"); found {
		t.Error("claimed mute should be removed")
	}
	if _, found := book.Find("g1", "u2"); !found {
		t.Error("future mute should remain")
	}
}

func TestMuteManualClaimBeatsPoll(t *testing.T) {
	book := NewMuteBook(newTestStore(t))

	id, err := book.Create("g1", "u1", "r1", time.Unix(100, 0))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	// Manual unmute claims first.
	if _, found, err := book.Claim(id); err != nil || !found {
		t.Fatalf("Claim() = %v %v, want found", found, err)
	}

	// The poll loop afterwards finds nothing to fire.
	due, err := book.ClaimDue(time.Unix(200, 0))
	if err != nil {
		t.Fatalf("ClaimDue() returned error: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("ClaimDue() after manual claim = %d entities, want 0", len(due))
	}
}

func TestMuteCancel(t *testing.T) {
	book := NewMuteBook(newTestStore(t))

	id, err := book.Create("g1", "u1", "r1", time.Unix(100, 0))
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	found, err := book.Cancel(id)
	if err != nil {
		t.Fatalf("Cancel() returned error: %v", err)
	}
	if !found {
		t.Error("Cancel() should report the mute existed")
	}
	if found, _ = book.Cancel(id); found {
		t.Error("Cancel() twice should report absent")
	}
}
