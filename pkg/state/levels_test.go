package state

import "testing"

func TestAddMessageXPLevelUp(t *testing.T) {
	board := NewLevelBoard(newTestStore(t))

	// Level 1 needs 100 XP.
	leveledUp, level, err := board.AddMessageXP("g1", "u1", 60)
	if err != nil {
		t.Fatalf("AddMessageXP() returned error: %v", err)
	}
	if leveledUp || level != 1 {
		t.Errorf("after 60 XP: leveledUp=%v level=%v, want false 1", leveledUp, level)
	}

	leveledUp, level, err = board.AddMessageXP("g1", "u1", 50)
	if err != nil {
		t.Fatalf("AddMessageXP() returned error: %v", err)
	}
	if !leveledUp || level != 2 {
		t.Errorf("after 110 XP: leveledUp=%v level=%v, want true 2", leveledUp, level)
	}

	// The level-up resets the XP counter.
	p := board.Profile("g1", "u1")
	if p.XP != 0 || p.Level != 2 || p.Messages != 2 {
		t.Errorf("profile = %+v, want XP 0, level 2, 2 messages", p)
	}
}

func TestProfileUnknownUser(t *testing.T) {
	board := NewLevelBoard(newTestStore(t))

	p := board.Profile("g1", "nobody")
	if p.Level != 1 || p.XP != 0 {
		t.Errorf("Profile() for unknown user = %+v, want fresh level 1", p)
	}
}

func TestTopOrdering(t *testing.T) {
	store := newTestStore(t)
	board := NewLevelBoard(store)

	if err := store.Update(func(d *Document) error {
		d.Levels["g1"] = map[string]*LevelProfile{
			"low":      {Level: 2, XP: 10},
			"high":     {Level: 5, XP: 0},
			"mid":      {Level: 2, XP: 90},
			"baseline": {Level: 1, XP: 50},
		}
		return nil
	}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	top := board.Top("g1", 3)
	if len(top) != 3 {
		t.Fatalf("Top(3) returned %d profiles, want 3", len(top))
	}

	want := []string{"high", "mid", "low"}
	for i, userID := range want {
		if top[i].UserID != userID {
			t.Errorf("Top()[%d] = %v, want %v", i, top[i].UserID, userID)
		}
	}
}

func TestSetLevelAndXP(t *testing.T) {
	board := NewLevelBoard(newTestStore(t))

	if err := board.SetLevel("g1", "u1", 10); err != nil {
		t.Fatalf("SetLevel() returned error: %v", err)
	}
	if err := board.SetXP("g1", "u1", 42); err != nil {
		t.Fatalf("SetXP() returned error: %v", err)
	}

	p := board.Profile("g1", "u1")
	if p.Level != 10 || p.XP != 42 {
		t.Errorf("profile = %+v, want level 10 with 42 XP", p)
	}
}
