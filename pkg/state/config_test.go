package state

import "testing"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(&memBackend{})
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	return store
}

func TestConfigDefaultOnMissing(t *testing.T) {
	reg := NewGuildConfigRegistry(newTestStore(t))

	if got := reg.GetString("g1", "welcome_channel", "fallback"); got != "fallback" {
		t.Errorf("GetString on missing key = %v, want %v", got, "fallback")
	}
	if got := reg.GetBool("g1", "level_system_enabled", true); got != true {
		t.Errorf("GetBool on missing key = %v, want true", got)
	}
	if got := reg.GetInt("g1", "threshold", 7); got != 7 {
		t.Errorf("GetInt on missing key = %v, want 7", got)
	}
}

func TestConfigSetGet(t *testing.T) {
	reg := NewGuildConfigRegistry(newTestStore(t))

	if err := reg.Set("g1", "welcome_channel", "123"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if err := reg.Set("g1", "level_system_enabled", true); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	if got := reg.GetString("g1", "welcome_channel", ""); got != "123" {
		t.Errorf("GetString = %v, want %v", got, "123")
	}
	if !reg.GetBool("g1", "level_system_enabled", false) {
		t.Error("GetBool should return the stored true")
	}

	// Another guild stays isolated.
	if got := reg.GetString("g2", "welcome_channel", ""); got != "" {
		t.Errorf("GetString for other guild = %v, want empty", got)
	}
}

func TestConfigGetIntAcceptsReloadedFloats(t *testing.T) {
	store := newTestStore(t)
	reg := NewGuildConfigRegistry(store)

	// JSON round-trips numbers as float64.
	if err := store.Update(func(d *Document) error {
		d.Config["g1"] = map[string]any{"threshold": float64(5)}
		return nil
	}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	if got := reg.GetInt("g1", "threshold", 0); got != 5 {
		t.Errorf("GetInt = %v, want 5", got)
	}
}

func TestConfigUnset(t *testing.T) {
	reg := NewGuildConfigRegistry(newTestStore(t))

	if err := reg.Set("g1", "logs_channel", "42"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if err := reg.Unset("g1", "logs_channel"); err != nil {
		t.Fatalf("Unset() returned error: %v", err)
	}
	if got := reg.GetString("g1", "logs_channel", "gone"); got != "gone" {
		t.Errorf("GetString after Unset = %v, want %v", got, "gone")
	}

	// Unsetting something absent is fine.
	if err := reg.Unset("g9", "never_set"); err != nil {
		t.Errorf("Unset() on absent key returned error: %v", err)
	}
}

func TestConfigSnapshotIsACopy(t *testing.T) {
	reg := NewGuildConfigRegistry(newTestStore(t))

	if err := reg.Set("g1", "a", "1"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	snap := reg.Snapshot("g1")
	snap["a"] = "mutated"

	if got := reg.GetString("g1", "a", ""); got != "1" {
		t.Errorf("mutating a snapshot changed the store: got %v, want 1", got)
	}
}
