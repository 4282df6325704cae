package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// memBackend is an in-memory Backend with optional save failure, used
// to test the persistence contract without touching the disk.
type memBackend struct {
	data     []byte
	failSave bool
}

func (b *memBackend) Load() ([]byte, error) {
	return b.data, nil
}

func (b *memBackend) Save(data []byte) error {
	if b.failSave {
		return errors.New("backend unavailable")
	}
	b.data = append([]byte(nil), data...)
	return nil
}

func TestOpenFreshDocument(t *testing.T) {
	store, err := Open(&memBackend{})
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	store.View(func(d *Document) {
		if d.Config == nil || d.Warnings == nil || d.Economy == nil ||
			d.Giveaways == nil || d.TimedMutes == nil || d.TempVocs == nil {
			t.Error("fresh document should have every category initialized")
		}
	})
}

func TestOpenCorruptData(t *testing.T) {
	store, err := Open(&memBackend{data: []byte("{not json")})
	if err != nil {
		t.Fatalf("Open() should not fail on corrupt data, got: %v", err)
	}

	store.View(func(d *Document) {
		if len(d.Config) != 0 {
			t.Error("corrupt data should yield a fresh document")
		}
	})
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	backend := NewFileBackend(path)

	store, err := Open(backend)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	err = store.Update(func(d *Document) error {
		d.Config["g1"] = map[string]any{"welcome_channel": "123"}
		d.Warnings["g1"] = map[string][]Warning{
			"u1": {{Reason: "spam", Moderator: "m1", IssuedAt: 42}},
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Update() should have written the data file: %v", err)
	}

	reopened, err := Open(NewFileBackend(path))
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}

	reopened.View(func(d *Document) {
		if got := d.Config["g1"]["welcome_channel"]; got != "123" {
			t.Errorf("welcome_channel = %v, want %v", got, "123")
		}
		warns := d.Warnings["g1"]["u1"]
		if len(warns) != 1 || warns[0].Reason != "spam" {
			t.Errorf("warnings after reload = %+v, want one spam warning", warns)
		}
	})
}

func TestUpdateRollbackOnSaveFailure(t *testing.T) {
	backend := &memBackend{}
	store, err := Open(backend)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	backend.failSave = true
	err = store.Update(func(d *Document) error {
		d.PremiumUsers["g1"] = map[string]bool{"u1": true}
		return nil
	})
	if err == nil {
		t.Fatal("Update() should fail when the backend cannot save")
	}

	store.View(func(d *Document) {
		if len(d.PremiumUsers) != 0 {
			t.Error("failed save should roll the in-memory mutation back")
		}
	})
}

func TestUpdateRollbackOnFnError(t *testing.T) {
	store, err := Open(&memBackend{})
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	wantErr := errors.New("declined")
	err = store.Update(func(d *Document) error {
		d.Badges["g1"] = map[string][]string{"u1": {"fleur"}}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Update() error = %v, want %v", err, wantErr)
	}

	store.View(func(d *Document) {
		if len(d.Badges) != 0 {
			t.Error("a declined update should leave the document untouched")
		}
	})
}

func TestFlushPersistsCurrentState(t *testing.T) {
	backend := &memBackend{}
	store, err := Open(backend)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	if err := store.Flush(); err != nil {
		t.Fatalf("Flush() returned error: %v", err)
	}
	if len(backend.data) == 0 {
		t.Error("Flush() should write the document to the backend")
	}
}
