package state

import (
	"sort"
	"time"

	"github.com/ANN7660/hoshimi/pkg/scheduler"
	"github.com/google/uuid"
)

// KindMute is the scheduler kind for timed mutes.
const KindMute = "mute"

// MuteBook holds pending automatic unmutes. The original bot slept on a
// goroutine-equivalent until the mute ran out, losing the unmute on
// every restart; persisting the deadline here lets the scheduler pick
// pending unmutes back up after a crash.
type MuteBook struct {
	store *Store
}

// NewMuteBook creates a book over the given store.
func NewMuteBook(store *Store) *MuteBook {
	return &MuteBook{store: store}
}

// Create schedules an automatic unmute and returns its id.
func (b *MuteBook) Create(guildID, userID, roleID string, expiresAt time.Time) (string, error) {
	id := uuid.NewString()
	err := b.store.Update(func(d *Document) error {
		d.TimedMutes[id] = &TimedMute{
			ID:        id,
			GuildID:   guildID,
			UserID:    userID,
			RoleID:    roleID,
			ExpiresAt: expiresAt.Unix(),
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Find returns the pending mute for a user, if any.
func (b *MuteBook) Find(guildID, userID string) (TimedMute, bool) {
	var out TimedMute
	found := false
	b.store.View(func(d *Document) {
		for _, m := range d.TimedMutes {
			if m.GuildID == guildID && m.UserID == userID {
				out = *m
				found = true
				return
			}
		}
	})
	return out, found
}

// ClaimDue removes and returns every mute due at now.
func (b *MuteBook) ClaimDue(now time.Time) ([]scheduler.Entity, error) {
	var due []scheduler.Entity
	err := b.store.Update(func(d *Document) error {
		for id, m := range d.TimedMutes {
			if m.ExpiresAt <= now.Unix() {
				due = append(due, muteEntity(m))
				delete(d.TimedMutes, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ExpiresAt.Before(due[j].ExpiresAt) })
	return due, nil
}

// Claim removes and returns one mute regardless of its deadline. Used
// by manual unmute so the poll loop cannot unmute a second time.
func (b *MuteBook) Claim(id string) (scheduler.Entity, bool, error) {
	var e scheduler.Entity
	found := false
	err := b.store.Update(func(d *Document) error {
		if m, ok := d.TimedMutes[id]; ok {
			e = muteEntity(m)
			delete(d.TimedMutes, id)
			found = true
		}
		return nil
	})
	return e, found, err
}

// Cancel removes a pending mute without unmuting.
func (b *MuteBook) Cancel(id string) (bool, error) {
	found := false
	err := b.store.Update(func(d *Document) error {
		if _, ok := d.TimedMutes[id]; ok {
			delete(d.TimedMutes, id)
			found = true
		}
		return nil
	})
	return found, err
}

func muteEntity(m *TimedMute) scheduler.Entity {
	return scheduler.Entity{
		Kind:      KindMute,
		ID:        m.ID,
		GuildID:   m.GuildID,
		ExpiresAt: time.Unix(m.ExpiresAt, 0),
		Payload:   *m,
	}
}
