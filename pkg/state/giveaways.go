package state

import (
	"sort"
	"time"

	"github.com/ANN7660/hoshimi/pkg/scheduler"
)

// KindGiveaway is the scheduler kind for giveaways.
const KindGiveaway = "giveaway"

// GiveawayBook holds the active giveaways, keyed by the message users
// react to. It implements scheduler.Source: claiming a giveaway removes
// it from the active set in the same locked step, which is what makes
// the winner draw fire exactly once even when the poll loop and a
// manual /giveaway end race.
type GiveawayBook struct {
	store *Store
}

// NewGiveawayBook creates a book over the given store.
func NewGiveawayBook(store *Store) *GiveawayBook {
	return &GiveawayBook{store: store}
}

// Create inserts a giveaway into the active set and persists it.
func (b *GiveawayBook) Create(g *Giveaway) error {
	return b.store.Update(func(d *Document) error {
		cp := *g
		cp.Entrants = append([]string(nil), g.Entrants...)
		d.Giveaways[g.MessageID] = &cp
		return nil
	})
}

// Get returns a copy of an active giveaway.
func (b *GiveawayBook) Get(messageID string) (Giveaway, bool) {
	var out Giveaway
	found := false
	b.store.View(func(d *Document) {
		if g, ok := d.Giveaways[messageID]; ok {
			out = *g
			out.Entrants = append([]string(nil), g.Entrants...)
			found = true
		}
	})
	return out, found
}

// AddEntrant records a participant. Unknown giveaways and duplicate
// entries are no-ops.
func (b *GiveawayBook) AddEntrant(messageID, userID string) error {
	return b.store.Update(func(d *Document) error {
		g, ok := d.Giveaways[messageID]
		if !ok {
			return nil
		}
		for _, id := range g.Entrants {
			if id == userID {
				return nil
			}
		}
		g.Entrants = append(g.Entrants, userID)
		return nil
	})
}

// RemoveEntrant drops a participant who removed their reaction.
func (b *GiveawayBook) RemoveEntrant(messageID, userID string) error {
	return b.store.Update(func(d *Document) error {
		g, ok := d.Giveaways[messageID]
		if !ok {
			return nil
		}
		for i, id := range g.Entrants {
			if id == userID {
				g.Entrants = append(g.Entrants[:i], g.Entrants[i+1:]...)
				break
			}
		}
		return nil
	})
}

// ClaimDue removes and returns every giveaway due at now, oldest
// deadline first.
func (b *GiveawayBook) ClaimDue(now time.Time) ([]scheduler.Entity, error) {
	var due []scheduler.Entity
	err := b.store.Update(func(d *Document) error {
		for id, g := range d.Giveaways {
			if g.EndsAt <= now.Unix() {
				due = append(due, giveawayEntity(g))
				delete(d.Giveaways, id)
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

// Claim removes and returns one giveaway regardless of its deadline.
func (b *GiveawayBook) Claim(messageID string) (scheduler.Entity, bool, error) {
	var e scheduler.Entity
	found := false
	err := b.store.Update(func(d *Document) error {
		if g, ok := d.Giveaways[messageID]; ok {
			e = giveawayEntity(g)
			delete(d.Giveaways, messageID)
			found = true
		}
		return nil
	})
	return e, found, err
}

// Cancel removes a giveaway without drawing a winner.
func (b *GiveawayBook) Cancel(messageID string) (bool, error) {
	found := false
	err := b.store.Update(func(d *Document) error {
		if _, ok := d.Giveaways[messageID]; ok {
			delete(d.Giveaways, messageID)
			found = true
		}
		return nil
	})
	return found, err
}

func giveawayEntity(g *Giveaway) scheduler.Entity {
	cp := *g
	cp.Entrants = append([]string(nil), g.Entrants...)
	return scheduler.Entity{
		Kind:      KindGiveaway,
		ID:        g.MessageID,
		GuildID:   g.GuildID,
		ExpiresAt: time.Unix(g.EndsAt, 0),
		Payload:   cp,
	}
}
