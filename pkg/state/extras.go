package state

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PremiumList tracks per-guild premium users.
type PremiumList struct {
	store *Store
}

// NewPremiumList creates a list over the given store.
func NewPremiumList(store *Store) *PremiumList {
	return &PremiumList{store: store}
}

// Has reports whether a user has premium in a guild.
func (p *PremiumList) Has(guildID, userID string) bool {
	out := false
	p.store.View(func(d *Document) {
		out = d.PremiumUsers[guildID][userID]
	})
	return out
}

// Set grants or revokes premium for a user.
func (p *PremiumList) Set(guildID, userID string, premium bool) error {
	return p.store.Update(func(d *Document) error {
		guild, ok := d.PremiumUsers[guildID]
		if !ok {
			guild = make(map[string]bool)
			d.PremiumUsers[guildID] = guild
		}
		if premium {
			guild[userID] = true
		} else {
			delete(guild, userID)
		}
		return nil
	})
}

// AutoResponder holds per-guild trigger -> response pairs matched as
// case-insensitive substrings, first match wins.
type AutoResponder struct {
	store *Store
}

// NewAutoResponder creates a responder over the given store.
func NewAutoResponder(store *Store) *AutoResponder {
	return &AutoResponder{store: store}
}

// Add registers a trigger. An existing trigger is overwritten.
func (a *AutoResponder) Add(guildID, trigger, response string) error {
	return a.store.Update(func(d *Document) error {
		guild, ok := d.AutoResponses[guildID]
		if !ok {
			guild = make(map[string]string)
			d.AutoResponses[guildID] = guild
		}
		guild[trigger] = response
		return nil
	})
}

// Remove deletes a trigger, reporting whether it existed.
func (a *AutoResponder) Remove(guildID, trigger string) (bool, error) {
	found := false
	err := a.store.Update(func(d *Document) error {
		if guild, ok := d.AutoResponses[guildID]; ok {
			if _, ok := guild[trigger]; ok {
				delete(guild, trigger)
				found = true
			}
		}
		return nil
	})
	return found, err
}

// Triggers returns a copy of all trigger -> response pairs for a guild.
func (a *AutoResponder) Triggers(guildID string) map[string]string {
	out := make(map[string]string)
	a.store.View(func(d *Document) {
		for k, v := range d.AutoResponses[guildID] {
			out[k] = v
		}
	})
	return out
}

// Match returns the response for the first trigger contained in the
// message content, if any.
func (a *AutoResponder) Match(guildID, content string) (string, bool) {
	lowered := strings.ToLower(content)
	response := ""
	found := false
	a.store.View(func(d *Document) {
		for trigger, resp := range d.AutoResponses[guildID] {
			if strings.Contains(lowered, strings.ToLower(trigger)) {
				response = resp
				found = true
				return
			}
		}
	})
	return response, found
}

// LinkPolicy tracks the channels where posting links is allowed.
type LinkPolicy struct {
	store *Store
}

// NewLinkPolicy creates a policy over the given store.
func NewLinkPolicy(store *Store) *LinkPolicy {
	return &LinkPolicy{store: store}
}

// Allow marks a channel as link-friendly.
func (l *LinkPolicy) Allow(guildID, channelID string) error {
	return l.store.Update(func(d *Document) error {
		for _, id := range d.AllowedLinks[guildID] {
			if id == channelID {
				return nil
			}
		}
		d.AllowedLinks[guildID] = append(d.AllowedLinks[guildID], channelID)
		return nil
	})
}

// Disallow removes a channel from the allowed set.
func (l *LinkPolicy) Disallow(guildID, channelID string) error {
	return l.store.Update(func(d *Document) error {
		chans := d.AllowedLinks[guildID]
		for i, id := range chans {
			if id == channelID {
				d.AllowedLinks[guildID] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		return nil
	})
}

// HasRules reports whether the guild restricts links at all. A guild
// with no allowed channels configured lets links through everywhere.
func (l *LinkPolicy) HasRules(guildID string) bool {
	out := false
	l.store.View(func(d *Document) {
		out = len(d.AllowedLinks[guildID]) > 0
	})
	return out
}

// IsAllowed reports whether links may be posted in a channel.
func (l *LinkPolicy) IsAllowed(guildID, channelID string) bool {
	allowed := false
	l.store.View(func(d *Document) {
		for _, id := range d.AllowedLinks[guildID] {
			if id == channelID {
				allowed = true
				return
			}
		}
	})
	return allowed
}

// BadgeCase tracks decorative badges per user.
type BadgeCase struct {
	store *Store
}

// NewBadgeCase creates a case over the given store.
func NewBadgeCase(store *Store) *BadgeCase {
	return &BadgeCase{store: store}
}

// Grant gives a badge to a user. Duplicate grants are no-ops.
func (b *BadgeCase) Grant(guildID, userID, badge string) error {
	return b.store.Update(func(d *Document) error {
		guild, ok := d.Badges[guildID]
		if !ok {
			guild = make(map[string][]string)
			d.Badges[guildID] = guild
		}
		for _, owned := range guild[userID] {
			if owned == badge {
				return nil
			}
		}
		guild[userID] = append(guild[userID], badge)
		return nil
	})
}

// Badges returns a user's badges.
func (b *BadgeCase) Badges(guildID, userID string) []string {
	var out []string
	b.store.View(func(d *Document) {
		out = append([]string(nil), d.Badges[guildID][userID]...)
	})
	return out
}

// SuggestionBox collects user suggestions for moderator review.
type SuggestionBox struct {
	store *Store
	now   func() time.Time
}

// NewSuggestionBox creates a box over the given store.
func NewSuggestionBox(store *Store) *SuggestionBox {
	return &SuggestionBox{store: store, now: time.Now}
}

// Submit records a suggestion and returns its id.
func (s *SuggestionBox) Submit(guildID, authorID, text string) (string, error) {
	id := uuid.NewString()[:8]
	err := s.store.Update(func(d *Document) error {
		guild, ok := d.Suggestions[guildID]
		if !ok {
			guild = make(map[string]*Suggestion)
			d.Suggestions[guildID] = guild
		}
		guild[id] = &Suggestion{
			ID:        id,
			AuthorID:  authorID,
			Text:      text,
			Status:    SuggestionPending,
			CreatedAt: s.now().Unix(),
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Resolve marks a suggestion accepted or denied and returns a copy.
func (s *SuggestionBox) Resolve(guildID, id, status string) (Suggestion, bool, error) {
	var out Suggestion
	found := false
	err := s.store.Update(func(d *Document) error {
		if sug, ok := d.Suggestions[guildID][id]; ok {
			sug.Status = status
			out = *sug
			found = true
		}
		return nil
	})
	return out, found, err
}
