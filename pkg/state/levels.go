package state

import "sort"

// LevelBoard tracks message activity per user per guild. The curve is
// the bot's historical one: a message is worth 10-20 XP (the caller
// rolls the amount), a level-up happens at level*100 XP and resets the
// XP counter.
type LevelBoard struct {
	store *Store
}

// RankedProfile is a leaderboard entry.
type RankedProfile struct {
	UserID string
	LevelProfile
}

// NewLevelBoard creates a board over the given store.
func NewLevelBoard(store *Store) *LevelBoard {
	return &LevelBoard{store: store}
}

// AddMessageXP credits xp for one message and reports whether the user
// leveled up, together with their level after the call.
func (b *LevelBoard) AddMessageXP(guildID, userID string, xp int64) (leveledUp bool, level int64, err error) {
	err = b.store.Update(func(d *Document) error {
		guild, ok := d.Levels[guildID]
		if !ok {
			guild = make(map[string]*LevelProfile)
			d.Levels[guildID] = guild
		}
		p, ok := guild[userID]
		if !ok {
			p = &LevelProfile{Level: 1}
			guild[userID] = p
		}
		p.XP += xp
		p.Messages++
		if p.XP >= p.Level*100 {
			p.Level++
			p.XP = 0
			leveledUp = true
		}
		level = p.Level
		return nil
	})
	return leveledUp, level, err
}

// Profile returns a user's level profile, a fresh level-1 profile for
// unknown users.
func (b *LevelBoard) Profile(guildID, userID string) LevelProfile {
	out := LevelProfile{Level: 1}
	b.store.View(func(d *Document) {
		if p := d.Levels[guildID][userID]; p != nil {
			out = *p
		}
	})
	return out
}

// SetXP overwrites a user's XP (admin command).
func (b *LevelBoard) SetXP(guildID, userID string, xp int64) error {
	return b.store.Update(func(d *Document) error {
		ensureProfile(d, guildID, userID).XP = xp
		return nil
	})
}

// SetLevel overwrites a user's level (admin command).
func (b *LevelBoard) SetLevel(guildID, userID string, level int64) error {
	return b.store.Update(func(d *Document) error {
		ensureProfile(d, guildID, userID).Level = level
		return nil
	})
}

// Top returns the guild's best profiles, highest level first, XP as the
// tie breaker.
func (b *LevelBoard) Top(guildID string, n int) []RankedProfile {
	var out []RankedProfile
	b.store.View(func(d *Document) {
		for userID, p := range d.Levels[guildID] {
			out = append(out, RankedProfile{UserID: userID, LevelProfile: *p})
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].XP > out[j].XP
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func ensureProfile(d *Document, guildID, userID string) *LevelProfile {
	guild, ok := d.Levels[guildID]
	if !ok {
		guild = make(map[string]*LevelProfile)
		d.Levels[guildID] = guild
	}
	p, ok := guild[userID]
	if !ok {
		p = &LevelProfile{Level: 1}
		guild[userID] = p
	}
	return p
}
