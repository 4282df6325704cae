package state

import "time"

// ModerationLedger records warnings per user per guild. The record is
// append-only: the warning count only ever grows until an explicit
// clear. Kicks and bans are plain gateway calls and are not recorded
// here.
type ModerationLedger struct {
	store *Store
	now   func() time.Time
}

// NewModerationLedger creates a ledger over the given store.
func NewModerationLedger(store *Store) *ModerationLedger {
	return &ModerationLedger{store: store, now: time.Now}
}

// AddWarning appends a warning and returns the user's new total.
func (l *ModerationLedger) AddWarning(guildID, userID, reason, moderatorID string) (int, error) {
	count := 0
	err := l.store.Update(func(d *Document) error {
		guild, ok := d.Warnings[guildID]
		if !ok {
			guild = make(map[string][]Warning)
			d.Warnings[guildID] = guild
		}
		guild[userID] = append(guild[userID], Warning{
			Reason:    reason,
			Moderator: moderatorID,
			IssuedAt:  l.now().Unix(),
		})
		count = len(guild[userID])
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Warnings returns a user's warnings in the order they were issued,
// oldest first. A user without warnings yields an empty slice.
func (l *ModerationLedger) Warnings(guildID, userID string) []Warning {
	var out []Warning
	l.store.View(func(d *Document) {
		warns := d.Warnings[guildID][userID]
		out = make([]Warning, len(warns))
		copy(out, warns)
	})
	return out
}

// ClearWarnings removes all warnings for a user. Clearing a user with
// no warnings is a no-op, not an error.
func (l *ModerationLedger) ClearWarnings(guildID, userID string) error {
	return l.store.Update(func(d *Document) error {
		if guild, ok := d.Warnings[guildID]; ok {
			delete(guild, userID)
		}
		return nil
	})
}
