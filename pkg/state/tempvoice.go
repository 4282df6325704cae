package state

// TempVoiceDir tracks temporary voice channels. Unlike giveaways and
// mutes these have no deadline: they are torn down reactively when
// their last member leaves. Release carries the same claim-and-remove
// contract, so only one event handler ever deletes the channel.
type TempVoiceDir struct {
	store *Store
}

// NewTempVoiceDir creates a directory over the given store.
func NewTempVoiceDir(store *Store) *TempVoiceDir {
	return &TempVoiceDir{store: store}
}

// Track registers a freshly created temporary channel.
func (t *TempVoiceDir) Track(channelID, guildID, ownerID string) error {
	return t.store.Update(func(d *Document) error {
		d.TempVocs[channelID] = &TempVoice{GuildID: guildID, OwnerID: ownerID}
		return nil
	})
}

// IsTemp reports whether a channel is a tracked temporary channel.
func (t *TempVoiceDir) IsTemp(channelID string) bool {
	found := false
	t.store.View(func(d *Document) {
		_, found = d.TempVocs[channelID]
	})
	return found
}

// Release removes a channel from tracking, reporting whether this call
// was the one that removed it. Callers only delete the Discord channel
// when Release returns true.
func (t *TempVoiceDir) Release(channelID string) (bool, error) {
	claimed := false
	err := t.store.Update(func(d *Document) error {
		if _, ok := d.TempVocs[channelID]; ok {
			delete(d.TempVocs, channelID)
			claimed = true
		}
		return nil
	})
	return claimed, err
}
