package state

// ReactionRoleMap binds (message, emoji) pairs to roles within a guild.
// A pair maps to at most one role; binding an already-bound pair
// replaces the previous role.
type ReactionRoleMap struct {
	store *Store
}

// NewReactionRoleMap creates a map over the given store.
func NewReactionRoleMap(store *Store) *ReactionRoleMap {
	return &ReactionRoleMap{store: store}
}

// Bind associates an emoji on a message with a role.
func (m *ReactionRoleMap) Bind(guildID, messageID, emoji, roleID string) error {
	return m.store.Update(func(d *Document) error {
		guild, ok := d.ReactionRoles[guildID]
		if !ok {
			guild = make(map[string]map[string]string)
			d.ReactionRoles[guildID] = guild
		}
		msg, ok := guild[messageID]
		if !ok {
			msg = make(map[string]string)
			guild[messageID] = msg
		}
		msg[emoji] = roleID
		return nil
	})
}

// Role returns the role bound to an emoji on a message.
func (m *ReactionRoleMap) Role(guildID, messageID, emoji string) (string, bool) {
	var roleID string
	found := false
	m.store.View(func(d *Document) {
		roleID, found = d.ReactionRoles[guildID][messageID][emoji]
	})
	return roleID, found
}

// Unbind removes a binding. Unbinding an absent pair is a no-op.
func (m *ReactionRoleMap) Unbind(guildID, messageID, emoji string) error {
	return m.store.Update(func(d *Document) error {
		if msg, ok := d.ReactionRoles[guildID][messageID]; ok {
			delete(msg, emoji)
			if len(msg) == 0 {
				delete(d.ReactionRoles[guildID], messageID)
			}
		}
		return nil
	})
}
