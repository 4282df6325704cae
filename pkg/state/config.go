package state

// GuildConfigRegistry is the typed accessor over the "config" category:
// per-guild settings such as channel ids, feature toggles and lists.
// Reads never fail; a missing guild or key yields the caller's default.
// The registry deliberately does not validate value types, config keys
// are open-ended and feature handlers own their own types.
type GuildConfigRegistry struct {
	store *Store
}

// NewGuildConfigRegistry creates a registry over the given store.
func NewGuildConfigRegistry(store *Store) *GuildConfigRegistry {
	return &GuildConfigRegistry{store: store}
}

// Get returns the raw value for a setting, or def when the guild or key
// was never written.
func (r *GuildConfigRegistry) Get(guildID, key string, def any) any {
	value := def
	r.store.View(func(d *Document) {
		if guild, ok := d.Config[guildID]; ok {
			if v, ok := guild[key]; ok {
				value = v
			}
		}
	})
	return value
}

// GetString returns a string setting. Non-string values fall back to def.
func (r *GuildConfigRegistry) GetString(guildID, key, def string) string {
	if v, ok := r.Get(guildID, key, nil).(string); ok {
		return v
	}
	return def
}

// GetBool returns a boolean setting. Non-bool values fall back to def.
func (r *GuildConfigRegistry) GetBool(guildID, key string, def bool) bool {
	if v, ok := r.Get(guildID, key, nil).(bool); ok {
		return v
	}
	return def
}

// GetInt returns an integer setting. JSON round-trips numbers as
// float64, so both in-memory and reloaded values are accepted.
func (r *GuildConfigRegistry) GetInt(guildID, key string, def int64) int64 {
	switch v := r.Get(guildID, key, nil).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return def
	}
}

// GetStringList returns a list setting. Reloaded documents hold lists as
// []any, freshly-set ones as []string; both are accepted.
func (r *GuildConfigRegistry) GetStringList(guildID, key string) []string {
	switch v := r.Get(guildID, key, nil).(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Set writes a setting, creating the guild's config on first write, and
// persists before returning.
func (r *GuildConfigRegistry) Set(guildID, key string, value any) error {
	return r.store.Update(func(d *Document) error {
		guild, ok := d.Config[guildID]
		if !ok {
			guild = make(map[string]any)
			d.Config[guildID] = guild
		}
		guild[key] = value
		return nil
	})
}

// Unset removes a setting. Removing an absent setting is a no-op.
func (r *GuildConfigRegistry) Unset(guildID, key string) error {
	return r.store.Update(func(d *Document) error {
		if guild, ok := d.Config[guildID]; ok {
			delete(guild, key)
		}
		return nil
	})
}

// Snapshot returns a copy of all settings for a guild.
func (r *GuildConfigRegistry) Snapshot(guildID string) map[string]any {
	out := make(map[string]any)
	r.store.View(func(d *Document) {
		for k, v := range d.Config[guildID] {
			out[k] = v
		}
	})
	return out
}
