// Package state implements Hoshimi's persisted guild state: a single
// Document serialized as JSON, a Store that serializes every mutation
// through one lock and persists it before acknowledging, and typed
// accessors for each category of the Document.
package state

// Warning is a single moderation warning. Warnings are immutable once
// recorded; they are only ever appended or bulk-cleared per user.
type Warning struct {
	Reason    string `json:"reason"`
	Moderator string `json:"moderator"`
	IssuedAt  int64  `json:"issued_at"`
}

// EconomyAccount holds a user's balance within one guild.
// LastDaily is a Unix timestamp, zero when the daily was never claimed.
type EconomyAccount struct {
	Money     int64 `json:"money"`
	LastDaily int64 `json:"last_daily,omitempty"`
}

// Giveaway is an active giveaway, keyed in the Document by the id of the
// message users react to. Entrants are recorded as reactions arrive so
// the winner draw never needs a message fetch.
type Giveaway struct {
	MessageID string   `json:"message_id"`
	GuildID   string   `json:"guild"`
	ChannelID string   `json:"channel"`
	Prize     string   `json:"prize"`
	EndsAt    int64    `json:"end_time"`
	Entrants  []string `json:"entrants,omitempty"`
}

// TimedMute is a pending automatic unmute.
type TimedMute struct {
	ID        string `json:"id"`
	GuildID   string `json:"guild"`
	UserID    string `json:"user"`
	RoleID    string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// TempVoice is a temporary voice channel owned by the member who
// triggered its creation. Keyed by channel id.
type TempVoice struct {
	GuildID string `json:"guild"`
	OwnerID string `json:"owner"`
}

// Ticket is an open support ticket channel. Keyed by channel id within
// the guild.
type Ticket struct {
	OwnerID   string `json:"owner"`
	CreatedAt int64  `json:"created"`
}

// LevelProfile tracks a user's message activity within one guild.
type LevelProfile struct {
	XP       int64 `json:"xp"`
	Level    int64 `json:"level"`
	Messages int64 `json:"messages"`
}

// Suggestion is a user suggestion awaiting moderation.
type Suggestion struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created"`
}

// Suggestion statuses.
const (
	SuggestionPending  = "pending"
	SuggestionAccepted = "accepted"
	SuggestionDenied   = "denied"
)

// Document is the entire persisted state of the bot. Every category key
// is present after normalization; a missing guild or user inside a
// category always means "default", never an error.
//
// Most categories are keyed guild id -> nested data. Giveaways, timed
// mutes and temp voice channels are keyed by their own id (message id,
// mute id, channel id) with the guild recorded inside the entry, which
// matches the on-disk layout of the original data file.
type Document struct {
	Config         map[string]map[string]any               `json:"config"`
	Warnings       map[string]map[string][]Warning         `json:"warnings"`
	Levels         map[string]map[string]*LevelProfile     `json:"levels"`
	Economy        map[string]map[string]*EconomyAccount   `json:"economy"`
	Backups        map[string][]map[string]any             `json:"backups"`
	PremiumUsers   map[string]map[string]bool              `json:"premium_users"`
	AutoResponses  map[string]map[string]string            `json:"auto_responses"`
	Suggestions    map[string]map[string]*Suggestion       `json:"suggestions"`
	Giveaways      map[string]*Giveaway                    `json:"giveaways"`
	ReactionRoles  map[string]map[string]map[string]string `json:"reaction_roles"`
	AllowedLinks   map[string][]string                     `json:"allowed_links"`
	Tickets        map[string]map[string]*Ticket           `json:"tickets"`
	RolesInvites   map[string]map[string]string            `json:"roles_invites"`
	Badges         map[string]map[string][]string          `json:"badges"`
	Invites        map[string]map[string]int64             `json:"invites"`
	UserInvites    map[string]map[string]int64             `json:"user_invites"`
	TempVocs       map[string]*TempVoice                   `json:"temp_vocs"`
	CustomCommands map[string]map[string]string            `json:"custom_commands"`
	Logs           map[string][]map[string]any             `json:"logs"`
	Antiraid       map[string]map[string]any               `json:"antiraid"`
	AISettings     map[string]map[string]any               `json:"ai_settings"`
	TimedMutes     map[string]*TimedMute                   `json:"timed_mutes"`
}

// NewDocument returns an empty Document with every category initialized.
func NewDocument() *Document {
	d := &Document{}
	d.normalize()
	return d
}

// normalize makes sure every category map is non-nil, so lookups never
// have to guard against a missing category. Called after every load.
func (d *Document) normalize() {
	if d.Config == nil {
		d.Config = make(map[string]map[string]any)
	}
	if d.Warnings == nil {
		d.Warnings = make(map[string]map[string][]Warning)
	}
	if d.Levels == nil {
		d.Levels = make(map[string]map[string]*LevelProfile)
	}
	if d.Economy == nil {
		d.Economy = make(map[string]map[string]*EconomyAccount)
	}
	if d.Backups == nil {
		d.Backups = make(map[string][]map[string]any)
	}
	if d.PremiumUsers == nil {
		d.PremiumUsers = make(map[string]map[string]bool)
	}
	if d.AutoResponses == nil {
		d.AutoResponses = make(map[string]map[string]string)
	}
	if d.Suggestions == nil {
		d.Suggestions = make(map[string]map[string]*Suggestion)
	}
	if d.Giveaways == nil {
		d.Giveaways = make(map[string]*Giveaway)
	}
	if d.ReactionRoles == nil {
		d.ReactionRoles = make(map[string]map[string]map[string]string)
	}
	if d.AllowedLinks == nil {
		d.AllowedLinks = make(map[string][]string)
	}
	if d.Tickets == nil {
		d.Tickets = make(map[string]map[string]*Ticket)
	}
	if d.RolesInvites == nil {
		d.RolesInvites = make(map[string]map[string]string)
	}
	if d.Badges == nil {
		d.Badges = make(map[string]map[string][]string)
	}
	if d.Invites == nil {
		d.Invites = make(map[string]map[string]int64)
	}
	if d.UserInvites == nil {
		d.UserInvites = make(map[string]map[string]int64)
	}
	if d.TempVocs == nil {
		d.TempVocs = make(map[string]*TempVoice)
	}
	if d.CustomCommands == nil {
		d.CustomCommands = make(map[string]map[string]string)
	}
	if d.Logs == nil {
		d.Logs = make(map[string][]map[string]any)
	}
	if d.Antiraid == nil {
		d.Antiraid = make(map[string]map[string]any)
	}
	if d.AISettings == nil {
		d.AISettings = make(map[string]map[string]any)
	}
	if d.TimedMutes == nil {
		d.TimedMutes = make(map[string]*TimedMute)
	}
}
