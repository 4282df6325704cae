package state

import "time"

// TicketDesk tracks open ticket channels per guild.
type TicketDesk struct {
	store *Store
	now   func() time.Time
}

// NewTicketDesk creates a desk over the given store.
func NewTicketDesk(store *Store) *TicketDesk {
	return &TicketDesk{store: store, now: time.Now}
}

// Open registers a freshly created ticket channel.
func (t *TicketDesk) Open(guildID, channelID, ownerID string) error {
	return t.store.Update(func(d *Document) error {
		guild, ok := d.Tickets[guildID]
		if !ok {
			guild = make(map[string]*Ticket)
			d.Tickets[guildID] = guild
		}
		guild[channelID] = &Ticket{OwnerID: ownerID, CreatedAt: t.now().Unix()}
		return nil
	})
}

// IsTicket reports whether a channel is a tracked ticket.
func (t *TicketDesk) IsTicket(guildID, channelID string) bool {
	found := false
	t.store.View(func(d *Document) {
		_, found = d.Tickets[guildID][channelID]
	})
	return found
}

// Close removes a ticket, reporting whether this call removed it. Only
// the caller that gets true deletes the Discord channel.
func (t *TicketDesk) Close(guildID, channelID string) (bool, error) {
	claimed := false
	err := t.store.Update(func(d *Document) error {
		if guild, ok := d.Tickets[guildID]; ok {
			if _, ok := guild[channelID]; ok {
				delete(guild, channelID)
				claimed = true
			}
		}
		return nil
	})
	return claimed, err
}

// Count returns the number of open tickets in a guild.
func (t *TicketDesk) Count(guildID string) int {
	n := 0
	t.store.View(func(d *Document) {
		n = len(d.Tickets[guildID])
	})
	return n
}
