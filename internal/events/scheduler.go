// Package events - completion actions for expiring entries
package events

import (
	"fmt"
	"math/rand"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/ANN7660/hoshimi/pkg/scheduler"
	"github.com/ANN7660/hoshimi/pkg/state"
)

// RegisterSchedulerHandlers wires the expiry scheduler to its
// completion actions. Entries are claimed before the handler runs, so
// each giveaway draw and automatic unmute happens exactly once.
func RegisterSchedulerHandlers(client *discord.ExtendedClient) {
	deps := client.Deps

	deps.Scheduler.Register(state.KindGiveaway, deps.Giveaways, func(e scheduler.Entity) error {
		return finishGiveaway(client, e)
	})

	deps.Scheduler.Register(state.KindMute, deps.Mutes, func(e scheduler.Entity) error {
		return finishMute(client, e)
	})
}

// finishGiveaway draws a winner among the entrants and announces the
// result in the giveaway's channel.
func finishGiveaway(client *discord.ExtendedClient, e scheduler.Entity) error {
	g, ok := e.Payload.(state.Giveaway)
	if !ok {
		return fmt.Errorf("unexpected giveaway payload %T", e.Payload)
	}

	if len(g.Entrants) == 0 {
		_, err := client.Session.ChannelMessageSend(g.ChannelID, "Aucun participant.")
		return err
	}

	winner := g.Entrants[rand.Intn(len(g.Entrants))]
	logger.Info(fmt.Sprintf("Giveaway %s won by %s", g.MessageID, winner), "Giveaway")

	_, err := client.Session.ChannelMessageSend(g.ChannelID,
		fmt.Sprintf("🎉 Félicitations <@%s> ! Tu remportes **%s** !", winner, g.Prize))
	return err
}

// finishMute removes the muted role. A member who already left the
// guild is a successful unmute.
func finishMute(client *discord.ExtendedClient, e scheduler.Entity) error {
	m, ok := e.Payload.(state.TimedMute)
	if !ok {
		return fmt.Errorf("unexpected mute payload %T", e.Payload)
	}

	err := client.Session.GuildMemberRoleRemove(m.GuildID, m.UserID, m.RoleID)
	if err != nil {
		if _, memberErr := client.Session.GuildMember(m.GuildID, m.UserID); memberErr != nil {
			logger.Debug(fmt.Sprintf("Skipping unmute for departed member %s", m.UserID), "Mute")
			return nil
		}
		return err
	}

	logger.Info(fmt.Sprintf("Unmuted %s in guild %s", m.UserID, m.GuildID), "Mute")
	return nil
}
