// Package giveaway - /giveaway reroll command
package giveaway

import (
	"fmt"
	"math/rand"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRerollCommand creates the /giveaway reroll subcommand
func createRerollCommand() *discord.Command {
	return discord.NewCommand(
		"reroll",
		"Retire un gagnant pour un giveaway terminé",
		"giveaway",
		rerollHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Identifiant du message du giveaway",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// rerollHandler handles the /giveaway reroll command. Ended giveaways
// are gone from the store, so the participants are re-read from the
// reactions still on the message.
func rerollHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("message")
	channelID := ctx.Interaction.ChannelID

	users, err := ctx.Session.MessageReactions(channelID, messageID, ReactionEmoji, 100, "", "")
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de lire les réactions de ce message : " + err.Error())
	}

	entrants := make([]*discordgo.User, 0, len(users))
	for _, u := range users {
		if !u.Bot {
			entrants = append(entrants, u)
		}
	}

	if len(entrants) == 0 {
		return ctx.Reply("Aucun participant.")
	}

	winner := entrants[rand.Intn(len(entrants))]
	return ctx.Reply(fmt.Sprintf("🎉 Nouveau gagnant : <@%s> ! Félicitations !", winner.ID))
}
