// Package giveaway - /giveaway end command
package giveaway

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

// createEndCommand creates the /giveaway end subcommand
func createEndCommand() *discord.Command {
	return discord.NewCommand(
		"end",
		"Termine un giveaway immédiatement",
		"giveaway",
		endHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Identifiant du message du giveaway",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// endHandler handles the /giveaway end command. EndNow claims the
// giveaway before running the draw, so the poll loop cannot draw a
// second winner for the same message.
func endHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("message")

	fired, err := ctx.Client.Deps.Scheduler.EndNow(state.KindGiveaway, messageID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de terminer le giveaway : " + err.Error())
	}
	if !fired {
		return ctx.ReplyEphemeral("❌ Aucun giveaway actif avec cet identifiant.")
	}

	return ctx.ReplyEphemeral("✅ Giveaway terminé, le gagnant a été tiré au sort.")
}
