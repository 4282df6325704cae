// Package tickets - /ticket close command
package tickets

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// createCloseCommand creates the /ticket close subcommand
func createCloseCommand() *discord.Command {
	return discord.NewCommand(
		"close",
		"Ferme le ticket courant",
		"tickets",
		closeHandler,
	)
}

// closeHandler handles the /ticket close command. Close claims the
// ticket record first; only the claiming call deletes the channel, so
// two simultaneous /ticket close cannot double-delete.
func closeHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	channelID := ctx.Interaction.ChannelID

	if !ctx.Client.Deps.Tickets.IsTicket(guildID, channelID) {
		return ctx.ReplyEphemeral("❌ Ce salon n'est pas un ticket.")
	}

	claimed, err := ctx.Client.Deps.Tickets.Close(guildID, channelID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de fermer le ticket : " + err.Error())
	}
	if !claimed {
		return ctx.ReplyEphemeral("ℹ️ Ce ticket est déjà en cours de fermeture.")
	}

	if err := ctx.Reply("🔒 Ticket fermé, suppression du salon..."); err != nil {
		_ = err
	}

	_, err = ctx.Session.ChannelDelete(channelID)
	return err
}
