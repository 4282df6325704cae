// Package mod - /mod unmute command
package mod

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the /mod unmute subcommand
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Rend la parole à un utilisateur muet",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à démuter",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// unmuteHandler handles the /mod unmute command. It goes through the
// scheduler so the pending automatic unmute is claimed in the same step
// and cannot fire a second time.
func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}

	deps := ctx.Client.Deps
	guildID := ctx.Interaction.GuildID

	mute, found := deps.Mutes.Find(guildID, user.ID)
	if !found {
		return ctx.ReplyEphemeral("❌ Cet utilisateur n'est pas muet.")
	}

	fired, err := deps.Scheduler.EndNow(state.KindMute, mute.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de démuter : " + err.Error())
	}
	if !fired {
		// The poll loop claimed it first; the role is already gone.
		return ctx.ReplyEphemeral("ℹ️ Le mute venait juste d'expirer.")
	}

	deps.Telemetry.PublishModeration("unmute", guildID, user.ID, ctx.User().ID)

	return ctx.Reply(fmt.Sprintf("🔊 **%s** peut de nouveau parler.", user.Username))
}
