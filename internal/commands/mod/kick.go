// Package mod - /mod kick command
package mod

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulse un utilisateur du serveur",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à expulser",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison de l'expulsion",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers)
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}
	reason := ctx.GetStringOption("raison")
	if reason == "" {
		reason = "Aucune raison fournie"
	}

	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.Interaction.GuildID, user.ID, reason); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'expulser cet utilisateur : " + err.Error())
	}

	ctx.Client.Deps.Telemetry.PublishModeration("kick", ctx.Interaction.GuildID, user.ID, ctx.User().ID)

	return ctx.Reply(fmt.Sprintf("👢 **%s** a été expulsé(e).\n**Raison :** %s", user.Username, reason))
}
