// Package mod - /mod ban command
package mod

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Bannit un utilisateur du serveur",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à bannir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison du bannissement",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "jours",
			Description: "Jours de messages à supprimer (0-7)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}
	reason := ctx.GetStringOption("raison")
	if reason == "" {
		reason = "Aucune raison fournie"
	}
	days := int(ctx.GetIntOption("jours"))
	if days < 0 || days > 7 {
		return ctx.ReplyEphemeral("❌ Le nombre de jours doit être entre 0 et 7.")
	}

	if err := ctx.Session.GuildBanCreateWithReason(ctx.Interaction.GuildID, user.ID, reason, days); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de bannir cet utilisateur : " + err.Error())
	}

	ctx.Client.Deps.Telemetry.PublishModeration("ban", ctx.Interaction.GuildID, user.ID, ctx.User().ID)

	return ctx.Reply(fmt.Sprintf("🔨 **%s** a été banni(e).\n**Raison :** %s", user.Username, reason))
}
