// Package mod - /mod warn command
package mod

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Avertit un utilisateur",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à avertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison de l'avertissement",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}

	reason := ctx.GetStringOption("raison")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier une raison.")
	}

	deps := ctx.Client.Deps
	count, err := deps.Warnings.AddWarning(ctx.Interaction.GuildID, user.ID, reason, ctx.User().ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer l'avertissement : " + err.Error())
	}

	deps.Telemetry.PublishModeration("warn", ctx.Interaction.GuildID, user.ID, ctx.User().ID)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "⚠️ Avertissement",
		Description: fmt.Sprintf("**%s** a été averti(e).\n**Raison :** %s\n**Modérateur :** %s\n**Total :** %d avertissement(s)",
			user.Username,
			reason,
			ctx.User().Username,
			count,
		),
		Color: discord.EmbedColor,
	})
}
