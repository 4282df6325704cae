// Package mod - /mod clearwarns command
package mod

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createClearWarnsCommand creates the /mod clearwarns subcommand
func createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"Efface tous les avertissements d'un utilisateur",
		"mod",
		clearWarnsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à nettoyer",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// clearWarnsHandler handles the /mod clearwarns command
func clearWarnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}

	if err := ctx.Client.Deps.Warnings.ClearWarnings(ctx.Interaction.GuildID, user.ID); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'effacer les avertissements : " + err.Error())
	}

	return ctx.Reply(fmt.Sprintf("🧹 Les avertissements de **%s** ont été effacés.", user.Username))
}
