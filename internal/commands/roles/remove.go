// Package roles - /reactionrole remove command
package roles

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRemoveCommand creates the /reactionrole remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Supprime la liaison emoji-rôle d'un message",
		"roles",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Identifiant du message",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "emoji",
			Description: "Emoji à délier",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles)
}

// removeHandler handles the /reactionrole remove command
func removeHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("message")
	emoji := ctx.GetStringOption("emoji")

	if _, found := ctx.Client.Deps.ReactionRoles.Role(ctx.Interaction.GuildID, messageID, emoji); !found {
		return ctx.ReplyEphemeral("❌ Aucune liaison pour cet emoji sur ce message.")
	}

	if err := ctx.Client.Deps.ReactionRoles.Unbind(ctx.Interaction.GuildID, messageID, emoji); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de supprimer la liaison : " + err.Error())
	}

	return ctx.Reply(fmt.Sprintf("✅ La liaison %s a été supprimée.", emoji))
}
