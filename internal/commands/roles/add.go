// Package roles - /reactionrole add command
package roles

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /reactionrole add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Lie un emoji d'un message à un rôle",
		"roles",
		addHandler,
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
			Description: "Emoji à lier",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "Rôle attribué par la réaction",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles)
}

// addHandler handles the /reactionrole add command
func addHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("message")
	emoji := ctx.GetStringOption("emoji")
	role := ctx.GetRoleOption("role")
	if role == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un rôle.")
	}

	err := ctx.Client.Deps.ReactionRoles.Bind(ctx.Interaction.GuildID, messageID, emoji, role.ID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer la liaison : " + err.Error())
	}

	return ctx.Reply(fmt.Sprintf("✅ Réagir avec %s sur ce message donnera le rôle **%s**.", emoji, role.Name))
}
