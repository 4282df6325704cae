// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Affiche les avertissements d'un utilisateur",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à consulter",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}

	warns := ctx.Client.Deps.Warnings.Warnings(ctx.Interaction.GuildID, user.ID)
	if len(warns) == 0 {
		return ctx.Reply(fmt.Sprintf("✅ **%s** n'a aucun avertissement.", user.Username))
	}

	var sb strings.Builder
	for i, w := range warns {
		fmt.Fprintf(&sb, "**%d.** %s — <@%s> — <t:%d:R>\n", i+1, w.Reason, w.Moderator, w.IssuedAt)
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Avertissements de %s (%d)", user.Username, len(warns)),
		Description: sb.String(),
		Color:       discord.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
