// Package levels - /level rank command
package levels

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRankCommand creates the /level rank subcommand
func createRankCommand() *discord.Command {
	return discord.NewCommand(
		"rank",
		"Affiche le niveau d'un utilisateur",
		"levels",
		rankHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à consulter (toi par défaut)",
			Required:    false,
		},
	)
}

// rankHandler handles the /level rank command
func rankHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		user = ctx.User()
	}

	profile := ctx.Client.Deps.Levels.Profile(ctx.Interaction.GuildID, user.ID)
	needed := profile.Level * 100

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Niveau de %s", user.Username),
		Description: fmt.Sprintf("**Niveau :** %d\n**XP :** %d / %d\n**Messages :** %d",
			profile.Level, profile.XP, needed, profile.Messages),
		Color: discord.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
	})
}
