// Package economy - /eco balance command
package economy

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createBalanceCommand creates the /eco balance subcommand
func createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"balance",
		"Affiche le solde d'un utilisateur",
		"economy",
		balanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à consulter (toi par défaut)",
			Required:    false,
		},
	)
}

// balanceHandler handles the /eco balance command
func balanceHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		user = ctx.User()
	}

	balance := ctx.Client.Deps.Economy.Balance(ctx.Interaction.GuildID, user.ID)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "💰 Solde",
		Description: fmt.Sprintf("**%s** possède **%d** crédits.", user.Username, balance),
		Color:       discord.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("128"),
		},
	})
}
