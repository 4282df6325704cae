// Package economy - /eco daily command
package economy

import (
	"fmt"
	"time"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createDailyCommand creates the /eco daily subcommand
func createDailyCommand() *discord.Command {
	return discord.NewCommand(
		"daily",
		"Récupère ta récompense quotidienne",
		"economy",
		dailyHandler,
	)
}

// dailyHandler handles the /eco daily command
func dailyHandler(ctx *discord.CommandContext) error {
	user := ctx.User()

	granted, balance, err := ctx.Client.Deps.Economy.ClaimDaily(
		ctx.Interaction.GuildID, user.ID, DailyAmount, 24*time.Hour)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de récupérer la récompense : " + err.Error())
	}

	if !granted {
		return ctx.ReplyEphemeral("⏳ Tu as déjà récupéré ta récompense aujourd'hui. Reviens plus tard !")
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🎁 Récompense quotidienne",
		Description: fmt.Sprintf("Tu as reçu **%d** crédits !\nNouveau solde : **%d** crédits.", DailyAmount, balance),
		Color:       discord.EmbedColor,
	})
}
