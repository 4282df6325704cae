// Package utils - /help command
package utils

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createHelpCommand creates the /help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Affiche la liste des commandes",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /help command
func helpHandler(ctx *discord.CommandContext) error {
	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "✨ Commandes de Hoshimi",
		Description: "Voici tout ce que je sais faire !",
		Color:       discord.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "🛡️ Modération",
				Value: "`/mod warn` `/mod warnings` `/mod clearwarns` `/mod mute` `/mod unmute` `/mod kick` `/mod ban`",
			},
			{
				Name:  "💰 Économie",
				Value: "`/eco balance` `/eco daily` `/eco pay` `/eco shop` `/eco buy`",
			},
			{
				Name:  "🎉 Giveaways",
				Value: "`/giveaway start` `/giveaway end` `/giveaway reroll`",
			},
			{
				Name:  "📊 Niveaux",
				Value: "`/level rank` `/level leaderboard`",
			},
			{
				Name:  "💡 Suggestions",
				Value: "`/suggest new` `/suggest accept` `/suggest deny`",
			},
			{
				Name:  "🎫 Tickets",
				Value: "`/ticket open` `/ticket close`",
			},
			{
				Name:  "🎭 Rôles",
				Value: "`/reactionrole add` `/reactionrole remove`",
			},
			{
				Name:  "⚙️ Configuration",
				Value: "`/config welcome` `/config leave` `/config logs` `/config suggestions` `/config voc` `/config levels` `/config show`",
			},
			{
				Name:  "🔧 Divers",
				Value: "`/ping` `/status` `/premium status`",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Hoshimi ✨",
		},
	})
}
