// Package utils - /status command
package utils

import (
	"fmt"
	"runtime"
	"time"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createStatusCommand creates the /status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Affiche l'état du bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /status command
func statusHandler(ctx *discord.CommandContext) error {
	client := ctx.Client
	uptime := time.Since(client.StartTime).Round(time.Second)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "📡 État de Hoshimi",
		Color: discord.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "⏱️ Uptime",
				Value:  uptime.String(),
				Inline: true,
			},
			{
				Name:   "🌐 Serveurs",
				Value:  fmt.Sprintf("%d", client.GuildCount()),
				Inline: true,
			},
			{
				Name:   "📦 Commandes",
				Value:  fmt.Sprintf("%d", client.Commands.Size()),
				Inline: true,
			},
			{
				Name:   "🧠 Mémoire",
				Value:  fmt.Sprintf("%.1f MB", float64(mem.Alloc)/1024/1024),
				Inline: true,
			},
			{
				Name:   "⚙️ Go",
				Value:  runtime.Version(),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Hoshimi ✨",
		},
	})
}
