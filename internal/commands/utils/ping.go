// Package utils - /ping command
package utils

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createPingCommand creates the /ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Vérifie la latence du bot",
		"utils",
		pingHandler,
	)
}

// pingHandler handles the /ping command
func pingHandler(ctx *discord.CommandContext) error {
	latency := ctx.Session.HeartbeatLatency()

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🏓 Pong !",
		Description: fmt.Sprintf("Latence : **%d ms**", latency.Milliseconds()),
		Color:       discord.EmbedColor,
	})
}
