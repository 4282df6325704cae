// Package giveaway provides giveaway commands organized as subcommands under /giveaway
package giveaway

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// ReactionEmoji is the emoji users react with to enter a giveaway.
const ReactionEmoji = "🎉"

// RegisterGiveawayCommands registers all giveaway commands as /giveaway subcommands
func RegisterGiveawayCommands(client *discord.ExtendedClient) {
	startCmd := createStartCommand()
	endCmd := createEndCommand()
	rerollCmd := createRerollCommand()

	giveawayGroup := client.CommandHandler.BuildCommandGroup(
		"giveaway",
		"Commandes de giveaway",
		startCmd,
		endCmd,
		rerollCmd,
	)

	client.CommandHandler.AddGlobalCommand(giveawayGroup)
}
