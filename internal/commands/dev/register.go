// Package dev provides developer-only commands registered in the dev guild.
package dev

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterDevCommands registers all dev commands as /dev subcommands
// (only in the dev guild)
func RegisterDevCommands(client *discord.ExtendedClient) {
	evalCmd := createEvalCommand()
	flushCmd := createFlushCommand()

	devGroup := client.CommandHandler.BuildCommandGroup(
		"dev",
		"Commandes de développement",
		evalCmd,
		flushCmd,
	)

	// Dev commands never go global.
	client.CommandHandler.AddDevCommand(devGroup)
}
