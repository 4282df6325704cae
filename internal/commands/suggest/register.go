// Package suggest provides suggestion commands organized as subcommands under /suggest
package suggest

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterSuggestCommands registers all suggestion commands as /suggest subcommands
func RegisterSuggestCommands(client *discord.ExtendedClient) {
	newCmd := createNewCommand()
	acceptCmd := createAcceptCommand()
	denyCmd := createDenyCommand()

	suggestGroup := client.CommandHandler.BuildCommandGroup(
		"suggest",
		"Suggestions du serveur",
		newCmd,
		acceptCmd,
		denyCmd,
	)

	client.CommandHandler.AddGlobalCommand(suggestGroup)
}
