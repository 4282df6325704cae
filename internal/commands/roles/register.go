// Package roles provides reaction role commands organized as
// subcommands under /reactionrole
package roles

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterRoleCommands registers all reaction role commands
func RegisterRoleCommands(client *discord.ExtendedClient) {
	addCmd := createAddCommand()
	removeCmd := createRemoveCommand()

	roleGroup := client.CommandHandler.BuildCommandGroup(
		"reactionrole",
		"Rôles attribués par réaction",
		addCmd,
		removeCmd,
	)

	client.CommandHandler.AddGlobalCommand(roleGroup)
}
