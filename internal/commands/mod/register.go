// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	clearWarnsCmd := createClearWarnsCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	kickCmd := createKickCommand()
	banCmd := createBanCommand()

	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Commandes de modération",
		warnCmd,
		warningsCmd,
		clearWarnsCmd,
		muteCmd,
		unmuteCmd,
		kickCmd,
		banCmd,
	)

	client.CommandHandler.AddGlobalCommand(modGroup)
}
