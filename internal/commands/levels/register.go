// Package levels provides leveling commands organized as subcommands under /level
package levels

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterLevelCommands registers all leveling commands as /level subcommands
func RegisterLevelCommands(client *discord.ExtendedClient) {
	rankCmd := createRankCommand()
	leaderboardCmd := createLeaderboardCommand()

	levelGroup := client.CommandHandler.BuildCommandGroup(
		"level",
		"Système de niveaux",
		rankCmd,
		leaderboardCmd,
	)

	client.CommandHandler.AddGlobalCommand(levelGroup)
}
