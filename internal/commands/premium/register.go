// Package premium provides premium management commands organized as
// subcommands under /premium
package premium

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterPremiumCommands registers all premium commands as /premium subcommands
func RegisterPremiumCommands(client *discord.ExtendedClient) {
	grantCmd := createGrantCommand()
	revokeCmd := createRevokeCommand()
	statusCmd := createStatusCommand()

	premiumGroup := client.CommandHandler.BuildCommandGroup(
		"premium",
		"Gestion des membres premium",
		grantCmd,
		revokeCmd,
		statusCmd,
	)

	client.CommandHandler.AddGlobalCommand(premiumGroup)
}
