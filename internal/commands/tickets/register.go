// Package tickets provides support ticket commands organized as
// subcommands under /ticket
package tickets

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterTicketCommands registers all ticket commands as /ticket subcommands
func RegisterTicketCommands(client *discord.ExtendedClient) {
	openCmd := createOpenCommand()
	closeCmd := createCloseCommand()

	ticketGroup := client.CommandHandler.BuildCommandGroup(
		"ticket",
		"Tickets de support",
		openCmd,
		closeCmd,
	)

	client.CommandHandler.AddGlobalCommand(ticketGroup)
}
