// Package utils provides utility commands (/ping, /status, /help)
package utils

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterUtilCommands registers all utility commands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createStatusCommand())
	client.CommandHandler.RegisterCommand(createHelpCommand())
}
