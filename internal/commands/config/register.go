// Package config provides guild configuration commands organized as
// subcommands under /config
package config

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// Config keys used across commands and events. Channel ids are stored
// as strings, toggles as booleans.
const (
	KeyWelcomeChannel    = "welcome_channel"
	KeyLeaveChannel      = "leave_channel"
	KeyLogsChannel       = "logs_channel"
	KeySuggestionChannel = "suggestion_channel"
	KeyVocTrigger        = "voc_trigger_channel"
	KeyLevelsEnabled     = "level_system_enabled"
)

// RegisterConfigCommands registers all configuration commands as /config subcommands
func RegisterConfigCommands(client *discord.ExtendedClient) {
	welcomeCmd := createSetWelcomeCommand()
	leaveCmd := createSetLeaveCommand()
	logsCmd := createSetLogsCommand()
	suggestionsCmd := createSetSuggestionsCommand()
	vocCmd := createSetupVocCommand()
	levelsCmd := createSetLevelsCommand()
	showCmd := createShowCommand()

	configGroup := client.CommandHandler.BuildCommandGroup(
		"config",
		"Configuration du serveur",
		welcomeCmd,
		leaveCmd,
		logsCmd,
		suggestionsCmd,
		vocCmd,
		levelsCmd,
		showCmd,
	)

	client.CommandHandler.AddGlobalCommand(configGroup)
}
