// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, economy,
// giveaway, ...).
package commands

import (
	"github.com/ANN7660/hoshimi/internal/commands/config"
	"github.com/ANN7660/hoshimi/internal/commands/dev"
	"github.com/ANN7660/hoshimi/internal/commands/economy"
	"github.com/ANN7660/hoshimi/internal/commands/giveaway"
	"github.com/ANN7660/hoshimi/internal/commands/levels"
	"github.com/ANN7660/hoshimi/internal/commands/mod"
	"github.com/ANN7660/hoshimi/internal/commands/premium"
	"github.com/ANN7660/hoshimi/internal/commands/roles"
	"github.com/ANN7660/hoshimi/internal/commands/suggest"
	"github.com/ANN7660/hoshimi/internal/commands/tickets"
	"github.com/ANN7660/hoshimi/internal/commands/utils"
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/ping, /status, /help)
	utils.RegisterUtilCommands(client)

	// Guild configuration (/config ...)
	config.RegisterConfigCommands(client)

	// Moderation (/mod warn, /mod mute, ...)
	mod.RegisterModCommands(client)

	// Economy (/eco balance, /eco daily, ...)
	economy.RegisterEconomyCommands(client)

	// Giveaways (/giveaway start, /giveaway end, /giveaway reroll)
	giveaway.RegisterGiveawayCommands(client)

	// Reaction roles (/reactionrole add, /reactionrole remove)
	roles.RegisterRoleCommands(client)

	// Leveling (/level rank, /level leaderboard)
	levels.RegisterLevelCommands(client)

	// Suggestions (/suggest new, /suggest accept, /suggest deny)
	suggest.RegisterSuggestCommands(client)

	// Tickets (/ticket open, /ticket close)
	tickets.RegisterTicketCommands(client)

	// Premium management (/premium grant, /premium revoke, /premium status)
	premium.RegisterPremiumCommands(client)

	// Dev-only commands, registered in the dev guild
	dev.RegisterDevCommands(client)
}
