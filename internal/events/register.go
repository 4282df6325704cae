// Package events provides a registry for organizing bot events.
// Events are organized by category (member, message, reaction, voice).
package events

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Message events (XP, auto responses, link filter)
	RegisterMessageEvents(client)

	// Reaction events (reaction roles, giveaway entries)
	RegisterReactionEvents(client)

	// Voice events (temporary voice channels)
	RegisterVoiceEvents(client)

	// Expiry completions (giveaway draws, automatic unmutes)
	RegisterSchedulerHandlers(client)

	logger.Success("✅ All events registered", "Events")
}
