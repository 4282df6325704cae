// Package events provides event handlers for reaction events
package events

import (
	"fmt"

	"github.com/ANN7660/hoshimi/internal/commands/giveaway"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReactionEvents registers all reaction-related event handlers
func RegisterReactionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		onReactionAdd(client, s, r)
	})
	client.Session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
		onReactionRemove(client, s, r)
	})
}

// onReactionAdd is called when a user adds a reaction
func onReactionAdd(client *discord.ExtendedClient, s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	deps := client.Deps

	// Giveaway entry.
	if r.Emoji.Name == giveaway.ReactionEmoji {
		if err := deps.Giveaways.AddEntrant(r.MessageID, r.UserID); err != nil {
			logger.Error(fmt.Sprintf("Error recording giveaway entry: %v", err), "Reaction")
		}
	}

	// Reaction role.
	if roleID, ok := deps.ReactionRoles.Role(r.GuildID, r.MessageID, r.Emoji.Name); ok {
		if err := s.GuildMemberRoleAdd(r.GuildID, r.UserID, roleID); err != nil {
			logger.Error(fmt.Sprintf("Error adding reaction role: %v", err), "Reaction")
		}
	}
}

// onReactionRemove is called when a user removes a reaction
func onReactionRemove(client *discord.ExtendedClient, s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.UserID == s.State.User.ID {
		return
	}

	deps := client.Deps

	if r.Emoji.Name == giveaway.ReactionEmoji {
		if err := deps.Giveaways.RemoveEntrant(r.MessageID, r.UserID); err != nil {
			logger.Error(fmt.Sprintf("Error removing giveaway entry: %v", err), "Reaction")
		}
	}

	if roleID, ok := deps.ReactionRoles.Role(r.GuildID, r.MessageID, r.Emoji.Name); ok {
		if err := s.GuildMemberRoleRemove(r.GuildID, r.UserID, roleID); err != nil {
			logger.Error(fmt.Sprintf("Error removing reaction role: %v", err), "Reaction")
		}
	}
}
