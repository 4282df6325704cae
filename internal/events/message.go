// Package events provides event handlers for message events
package events

import (
	"fmt"
	"math/rand"
	"strings"

	guildcfg "github.com/ANN7660/hoshimi/internal/commands/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		onMessageCreate(client, s, m)
	})
}

// onMessageCreate is called when a new message is created
func onMessageCreate(client *discord.ExtendedClient, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot || m.GuildID == "" {
		return
	}

	deps := client.Deps

	// Link filter runs first; a deleted message earns no XP.
	if containsLink(m.Content) && deps.Links.HasRules(m.GuildID) && !deps.Links.IsAllowed(m.GuildID, m.ChannelID) {
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			logger.Debug(fmt.Sprintf("Could not delete link message: %v", err), "Message")
			return
		}
		_, _ = s.ChannelMessageSend(m.ChannelID,
			fmt.Sprintf("🔗 <@%s>, les liens ne sont pas autorisés dans ce salon.", m.Author.ID))
		return
	}

	// XP for chatting, one roll of 10-20 per message.
	if deps.GuildConfig.GetBool(m.GuildID, guildcfg.KeyLevelsEnabled, false) {
		xp := int64(10 + rand.Intn(11))
		leveledUp, level, err := deps.Levels.AddMessageXP(m.GuildID, m.Author.ID, xp)
		if err != nil {
			logger.Error(fmt.Sprintf("Error crediting XP: %v", err), "Message")
		} else if leveledUp {
			_, _ = s.ChannelMessageSend(m.ChannelID,
				fmt.Sprintf("🎉 Bravo <@%s>, tu passes au niveau **%d** !", m.Author.ID, level))
		}
	}

	// Auto responses, first configured trigger found in the message.
	if response, ok := deps.Responses.Match(m.GuildID, m.Content); ok {
		if _, err := s.ChannelMessageSend(m.ChannelID, response); err != nil {
			logger.Debug(fmt.Sprintf("Could not send auto response: %v", err), "Message")
		}
	}
}

// containsLink reports whether the message carries an http(s) URL.
func containsLink(content string) bool {
	lowered := strings.ToLower(content)
	return strings.Contains(lowered, "http://") || strings.Contains(lowered, "https://") || strings.Contains(lowered, "discord.gg/")
}
