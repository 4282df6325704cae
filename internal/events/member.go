// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	guildcfg "github.com/ANN7660/hoshimi/internal/commands/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		onGuildMemberAdd(client, s, m)
	})
	client.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
		onGuildMemberRemove(client, s, m)
	})
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(client *discord.ExtendedClient, s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 New member: %s in guild %s", m.User.Username, m.GuildID), "Member")

	channelID := client.Deps.GuildConfig.GetString(m.GuildID, guildcfg.KeyWelcomeChannel, "")
	if channelID == "" {
		return
	}

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error fetching guild: %v", err), "Member")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Bienvenue ! ✨",
		Description: fmt.Sprintf("Bienvenue <@%s> sur **%s** !\nNous sommes maintenant **%d** membres.", m.User.ID, guild.Name, guild.MemberCount),
		Color:       discord.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("128"),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Hoshimi ✨",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Error sending welcome message: %v", err), "Member")
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(client *discord.ExtendedClient, s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Member left: %s from guild %s", m.User.Username, m.GuildID), "Member")

	channelID := client.Deps.GuildConfig.GetString(m.GuildID, guildcfg.KeyLeaveChannel, "")
	if channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("👋 **%s** a quitté le serveur. À bientôt !", m.User.Username),
		Color:       discord.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Error sending leave message: %v", err), "Member")
	}
}
