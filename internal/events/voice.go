// Package events provides event handlers for voice events
package events

import (
	"fmt"

	guildcfg "github.com/ANN7660/hoshimi/internal/commands/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterVoiceEvents registers all voice-related event handlers
func RegisterVoiceEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		onVoiceStateUpdate(client, s, v)
	})
}

// onVoiceStateUpdate drives temporary voice channels: joining the
// configured trigger channel creates one, leaving the last seat of a
// temporary channel tears it down.
func onVoiceStateUpdate(client *discord.ExtendedClient, s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	deps := client.Deps

	// Channel the user left, if any.
	var leftChannelID string
	if v.BeforeUpdate != nil && v.BeforeUpdate.ChannelID != v.ChannelID {
		leftChannelID = v.BeforeUpdate.ChannelID
	}

	triggerID := deps.GuildConfig.GetString(v.GuildID, guildcfg.KeyVocTrigger, "")
	if triggerID != "" && v.ChannelID == triggerID {
		createTempChannel(client, s, v)
	}

	if leftChannelID != "" && deps.TempVocs.IsTemp(leftChannelID) && channelEmpty(s, v.GuildID, leftChannelID) {
		// Release claims the record; only the claiming handler deletes
		// the channel even when several leave events race.
		claimed, err := deps.TempVocs.Release(leftChannelID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error releasing temp channel: %v", err), "Voice")
			return
		}
		if claimed {
			if _, err := s.ChannelDelete(leftChannelID); err != nil {
				logger.Error(fmt.Sprintf("Error deleting temp channel: %v", err), "Voice")
			}
		}
	}
}

// createTempChannel creates a personal voice channel and moves the
// member into it.
func createTempChannel(client *discord.ExtendedClient, s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	member, err := s.GuildMember(v.GuildID, v.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error fetching member: %v", err), "Voice")
		return
	}

	name := "🔊 Salon de " + member.User.Username

	var parentID string
	if trigger, err := s.Channel(v.ChannelID); err == nil {
		parentID = trigger.ParentID
	}

	channel, err := s.GuildChannelCreateComplex(v.GuildID, discordgo.GuildChannelCreateData{
		Name:     name,
		Type:     discordgo.ChannelTypeGuildVoice,
		ParentID: parentID,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error creating temp channel: %v", err), "Voice")
		return
	}

	if err := client.Deps.TempVocs.Track(channel.ID, v.GuildID, v.UserID); err != nil {
		logger.Error(fmt.Sprintf("Error tracking temp channel: %v", err), "Voice")
		_, _ = s.ChannelDelete(channel.ID)
		return
	}

	if err := s.GuildMemberMove(v.GuildID, v.UserID, &channel.ID); err != nil {
		logger.Debug(fmt.Sprintf("Could not move member into temp channel: %v", err), "Voice")
	}
}

// channelEmpty reports whether no one is connected to the channel,
// according to the session state cache.
func channelEmpty(s *discordgo.Session, guildID, channelID string) bool {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		return false
	}
	s.State.RLock()
	defer s.State.RUnlock()
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			return false
		}
	}
	return true
}
