// Package config - channel configuration subcommands
package config

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// channelOption is the shared channel picker used by every set-channel
// subcommand.
func channelOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionChannel,
		Name:        "salon",
		Description: description,
		Required:    true,
		ChannelTypes: []discordgo.ChannelType{
			discordgo.ChannelTypeGuildText,
		},
	}
}

// setChannelHandler writes the picked channel under the given config key.
func setChannelHandler(key, label string) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		channel := ctx.GetChannelOption("salon")
		if channel == nil {
			return ctx.ReplyEphemeral("❌ Tu dois spécifier un salon.")
		}

		if err := ctx.Client.Deps.GuildConfig.Set(ctx.Interaction.GuildID, key, channel.ID); err != nil {
			return ctx.ReplyEphemeral("❌ Impossible d'enregistrer la configuration : " + err.Error())
		}

		return ctx.Reply(fmt.Sprintf("✅ Le salon %s est maintenant <#%s>.", label, channel.ID))
	}
}

// createSetWelcomeCommand creates the /config welcome subcommand
func createSetWelcomeCommand() *discord.Command {
	return discord.NewCommand(
		"welcome",
		"Définit le salon des messages de bienvenue",
		"config",
		setChannelHandler(KeyWelcomeChannel, "de bienvenue"),
	).WithOptions(
		channelOption("Salon des messages de bienvenue"),
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createSetLeaveCommand creates the /config leave subcommand
func createSetLeaveCommand() *discord.Command {
	return discord.NewCommand(
		"leave",
		"Définit le salon des messages de départ",
		"config",
		setChannelHandler(KeyLeaveChannel, "de départ"),
	).WithOptions(
		channelOption("Salon des messages de départ"),
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createSetLogsCommand creates the /config logs subcommand
func createSetLogsCommand() *discord.Command {
	return discord.NewCommand(
		"logs",
		"Définit le salon des logs de modération",
		"config",
		setChannelHandler(KeyLogsChannel, "des logs"),
	).WithOptions(
		channelOption("Salon des logs de modération"),
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createSetSuggestionsCommand creates the /config suggestions subcommand
func createSetSuggestionsCommand() *discord.Command {
	return discord.NewCommand(
		"suggestions",
		"Définit le salon des suggestions",
		"config",
		setChannelHandler(KeySuggestionChannel, "des suggestions"),
	).WithOptions(
		channelOption("Salon des suggestions"),
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createSetupVocCommand creates the /config voc subcommand
func createSetupVocCommand() *discord.Command {
	return discord.NewCommand(
		"voc",
		"Définit le salon vocal créateur de salons temporaires",
		"config",
		setupVocHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "salon",
			Description: "Salon vocal déclencheur",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildVoice,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setupVocHandler handles the /config voc command
func setupVocHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("salon")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un salon vocal.")
	}

	if err := ctx.Client.Deps.GuildConfig.Set(ctx.Interaction.GuildID, KeyVocTrigger, channel.ID); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer la configuration : " + err.Error())
	}

	return ctx.Reply(fmt.Sprintf("✅ Rejoindre <#%s> créera désormais un salon vocal temporaire.", channel.ID))
}
