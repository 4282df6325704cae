// Package config - /config levels subcommand
package config

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createSetLevelsCommand creates the /config levels subcommand
func createSetLevelsCommand() *discord.Command {
	return discord.NewCommand(
		"levels",
		"Active ou désactive le système de niveaux",
		"config",
		setLevelsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "actif",
			Description: "true pour activer, false pour désactiver",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setLevelsHandler handles the /config levels command
func setLevelsHandler(ctx *discord.CommandContext) error {
	enabled := ctx.GetBoolOption("actif")

	if err := ctx.Client.Deps.GuildConfig.Set(ctx.Interaction.GuildID, KeyLevelsEnabled, enabled); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer la configuration : " + err.Error())
	}

	if enabled {
		return ctx.Reply("✅ Le système de niveaux est activé.")
	}
	return ctx.Reply("✅ Le système de niveaux est désactivé.")
}
