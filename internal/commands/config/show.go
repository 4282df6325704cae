// Package config - /config show subcommand
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createShowCommand creates the /config show subcommand
func createShowCommand() *discord.Command {
	return discord.NewCommand(
		"show",
		"Affiche la configuration du serveur",
		"config",
		showHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// showHandler handles the /config show command
func showHandler(ctx *discord.CommandContext) error {
	settings := ctx.Client.Deps.GuildConfig.Snapshot(ctx.Interaction.GuildID)
	if len(settings) == 0 {
		return ctx.ReplyEphemeral("ℹ️ Aucune configuration pour ce serveur.")
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "**%s** : `%v`\n", k, settings[k])
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "⚙️ Configuration",
		Description: sb.String(),
		Color:       discord.EmbedColor,
	})
}
