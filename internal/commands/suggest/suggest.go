// Package suggest - /suggest new command
package suggest

import (
	"fmt"
	"time"

	guildcfg "github.com/ANN7660/hoshimi/internal/commands/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createNewCommand creates the /suggest new subcommand
func createNewCommand() *discord.Command {
	return discord.NewCommand(
		"new",
		"Propose une suggestion pour le serveur",
		"suggest",
		newHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "texte",
			Description: "Ta suggestion",
			Required:    true,
		},
	)
}

// newHandler handles the /suggest new command
func newHandler(ctx *discord.CommandContext) error {
	text := ctx.GetStringOption("texte")
	if text == "" {
		return ctx.ReplyEphemeral("❌ Tu dois écrire une suggestion.")
	}

	user := ctx.User()
	deps := ctx.Client.Deps
	guildID := ctx.Interaction.GuildID

	id, err := deps.Suggestions.Submit(guildID, user.ID, text)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer la suggestion : " + err.Error())
	}

	// Post in the configured suggestion channel, same channel otherwise.
	channelID := deps.GuildConfig.GetString(guildID, guildcfg.KeySuggestionChannel, ctx.Interaction.ChannelID)

	embed := &discordgo.MessageEmbed{
		Title:       "💡 Suggestion #" + id,
		Description: text,
		Color:       discord.EmbedColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    user.Username,
			IconURL: user.AvatarURL("64"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	msg, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de publier la suggestion : " + err.Error())
	}

	_ = ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, "👍")
	_ = ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, "👎")

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Suggestion **#%s** publiée !", id))
}
