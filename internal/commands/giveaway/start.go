// Package giveaway - /giveaway start command
package giveaway

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

var durationPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// parseDuration parses the historical giveaway duration format: a
// number followed by s, m, h or d ("30s", "5m", "1h", "2d").
func parseDuration(raw string) (time.Duration, error) {
	match := durationPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, errors.New("format invalide")
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n <= 0 {
		return 0, errors.New("format invalide")
	}
	switch match[2] {
	case "s":
		return time.Duration(n) * time.Second, nil
	case "m":
		return time.Duration(n) * time.Minute, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	default:
		return time.Duration(n) * 24 * time.Hour, nil
	}
}

// createStartCommand creates the /giveaway start subcommand
func createStartCommand() *discord.Command {
	return discord.NewCommand(
		"start",
		"Lance un giveaway",
		"giveaway",
		startHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duree",
			Description: "Durée du giveaway (ex: 30s, 5m, 1h, 2d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "prix",
			Description: "Ce que le gagnant remporte",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// startHandler handles the /giveaway start command
func startHandler(ctx *discord.CommandContext) error {
	duration, err := parseDuration(ctx.GetStringOption("duree"))
	if err != nil {
		return ctx.ReplyEphemeral("❌ Durée invalide. Utilise par exemple `30s`, `5m`, `1h` ou `2d`.")
	}
	prize := ctx.GetStringOption("prix")
	if prize == "" {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un prix.")
	}

	endsAt := time.Now().Add(duration)

	embed := &discordgo.MessageEmbed{
		Title:       "🎉 GIVEAWAY 🎉",
		Description: fmt.Sprintf("**Prix :** %s\n**Fin :** <t:%d:R>\n\nRéagis avec %s pour participer !", prize, endsAt.Unix(), ReactionEmoji),
		Color:       discord.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Hoshimi ✨",
		},
	}

	msg, err := ctx.Session.ChannelMessageSendEmbed(ctx.Interaction.ChannelID, embed)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de publier le giveaway : " + err.Error())
	}

	if err := ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, ReactionEmoji); err != nil {
		// Users can still react on their own; keep going.
		_ = err
	}

	err = ctx.Client.Deps.Giveaways.Create(&state.Giveaway{
		MessageID: msg.ID,
		GuildID:   ctx.Interaction.GuildID,
		ChannelID: msg.ChannelID,
		Prize:     prize,
		EndsAt:    endsAt.Unix(),
	})
	if err != nil {
		// Nothing will ever draw a winner for the orphan message.
		_ = ctx.Session.ChannelMessageDelete(msg.ChannelID, msg.ID)
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer le giveaway : " + err.Error())
	}

	return ctx.ReplyEphemeral("✅ Giveaway lancé !")
}
