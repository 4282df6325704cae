// Package tickets - /ticket open command
package tickets

import (
	"fmt"
	"strings"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createOpenCommand creates the /ticket open subcommand
func createOpenCommand() *discord.Command {
	return discord.NewCommand(
		"open",
		"Ouvre un ticket de support",
		"tickets",
		openHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "sujet",
			Description: "Sujet du ticket",
			Required:    false,
		},
	)
}

// openHandler handles the /ticket open command
func openHandler(ctx *discord.CommandContext) error {
	user := ctx.User()
	guildID := ctx.Interaction.GuildID
	subject := ctx.GetStringOption("sujet")

	name := "ticket-" + strings.ToLower(user.Username)
	channel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:  name,
		Type:  discordgo.ChannelTypeGuildText,
		Topic: subject,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{
				ID:   guildID, // @everyone
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			{
				ID:    user.ID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
			},
		},
	})
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de créer le salon du ticket : " + err.Error())
	}

	if err := ctx.Client.Deps.Tickets.Open(guildID, channel.ID, user.ID); err != nil {
		_, _ = ctx.Session.ChannelDelete(channel.ID)
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer le ticket : " + err.Error())
	}

	welcome := fmt.Sprintf("🎫 Bonjour <@%s> ! Décris ton problème, un membre du staff arrive.", user.ID)
	if subject != "" {
		welcome += "\n**Sujet :** " + subject
	}
	if _, err := ctx.Session.ChannelMessageSend(channel.ID, welcome); err != nil {
		_ = err
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Ton ticket est ouvert : <#%s>", channel.ID))
}
