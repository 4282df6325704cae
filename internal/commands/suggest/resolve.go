// Package suggest - /suggest accept and /suggest deny commands
package suggest

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

// suggestionIDOption is the shared id option of accept and deny.
func suggestionIDOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "Identifiant de la suggestion",
		Required:    true,
	}
}

// createAcceptCommand creates the /suggest accept subcommand
func createAcceptCommand() *discord.Command {
	return discord.NewCommand(
		"accept",
		"Accepte une suggestion",
		"suggest",
		resolveHandler(state.SuggestionAccepted, "✅ La suggestion **#%s** a été acceptée !"),
	).WithOptions(
		suggestionIDOption(),
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// createDenyCommand creates the /suggest deny subcommand
func createDenyCommand() *discord.Command {
	return discord.NewCommand(
		"deny",
		"Refuse une suggestion",
		"suggest",
		resolveHandler(state.SuggestionDenied, "❌ La suggestion **#%s** a été refusée."),
	).WithOptions(
		suggestionIDOption(),
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// resolveHandler marks a suggestion with the given status and notifies
// its author.
func resolveHandler(status, format string) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		id := ctx.GetStringOption("id")

		sug, found, err := ctx.Client.Deps.Suggestions.Resolve(ctx.Interaction.GuildID, id, status)
		if err != nil {
			return ctx.ReplyEphemeral("❌ Impossible de traiter la suggestion : " + err.Error())
		}
		if !found {
			return ctx.ReplyEphemeral("❌ Aucune suggestion avec cet identifiant.")
		}

		// Best effort DM to the author.
		if channel, dmErr := ctx.Session.UserChannelCreate(sug.AuthorID); dmErr == nil {
			_, _ = ctx.Session.ChannelMessageSend(channel.ID,
				fmt.Sprintf(format, sug.ID)+"\n> "+sug.Text)
		}

		return ctx.Reply(fmt.Sprintf(format, sug.ID))
	}
}
