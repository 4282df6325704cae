// Package premium - /premium grant, revoke and status commands
package premium

import (
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// userOption is the shared user picker.
func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "utilisateur",
		Description: description,
		Required:    true,
	}
}

// createGrantCommand creates the /premium grant subcommand
func createGrantCommand() *discord.Command {
	return discord.NewCommand(
		"grant",
		"Accorde le statut premium à un utilisateur",
		"premium",
		setPremiumHandler(true, "💎 **%s** est maintenant premium !"),
	).WithOptions(
		userOption("Utilisateur à promouvoir"),
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// createRevokeCommand creates the /premium revoke subcommand
func createRevokeCommand() *discord.Command {
	return discord.NewCommand(
		"revoke",
		"Retire le statut premium d'un utilisateur",
		"premium",
		setPremiumHandler(false, "💎 **%s** n'est plus premium."),
	).WithOptions(
		userOption("Utilisateur à rétrograder"),
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// createStatusCommand creates the /premium status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Vérifie le statut premium d'un utilisateur",
		"premium",
		statusHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à vérifier (toi par défaut)",
			Required:    false,
		},
	)
}

// setPremiumHandler grants or revokes premium.
func setPremiumHandler(premium bool, format string) discord.CommandRunFunc {
	return func(ctx *discord.CommandContext) error {
		user := ctx.GetUserOption("utilisateur")
		if user == nil {
			return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
		}

		if err := ctx.Client.Deps.Premium.Set(ctx.Interaction.GuildID, user.ID, premium); err != nil {
			return ctx.ReplyEphemeral("❌ Impossible de modifier le statut : " + err.Error())
		}

		return ctx.Reply(fmt.Sprintf(format, user.Username))
	}
}

// statusHandler handles the /premium status command
func statusHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		user = ctx.User()
	}

	if ctx.Client.Deps.Premium.Has(ctx.Interaction.GuildID, user.ID) {
		return ctx.ReplyEphemeral(fmt.Sprintf("💎 **%s** est premium.", user.Username))
	}
	return ctx.ReplyEphemeral(fmt.Sprintf("**%s** n'est pas premium.", user.Username))
}
