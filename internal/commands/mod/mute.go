// Package mod - /mod mute command
package mod

import (
	"fmt"
	"time"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// mutedRoleName is the role looked up (or created) to silence a member.
const mutedRoleName = "Muted"

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Rend un utilisateur muet pour une durée donnée",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Utilisateur à rendre muet",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "minutes",
			Description: "Durée du mute en minutes",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "raison",
			Description: "Raison du mute",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// muteHandler handles the /mod mute command
func muteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("utilisateur")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}
	minutes := ctx.GetIntOption("minutes")
	if minutes <= 0 {
		return ctx.ReplyEphemeral("❌ La durée doit être d'au moins une minute.")
	}
	reason := ctx.GetStringOption("raison")
	if reason == "" {
		reason = "Aucune raison fournie"
	}

	deps := ctx.Client.Deps
	guildID := ctx.Interaction.GuildID

	if _, already := deps.Mutes.Find(guildID, user.ID); already {
		return ctx.ReplyEphemeral("❌ Cet utilisateur est déjà muet.")
	}

	roleID, err := findMutedRole(ctx.Session, guildID)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Impossible de trouver ou créer le rôle Muted : " + err.Error())
	}

	if err := ctx.Session.GuildMemberRoleAdd(guildID, user.ID, roleID); err != nil {
		return ctx.ReplyEphemeral("❌ Impossible d'ajouter le rôle : " + err.Error())
	}

	expiresAt := time.Now().Add(time.Duration(minutes) * time.Minute)
	if _, err := deps.Mutes.Create(guildID, user.ID, roleID, expiresAt); err != nil {
		// The mute would be lost on restart; undo the role so state and
		// Discord stay in sync.
		_ = ctx.Session.GuildMemberRoleRemove(guildID, user.ID, roleID)
		return ctx.ReplyEphemeral("❌ Impossible d'enregistrer le mute : " + err.Error())
	}

	deps.Telemetry.PublishModeration("mute", guildID, user.ID, ctx.User().ID)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: "🔇 Mute",
		Description: fmt.Sprintf("**%s** est muet(te) pendant **%d minute(s)**.\n**Raison :** %s\n**Fin :** <t:%d:R>",
			user.Username, minutes, reason, expiresAt.Unix()),
		Color: discord.EmbedColor,
	})
}

// findMutedRole returns the guild's Muted role id, creating the role
// when the guild has none.
func findMutedRole(s *discordgo.Session, guildID string) (string, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return "", err
	}
	for _, role := range roles {
		if role.Name == mutedRoleName {
			return role.ID, nil
		}
	}

	role, err := s.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: mutedRoleName})
	if err != nil {
		return "", err
	}
	return role.ID, nil
}
