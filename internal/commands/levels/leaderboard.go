// Package levels - /level leaderboard command
package levels

import (
	"fmt"
	"strings"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createLeaderboardCommand creates the /level leaderboard subcommand
func createLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"leaderboard",
		"Affiche le classement du serveur",
		"levels",
		leaderboardHandler,
	)
}

// leaderboardHandler handles the /level leaderboard command
func leaderboardHandler(ctx *discord.CommandContext) error {
	top := ctx.Client.Deps.Levels.Top(ctx.Interaction.GuildID, 10)
	if len(top) == 0 {
		return ctx.ReplyEphemeral("ℹ️ Personne n'a encore gagné d'XP sur ce serveur.")
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var sb strings.Builder
	for i, p := range top {
		prefix := fmt.Sprintf("**%d.**", i+1)
		if i < len(medals) {
			prefix = medals[i]
		}
		fmt.Fprintf(&sb, "%s <@%s> — niveau %d (%d XP)\n", prefix, p.UserID, p.Level, p.XP)
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🏆 Classement",
		Description: sb.String(),
		Color:       discord.EmbedColor,
	})
}
