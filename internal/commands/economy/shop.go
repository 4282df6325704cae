// Package economy - /eco shop command
package economy

import (
	"fmt"
	"strings"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createShopCommand creates the /eco shop subcommand
func createShopCommand() *discord.Command {
	return discord.NewCommand(
		"shop",
		"Affiche les objets disponibles à l'achat",
		"economy",
		shopHandler,
	)
}

// shopHandler handles the /eco shop command
func shopHandler(ctx *discord.CommandContext) error {
	var sb strings.Builder
	for _, item := range ShopItems {
		fmt.Fprintf(&sb, "%s **%s** — %d crédits\n", item.Emoji, item.Name, item.Price)
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🛍️ Boutique",
		Description: sb.String() + "\nUtilise `/eco buy` pour acheter un objet.",
		Color:       discord.EmbedColor,
	})
}
