// Package economy - /eco buy command
package economy

import (
	"errors"
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

// createBuyCommand creates the /eco buy subcommand
func createBuyCommand() *discord.Command {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(ShopItems))
	for _, item := range ShopItems {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s %s (%d crédits)", item.Emoji, item.Name, item.Price),
			Value: item.Name,
		})
	}

	return discord.NewCommand(
		"buy",
		"Achète un objet de la boutique",
		"economy",
		buyHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "objet",
			Description: "Objet à acheter",
			Required:    true,
			Choices:     choices,
		},
	)
}

// buyHandler handles the /eco buy command
func buyHandler(ctx *discord.CommandContext) error {
	name := ctx.GetStringOption("objet")
	item, ok := findItem(name)
	if !ok {
		return ctx.ReplyEphemeral("❌ Cet objet n'existe pas. Regarde `/eco shop`.")
	}

	user := ctx.User()
	deps := ctx.Client.Deps

	err := deps.Economy.Purchase(ctx.Interaction.GuildID, user.ID, item.Price)
	switch {
	case errors.Is(err, state.ErrInsufficientFunds):
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Il te faut **%d** crédits pour acheter %s.", item.Price, item.Name))
	case err != nil:
		return ctx.ReplyEphemeral("❌ Achat impossible : " + err.Error())
	}

	if err := deps.Badges.Grant(ctx.Interaction.GuildID, user.ID, item.Name); err != nil {
		return ctx.ReplyEphemeral("❌ L'objet n'a pas pu être ajouté : " + err.Error())
	}

	return ctx.Reply(fmt.Sprintf("%s **%s** a acheté **%s** pour %d crédits !",
		item.Emoji, user.Username, item.Name, item.Price))
}
