// Package economy - /eco pay command
package economy

import (
	"errors"
	"fmt"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/bwmarrin/discordgo"
)

// createPayCommand creates the /eco pay subcommand
func createPayCommand() *discord.Command {
	return discord.NewCommand(
		"pay",
		"Transfère des crédits à un autre utilisateur",
		"economy",
		payHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "utilisateur",
			Description: "Destinataire du transfert",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "montant",
			Description: "Nombre de crédits à envoyer",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	)
}

// payHandler handles the /eco pay command
func payHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("utilisateur")
	if target == nil {
		return ctx.ReplyEphemeral("❌ Tu dois spécifier un utilisateur.")
	}
	amount := ctx.GetIntOption("montant")
	sender := ctx.User()

	if target.ID == sender.ID {
		return ctx.ReplyEphemeral("❌ Tu ne peux pas te payer toi-même.")
	}
	if target.Bot {
		return ctx.ReplyEphemeral("❌ Les bots n'ont pas besoin de crédits.")
	}

	err := ctx.Client.Deps.Economy.Transfer(ctx.Interaction.GuildID, sender.ID, target.ID, amount)
	switch {
	case errors.Is(err, state.ErrInsufficientFunds):
		return ctx.ReplyEphemeral("❌ Tu n'as pas assez de crédits.")
	case errors.Is(err, state.ErrInvalidAmount):
		return ctx.ReplyEphemeral("❌ Le montant doit être positif.")
	case err != nil:
		return ctx.ReplyEphemeral("❌ Transfert impossible : " + err.Error())
	}

	return ctx.Reply(fmt.Sprintf("💸 **%s** a envoyé **%d** crédits à **%s** !",
		sender.Username, amount, target.Username))
}
