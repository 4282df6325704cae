// Package dev - /dev flush command
package dev

import (
	"github.com/ANN7660/hoshimi/pkg/discord"
)

// createFlushCommand creates the /dev flush command
func createFlushCommand() *discord.Command {
	return discord.NewCommand(
		"flush",
		"Force l'écriture du document sur le disque",
		"dev",
		flushHandler,
	)
}

// flushHandler handles the /dev flush command
func flushHandler(ctx *discord.CommandContext) error {
	if !isOwner(ctx.User().ID) {
		return ctx.ReplyEphemeral("❌ Cette commande est réservée à la propriétaire du bot.")
	}

	if err := ctx.Client.Deps.Store.Flush(); err != nil {
		return ctx.ReplyEphemeral("❌ Écriture impossible : " + err.Error())
	}

	return ctx.ReplyEphemeral("💾 Document sauvegardé.")
}
