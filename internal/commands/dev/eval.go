// Package dev - /dev eval command
package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ANN7660/hoshimi/pkg/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/errors"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand creates the /dev eval command
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Évalue du code Go (dangereux)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "Code ou expression Go à évaluer",
			Required:    true,
		},
	)
}

// evalHandler handles the /dev eval command. Compiling the script can
// take a moment, so the work runs off the dispatch goroutine behind a
// deferred reply.
func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if !isOwner(ctx.User().ID) {
			_ = ctx.ReplyEphemeral("❌ Cette commande est réservée à la propriétaire du bot.")
			return
		}

		_ = ctx.Defer()

		code := ctx.GetStringOption("code")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			_ = ctx.EditReply(fmt.Sprintf("❌ Erreur de chargement de la stdlib : %v", err))
			return
		}

		// Expose the live bot objects so scripts can poke at them.
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"Deps":    reflect.ValueOf(ctx.Client.Deps),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/ANN7660/hoshimi/internal/commands/dev/dev": botExports,
		}); err != nil {
			_ = ctx.EditReply(fmt.Sprintf("❌ Erreur d'enregistrement des variables : %v", err))
			return
		}

		if _, err := i.Eval(`import . "github.com/ANN7660/hoshimi/internal/commands/dev"`); err != nil {
			_ = ctx.EditReply(fmt.Sprintf("❌ Erreur d'import des variables : %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Erreur d'exécution :**\n```go\n%v\n```", err)
		} else {
			resStr := "nil"
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (tronqué)"
			}
			output = fmt.Sprintf("✅ **Résultat :**\n```go\n%s\n```", resStr)
		}

		logger.Debug(fmt.Sprintf("Eval finished in %s", time.Since(start)), "DevEval")
		_ = ctx.EditReply(output)
	}()
	return nil
}

// isOwner reports whether the user is the configured bot owner.
func isOwner(userID string) bool {
	cfg := config.Get()
	return cfg != nil && cfg.OwnerID != "" && userID == cfg.OwnerID
}
