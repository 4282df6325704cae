// Package main provides a utility to sync Discord slash commands.
// It removes stale commands from Discord and ensures only
// currently-defined commands are registered.
//
// Usage:
//
//	go run cmd/sync-commands/main.go [options]
//
// Options:
//
//	-list           List all registered commands (global and guild)
//	-clean          Remove all commands without registering new ones
//	-guild <id>     Target a specific guild instead of global commands
//	-sync           Sync commands (remove stale, register current) - default behavior
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ANN7660/hoshimi/internal/commands"
	"github.com/ANN7660/hoshimi/pkg/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func main() {
	listCmd := flag.Bool("list", false, "List all registered commands")
	cleanCmd := flag.Bool("clean", false, "Remove all commands without registering new ones")
	guildID := flag.String("guild", "", "Target a specific guild (leave empty for global)")
	syncCmd := flag.Bool("sync", false, "Sync commands (remove stale, register current)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook)
	defer log.Close()

	logger.System("Starting command sync utility...", "SyncCommands")

	// Command definitions never touch the store during registration, so
	// an empty dependency set is enough here.
	client, err := discord.NewClient(cfg.BotToken, &discord.Deps{})
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "SyncCommands")
		os.Exit(1)
	}

	if err := client.Session.Open(); err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to Discord: %v", err), "SyncCommands")
		os.Exit(1)
	}
	defer client.Session.Close()

	logger.Success("Connected to Discord", "SyncCommands")

	// Register commands locally so we know what we should have.
	commands.RegisterAll(client)

	switch {
	case *listCmd:
		listCommands(client, *guildID)
	case *cleanCmd:
		cleanCommands(client, *guildID)
	case *syncCmd:
		syncCommands(client, *guildID)
	default:
		syncCommands(client, *guildID)
	}

	logger.Success("Done.", "SyncCommands")
}

// listCommands lists all commands registered with Discord
func listCommands(client *discord.ExtendedClient, guildID string) {
	var cmds []*discordgo.ApplicationCommand
	var err error

	if guildID != "" {
		logger.Info("Fetching commands for guild: "+guildID, "SyncCommands")
		cmds, err = client.CommandHandler.ListGuildCommands(guildID)
	} else {
		logger.Info("Fetching global commands", "SyncCommands")
		cmds, err = client.CommandHandler.ListGlobalCommands()
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Error fetching commands: %v", err), "SyncCommands")
		return
	}

	if len(cmds) == 0 {
		logger.Info("No commands registered", "SyncCommands")
		return
	}

	logger.Info(fmt.Sprintf("Commands found: %d", len(cmds)), "SyncCommands")
	for i, cmd := range cmds {
		logger.Info(fmt.Sprintf("  %d. /%s - %s (ID: %s)", i+1, cmd.Name, cmd.Description, cmd.ID), "SyncCommands")
	}
}

// cleanCommands removes all commands from Discord
func cleanCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("🧹 Removing all commands...", "SyncCommands")

	var err error
	if guildID != "" {
		err = client.CommandHandler.UnregisterGuildCommands(guildID)
	} else {
		err = client.CommandHandler.UnregisterCommands()
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Error removing commands: %v", err), "SyncCommands")
		return
	}

	logger.Success("✅ All commands removed", "SyncCommands")
}

// syncCommands removes stale commands and registers current ones
func syncCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("🔄 Syncing commands...", "SyncCommands")

	if guildID != "" {
		// Guild sync only clears; dev commands are re-registered by the
		// bot itself on its next ready event.
		if err := client.CommandHandler.UnregisterGuildCommands(guildID); err != nil {
			logger.Error(fmt.Sprintf("Error removing guild commands: %v", err), "SyncCommands")
			return
		}
		logger.Success("✅ Guild commands removed. Start the bot to re-register dev commands.", "SyncCommands")
		return
	}

	if err := client.CommandHandler.SyncCommands(); err != nil {
		logger.Error(fmt.Sprintf("Error syncing commands: %v", err), "SyncCommands")
		return
	}
	logger.Success("✅ Commands synced", "SyncCommands")
}
