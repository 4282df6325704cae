// Package main is the entry point for the Hoshimi bot.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ANN7660/hoshimi/internal/commands"
	"github.com/ANN7660/hoshimi/internal/events"
	"github.com/ANN7660/hoshimi/pkg/config"
	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/errors"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/ANN7660/hoshimi/pkg/mqtt"
	"github.com/ANN7660/hoshimi/pkg/scheduler"
	"github.com/ANN7660/hoshimi/pkg/state"
	"github.com/ANN7660/hoshimi/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook)
	defer log.Close()

	logger.System("Starting Hoshimi...", "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			_ = discordClient.Stop()
		}
	})

	// Open the state store
	backend := openBackend(cfg)
	store, err := state.Open(backend)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error opening state store: %v", err), "Main")
		os.Exit(1)
	}

	// State accessors
	sched := scheduler.New(cfg.PollInterval)
	deps := &discord.Deps{
		Store:         store,
		GuildConfig:   state.NewGuildConfigRegistry(store),
		Warnings:      state.NewModerationLedger(store),
		Economy:       state.NewEconomyLedger(store),
		Giveaways:     state.NewGiveawayBook(store),
		Mutes:         state.NewMuteBook(store),
		TempVocs:      state.NewTempVoiceDir(store),
		ReactionRoles: state.NewReactionRoleMap(store),
		Levels:        state.NewLevelBoard(store),
		Tickets:       state.NewTicketDesk(store),
		Premium:       state.NewPremiumList(store),
		Responses:     state.NewAutoResponder(store),
		Links:         state.NewLinkPolicy(store),
		Badges:        state.NewBadgeCase(store),
		Suggestions:   state.NewSuggestionBox(store),
		Scheduler:     sched,
	}

	// Initialize MQTT telemetry
	mqttClientID := "hoshimi"
	if !cfg.IsProd() {
		mqttClientID = "hoshimi_canary"
	}
	deps.Telemetry = mqtt.Init(cfg.MQTTHost, cfg.MQTTPort, cfg.MQTTUser, cfg.MQTTPassword, mqttClientID)
	defer deps.Telemetry.Destroy()

	// The keep-alive server must answer probes before the gateway
	// connection settles.
	webServer := web.Init()
	web.SetupRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken, deps)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Expiry polling only begins once the session can act on claims.
	sched.Start()

	logger.Success("Hoshimi started! ✨", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down Hoshimi...", "Main")

	sched.Stop()
	if err := discordClient.Stop(); err != nil {
		logger.Error(fmt.Sprintf("Error closing Discord session: %v", err), "Main")
	}
	if err := store.Flush(); err != nil {
		logger.Error(fmt.Sprintf("Error flushing state: %v", err), "Main")
	}
	if closer, ok := backend.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}

// openBackend picks the persistence backend from configuration. Mongo
// falls back to the file backend when the server is unreachable, the
// bot always starts.
func openBackend(cfg *config.Config) state.Backend {
	if cfg.Storage == config.StorageMongo {
		backend, err := state.NewMongoBackend(cfg.MongoDBURL, cfg.DBName, "state")
		if err == nil {
			logger.Info("Using MongoDB persistence", "Main")
			return backend
		}
		logger.Warn(fmt.Sprintf("MongoDB unavailable, falling back to file storage: %v", err), "Main")
	}
	logger.Info("Using file persistence: "+cfg.DataFile, "Main")
	return state.NewFileBackend(cfg.DataFile)
}
