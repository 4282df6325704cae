// Package events provides event handlers for the bot
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

var heartbeatOnce sync.Once

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		onReady(client, s, r)
	})
}

// onReady is called when the bot successfully connects to Discord
func onReady(client *discord.ExtendedClient, s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot connected: %s", r.User.Username), "Ready")
	logger.Info(fmt.Sprintf("📊 Serving %d guilds", len(r.Guilds)), "Ready")

	if err := s.UpdateGameStatus(0, "✨ /help"); err != nil {
		logger.Error(fmt.Sprintf("Error setting status: %v", err), "Ready")
	}

	// One heartbeat goroutine no matter how often the gateway reconnects.
	heartbeatOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				client.Deps.Telemetry.PublishStatus(client.IsReady(), client.GuildCount())
			}
		}()
	})

	client.Deps.Telemetry.PublishStatus(true, len(r.Guilds))
}
