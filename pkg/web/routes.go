// Package web provides API routes for the keep-alive server.
package web

import (
	"net/http"

	"github.com/ANN7660/hoshimi/pkg/discord"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the keep-alive and status routes
func SetupRoutes(s *Server) {
	// The root route is what hosting platforms probe.
	s.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hoshimi est en ligne ! ✨")
	})

	api := s.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/status", statusHandler)
	}
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Hoshimi is running",
	})
}

// statusHandler returns the bot's connection status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	guilds := 0
	if client != nil {
		botOnline = client.IsReady()
		guilds = client.GuildCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"bot": gin.H{
			"isOnline": botOnline,
			"guilds":   guilds,
		},
	})
}
